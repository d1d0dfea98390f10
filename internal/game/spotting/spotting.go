// Package spotting computes day artillery spotting (cut-in) rates for a ship.
//
// Each cut-in type is tried in priority order with an independent chance;
// the first success fires. The per-type chances go into a RateMap, whose
// Total is the chance that any cut-in fires.
package spotting

import (
	"fmt"
	"math"

	"github.com/udisondev/fleetcalc/internal/model"
	"github.com/udisondev/fleetcalc/internal/ratemap"
)

// AirState — результат воздушного боя, влияющий на корректировку огня.
type AirState uint8

const (
	AirStateOther AirState = iota // parity, denial, incapability: no spotting
	AirStateSupremacy
	AirStateSuperiority
)

// String returns the air state name.
func (a AirState) String() string {
	switch a {
	case AirStateSupremacy:
		return "AS+"
	case AirStateSuperiority:
		return "AS"
	default:
		return "other"
	}
}

// ParseAirState parses the names returned by String.
func ParseAirState(s string) (AirState, error) {
	switch s {
	case "AS+", "as+":
		return AirStateSupremacy, nil
	case "AS", "as":
		return AirStateSuperiority, nil
	case "other":
		return AirStateOther, nil
	default:
		return AirStateOther, fmt.Errorf("%w: air state %q", model.ErrInvalidInput, s)
	}
}

// CutinType — тип спец. атаки при корректировке огня.
type CutinType uint8

const (
	CutinMainMain CutinType = iota
	CutinMainAP
	CutinMainRadar
	CutinMainSecond
	CutinDoubleAttack
)

// priority is the trial order; earlier types are rolled first.
var priority = [...]CutinType{
	CutinMainMain,
	CutinMainAP,
	CutinMainRadar,
	CutinMainSecond,
	CutinDoubleAttack,
}

// String returns the cut-in name.
func (c CutinType) String() string {
	switch c {
	case CutinMainMain:
		return "MainMain"
	case CutinMainAP:
		return "MainAP"
	case CutinMainRadar:
		return "MainRadar"
	case CutinMainSecond:
		return "MainSecond"
	case CutinDoubleAttack:
		return "DoubleAttack"
	default:
		return fmt.Sprintf("cutin(%d)", uint8(c))
	}
}

// Denominator returns the type's rate divisor: rate = observation / denominator.
func (c CutinType) Denominator() float64 {
	switch c {
	case CutinMainMain:
		return 150
	case CutinMainAP:
		return 140
	case CutinMainRadar:
		return 130
	case CutinMainSecond:
		return 120
	case CutinDoubleAttack:
		return 130
	default:
		return math.Inf(1)
	}
}

// Enabled reports whether the ship's gear allows this cut-in.
func (c CutinType) Enabled(s *model.Ship) bool {
	mains := s.CountGear((*model.Gear).IsMainGun)
	secondaries := s.CountGear(isCategory(model.GearSecondaryGun))
	ap := s.CountGear(isCategory(model.GearAPShell))
	radars := s.CountGear(isCategory(model.GearRadar))

	switch c {
	case CutinMainMain:
		return mains >= 2 && ap >= 1
	case CutinMainAP:
		return mains >= 1 && secondaries >= 1 && ap >= 1
	case CutinMainRadar:
		return mains >= 1 && secondaries >= 1 && radars >= 1
	case CutinMainSecond:
		return mains >= 1 && secondaries >= 1
	case CutinDoubleAttack:
		return mains >= 2
	default:
		return false
	}
}

func isCategory(c model.GearCategory) func(*model.Gear) bool {
	return func(g *model.Gear) bool { return g.Category == c }
}

// ObservationTerm returns the spotting observation term.
// Formula: floor(sqrt(luck) + 10) + floor(0.7 × (fleetLosMod + 1.6 × shipLos))
// + 10 (AS+) + 15 (flagship)
func ObservationTerm(luck, fleetLosMod, shipLos int, flagship bool, air AirState) int {
	obs := int(math.Floor(math.Sqrt(float64(max(luck, 0))) + 10))
	obs += int(math.Floor(0.7 * (float64(fleetLosMod) + 1.6*float64(shipLos))))
	if air == AirStateSupremacy {
		obs += 10
	}
	if flagship {
		obs += 15
	}
	return obs
}

// Result — итог анализа корректировки огня для одного корабля.
type Result struct {
	Observation int
	rates       *ratemap.RateMap[CutinType]
}

// Rate returns the raw trial chance of a cut-in type (0 if disabled).
func (r Result) Rate(c CutinType) float64 {
	p, _ := r.rates.Get(c)
	return p
}

// Types returns the enabled cut-in types in trial order.
func (r Result) Types() []CutinType {
	return r.rates.Keys()
}

// Actual returns the chance that c is the cut-in that fires:
// its own rate times the chance that every earlier type failed.
func (r Result) Actual(c CutinType) float64 {
	miss := 1.0
	for _, t := range r.rates.Keys() {
		p, _ := r.rates.Get(t)
		if t == c {
			return miss * p
		}
		miss *= 1 - p
	}
	return 0
}

// Total returns the chance that any cut-in fires.
func (r Result) Total() float64 {
	return r.rates.Total()
}

// Complement returns the chance of a normal attack.
func (r Result) Complement() float64 {
	return r.rates.Complement()
}

// Analyze computes spotting rates for ship.
// No spotting is possible without a recon plane or without AS+/AS.
func Analyze(ship *model.Ship, fleetLosMod int, flagship bool, air AirState) (Result, error) {
	if ship == nil {
		return Result{}, fmt.Errorf("%w: ship is nil", model.ErrInvalidInput)
	}
	if fleetLosMod < 0 {
		return Result{}, fmt.Errorf("%w: fleet LoS modifier %d", model.ErrInvalidInput, fleetLosMod)
	}

	res := Result{
		Observation: ObservationTerm(ship.Luck(), fleetLosMod, ship.LoS(), flagship, air),
		rates:       ratemap.New[CutinType](),
	}
	if air == AirStateOther || !ship.HasGear((*model.Gear).IsReconPlane) {
		return res, nil
	}

	for _, c := range priority {
		if !c.Enabled(ship) {
			continue
		}
		p := math.Min(1, float64(res.Observation)/c.Denominator())
		if err := res.rates.Set(c, p); err != nil {
			return Result{}, fmt.Errorf("spotting %s: %w", c, err)
		}
	}
	return res, nil
}
