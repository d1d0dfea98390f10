package model

import (
	"fmt"

	"github.com/udisondev/fleetcalc/internal/formula"
)

// MaxFleetShips — максимум кораблей во флоте (7 для striking force).
const MaxFleetShips = 7

// TP — transport point для двух рангов победы.
// A is always derived from S, never computed separately.
type TP struct {
	S int
	A int
}

func newTP(s int) TP {
	return TP{S: s, A: formula.TransportPointA(s)}
}

// Fleet — упорядоченный список кораблей.
// Order matters for display only; aggregates are order-independent sums.
type Fleet struct {
	name  string
	ships []*Ship
}

// NewFleet creates a fleet. An empty fleet is valid.
func NewFleet(name string, ships []*Ship) (*Fleet, error) {
	if len(ships) > MaxFleetShips {
		return nil, fmt.Errorf("%w: fleet %q has %d ships, max %d", ErrInvalidInput, name, len(ships), MaxFleetShips)
	}
	for i, s := range ships {
		if s == nil {
			return nil, fmt.Errorf("%w: fleet %q ship %d is nil", ErrInvalidInput, name, i)
		}
	}
	cp := make([]*Ship, len(ships))
	copy(cp, ships)
	return &Fleet{name: name, ships: cp}, nil
}

// Name returns the fleet name.
func (f *Fleet) Name() string { return f.name }

// Len returns the number of ships.
func (f *Fleet) Len() int { return len(f.ships) }

// Ships returns a copy of the ship list.
func (f *Fleet) Ships() []*Ship {
	cp := make([]*Ship, len(f.ships))
	copy(cp, f.ships)
	return cp
}

// Flagship returns the first ship, or nil for an empty fleet.
func (f *Fleet) Flagship() *Ship {
	if len(f.ships) == 0 {
		return nil
	}
	return f.ships[0]
}

// FleetLosFactorSum returns S, the sum of per-ship fleet LoS factors.
func (f *Fleet) FleetLosFactorSum() float64 {
	var sum float64
	for _, s := range f.ships {
		sum += s.FleetLosFactor()
	}
	return sum
}

// LosModifier returns the fleet LoS modifier.
// Formula: floor(sqrt(S) + 0.1 × S)
func (f *Fleet) LosModifier() int {
	return formula.FleetLosModifier(f.FleetLosFactorSum())
}

// AviationDetectionScore returns the summed aviation detection score.
func (f *Fleet) AviationDetectionScore() float64 {
	var sum float64
	for _, s := range f.ships {
		sum += s.AviationDetectionScore()
	}
	return sum
}

// TransportPoint returns fleet TP for S and A rank victories.
func (f *Fleet) TransportPoint() TP {
	return newTP(f.transportPointS())
}

func (f *Fleet) transportPointS() int {
	sum := 0
	for _, s := range f.ships {
		sum += s.TransportPoint()
	}
	return sum
}

// ExpeditionBonus returns the fleet expedition income bonus, percent.
func (f *Fleet) ExpeditionBonus() (float64, error) {
	var (
		gears    []formula.ExpeditionGear
		shipRate float64
		toku     int
	)
	for _, s := range f.ships {
		gears = append(gears, s.ExpeditionGear()...)
		shipRate += s.Base().ExpeditionBonus
		toku += s.SpecialLandingCraftCount()
	}

	bonus, err := formula.ExpeditionBonus(gears, shipRate, toku)
	if err != nil {
		return 0, fmt.Errorf("fleet %q expedition bonus: %w", f.name, err)
	}
	return bonus, nil
}

// Plan — организация: один или несколько флотов и индекс main fleet.
type Plan struct {
	fleets   []*Fleet
	main     int
	combined bool
}

// NewPlan creates a plan. main indexes the fleet used for TP reporting.
// combined adds the fleet after main (the escort) to the TP report.
func NewPlan(fleets []*Fleet, main int, combined bool) (*Plan, error) {
	if len(fleets) == 0 {
		return nil, fmt.Errorf("%w: plan has no fleets", ErrInvalidInput)
	}
	if main < 0 || main >= len(fleets) {
		return nil, fmt.Errorf("%w: main fleet %d out of range [0,%d)", ErrInvalidInput, main, len(fleets))
	}
	if combined && main+1 >= len(fleets) {
		return nil, fmt.Errorf("%w: combined plan needs an escort fleet after fleet %d", ErrInvalidInput, main)
	}
	for i, f := range fleets {
		if f == nil {
			return nil, fmt.Errorf("%w: fleet %d is nil", ErrInvalidInput, i)
		}
	}
	cp := make([]*Fleet, len(fleets))
	copy(cp, fleets)
	return &Plan{fleets: cp, main: main, combined: combined}, nil
}

// Fleets returns a copy of the fleet list.
func (p *Plan) Fleets() []*Fleet {
	cp := make([]*Fleet, len(p.fleets))
	copy(cp, p.fleets)
	return cp
}

// MainIndex returns the index of the main fleet.
func (p *Plan) MainIndex() int { return p.main }

// MainFleet returns the main fleet.
func (p *Plan) MainFleet() *Fleet { return p.fleets[p.main] }

// EscortFleet returns the escort of a combined plan, nil otherwise.
func (p *Plan) EscortFleet() *Fleet {
	if !p.combined {
		return nil
	}
	return p.fleets[p.main+1]
}

// IsCombined reports whether main and escort fleets form a combined fleet.
func (p *Plan) IsCombined() bool { return p.combined }

// TransportPoint returns TP of the main fleet (plus escort when combined).
func (p *Plan) TransportPoint() TP {
	s := p.MainFleet().transportPointS()
	if escort := p.EscortFleet(); escort != nil {
		s += escort.transportPointS()
	}
	return newTP(s)
}
