// Package report collects the derived values of a plan into plain records
// for presentation code and renders them as text.
package report

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/fleetcalc/internal/game/spotting"
	"github.com/udisondev/fleetcalc/internal/model"
)

// ShipRow — производные характеристики одного корабля.
type ShipRow struct {
	Name           string
	Fingerprint    string
	Firepower      int
	FitBonus       float64
	AmmoPenalty    float64
	ShellingPower  float64
	FleetLosFactor float64
	TransportPoint int
	SpottingRate   float64 // chance that any spotting cut-in fires
}

// FleetReport — агрегаты флота.
type FleetReport struct {
	Name                   string
	Ships                  []ShipRow
	LosModifier            int
	AviationDetectionScore float64
	TransportPoint         model.TP
	ExpeditionBonus        float64
}

// PlanReport — итоговый отчёт организации.
type PlanReport struct {
	Fleets         []FleetReport
	Main           int
	TransportPoint model.TP
}

// Options controls battle assumptions of the report.
type Options struct {
	AirState spotting.AirState
}

// Build computes the report. Fleets are independent and computed concurrently.
func Build(ctx context.Context, plan *model.Plan, opts Options) (PlanReport, error) {
	fleets := plan.Fleets()
	out := PlanReport{
		Fleets:         make([]FleetReport, len(fleets)),
		Main:           plan.MainIndex(),
		TransportPoint: plan.TransportPoint(),
	}

	g, ctx := errgroup.WithContext(ctx)
	for i, f := range fleets {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			fr, err := buildFleet(f, opts)
			if err != nil {
				return fmt.Errorf("fleet %d %q: %w", i, f.Name(), err)
			}
			out.Fleets[i] = fr
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return PlanReport{}, err
	}
	return out, nil
}

func buildFleet(f *model.Fleet, opts Options) (FleetReport, error) {
	losMod := f.LosModifier()
	bonus, err := f.ExpeditionBonus()
	if err != nil {
		return FleetReport{}, err
	}

	fr := FleetReport{
		Name:                   f.Name(),
		LosModifier:            losMod,
		AviationDetectionScore: f.AviationDetectionScore(),
		TransportPoint:         f.TransportPoint(),
		ExpeditionBonus:        bonus,
	}

	for i, s := range f.Ships() {
		sp, err := spotting.Analyze(s, losMod, i == 0, opts.AirState)
		if err != nil {
			return FleetReport{}, fmt.Errorf("ship %d %q: %w", i, s.Name(), err)
		}
		fr.Ships = append(fr.Ships, ShipRow{
			Name:           s.Name(),
			Fingerprint:    s.Fingerprint(),
			Firepower:      s.Firepower(),
			FitBonus:       s.FitBonus(),
			AmmoPenalty:    s.Ammo().Penalty(),
			ShellingPower:  s.ShellingPower(),
			FleetLosFactor: s.FleetLosFactor(),
			TransportPoint: s.TransportPoint(),
			SpottingRate:   sp.Total(),
		})
	}
	return fr, nil
}
