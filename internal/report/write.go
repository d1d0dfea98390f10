package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/udisondev/fleetcalc/internal/mathutil"
)

// Write renders the report as aligned text.
func Write(w io.Writer, r PlanReport) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	for i, f := range r.Fleets {
		marker := ""
		if i == r.Main {
			marker = " (main)"
		}
		fmt.Fprintf(tw, "Fleet %d: %s%s\n", i+1, f.Name, marker)
		fmt.Fprintln(tw, "  Ship\tFP\tFit\tAmmo\tShelling\tLoS factor\tTP\tSpotting\tKey")
		for _, s := range f.Ships {
			fmt.Fprintf(tw, "  %s\t%d\t%v\t%v\t%v\t%v\t%d\t%v%%\t%s\n",
				s.Name,
				s.Firepower,
				mathutil.RoundTo(s.FitBonus, 2),
				s.AmmoPenalty,
				mathutil.RoundTo(s.ShellingPower, 2),
				mathutil.RoundTo(s.FleetLosFactor, 2),
				s.TransportPoint,
				mathutil.RoundTo(s.SpottingRate*100, 1),
				s.Fingerprint,
			)
		}
		fmt.Fprintf(tw, "  LoS modifier: %d\n", f.LosModifier)
		fmt.Fprintf(tw, "  Aviation detection: %v\n", mathutil.RoundTo(f.AviationDetectionScore, 2))
		fmt.Fprintf(tw, "  TP: S %d / A %d\n", f.TransportPoint.S, f.TransportPoint.A)
		fmt.Fprintf(tw, "  Expedition bonus: %v%%\n\n", f.ExpeditionBonus)
	}
	fmt.Fprintf(tw, "Plan TP: S %d / A %d\n", r.TransportPoint.S, r.TransportPoint.A)

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}
