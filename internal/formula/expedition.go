package formula

import (
	"fmt"

	"github.com/udisondev/fleetcalc/internal/mathutil"
)

// expeditionBaseCap caps the summed base rate, percent.
const expeditionBaseCap = 20.0

// tokuBonus — дополнительный бонус за количество special landing craft (0..4+).
var tokuBonus = [...]float64{0, 2, 4, 5, 5.4}

// ExpeditionGear describes one landing-craft-like gear for the expedition bonus.
type ExpeditionGear struct {
	Rate  float64 // base bonus, percent
	Stars int
}

// ExpeditionBonus returns the fleet expedition income bonus in percent.
//
//	B1    = min(20, Σ gear rate + Σ ship rate)
//	stars = B1 × 1% × average ★ of the counted gear
//	total = B1 + stars + toku(min(tokuCount, 4))
//
// Result is rounded to two decimals.
func ExpeditionBonus(gears []ExpeditionGear, shipRate float64, tokuCount int) (float64, error) {
	if tokuCount < 0 {
		return 0, fmt.Errorf("%w: toku count %d", ErrNegativeCount, tokuCount)
	}
	if shipRate < 0 {
		return 0, fmt.Errorf("%w: ship rate %v", ErrNegativeCount, shipRate)
	}

	base := shipRate
	stars := 0
	for _, g := range gears {
		if g.Rate < 0 || g.Stars < 0 {
			return 0, fmt.Errorf("%w: gear rate %v stars %d", ErrNegativeCount, g.Rate, g.Stars)
		}
		base += g.Rate
		stars += g.Stars
	}
	base = min(base, expeditionBaseCap)

	var starBonus float64
	if len(gears) > 0 {
		avg := float64(stars) / float64(len(gears))
		starBonus = base * 0.01 * avg
	}

	total := base + starBonus + tokuBonus[min(tokuCount, len(tokuBonus)-1)]
	return mathutil.RoundTo(total, 2), nil
}
