package formula

// Ammo penalty bands, percent of capacity.
const (
	ammoFullBandPercent = 50
	ammoLowBandPercent  = 49

	ammoLowPenalty   = 0.98
	ammoEmptyPenalty = 0.96
)

// AmmoPenalty returns the firepower multiplier for the remaining ammo.
// Breakpoints are ⌊max×50%⌋ and ⌊max×49%⌋; capacity 0 has nothing to deplete.
//
// max=1000: 500..1000 → 1, 490..499 → 0.98, ..489 → 0.96.
func AmmoPenalty(capacity, current int) float64 {
	if capacity <= 0 {
		return 1
	}
	switch {
	case current >= capacity*ammoFullBandPercent/100:
		return 1
	case current >= capacity*ammoLowBandPercent/100:
		return ammoLowPenalty
	default:
		return ammoEmptyPenalty
	}
}
