package formula

import "math"

// FleetLosModifier converts the fleet LoS factor sum into the fleet modifier.
// Formula: floor(sqrt(S) + 0.1 × S)
func FleetLosModifier(sum float64) int {
	if sum <= 0 {
		return 0
	}
	return int(math.Floor(math.Sqrt(sum) + 0.1*sum))
}

// TransportPointA returns the A-rank transport point for an S-rank value.
// Formula: floor(0.7 × S)
func TransportPointA(s int) int {
	if s <= 0 {
		return 0
	}
	return s * 7 / 10
}

// PlaneLosFactor — вклад гидросамолёта в fleet LoS factor корабля.
// Formula: LoS × floor(sqrt(slotSize))
func PlaneLosFactor(los, slotSize int) float64 {
	if slotSize <= 0 {
		return 0
	}
	return float64(los) * math.Floor(math.Sqrt(float64(slotSize)))
}

// AviationDetection — вклад гидросамолёта в aviation detection score.
// Formula: LoS × sqrt(sqrt(slotSize))
func AviationDetection(los, slotSize int) float64 {
	if slotSize <= 0 {
		return 0
	}
	return float64(los) * math.Sqrt(math.Sqrt(float64(slotSize)))
}

// ImprovementClass groups gear by how improvement stars add firepower.
type ImprovementClass uint8

const (
	ImprovementNone     ImprovementClass = iota
	ImprovementStandard                  // small/medium main gun, secondary gun, AP shell
	ImprovementLarge                     // large main gun
)

// ImprovementFirepower returns the shelling bonus of a gear with stars.
// Formula: k × sqrt(★), k = 1 (standard) or 1.5 (large caliber)
func ImprovementFirepower(class ImprovementClass, stars int) float64 {
	if stars <= 0 {
		return 0
	}
	switch class {
	case ImprovementStandard:
		return math.Sqrt(float64(stars))
	case ImprovementLarge:
		return 1.5 * math.Sqrt(float64(stars))
	default:
		return 0
	}
}
