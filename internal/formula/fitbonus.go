// Package formula holds the pure numeric formulas of the stat pipeline.
// Functions take plain numbers, never model types, so model can build on them.
package formula

import (
	"errors"
	"fmt"
	"math"
)

// ErrNegativeCount is returned when a gear count or capacity is negative.
var ErrNegativeCount = errors.New("negative count")

// ShipClassFamily — семейство классов корабля, определяющее формулу fit bonus.
type ShipClassFamily uint8

const (
	FamilyNone ShipClassFamily = iota
	FamilyLightCruiser
	FamilyZara

	familyCount
)

// String returns the family name.
func (f ShipClassFamily) String() string {
	switch f {
	case FamilyNone:
		return "none"
	case FamilyLightCruiser:
		return "light_cruiser"
	case FamilyZara:
		return "zara"
	default:
		return fmt.Sprintf("family(%d)", uint8(f))
	}
}

// FamilySet is a set of class families. A ship may belong to several.
type FamilySet uint8

// NewFamilySet returns a set containing families. FamilyNone is ignored.
func NewFamilySet(families ...ShipClassFamily) FamilySet {
	var s FamilySet
	for _, f := range families {
		s = s.With(f)
	}
	return s
}

// With returns s plus f.
func (s FamilySet) With(f ShipClassFamily) FamilySet {
	if f == FamilyNone || f >= familyCount {
		return s
	}
	return s | 1<<f
}

// Has reports whether f is in the set.
func (s FamilySet) Has(f ShipClassFamily) bool {
	return f != FamilyNone && f < familyCount && s&(1<<f) != 0
}

// GunCounts — количество установленных орудий каждого подтипа, участвующего в fit bonus.
type GunCounts struct {
	Single int // single-mount light cruiser guns
	Twin   int // twin-mount light cruiser guns
	Zara   int // 203mm/53 twin guns
}

func (c GunCounts) validate() error {
	if c.Single < 0 || c.Twin < 0 || c.Zara < 0 {
		return fmt.Errorf("%w: single=%d twin=%d zara=%d", ErrNegativeCount, c.Single, c.Twin, c.Zara)
	}
	return nil
}

// FitBonus returns the additive firepower bonus for gun subtype combinations.
// Each family in the set contributes its own term; terms add up.
func FitBonus(families FamilySet, counts GunCounts) (float64, error) {
	if err := counts.validate(); err != nil {
		return 0, err
	}

	var bonus float64
	for f := FamilyNone + 1; f < familyCount; f++ {
		if families.Has(f) {
			bonus += familyBonus(f, counts)
		}
	}
	return bonus, nil
}

// familyBonus holds one case per family. A new family adds a case here.
func familyBonus(f ShipClassFamily, c GunCounts) float64 {
	switch f {
	case FamilyLightCruiser:
		// Formula: sqrt(single) + 2 × sqrt(twin)
		return math.Sqrt(float64(c.Single)) + 2*math.Sqrt(float64(c.Twin))
	case FamilyZara:
		// Formula: sqrt(zara)
		return math.Sqrt(float64(c.Zara))
	case FamilyNone:
		return 0
	default:
		panic(fmt.Sprintf("formula: no fit bonus case for %s", f))
	}
}

// CalcCruiserFitBonus is FitBonus over explicit class flags.
func CalcCruiserFitBonus(isLightCruiserClass bool, singleGunCount, twinGunCount int, isZaraClass bool, zaraGunCount int) (float64, error) {
	var families FamilySet
	if isLightCruiserClass {
		families = families.With(FamilyLightCruiser)
	}
	if isZaraClass {
		families = families.With(FamilyZara)
	}
	return FitBonus(families, GunCounts{
		Single: singleGunCount,
		Twin:   twinGunCount,
		Zara:   zaraGunCount,
	})
}
