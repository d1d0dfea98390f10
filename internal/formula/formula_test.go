package formula

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalcCruiserFitBonus(t *testing.T) {
	tests := []struct {
		name         string
		lightCruiser bool
		single, twin int
		zara         bool
		zaraGuns     int
		want         float64
	}{
		{"light cruiser", true, 2, 3, false, 0, math.Sqrt(2) + 2*math.Sqrt(3)},
		{"zara", false, 0, 0, true, 2, math.Sqrt(2)},
		{"both families", true, 2, 3, true, 2, math.Sqrt(2) + 2*math.Sqrt(3) + math.Sqrt(2)},
		{"no family", false, 2, 3, false, 2, 0},
		{"lc ignores zara guns", true, 0, 0, false, 4, 0},
		{"zero counts", true, 0, 0, true, 0, 0},
		{"single only", true, 4, 0, false, 0, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CalcCruiserFitBonus(tt.lightCruiser, tt.single, tt.twin, tt.zara, tt.zaraGuns)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func TestCalcCruiserFitBonus_NegativeCount(t *testing.T) {
	_, err := CalcCruiserFitBonus(true, -1, 0, false, 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNegativeCount))

	// Rejected even when the family does not apply.
	_, err = CalcCruiserFitBonus(false, 0, 0, false, -3)
	assert.True(t, errors.Is(err, ErrNegativeCount))
}

func TestFamilySet(t *testing.T) {
	s := NewFamilySet(FamilyZara, FamilyNone)

	assert.True(t, s.Has(FamilyZara))
	assert.False(t, s.Has(FamilyLightCruiser))
	assert.False(t, s.Has(FamilyNone))

	s = s.With(FamilyLightCruiser)
	assert.True(t, s.Has(FamilyLightCruiser))
	assert.Equal(t, s, s.With(FamilyLightCruiser))
}

func TestFitBonus_EveryFamilyHasCase(t *testing.T) {
	counts := GunCounts{Single: 1, Twin: 1, Zara: 1}
	for f := FamilyNone; f < familyCount; f++ {
		assert.NotPanics(t, func() { _ = familyBonus(f, counts) }, "family %s", f)
	}
}

func TestAmmoPenalty_Capacity1000(t *testing.T) {
	tests := []struct {
		current int
		want    float64
	}{
		{1000, 1},
		{500, 1},
		{499, 0.98},
		{490, 0.98},
		{489, 0.96},
		{0, 0.96},
	}

	for _, tt := range tests {
		if got := AmmoPenalty(1000, tt.current); got != tt.want {
			t.Errorf("AmmoPenalty(1000, %d) = %v, want %v", tt.current, got, tt.want)
		}
	}
}

func TestAmmoPenalty_RoundsBreakpointsDown(t *testing.T) {
	// 333 × 50% = 166.5 → 166, 333 × 49% = 163.17 → 163
	assert.Equal(t, 1.0, AmmoPenalty(333, 166))
	assert.Equal(t, 0.98, AmmoPenalty(333, 165))
	assert.Equal(t, 0.98, AmmoPenalty(333, 163))
	assert.Equal(t, 0.96, AmmoPenalty(333, 162))
}

func TestAmmoPenalty_ZeroCapacity(t *testing.T) {
	assert.Equal(t, 1.0, AmmoPenalty(0, 0))
}

func TestFleetLosModifier(t *testing.T) {
	assert.Equal(t, 20, FleetLosModifier(100))
	assert.Equal(t, 0, FleetLosModifier(0))
	assert.Equal(t, 0, FleetLosModifier(-4))
	// sqrt(50) + 5 = 12.07
	assert.Equal(t, 12, FleetLosModifier(50))
}

func TestFleetLosModifier_Monotonic(t *testing.T) {
	prev := FleetLosModifier(0)
	for s := 0.0; s <= 400; s += 0.25 {
		got := FleetLosModifier(s)
		if got < prev {
			t.Fatalf("FleetLosModifier(%v) = %d < previous %d", s, got, prev)
		}
		prev = got
	}
}

func TestTransportPointA(t *testing.T) {
	for s := 0; s <= 500; s++ {
		want := int(math.Floor(0.7 * float64(s)))
		if got := TransportPointA(s); got != want {
			t.Fatalf("TransportPointA(%d) = %d, want %d", s, got, want)
		}
	}
}

func TestPlaneFormulas(t *testing.T) {
	assert.Equal(t, 15.0, PlaneLosFactor(5, 9))
	assert.Equal(t, 10.0, PlaneLosFactor(5, 8))
	assert.Equal(t, 0.0, PlaneLosFactor(5, 0))

	assert.InDelta(t, 2*math.Sqrt(math.Sqrt(16)), AviationDetection(2, 16), 1e-12)
	assert.Equal(t, 0.0, AviationDetection(9, 0))
}

func TestImprovementFirepower(t *testing.T) {
	assert.Equal(t, 0.0, ImprovementFirepower(ImprovementStandard, 0))
	assert.Equal(t, 2.0, ImprovementFirepower(ImprovementStandard, 4))
	assert.Equal(t, 3.0, ImprovementFirepower(ImprovementLarge, 4))
	assert.Equal(t, 0.0, ImprovementFirepower(ImprovementNone, 10))
}

func TestExpeditionBonus(t *testing.T) {
	tests := []struct {
		name     string
		gears    []ExpeditionGear
		shipRate float64
		toku     int
		want     float64
	}{
		{"nothing", nil, 0, 0, 0},
		{"two daihatsu", []ExpeditionGear{{Rate: 5}, {Rate: 5}}, 0, 0, 10},
		{"capped", []ExpeditionGear{{Rate: 5}, {Rate: 5}, {Rate: 5}, {Rate: 5}, {Rate: 5}}, 0, 0, 20},
		{"ship bonus", []ExpeditionGear{{Rate: 5}}, 5, 0, 10},
		// B1 = 10, avg ★ = 5 → +0.5
		{"stars", []ExpeditionGear{{Rate: 5, Stars: 10}, {Rate: 5}}, 0, 0, 10.5},
		{"toku", []ExpeditionGear{{Rate: 5}, {Rate: 5}}, 0, 2, 14},
		{"toku capped", []ExpeditionGear{{Rate: 5}}, 0, 9, 10.4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExpeditionBonus(tt.gears, tt.shipRate, tt.toku)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestExpeditionBonus_Negative(t *testing.T) {
	_, err := ExpeditionBonus(nil, 0, -1)
	assert.True(t, errors.Is(err, ErrNegativeCount))

	_, err = ExpeditionBonus([]ExpeditionGear{{Rate: 5, Stars: -1}}, 0, 0)
	assert.True(t, errors.Is(err, ErrNegativeCount))
}
