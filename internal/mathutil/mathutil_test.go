package mathutil

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnionProbability(t *testing.T) {
	tests := []struct {
		name string
		ps   []float64
		want float64
	}{
		{"empty", nil, 0},
		{"single certain", []float64{1}, 1},
		{"two halves", []float64{0.5, 0.5}, 0.75},
		{"zero ignored", []float64{0, 0.3}, 0.3},
		{"certain dominates", []float64{0.1, 1, 0.2}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := UnionProbability(tt.ps)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func TestUnionProbability_OrderIndependent(t *testing.T) {
	a := UnionProbability([]float64{0.1, 0.25, 0.6})
	b := UnionProbability([]float64{0.6, 0.1, 0.25})
	assert.InDelta(t, a, b, 1e-15)
	assert.InDelta(t, 1-0.9*0.75*0.4, a, 1e-15)
}

func TestValidateProbability(t *testing.T) {
	for _, p := range []float64{0, 0.5, 1} {
		assert.NoError(t, ValidateProbability(p), "p=%v", p)
	}
	for _, p := range []float64{-0.01, 1.01, math.NaN(), math.Inf(1)} {
		err := ValidateProbability(p)
		require.Error(t, err, "p=%v", p)
		assert.True(t, errors.Is(err, ErrInvalidProbability))
	}
}

func TestRoundTo(t *testing.T) {
	tests := []struct {
		value     float64
		precision int
		want      float64
	}{
		{1.005, 2, 1.01},
		{4.006, 0, 4},
		{2.5, 0, 3},
		{-2.5, 0, -3},
		{0.5, 0, 1},
		{1.45, 1, 1.5},
		{4060, -2, 4100},
		{1234.5678, -2, 1200},
		{0, 5, 0},
		{-1.005, 2, -1.01},
		{123.456, 1000, 123.456},
	}

	for _, tt := range tests {
		got := RoundTo(tt.value, tt.precision)
		if got != tt.want {
			t.Errorf("RoundTo(%v, %d) = %v, want %v", tt.value, tt.precision, got, tt.want)
		}
	}
}

func TestRoundTo_NaiveApproachDiffers(t *testing.T) {
	naive := math.Round(1.005*100) / 100
	assert.Equal(t, 1.0, naive)
	assert.Equal(t, 1.01, RoundTo(1.005, 2))
}

func TestRandomInt_Bounds(t *testing.T) {
	assert.Equal(t, 0, RandomInt(0))
	assert.Equal(t, 0, RandomInt(-5))

	for range 1000 {
		v := RandomInt(3)
		if v < 0 || v > 3 {
			t.Fatalf("RandomInt(3) = %d, out of [0,3]", v)
		}
	}
}

func TestRandomIntFrom_CoversRange(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	seen := make(map[int]bool)
	for range 500 {
		seen[RandomIntFrom(r, 2)] = true
	}
	assert.Len(t, seen, 3)
	assert.True(t, seen[0] && seen[1] && seen[2])
}

func TestRandomIntFrom_Deterministic(t *testing.T) {
	a := rand.New(rand.NewPCG(42, 7))
	b := rand.New(rand.NewPCG(42, 7))
	for range 20 {
		assert.Equal(t, RandomIntFrom(a, 100), RandomIntFrom(b, 100))
	}
}
