package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShipAmmo_ZeroValue(t *testing.T) {
	var a ShipAmmo

	assert.Equal(t, 0, a.Max())
	assert.Equal(t, 0, a.Current())
	assert.Equal(t, 1.0, a.Penalty())
	assert.Equal(t, 1.0, a.Ratio())
}

func TestNewShipAmmo_DefaultsToFull(t *testing.T) {
	a, err := NewShipAmmo(100)
	require.NoError(t, err)

	assert.Equal(t, 100, a.Max())
	assert.Equal(t, 100, a.Current())
	assert.Equal(t, 1.0, a.Penalty())
}

func TestNewShipAmmoWithCurrent(t *testing.T) {
	a, err := NewShipAmmoWithCurrent(50, 40)
	require.NoError(t, err)

	assert.Equal(t, 50, a.Max())
	assert.Equal(t, 40, a.Current())
	assert.Equal(t, 1.0, a.Penalty())
	assert.InDelta(t, 0.8, a.Ratio(), 1e-12)
}

func TestShipAmmo_PenaltyTable(t *testing.T) {
	tests := []struct {
		current int
		want    float64
	}{
		{1000, 1},
		{500, 1},
		{499, 0.98},
		{490, 0.98},
		{489, 0.96},
	}

	for _, tt := range tests {
		a, err := NewShipAmmoWithCurrent(1000, tt.current)
		require.NoError(t, err)
		if got := a.Penalty(); got != tt.want {
			t.Errorf("Penalty() with current=%d = %v, want %v", tt.current, got, tt.want)
		}
	}
}

func TestNewShipAmmo_Invalid(t *testing.T) {
	cases := []struct{ max, current int }{
		{-1, 0},
		{10, -1},
		{10, 11},
	}
	for _, c := range cases {
		_, err := NewShipAmmoWithCurrent(c.max, c.current)
		require.Error(t, err, "max=%d current=%d", c.max, c.current)
		assert.True(t, errors.Is(err, ErrInvalidInput))
	}

	_, err := NewShipAmmo(-5)
	assert.True(t, errors.Is(err, ErrInvalidInput))
}
