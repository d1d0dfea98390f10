package model

import (
	"fmt"

	"github.com/udisondev/fleetcalc/internal/formula"
)

// ShipAmmo — боезапас корабля. Zero value is {max 0, current 0, penalty 1}.
type ShipAmmo struct {
	max     int
	current int
}

// NewShipAmmo creates a full ammo state: current = max.
func NewShipAmmo(capacity int) (ShipAmmo, error) {
	return NewShipAmmoWithCurrent(capacity, capacity)
}

// NewShipAmmoWithCurrent creates an ammo state with 0 ≤ current ≤ capacity.
func NewShipAmmoWithCurrent(capacity, current int) (ShipAmmo, error) {
	if capacity < 0 {
		return ShipAmmo{}, fmt.Errorf("%w: ammo max %d", ErrInvalidInput, capacity)
	}
	if current < 0 || current > capacity {
		return ShipAmmo{}, fmt.Errorf("%w: ammo current %d not in [0,%d]", ErrInvalidInput, current, capacity)
	}
	return ShipAmmo{max: capacity, current: current}, nil
}

// Max returns the ammo capacity.
func (a ShipAmmo) Max() int { return a.max }

// Current returns the remaining ammo.
func (a ShipAmmo) Current() int { return a.current }

// Penalty returns the firepower multiplier for the remaining ammo, in (0,1].
func (a ShipAmmo) Penalty() float64 {
	return formula.AmmoPenalty(a.max, a.current)
}

// Ratio returns current/max, 1 for zero capacity.
func (a ShipAmmo) Ratio() float64 {
	if a.max == 0 {
		return 1
	}
	return float64(a.current) / float64(a.max)
}
