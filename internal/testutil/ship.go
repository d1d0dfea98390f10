package testutil

import (
	"testing"

	"github.com/udisondev/fleetcalc/internal/model"
)

// Equip returns a slot with gear g at ★0 and no aircraft.
func Equip(g *model.Gear) *model.EquippedGear {
	return &model.EquippedGear{Gear: g}
}

// EquipStars returns a slot with gear g improved to stars.
func EquipStars(g *model.Gear, stars int) *model.EquippedGear {
	return &model.EquippedGear{Gear: g, Stars: stars}
}

// EquipPlane returns a plane slot carrying size aircraft.
func EquipPlane(g *model.Gear, size int) *model.EquippedGear {
	return &model.EquippedGear{Gear: g, Size: size}
}

// NewShip builds a ship with full ammo and fails the test on error.
func NewShip(tb testing.TB, base *model.ShipBase, slots ...*model.EquippedGear) *model.Ship {
	tb.Helper()
	ammo, err := model.NewShipAmmo(base.MaxAmmo)
	if err != nil {
		tb.Fatalf("ammo for ship %d: %v", base.ID, err)
	}
	return newShip(tb, base, ammo, slots)
}

// NewShipWithAmmo builds a ship with current ammo and fails the test on error.
func NewShipWithAmmo(tb testing.TB, base *model.ShipBase, current int, slots ...*model.EquippedGear) *model.Ship {
	tb.Helper()
	ammo, err := model.NewShipAmmoWithCurrent(base.MaxAmmo, current)
	if err != nil {
		tb.Fatalf("ammo for ship %d: %v", base.ID, err)
	}
	return newShip(tb, base, ammo, slots)
}

func newShip(tb testing.TB, base *model.ShipBase, ammo model.ShipAmmo, slots []*model.EquippedGear) *model.Ship {
	tb.Helper()
	s, err := model.NewShip(base, slots, ammo)
	if err != nil {
		tb.Fatalf("building ship %d: %v", base.ID, err)
	}
	return s
}

// NewFleet builds a fleet and fails the test on error.
func NewFleet(tb testing.TB, name string, ships ...*model.Ship) *model.Fleet {
	tb.Helper()
	f, err := model.NewFleet(name, ships)
	if err != nil {
		tb.Fatalf("building fleet %q: %v", name, err)
	}
	return f
}
