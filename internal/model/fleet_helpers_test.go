package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	testSingleGun = &Gear{ID: 4, Name: "14cm Single Gun", Category: GearMainGunMedium, GunClass: GunClassSingle, Firepower: 2, Accuracy: 1}
	testTwinGun   = &Gear{ID: 119, Name: "14cm Twin Gun", Category: GearMainGunMedium, GunClass: GunClassTwin, Firepower: 3, Accuracy: 1}
	testZaraGun   = &Gear{ID: 162, Name: "203mm/53 Twin Gun", Category: GearMainGunMedium, GunClass: GunClassZara, Firepower: 9}
	testLargeGun  = &Gear{ID: 7, Name: "35.6cm Twin Gun", Category: GearMainGunLarge, Firepower: 15}
	testRecon     = &Gear{ID: 25, Name: "Type 0 Recon Seaplane", Category: GearSeaplaneRecon, LoS: 5, Accuracy: 1}
	testBomber    = &Gear{ID: 26, Name: "Zuiun", Category: GearSeaplaneBomber, LoS: 6, Firepower: 0}
	testBoat      = &Gear{ID: 138, Name: "Type 2 Large Flying Boat", Category: GearLargeFlyingBoat, LoS: 12}
	testDrum      = &Gear{ID: 75, Name: "Drum Canister", Category: GearTransportDrum}
	testDaihatsu  = &Gear{ID: 68, Name: "Daihatsu", Category: GearLandingCraft}
	testToku      = &Gear{ID: 193, Name: "Toku Daihatsu", Category: GearSpecialLandingCraft}
	testTank      = &Gear{ID: 166, Name: "Daihatsu (Type 89 Tank)", Category: GearTankLandingCraft}
	testRation    = &Gear{ID: 145, Name: "Combat Ration", Category: GearCombatRation}
)

var (
	testLightCruiser = &ShipBase{ID: 100, Name: "Tama", Type: ShipTypeCL, Firepower: 14, LoS: 10, Luck: 10, MaxAmmo: 25, Slots: []int{0, 0, 0}}
	testZara         = &ShipBase{ID: 358, Name: "Zara due", Type: ShipTypeCA, Class: ZaraClass, Firepower: 50, LoS: 20, Luck: 12, MaxAmmo: 65, Slots: []int{2, 2, 2, 2}}
	testDestroyer    = &ShipBase{ID: 1, Name: "Mutsuki", Type: ShipTypeDD, Firepower: 6, LoS: 4, Luck: 12, MaxAmmo: 15, Slots: []int{0, 0}}
	testSeaplaneTend = &ShipBase{ID: 102, Name: "Chitose", Type: ShipTypeAV, Firepower: 9, LoS: 34, Luck: 10, MaxAmmo: 15, Slots: []int{12, 12, 9}}
	testKinu         = &ShipBase{ID: 487, Name: "Kinu Kai Ni", Type: ShipTypeCL, Firepower: 50, LoS: 40, Luck: 20, MaxAmmo: 25, Slots: []int{0, 0, 0}, ExpeditionBonus: 5}
)

func fullAmmo(t *testing.T, base *ShipBase) ShipAmmo {
	t.Helper()
	a, err := NewShipAmmo(base.MaxAmmo)
	require.NoError(t, err)
	return a
}

func newTestShip(t *testing.T, base *ShipBase, slots ...*EquippedGear) *Ship {
	t.Helper()
	s, err := NewShip(base, slots, fullAmmo(t, base))
	require.NoError(t, err, "NewShip(%d)", base.ID)
	return s
}

func equip(g *Gear) *EquippedGear {
	return &EquippedGear{Gear: g}
}

func equipPlane(g *Gear, size int) *EquippedGear {
	return &EquippedGear{Gear: g, Size: size}
}
