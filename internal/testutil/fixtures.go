// Package testutil holds master data fixtures shared by tests of packages
// that consume built ships and fleets.
package testutil

import "github.com/udisondev/fleetcalc/internal/model"

// Fixtures содержит тестовые записи master data, чтобы не дублировать их в тестах.
// Records are shared pointers: tests must not modify them.
var Fixtures = struct {
	SingleGun *model.Gear
	TwinGun   *model.Gear
	ZaraGun   *model.Gear
	LargeGun  *model.Gear
	Secondary *model.Gear
	APShell   *model.Gear
	Recon     *model.Gear
	Drum      *model.Gear
	Daihatsu  *model.Gear
	Toku      *model.Gear

	LightCruiser *model.ShipBase
	HeavyCruiser *model.ShipBase
	ZaraCruiser  *model.ShipBase
	Destroyer    *model.ShipBase
}{
	SingleGun: &model.Gear{ID: 4, Name: "14cm Single Gun", Category: model.GearMainGunMedium, GunClass: model.GunClassSingle, Firepower: 2},
	TwinGun:   &model.Gear{ID: 119, Name: "14cm Twin Gun", Category: model.GearMainGunMedium, GunClass: model.GunClassTwin, Firepower: 3},
	ZaraGun:   &model.Gear{ID: 162, Name: "203mm/53 Twin Gun", Category: model.GearMainGunMedium, GunClass: model.GunClassZara, Firepower: 9},
	LargeGun:  &model.Gear{ID: 7, Name: "35.6cm Twin Gun", Category: model.GearMainGunLarge, Firepower: 15},
	Secondary: &model.Gear{ID: 12, Name: "15.5cm Triple Secondary Gun", Category: model.GearSecondaryGun, Firepower: 7},
	APShell:   &model.Gear{ID: 36, Name: "Type 91 AP Shell", Category: model.GearAPShell, Firepower: 8},
	Recon:     &model.Gear{ID: 25, Name: "Type 0 Recon Seaplane", Category: model.GearSeaplaneRecon, LoS: 5},
	Drum:      &model.Gear{ID: 75, Name: "Drum Canister", Category: model.GearTransportDrum},
	Daihatsu:  &model.Gear{ID: 68, Name: "Daihatsu Landing Craft", Category: model.GearLandingCraft},
	Toku:      &model.Gear{ID: 193, Name: "Toku Daihatsu Landing Craft", Category: model.GearSpecialLandingCraft},

	LightCruiser: &model.ShipBase{ID: 100, Name: "Tama", Type: model.ShipTypeCL, Firepower: 14, LoS: 10, Luck: 10, MaxAmmo: 25, Slots: []int{0, 0, 4}},
	HeavyCruiser: &model.ShipBase{ID: 59, Name: "Furutaka", Type: model.ShipTypeCA, Firepower: 30, LoS: 10, Luck: 10, MaxAmmo: 30, Slots: []int{2, 2, 2}},
	ZaraCruiser:  &model.ShipBase{ID: 358, Name: "Zara due", Type: model.ShipTypeCA, Class: model.ZaraClass, Firepower: 50, LoS: 20, Luck: 12, MaxAmmo: 65, Slots: []int{2, 2, 2, 2}},
	Destroyer:    &model.ShipBase{ID: 1, Name: "Mutsuki", Type: model.ShipTypeDD, Firepower: 6, LoS: 4, Luck: 12, MaxAmmo: 15, Slots: []int{0, 0}},
}
