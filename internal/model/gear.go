package model

import (
	"fmt"

	"github.com/udisondev/fleetcalc/internal/formula"
)

// GearCategory — категория снаряжения (closed set).
type GearCategory uint8

const (
	GearOther GearCategory = iota
	GearMainGunSmall
	GearMainGunMedium
	GearMainGunLarge
	GearSecondaryGun
	GearTorpedo
	GearRadar
	GearAPShell
	GearSeaplaneRecon
	GearSeaplaneBomber
	GearLargeFlyingBoat
	GearLandingCraft
	GearSpecialLandingCraft
	GearTankLandingCraft
	GearAmphibiousTank
	GearTransportDrum
	GearCombatRation

	gearCategoryCount
)

var gearCategoryNames = [gearCategoryCount]string{
	GearOther:               "other",
	GearMainGunSmall:        "main_gun_small",
	GearMainGunMedium:       "main_gun_medium",
	GearMainGunLarge:        "main_gun_large",
	GearSecondaryGun:        "secondary_gun",
	GearTorpedo:             "torpedo",
	GearRadar:               "radar",
	GearAPShell:             "ap_shell",
	GearSeaplaneRecon:       "seaplane_recon",
	GearSeaplaneBomber:      "seaplane_bomber",
	GearLargeFlyingBoat:     "large_flying_boat",
	GearLandingCraft:        "landing_craft",
	GearSpecialLandingCraft: "special_landing_craft",
	GearTankLandingCraft:    "tank_landing_craft",
	GearAmphibiousTank:      "amphibious_tank",
	GearTransportDrum:       "transport_drum",
	GearCombatRation:        "combat_ration",
}

// String returns the category key used in master data files.
func (c GearCategory) String() string {
	if c < gearCategoryCount {
		return gearCategoryNames[c]
	}
	return fmt.Sprintf("category(%d)", uint8(c))
}

// MarshalText implements encoding.TextMarshaler.
func (c GearCategory) MarshalText() ([]byte, error) {
	if c >= gearCategoryCount {
		return nil, fmt.Errorf("%w: gear category %d", ErrInvalidInput, uint8(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *GearCategory) UnmarshalText(text []byte) error {
	for i, name := range gearCategoryNames {
		if name == string(text) {
			*c = GearCategory(i)
			return nil
		}
	}
	return fmt.Errorf("%w: unknown gear category %q", ErrInvalidInput, text)
}

// GunClass — подтип орудия, участвующий в fit bonus.
type GunClass uint8

const (
	GunClassNone GunClass = iota
	GunClassSingle
	GunClassTwin
	GunClassZara

	gunClassCount
)

var gunClassNames = [gunClassCount]string{
	GunClassNone:   "",
	GunClassSingle: "single",
	GunClassTwin:   "twin",
	GunClassZara:   "zara",
}

// String returns the gun class key ("" for none).
func (g GunClass) String() string {
	if g < gunClassCount {
		return gunClassNames[g]
	}
	return fmt.Sprintf("gun_class(%d)", uint8(g))
}

// MarshalText implements encoding.TextMarshaler.
func (g GunClass) MarshalText() ([]byte, error) {
	if g >= gunClassCount {
		return nil, fmt.Errorf("%w: gun class %d", ErrInvalidInput, uint8(g))
	}
	return []byte(g.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (g *GunClass) UnmarshalText(text []byte) error {
	for i, name := range gunClassNames {
		if name == string(text) {
			*g = GunClass(i)
			return nil
		}
	}
	return fmt.Errorf("%w: unknown gun class %q", ErrInvalidInput, text)
}

// Gear is an immutable master record of an equipment.
// Shared between ships, never modified after load.
type Gear struct {
	ID       int          `yaml:"id"`
	Name     string       `yaml:"name"`
	Category GearCategory `yaml:"category"`
	GunClass GunClass     `yaml:"gun_class,omitempty"`

	Firepower int `yaml:"firepower,omitempty"`
	Torpedo   int `yaml:"torpedo,omitempty"`
	AntiAir   int `yaml:"anti_air,omitempty"`
	Armor     int `yaml:"armor,omitempty"`
	Accuracy  int `yaml:"accuracy,omitempty"`
	Evasion   int `yaml:"evasion,omitempty"`
	ASW       int `yaml:"asw,omitempty"`
	LoS       int `yaml:"los,omitempty"`
}

// IsMainGun reports whether the gear is a main gun of any caliber.
func (g *Gear) IsMainGun() bool {
	switch g.Category {
	case GearMainGunSmall, GearMainGunMedium, GearMainGunLarge:
		return true
	}
	return false
}

// IsReconPlane reports whether the gear enables artillery spotting
// and counts toward the fleet LoS factor.
func (g *Gear) IsReconPlane() bool {
	return g.Category == GearSeaplaneRecon || g.Category == GearSeaplaneBomber
}

// IsAviationDetectionPlane reports whether the gear counts toward aviation detection.
func (g *Gear) IsAviationDetectionPlane() bool {
	return g.IsReconPlane() || g.Category == GearLargeFlyingBoat
}

// ImprovementClass returns how improvement stars of this gear add firepower.
func (g *Gear) ImprovementClass() formula.ImprovementClass {
	switch g.Category {
	case GearMainGunSmall, GearMainGunMedium, GearSecondaryGun, GearAPShell:
		return formula.ImprovementStandard
	case GearMainGunLarge:
		return formula.ImprovementLarge
	default:
		return formula.ImprovementNone
	}
}

// TransportPoint — TP, который даёт снаряжение.
func (g *Gear) TransportPoint() int {
	switch g.Category {
	case GearTransportDrum:
		return 5
	case GearLandingCraft, GearSpecialLandingCraft:
		return 8
	case GearTankLandingCraft, GearAmphibiousTank:
		return 2
	case GearCombatRation:
		return 1
	default:
		return 0
	}
}

// ExpeditionRate returns the base expedition bonus of the gear, percent.
// Zero means the gear does not take part in the expedition bonus.
func (g *Gear) ExpeditionRate() float64 {
	switch g.Category {
	case GearLandingCraft, GearSpecialLandingCraft:
		return 5
	case GearTankLandingCraft:
		return 2
	case GearAmphibiousTank:
		return 1
	default:
		return 0
	}
}

// Validate checks the record is usable by the formulas.
func (g *Gear) Validate() error {
	if g.ID <= 0 {
		return fmt.Errorf("%w: gear id %d", ErrInvalidInput, g.ID)
	}
	if g.Category >= gearCategoryCount {
		return fmt.Errorf("%w: gear %d category %d", ErrInvalidInput, g.ID, uint8(g.Category))
	}
	if g.GunClass >= gunClassCount {
		return fmt.Errorf("%w: gear %d gun class %d", ErrInvalidInput, g.ID, uint8(g.GunClass))
	}
	return nil
}
