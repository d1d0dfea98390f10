package model

import (
	"fmt"

	"github.com/udisondev/fleetcalc/internal/formula"
)

// ShipType — тип корпуса (hull type).
type ShipType uint8

const (
	ShipTypeUnknown ShipType = iota
	ShipTypeDE
	ShipTypeDD
	ShipTypeCL
	ShipTypeCLT
	ShipTypeCA
	ShipTypeCAV
	ShipTypeCVL
	ShipTypeCV
	ShipTypeCVB
	ShipTypeBB
	ShipTypeBBV
	ShipTypeFBB
	ShipTypeSS
	ShipTypeSSV
	ShipTypeAV
	ShipTypeLHA
	ShipTypeAS
	ShipTypeAR
	ShipTypeCT
	ShipTypeAO

	shipTypeCount
)

var shipTypeNames = [shipTypeCount]string{
	ShipTypeUnknown: "unknown",
	ShipTypeDE:      "de",
	ShipTypeDD:      "dd",
	ShipTypeCL:      "cl",
	ShipTypeCLT:     "clt",
	ShipTypeCA:      "ca",
	ShipTypeCAV:     "cav",
	ShipTypeCVL:     "cvl",
	ShipTypeCV:      "cv",
	ShipTypeCVB:     "cvb",
	ShipTypeBB:      "bb",
	ShipTypeBBV:     "bbv",
	ShipTypeFBB:     "fbb",
	ShipTypeSS:      "ss",
	ShipTypeSSV:     "ssv",
	ShipTypeAV:      "av",
	ShipTypeLHA:     "lha",
	ShipTypeAS:      "as",
	ShipTypeAR:      "ar",
	ShipTypeCT:      "ct",
	ShipTypeAO:      "ao",
}

// shipTypeTP — TP корпуса по типу корабля.
var shipTypeTP = map[ShipType]int{
	ShipTypeDD:  5,
	ShipTypeCL:  2,
	ShipTypeCT:  6,
	ShipTypeCAV: 4,
	ShipTypeBBV: 7,
	ShipTypeAV:  9,
	ShipTypeLHA: 12,
	ShipTypeAS:  7,
	ShipTypeSSV: 1,
	ShipTypeAO:  15,
}

// String returns the hull type key used in master data files.
func (t ShipType) String() string {
	if t < shipTypeCount {
		return shipTypeNames[t]
	}
	return fmt.Sprintf("ship_type(%d)", uint8(t))
}

// MarshalText implements encoding.TextMarshaler.
func (t ShipType) MarshalText() ([]byte, error) {
	if t >= shipTypeCount {
		return nil, fmt.Errorf("%w: ship type %d", ErrInvalidInput, uint8(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *ShipType) UnmarshalText(text []byte) error {
	for i, name := range shipTypeNames {
		if name == string(text) {
			*t = ShipType(i)
			return nil
		}
	}
	return fmt.Errorf("%w: unknown ship type %q", ErrInvalidInput, text)
}

// IsLightCruiserClass reports whether fit bonuses of light cruiser guns apply.
func (t ShipType) IsLightCruiserClass() bool {
	return t == ShipTypeCL || t == ShipTypeCLT || t == ShipTypeCT
}

// ZaraClass is the ship class name that receives the 203mm/53 fit bonus.
const ZaraClass = "Zara"

// MaxSlots — максимум слотов (5 обычных + reinforcement expansion).
const MaxSlots = 6

// ShipBase is an immutable master record of a ship at its current remodel.
// Stats are the naked (gearless) values.
type ShipBase struct {
	ID    int      `yaml:"id"`
	Name  string   `yaml:"name"`
	Type  ShipType `yaml:"type"`
	Class string   `yaml:"class,omitempty"`

	HP        int `yaml:"hp,omitempty"`
	Firepower int `yaml:"firepower,omitempty"`
	Torpedo   int `yaml:"torpedo,omitempty"`
	Armor     int `yaml:"armor,omitempty"`
	Evasion   int `yaml:"evasion,omitempty"`
	Accuracy  int `yaml:"accuracy,omitempty"`
	LoS       int `yaml:"los,omitempty"`
	Luck      int `yaml:"luck,omitempty"`
	MaxAmmo   int `yaml:"max_ammo,omitempty"`

	// Slots holds plane capacity per slot; its length is the slot count.
	Slots []int `yaml:"slots,omitempty"`

	// ExpeditionBonus is a ship-specific expedition bonus, percent.
	ExpeditionBonus float64 `yaml:"expedition_bonus,omitempty"`
}

// ClassFamilies returns the fit bonus families the ship belongs to.
func (b *ShipBase) ClassFamilies() formula.FamilySet {
	var s formula.FamilySet
	if b.Type.IsLightCruiserClass() {
		s = s.With(formula.FamilyLightCruiser)
	}
	if b.Class == ZaraClass {
		s = s.With(formula.FamilyZara)
	}
	return s
}

// TransportPoint returns the hull TP of the ship type.
func (b *ShipBase) TransportPoint() int {
	return shipTypeTP[b.Type]
}

// SlotSize returns plane capacity of slot i, 0 outside the master slot list.
func (b *ShipBase) SlotSize(i int) int {
	if i < 0 || i >= len(b.Slots) {
		return 0
	}
	return b.Slots[i]
}

// Validate checks the record is usable by the formulas.
func (b *ShipBase) Validate() error {
	if b.ID <= 0 {
		return fmt.Errorf("%w: ship id %d", ErrInvalidInput, b.ID)
	}
	if b.Type >= shipTypeCount {
		return fmt.Errorf("%w: ship %d type %d", ErrInvalidInput, b.ID, uint8(b.Type))
	}
	if b.MaxAmmo < 0 {
		return fmt.Errorf("%w: ship %d max ammo %d", ErrInvalidInput, b.ID, b.MaxAmmo)
	}
	if b.LoS < 0 || b.Luck < 0 {
		return fmt.Errorf("%w: ship %d los %d luck %d", ErrInvalidInput, b.ID, b.LoS, b.Luck)
	}
	if len(b.Slots) > MaxSlots {
		return fmt.Errorf("%w: ship %d has %d slots, max %d", ErrInvalidInput, b.ID, len(b.Slots), MaxSlots)
	}
	for i, size := range b.Slots {
		if size < 0 {
			return fmt.Errorf("%w: ship %d slot %d size %d", ErrInvalidInput, b.ID, i, size)
		}
	}
	if b.ExpeditionBonus < 0 {
		return fmt.Errorf("%w: ship %d expedition bonus %v", ErrInvalidInput, b.ID, b.ExpeditionBonus)
	}
	return nil
}
