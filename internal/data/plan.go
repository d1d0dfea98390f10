package data

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/fleetcalc/internal/model"
)

// PlanInput — пользовательская организация флотов (YAML).
type PlanInput struct {
	Main     int          `yaml:"main"`
	Combined bool         `yaml:"combined,omitempty"`
	Fleets   []FleetInput `yaml:"fleets"`
}

// FleetInput — один флот в PlanInput.
type FleetInput struct {
	Name  string      `yaml:"name"`
	Ships []ShipInput `yaml:"ships"`
}

// ShipInput — корабль и его экипировка.
// A nil slot entry is an empty slot.
type ShipInput struct {
	ShipID int          `yaml:"ship_id"`
	Ammo   *int         `yaml:"ammo,omitempty"` // nil = full
	Slots  []*SlotInput `yaml:"slots,omitempty"`
}

// SlotInput — снаряжение в слоте.
type SlotInput struct {
	GearID int  `yaml:"gear_id"`
	Stars  int  `yaml:"stars,omitempty"`
	Size   *int `yaml:"size,omitempty"` // nil = master slot size
}

// ParsePlan decodes a YAML plan.
func ParsePlan(raw []byte) (PlanInput, error) {
	var in PlanInput
	if err := yaml.Unmarshal(raw, &in); err != nil {
		return PlanInput{}, fmt.Errorf("parsing plan: %w", err)
	}
	return in, nil
}

// LoadPlanFile reads and decodes a YAML plan file.
func LoadPlanFile(path string) (PlanInput, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return PlanInput{}, fmt.Errorf("reading plan %s: %w", path, err)
	}
	in, err := ParsePlan(raw)
	if err != nil {
		return PlanInput{}, fmt.Errorf("%s: %w", path, err)
	}
	return in, nil
}

// BuildShip resolves master references and builds a ship.
// Unknown IDs produce *model.MissingReferenceError, never an empty slot.
func (m *Master) BuildShip(in ShipInput) (*model.Ship, error) {
	return m.buildShip(in, -1, -1)
}

func (m *Master) buildShip(in ShipInput, fleetIdx, shipIdx int) (*model.Ship, error) {
	base, ok := m.Ship(in.ShipID)
	if !ok {
		return nil, &model.MissingReferenceError{Kind: "ship", ID: in.ShipID, Fleet: fleetIdx, Ship: shipIdx, Slot: -1}
	}

	slots := make([]*model.EquippedGear, len(in.Slots))
	for i, si := range in.Slots {
		if si == nil {
			continue
		}
		g, ok := m.Gear(si.GearID)
		if !ok {
			return nil, &model.MissingReferenceError{Kind: "gear", ID: si.GearID, Fleet: fleetIdx, Ship: shipIdx, Slot: i}
		}
		size := base.SlotSize(i)
		if si.Size != nil {
			size = *si.Size
		}
		slots[i] = &model.EquippedGear{Gear: g, Stars: si.Stars, Size: size}
	}

	var (
		ammo model.ShipAmmo
		err  error
	)
	if in.Ammo != nil {
		ammo, err = model.NewShipAmmoWithCurrent(base.MaxAmmo, *in.Ammo)
	} else {
		ammo, err = model.NewShipAmmo(base.MaxAmmo)
	}
	if err != nil {
		return nil, fmt.Errorf("ship %d ammo: %w", base.ID, err)
	}

	return model.NewShip(base, slots, ammo)
}

// BuildFleet builds every ship of a fleet input.
func (m *Master) BuildFleet(in FleetInput) (*model.Fleet, error) {
	return m.buildFleet(in, -1)
}

func (m *Master) buildFleet(in FleetInput, fleetIdx int) (*model.Fleet, error) {
	ships := make([]*model.Ship, 0, len(in.Ships))
	for i, si := range in.Ships {
		s, err := m.buildShip(si, fleetIdx, i)
		if err != nil {
			return nil, fmt.Errorf("fleet %q: %w", in.Name, err)
		}
		ships = append(ships, s)
	}
	return model.NewFleet(in.Name, ships)
}

// BuildPlan builds the whole organization.
func (m *Master) BuildPlan(in PlanInput) (*model.Plan, error) {
	fleets := make([]*model.Fleet, 0, len(in.Fleets))
	for i, fi := range in.Fleets {
		f, err := m.buildFleet(fi, i)
		if err != nil {
			return nil, err
		}
		fleets = append(fleets, f)
	}
	return model.NewPlan(fleets, in.Main, in.Combined)
}
