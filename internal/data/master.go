package data

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/fleetcalc/internal/model"
)

// ErrDuplicateID is returned when master data holds two records with one ID.
var ErrDuplicateID = errors.New("duplicate master data id")

// Master is a read-only registry of gear and ship master records.
// Passed explicitly to whoever needs it; there is no package-level table.
type Master struct {
	gears map[int]*model.Gear
	ships map[int]*model.ShipBase
}

// NewMaster validates records and builds the registry.
// Records are copied; later changes to the inputs do not leak in.
func NewMaster(gears []model.Gear, ships []model.ShipBase) (*Master, error) {
	m := &Master{
		gears: make(map[int]*model.Gear, len(gears)),
		ships: make(map[int]*model.ShipBase, len(ships)),
	}

	for i := range gears {
		g := gears[i]
		if err := g.Validate(); err != nil {
			return nil, fmt.Errorf("gear #%d: %w", i, err)
		}
		if _, ok := m.gears[g.ID]; ok {
			return nil, fmt.Errorf("%w: gear %d", ErrDuplicateID, g.ID)
		}
		m.gears[g.ID] = &g
	}

	for i := range ships {
		s := ships[i]
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("ship #%d: %w", i, err)
		}
		if _, ok := m.ships[s.ID]; ok {
			return nil, fmt.Errorf("%w: ship %d", ErrDuplicateID, s.ID)
		}
		s.Slots = append([]int(nil), s.Slots...)
		m.ships[s.ID] = &s
	}

	return m, nil
}

// Gear returns the gear master record by ID.
func (m *Master) Gear(id int) (*model.Gear, bool) {
	g, ok := m.gears[id]
	return g, ok
}

// Ship returns the ship master record by ID.
func (m *Master) Ship(id int) (*model.ShipBase, bool) {
	s, ok := m.ships[id]
	return s, ok
}

// GearCount returns the number of gear records.
func (m *Master) GearCount() int { return len(m.gears) }

// ShipCount returns the number of ship records.
func (m *Master) ShipCount() int { return len(m.ships) }

// Gears returns all gear records sorted by ID.
func (m *Master) Gears() []*model.Gear {
	out := make([]*model.Gear, 0, len(m.gears))
	for _, g := range m.gears {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Ships returns all ship records sorted by ID.
func (m *Master) Ships() []*model.ShipBase {
	out := make([]*model.ShipBase, 0, len(m.ships))
	for _, s := range m.ships {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// masterFile is the YAML layout of a master data file.
type masterFile struct {
	Gears []model.Gear     `yaml:"gears"`
	Ships []model.ShipBase `yaml:"ships"`
}

// ParseMaster builds a Master from YAML.
func ParseMaster(raw []byte) (*Master, error) {
	var f masterFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parsing master data: %w", err)
	}
	return NewMaster(f.Gears, f.Ships)
}

// LoadMasterFile reads and parses a YAML master data file.
func LoadMasterFile(path string) (*Master, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading master data %s: %w", path, err)
	}
	m, err := ParseMaster(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	slog.Info("loaded master data", "path", path, "gears", m.GearCount(), "ships", m.ShipCount())
	return m, nil
}
