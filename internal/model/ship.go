package model

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/blake2b"

	"github.com/udisondev/fleetcalc/internal/formula"
)

// MaxStars — максимальный уровень улучшения (★10).
const MaxStars = 10

// shellingBase is the constant term of day shelling basic power.
const shellingBase = 5

// EquippedGear — снаряжение в слоте корабля. Gear is shared master data.
type EquippedGear struct {
	Gear  *Gear
	Stars int // improvement level 0..10
	Size  int // planes in the slot
}

// Ship — корабль с экипировкой и производными характеристиками.
// Derived values are computed once in NewShip from (base, slots, ammo)
// and cannot be set independently.
type Ship struct {
	base  *ShipBase
	slots []*EquippedGear // nil entry = empty slot
	ammo  ShipAmmo

	firepower      int
	torpedo        int
	accuracy       int
	los            int
	armor          int
	gunCounts      formula.GunCounts
	fitBonus       float64
	improvementFP  float64
	fleetLosFactor float64
	aviationScore  float64
	transportPoint int
	expeditionGear []formula.ExpeditionGear
	tokuCount      int
}

// NewShip builds a ship and computes its derived stats.
//
// Parameters:
//   - base: master record, required
//   - slots: equipped gear per slot, nil for empty; at most MaxSlots
//   - ammo: current ammo state
func NewShip(base *ShipBase, slots []*EquippedGear, ammo ShipAmmo) (*Ship, error) {
	if base == nil {
		return nil, fmt.Errorf("%w: ship base is nil", ErrInvalidInput)
	}
	if len(slots) > MaxSlots {
		return nil, fmt.Errorf("%w: ship %d has %d slots, max %d", ErrInvalidInput, base.ID, len(slots), MaxSlots)
	}

	s := &Ship{
		base:  base,
		slots: make([]*EquippedGear, len(slots)),
		ammo:  ammo,
	}

	for i, eq := range slots {
		if eq == nil {
			continue
		}
		if eq.Gear == nil {
			return nil, fmt.Errorf("%w: ship %d slot %d has no gear", ErrInvalidInput, base.ID, i)
		}
		if eq.Stars < 0 || eq.Stars > MaxStars {
			return nil, fmt.Errorf("%w: ship %d slot %d stars %d", ErrInvalidInput, base.ID, i, eq.Stars)
		}
		if eq.Size < 0 {
			return nil, fmt.Errorf("%w: ship %d slot %d size %d", ErrInvalidInput, base.ID, i, eq.Size)
		}
		cp := *eq
		s.slots[i] = &cp
	}

	if err := s.derive(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Ship) derive() error {
	s.firepower = s.base.Firepower
	s.torpedo = s.base.Torpedo
	s.accuracy = s.base.Accuracy
	s.los = s.base.LoS
	s.armor = s.base.Armor
	s.fleetLosFactor = float64(s.base.LoS)
	s.transportPoint = s.base.TransportPoint()

	for _, eq := range s.slots {
		if eq == nil {
			continue
		}
		g := eq.Gear
		s.firepower += g.Firepower
		s.torpedo += g.Torpedo
		s.accuracy += g.Accuracy
		s.los += g.LoS
		s.armor += g.Armor
		s.improvementFP += formula.ImprovementFirepower(g.ImprovementClass(), eq.Stars)

		switch g.GunClass {
		case GunClassSingle:
			s.gunCounts.Single++
		case GunClassTwin:
			s.gunCounts.Twin++
		case GunClassZara:
			s.gunCounts.Zara++
		}

		if g.IsReconPlane() {
			s.fleetLosFactor += formula.PlaneLosFactor(g.LoS, eq.Size)
		}
		if g.IsAviationDetectionPlane() {
			s.aviationScore += formula.AviationDetection(g.LoS, eq.Size)
		}

		s.transportPoint += g.TransportPoint()
		if rate := g.ExpeditionRate(); rate > 0 {
			s.expeditionGear = append(s.expeditionGear, formula.ExpeditionGear{Rate: rate, Stars: eq.Stars})
		}
		if g.Category == GearSpecialLandingCraft {
			s.tokuCount++
		}
	}

	fit, err := formula.FitBonus(s.base.ClassFamilies(), s.gunCounts)
	if err != nil {
		return fmt.Errorf("ship %d fit bonus: %w", s.base.ID, err)
	}
	s.fitBonus = fit
	return nil
}

// Base returns the master record.
func (s *Ship) Base() *ShipBase { return s.base }

// ID returns the master ship ID.
func (s *Ship) ID() int { return s.base.ID }

// Name returns the ship name.
func (s *Ship) Name() string { return s.base.Name }

// Ammo returns the ammo state.
func (s *Ship) Ammo() ShipAmmo { return s.ammo }

// SlotCount returns the number of slots, empty ones included.
func (s *Ship) SlotCount() int { return len(s.slots) }

// Slot returns a copy of the gear in slot i, or nil for an empty or absent slot.
func (s *Ship) Slot(i int) *EquippedGear {
	if i < 0 || i >= len(s.slots) || s.slots[i] == nil {
		return nil
	}
	cp := *s.slots[i]
	return &cp
}

// CountGear returns how many equipped gears satisfy pred.
func (s *Ship) CountGear(pred func(*Gear) bool) int {
	n := 0
	for _, eq := range s.slots {
		if eq != nil && pred(eq.Gear) {
			n++
		}
	}
	return n
}

// HasGear reports whether an equipped gear satisfies pred.
// Planes in a slot with 0 aircraft do not count.
func (s *Ship) HasGear(pred func(*Gear) bool) bool {
	for _, eq := range s.slots {
		if eq == nil || !pred(eq.Gear) {
			continue
		}
		if eq.Gear.IsAviationDetectionPlane() && eq.Size == 0 {
			continue
		}
		return true
	}
	return false
}

// Firepower returns naked firepower plus gear firepower.
func (s *Ship) Firepower() int { return s.firepower }

// Torpedo returns naked torpedo plus gear torpedo.
func (s *Ship) Torpedo() int { return s.torpedo }

// Accuracy returns naked accuracy plus gear accuracy.
func (s *Ship) Accuracy() int { return s.accuracy }

// LoS returns naked LoS plus gear LoS.
func (s *Ship) LoS() int { return s.los }

// Armor returns naked armor plus gear armor.
func (s *Ship) Armor() int { return s.armor }

// Luck returns the naked luck.
func (s *Ship) Luck() int { return s.base.Luck }

// GunCounts returns the fit bonus gun subtype counts.
func (s *Ship) GunCounts() formula.GunCounts { return s.gunCounts }

// FitBonus returns the cruiser fit bonus added to shelling power.
func (s *Ship) FitBonus() float64 { return s.fitBonus }

// ImprovementFirepower returns the summed improvement bonus of the gear.
func (s *Ship) ImprovementFirepower() float64 { return s.improvementFP }

// ShellingBasicPower returns day shelling basic power.
// Formula: firepower + Σ improvement + fit bonus + 5
func (s *Ship) ShellingBasicPower() float64 {
	return float64(s.firepower) + s.improvementFP + s.fitBonus + shellingBase
}

// ShellingPower returns basic power scaled by the ammo penalty.
// Formula: ShellingBasicPower × ammo penalty
func (s *Ship) ShellingPower() float64 {
	return s.ShellingBasicPower() * s.ammo.Penalty()
}

// FleetLosFactor returns the ship's contribution to the fleet LoS factor sum.
// Formula: naked LoS + Σ(recon plane LoS × floor(sqrt(slot)))
func (s *Ship) FleetLosFactor() float64 { return s.fleetLosFactor }

// AviationDetectionScore returns the ship's aviation detection contribution.
// Formula: Σ(plane LoS × sqrt(sqrt(slot)))
func (s *Ship) AviationDetectionScore() float64 { return s.aviationScore }

// TransportPoint returns hull TP plus gear TP.
func (s *Ship) TransportPoint() int { return s.transportPoint }

// ExpeditionGear returns the gear taking part in the expedition bonus.
func (s *Ship) ExpeditionGear() []formula.ExpeditionGear {
	out := make([]formula.ExpeditionGear, len(s.expeditionGear))
	copy(out, s.expeditionGear)
	return out
}

// SpecialLandingCraftCount returns the number of special landing craft equipped.
func (s *Ship) SpecialLandingCraftCount() int { return s.tokuCount }

// Fingerprint returns a stable key of (ship id, ammo, slot configuration).
// Consumers use it to memoize results; the core itself never caches.
func (s *Ship) Fingerprint() string {
	h, _ := blake2b.New256(nil) // nil key never fails
	var buf [8]byte
	put := func(v int) {
		binary.LittleEndian.PutUint64(buf[:], uint64(int64(v)))
		h.Write(buf[:])
	}

	put(s.base.ID)
	put(s.ammo.max)
	put(s.ammo.current)
	put(len(s.slots))
	for _, eq := range s.slots {
		if eq == nil {
			put(0)
			continue
		}
		put(eq.Gear.ID)
		put(eq.Stars)
		put(eq.Size)
	}

	sum := h.Sum(nil)
	return hex.EncodeToString(sum[:16])
}
