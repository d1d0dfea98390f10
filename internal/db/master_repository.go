package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/fleetcalc/internal/data"
	"github.com/udisondev/fleetcalc/internal/model"
)

// MasterRepository читает и пишет master data (gears, ships) в PostgreSQL.
type MasterRepository struct {
	pool *pgxpool.Pool
}

// NewMasterRepository создаёт новый MasterRepository.
func NewMasterRepository(pool *pgxpool.Pool) *MasterRepository {
	return &MasterRepository{pool: pool}
}

// LoadGears загружает все gear master records.
func (r *MasterRepository) LoadGears(ctx context.Context) ([]model.Gear, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, category, gun_class, firepower, torpedo, anti_air,
		       armor, accuracy, evasion, asw, los
		FROM gears
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("querying gears: %w", err)
	}
	defer rows.Close()

	gears := make([]model.Gear, 0, 256)
	for rows.Next() {
		var (
			g        model.Gear
			category string
			gunClass string
		)
		if err := rows.Scan(
			&g.ID, &g.Name, &category, &gunClass, &g.Firepower, &g.Torpedo, &g.AntiAir,
			&g.Armor, &g.Accuracy, &g.Evasion, &g.ASW, &g.LoS,
		); err != nil {
			return nil, fmt.Errorf("scanning gear row: %w", err)
		}
		if err := g.Category.UnmarshalText([]byte(category)); err != nil {
			return nil, fmt.Errorf("gear %d: %w", g.ID, err)
		}
		if err := g.GunClass.UnmarshalText([]byte(gunClass)); err != nil {
			return nil, fmt.Errorf("gear %d: %w", g.ID, err)
		}
		gears = append(gears, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating gear rows: %w", err)
	}

	return gears, nil
}

// LoadShips загружает все ship master records вместе со слотами.
func (r *MasterRepository) LoadShips(ctx context.Context) ([]model.ShipBase, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, type, class, hp, firepower, torpedo, armor, evasion,
		       accuracy, los, luck, max_ammo, expedition_bonus
		FROM ships
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("querying ships: %w", err)
	}
	defer rows.Close()

	ships := make([]model.ShipBase, 0, 256)
	index := make(map[int]int, 256)
	for rows.Next() {
		var (
			s        model.ShipBase
			shipType string
		)
		if err := rows.Scan(
			&s.ID, &s.Name, &shipType, &s.Class, &s.HP, &s.Firepower, &s.Torpedo, &s.Armor, &s.Evasion,
			&s.Accuracy, &s.LoS, &s.Luck, &s.MaxAmmo, &s.ExpeditionBonus,
		); err != nil {
			return nil, fmt.Errorf("scanning ship row: %w", err)
		}
		if err := s.Type.UnmarshalText([]byte(shipType)); err != nil {
			return nil, fmt.Errorf("ship %d: %w", s.ID, err)
		}
		index[s.ID] = len(ships)
		ships = append(ships, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating ship rows: %w", err)
	}

	if err := r.loadSlots(ctx, ships, index); err != nil {
		return nil, err
	}
	return ships, nil
}

func (r *MasterRepository) loadSlots(ctx context.Context, ships []model.ShipBase, index map[int]int) error {
	rows, err := r.pool.Query(ctx, `
		SELECT ship_id, slot_index, size
		FROM ship_slots
		ORDER BY ship_id, slot_index
	`)
	if err != nil {
		return fmt.Errorf("querying ship slots: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var shipID, slotIdx, size int
		if err := rows.Scan(&shipID, &slotIdx, &size); err != nil {
			return fmt.Errorf("scanning ship slot row: %w", err)
		}
		i, ok := index[shipID]
		if !ok {
			continue // FK guarantees the ship exists; ignore rows racing a delete
		}
		if slotIdx != len(ships[i].Slots) {
			return fmt.Errorf("ship %d: slot %d out of sequence", shipID, slotIdx)
		}
		ships[i].Slots = append(ships[i].Slots, size)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating ship slot rows: %w", err)
	}
	return nil
}

// LoadMaster загружает gears и ships и строит data.Master.
func (r *MasterRepository) LoadMaster(ctx context.Context) (*data.Master, error) {
	gears, err := r.LoadGears(ctx)
	if err != nil {
		return nil, err
	}
	ships, err := r.LoadShips(ctx)
	if err != nil {
		return nil, err
	}

	m, err := data.NewMaster(gears, ships)
	if err != nil {
		return nil, fmt.Errorf("building master data: %w", err)
	}
	slog.Info("loaded master data", "source", "postgres", "gears", m.GearCount(), "ships", m.ShipCount())
	return m, nil
}

// SaveGear вставляет или обновляет gear.
func (r *MasterRepository) SaveGear(ctx context.Context, g model.Gear) error {
	if err := g.Validate(); err != nil {
		return err
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO gears (id, name, category, gun_class, firepower, torpedo, anti_air,
		                   armor, accuracy, evasion, asw, los)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name, category = EXCLUDED.category, gun_class = EXCLUDED.gun_class,
			firepower = EXCLUDED.firepower, torpedo = EXCLUDED.torpedo, anti_air = EXCLUDED.anti_air,
			armor = EXCLUDED.armor, accuracy = EXCLUDED.accuracy, evasion = EXCLUDED.evasion,
			asw = EXCLUDED.asw, los = EXCLUDED.los
	`,
		g.ID, g.Name, g.Category.String(), g.GunClass.String(), g.Firepower, g.Torpedo, g.AntiAir,
		g.Armor, g.Accuracy, g.Evasion, g.ASW, g.LoS,
	)
	if err != nil {
		return fmt.Errorf("saving gear %d: %w", g.ID, err)
	}
	return nil
}

// SaveShip вставляет или обновляет ship и заменяет его слоты (в одной транзакции).
func (r *MasterRepository) SaveShip(ctx context.Context, s model.ShipBase) error {
	if err := s.Validate(); err != nil {
		return err
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction for ship %d: %w", s.ID, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx, `
		INSERT INTO ships (id, name, type, class, hp, firepower, torpedo, armor, evasion,
		                   accuracy, los, luck, max_ammo, expedition_bonus)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name, type = EXCLUDED.type, class = EXCLUDED.class, hp = EXCLUDED.hp,
			firepower = EXCLUDED.firepower, torpedo = EXCLUDED.torpedo, armor = EXCLUDED.armor,
			evasion = EXCLUDED.evasion, accuracy = EXCLUDED.accuracy, los = EXCLUDED.los,
			luck = EXCLUDED.luck, max_ammo = EXCLUDED.max_ammo, expedition_bonus = EXCLUDED.expedition_bonus
	`,
		s.ID, s.Name, s.Type.String(), s.Class, s.HP, s.Firepower, s.Torpedo, s.Armor, s.Evasion,
		s.Accuracy, s.LoS, s.Luck, s.MaxAmmo, s.ExpeditionBonus,
	)
	if err != nil {
		return fmt.Errorf("saving ship %d: %w", s.ID, err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM ship_slots WHERE ship_id = $1`, s.ID); err != nil {
		return fmt.Errorf("clearing slots of ship %d: %w", s.ID, err)
	}

	batch := &pgx.Batch{}
	for i, size := range s.Slots {
		batch.Queue(`INSERT INTO ship_slots (ship_id, slot_index, size) VALUES ($1, $2, $3)`, s.ID, i, size)
	}
	if batch.Len() > 0 {
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("saving slots of ship %d: %w", s.ID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing ship %d: %w", s.ID, err)
	}
	return nil
}
