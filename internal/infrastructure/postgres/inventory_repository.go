package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/asset-ledger-api/internal/domain"
	"github.com/jhoicas/asset-ledger-api/internal/domain/entity"
	"github.com/jhoicas/asset-ledger-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo owns the asset_inventory table.
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository builds the adapter. Pass a pool or a tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

func (r *InventoryRepo) get(ctx context.Context, baseID, equipmentTypeID int64, lock bool) (*entity.InventoryEntry, error) {
	query := `
		SELECT base_id, equipment_type_id, quantity, last_updated
		FROM asset_inventory WHERE base_id = $1 AND equipment_type_id = $2`
	if lock {
		query += ` FOR UPDATE`
	}
	var e entity.InventoryEntry
	err := r.q.QueryRow(ctx, query, baseID, equipmentTypeID).Scan(
		&e.BaseID, &e.EquipmentTypeID, &e.Quantity, &e.LastUpdated,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Absent row reads as zero stock. No lock is taken; deductions
			// only follow a positive availability check, so the row exists
			// whenever one matters.
			return &entity.InventoryEntry{
				BaseID:          baseID,
				EquipmentTypeID: equipmentTypeID,
				Quantity:        0,
				LastUpdated:     time.Now(),
			}, nil
		}
		return nil, fmt.Errorf("get inventory: %w", err)
	}
	return &e, nil
}

func (r *InventoryRepo) Get(ctx context.Context, baseID, equipmentTypeID int64) (*entity.InventoryEntry, error) {
	return r.get(ctx, baseID, equipmentTypeID, false)
}

// GetForUpdate locks the entry row for the rest of the transaction.
func (r *InventoryRepo) GetForUpdate(ctx context.Context, baseID, equipmentTypeID int64) (*entity.InventoryEntry, error) {
	return r.get(ctx, baseID, equipmentTypeID, true)
}

// Adjust applies delta to the entry. A positive delta upserts; a negative one
// updates only rows holding enough stock, so the quantity can never go below
// zero even if a caller skipped its availability check.
func (r *InventoryRepo) Adjust(ctx context.Context, baseID, equipmentTypeID, delta int64) error {
	if delta >= 0 {
		_, err := r.q.Exec(ctx, `
			INSERT INTO asset_inventory (base_id, equipment_type_id, quantity, last_updated)
			VALUES ($1, $2, $3, now())
			ON CONFLICT (base_id, equipment_type_id)
			DO UPDATE SET quantity = asset_inventory.quantity + EXCLUDED.quantity, last_updated = now()`,
			baseID, equipmentTypeID, delta)
		if err != nil {
			return fmt.Errorf("credit inventory: %w", err)
		}
		return nil
	}

	cmd, err := r.q.Exec(ctx, `
		UPDATE asset_inventory
		SET quantity = quantity + $3, last_updated = now()
		WHERE base_id = $1 AND equipment_type_id = $2 AND quantity >= -$3`,
		baseID, equipmentTypeID, delta)
	if err != nil {
		return fmt.Errorf("deduct inventory: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%w: base %d, equipment type %d", domain.ErrInsufficientInventory, baseID, equipmentTypeID)
	}
	return nil
}

func (r *InventoryRepo) List(ctx context.Context, filter repository.ScopeFilter) ([]*entity.InventoryEntry, error) {
	query := `
		SELECT base_id, equipment_type_id, quantity, last_updated
		FROM asset_inventory`
	wb := &whereBuilder{}
	if filter.BaseID != nil {
		wb.add(`base_id = $%d`, *filter.BaseID)
	}
	if filter.EquipmentTypeID != nil {
		wb.add(`equipment_type_id = $%d`, *filter.EquipmentTypeID)
	}
	query += wb.clause() + ` ORDER BY base_id, equipment_type_id`

	rows, err := r.q.Query(ctx, query, wb.args...)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()

	var out []*entity.InventoryEntry
	for rows.Next() {
		var e entity.InventoryEntry
		if err := rows.Scan(&e.BaseID, &e.EquipmentTypeID, &e.Quantity, &e.LastUpdated); err != nil {
			return nil, fmt.Errorf("scan inventory: %w", err)
		}
		out = append(out, &e)
	}
	return out, rows.Err()
}
