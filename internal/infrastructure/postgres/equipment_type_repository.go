package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/asset-ledger-api/internal/domain"
	"github.com/jhoicas/asset-ledger-api/internal/domain/entity"
	"github.com/jhoicas/asset-ledger-api/internal/domain/repository"
)

var _ repository.EquipmentTypeRepository = (*EquipmentTypeRepo)(nil)

// EquipmentTypeRepo reads the equipment_types reference table.
type EquipmentTypeRepo struct {
	q Querier
}

// NewEquipmentTypeRepository builds the adapter. Pass a pool or a tx (Querier).
func NewEquipmentTypeRepository(q Querier) *EquipmentTypeRepo {
	return &EquipmentTypeRepo{q: q}
}

func (r *EquipmentTypeRepo) GetByID(ctx context.Context, id int64) (*entity.EquipmentType, error) {
	var e entity.EquipmentType
	err := r.q.QueryRow(ctx,
		`SELECT id, name, category, unit_of_measure FROM equipment_types WHERE id = $1`, id,
	).Scan(&e.ID, &e.Name, &e.Category, &e.UnitOfMeasure)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: equipment type %d", domain.ErrNotFound, id)
		}
		return nil, fmt.Errorf("get equipment type: %w", err)
	}
	return &e, nil
}

func (r *EquipmentTypeRepo) List(ctx context.Context, category string) ([]*entity.EquipmentType, error) {
	query := `SELECT id, name, category, unit_of_measure FROM equipment_types`
	args := []any{}
	if category != "" {
		query += ` WHERE category = $1`
		args = append(args, category)
	}
	query += ` ORDER BY category, name`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list equipment types: %w", err)
	}
	defer rows.Close()

	var out []*entity.EquipmentType
	for rows.Next() {
		var e entity.EquipmentType
		if err := rows.Scan(&e.ID, &e.Name, &e.Category, &e.UnitOfMeasure); err != nil {
			return nil, fmt.Errorf("scan equipment type: %w", err)
		}
		out = append(out, &e)
	}
	return out, rows.Err()
}
