package repository

import (
	"context"

	"github.com/jhoicas/asset-ledger-api/internal/domain/entity"
)

// EquipmentTypeRepository is the read-only persistence port for equipment types.
type EquipmentTypeRepository interface {
	GetByID(ctx context.Context, id int64) (*entity.EquipmentType, error)
	// List returns all equipment types, optionally restricted to one category.
	List(ctx context.Context, category string) ([]*entity.EquipmentType, error)
}
