package repository

import (
	"context"

	"github.com/jhoicas/asset-ledger-api/internal/domain/entity"
)

// InventoryRepository owns the asset_inventory table. Every quantity mutation in
// the system goes through Adjust, inside the same transaction as the ledger row
// that caused it.
type InventoryRepository interface {
	// Get returns the current entry, or a zero-quantity entry when none exists.
	Get(ctx context.Context, baseID, equipmentTypeID int64) (*entity.InventoryEntry, error)
	// GetForUpdate is Get with a row lock (SELECT ... FOR UPDATE) so that
	// check-then-deduct sequences are race free. An absent row yields a
	// zero-quantity entry without a lock; callers only deduct after a positive
	// availability check, which implies the row exists.
	GetForUpdate(ctx context.Context, baseID, equipmentTypeID int64) (*entity.InventoryEntry, error)
	// Adjust applies delta to the entry's quantity. A positive delta upserts
	// the row; a negative delta only updates an existing row. A row is never
	// created by a deduction alone.
	Adjust(ctx context.Context, baseID, equipmentTypeID, delta int64) error
	// List returns the ordered snapshot for the given scope.
	List(ctx context.Context, filter ScopeFilter) ([]*entity.InventoryEntry, error)
}
