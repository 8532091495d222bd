package repository

import (
	"context"
	"time"

	"github.com/jhoicas/asset-ledger-api/internal/domain/entity"
)

// PurchaseRepository is the persistence port for purchases.
type PurchaseRepository interface {
	Create(ctx context.Context, p *entity.Purchase) error
	GetByID(ctx context.Context, id int64) (*entity.Purchase, error)
	// GetForUpdate locks the purchase row for the duration of the transaction.
	GetForUpdate(ctx context.Context, id int64) (*entity.Purchase, error)
	SetReceived(ctx context.Context, id int64, receivedDate time.Time) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter LedgerFilter) ([]*entity.Purchase, error)
}
