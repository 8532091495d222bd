package repository

import (
	"context"
	"time"

	"github.com/jhoicas/asset-ledger-api/internal/domain/entity"
)

// TransferRepository is the persistence port for transfers.
type TransferRepository interface {
	Create(ctx context.Context, t *entity.Transfer) error
	GetByID(ctx context.Context, id int64) (*entity.Transfer, error)
	GetForUpdate(ctx context.Context, id int64) (*entity.Transfer, error)
	SetStatus(ctx context.Context, id int64, status string, receivedDate *time.Time, approvedBy *int64) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter LedgerFilter) ([]*entity.Transfer, error)
}
