package repository

import (
	"context"

	"github.com/jhoicas/asset-ledger-api/internal/domain/entity"
)

// ExpenditureRepository is the persistence port for expenditures.
type ExpenditureRepository interface {
	Create(ctx context.Context, e *entity.Expenditure) error
	GetByID(ctx context.Context, id int64) (*entity.Expenditure, error)
	GetForUpdate(ctx context.Context, id int64) (*entity.Expenditure, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter LedgerFilter) ([]*entity.Expenditure, error)
}
