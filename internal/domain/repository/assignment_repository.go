package repository

import (
	"context"
	"time"

	"github.com/jhoicas/asset-ledger-api/internal/domain/entity"
)

// AssignmentRepository is the persistence port for assignments.
type AssignmentRepository interface {
	Create(ctx context.Context, a *entity.Assignment) error
	GetByID(ctx context.Context, id int64) (*entity.Assignment, error)
	GetForUpdate(ctx context.Context, id int64) (*entity.Assignment, error)
	MarkReturned(ctx context.Context, id int64, returnDate time.Time) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter LedgerFilter) ([]*entity.Assignment, error)
}
