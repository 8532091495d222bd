package repository

import (
	"context"

	"github.com/jhoicas/asset-ledger-api/internal/domain/entity"
)

// BaseRepository is the read-only persistence port for bases (reference data).
type BaseRepository interface {
	GetByID(ctx context.Context, id int64) (*entity.Base, error)
	List(ctx context.Context) ([]*entity.Base, error)
}
