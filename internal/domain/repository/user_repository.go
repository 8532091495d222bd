package repository

import (
	"context"

	"github.com/jhoicas/asset-ledger-api/internal/domain/entity"
)

// UserRepository is the persistence port for users.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	List(ctx context.Context) ([]*entity.User, error)
}
