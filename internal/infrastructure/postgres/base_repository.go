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

var _ repository.BaseRepository = (*BaseRepo)(nil)

// BaseRepo reads the bases reference table.
type BaseRepo struct {
	q Querier
}

// NewBaseRepository builds the adapter. Pass a pool or a tx (Querier).
func NewBaseRepository(q Querier) *BaseRepo {
	return &BaseRepo{q: q}
}

func (r *BaseRepo) GetByID(ctx context.Context, id int64) (*entity.Base, error) {
	var b entity.Base
	err := r.q.QueryRow(ctx,
		`SELECT id, name, location FROM bases WHERE id = $1`, id,
	).Scan(&b.ID, &b.Name, &b.Location)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: base %d", domain.ErrNotFound, id)
		}
		return nil, fmt.Errorf("get base: %w", err)
	}
	return &b, nil
}

func (r *BaseRepo) List(ctx context.Context) ([]*entity.Base, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name, location FROM bases ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list bases: %w", err)
	}
	defer rows.Close()

	var out []*entity.Base
	for rows.Next() {
		var b entity.Base
		if err := rows.Scan(&b.ID, &b.Name, &b.Location); err != nil {
			return nil, fmt.Errorf("scan base: %w", err)
		}
		out = append(out, &b)
	}
	return out, rows.Err()
}
