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

var _ repository.ExpenditureRepository = (*ExpenditureRepo)(nil)

const expenditureColumns = `id, base_id, equipment_type_id, quantity, expended_date,
	reason, authorized_by, created_by, notes, created_at`

// ExpenditureRepo persists expenditures.
type ExpenditureRepo struct {
	q Querier
}

// NewExpenditureRepository builds the adapter. Pass a pool or a tx (Querier).
func NewExpenditureRepository(q Querier) *ExpenditureRepo {
	return &ExpenditureRepo{q: q}
}

func scanExpenditure(row pgx.Row) (*entity.Expenditure, error) {
	var e entity.Expenditure
	err := row.Scan(&e.ID, &e.BaseID, &e.EquipmentTypeID, &e.Quantity, &e.ExpendedDate,
		&e.Reason, &e.AuthorizedBy, &e.CreatedBy, &e.Notes, &e.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *ExpenditureRepo) Create(ctx context.Context, e *entity.Expenditure) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO expenditures (base_id, equipment_type_id, quantity, expended_date,
			reason, authorized_by, created_by, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at`,
		e.BaseID, e.EquipmentTypeID, e.Quantity, e.ExpendedDate,
		e.Reason, e.AuthorizedBy, e.CreatedBy, e.Notes,
	).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert expenditure: %w", err)
	}
	return nil
}

func (r *ExpenditureRepo) getByID(ctx context.Context, id int64, lock bool) (*entity.Expenditure, error) {
	query := `SELECT ` + expenditureColumns + ` FROM expenditures WHERE id = $1`
	if lock {
		query += ` FOR UPDATE`
	}
	e, err := scanExpenditure(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: expenditure %d", domain.ErrNotFound, id)
		}
		return nil, fmt.Errorf("get expenditure: %w", err)
	}
	return e, nil
}

func (r *ExpenditureRepo) GetByID(ctx context.Context, id int64) (*entity.Expenditure, error) {
	return r.getByID(ctx, id, false)
}

func (r *ExpenditureRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Expenditure, error) {
	return r.getByID(ctx, id, true)
}

func (r *ExpenditureRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM expenditures WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete expenditure: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%w: expenditure %d", domain.ErrNotFound, id)
	}
	return nil
}

func (r *ExpenditureRepo) List(ctx context.Context, filter repository.LedgerFilter) ([]*entity.Expenditure, error) {
	wb := &whereBuilder{}
	if filter.BaseID != nil {
		wb.add(`base_id = $%d`, *filter.BaseID)
	}
	if filter.EquipmentTypeID != nil {
		wb.add(`equipment_type_id = $%d`, *filter.EquipmentTypeID)
	}
	if filter.From != nil {
		wb.add(`expended_date >= $%d`, *filter.From)
	}
	if filter.To != nil {
		wb.add(`expended_date <= $%d`, *filter.To)
	}

	query := `SELECT ` + expenditureColumns + ` FROM expenditures` + wb.clause() +
		` ORDER BY expended_date DESC, id DESC`
	rows, err := r.q.Query(ctx, query, wb.args...)
	if err != nil {
		return nil, fmt.Errorf("list expenditures: %w", err)
	}
	defer rows.Close()

	var out []*entity.Expenditure
	for rows.Next() {
		e, err := scanExpenditure(rows)
		if err != nil {
			return nil, fmt.Errorf("scan expenditure: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
