package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/asset-ledger-api/internal/domain"
	"github.com/jhoicas/asset-ledger-api/internal/domain/entity"
	"github.com/jhoicas/asset-ledger-api/internal/domain/repository"
)

var _ repository.AssignmentRepository = (*AssignmentRepo)(nil)

const assignmentColumns = `id, base_id, equipment_type_id, quantity, assigned_to,
	assigned_date, return_date, purpose, status, created_by, created_at`

// AssignmentRepo persists assignments.
type AssignmentRepo struct {
	q Querier
}

// NewAssignmentRepository builds the adapter. Pass a pool or a tx (Querier).
func NewAssignmentRepository(q Querier) *AssignmentRepo {
	return &AssignmentRepo{q: q}
}

func scanAssignment(row pgx.Row) (*entity.Assignment, error) {
	var a entity.Assignment
	err := row.Scan(&a.ID, &a.BaseID, &a.EquipmentTypeID, &a.Quantity, &a.AssignedTo,
		&a.AssignedDate, &a.ReturnDate, &a.Purpose, &a.Status, &a.CreatedBy, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AssignmentRepo) Create(ctx context.Context, a *entity.Assignment) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO assignments (base_id, equipment_type_id, quantity, assigned_to,
			assigned_date, purpose, status, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at`,
		a.BaseID, a.EquipmentTypeID, a.Quantity, a.AssignedTo,
		a.AssignedDate, a.Purpose, a.Status, a.CreatedBy,
	).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert assignment: %w", err)
	}
	return nil
}

func (r *AssignmentRepo) getByID(ctx context.Context, id int64, lock bool) (*entity.Assignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM assignments WHERE id = $1`
	if lock {
		query += ` FOR UPDATE`
	}
	a, err := scanAssignment(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: assignment %d", domain.ErrNotFound, id)
		}
		return nil, fmt.Errorf("get assignment: %w", err)
	}
	return a, nil
}

func (r *AssignmentRepo) GetByID(ctx context.Context, id int64) (*entity.Assignment, error) {
	return r.getByID(ctx, id, false)
}

func (r *AssignmentRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Assignment, error) {
	return r.getByID(ctx, id, true)
}

func (r *AssignmentRepo) MarkReturned(ctx context.Context, id int64, returnDate time.Time) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE assignments SET status = $2, return_date = $3 WHERE id = $1`,
		id, entity.AssignmentReturned, returnDate)
	if err != nil {
		return fmt.Errorf("mark assignment returned: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%w: assignment %d", domain.ErrNotFound, id)
	}
	return nil
}

func (r *AssignmentRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM assignments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete assignment: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%w: assignment %d", domain.ErrNotFound, id)
	}
	return nil
}

func (r *AssignmentRepo) List(ctx context.Context, filter repository.LedgerFilter) ([]*entity.Assignment, error) {
	wb := &whereBuilder{}
	if filter.BaseID != nil {
		wb.add(`base_id = $%d`, *filter.BaseID)
	}
	if filter.EquipmentTypeID != nil {
		wb.add(`equipment_type_id = $%d`, *filter.EquipmentTypeID)
	}
	if filter.Status != "" {
		wb.add(`status = $%d`, filter.Status)
	}
	if filter.From != nil {
		wb.add(`assigned_date >= $%d`, *filter.From)
	}
	if filter.To != nil {
		wb.add(`assigned_date <= $%d`, *filter.To)
	}

	query := `SELECT ` + assignmentColumns + ` FROM assignments` + wb.clause() +
		` ORDER BY assigned_date DESC, id DESC`
	rows, err := r.q.Query(ctx, query, wb.args...)
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	defer rows.Close()

	var out []*entity.Assignment
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan assignment: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
