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

var _ repository.TransferRepository = (*TransferRepo)(nil)

const transferColumns = `id, equipment_type_id, from_base_id, to_base_id, quantity,
	transfer_date, status, initiated_by, approved_by, received_date, notes, created_at`

// TransferRepo persists transfers.
type TransferRepo struct {
	q Querier
}

// NewTransferRepository builds the adapter. Pass a pool or a tx (Querier).
func NewTransferRepository(q Querier) *TransferRepo {
	return &TransferRepo{q: q}
}

func scanTransfer(row pgx.Row) (*entity.Transfer, error) {
	var t entity.Transfer
	err := row.Scan(&t.ID, &t.EquipmentTypeID, &t.FromBaseID, &t.ToBaseID, &t.Quantity,
		&t.TransferDate, &t.Status, &t.InitiatedBy, &t.ApprovedBy, &t.ReceivedDate,
		&t.Notes, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TransferRepo) Create(ctx context.Context, t *entity.Transfer) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO transfers (equipment_type_id, from_base_id, to_base_id, quantity,
			transfer_date, status, initiated_by, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at`,
		t.EquipmentTypeID, t.FromBaseID, t.ToBaseID, t.Quantity,
		t.TransferDate, t.Status, t.InitiatedBy, t.Notes,
	).Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert transfer: %w", err)
	}
	return nil
}

func (r *TransferRepo) getByID(ctx context.Context, id int64, lock bool) (*entity.Transfer, error) {
	query := `SELECT ` + transferColumns + ` FROM transfers WHERE id = $1`
	if lock {
		query += ` FOR UPDATE`
	}
	t, err := scanTransfer(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: transfer %d", domain.ErrNotFound, id)
		}
		return nil, fmt.Errorf("get transfer: %w", err)
	}
	return t, nil
}

func (r *TransferRepo) GetByID(ctx context.Context, id int64) (*entity.Transfer, error) {
	return r.getByID(ctx, id, false)
}

func (r *TransferRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Transfer, error) {
	return r.getByID(ctx, id, true)
}

func (r *TransferRepo) SetStatus(ctx context.Context, id int64, status string, receivedDate *time.Time, approvedBy *int64) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE transfers SET status = $2, received_date = $3, approved_by = $4
		WHERE id = $1`,
		id, status, receivedDate, approvedBy)
	if err != nil {
		return fmt.Errorf("set transfer status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%w: transfer %d", domain.ErrNotFound, id)
	}
	return nil
}

func (r *TransferRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM transfers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete transfer: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%w: transfer %d", domain.ErrNotFound, id)
	}
	return nil
}

// List matches the base filter against either end, so a commander sees both
// incoming and outgoing transfers of their base.
func (r *TransferRepo) List(ctx context.Context, filter repository.LedgerFilter) ([]*entity.Transfer, error) {
	wb := &whereBuilder{}
	if filter.BaseID != nil {
		wb.addTwice(`(from_base_id = $%d OR to_base_id = $%d)`, *filter.BaseID)
	}
	if filter.EquipmentTypeID != nil {
		wb.add(`equipment_type_id = $%d`, *filter.EquipmentTypeID)
	}
	if filter.Status != "" {
		wb.add(`status = $%d`, filter.Status)
	}
	if filter.From != nil {
		wb.add(`transfer_date >= $%d`, *filter.From)
	}
	if filter.To != nil {
		wb.add(`transfer_date <= $%d`, *filter.To)
	}

	query := `SELECT ` + transferColumns + ` FROM transfers` + wb.clause() +
		` ORDER BY transfer_date DESC, id DESC`
	rows, err := r.q.Query(ctx, query, wb.args...)
	if err != nil {
		return nil, fmt.Errorf("list transfers: %w", err)
	}
	defer rows.Close()

	var out []*entity.Transfer
	for rows.Next() {
		t, err := scanTransfer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transfer: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
