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

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

const purchaseColumns = `id, base_id, equipment_type_id, quantity, unit_price, total_price,
	vendor, purchase_date, received_date, created_by, notes, created_at`

// PurchaseRepo persists purchases.
type PurchaseRepo struct {
	q Querier
}

// NewPurchaseRepository builds the adapter. Pass a pool or a tx (Querier).
func NewPurchaseRepository(q Querier) *PurchaseRepo {
	return &PurchaseRepo{q: q}
}

func scanPurchase(row pgx.Row) (*entity.Purchase, error) {
	var p entity.Purchase
	err := row.Scan(&p.ID, &p.BaseID, &p.EquipmentTypeID, &p.Quantity, &p.UnitPrice,
		&p.TotalPrice, &p.Vendor, &p.PurchaseDate, &p.ReceivedDate, &p.CreatedBy,
		&p.Notes, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PurchaseRepo) Create(ctx context.Context, p *entity.Purchase) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO purchases (base_id, equipment_type_id, quantity, unit_price, total_price,
			vendor, purchase_date, received_date, created_by, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at`,
		p.BaseID, p.EquipmentTypeID, p.Quantity, p.UnitPrice, p.TotalPrice,
		p.Vendor, p.PurchaseDate, p.ReceivedDate, p.CreatedBy, p.Notes,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert purchase: %w", err)
	}
	return nil
}

func (r *PurchaseRepo) getByID(ctx context.Context, id int64, lock bool) (*entity.Purchase, error) {
	query := `SELECT ` + purchaseColumns + ` FROM purchases WHERE id = $1`
	if lock {
		query += ` FOR UPDATE`
	}
	p, err := scanPurchase(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: purchase %d", domain.ErrNotFound, id)
		}
		return nil, fmt.Errorf("get purchase: %w", err)
	}
	return p, nil
}

func (r *PurchaseRepo) GetByID(ctx context.Context, id int64) (*entity.Purchase, error) {
	return r.getByID(ctx, id, false)
}

func (r *PurchaseRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Purchase, error) {
	return r.getByID(ctx, id, true)
}

func (r *PurchaseRepo) SetReceived(ctx context.Context, id int64, receivedDate time.Time) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE purchases SET received_date = $2 WHERE id = $1`, id, receivedDate)
	if err != nil {
		return fmt.Errorf("set purchase received: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%w: purchase %d", domain.ErrNotFound, id)
	}
	return nil
}

func (r *PurchaseRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM purchases WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete purchase: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%w: purchase %d", domain.ErrNotFound, id)
	}
	return nil
}

func (r *PurchaseRepo) List(ctx context.Context, filter repository.LedgerFilter) ([]*entity.Purchase, error) {
	wb := &whereBuilder{}
	if filter.BaseID != nil {
		wb.add(`base_id = $%d`, *filter.BaseID)
	}
	if filter.EquipmentTypeID != nil {
		wb.add(`equipment_type_id = $%d`, *filter.EquipmentTypeID)
	}
	if filter.From != nil {
		wb.add(`purchase_date >= $%d`, *filter.From)
	}
	if filter.To != nil {
		wb.add(`purchase_date <= $%d`, *filter.To)
	}

	query := `SELECT ` + purchaseColumns + ` FROM purchases` + wb.clause() +
		` ORDER BY purchase_date DESC, id DESC`
	rows, err := r.q.Query(ctx, query, wb.args...)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	defer rows.Close()

	var out []*entity.Purchase
	for rows.Next() {
		p, err := scanPurchase(rows)
		if err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
