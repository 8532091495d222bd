package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/asset-ledger-api/internal/domain/entity"
	"github.com/jhoicas/asset-ledger-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo runs the aggregate queries behind the balance engine and the
// dashboard. Read only; always used against the pool, never inside a tx.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository builds the adapter.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

func (r *AnalyticsRepo) sum(ctx context.Context, query string, args []any, label string) (int64, error) {
	var total int64
	if err := r.q.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("sum %s: %w", label, err)
	}
	return total, nil
}

func (r *AnalyticsRepo) SumInventory(ctx context.Context, f repository.ScopeFilter) (int64, error) {
	wb := &whereBuilder{}
	if f.BaseID != nil {
		wb.add(`base_id = $%d`, *f.BaseID)
	}
	if f.EquipmentTypeID != nil {
		wb.add(`equipment_type_id = $%d`, *f.EquipmentTypeID)
	}
	return r.sum(ctx,
		`SELECT COALESCE(SUM(quantity), 0) FROM asset_inventory`+wb.clause(),
		wb.args, "inventory")
}

func (r *AnalyticsRepo) SumPurchases(ctx context.Context, f repository.ScopeFilter, dr repository.DateRange) (int64, error) {
	wb := &whereBuilder{}
	wb.add(`purchase_date >= $%d`, dr.From)
	wb.add(`purchase_date <= $%d`, dr.To)
	if f.BaseID != nil {
		wb.add(`base_id = $%d`, *f.BaseID)
	}
	if f.EquipmentTypeID != nil {
		wb.add(`equipment_type_id = $%d`, *f.EquipmentTypeID)
	}
	return r.sum(ctx,
		`SELECT COALESCE(SUM(quantity), 0) FROM purchases`+wb.clause(),
		wb.args, "purchases")
}

func (r *AnalyticsRepo) sumTransfers(ctx context.Context, baseCol string, f repository.ScopeFilter, dr repository.DateRange) (int64, error) {
	wb := &whereBuilder{}
	wb.add(`status = $%d`, entity.TransferCompleted)
	wb.add(`transfer_date >= $%d`, dr.From)
	wb.add(`transfer_date <= $%d`, dr.To)
	if f.BaseID != nil {
		wb.add(baseCol+` = $%d`, *f.BaseID)
	}
	if f.EquipmentTypeID != nil {
		wb.add(`equipment_type_id = $%d`, *f.EquipmentTypeID)
	}
	return r.sum(ctx,
		`SELECT COALESCE(SUM(quantity), 0) FROM transfers`+wb.clause(),
		wb.args, "transfers "+baseCol)
}

func (r *AnalyticsRepo) SumTransfersIn(ctx context.Context, f repository.ScopeFilter, dr repository.DateRange) (int64, error) {
	return r.sumTransfers(ctx, "to_base_id", f, dr)
}

func (r *AnalyticsRepo) SumTransfersOut(ctx context.Context, f repository.ScopeFilter, dr repository.DateRange) (int64, error) {
	return r.sumTransfers(ctx, "from_base_id", f, dr)
}

func (r *AnalyticsRepo) SumActiveAssignments(ctx context.Context, f repository.ScopeFilter, dr repository.DateRange) (int64, error) {
	wb := &whereBuilder{}
	wb.add(`status = $%d`, entity.AssignmentActive)
	wb.add(`assigned_date >= $%d`, dr.From)
	wb.add(`assigned_date <= $%d`, dr.To)
	if f.BaseID != nil {
		wb.add(`base_id = $%d`, *f.BaseID)
	}
	if f.EquipmentTypeID != nil {
		wb.add(`equipment_type_id = $%d`, *f.EquipmentTypeID)
	}
	return r.sum(ctx,
		`SELECT COALESCE(SUM(quantity), 0) FROM assignments`+wb.clause(),
		wb.args, "active assignments")
}

func (r *AnalyticsRepo) SumExpenditures(ctx context.Context, f repository.ScopeFilter, dr repository.DateRange) (int64, error) {
	wb := &whereBuilder{}
	wb.add(`expended_date >= $%d`, dr.From)
	wb.add(`expended_date <= $%d`, dr.To)
	if f.BaseID != nil {
		wb.add(`base_id = $%d`, *f.BaseID)
	}
	if f.EquipmentTypeID != nil {
		wb.add(`equipment_type_id = $%d`, *f.EquipmentTypeID)
	}
	return r.sum(ctx,
		`SELECT COALESCE(SUM(quantity), 0) FROM expenditures`+wb.clause(),
		wb.args, "expenditures")
}

func (r *AnalyticsRepo) InventorySummary(ctx context.Context, baseID *int64) ([]repository.InventorySummaryRow, error) {
	wb := &whereBuilder{}
	if baseID != nil {
		wb.add(`ai.base_id = $%d`, *baseID)
	}
	query := `
		SELECT b.name, et.name, et.category, ai.quantity, et.unit_of_measure
		FROM asset_inventory ai
		JOIN bases b ON b.id = ai.base_id
		JOIN equipment_types et ON et.id = ai.equipment_type_id` +
		wb.clause() + ` ORDER BY b.name, et.category, et.name`

	rows, err := r.q.Query(ctx, query, wb.args...)
	if err != nil {
		return nil, fmt.Errorf("inventory summary: %w", err)
	}
	defer rows.Close()

	var out []repository.InventorySummaryRow
	for rows.Next() {
		var row repository.InventorySummaryRow
		if err := rows.Scan(&row.BaseName, &row.EquipmentName, &row.Category,
			&row.Quantity, &row.UnitOfMeasure); err != nil {
			return nil, fmt.Errorf("scan summary row: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
