package repository

import "context"

// InventorySummaryRow is one snapshot line joined with reference names.
type InventorySummaryRow struct {
	BaseName      string
	EquipmentName string
	Category      string
	Quantity      int64
	UnitOfMeasure string
}

// AnalyticsRepository runs the read-only aggregate queries behind the
// dashboard and the balance engine.
type AnalyticsRepository interface {
	// SumInventory is the point-in-time closing balance over the scope.
	SumInventory(ctx context.Context, f ScopeFilter) (int64, error)
	SumPurchases(ctx context.Context, f ScopeFilter, r DateRange) (int64, error)
	// SumTransfersIn/Out only count completed transfers, matched on
	// to_base / from_base respectively.
	SumTransfersIn(ctx context.Context, f ScopeFilter, r DateRange) (int64, error)
	SumTransfersOut(ctx context.Context, f ScopeFilter, r DateRange) (int64, error)
	SumActiveAssignments(ctx context.Context, f ScopeFilter, r DateRange) (int64, error)
	SumExpenditures(ctx context.Context, f ScopeFilter, r DateRange) (int64, error)
	InventorySummary(ctx context.Context, baseID *int64) ([]InventorySummaryRow, error)
}
