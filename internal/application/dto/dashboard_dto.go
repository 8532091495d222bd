package dto

// BalanceMetrics is the dashboard balance report for one scope and date range.
//
// OpeningBalance is back-derived (closing - net_movement + assigned + expended)
// rather than replayed from the ledger; see the balance use case.
type BalanceMetrics struct {
	OpeningBalance int64 `json:"opening_balance"`
	ClosingBalance int64 `json:"closing_balance"`
	NetMovement    int64 `json:"net_movement"`
	Purchases      int64 `json:"purchases"`
	TransferIn     int64 `json:"transfer_in"`
	TransferOut    int64 `json:"transfer_out"`
	Assigned       int64 `json:"assigned"`
	Expended       int64 `json:"expended"`
}

// BalanceFilters echoes the effective filters a report was computed with.
type BalanceFilters struct {
	BaseID          *int64 `json:"base_id"`
	EquipmentTypeID *int64 `json:"equipment_type_id"`
	StartDate       string `json:"start_date"`
	EndDate         string `json:"end_date"`
}

// BalanceReport is the metrics endpoint payload.
type BalanceReport struct {
	Metrics BalanceMetrics `json:"metrics"`
	Filters BalanceFilters `json:"filters"`
}

// MovementDetails is the recent-movements breakdown for the dashboard.
type MovementDetails struct {
	Purchases    []PurchaseResponse `json:"purchases"`
	TransfersIn  []TransferResponse `json:"transfers_in"`
	TransfersOut []TransferResponse `json:"transfers_out"`
}

// InventorySummaryItem one line of the per-base inventory summary.
type InventorySummaryItem struct {
	BaseName      string `json:"base_name"`
	EquipmentName string `json:"equipment_name"`
	Category      string `json:"category"`
	Quantity      int64  `json:"quantity"`
	UnitOfMeasure string `json:"unit_of_measure"`
}
