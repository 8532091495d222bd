package repository

import "time"

// ScopeFilter restricts a query to a base and/or an equipment type.
// Nil fields mean "no restriction".
type ScopeFilter struct {
	BaseID          *int64
	EquipmentTypeID *int64
}

// DateRange is a closed [From, To] date interval.
type DateRange struct {
	From time.Time
	To   time.Time
}

// LedgerFilter is the common listing filter for the four ledger kinds.
type LedgerFilter struct {
	ScopeFilter
	Status string // transfer/assignment status; ignored by kinds without one
	From   *time.Time
	To     *time.Time
}
