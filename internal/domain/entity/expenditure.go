package entity

import "time"

// Expenditure records consumed equipment. The deduction is permanent; deleting
// an expenditure re-credits inventory as a correction, not an un-consume.
type Expenditure struct {
	ID              int64
	BaseID          int64
	EquipmentTypeID int64
	Quantity        int64
	ExpendedDate    time.Time
	Reason          string
	AuthorizedBy    string
	CreatedBy       int64
	Notes           string
	CreatedAt       time.Time
}
