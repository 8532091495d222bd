package entity

import "time"

// Assignment statuses.
const (
	AssignmentActive   = "active"
	AssignmentReturned = "returned"
)

// Assignment checks equipment out to a person. The quantity stays owned by the
// base but is not available until returned.
type Assignment struct {
	ID              int64
	BaseID          int64
	EquipmentTypeID int64
	Quantity        int64
	AssignedTo      string
	AssignedDate    time.Time
	ReturnDate      *time.Time
	Purpose         string
	Status          string
	CreatedBy       int64
	CreatedAt       time.Time
}
