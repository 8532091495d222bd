package entity

import "time"

// Transfer statuses. The lifecycle starts at pending; completed and cancelled
// are terminal for forward transitions.
const (
	TransferPending   = "pending"
	TransferCompleted = "completed"
	TransferCancelled = "cancelled"
)

// ValidTransferStatus reports whether s is a known transfer status.
func ValidTransferStatus(s string) bool {
	return s == TransferPending || s == TransferCompleted || s == TransferCancelled
}

// Transfer moves equipment between two bases. Creation deducts the quantity
// from the source base (in transit); completion credits the destination,
// cancellation returns it to the source.
type Transfer struct {
	ID              int64
	EquipmentTypeID int64
	FromBaseID      int64
	ToBaseID        int64
	Quantity        int64
	TransferDate    time.Time
	Status          string
	InitiatedBy     int64
	ApprovedBy      *int64
	ReceivedDate    *time.Time
	Notes           string
	CreatedAt       time.Time
}
