package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase records equipment bought for a base. Inventory is credited once,
// either at creation (ReceivedDate set) or on the ordered -> received update.
type Purchase struct {
	ID              int64
	BaseID          int64
	EquipmentTypeID int64
	Quantity        int64
	UnitPrice       *decimal.Decimal
	TotalPrice      *decimal.Decimal // UnitPrice * Quantity when UnitPrice present
	Vendor          string
	PurchaseDate    time.Time
	ReceivedDate    *time.Time // nil while still ordered
	CreatedBy       int64
	Notes           string
	CreatedAt       time.Time
}

// Received reports whether the purchase has landed in inventory.
func (p *Purchase) Received() bool { return p.ReceivedDate != nil }
