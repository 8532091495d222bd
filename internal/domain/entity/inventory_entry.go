package entity

import "time"

// InventoryEntry is the live quantity of one equipment type at one base,
// keyed by (BaseID, EquipmentTypeID). Quantity is never negative. A row is
// created on the first positive adjustment and retained at zero thereafter.
type InventoryEntry struct {
	BaseID          int64
	EquipmentTypeID int64
	Quantity        int64
	LastUpdated     time.Time
}
