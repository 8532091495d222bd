package dto

import "time"

// BaseResponse one base.
type BaseResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location,omitempty"`
}

// EquipmentTypeResponse one equipment type.
type EquipmentTypeResponse struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Category      string `json:"category"`
	UnitOfMeasure string `json:"unit_of_measure"`
}

// InventoryEntryResponse one live stock row.
type InventoryEntryResponse struct {
	BaseID          int64     `json:"base_id"`
	EquipmentTypeID int64     `json:"equipment_type_id"`
	Quantity        int64     `json:"quantity"`
	LastUpdated     time.Time `json:"last_updated"`
}

// AuditLogResponse one audit trail row.
type AuditLogResponse struct {
	ID        string         `json:"id"`
	UserID    int64          `json:"user_id"`
	Action    string         `json:"action"`
	TableName string         `json:"table_name"`
	RecordID  int64          `json:"record_id"`
	Details   map[string]any `json:"details,omitempty"`
	IPAddress string         `json:"ip_address,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}
