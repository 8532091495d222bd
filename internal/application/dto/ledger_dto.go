package dto

import "time"

// Request dates travel as "YYYY-MM-DD" strings and are parsed by the use cases.

// CreatePurchaseRequest body for POST /api/purchases.
type CreatePurchaseRequest struct {
	BaseID          int64   `json:"base_id"`
	EquipmentTypeID int64   `json:"equipment_type_id"`
	Quantity        int64   `json:"quantity"`
	UnitPrice       *string `json:"unit_price,omitempty"`
	Vendor          string  `json:"vendor,omitempty"`
	PurchaseDate    string  `json:"purchase_date"`
	ReceivedDate    string  `json:"received_date,omitempty"`
	Notes           string  `json:"notes,omitempty"`
}

// ReceivePurchaseRequest body for PUT /api/purchases/:id/receive.
type ReceivePurchaseRequest struct {
	ReceivedDate string `json:"received_date"`
}

// CreateTransferRequest body for POST /api/transfers.
type CreateTransferRequest struct {
	EquipmentTypeID int64  `json:"equipment_type_id"`
	FromBaseID      int64  `json:"from_base_id"`
	ToBaseID        int64  `json:"to_base_id"`
	Quantity        int64  `json:"quantity"`
	TransferDate    string `json:"transfer_date"`
	Notes           string `json:"notes,omitempty"`
}

// SetTransferStatusRequest body for PUT /api/transfers/:id/status.
type SetTransferStatusRequest struct {
	Status       string `json:"status"`
	ReceivedDate string `json:"received_date,omitempty"`
}

// CreateAssignmentRequest body for POST /api/assignments.
type CreateAssignmentRequest struct {
	BaseID          int64  `json:"base_id"`
	EquipmentTypeID int64  `json:"equipment_type_id"`
	Quantity        int64  `json:"quantity"`
	AssignedTo      string `json:"assigned_to"`
	AssignedDate    string `json:"assigned_date"`
	Purpose         string `json:"purpose,omitempty"`
}

// ReturnAssignmentRequest body for PUT /api/assignments/:id/return.
type ReturnAssignmentRequest struct {
	ReturnDate string `json:"return_date"`
}

// CreateExpenditureRequest body for POST /api/expenditures.
type CreateExpenditureRequest struct {
	BaseID          int64  `json:"base_id"`
	EquipmentTypeID int64  `json:"equipment_type_id"`
	Quantity        int64  `json:"quantity"`
	ExpendedDate    string `json:"expended_date"`
	Reason          string `json:"reason"`
	AuthorizedBy    string `json:"authorized_by,omitempty"`
	Notes           string `json:"notes,omitempty"`
}

// LedgerListQuery shared query params for ledger listings.
type LedgerListQuery struct {
	BaseID          *int64 `query:"base_id"`
	EquipmentTypeID *int64 `query:"equipment_type_id"`
	Status          string `query:"status"`
	StartDate       string `query:"start_date"`
	EndDate         string `query:"end_date"`
}

// PurchaseResponse one purchase row.
type PurchaseResponse struct {
	ID              int64      `json:"id"`
	BaseID          int64      `json:"base_id"`
	EquipmentTypeID int64      `json:"equipment_type_id"`
	Quantity        int64      `json:"quantity"`
	UnitPrice       *string    `json:"unit_price,omitempty"`
	TotalPrice      *string    `json:"total_price,omitempty"`
	Vendor          string     `json:"vendor,omitempty"`
	PurchaseDate    string     `json:"purchase_date"`
	ReceivedDate    *string    `json:"received_date"`
	CreatedBy       int64      `json:"created_by"`
	Notes           string     `json:"notes,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

// TransferResponse one transfer row.
type TransferResponse struct {
	ID              int64     `json:"id"`
	EquipmentTypeID int64     `json:"equipment_type_id"`
	FromBaseID      int64     `json:"from_base_id"`
	ToBaseID        int64     `json:"to_base_id"`
	Quantity        int64     `json:"quantity"`
	TransferDate    string    `json:"transfer_date"`
	Status          string    `json:"status"`
	InitiatedBy     int64     `json:"initiated_by"`
	ApprovedBy      *int64    `json:"approved_by"`
	ReceivedDate    *string   `json:"received_date"`
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// AssignmentResponse one assignment row.
type AssignmentResponse struct {
	ID              int64     `json:"id"`
	BaseID          int64     `json:"base_id"`
	EquipmentTypeID int64     `json:"equipment_type_id"`
	Quantity        int64     `json:"quantity"`
	AssignedTo      string    `json:"assigned_to"`
	AssignedDate    string    `json:"assigned_date"`
	ReturnDate      *string   `json:"return_date"`
	Purpose         string    `json:"purpose,omitempty"`
	Status          string    `json:"status"`
	CreatedBy       int64     `json:"created_by"`
	CreatedAt       time.Time `json:"created_at"`
}

// ExpenditureResponse one expenditure row.
type ExpenditureResponse struct {
	ID              int64     `json:"id"`
	BaseID          int64     `json:"base_id"`
	EquipmentTypeID int64     `json:"equipment_type_id"`
	Quantity        int64     `json:"quantity"`
	ExpendedDate    string    `json:"expended_date"`
	Reason          string    `json:"reason"`
	AuthorizedBy    string    `json:"authorized_by,omitempty"`
	CreatedBy       int64     `json:"created_by"`
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}
