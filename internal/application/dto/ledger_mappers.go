package dto

import (
	"time"

	"github.com/jhoicas/asset-ledger-api/internal/domain/entity"
)

const dateLayout = "2006-01-02"

func formatDate(t time.Time) string { return t.Format(dateLayout) }

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

// NewPurchaseResponse maps a purchase row to its API shape.
func NewPurchaseResponse(p entity.Purchase) PurchaseResponse {
	r := PurchaseResponse{
		ID:              p.ID,
		BaseID:          p.BaseID,
		EquipmentTypeID: p.EquipmentTypeID,
		Quantity:        p.Quantity,
		Vendor:          p.Vendor,
		PurchaseDate:    formatDate(p.PurchaseDate),
		ReceivedDate:    formatDatePtr(p.ReceivedDate),
		CreatedBy:       p.CreatedBy,
		Notes:           p.Notes,
		CreatedAt:       p.CreatedAt,
	}
	if p.UnitPrice != nil {
		s := p.UnitPrice.StringFixed(2)
		r.UnitPrice = &s
	}
	if p.TotalPrice != nil {
		s := p.TotalPrice.StringFixed(2)
		r.TotalPrice = &s
	}
	return r
}

// NewTransferResponse maps a transfer row to its API shape.
func NewTransferResponse(t entity.Transfer) TransferResponse {
	return TransferResponse{
		ID:              t.ID,
		EquipmentTypeID: t.EquipmentTypeID,
		FromBaseID:      t.FromBaseID,
		ToBaseID:        t.ToBaseID,
		Quantity:        t.Quantity,
		TransferDate:    formatDate(t.TransferDate),
		Status:          t.Status,
		InitiatedBy:     t.InitiatedBy,
		ApprovedBy:      t.ApprovedBy,
		ReceivedDate:    formatDatePtr(t.ReceivedDate),
		Notes:           t.Notes,
		CreatedAt:       t.CreatedAt,
	}
}

// NewAssignmentResponse maps an assignment row to its API shape.
func NewAssignmentResponse(a entity.Assignment) AssignmentResponse {
	return AssignmentResponse{
		ID:              a.ID,
		BaseID:          a.BaseID,
		EquipmentTypeID: a.EquipmentTypeID,
		Quantity:        a.Quantity,
		AssignedTo:      a.AssignedTo,
		AssignedDate:    formatDate(a.AssignedDate),
		ReturnDate:      formatDatePtr(a.ReturnDate),
		Purpose:         a.Purpose,
		Status:          a.Status,
		CreatedBy:       a.CreatedBy,
		CreatedAt:       a.CreatedAt,
	}
}

// NewExpenditureResponse maps an expenditure row to its API shape.
func NewExpenditureResponse(e entity.Expenditure) ExpenditureResponse {
	return ExpenditureResponse{
		ID:              e.ID,
		BaseID:          e.BaseID,
		EquipmentTypeID: e.EquipmentTypeID,
		Quantity:        e.Quantity,
		ExpendedDate:    formatDate(e.ExpendedDate),
		Reason:          e.Reason,
		AuthorizedBy:    e.AuthorizedBy,
		CreatedBy:       e.CreatedBy,
		Notes:           e.Notes,
		CreatedAt:       e.CreatedAt,
	}
}
