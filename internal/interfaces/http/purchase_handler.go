package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/asset-ledger-api/internal/application/audit"
	"github.com/jhoicas/asset-ledger-api/internal/application/dto"
	"github.com/jhoicas/asset-ledger-api/internal/application/ledger"
)

// PurchaseHandler serves the purchase ledger endpoints.
type PurchaseHandler struct {
	uc  *ledger.PurchaseUseCase
	rec *audit.Recorder
}

// NewPurchaseHandler builds the handler.
func NewPurchaseHandler(uc *ledger.PurchaseUseCase, rec *audit.Recorder) *PurchaseHandler {
	return &PurchaseHandler{uc: uc, rec: rec}
}

// Create records a purchase; inventory is credited when it is already received.
func (h *PurchaseHandler) Create(c *fiber.Ctx) error {
	actor := GetActor(c)
	var in dto.CreatePurchaseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "malformed request body"})
	}
	id, err := h.uc.Create(c.Context(), actor, in)
	if err != nil {
		return writeError(c, err)
	}
	h.rec.Record(actor.UserID, "CREATE_PURCHASE", "purchases", id, map[string]any{
		"base_id":           in.BaseID,
		"equipment_type_id": in.EquipmentTypeID,
		"quantity":          in.Quantity,
	}, c.IP())
	return c.Status(fiber.StatusCreated).JSON(dto.CreatedResponse{ID: id, Message: "purchase recorded"})
}

// Receive marks an ordered purchase as received and credits inventory.
func (h *PurchaseHandler) Receive(c *fiber.Ctx) error {
	actor := GetActor(c)
	id, err := parseIDParam(c)
	if err != nil {
		return writeError(c, err)
	}
	var in dto.ReceivePurchaseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "malformed request body"})
	}
	if err := h.uc.Receive(c.Context(), actor, id, in); err != nil {
		return writeError(c, err)
	}
	h.rec.Record(actor.UserID, "RECEIVE_PURCHASE", "purchases", id, nil, c.IP())
	return c.JSON(dto.MessageResponse{Message: "purchase received"})
}

// Delete removes a purchase and unwinds its inventory credit.
func (h *PurchaseHandler) Delete(c *fiber.Ctx) error {
	actor := GetActor(c)
	id, err := parseIDParam(c)
	if err != nil {
		return writeError(c, err)
	}
	if err := h.uc.Delete(c.Context(), actor, id); err != nil {
		return writeError(c, err)
	}
	h.rec.Record(actor.UserID, "DELETE_PURCHASE", "purchases", id, nil, c.IP())
	return c.JSON(dto.MessageResponse{Message: "purchase deleted"})
}

// List returns purchases visible to the actor, newest first.
func (h *PurchaseHandler) List(c *fiber.Ctx) error {
	actor := GetActor(c)
	var q dto.LedgerListQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "malformed query parameters"})
	}
	rows, err := h.uc.List(c.Context(), actor, q)
	if err != nil {
		return writeError(c, err)
	}
	out := make([]dto.PurchaseResponse, 0, len(rows))
	for _, p := range rows {
		out = append(out, dto.NewPurchaseResponse(*p))
	}
	return c.JSON(out)
}
