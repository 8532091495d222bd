package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/asset-ledger-api/internal/application/audit"
	"github.com/jhoicas/asset-ledger-api/internal/application/dto"
	"github.com/jhoicas/asset-ledger-api/internal/application/ledger"
)

// TransferHandler serves the transfer ledger endpoints.
type TransferHandler struct {
	uc  *ledger.TransferUseCase
	rec *audit.Recorder
}

// NewTransferHandler builds the handler.
func NewTransferHandler(uc *ledger.TransferUseCase, rec *audit.Recorder) *TransferHandler {
	return &TransferHandler{uc: uc, rec: rec}
}

// Create opens a pending transfer and deducts the source base immediately.
func (h *TransferHandler) Create(c *fiber.Ctx) error {
	actor := GetActor(c)
	var in dto.CreateTransferRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "malformed request body"})
	}
	id, err := h.uc.Create(c.Context(), actor, in)
	if err != nil {
		return writeError(c, err)
	}
	h.rec.Record(actor.UserID, "CREATE_TRANSFER", "transfers", id, map[string]any{
		"from_base_id":      in.FromBaseID,
		"to_base_id":        in.ToBaseID,
		"equipment_type_id": in.EquipmentTypeID,
		"quantity":          in.Quantity,
	}, c.IP())
	return c.Status(fiber.StatusCreated).JSON(dto.CreatedResponse{ID: id, Message: "transfer initiated"})
}

// SetStatus completes or cancels a pending transfer.
func (h *TransferHandler) SetStatus(c *fiber.Ctx) error {
	actor := GetActor(c)
	id, err := parseIDParam(c)
	if err != nil {
		return writeError(c, err)
	}
	var in dto.SetTransferStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "malformed request body"})
	}
	if err := h.uc.SetStatus(c.Context(), actor, id, in); err != nil {
		return writeError(c, err)
	}
	h.rec.Record(actor.UserID, "SET_TRANSFER_STATUS", "transfers", id, map[string]any{"status": in.Status}, c.IP())
	return c.JSON(dto.MessageResponse{Message: "transfer " + in.Status})
}

// Delete removes a transfer and unwinds its inventory effects.
func (h *TransferHandler) Delete(c *fiber.Ctx) error {
	actor := GetActor(c)
	id, err := parseIDParam(c)
	if err != nil {
		return writeError(c, err)
	}
	if err := h.uc.Delete(c.Context(), actor, id); err != nil {
		return writeError(c, err)
	}
	h.rec.Record(actor.UserID, "DELETE_TRANSFER", "transfers", id, nil, c.IP())
	return c.JSON(dto.MessageResponse{Message: "transfer deleted"})
}

// List returns transfers touching the actor's scope on either end.
func (h *TransferHandler) List(c *fiber.Ctx) error {
	actor := GetActor(c)
	var q dto.LedgerListQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "malformed query parameters"})
	}
	rows, err := h.uc.List(c.Context(), actor, q)
	if err != nil {
		return writeError(c, err)
	}
	out := make([]dto.TransferResponse, 0, len(rows))
	for _, t := range rows {
		out = append(out, dto.NewTransferResponse(*t))
	}
	return c.JSON(out)
}
