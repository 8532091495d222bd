package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/asset-ledger-api/internal/application/audit"
	"github.com/jhoicas/asset-ledger-api/internal/application/dto"
	"github.com/jhoicas/asset-ledger-api/internal/application/ledger"
)

// ExpenditureHandler serves the expenditure ledger endpoints.
type ExpenditureHandler struct {
	uc  *ledger.ExpenditureUseCase
	rec *audit.Recorder
}

// NewExpenditureHandler builds the handler.
func NewExpenditureHandler(uc *ledger.ExpenditureUseCase, rec *audit.Recorder) *ExpenditureHandler {
	return &ExpenditureHandler{uc: uc, rec: rec}
}

// Create records consumed equipment and deducts inventory permanently.
func (h *ExpenditureHandler) Create(c *fiber.Ctx) error {
	actor := GetActor(c)
	var in dto.CreateExpenditureRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "malformed request body"})
	}
	id, err := h.uc.Create(c.Context(), actor, in)
	if err != nil {
		return writeError(c, err)
	}
	h.rec.Record(actor.UserID, "CREATE_EXPENDITURE", "expenditures", id, map[string]any{
		"base_id":           in.BaseID,
		"equipment_type_id": in.EquipmentTypeID,
		"quantity":          in.Quantity,
		"reason":            in.Reason,
	}, c.IP())
	return c.Status(fiber.StatusCreated).JSON(dto.CreatedResponse{ID: id, Message: "expenditure recorded"})
}

// Delete removes an expenditure and re-credits inventory as a correction.
func (h *ExpenditureHandler) Delete(c *fiber.Ctx) error {
	actor := GetActor(c)
	id, err := parseIDParam(c)
	if err != nil {
		return writeError(c, err)
	}
	if err := h.uc.Delete(c.Context(), actor, id); err != nil {
		return writeError(c, err)
	}
	h.rec.Record(actor.UserID, "DELETE_EXPENDITURE", "expenditures", id, nil, c.IP())
	return c.JSON(dto.MessageResponse{Message: "expenditure deleted"})
}

// List returns expenditures visible to the actor.
func (h *ExpenditureHandler) List(c *fiber.Ctx) error {
	actor := GetActor(c)
	var q dto.LedgerListQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "malformed query parameters"})
	}
	rows, err := h.uc.List(c.Context(), actor, q)
	if err != nil {
		return writeError(c, err)
	}
	out := make([]dto.ExpenditureResponse, 0, len(rows))
	for _, e := range rows {
		out = append(out, dto.NewExpenditureResponse(*e))
	}
	return c.JSON(out)
}
