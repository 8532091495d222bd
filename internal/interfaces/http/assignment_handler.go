package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/asset-ledger-api/internal/application/audit"
	"github.com/jhoicas/asset-ledger-api/internal/application/dto"
	"github.com/jhoicas/asset-ledger-api/internal/application/ledger"
)

// AssignmentHandler serves the assignment ledger endpoints.
type AssignmentHandler struct {
	uc  *ledger.AssignmentUseCase
	rec *audit.Recorder
}

// NewAssignmentHandler builds the handler.
func NewAssignmentHandler(uc *ledger.AssignmentUseCase, rec *audit.Recorder) *AssignmentHandler {
	return &AssignmentHandler{uc: uc, rec: rec}
}

// Create checks equipment out to a person and reserves the quantity.
func (h *AssignmentHandler) Create(c *fiber.Ctx) error {
	actor := GetActor(c)
	var in dto.CreateAssignmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "malformed request body"})
	}
	id, err := h.uc.Create(c.Context(), actor, in)
	if err != nil {
		return writeError(c, err)
	}
	h.rec.Record(actor.UserID, "CREATE_ASSIGNMENT", "assignments", id, map[string]any{
		"base_id":           in.BaseID,
		"equipment_type_id": in.EquipmentTypeID,
		"quantity":          in.Quantity,
		"assigned_to":       in.AssignedTo,
	}, c.IP())
	return c.Status(fiber.StatusCreated).JSON(dto.CreatedResponse{ID: id, Message: "assignment recorded"})
}

// Return closes an active assignment and restores availability.
func (h *AssignmentHandler) Return(c *fiber.Ctx) error {
	actor := GetActor(c)
	id, err := parseIDParam(c)
	if err != nil {
		return writeError(c, err)
	}
	var in dto.ReturnAssignmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "malformed request body"})
	}
	if err := h.uc.Return(c.Context(), actor, id, in); err != nil {
		return writeError(c, err)
	}
	h.rec.Record(actor.UserID, "RETURN_ASSIGNMENT", "assignments", id, nil, c.IP())
	return c.JSON(dto.MessageResponse{Message: "assignment returned"})
}

// Delete removes an assignment, restoring stock when it was still active.
func (h *AssignmentHandler) Delete(c *fiber.Ctx) error {
	actor := GetActor(c)
	id, err := parseIDParam(c)
	if err != nil {
		return writeError(c, err)
	}
	if err := h.uc.Delete(c.Context(), actor, id); err != nil {
		return writeError(c, err)
	}
	h.rec.Record(actor.UserID, "DELETE_ASSIGNMENT", "assignments", id, nil, c.IP())
	return c.JSON(dto.MessageResponse{Message: "assignment deleted"})
}

// List returns assignments visible to the actor.
func (h *AssignmentHandler) List(c *fiber.Ctx) error {
	actor := GetActor(c)
	var q dto.LedgerListQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "malformed query parameters"})
	}
	rows, err := h.uc.List(c.Context(), actor, q)
	if err != nil {
		return writeError(c, err)
	}
	out := make([]dto.AssignmentResponse, 0, len(rows))
	for _, a := range rows {
		out = append(out, dto.NewAssignmentResponse(*a))
	}
	return c.JSON(out)
}
