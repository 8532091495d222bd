package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/asset-ledger-api/internal/application/audit"
	"github.com/jhoicas/asset-ledger-api/internal/application/dto"
	"github.com/jhoicas/asset-ledger-api/internal/domain/repository"
	"github.com/jhoicas/asset-ledger-api/internal/domain/scope"
)

// ReferenceHandler serves the read-only reference endpoints and the audit
// trail listing.
type ReferenceHandler struct {
	baseRepo  repository.BaseRepository
	equipRepo repository.EquipmentTypeRepository
	invRepo   repository.InventoryRepository
	rec       *audit.Recorder
}

// NewReferenceHandler builds the handler.
func NewReferenceHandler(baseRepo repository.BaseRepository, equipRepo repository.EquipmentTypeRepository, invRepo repository.InventoryRepository, rec *audit.Recorder) *ReferenceHandler {
	return &ReferenceHandler{baseRepo: baseRepo, equipRepo: equipRepo, invRepo: invRepo, rec: rec}
}

// ListBases returns every base.
func (h *ReferenceHandler) ListBases(c *fiber.Ctx) error {
	bases, err := h.baseRepo.List(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	out := make([]dto.BaseResponse, 0, len(bases))
	for _, b := range bases {
		out = append(out, dto.BaseResponse{ID: b.ID, Name: b.Name, Location: b.Location})
	}
	return c.JSON(out)
}

// ListEquipmentTypes returns all equipment types, optionally one category.
func (h *ReferenceHandler) ListEquipmentTypes(c *fiber.Ctx) error {
	types, err := h.equipRepo.List(c.Context(), c.Query("category"))
	if err != nil {
		return writeError(c, err)
	}
	out := make([]dto.EquipmentTypeResponse, 0, len(types))
	for _, e := range types {
		out = append(out, dto.EquipmentTypeResponse{
			ID:            e.ID,
			Name:          e.Name,
			Category:      e.Category,
			UnitOfMeasure: e.UnitOfMeasure,
		})
	}
	return c.JSON(out)
}

// ListInventory returns the raw stock rows for the actor's scope.
func (h *ReferenceHandler) ListInventory(c *fiber.Ctx) error {
	actor := GetActor(c)
	filter := repository.ScopeFilter{}
	if v := c.QueryInt("base_id"); v > 0 {
		id := int64(v)
		filter.BaseID = &id
	}
	filter.BaseID = scope.ResolveBase(actor, filter.BaseID)
	if v := c.QueryInt("equipment_type_id"); v > 0 {
		id := int64(v)
		filter.EquipmentTypeID = &id
	}
	rows, err := h.invRepo.List(c.Context(), filter)
	if err != nil {
		return writeError(c, err)
	}
	out := make([]dto.InventoryEntryResponse, 0, len(rows))
	for _, e := range rows {
		out = append(out, dto.InventoryEntryResponse{
			BaseID:          e.BaseID,
			EquipmentTypeID: e.EquipmentTypeID,
			Quantity:        e.Quantity,
			LastUpdated:     e.LastUpdated,
		})
	}
	return c.JSON(out)
}

// ListAuditLogs returns the audit trail (admin only, enforced in the router).
func (h *ReferenceHandler) ListAuditLogs(c *fiber.Ctx) error {
	filter := repository.AuditLogFilter{
		Action: c.Query("action"),
		Limit:  c.QueryInt("limit"),
	}
	if v := c.QueryInt("user_id"); v > 0 {
		id := int64(v)
		filter.UserID = &id
	}
	if s := c.Query("start_date"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "start_date must be YYYY-MM-DD"})
		}
		filter.From = &t
	}
	if s := c.Query("end_date"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "end_date must be YYYY-MM-DD"})
		}
		// inclusive upper bound on a date column
		t = t.Add(24*time.Hour - time.Nanosecond)
		filter.To = &t
	}

	logs, err := h.rec.List(c.Context(), filter)
	if err != nil {
		return writeError(c, err)
	}
	out := make([]dto.AuditLogResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, dto.AuditLogResponse{
			ID:        l.ID,
			UserID:    l.UserID,
			Action:    l.Action,
			TableName: l.TableName,
			RecordID:  l.RecordID,
			Details:   l.Details,
			IPAddress: l.IPAddress,
			CreatedAt: l.CreatedAt,
		})
	}
	return c.JSON(out)
}
