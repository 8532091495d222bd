package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/asset-ledger-api/internal/application/analytics"
	"github.com/jhoicas/asset-ledger-api/internal/application/dto"
	"github.com/jhoicas/asset-ledger-api/internal/domain/repository"
	"github.com/jhoicas/asset-ledger-api/internal/infrastructure/pdf"
)

// DashboardHandler serves the balance metrics, movement drill-down, inventory
// summary and the printable report.
type DashboardHandler struct {
	balanceUC  *analytics.BalanceUseCase
	movementUC *analytics.MovementUseCase
	baseRepo   repository.BaseRepository
	reportGen  *pdf.BalanceReportGenerator
}

// NewDashboardHandler builds the handler.
func NewDashboardHandler(
	balanceUC *analytics.BalanceUseCase,
	movementUC *analytics.MovementUseCase,
	baseRepo repository.BaseRepository,
	reportGen *pdf.BalanceReportGenerator,
) *DashboardHandler {
	return &DashboardHandler{balanceUC: balanceUC, movementUC: movementUC, baseRepo: baseRepo, reportGen: reportGen}
}

type dashboardQuery struct {
	BaseID          *int64 `query:"base_id"`
	EquipmentTypeID *int64 `query:"equipment_type_id"`
	StartDate       string `query:"start_date"`
	EndDate         string `query:"end_date"`
}

func (q dashboardQuery) toAnalytics() analytics.Query {
	return analytics.Query{
		BaseID:          q.BaseID,
		EquipmentTypeID: q.EquipmentTypeID,
		StartDate:       q.StartDate,
		EndDate:         q.EndDate,
	}
}

func parseDashboardQuery(c *fiber.Ctx) (dashboardQuery, error) {
	var q dashboardQuery
	if err := c.QueryParser(&q); err != nil {
		return q, err
	}
	return q, nil
}

// Metrics returns the balance report for the actor's scope and date range.
func (h *DashboardHandler) Metrics(c *fiber.Ctx) error {
	q, err := parseDashboardQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "malformed query parameters"})
	}
	report, err := h.balanceUC.ComputeBalance(c.Context(), GetActor(c), q.toAnalytics())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(report)
}

// MovementDetails returns the rows behind the net-movement figure.
func (h *DashboardHandler) MovementDetails(c *fiber.Ctx) error {
	q, err := parseDashboardQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "malformed query parameters"})
	}
	details, err := h.movementUC.Details(c.Context(), GetActor(c), q.toAnalytics())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(details)
}

// InventorySummary returns the named snapshot for the actor's scope.
func (h *DashboardHandler) InventorySummary(c *fiber.Ctx) error {
	q, err := parseDashboardQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "malformed query parameters"})
	}
	items, err := h.balanceUC.InventorySummary(c.Context(), GetActor(c), q.BaseID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(items)
}

// Report renders the balance report and inventory snapshot as a PDF download.
func (h *DashboardHandler) Report(c *fiber.Ctx) error {
	q, err := parseDashboardQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "malformed query parameters"})
	}
	actor := GetActor(c)

	report, err := h.balanceUC.ComputeBalance(c.Context(), actor, q.toAnalytics())
	if err != nil {
		return writeError(c, err)
	}
	items, err := h.balanceUC.InventorySummary(c.Context(), actor, q.BaseID)
	if err != nil {
		return writeError(c, err)
	}

	scopeLabel := "All bases"
	if report.Filters.BaseID != nil {
		base, err := h.baseRepo.GetByID(c.Context(), *report.Filters.BaseID)
		if err != nil {
			return writeError(c, err)
		}
		scopeLabel = base.Name
	}

	doc, err := h.reportGen.Generate(report, scopeLabel, items)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="balance-report.pdf"`)
	return c.Send(doc)
}
