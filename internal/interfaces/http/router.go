package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/asset-ledger-api/internal/application/analytics"
	"github.com/jhoicas/asset-ledger-api/internal/application/audit"
	"github.com/jhoicas/asset-ledger-api/internal/application/auth"
	"github.com/jhoicas/asset-ledger-api/internal/application/ledger"
	"github.com/jhoicas/asset-ledger-api/internal/domain/repository"
	"github.com/jhoicas/asset-ledger-api/internal/domain/scope"
	"github.com/jhoicas/asset-ledger-api/internal/infrastructure/pdf"
)

// RouterDeps carries everything the routes need.
type RouterDeps struct {
	AuthUC        *auth.UseCase
	PurchaseUC    *ledger.PurchaseUseCase
	TransferUC    *ledger.TransferUseCase
	AssignmentUC  *ledger.AssignmentUseCase
	ExpenditureUC *ledger.ExpenditureUseCase
	BalanceUC     *analytics.BalanceUseCase
	MovementUC    *analytics.MovementUseCase
	BaseRepo      repository.BaseRepository
	EquipRepo     repository.EquipmentTypeRepository
	InventoryRepo repository.InventoryRepository
	Recorder      *audit.Recorder
	ReportGen     *pdf.BalanceReportGenerator
	JWTSecret     string
}

// Router registers the API routes. Fine-grained authorization (permission
// matrix, base confinement) lives in the use cases; RequireRole only gates the
// admin-only surfaces.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (login is public)
	authHandler := NewAuthHandler(deps.AuthUC, deps.Recorder)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)
	authGroup.Put("/change-password", AuthMiddleware(deps.JWTSecret), authHandler.ChangePassword)

	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Reference data
	refHandler := NewReferenceHandler(deps.BaseRepo, deps.EquipRepo, deps.InventoryRepo, deps.Recorder)
	protected.Get("/bases", refHandler.ListBases)
	protected.Get("/equipment-types", refHandler.ListEquipmentTypes)
	protected.Get("/inventory", refHandler.ListInventory)

	// Purchases
	purchases := protected.Group("/purchases")
	purchaseHandler := NewPurchaseHandler(deps.PurchaseUC, deps.Recorder)
	purchases.Post("/", purchaseHandler.Create)
	purchases.Get("/", purchaseHandler.List)
	purchases.Put("/:id/receive", purchaseHandler.Receive)
	purchases.Delete("/:id", purchaseHandler.Delete)

	// Transfers
	transfers := protected.Group("/transfers")
	transferHandler := NewTransferHandler(deps.TransferUC, deps.Recorder)
	transfers.Post("/", transferHandler.Create)
	transfers.Get("/", transferHandler.List)
	transfers.Put("/:id/status", transferHandler.SetStatus)
	transfers.Delete("/:id", transferHandler.Delete)

	// Assignments
	assignments := protected.Group("/assignments")
	assignmentHandler := NewAssignmentHandler(deps.AssignmentUC, deps.Recorder)
	assignments.Post("/", assignmentHandler.Create)
	assignments.Get("/", assignmentHandler.List)
	assignments.Put("/:id/return", assignmentHandler.Return)
	assignments.Delete("/:id", assignmentHandler.Delete)

	// Expenditures
	expenditures := protected.Group("/expenditures")
	expenditureHandler := NewExpenditureHandler(deps.ExpenditureUC, deps.Recorder)
	expenditures.Post("/", expenditureHandler.Create)
	expenditures.Get("/", expenditureHandler.List)
	expenditures.Delete("/:id", expenditureHandler.Delete)

	// Dashboard
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.BalanceUC, deps.MovementUC, deps.BaseRepo, deps.ReportGen)
	dashboard.Get("/metrics", dashboardHandler.Metrics)
	dashboard.Get("/movement-details", dashboardHandler.MovementDetails)
	dashboard.Get("/inventory-summary", dashboardHandler.InventorySummary)
	dashboard.Get("/report", dashboardHandler.Report)

	// Admin-only surfaces
	adminOnly := protected.Group("/", RequireRole(scope.RoleAdmin))
	adminOnly.Get("/users", authHandler.ListUsers)
	adminOnly.Get("/audit-logs", refHandler.ListAuditLogs)
}
