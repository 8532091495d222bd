package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/asset-ledger-api/internal/application/analytics"
	"github.com/jhoicas/asset-ledger-api/internal/application/audit"
	"github.com/jhoicas/asset-ledger-api/internal/application/auth"
	"github.com/jhoicas/asset-ledger-api/internal/application/ledger"
	"github.com/jhoicas/asset-ledger-api/internal/infrastructure/pdf"
	"github.com/jhoicas/asset-ledger-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/asset-ledger-api/internal/interfaces/http"
	"github.com/jhoicas/asset-ledger-api/pkg/config"
	"github.com/jhoicas/asset-ledger-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to PostgreSQL")
	}
	defer pool.Close()

	baseRepo := postgres.NewBaseRepository(pool)
	equipRepo := postgres.NewEquipmentTypeRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	purchaseRepo := postgres.NewPurchaseRepository(pool)
	transferRepo := postgres.NewTransferRepository(pool)
	assignmentRepo := postgres.NewAssignmentRepository(pool)
	expenditureRepo := postgres.NewExpenditureRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	auditRepo := postgres.NewAuditLogRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	recorder := audit.NewRecorder(auditRepo, log)

	authUC := auth.NewUseCase(userRepo, baseRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	purchaseUC := ledger.NewPurchaseUseCase(txRunner, baseRepo, equipRepo, purchaseRepo)
	transferUC := ledger.NewTransferUseCase(txRunner, baseRepo, equipRepo, transferRepo)
	assignmentUC := ledger.NewAssignmentUseCase(txRunner, baseRepo, equipRepo, assignmentRepo)
	expenditureUC := ledger.NewExpenditureUseCase(txRunner, baseRepo, equipRepo, expenditureRepo)
	balanceUC := analytics.NewBalanceUseCase(analyticsRepo)
	movementUC := analytics.NewMovementUseCase(purchaseRepo, transferRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.HTTP.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Asset Ledger API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		PurchaseUC:    purchaseUC,
		TransferUC:    transferUC,
		AssignmentUC:  assignmentUC,
		ExpenditureUC: expenditureUC,
		BalanceUC:     balanceUC,
		MovementUC:    movementUC,
		BaseRepo:      baseRepo,
		EquipRepo:     equipRepo,
		InventoryRepo: inventoryRepo,
		Recorder:      recorder,
		ReportGen:     pdf.NewBalanceReportGenerator(),
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
