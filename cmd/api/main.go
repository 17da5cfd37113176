package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/hutecki/bankiety-api/internal/application/auth"
	"github.com/hutecki/bankiety-api/internal/application/ledger"
	"github.com/hutecki/bankiety-api/internal/application/report"
	"github.com/hutecki/bankiety-api/internal/application/usecase"
	"github.com/hutecki/bankiety-api/internal/infrastructure/cache"
	infrapdf "github.com/hutecki/bankiety-api/internal/infrastructure/pdf"
	"github.com/hutecki/bankiety-api/internal/infrastructure/postgres"
	httpRouter "github.com/hutecki/bankiety-api/internal/interfaces/http"
	"github.com/hutecki/bankiety-api/pkg/config"
	"github.com/hutecki/bankiety-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	planRepo := postgres.NewWeeklyPlanRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	applyUC := ledger.NewApplyMovementUseCase(txRunner)
	productUC := usecase.NewProductUseCase(productRepo, movementRepo, txRunner)
	movementUC := usecase.NewMovementUseCase(movementRepo)
	retentionUC := usecase.NewRetentionUseCase(movementRepo, log)
	resetUC := usecase.NewResetUseCase(productRepo, log)
	plannerUC := usecase.NewPlannerUseCase(planRepo)

	// Report cache is optional; without Redis the report always hits the DB.
	var reportCache report.Cache
	if cfg.Redis.Addr != "" {
		redisClient, err := cache.NewRedisClient(cfg.Redis.Addr)
		if err != nil {
			log.Warn().Err(err).Msg("Redis unavailable, report cache disabled")
		} else {
			defer redisClient.Close()
			reportCache = redisClient
		}
	}
	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	reportUC := report.NewTurnoverUseCase(reportRepo, reportCache, pdfGenerator, log)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Bankiety API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:   productUC,
		MovementUC:  movementUC,
		ApplyUC:     applyUC,
		RetentionUC: retentionUC,
		ResetUC:     resetUC,
		PlannerUC:   plannerUC,
		ReportUC:    reportUC,
		AuthUC:      authUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
