package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hutecki/bankiety-api/internal/application/auth"
	"github.com/hutecki/bankiety-api/internal/application/ledger"
	"github.com/hutecki/bankiety-api/internal/application/report"
	"github.com/hutecki/bankiety-api/internal/application/usecase"
	"github.com/hutecki/bankiety-api/internal/domain/entity"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	ProductUC   *usecase.ProductUseCase
	MovementUC  *usecase.MovementUseCase
	ApplyUC     *ledger.ApplyMovementUseCase
	RetentionUC *usecase.RetentionUseCase
	ResetUC     *usecase.ResetUseCase
	PlannerUC   *usecase.PlannerUseCase
	ReportUC    *report.TurnoverUseCase
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Protected routes (Bearer token required)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Only admins create accounts; the seed binary bootstraps the first one.
	protected.Post("/auth/register", RequireRole(entity.RoleAdmin), authHandler.Register)

	// Products and movements, parametrized by warehouse domain
	magazyn := protected.Group("/magazyn/:domain")
	productHandler := NewProductHandler(deps.ProductUC, deps.ApplyUC)
	magazyn.Post("/products", productHandler.Create)
	magazyn.Get("/products", productHandler.List)
	magazyn.Get("/products/:id", productHandler.GetByID)
	magazyn.Put("/products/:id", productHandler.Update)
	magazyn.Delete("/products/:id", productHandler.Delete)

	movementHandler := NewMovementHandler(deps.MovementUC)
	magazyn.Get("/movements", movementHandler.List)

	// Weekly banquet planner
	planner := protected.Group("/planner")
	plannerHandler := NewPlannerHandler(deps.PlannerUC)
	planner.Get("/", plannerHandler.ListWeek)
	planner.Post("/", plannerHandler.Create)
	planner.Post("/cleanup", plannerHandler.CleanupOldWeeks)
	planner.Put("/:id", plannerHandler.Update)
	planner.Delete("/:id", plannerHandler.Delete)

	// Turnover reporting
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/turnover", reportHandler.Turnover)
	reports.Get("/turnover/pdf", reportHandler.TurnoverPDF)

	// Destructive maintenance (admin role required)
	admin := protected.Group("/admin", RequireRole(entity.RoleAdmin))
	adminHandler := NewAdminHandler(deps.RetentionUC, deps.ResetUC)
	admin.Post("/movements/cleanup", adminHandler.CleanupMovements)
	admin.Get("/movements/retention", adminHandler.RetentionStats)
	admin.Post("/products/zero-quantities", adminHandler.ZeroQuantities)
}
