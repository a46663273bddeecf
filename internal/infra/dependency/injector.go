// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/finance-tracker/analytics/config"
	"github.com/finance-tracker/analytics/internal/application/adapter"
	"github.com/finance-tracker/analytics/internal/application/usecase/budget"
	"github.com/finance-tracker/analytics/internal/application/usecase/debt"
	"github.com/finance-tracker/analytics/internal/application/usecase/envelope"
	"github.com/finance-tracker/analytics/internal/application/usecase/health"
	"github.com/finance-tracker/analytics/internal/application/usecase/obligation"
	"github.com/finance-tracker/analytics/internal/application/usecase/plan"
	"github.com/finance-tracker/analytics/internal/application/usecase/risk"
	"github.com/finance-tracker/analytics/internal/application/usecase/settlement"
	planengine "github.com/finance-tracker/analytics/internal/domain/engine/plan"
	"github.com/finance-tracker/analytics/internal/infra/server/router"
	"github.com/finance-tracker/analytics/internal/integration/adapters"
	"github.com/finance-tracker/analytics/internal/integration/entrypoint/controller"
	"github.com/finance-tracker/analytics/internal/integration/entrypoint/middleware"
	"github.com/finance-tracker/analytics/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	DB          *gorm.DB
	Router      *router.Router
	RateLimiter *middleware.RateLimiter
}

// Options carries the optional collaborators of the injector.
type Options struct {
	// ResultCache stores debt simulations. Nil disables caching.
	ResultCache adapter.ResultCache
	// Explainer writes debt plan explanations. Nil uses Gemini when configured.
	Explainer adapter.ExplanationService
	// Now overrides the clock. Nil uses time.Now.
	Now func() time.Time
	// Probes are extra dependency checks reported by the health endpoint.
	Probes []controller.HealthProbe
}

var errEmptyCatalog = errors.New("template catalog is empty")

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, catalog planengine.Catalog, opts Options) *Injector {
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	explainer := opts.Explainer
	if explainer == nil {
		explainer = adapters.NewGeminiService(cfg.AI.GeminiAPIKey, cfg.AI.Model)
	}

	// Create repositories
	obligationRepo := persistence.NewObligationRepository(db)
	planRepo := persistence.NewPlanRepository(db)

	// Create adapters/services
	tokenService := adapters.NewTokenService(cfg.JWT.Secret)

	// Create obligation use cases
	createObligationUseCase := obligation.NewCreateObligationUseCase(obligationRepo)
	listObligationsUseCase := obligation.NewListObligationsUseCase(obligationRepo)
	markObligationPaidUseCase := obligation.NewMarkObligationPaidUseCase(obligationRepo)

	// Create engine use cases
	assessRiskUseCase := risk.NewAssessRiskUseCase(obligationRepo, now)
	forecastBudgetUseCase := budget.NewForecastBudgetUseCase(cfg.Engine.EWMAAlpha, cfg.Engine.ForecastConfidence, now)
	simulateDebtsUseCase := debt.NewSimulateDebtsUseCase(opts.ResultCache, cfg.Redis.ResultTTL, explainer, cfg.Engine.SensitivityStep)
	compareStrategiesUseCase := debt.NewCompareStrategiesUseCase(opts.ResultCache, cfg.Redis.ResultTTL)
	projectEnvelopesUseCase := envelope.NewProjectEnvelopesUseCase(now)
	allocateSurplusUseCase := envelope.NewAllocateSurplusUseCase()
	calculateHealthScoreUseCase := health.NewCalculateHealthScoreUseCase()
	settleGroupUseCase := settlement.NewSettleGroupUseCase()

	// Create plan use cases
	createPlanUseCase := plan.NewCreatePlanUseCase(planRepo, obligationRepo, catalog, now)
	listPlansUseCase := plan.NewListPlansUseCase(planRepo)
	togglePlanActionUseCase := plan.NewTogglePlanActionUseCase(planRepo)
	listTemplatesUseCase := plan.NewListTemplatesUseCase(catalog)

	// Create controllers
	probes := []controller.HealthProbe{
		{Name: "database", Check: func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		}},
		{Name: "templates", Check: func(context.Context) error {
			if catalog.Len() == 0 {
				return errEmptyCatalog
			}
			return nil
		}},
	}
	healthController := controller.NewHealthController(now, append(probes, opts.Probes...)...)

	obligationController := controller.NewObligationController(
		createObligationUseCase,
		listObligationsUseCase,
		markObligationPaidUseCase,
	)
	riskController := controller.NewRiskController(assessRiskUseCase)
	budgetController := controller.NewBudgetController(forecastBudgetUseCase)
	debtController := controller.NewDebtController(simulateDebtsUseCase, compareStrategiesUseCase)
	envelopeController := controller.NewEnvelopeController(projectEnvelopesUseCase, allocateSurplusUseCase)
	healthScoreController := controller.NewHealthScoreController(calculateHealthScoreUseCase)
	settlementController := controller.NewSettlementController(settleGroupUseCase)
	planController := controller.NewPlanController(
		createPlanUseCase,
		listPlansUseCase,
		togglePlanActionUseCase,
		listTemplatesUseCase,
	)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var computeRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		computeRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		computeRateLimiter = middleware.NewRateLimiterWithConfig(cfg.Engine.RateLimitRequests, cfg.Engine.RateLimitWindow)
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		obligationController,
		riskController,
		budgetController,
		debtController,
		envelopeController,
		healthScoreController,
		settlementController,
		planController,
		computeRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:      cfg,
		DB:          db,
		Router:      r,
		RateLimiter: computeRateLimiter,
	}
}
