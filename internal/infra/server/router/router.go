// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/analytics/internal/integration/entrypoint/controller"
	"github.com/finance-tracker/analytics/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	obligationController  *controller.ObligationController
	riskController        *controller.RiskController
	budgetController      *controller.BudgetController
	debtController        *controller.DebtController
	envelopeController    *controller.EnvelopeController
	healthScoreController *controller.HealthScoreController
	settlementController  *controller.SettlementController
	planController        *controller.PlanController
	computeRateLimiter    *middleware.RateLimiter
	authMiddleware        *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	obligationController *controller.ObligationController,
	riskController *controller.RiskController,
	budgetController *controller.BudgetController,
	debtController *controller.DebtController,
	envelopeController *controller.EnvelopeController,
	healthScoreController *controller.HealthScoreController,
	settlementController *controller.SettlementController,
	planController *controller.PlanController,
	computeRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:      healthController,
		obligationController:  obligationController,
		riskController:        riskController,
		budgetController:      budgetController,
		debtController:        debtController,
		envelopeController:    envelopeController,
		healthScoreController: healthScoreController,
		settlementController:  settlementController,
		planController:        planController,
		computeRateLimiter:    computeRateLimiter,
		authMiddleware:        authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")

	// Template catalog is public
	if r.planController != nil {
		v1.GET("/templates", r.planController.ListTemplates)
	}

	if r.authMiddleware == nil {
		return
	}

	protected := v1.Group("")
	protected.Use(r.authMiddleware.Authenticate())

	// Compute endpoints are throttled per user
	throttle := r.throttle()
	compute := protected.Group("")
	compute.Use(throttle)

	// Obligation routes
	if r.obligationController != nil {
		obligations := protected.Group("/obligations")
		{
			obligations.GET("", r.obligationController.List)
			obligations.POST("", r.obligationController.Create)
			obligations.PATCH("/:id/paid", r.obligationController.MarkPaid)
		}
	}

	// Risk routes
	if r.riskController != nil {
		compute.POST("/risk", r.riskController.Assess)
	}

	// Budget routes
	if r.budgetController != nil {
		compute.POST("/budgets/forecast", r.budgetController.Forecast)
	}

	// Debt routes
	if r.debtController != nil {
		debts := compute.Group("/debts")
		{
			debts.POST("/simulate", r.debtController.Simulate)
			debts.POST("/compare-strategies", r.debtController.CompareStrategies)
		}
	}

	// Envelope routes
	if r.envelopeController != nil {
		envelopes := compute.Group("/envelopes")
		{
			envelopes.POST("/project", r.envelopeController.Project)
			envelopes.POST("/allocate", r.envelopeController.Allocate)
		}
	}

	// Health score routes
	if r.healthScoreController != nil {
		compute.POST("/health-score", r.healthScoreController.Calculate)
	}

	// Settlement routes
	if r.settlementController != nil {
		compute.POST("/settlements", r.settlementController.Settle)
	}

	// Plan routes
	if r.planController != nil {
		plans := protected.Group("/plans")
		{
			plans.GET("", r.planController.List)
			plans.POST("", throttle, r.planController.Create)
			plans.PATCH("/:id/actions/:actionId", r.planController.ToggleAction)
		}
	}
}

// throttle returns the compute rate limiter, or a pass-through when none is configured.
func (r *Router) throttle() gin.HandlerFunc {
	if r.computeRateLimiter == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return r.computeRateLimiter.Middleware()
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
