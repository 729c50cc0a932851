// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/budget-ledger/backend/internal/integration/entrypoint/controller"
	"github.com/budget-ledger/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                 *gin.Engine
	healthController       *controller.HealthController
	transactionController  *controller.TransactionController
	budgetController       *controller.BudgetController
	fixedExpenseController *controller.FixedExpenseController
	goalController         *controller.GoalController
	reportController       *controller.ReportController
	settingsController     *controller.SettingsController
	writeRateLimiter       *middleware.RateLimiter
}

// NewRouter creates a new router instance with all dependencies.
// A nil controller leaves its routes unregistered; a nil rate limiter
// disables write limiting.
func NewRouter(
	healthController *controller.HealthController,
	transactionController *controller.TransactionController,
	budgetController *controller.BudgetController,
	fixedExpenseController *controller.FixedExpenseController,
	goalController *controller.GoalController,
	reportController *controller.ReportController,
	settingsController *controller.SettingsController,
	writeRateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:       healthController,
		transactionController:  transactionController,
		budgetController:       budgetController,
		fixedExpenseController: fixedExpenseController,
		goalController:         goalController,
		reportController:       reportController,
		settingsController:     settingsController,
		writeRateLimiter:       writeRateLimiter,
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

	r.engine = gin.New()
	r.engine.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(),
	)

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// limitWrites returns the middleware guarding mutating routes.
func (r *Router) limitWrites() gin.HandlerFunc {
	if r.writeRateLimiter == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return r.writeRateLimiter.Middleware()
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	write := r.limitWrites()

	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		if r.transactionController != nil {
			transactions := v1.Group("/transactions")
			{
				transactions.GET("", r.transactionController.List)
				transactions.GET("/summary", r.transactionController.Summary)
				transactions.GET("/range", r.transactionController.ListByDateRange)
				transactions.GET("/type/:type", r.transactionController.ListByType)
				transactions.GET("/category/:category", r.transactionController.ListByCategory)
				transactions.GET("/:id", r.transactionController.Get)
				transactions.POST("", write, r.transactionController.Create)
				transactions.PUT("/:id", write, r.transactionController.Update)
				transactions.DELETE("/:id", write, r.transactionController.Delete)
			}
		}

		if r.budgetController != nil {
			budgets := v1.Group("/budgets")
			{
				budgets.GET("", r.budgetController.List)
				budgets.GET("/active", r.budgetController.ListActive)
				budgets.GET("/range", r.budgetController.ListByDateRange)
				budgets.GET("/status/:status", r.budgetController.ListByStatus)
				budgets.GET("/category/:category", r.budgetController.ListByCategory)
				budgets.GET("/:id", r.budgetController.Get)
				budgets.POST("", write, r.budgetController.Create)
				budgets.PUT("/:id", write, r.budgetController.Update)
				budgets.DELETE("/:id", write, r.budgetController.Delete)
			}
		}

		if r.fixedExpenseController != nil {
			fixedExpenses := v1.Group("/fixed-expenses")
			{
				fixedExpenses.GET("", r.fixedExpenseController.List)
				fixedExpenses.GET("/active", r.fixedExpenseController.ListActive)
				fixedExpenses.GET("/commitment", r.fixedExpenseController.Commitment)
				fixedExpenses.GET("/category/:category", r.fixedExpenseController.ListByCategory)
				fixedExpenses.GET("/:id", r.fixedExpenseController.Get)
				fixedExpenses.POST("", write, r.fixedExpenseController.Create)
				fixedExpenses.PUT("/:id", write, r.fixedExpenseController.Update)
				fixedExpenses.DELETE("/:id", write, r.fixedExpenseController.Delete)
			}
		}

		if r.goalController != nil {
			goals := v1.Group("/goals")
			{
				goals.GET("", r.goalController.List)
				goals.GET("/active", r.goalController.ListActive)
				goals.GET("/:id", r.goalController.Get)
				goals.POST("", write, r.goalController.Create)
				goals.PUT("/:id", write, r.goalController.Update)
				goals.DELETE("/:id", write, r.goalController.Delete)
			}
		}

		if r.reportController != nil {
			reports := v1.Group("/reports")
			{
				reports.GET("", r.reportController.List)
				reports.GET("/range", r.reportController.ListByDateRange)
				reports.GET("/type/:type", r.reportController.ListByType)
				reports.GET("/status/:status", r.reportController.ListByStatus)
				reports.GET("/:id", r.reportController.Get)
				reports.GET("/:id/export", r.reportController.Export)
				reports.POST("", write, r.reportController.Create)
				reports.PUT("/:id", write, r.reportController.Update)
				reports.DELETE("/:id", write, r.reportController.Delete)
			}
		}

		if r.settingsController != nil {
			settings := v1.Group("/settings")
			{
				settings.GET("", r.settingsController.Get)
				settings.POST("", write, r.settingsController.Create)
				settings.PUT("", write, r.settingsController.Update)
				settings.DELETE("", write, r.settingsController.Delete)
			}
		}
	}
}
