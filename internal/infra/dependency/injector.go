// Package dependency provides dependency injection for the application.
package dependency

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/budget-ledger/backend/config"
	"github.com/budget-ledger/backend/internal/application/adapter"
	"github.com/budget-ledger/backend/internal/application/usecase/budget"
	"github.com/budget-ledger/backend/internal/application/usecase/fixedexpense"
	"github.com/budget-ledger/backend/internal/application/usecase/goal"
	"github.com/budget-ledger/backend/internal/application/usecase/report"
	"github.com/budget-ledger/backend/internal/application/usecase/settings"
	"github.com/budget-ledger/backend/internal/application/usecase/transaction"
	"github.com/budget-ledger/backend/internal/infra/cache"
	"github.com/budget-ledger/backend/internal/infra/server/router"
	"github.com/budget-ledger/backend/internal/integration/entrypoint/controller"
	"github.com/budget-ledger/backend/internal/integration/entrypoint/middleware"
	"github.com/budget-ledger/backend/internal/integration/persistence"
	"github.com/budget-ledger/backend/internal/integration/render"
	"github.com/budget-ledger/backend/internal/integration/worker"
)

// Injector holds all application dependencies.
type Injector struct {
	Config       *config.Config
	DB           *gorm.DB
	Router       *router.Router
	ReportWorker *worker.ReportWorker
}

// repositories groups the stores shared by every slice.
type repositories struct {
	transactions  adapter.TransactionRepository
	budgets       adapter.BudgetRepository
	fixedExpenses adapter.FixedExpenseRepository
	goals         adapter.GoalRepository
	reports       adapter.ReportRepository
	settings      adapter.SettingsRepository
	txManager     adapter.TransactionManager
}

func newRepositories(db *gorm.DB) *repositories {
	return &repositories{
		transactions:  persistence.NewTransactionRepository(db),
		budgets:       persistence.NewBudgetRepository(db),
		fixedExpenses: persistence.NewFixedExpenseRepository(db),
		goals:         persistence.NewGoalRepository(db),
		reports:       persistence.NewReportRepository(db),
		settings:      persistence.NewSettingsRepository(db),
		txManager:     persistence.NewTransactionManager(db),
	}
}

// NewInjector creates a new dependency injector with all dependencies wired.
// redisClient may be nil, in which case rate limits are kept in memory.
func NewInjector(
	cfg *config.Config,
	db *gorm.DB,
	dbHealthChecker controller.HealthChecker,
	redisClient redis.UniversalClient,
) *Injector {
	repos := newRepositories(db)
	renderer := render.NewReportRenderer()
	generator := report.NewGenerator(repos.transactions, renderer)
	spending := budget.NewSpendingCalculator(repos.transactions)

	// Create transaction use cases
	transactionController := controller.NewTransactionController(
		transaction.NewCreateTransactionUseCase(repos.transactions, repos.txManager),
		transaction.NewGetTransactionUseCase(repos.transactions),
		transaction.NewListTransactionsUseCase(repos.transactions),
		transaction.NewListTransactionsByTypeUseCase(repos.transactions),
		transaction.NewListTransactionsByCategoryUseCase(repos.transactions),
		transaction.NewListTransactionsByDateRangeUseCase(repos.transactions),
		transaction.NewUpdateTransactionUseCase(repos.transactions, repos.txManager),
		transaction.NewDeleteTransactionUseCase(repos.transactions, repos.txManager),
		transaction.NewSummarizeTransactionsUseCase(repos.transactions),
	)

	// Create budget use cases
	budgetController := controller.NewBudgetController(
		budget.NewCreateBudgetUseCase(repos.budgets, spending, repos.txManager),
		budget.NewGetBudgetUseCase(repos.budgets, spending),
		budget.NewListBudgetsUseCase(repos.budgets, spending),
		budget.NewUpdateBudgetUseCase(repos.budgets, spending, repos.txManager),
		budget.NewDeleteBudgetUseCase(repos.budgets, repos.txManager),
	)

	// Create fixed expense use cases
	fixedExpenseController := controller.NewFixedExpenseController(
		fixedexpense.NewCreateFixedExpenseUseCase(repos.fixedExpenses, repos.txManager),
		fixedexpense.NewGetFixedExpenseUseCase(repos.fixedExpenses),
		fixedexpense.NewListFixedExpensesUseCase(repos.fixedExpenses),
		fixedexpense.NewUpdateFixedExpenseUseCase(repos.fixedExpenses, repos.txManager),
		fixedexpense.NewDeleteFixedExpenseUseCase(repos.fixedExpenses, repos.txManager),
		fixedexpense.NewMonthlyCommitmentUseCase(repos.fixedExpenses),
	)

	// Create goal use cases
	goalController := controller.NewGoalController(
		goal.NewListGoalsUseCase(repos.goals),
		goal.NewCreateGoalUseCase(repos.goals, repos.txManager),
		goal.NewGetGoalUseCase(repos.goals),
		goal.NewUpdateGoalUseCase(repos.goals, repos.txManager),
		goal.NewDeleteGoalUseCase(repos.goals, repos.txManager),
	)

	// Create report use cases
	reportController := controller.NewReportController(
		report.NewCreateReportUseCase(repos.reports, generator, repos.txManager),
		report.NewGetReportUseCase(repos.reports),
		report.NewListReportsUseCase(repos.reports),
		report.NewUpdateReportUseCase(repos.reports, generator, repos.txManager),
		report.NewDeleteReportUseCase(repos.reports, repos.txManager),
		report.NewExportReportUseCase(repos.reports, renderer),
	)

	// Create settings use cases
	settingsController := controller.NewSettingsController(
		settings.NewGetSettingsUseCase(repos.settings),
		settings.NewCreateSettingsUseCase(repos.settings, repos.txManager),
		settings.NewUpdateSettingsUseCase(repos.settings, repos.txManager),
		settings.NewDeleteSettingsUseCase(repos.settings, repos.txManager),
	)

	// Create middleware
	var rateLimitStore middleware.RateLimitStore = middleware.NewMemoryRateLimitStore()
	var redisHealthChecker controller.HealthChecker
	if redisClient != nil {
		rateLimitStore = cache.NewRateLimitStore(redisClient)
		redisHealthChecker = cache.HealthChecker(redisClient)
	}
	writeRateLimiter := middleware.NewRateLimiterWithConfig(rateLimitStore, cfg.RateLimit.Requests, cfg.RateLimit.Window)

	healthController := controller.NewHealthController(dbHealthChecker, redisHealthChecker)

	// Create router
	r := router.NewRouter(
		healthController,
		transactionController,
		budgetController,
		fixedExpenseController,
		goalController,
		reportController,
		settingsController,
		writeRateLimiter,
	)

	return &Injector{
		Config:       cfg,
		DB:           db,
		Router:       r,
		ReportWorker: newReportWorker(cfg, repos),
	}
}

// NewReportWorker wires only what background report generation needs.
func NewReportWorker(cfg *config.Config, db *gorm.DB) *worker.ReportWorker {
	return newReportWorker(cfg, newRepositories(db))
}

func newReportWorker(cfg *config.Config, repos *repositories) *worker.ReportWorker {
	generator := report.NewGenerator(repos.transactions, render.NewReportRenderer())
	generatePending := report.NewGeneratePendingReportsUseCase(repos.reports, generator, repos.txManager)

	return worker.NewReportWorker(generatePending, worker.ReportWorkerConfig{
		PollInterval: cfg.Worker.PollInterval,
		BatchSize:    cfg.Worker.BatchSize,
	})
}
