package adapter

import (
	"context"
	"time"

	"github.com/budget-ledger/backend/internal/domain/entity"
)

// BudgetRepository defines the interface for budget persistence operations.
// Implementations never persist Budget.Spent.
type BudgetRepository interface {
	Create(ctx context.Context, budget *entity.Budget) error
	FindByID(ctx context.Context, id int64) (*entity.Budget, error)
	FindAll(ctx context.Context) ([]*entity.Budget, error)
	FindByStatus(ctx context.Context, status entity.ActivityStatus) ([]*entity.Budget, error)
	FindByCategory(ctx context.Context, category string) ([]*entity.Budget, error)

	// FindByStartDateRange retrieves budgets whose start date is within [start, end].
	FindByStartDateRange(ctx context.Context, start, end time.Time) ([]*entity.Budget, error)

	Update(ctx context.Context, budget *entity.Budget) error
	Delete(ctx context.Context, id int64) error
}
