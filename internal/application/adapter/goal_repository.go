package adapter

import (
	"context"

	"github.com/budget-ledger/backend/internal/domain/entity"
)

// GoalRepository defines the interface for goal persistence operations.
type GoalRepository interface {
	// Create creates a new goal in the database.
	Create(ctx context.Context, goal *entity.FinancialGoal) error

	// FindByID retrieves a goal by its ID.
	FindByID(ctx context.Context, id int64) (*entity.FinancialGoal, error)

	// FindAll retrieves every goal.
	FindAll(ctx context.Context) ([]*entity.FinancialGoal, error)

	// FindByStatus retrieves goals with the given status.
	FindByStatus(ctx context.Context, status entity.GoalStatus) ([]*entity.FinancialGoal, error)

	// Update updates an existing goal in the database.
	Update(ctx context.Context, goal *entity.FinancialGoal) error

	// Delete removes a goal from the database permanently.
	Delete(ctx context.Context, id int64) error
}
