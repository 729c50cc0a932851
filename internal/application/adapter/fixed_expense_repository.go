package adapter

import (
	"context"

	"github.com/budget-ledger/backend/internal/domain/entity"
)

// FixedExpenseRepository defines the interface for fixed expense persistence operations.
type FixedExpenseRepository interface {
	Create(ctx context.Context, expense *entity.FixedExpense) error
	FindByID(ctx context.Context, id int64) (*entity.FixedExpense, error)
	FindAll(ctx context.Context) ([]*entity.FixedExpense, error)
	FindByStatus(ctx context.Context, status entity.ActivityStatus) ([]*entity.FixedExpense, error)
	FindByCategory(ctx context.Context, category string) ([]*entity.FixedExpense, error)

	// Update saves every field of the expense, including its status.
	Update(ctx context.Context, expense *entity.FixedExpense) error
}
