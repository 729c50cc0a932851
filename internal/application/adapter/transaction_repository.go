// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/budget-ledger/backend/internal/domain/entity"
)

// TransactionRepository defines the interface for ledger persistence operations.
// Every listing is ordered by date then id, ascending.
type TransactionRepository interface {
	// Create stores a new transaction and assigns its ID.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id int64) (*entity.Transaction, error)

	// FindAll retrieves every transaction.
	FindAll(ctx context.Context) ([]*entity.Transaction, error)

	// FindByType retrieves transactions of the given type.
	FindByType(ctx context.Context, transactionType entity.TransactionType) ([]*entity.Transaction, error)

	// FindByCategory retrieves transactions with the exact category.
	FindByCategory(ctx context.Context, category string) ([]*entity.Transaction, error)

	// FindByDateRange retrieves transactions whose date is within [start, end].
	// Categories, when non-empty, restricts the result to those categories.
	FindByDateRange(ctx context.Context, start, end time.Time, categories ...string) ([]*entity.Transaction, error)

	// ExpenseAmounts returns the amounts of EXPENSE transactions in category
	// dated within [start, end].
	ExpenseAmounts(ctx context.Context, category string, start, end time.Time) ([]decimal.Decimal, error)

	// Update replaces the mutable fields of an existing transaction.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete removes a transaction permanently.
	Delete(ctx context.Context, id int64) error
}
