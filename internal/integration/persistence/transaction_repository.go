// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/budget-ledger/backend/internal/application/adapter"
	"github.com/budget-ledger/backend/internal/domain/entity"
	domainerror "github.com/budget-ledger/backend/internal/domain/error"
	"github.com/budget-ledger/backend/internal/integration/persistence/model"
)

const ledgerOrder = "date ASC, id ASC"

// transactionRepository implements the adapter.TransactionRepository interface.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a new transaction in the database.
func (r *transactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := model.TransactionFromEntity(transaction)
	if err := conn(ctx, r.db).Create(transactionModel).Error; err != nil {
		return domainerror.NewStorageError("create transaction", err)
	}
	transaction.ID = transactionModel.ID
	return nil
}

// FindByID retrieves a transaction by its ID.
func (r *transactionRepository) FindByID(ctx context.Context, id int64) (*entity.Transaction, error) {
	var transactionModel model.TransactionModel
	result := conn(ctx, r.db).Where("id = ?", id).First(&transactionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTransactionNotFound
		}
		return nil, domainerror.NewStorageError("find transaction", result.Error)
	}
	return transactionModel.ToEntity(), nil
}

// FindAll retrieves every transaction.
func (r *transactionRepository) FindAll(ctx context.Context) ([]*entity.Transaction, error) {
	return r.find("list transactions", conn(ctx, r.db))
}

// FindByType retrieves transactions of the given type.
func (r *transactionRepository) FindByType(ctx context.Context, transactionType entity.TransactionType) ([]*entity.Transaction, error) {
	return r.find("list transactions by type", conn(ctx, r.db).Where("type = ?", string(transactionType)))
}

// FindByCategory retrieves transactions with the exact category.
func (r *transactionRepository) FindByCategory(ctx context.Context, category string) ([]*entity.Transaction, error) {
	return r.find("list transactions by category", conn(ctx, r.db).Where("category = ?", category))
}

// FindByDateRange retrieves transactions whose date is within [start, end].
func (r *transactionRepository) FindByDateRange(
	ctx context.Context,
	start, end time.Time,
	categories ...string,
) ([]*entity.Transaction, error) {
	window := entity.NewDateRange(start, end)
	if window.IsEmpty() {
		return []*entity.Transaction{}, nil
	}

	query := conn(ctx, r.db).Where("date >= ? AND date <= ?", window.Start, window.End)
	if len(categories) > 0 {
		query = query.Where("category IN ?", categories)
	}
	return r.find("list transactions by date range", query)
}

// ExpenseAmounts returns the amounts of matching EXPENSE transactions.
func (r *transactionRepository) ExpenseAmounts(
	ctx context.Context,
	category string,
	start, end time.Time,
) ([]decimal.Decimal, error) {
	window := entity.NewDateRange(start, end)
	if window.IsEmpty() {
		return []decimal.Decimal{}, nil
	}

	var amounts []decimal.Decimal
	result := conn(ctx, r.db).
		Model(&model.TransactionModel{}).
		Where("type = ? AND category = ? AND date >= ? AND date <= ?",
			string(entity.TransactionTypeExpense), category, window.Start, window.End).
		Pluck("amount", &amounts)
	if result.Error != nil {
		return nil, domainerror.NewStorageError("sum budget spending", result.Error)
	}
	return amounts, nil
}

// Update updates an existing transaction in the database.
func (r *transactionRepository) Update(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := model.TransactionFromEntity(transaction)
	if err := conn(ctx, r.db).Save(transactionModel).Error; err != nil {
		return domainerror.NewStorageError("update transaction", err)
	}
	return nil
}

// Delete removes a transaction permanently.
func (r *transactionRepository) Delete(ctx context.Context, id int64) error {
	result := conn(ctx, r.db).Delete(&model.TransactionModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerror.NewStorageError("delete transaction", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrTransactionNotFound
	}
	return nil
}

func (r *transactionRepository) find(op string, query *gorm.DB) ([]*entity.Transaction, error) {
	var transactionModels []model.TransactionModel
	if err := query.Order(ledgerOrder).Find(&transactionModels).Error; err != nil {
		return nil, domainerror.NewStorageError(op, err)
	}

	transactions := make([]*entity.Transaction, len(transactionModels))
	for i := range transactionModels {
		transactions[i] = transactionModels[i].ToEntity()
	}
	return transactions, nil
}
