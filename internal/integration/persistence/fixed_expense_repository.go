package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/budget-ledger/backend/internal/application/adapter"
	"github.com/budget-ledger/backend/internal/domain/entity"
	domainerror "github.com/budget-ledger/backend/internal/domain/error"
	"github.com/budget-ledger/backend/internal/integration/persistence/model"
)

// fixedExpenseRepository implements the adapter.FixedExpenseRepository interface.
type fixedExpenseRepository struct {
	db *gorm.DB
}

// NewFixedExpenseRepository creates a new fixed expense repository instance.
func NewFixedExpenseRepository(db *gorm.DB) adapter.FixedExpenseRepository {
	return &fixedExpenseRepository{
		db: db,
	}
}

// Create creates a new fixed expense in the database.
func (r *fixedExpenseRepository) Create(ctx context.Context, expense *entity.FixedExpense) error {
	expenseModel := model.FixedExpenseFromEntity(expense)
	if err := conn(ctx, r.db).Create(expenseModel).Error; err != nil {
		return domainerror.NewStorageError("create fixed expense", err)
	}
	expense.ID = expenseModel.ID
	return nil
}

// FindByID retrieves a fixed expense by its ID, whatever its status.
func (r *fixedExpenseRepository) FindByID(ctx context.Context, id int64) (*entity.FixedExpense, error) {
	var expenseModel model.FixedExpenseModel
	result := conn(ctx, r.db).Where("id = ?", id).First(&expenseModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrFixedExpenseNotFound
		}
		return nil, domainerror.NewStorageError("find fixed expense", result.Error)
	}
	return expenseModel.ToEntity(), nil
}

// FindAll retrieves every fixed expense, retired ones included.
func (r *fixedExpenseRepository) FindAll(ctx context.Context) ([]*entity.FixedExpense, error) {
	return r.find("list fixed expenses", conn(ctx, r.db))
}

// FindByStatus retrieves fixed expenses with the given status.
func (r *fixedExpenseRepository) FindByStatus(ctx context.Context, status entity.ActivityStatus) ([]*entity.FixedExpense, error) {
	return r.find("list fixed expenses by status", conn(ctx, r.db).Where("status = ?", string(status)))
}

// FindByCategory retrieves fixed expenses with the exact category.
func (r *fixedExpenseRepository) FindByCategory(ctx context.Context, category string) ([]*entity.FixedExpense, error) {
	return r.find("list fixed expenses by category", conn(ctx, r.db).Where("category = ?", category))
}

// Update saves every field of the expense.
func (r *fixedExpenseRepository) Update(ctx context.Context, expense *entity.FixedExpense) error {
	expenseModel := model.FixedExpenseFromEntity(expense)
	if err := conn(ctx, r.db).Save(expenseModel).Error; err != nil {
		return domainerror.NewStorageError("update fixed expense", err)
	}
	return nil
}

func (r *fixedExpenseRepository) find(op string, query *gorm.DB) ([]*entity.FixedExpense, error) {
	var expenseModels []model.FixedExpenseModel
	if err := query.Order("due_date ASC, id ASC").Find(&expenseModels).Error; err != nil {
		return nil, domainerror.NewStorageError(op, err)
	}

	expenses := make([]*entity.FixedExpense, len(expenseModels))
	for i := range expenseModels {
		expenses[i] = expenseModels[i].ToEntity()
	}
	return expenses, nil
}
