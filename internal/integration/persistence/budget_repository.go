package persistence

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/budget-ledger/backend/internal/application/adapter"
	"github.com/budget-ledger/backend/internal/domain/entity"
	domainerror "github.com/budget-ledger/backend/internal/domain/error"
	"github.com/budget-ledger/backend/internal/integration/persistence/model"
)

// budgetRepository implements the adapter.BudgetRepository interface.
type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository instance.
func NewBudgetRepository(db *gorm.DB) adapter.BudgetRepository {
	return &budgetRepository{
		db: db,
	}
}

// Create creates a new budget in the database.
func (r *budgetRepository) Create(ctx context.Context, budget *entity.Budget) error {
	budgetModel := model.BudgetFromEntity(budget)
	if err := conn(ctx, r.db).Create(budgetModel).Error; err != nil {
		return domainerror.NewStorageError("create budget", err)
	}
	budget.ID = budgetModel.ID
	return nil
}

// FindByID retrieves a budget by its ID.
func (r *budgetRepository) FindByID(ctx context.Context, id int64) (*entity.Budget, error) {
	var budgetModel model.BudgetModel
	result := conn(ctx, r.db).Where("id = ?", id).First(&budgetModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrBudgetNotFound
		}
		return nil, domainerror.NewStorageError("find budget", result.Error)
	}
	return budgetModel.ToEntity(), nil
}

// FindAll retrieves every budget.
func (r *budgetRepository) FindAll(ctx context.Context) ([]*entity.Budget, error) {
	return r.find("list budgets", conn(ctx, r.db))
}

// FindByStatus retrieves budgets with the given status.
func (r *budgetRepository) FindByStatus(ctx context.Context, status entity.ActivityStatus) ([]*entity.Budget, error) {
	return r.find("list budgets by status", conn(ctx, r.db).Where("status = ?", string(status)))
}

// FindByCategory retrieves budgets with the exact category.
func (r *budgetRepository) FindByCategory(ctx context.Context, category string) ([]*entity.Budget, error) {
	return r.find("list budgets by category", conn(ctx, r.db).Where("category = ?", category))
}

// FindByStartDateRange retrieves budgets whose start date is within [start, end].
func (r *budgetRepository) FindByStartDateRange(ctx context.Context, start, end time.Time) ([]*entity.Budget, error) {
	window := entity.NewDateRange(start, end)
	if window.IsEmpty() {
		return []*entity.Budget{}, nil
	}
	return r.find("list budgets by start date",
		conn(ctx, r.db).Where("start_date >= ? AND start_date <= ?", window.Start, window.End))
}

// Update updates an existing budget in the database.
func (r *budgetRepository) Update(ctx context.Context, budget *entity.Budget) error {
	budgetModel := model.BudgetFromEntity(budget)
	if err := conn(ctx, r.db).Save(budgetModel).Error; err != nil {
		return domainerror.NewStorageError("update budget", err)
	}
	return nil
}

// Delete removes a budget permanently.
func (r *budgetRepository) Delete(ctx context.Context, id int64) error {
	result := conn(ctx, r.db).Delete(&model.BudgetModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerror.NewStorageError("delete budget", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrBudgetNotFound
	}
	return nil
}

func (r *budgetRepository) find(op string, query *gorm.DB) ([]*entity.Budget, error) {
	var budgetModels []model.BudgetModel
	if err := query.Order("id ASC").Find(&budgetModels).Error; err != nil {
		return nil, domainerror.NewStorageError(op, err)
	}

	budgets := make([]*entity.Budget, len(budgetModels))
	for i := range budgetModels {
		budgets[i] = budgetModels[i].ToEntity()
	}
	return budgets, nil
}
