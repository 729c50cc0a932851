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

// goalRepository implements the adapter.GoalRepository interface.
type goalRepository struct {
	db *gorm.DB
}

// NewGoalRepository creates a new goal repository instance.
func NewGoalRepository(db *gorm.DB) adapter.GoalRepository {
	return &goalRepository{
		db: db,
	}
}

// Create creates a new goal in the database.
func (r *goalRepository) Create(ctx context.Context, goal *entity.FinancialGoal) error {
	goalModel := model.GoalFromEntity(goal)
	if err := conn(ctx, r.db).Create(goalModel).Error; err != nil {
		return domainerror.NewStorageError("create goal", err)
	}
	goal.ID = goalModel.ID
	return nil
}

// FindByID retrieves a goal by its ID.
func (r *goalRepository) FindByID(ctx context.Context, id int64) (*entity.FinancialGoal, error) {
	var goalModel model.GoalModel
	result := conn(ctx, r.db).Where("id = ?", id).First(&goalModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrGoalNotFound
		}
		return nil, domainerror.NewStorageError("find goal", result.Error)
	}
	return goalModel.ToEntity(), nil
}

// FindAll retrieves every goal.
func (r *goalRepository) FindAll(ctx context.Context) ([]*entity.FinancialGoal, error) {
	return r.find("list goals", conn(ctx, r.db))
}

// FindByStatus retrieves goals with the given status.
func (r *goalRepository) FindByStatus(ctx context.Context, status entity.GoalStatus) ([]*entity.FinancialGoal, error) {
	return r.find("list goals by status", conn(ctx, r.db).Where("status = ?", string(status)))
}

// Update updates an existing goal in the database.
func (r *goalRepository) Update(ctx context.Context, goal *entity.FinancialGoal) error {
	goalModel := model.GoalFromEntity(goal)
	if err := conn(ctx, r.db).Save(goalModel).Error; err != nil {
		return domainerror.NewStorageError("update goal", err)
	}
	return nil
}

// Delete removes a goal from the database permanently.
func (r *goalRepository) Delete(ctx context.Context, id int64) error {
	result := conn(ctx, r.db).Delete(&model.GoalModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerror.NewStorageError("delete goal", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrGoalNotFound
	}
	return nil
}

func (r *goalRepository) find(op string, query *gorm.DB) ([]*entity.FinancialGoal, error) {
	var goalModels []model.GoalModel
	if err := query.Order("id ASC").Find(&goalModels).Error; err != nil {
		return nil, domainerror.NewStorageError(op, err)
	}

	goals := make([]*entity.FinancialGoal, len(goalModels))
	for i := range goalModels {
		goals[i] = goalModels[i].ToEntity()
	}
	return goals, nil
}
