package goal

import (
	"context"
	"time"

	"github.com/budget-ledger/backend/internal/application/adapter"
	"github.com/budget-ledger/backend/internal/domain/entity"
)

// UpdateGoalInput represents the input for a full goal update.
type UpdateGoalInput struct {
	ID int64
	GoalFields
}

// UpdateGoalOutput represents the output of goal update.
type UpdateGoalOutput struct {
	Goal *entity.FinancialGoal
}

// UpdateGoalUseCase handles goal update logic.
type UpdateGoalUseCase struct {
	goalRepo  adapter.GoalRepository
	txManager adapter.TransactionManager
}

// NewUpdateGoalUseCase creates a new UpdateGoalUseCase instance.
func NewUpdateGoalUseCase(goalRepo adapter.GoalRepository, txManager adapter.TransactionManager) *UpdateGoalUseCase {
	return &UpdateGoalUseCase{
		goalRepo:  goalRepo,
		txManager: txManager,
	}
}

// Execute performs the goal update. Status is taken from the input as is;
// reaching the target does not complete a goal.
func (uc *UpdateGoalUseCase) Execute(ctx context.Context, input UpdateGoalInput) (*UpdateGoalOutput, error) {
	status, err := validateFields(input.GoalFields)
	if err != nil {
		return nil, err
	}

	var goal *entity.FinancialGoal
	err = uc.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		// Find the existing goal
		existing, err := uc.goalRepo.FindByID(ctx, input.ID)
		if err != nil {
			return findError(err)
		}

		existing.Name = input.Name
		existing.TargetAmount = input.TargetAmount
		existing.CurrentSavings = input.CurrentSavings
		existing.IconName = input.IconName
		existing.Status = status
		existing.Description = input.Description
		existing.UpdatedAt = time.Now().UTC()

		// Save changes
		if err := uc.goalRepo.Update(ctx, existing); err != nil {
			return storageError("failed to update goal", err)
		}
		goal = existing
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &UpdateGoalOutput{
		Goal: goal,
	}, nil
}
