package goal

import (
	"context"

	"github.com/budget-ledger/backend/internal/application/adapter"
)

// DeleteGoalInput represents the input for goal deletion.
type DeleteGoalInput struct {
	ID int64
}

// DeleteGoalOutput represents the output of goal deletion.
type DeleteGoalOutput struct {
	Success bool
}

// DeleteGoalUseCase handles permanent goal removal.
type DeleteGoalUseCase struct {
	goalRepo  adapter.GoalRepository
	txManager adapter.TransactionManager
}

// NewDeleteGoalUseCase creates a new DeleteGoalUseCase instance.
func NewDeleteGoalUseCase(goalRepo adapter.GoalRepository, txManager adapter.TransactionManager) *DeleteGoalUseCase {
	return &DeleteGoalUseCase{
		goalRepo:  goalRepo,
		txManager: txManager,
	}
}

// Execute performs the goal deletion.
func (uc *DeleteGoalUseCase) Execute(ctx context.Context, input DeleteGoalInput) (*DeleteGoalOutput, error) {
	err := uc.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := uc.goalRepo.Delete(ctx, input.ID); err != nil {
			return findError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &DeleteGoalOutput{
		Success: true,
	}, nil
}
