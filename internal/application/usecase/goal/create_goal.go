package goal

import (
	"context"

	"github.com/budget-ledger/backend/internal/application/adapter"
	"github.com/budget-ledger/backend/internal/domain/entity"
)

// CreateGoalInput represents the input for goal creation.
type CreateGoalInput struct {
	GoalFields
}

// CreateGoalOutput represents the output of goal creation.
type CreateGoalOutput struct {
	Goal *entity.FinancialGoal
}

// CreateGoalUseCase handles goal creation logic.
type CreateGoalUseCase struct {
	goalRepo  adapter.GoalRepository
	txManager adapter.TransactionManager
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(goalRepo adapter.GoalRepository, txManager adapter.TransactionManager) *CreateGoalUseCase {
	return &CreateGoalUseCase{
		goalRepo:  goalRepo,
		txManager: txManager,
	}
}

// Execute performs the goal creation.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	status, err := validateFields(input.GoalFields)
	if err != nil {
		return nil, err
	}

	// Create goal entity
	goal := entity.NewFinancialGoal(
		input.Name,
		input.TargetAmount,
		input.CurrentSavings,
		input.IconName,
		status,
		input.Description,
	)

	// Save goal to database
	err = uc.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		return uc.goalRepo.Create(ctx, goal)
	})
	if err != nil {
		return nil, storageError("failed to create goal", err)
	}

	return &CreateGoalOutput{
		Goal: goal,
	}, nil
}
