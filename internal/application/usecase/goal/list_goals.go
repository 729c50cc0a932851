package goal

import (
	"context"

	"github.com/budget-ledger/backend/internal/application/adapter"
	"github.com/budget-ledger/backend/internal/domain/entity"
)

// ListGoalsInput represents the input for listing goals.
type ListGoalsInput struct {
	ActiveOnly bool
}

// ListGoalsOutput represents the output of listing goals.
type ListGoalsOutput struct {
	Goals []*entity.FinancialGoal
}

// ListGoalsUseCase handles listing goals logic.
type ListGoalsUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewListGoalsUseCase creates a new ListGoalsUseCase instance.
func NewListGoalsUseCase(goalRepo adapter.GoalRepository) *ListGoalsUseCase {
	return &ListGoalsUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the goal listing.
func (uc *ListGoalsUseCase) Execute(ctx context.Context, input ListGoalsInput) (*ListGoalsOutput, error) {
	var (
		goals []*entity.FinancialGoal
		err   error
	)
	if input.ActiveOnly {
		goals, err = uc.goalRepo.FindByStatus(ctx, entity.GoalStatusActive)
	} else {
		goals, err = uc.goalRepo.FindAll(ctx)
	}
	if err != nil {
		return nil, storageError("failed to list goals", err)
	}

	return &ListGoalsOutput{
		Goals: goals,
	}, nil
}
