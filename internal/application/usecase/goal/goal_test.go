package goal_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budget-ledger/backend/internal/application/usecase/goal"
	"github.com/budget-ledger/backend/internal/domain/entity"
	domainerror "github.com/budget-ledger/backend/internal/domain/error"
	"github.com/budget-ledger/backend/internal/integration/persistence"
	"github.com/budget-ledger/backend/internal/integration/persistence/testdb"
)

type fixture struct {
	create *goal.CreateGoalUseCase
	get    *goal.GetGoalUseCase
	list   *goal.ListGoalsUseCase
	update *goal.UpdateGoalUseCase
	delete *goal.DeleteGoalUseCase
}

func newFixture(t *testing.T) *fixture {
	db := testdb.New(t)
	repo := persistence.NewGoalRepository(db)
	txManager := persistence.NewTransactionManager(db)

	return &fixture{
		create: goal.NewCreateGoalUseCase(repo, txManager),
		get:    goal.NewGetGoalUseCase(repo),
		list:   goal.NewListGoalsUseCase(repo),
		update: goal.NewUpdateGoalUseCase(repo, txManager),
		delete: goal.NewDeleteGoalUseCase(repo, txManager),
	}
}

func emergencyFund() goal.GoalFields {
	return goal.GoalFields{
		Name:           "Emergency fund",
		TargetAmount:   decimal.RequireFromString("10000"),
		CurrentSavings: decimal.RequireFromString("2500"),
		IconName:       "shield",
	}
}

func assertCode(t *testing.T, err error, code domainerror.GoalErrorCode) {
	t.Helper()
	var goalErr *domainerror.GoalError
	require.True(t, errors.As(err, &goalErr), "expected GoalError, got %v", err)
	assert.Equal(t, code, goalErr.Code)
}

func TestCreateGoal(t *testing.T) {
	f := newFixture(t)

	out, err := f.create.Execute(context.Background(), goal.CreateGoalInput{GoalFields: emergencyFund()})
	require.NoError(t, err)
	assert.NotZero(t, out.Goal.ID)
	assert.Equal(t, entity.GoalStatusActive, out.Goal.Status)

	got, err := f.get.Execute(context.Background(), goal.GetGoalInput{ID: out.Goal.ID})
	require.NoError(t, err)
	assert.Equal(t, "Emergency fund", got.Goal.Name)
	assert.Equal(t, "2500", got.Goal.CurrentSavings.String())
}

func TestCreateGoal_Validation(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name   string
		mutate func(*goal.GoalFields)
		code   domainerror.GoalErrorCode
	}{
		{"blank name", func(g *goal.GoalFields) { g.Name = "  " }, domainerror.ErrCodeGoalNameRequired},
		{"zero target", func(g *goal.GoalFields) { g.TargetAmount = decimal.Zero }, domainerror.ErrCodeInvalidTargetAmount},
		{"sub-cent target", func(g *goal.GoalFields) { g.TargetAmount = decimal.RequireFromString("999.999") }, domainerror.ErrCodeInvalidTargetAmount},
		{"negative savings", func(g *goal.GoalFields) { g.CurrentSavings = decimal.RequireFromString("-1") }, domainerror.ErrCodeInvalidCurrentSavings},
		{"sub-cent savings", func(g *goal.GoalFields) { g.CurrentSavings = decimal.RequireFromString("0.125") }, domainerror.ErrCodeInvalidCurrentSavings},
		{"unknown status", func(g *goal.GoalFields) { g.Status = "ABANDONED" }, domainerror.ErrCodeInvalidGoalStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := emergencyFund()
			tt.mutate(&fields)
			_, err := f.create.Execute(context.Background(), goal.CreateGoalInput{GoalFields: fields})
			assertCode(t, err, tt.code)
			assert.True(t, domainerror.IsValidation(err))
		})
	}
}

func TestGoal_SavingsMayExceedTargetWithoutCompleting(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.create.Execute(ctx, goal.CreateGoalInput{GoalFields: emergencyFund()})
	require.NoError(t, err)

	fields := emergencyFund()
	fields.CurrentSavings = decimal.RequireFromString("12000")
	out, err := f.update.Execute(ctx, goal.UpdateGoalInput{ID: created.Goal.ID, GoalFields: fields})
	require.NoError(t, err)
	assert.Equal(t, entity.GoalStatusActive, out.Goal.Status)
	assert.Equal(t, "12000", out.Goal.CurrentSavings.String())
}

func TestListGoals_ActiveOnly(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.create.Execute(ctx, goal.CreateGoalInput{GoalFields: emergencyFund()})
	require.NoError(t, err)

	done := emergencyFund()
	done.Name = "Laptop"
	done.Status = "completed"
	_, err = f.create.Execute(ctx, goal.CreateGoalInput{GoalFields: done})
	require.NoError(t, err)

	all, err := f.list.Execute(ctx, goal.ListGoalsInput{})
	require.NoError(t, err)
	assert.Len(t, all.Goals, 2)

	active, err := f.list.Execute(ctx, goal.ListGoalsInput{ActiveOnly: true})
	require.NoError(t, err)
	require.Len(t, active.Goals, 1)
	assert.Equal(t, "Emergency fund", active.Goals[0].Name)
}

func TestDeleteGoal_RemovesRow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.create.Execute(ctx, goal.CreateGoalInput{GoalFields: emergencyFund()})
	require.NoError(t, err)

	out, err := f.delete.Execute(ctx, goal.DeleteGoalInput{ID: created.Goal.ID})
	require.NoError(t, err)
	assert.True(t, out.Success)

	_, err = f.get.Execute(ctx, goal.GetGoalInput{ID: created.Goal.ID})
	assertCode(t, err, domainerror.ErrCodeGoalNotFound)

	all, err := f.list.Execute(ctx, goal.ListGoalsInput{})
	require.NoError(t, err)
	assert.Empty(t, all.Goals)

	_, err = f.delete.Execute(ctx, goal.DeleteGoalInput{ID: created.Goal.ID})
	assertCode(t, err, domainerror.ErrCodeGoalNotFound)
}
