package fixedexpense_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budget-ledger/backend/internal/application/usecase/fixedexpense"
	"github.com/budget-ledger/backend/internal/domain/entity"
	domainerror "github.com/budget-ledger/backend/internal/domain/error"
	"github.com/budget-ledger/backend/internal/integration/persistence"
	"github.com/budget-ledger/backend/internal/integration/persistence/testdb"
)

type fixture struct {
	create     *fixedexpense.CreateFixedExpenseUseCase
	get        *fixedexpense.GetFixedExpenseUseCase
	list       *fixedexpense.ListFixedExpensesUseCase
	update     *fixedexpense.UpdateFixedExpenseUseCase
	delete     *fixedexpense.DeleteFixedExpenseUseCase
	commitment *fixedexpense.MonthlyCommitmentUseCase
}

func newFixture(t *testing.T) *fixture {
	db := testdb.New(t)
	repo := persistence.NewFixedExpenseRepository(db)
	txManager := persistence.NewTransactionManager(db)

	return &fixture{
		create:     fixedexpense.NewCreateFixedExpenseUseCase(repo, txManager),
		get:        fixedexpense.NewGetFixedExpenseUseCase(repo),
		list:       fixedexpense.NewListFixedExpensesUseCase(repo),
		update:     fixedexpense.NewUpdateFixedExpenseUseCase(repo, txManager),
		delete:     fixedexpense.NewDeleteFixedExpenseUseCase(repo, txManager),
		commitment: fixedexpense.NewMonthlyCommitmentUseCase(repo),
	}
}

func (f *fixture) add(t *testing.T, name, amount string, due int, category string) *entity.FixedExpense {
	t.Helper()
	out, err := f.create.Execute(context.Background(), fixedexpense.CreateFixedExpenseInput{
		FixedExpenseFields: fixedexpense.FixedExpenseFields{
			Name:     name,
			Amount:   decimal.RequireFromString(amount),
			DueDate:  due,
			Category: category,
		},
	})
	require.NoError(t, err)
	return out.FixedExpense
}

func assertCode(t *testing.T, err error, code domainerror.FixedExpenseErrorCode) {
	t.Helper()
	var feErr *domainerror.FixedExpenseError
	require.True(t, errors.As(err, &feErr), "expected FixedExpenseError, got %v", err)
	assert.Equal(t, code, feErr.Code)
}

func TestCreateFixedExpense_Validation(t *testing.T) {
	f := newFixture(t)
	valid := fixedexpense.FixedExpenseFields{
		Name:     "Rent",
		Amount:   decimal.RequireFromString("1200"),
		DueDate:  1,
		Category: "Housing",
	}

	tests := []struct {
		name   string
		mutate func(*fixedexpense.FixedExpenseFields)
		code   domainerror.FixedExpenseErrorCode
	}{
		{"blank name", func(x *fixedexpense.FixedExpenseFields) { x.Name = "" }, domainerror.ErrCodeFixedExpenseNameRequired},
		{"zero amount", func(x *fixedexpense.FixedExpenseFields) { x.Amount = decimal.Zero }, domainerror.ErrCodeInvalidFixedExpenseAmount},
		{"sub-cent amount", func(x *fixedexpense.FixedExpenseFields) { x.Amount = decimal.RequireFromString("0.001") }, domainerror.ErrCodeInvalidFixedExpenseAmount},
		{"due date zero", func(x *fixedexpense.FixedExpenseFields) { x.DueDate = 0 }, domainerror.ErrCodeInvalidDueDate},
		{"due date 32", func(x *fixedexpense.FixedExpenseFields) { x.DueDate = 32 }, domainerror.ErrCodeInvalidDueDate},
		{"blank category", func(x *fixedexpense.FixedExpenseFields) { x.Category = "\t" }, domainerror.ErrCodeFixedExpenseCategoryRequired},
		{"unknown status", func(x *fixedexpense.FixedExpenseFields) { x.Status = "LATE" }, domainerror.ErrCodeInvalidFixedExpenseStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := valid
			tt.mutate(&fields)
			_, err := f.create.Execute(context.Background(), fixedexpense.CreateFixedExpenseInput{FixedExpenseFields: fields})
			assertCode(t, err, tt.code)
		})
	}

	fields := valid
	fields.DueDate = 31
	out, err := f.create.Execute(context.Background(), fixedexpense.CreateFixedExpenseInput{FixedExpenseFields: fields})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusActive, out.FixedExpense.Status)
}

func TestDeleteFixedExpense_Retires(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	rent := f.add(t, "Rent", "1200", 1, "Housing")

	_, err := f.delete.Execute(ctx, fixedexpense.DeleteFixedExpenseInput{ID: rent.ID})
	require.NoError(t, err)

	got, err := f.get.Execute(ctx, fixedexpense.GetFixedExpenseInput{ID: rent.ID})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusInactive, got.FixedExpense.Status)

	all, err := f.list.Execute(ctx, fixedexpense.ListFixedExpensesInput{})
	require.NoError(t, err)
	assert.Len(t, all.FixedExpenses, 1)

	active, err := f.list.Execute(ctx, fixedexpense.ListFixedExpensesInput{ActiveOnly: true})
	require.NoError(t, err)
	assert.Empty(t, active.FixedExpenses)

	// Retiring twice is harmless.
	_, err = f.delete.Execute(ctx, fixedexpense.DeleteFixedExpenseInput{ID: rent.ID})
	require.NoError(t, err)

	_, err = f.delete.Execute(ctx, fixedexpense.DeleteFixedExpenseInput{ID: 404})
	assertCode(t, err, domainerror.ErrCodeFixedExpenseNotFound)
}

func TestMonthlyCommitment(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	empty, err := f.commitment.Execute(ctx)
	require.NoError(t, err)
	assert.True(t, empty.Total.IsZero())
	assert.Zero(t, empty.ActiveCount)

	f.add(t, "Rent", "1200", 1, "Housing")
	f.add(t, "Internet", "49.90", 12, "Utilities")
	gym := f.add(t, "Gym", "35.10", 20, "Health")

	_, err = f.delete.Execute(ctx, fixedexpense.DeleteFixedExpenseInput{ID: gym.ID})
	require.NoError(t, err)

	out, err := f.commitment.Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, "1249.9", out.Total.String())
	assert.Equal(t, 2, out.ActiveCount)
}

func TestUpdateFixedExpense_CanReactivate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	gym := f.add(t, "Gym", "35", 20, "Health")

	_, err := f.delete.Execute(ctx, fixedexpense.DeleteFixedExpenseInput{ID: gym.ID})
	require.NoError(t, err)

	out, err := f.update.Execute(ctx, fixedexpense.UpdateFixedExpenseInput{
		ID: gym.ID,
		FixedExpenseFields: fixedexpense.FixedExpenseFields{
			Name:     "Gym",
			Amount:   decimal.RequireFromString("40"),
			DueDate:  5,
			Category: "Health",
			Status:   "ACTIVE",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusActive, out.FixedExpense.Status)
	assert.Equal(t, 5, out.FixedExpense.DueDate)

	byCategory, err := f.list.Execute(ctx, fixedexpense.ListFixedExpensesInput{Category: "Health"})
	require.NoError(t, err)
	require.Len(t, byCategory.FixedExpenses, 1)
	assert.Equal(t, "40", byCategory.FixedExpenses[0].Amount.String())
}
