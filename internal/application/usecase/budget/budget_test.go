package budget_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budget-ledger/backend/internal/application/adapter"
	"github.com/budget-ledger/backend/internal/application/usecase/budget"
	"github.com/budget-ledger/backend/internal/application/usecase/transaction"
	"github.com/budget-ledger/backend/internal/domain/entity"
	domainerror "github.com/budget-ledger/backend/internal/domain/error"
	"github.com/budget-ledger/backend/internal/integration/persistence"
	"github.com/budget-ledger/backend/internal/integration/persistence/testdb"
)

func day(s string) time.Time {
	d, err := entity.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

type fixture struct {
	transactions adapter.TransactionRepository
	create       *budget.CreateBudgetUseCase
	get          *budget.GetBudgetUseCase
	list         *budget.ListBudgetsUseCase
	update       *budget.UpdateBudgetUseCase
	delete       *budget.DeleteBudgetUseCase
}

func newFixture(t *testing.T) *fixture {
	db := testdb.New(t)
	transactions := persistence.NewTransactionRepository(db)
	budgets := persistence.NewBudgetRepository(db)
	txManager := persistence.NewTransactionManager(db)
	spending := budget.NewSpendingCalculator(transactions)

	return &fixture{
		transactions: transactions,
		create:       budget.NewCreateBudgetUseCase(budgets, spending, txManager),
		get:          budget.NewGetBudgetUseCase(budgets, spending),
		list:         budget.NewListBudgetsUseCase(budgets, spending),
		update:       budget.NewUpdateBudgetUseCase(budgets, spending, txManager),
		delete:       budget.NewDeleteBudgetUseCase(budgets, txManager),
	}
}

func (f *fixture) spend(t *testing.T, txType entity.TransactionType, amount, category, date string) {
	t.Helper()
	txn := entity.NewTransaction(txType, decimal.RequireFromString(amount), category, "", day(date))
	require.NoError(t, f.transactions.Create(context.Background(), txn))
}

func marchFood() budget.BudgetFields {
	return budget.BudgetFields{
		Category:  "Food",
		Amount:    decimal.RequireFromString("500"),
		StartDate: day("2024-03-01"),
		EndDate:   day("2024-03-31"),
	}
}

func assertCode(t *testing.T, err error, code domainerror.BudgetErrorCode) {
	t.Helper()
	var budgetErr *domainerror.BudgetError
	require.True(t, errors.As(err, &budgetErr), "expected BudgetError, got %v", err)
	assert.Equal(t, code, budgetErr.Code)
}

func TestCreateBudget_DefaultsAndSpending(t *testing.T) {
	f := newFixture(t)
	f.spend(t, entity.TransactionTypeExpense, "120.25", "Food", "2024-03-05")

	out, err := f.create.Execute(context.Background(), budget.CreateBudgetInput{BudgetFields: marchFood()})
	require.NoError(t, err)

	assert.NotZero(t, out.Budget.ID)
	assert.Equal(t, entity.BudgetPeriodMonthly, out.Budget.Period)
	assert.Equal(t, entity.StatusActive, out.Budget.Status)
	assert.Equal(t, "120.25", out.Budget.Spent.String())
}

func TestGetBudget_SpentTracksLedger(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.create.Execute(ctx, budget.CreateBudgetInput{BudgetFields: marchFood()})
	require.NoError(t, err)
	assert.True(t, created.Budget.Spent.IsZero())

	f.spend(t, entity.TransactionTypeExpense, "100", "Food", "2024-03-01")
	f.spend(t, entity.TransactionTypeExpense, "450", "Food", "2024-03-31")
	f.spend(t, entity.TransactionTypeIncome, "999", "Food", "2024-03-10")
	f.spend(t, entity.TransactionTypeExpense, "75", "Rent", "2024-03-10")
	f.spend(t, entity.TransactionTypeExpense, "60", "Food", "2024-04-01")
	f.spend(t, entity.TransactionTypeExpense, "60", "food", "2024-03-02")

	out, err := f.get.Execute(ctx, budget.GetBudgetInput{ID: created.Budget.ID})
	require.NoError(t, err)
	assert.Equal(t, "550", out.Budget.Spent.String())
	assert.Equal(t, "-50", out.Budget.Remaining().String())
	assert.True(t, out.Budget.Exceeded())
}

func TestGetBudget_FollowsLedgerEdits(t *testing.T) {
	db := testdb.New(t)
	transactions := persistence.NewTransactionRepository(db)
	budgets := persistence.NewBudgetRepository(db)
	txManager := persistence.NewTransactionManager(db)
	spending := budget.NewSpendingCalculator(transactions)

	createTxn := transaction.NewCreateTransactionUseCase(transactions, txManager)
	updateTxn := transaction.NewUpdateTransactionUseCase(transactions, txManager)
	deleteTxn := transaction.NewDeleteTransactionUseCase(transactions, txManager)
	createBudget := budget.NewCreateBudgetUseCase(budgets, spending, txManager)
	getBudget := budget.NewGetBudgetUseCase(budgets, spending)

	ctx := context.Background()
	food := func(amount, date string) transaction.TransactionFields {
		return transaction.TransactionFields{
			Type:     "EXPENSE",
			Amount:   decimal.RequireFromString(amount),
			Category: "food",
			Date:     day(date),
		}
	}
	spent := func(id int64) string {
		t.Helper()
		out, err := getBudget.Execute(ctx, budget.GetBudgetInput{ID: id})
		require.NoError(t, err)
		return out.Budget.Spent.String()
	}

	first, err := createTxn.Execute(ctx, transaction.CreateTransactionInput{TransactionFields: food("50", "2024-01-10")})
	require.NoError(t, err)

	created, err := createBudget.Execute(ctx, budget.CreateBudgetInput{BudgetFields: budget.BudgetFields{
		Category:  "food",
		Amount:    decimal.NewFromInt(200),
		StartDate: day("2024-01-01"),
		EndDate:   day("2024-01-31"),
	}})
	require.NoError(t, err)
	id := created.Budget.ID
	assert.Equal(t, "50", spent(id))

	second, err := createTxn.Execute(ctx, transaction.CreateTransactionInput{TransactionFields: food("30", "2024-01-15")})
	require.NoError(t, err)
	assert.Equal(t, "80", spent(id))

	_, err = deleteTxn.Execute(ctx, transaction.DeleteTransactionInput{ID: first.Transaction.ID})
	require.NoError(t, err)
	assert.Equal(t, "30", spent(id))

	travel := food("30", "2024-01-15")
	travel.Category = "travel"
	income := food("30", "2024-01-15")
	income.Type = "INCOME"

	moves := []struct {
		name   string
		fields transaction.TransactionFields
		spent  string
	}{
		{"other category", travel, "0"},
		{"outside window", food("30", "2024-02-01"), "0"},
		{"income", income, "0"},
		{"back in with new amount", food("45.50", "2024-01-31"), "45.5"},
	}
	for _, m := range moves {
		_, err := updateTxn.Execute(ctx, transaction.UpdateTransactionInput{ID: second.Transaction.ID, TransactionFields: m.fields})
		require.NoError(t, err, m.name)
		assert.Equal(t, m.spent, spent(id), m.name)
	}
}

func TestCreateBudget_Validation(t *testing.T) {
	f := newFixture(t)

	blankCategory := marchFood()
	blankCategory.Category = " "
	negative := marchFood()
	negative.Amount = decimal.RequireFromString("-1")
	inverted := marchFood()
	inverted.StartDate, inverted.EndDate = inverted.EndDate, inverted.StartDate
	missingEnd := marchFood()
	missingEnd.EndDate = time.Time{}
	badPeriod := marchFood()
	badPeriod.Period = "FORTNIGHTLY"
	badStatus := marchFood()
	badStatus.Status = "PAUSED"
	subCent := marchFood()
	subCent.Amount = decimal.RequireFromString("100.005")

	tests := []struct {
		name   string
		fields budget.BudgetFields
		code   domainerror.BudgetErrorCode
	}{
		{"blank category", blankCategory, domainerror.ErrCodeBudgetCategoryRequired},
		{"negative amount", negative, domainerror.ErrCodeInvalidBudgetAmount},
		{"sub-cent amount", subCent, domainerror.ErrCodeInvalidBudgetAmount},
		{"inverted window", inverted, domainerror.ErrCodeInvalidBudgetWindow},
		{"missing end date", missingEnd, domainerror.ErrCodeMissingBudgetFields},
		{"unknown period", badPeriod, domainerror.ErrCodeInvalidBudgetPeriod},
		{"unknown status", badStatus, domainerror.ErrCodeInvalidBudgetStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.create.Execute(context.Background(), budget.CreateBudgetInput{BudgetFields: tt.fields})
			assertCode(t, err, tt.code)
			assert.True(t, domainerror.IsValidation(err))
		})
	}
}

func TestCreateBudget_ZeroAmountAllowed(t *testing.T) {
	f := newFixture(t)
	fields := marchFood()
	fields.Amount = decimal.Zero

	out, err := f.create.Execute(context.Background(), budget.CreateBudgetInput{BudgetFields: fields})
	require.NoError(t, err)
	assert.True(t, out.Budget.Amount.IsZero())
}

func TestListBudgets_Filters(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.spend(t, entity.TransactionTypeExpense, "40", "Food", "2024-03-03")
	f.spend(t, entity.TransactionTypeExpense, "800", "Rent", "2024-04-01")

	_, err := f.create.Execute(ctx, budget.CreateBudgetInput{BudgetFields: marchFood()})
	require.NoError(t, err)

	rent := budget.BudgetFields{
		Category:  "Rent",
		Amount:    decimal.RequireFromString("800"),
		StartDate: day("2024-04-01"),
		EndDate:   day("2024-04-30"),
		Status:    "inactive",
	}
	_, err = f.create.Execute(ctx, budget.CreateBudgetInput{BudgetFields: rent})
	require.NoError(t, err)

	all, err := f.list.Execute(ctx, budget.ListBudgetsInput{})
	require.NoError(t, err)
	require.Len(t, all.Budgets, 2)
	for _, b := range all.Budgets {
		assert.False(t, b.Spent.IsZero(), "budget %s should carry its spending", b.Category)
	}

	active, err := f.list.Execute(ctx, budget.ListBudgetsInput{Filter: budget.ListBudgetsFilter{Status: "ACTIVE"}})
	require.NoError(t, err)
	require.Len(t, active.Budgets, 1)
	assert.Equal(t, "Food", active.Budgets[0].Category)
	assert.Equal(t, "40", active.Budgets[0].Spent.String())

	byCategory, err := f.list.Execute(ctx, budget.ListBudgetsInput{Filter: budget.ListBudgetsFilter{Category: "Rent"}})
	require.NoError(t, err)
	require.Len(t, byCategory.Budgets, 1)
	assert.Equal(t, "800", byCategory.Budgets[0].Spent.String())

	from, to := day("2024-04-01"), day("2024-04-15")
	byStart, err := f.list.Execute(ctx, budget.ListBudgetsInput{Filter: budget.ListBudgetsFilter{StartFrom: &from, StartTo: &to}})
	require.NoError(t, err)
	require.Len(t, byStart.Budgets, 1)
	assert.Equal(t, "Rent", byStart.Budgets[0].Category)

	_, err = f.list.Execute(ctx, budget.ListBudgetsInput{Filter: budget.ListBudgetsFilter{Status: "PAUSED"}})
	assertCode(t, err, domainerror.ErrCodeInvalidBudgetStatus)
}

func TestUpdateBudget_RecomputesForNewWindow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.spend(t, entity.TransactionTypeExpense, "30", "Food", "2024-03-10")
	f.spend(t, entity.TransactionTypeExpense, "70", "Food", "2024-04-10")

	created, err := f.create.Execute(ctx, budget.CreateBudgetInput{BudgetFields: marchFood()})
	require.NoError(t, err)
	assert.Equal(t, "30", created.Budget.Spent.String())

	april := marchFood()
	april.StartDate, april.EndDate = day("2024-04-01"), day("2024-04-30")
	updated, err := f.update.Execute(ctx, budget.UpdateBudgetInput{ID: created.Budget.ID, BudgetFields: april})
	require.NoError(t, err)
	assert.Equal(t, "70", updated.Budget.Spent.String())

	_, err = f.update.Execute(ctx, budget.UpdateBudgetInput{ID: 404, BudgetFields: april})
	assertCode(t, err, domainerror.ErrCodeBudgetNotFound)
}

func TestDeleteBudget(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.create.Execute(ctx, budget.CreateBudgetInput{BudgetFields: marchFood()})
	require.NoError(t, err)

	_, err = f.delete.Execute(ctx, budget.DeleteBudgetInput{ID: created.Budget.ID})
	require.NoError(t, err)

	_, err = f.get.Execute(ctx, budget.GetBudgetInput{ID: created.Budget.ID})
	assertCode(t, err, domainerror.ErrCodeBudgetNotFound)
	assert.True(t, domainerror.IsNotFound(err))
}
