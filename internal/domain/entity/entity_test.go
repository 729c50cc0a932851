package entity

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestNormalizeDate(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*3600)
	in := time.Date(2024, 3, 10, 23, 45, 0, 0, loc)

	got := NormalizeDate(in)

	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), got)
	assert.True(t, NormalizeDate(time.Time{}).IsZero())
}

func TestParseDate_Invalid(t *testing.T) {
	for _, raw := range []string{"", "2024-13-01", "10/03/2024", "2024-02-30"} {
		_, err := ParseDate(raw)
		assert.Error(t, err, raw)
	}
}

func TestDateRange(t *testing.T) {
	r := NewDateRange(mustDate(t, "2024-03-01"), mustDate(t, "2024-03-31"))

	assert.False(t, r.IsEmpty())
	assert.True(t, r.Contains(mustDate(t, "2024-03-01")))
	assert.True(t, r.Contains(mustDate(t, "2024-03-31")))
	assert.True(t, r.Contains(time.Date(2024, 3, 31, 18, 0, 0, 0, time.UTC)))
	assert.False(t, r.Contains(mustDate(t, "2024-04-01")))
	assert.False(t, r.Contains(mustDate(t, "2024-02-29")))

	inverted := NewDateRange(mustDate(t, "2024-03-31"), mustDate(t, "2024-03-01"))
	assert.True(t, inverted.IsEmpty())
	assert.False(t, inverted.Contains(mustDate(t, "2024-03-15")))

	single := NewDateRange(mustDate(t, "2024-03-15"), mustDate(t, "2024-03-15"))
	assert.False(t, single.IsEmpty())
	assert.True(t, single.Contains(mustDate(t, "2024-03-15")))
}

func TestSummarizeTransactions(t *testing.T) {
	txns := []*Transaction{
		NewTransaction(TransactionTypeIncome, decimal.RequireFromString("1000.00"), "Salary", "", mustDate(t, "2024-03-01")),
		NewTransaction(TransactionTypeExpense, decimal.RequireFromString("0.10"), "Food", "", mustDate(t, "2024-03-02")),
		NewTransaction(TransactionTypeExpense, decimal.RequireFromString("0.20"), "Food", "", mustDate(t, "2024-03-03")),
		NewTransaction(TransactionTypeExpense, decimal.RequireFromString("500"), "Rent", "", mustDate(t, "2024-03-04")),
	}

	totals := SummarizeTransactions(txns)

	assert.Equal(t, 4, totals.Count)
	assert.Equal(t, "1000", totals.IncomeTotal.String())
	assert.Equal(t, "500.3", totals.ExpenseTotal.String())
	assert.Equal(t, "499.7", totals.NetTotal.String())
	assert.Equal(t, "0.3", totals.ExpensesByCategory["Food"].String())
	assert.Equal(t, "500", totals.ExpensesByCategory["Rent"].String())
	assert.NotContains(t, totals.ExpensesByCategory, "Salary")
}

func TestSummarizeTransactions_Empty(t *testing.T) {
	totals := SummarizeTransactions(nil)

	assert.Zero(t, totals.Count)
	assert.True(t, totals.IncomeTotal.IsZero())
	assert.True(t, totals.ExpenseTotal.IsZero())
	assert.True(t, totals.NetTotal.IsZero())
	assert.Empty(t, totals.ExpensesByCategory)
}

func TestParseTransactionType(t *testing.T) {
	got, ok := ParseTransactionType(" expense ")
	assert.True(t, ok)
	assert.Equal(t, TransactionTypeExpense, got)

	_, ok = ParseTransactionType("TRANSFER")
	assert.False(t, ok)
}

func TestBudget_RemainingAndExceeded(t *testing.T) {
	b := NewBudget("Food", decimal.NewFromInt(100), mustDate(t, "2024-03-01"), mustDate(t, "2024-03-31"),
		BudgetPeriodMonthly, StatusActive, "")

	assert.True(t, b.Spent.IsZero())
	assert.Equal(t, "100", b.Remaining().String())
	assert.False(t, b.Exceeded())

	b.Spent = decimal.NewFromInt(100)
	assert.False(t, b.Exceeded())

	b.Spent = decimal.RequireFromString("120.50")
	assert.True(t, b.Exceeded())
	assert.Equal(t, "-20.5", b.Remaining().String())
}

func TestParseBudgetPeriodAndStatus(t *testing.T) {
	period, ok := ParseBudgetPeriod("")
	assert.True(t, ok)
	assert.Equal(t, BudgetPeriodMonthly, period)

	_, ok = ParseBudgetPeriod("DECADE")
	assert.False(t, ok)

	status, ok := ParseActivityStatus("")
	assert.True(t, ok)
	assert.Equal(t, StatusActive, status)

	status, ok = ParseActivityStatus("inactive")
	assert.True(t, ok)
	assert.Equal(t, StatusInactive, status)
}

func TestFixedExpense_Retire(t *testing.T) {
	f := NewFixedExpense("Rent", decimal.NewFromInt(900), 1, "Housing", StatusActive)
	require.True(t, f.IsActive())

	f.Retire()

	assert.False(t, f.IsActive())
	assert.Equal(t, StatusInactive, f.Status)
}

func TestReportTimeframe_BucketKey(t *testing.T) {
	d := mustDate(t, "2024-12-30")

	tests := []struct {
		timeframe ReportTimeframe
		want      string
	}{
		{TimeframeDaily, "2024-12-30"},
		{TimeframeWeekly, "2025-W01"},
		{TimeframeMonthly, "2024-12"},
		{TimeframeYearly, "2024"},
	}

	for _, tt := range tests {
		t.Run(string(tt.timeframe), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.timeframe.BucketKey(d))
		})
	}
}

func TestReportType_TotalFor(t *testing.T) {
	totals := &TransactionTotals{
		IncomeTotal:  decimal.NewFromInt(300),
		ExpenseTotal: decimal.NewFromInt(120),
		NetTotal:     decimal.NewFromInt(180),
	}

	assert.Equal(t, "120", ReportTypeExpense.TotalFor(totals).String())
	assert.Equal(t, "120", ReportTypeCategoryWise.TotalFor(totals).String())
	assert.Equal(t, "300", ReportTypeIncome.TotalFor(totals).String())
	assert.Equal(t, "180", ReportTypeSummary.TotalFor(totals).String())
}

func TestReport_MarkGenerated(t *testing.T) {
	r := NewReport("March", ReportTypeExpense, mustDate(t, "2024-03-01"), mustDate(t, "2024-03-31"),
		TimeframeMonthly, nil, "")
	require.Equal(t, ReportStatusPending, r.Status)
	require.Nil(t, r.GeneratedAt)

	r.MarkGenerated(decimal.NewFromInt(42), "{}")

	assert.Equal(t, ReportStatusGenerated, r.Status)
	assert.Equal(t, "42", r.TotalAmount.String())
	assert.Equal(t, "{}", r.Content)
	assert.NotNil(t, r.GeneratedAt)
}

func TestUserSettings_ApplyDefaults(t *testing.T) {
	s := &UserSettings{Theme: "dark"}
	s.ApplyDefaults()

	assert.Equal(t, DefaultCurrency, s.Currency)
	assert.Equal(t, DefaultLanguage, s.Language)
	assert.Equal(t, "dark", s.Theme)
	assert.Equal(t, DefaultTimezone, s.Timezone)
	assert.Equal(t, BudgetingFrequencyMonthly, s.BudgetingFrequency)
	assert.Equal(t, DefaultDefaultView, s.DefaultView)
}

func TestFitsMoneyScale(t *testing.T) {
	for _, raw := range []string{"0", "1", "12.3", "12.30", "-4.56", "1000000.01"} {
		assert.True(t, FitsMoneyScale(decimal.RequireFromString(raw)), raw)
	}
	for _, raw := range []string{"0.001", "12.345", "-0.005"} {
		assert.False(t, FitsMoneyScale(decimal.RequireFromString(raw)), raw)
	}
}
