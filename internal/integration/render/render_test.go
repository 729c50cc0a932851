package render

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/budget-ledger/backend/internal/domain/entity"
)

func day(s string) time.Time {
	d, err := entity.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func sampleTransactions() []*entity.Transaction {
	txns := []*entity.Transaction{
		entity.NewTransaction(entity.TransactionTypeIncome, decimal.RequireFromString("2500"), "Salary", "march pay", day("2024-03-01")),
		entity.NewTransaction(entity.TransactionTypeExpense, decimal.RequireFromString("45.90"), "Food", "", day("2024-03-02")),
		entity.NewTransaction(entity.TransactionTypeExpense, decimal.RequireFromString("900"), "Rent", "", day("2024-03-05")),
		entity.NewTransaction(entity.TransactionTypeExpense, decimal.RequireFromString("14.10"), "Food", "", day("2024-04-02")),
	}
	for i, t := range txns {
		t.ID = int64(i + 1)
	}
	return txns
}

func TestBuildContent_Monthly(t *testing.T) {
	content := BuildContent(entity.TimeframeMonthly, sampleTransactions())

	assert.Equal(t, "2500", content.TotalIncome.String())
	assert.Equal(t, "960", content.TotalExpenses.String())
	assert.Equal(t, "1540", content.Balance.String())
	assert.Equal(t, 4, content.TransactionCount)

	require.Len(t, content.Periods, 2)
	assert.Equal(t, "2024-03", content.Periods[0].Period)
	assert.Equal(t, "2500", content.Periods[0].Income.String())
	assert.Equal(t, "945.9", content.Periods[0].Expenses.String())
	assert.Equal(t, "2024-04", content.Periods[1].Period)
	assert.True(t, content.Periods[1].Income.IsZero())

	require.Len(t, content.Categories, 2)
	assert.Equal(t, "Food", content.Categories[0].Category)
	assert.Equal(t, "60", content.Categories[0].Total.String())
	assert.Equal(t, "Rent", content.Categories[1].Category)

	require.Len(t, content.Transactions, 4)
	assert.Equal(t, TransactionRow{
		ID:          1,
		Date:        "2024-03-01",
		Type:        "INCOME",
		Amount:      decimal.RequireFromString("2500"),
		Category:    "Salary",
		Description: "march pay",
	}, content.Transactions[0])
	assert.Equal(t, "14.1", content.Transactions[3].Amount.String())
}

func TestBuildContent_Empty(t *testing.T) {
	content := BuildContent(entity.TimeframeDaily, nil)

	assert.Zero(t, content.TransactionCount)
	assert.True(t, content.Balance.IsZero())
	assert.NotNil(t, content.Periods)
	assert.Empty(t, content.Periods)
	assert.Empty(t, content.Categories)
	assert.NotNil(t, content.Transactions)
	assert.Empty(t, content.Transactions)
}

func TestRenderContent_RoundTripKeepsDecimals(t *testing.T) {
	renderer := NewReportRenderer()
	report := entity.NewReport("March", entity.ReportTypeSummary, day("2024-03-01"), day("2024-04-30"),
		entity.TimeframeMonthly, nil, "")

	raw, err := renderer.RenderContent(report, sampleTransactions())
	require.NoError(t, err)
	assert.Contains(t, raw, `"totalExpenses":"960"`)

	parsed, err := ParseContent(raw)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("1540").Equal(parsed.Balance))
	require.Len(t, parsed.Categories, 2)
	assert.True(t, decimal.RequireFromString("60").Equal(parsed.Categories[0].Total))
}

func TestRenderWorkbook_UnreadableContent(t *testing.T) {
	renderer := NewReportRenderer()
	report := entity.NewReport("Broken", entity.ReportTypeSummary, day("2024-03-01"), day("2024-04-30"),
		entity.TimeframeYearly, nil, "")
	report.Content = "{broken"

	var buf bytes.Buffer
	err := renderer.RenderWorkbook(context.Background(), &buf, report)
	assert.ErrorContains(t, err, "failed to decode report content")
	assert.Zero(t, buf.Len())
}

func TestRenderWorkbook_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report := entity.NewReport("x", entity.ReportTypeSummary, day("2024-03-01"), day("2024-03-31"),
		entity.TimeframeMonthly, nil, "")
	var buf bytes.Buffer
	err := NewReportRenderer().RenderWorkbook(ctx, &buf, report)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, buf.Len())
}

func TestParseContent_Invalid(t *testing.T) {
	_, err := ParseContent("not json")
	assert.ErrorContains(t, err, "failed to decode report content")
}

func TestRenderWorkbook(t *testing.T) {
	renderer := NewReportRenderer()
	txns := sampleTransactions()
	report := entity.NewReport("Spring", entity.ReportTypeExpense, day("2024-03-01"), day("2024-04-30"),
		entity.TimeframeMonthly, []string{"Food", "Rent"}, "")
	raw, err := renderer.RenderContent(report, txns)
	require.NoError(t, err)
	report.MarkGenerated(decimal.RequireFromString("960"), raw)

	var buf bytes.Buffer
	require.NoError(t, renderer.RenderWorkbook(context.Background(), &buf, report))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Summary", "Periods", "Transactions"}, f.GetSheetList())

	name, err := f.GetCellValue("Summary", "B1")
	require.NoError(t, err)
	assert.Equal(t, "Spring", name)

	categories, err := f.GetCellValue("Summary", "B6")
	require.NoError(t, err)
	assert.Equal(t, "Food, Rent", categories)

	rows, err := f.GetRows("Transactions")
	require.NoError(t, err)
	require.Len(t, rows, len(txns)+1)
	assert.Equal(t, []string{"ID", "Date", "Type", "Amount", "Category", "Description"}, rows[0])
	assert.Equal(t, "2024-03-01", rows[1][1])
	assert.Equal(t, "INCOME", rows[1][2])
	assert.Equal(t, "march pay", rows[1][5])

	periods, err := f.GetRows("Periods")
	require.NoError(t, err)
	require.Len(t, periods, 3)
	assert.Equal(t, "2024-03", periods[1][0])
	assert.Equal(t, "945.9", periods[1][2])
}

func TestRenderWorkbook_UsesSnapshotRowsOnly(t *testing.T) {
	renderer := NewReportRenderer()
	txns := sampleTransactions()
	report := entity.NewReport("Spring", entity.ReportTypeExpense, day("2024-03-01"), day("2024-04-30"),
		entity.TimeframeMonthly, nil, "")
	raw, err := renderer.RenderContent(report, txns[:2])
	require.NoError(t, err)
	report.MarkGenerated(decimal.RequireFromString("45.90"), raw)

	// Later ledger edits must not reach the export.
	txns[1].Amount = decimal.RequireFromString("999")

	var buf bytes.Buffer
	require.NoError(t, renderer.RenderWorkbook(context.Background(), &buf, report))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Transactions")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "45.9", rows[2][3])

	count, err := f.GetCellValue("Summary", "B11")
	require.NoError(t, err)
	assert.Equal(t, "2", count)
}

func TestWriteSummary_ReportsCellErrors(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	report := entity.NewReport("x", entity.ReportTypeSummary, day("2024-03-01"), day("2024-03-31"),
		entity.TimeframeMonthly, nil, "")
	err := writeSummary(&sheet{f: f, name: "Missing"}, report, BuildContent(entity.TimeframeMonthly, nil))
	assert.ErrorContains(t, err, "Missing")
}

func TestSheet_KeepsFirstError(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	s := &sheet{f: f, name: "Sheet1"}
	s.width("A", "A", 300)
	require.ErrorIs(t, s.err, excelize.ErrColumnWidth)

	s.row(1, "later")
	assert.ErrorIs(t, s.err, excelize.ErrColumnWidth)

	value, err := f.GetCellValue("Sheet1", "A1")
	require.NoError(t, err)
	assert.Empty(t, value)
}
