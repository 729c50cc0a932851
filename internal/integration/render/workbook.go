package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/budget-ledger/backend/internal/domain/entity"
)

const (
	summarySheet      = "Summary"
	periodsSheet      = "Periods"
	transactionsSheet = "Transactions"
)

func writeWorkbook(w io.Writer, report *entity.Report, content *Content) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return fmt.Errorf("failed to name summary sheet: %w", err)
	}
	for _, name := range []string{periodsSheet, transactionsSheet} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("failed to create sheet %s: %w", name, err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	if err := writeSummary(&sheet{f: f, name: summarySheet, header: headerStyle}, report, content); err != nil {
		return fmt.Errorf("failed to write %s sheet: %w", summarySheet, err)
	}
	if err := writePeriods(&sheet{f: f, name: periodsSheet, header: headerStyle}, content); err != nil {
		return fmt.Errorf("failed to write %s sheet: %w", periodsSheet, err)
	}
	if err := writeTransactions(&sheet{f: f, name: transactionsSheet, header: headerStyle}, content); err != nil {
		return fmt.Errorf("failed to write %s sheet: %w", transactionsSheet, err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// sheet writes cells to one worksheet and keeps the first error; once an
// error is recorded every later call is a no-op.
type sheet struct {
	f      *excelize.File
	name   string
	header int
	err    error
}

func (s *sheet) width(startCol, endCol string, width float64) {
	if s.err == nil {
		s.err = s.f.SetColWidth(s.name, startCol, endCol, width)
	}
}

func (s *sheet) set(col, row int, value interface{}) {
	if s.err != nil {
		return
	}
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		s.err = err
		return
	}
	s.err = s.f.SetCellValue(s.name, cell, value)
}

// row writes values left to right starting at column A.
func (s *sheet) row(row int, values ...interface{}) {
	for i, v := range values {
		s.set(i+1, row, v)
	}
}

// headerRow writes values as a styled header line.
func (s *sheet) headerRow(row int, values ...interface{}) {
	s.row(row, values...)
	if s.err != nil || len(values) == 0 {
		return
	}
	first, _ := excelize.CoordinatesToCellName(1, row)
	last, _ := excelize.CoordinatesToCellName(len(values), row)
	s.err = s.f.SetCellStyle(s.name, first, last, s.header)
}

func writeSummary(s *sheet, report *entity.Report, content *Content) error {
	s.width("A", "A", 22)
	s.width("B", "B", 30)

	rows := [][]interface{}{
		{"Report", report.Name},
		{"Type", string(report.Type)},
		{"Timeframe", string(report.Timeframe)},
		{"Start date", report.StartDate.Format(entity.DateLayout)},
		{"End date", report.EndDate.Format(entity.DateLayout)},
		{"Categories", strings.Join(report.Categories, ", ")},
		{"Total", report.TotalAmount.InexactFloat64()},
		{"Total income", content.TotalIncome.InexactFloat64()},
		{"Total expenses", content.TotalExpenses.InexactFloat64()},
		{"Balance", content.Balance.InexactFloat64()},
		{"Transactions", content.TransactionCount},
	}
	if report.GeneratedAt != nil {
		rows = append(rows, []interface{}{"Generated at", report.GeneratedAt.Format("2006-01-02 15:04:05")})
	}

	for i, r := range rows {
		s.row(i+1, r...)
		if s.err == nil {
			label, _ := excelize.CoordinatesToCellName(1, i+1)
			s.err = s.f.SetCellStyle(s.name, label, label, s.header)
		}
	}

	start := len(rows) + 2
	s.headerRow(start, "Category", "Expenses")
	for i, c := range content.Categories {
		s.row(start+1+i, c.Category, c.Total.InexactFloat64())
	}
	return s.err
}

func writePeriods(s *sheet, content *Content) error {
	s.width("A", "C", 16)
	s.headerRow(1, "Period", "Income", "Expenses")

	for i, p := range content.Periods {
		s.row(i+2, p.Period, p.Income.InexactFloat64(), p.Expenses.InexactFloat64())
	}
	return s.err
}

func writeTransactions(s *sheet, content *Content) error {
	s.width("A", "A", 10)
	s.width("B", "D", 14)
	s.width("E", "E", 20)
	s.width("F", "F", 40)
	s.headerRow(1, "ID", "Date", "Type", "Amount", "Category", "Description")

	for i, t := range content.Transactions {
		s.row(i+2, t.ID, t.Date, t.Type, t.Amount.InexactFloat64(), t.Category, t.Description)
	}
	return s.err
}
