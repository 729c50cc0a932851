package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ReportType selects which ledger flow a report totals.
type ReportType string

const (
	ReportTypeExpense      ReportType = "EXPENSE"
	ReportTypeIncome       ReportType = "INCOME"
	ReportTypeCategoryWise ReportType = "CATEGORY_WISE"
	ReportTypeSummary      ReportType = "SUMMARY"
)

// ParseReportType normalizes a raw report type.
func ParseReportType(raw string) (ReportType, bool) {
	t := ReportType(strings.ToUpper(strings.TrimSpace(raw)))
	switch t {
	case ReportTypeExpense, ReportTypeIncome, ReportTypeCategoryWise, ReportTypeSummary:
		return t, true
	default:
		return t, false
	}
}

// ReportTimeframe is the bucket size used in report content.
type ReportTimeframe string

const (
	TimeframeDaily   ReportTimeframe = "DAILY"
	TimeframeWeekly  ReportTimeframe = "WEEKLY"
	TimeframeMonthly ReportTimeframe = "MONTHLY"
	TimeframeYearly  ReportTimeframe = "YEARLY"
)

// ParseReportTimeframe normalizes a raw timeframe; empty input defaults to MONTHLY.
func ParseReportTimeframe(raw string) (ReportTimeframe, bool) {
	if strings.TrimSpace(raw) == "" {
		return TimeframeMonthly, true
	}
	t := ReportTimeframe(strings.ToUpper(strings.TrimSpace(raw)))
	switch t {
	case TimeframeDaily, TimeframeWeekly, TimeframeMonthly, TimeframeYearly:
		return t, true
	default:
		return t, false
	}
}

// BucketKey returns the label of the bucket d belongs to.
func (t ReportTimeframe) BucketKey(d time.Time) string {
	switch t {
	case TimeframeDaily:
		return d.Format(DateLayout)
	case TimeframeWeekly:
		year, week := d.ISOWeek()
		return fmt.Sprintf("%04d-W%02d", year, week)
	case TimeframeYearly:
		return d.Format("2006")
	default:
		return d.Format("2006-01")
	}
}

// ReportStatus represents whether the snapshot has been computed.
type ReportStatus string

const (
	ReportStatusGenerated ReportStatus = "GENERATED"
	ReportStatusPending   ReportStatus = "PENDING"
)

// ParseReportStatus normalizes a raw report status.
func ParseReportStatus(raw string) (ReportStatus, bool) {
	s := ReportStatus(strings.ToUpper(strings.TrimSpace(raw)))
	switch s {
	case ReportStatusGenerated, ReportStatusPending:
		return s, true
	default:
		return s, false
	}
}

// Report is a point-in-time summary of the ledger.
// TotalAmount and Content are produced by the generator and never taken
// from the caller; they are not refreshed when the ledger changes later.
type Report struct {
	ID          int64
	Name        string
	Type        ReportType
	StartDate   time.Time
	EndDate     time.Time
	Timeframe   ReportTimeframe
	Categories  []string
	TotalAmount decimal.Decimal
	Status      ReportStatus
	Content     string
	Description string
	GeneratedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewReport creates a PENDING report with no snapshot yet.
func NewReport(
	name string,
	reportType ReportType,
	startDate, endDate time.Time,
	timeframe ReportTimeframe,
	categories []string,
	description string,
) *Report {
	now := time.Now().UTC()

	return &Report{
		Name:        name,
		Type:        reportType,
		StartDate:   NormalizeDate(startDate),
		EndDate:     NormalizeDate(endDate),
		Timeframe:   timeframe,
		Categories:  categories,
		TotalAmount: decimal.Zero,
		Status:      ReportStatusPending,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Window returns the inclusive date range the report covers.
func (r *Report) Window() DateRange {
	return NewDateRange(r.StartDate, r.EndDate)
}

// MarkGenerated stores the computed snapshot on the report.
func (r *Report) MarkGenerated(total decimal.Decimal, content string) {
	now := time.Now().UTC()
	r.TotalAmount = total
	r.Content = content
	r.Status = ReportStatusGenerated
	r.GeneratedAt = &now
	r.UpdatedAt = now
}

// TotalFor picks the figure a report of this type reports as its total.
func (t ReportType) TotalFor(totals *TransactionTotals) decimal.Decimal {
	switch t {
	case ReportTypeIncome:
		return totals.IncomeTotal
	case ReportTypeSummary:
		return totals.NetTotal
	default:
		return totals.ExpenseTotal
	}
}
