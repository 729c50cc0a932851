// Package report contains report generation use cases.
package report

import (
	"errors"
	"strings"
	"time"

	"github.com/budget-ledger/backend/internal/domain/entity"
	domainerror "github.com/budget-ledger/backend/internal/domain/error"
)

// ReportFields holds the caller-editable fields of a report.
// Totals and content are always computed, so they are not accepted here.
type ReportFields struct {
	Name        string
	Type        string
	StartDate   time.Time
	EndDate     time.Time
	Timeframe   string
	Categories  []string
	Description string

	// Deferred leaves the report PENDING for the background generator.
	Deferred bool
}

type validFields struct {
	reportType entity.ReportType
	timeframe  entity.ReportTimeframe
	categories []string
}

func validateFields(f ReportFields) (*validFields, error) {
	if strings.TrimSpace(f.Name) == "" {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeReportNameRequired,
			"missing name",
			domainerror.ErrReportNameRequired,
		)
	}

	reportType, ok := entity.ParseReportType(f.Type)
	if !ok {
		return nil, invalidTypeError()
	}

	if f.StartDate.IsZero() || f.EndDate.IsZero() {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeMissingReportFields,
			"start date and end date are required",
			domainerror.ErrInvalidReportWindow,
		)
	}

	if entity.NewDateRange(f.StartDate, f.EndDate).IsEmpty() {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidReportWindow,
			"invalid report window",
			domainerror.ErrInvalidReportWindow,
		)
	}

	timeframe, ok := entity.ParseReportTimeframe(f.Timeframe)
	if !ok {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidReportTimeframe,
			"invalid report timeframe",
			domainerror.ErrInvalidReportTimeframe,
		)
	}

	return &validFields{
		reportType: reportType,
		timeframe:  timeframe,
		categories: cleanCategories(f.Categories),
	}, nil
}

// cleanCategories trims names and drops blanks and duplicates, keeping order.
func cleanCategories(raw []string) []string {
	seen := make(map[string]struct{}, len(raw))
	categories := make([]string, 0, len(raw))
	for _, c := range raw {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		categories = append(categories, c)
	}
	return categories
}

func invalidTypeError() error {
	return domainerror.NewReportError(
		domainerror.ErrCodeInvalidReportType,
		"invalid report type",
		domainerror.ErrInvalidReportType,
	)
}

func invalidStatusError() error {
	return domainerror.NewReportError(
		domainerror.ErrCodeInvalidReportStatus,
		"invalid report status",
		domainerror.ErrInvalidReportStatus,
	)
}

// findError converts a repository lookup failure into a coded error.
func findError(err error) error {
	if errors.Is(err, domainerror.ErrReportNotFound) {
		return domainerror.NewReportError(
			domainerror.ErrCodeReportNotFound,
			"report not found",
			domainerror.ErrReportNotFound,
		)
	}
	return storageError("failed to find report", err)
}

func storageError(message string, err error) error {
	return domainerror.NewReportError(
		domainerror.ErrCodeReportStorage,
		message,
		err,
	)
}
