package budget

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/budget-ledger/backend/internal/domain/entity"
	domainerror "github.com/budget-ledger/backend/internal/domain/error"
)

// BudgetFields holds the caller-editable fields of a budget.
// There is no Spent field: spending is always derived from the ledger.
type BudgetFields struct {
	Category    string
	Amount      decimal.Decimal
	StartDate   time.Time
	EndDate     time.Time
	Period      string
	Status      string
	Description string
}

type validFields struct {
	period entity.BudgetPeriod
	status entity.ActivityStatus
}

func validateFields(f BudgetFields) (*validFields, error) {
	if strings.TrimSpace(f.Category) == "" {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetCategoryRequired,
			"missing category",
			domainerror.ErrBudgetCategoryRequired,
		)
	}

	if f.Amount.IsNegative() {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetAmount,
			"invalid budget amount",
			domainerror.ErrInvalidBudgetAmount,
		)
	}
	if !entity.FitsMoneyScale(f.Amount) {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetAmount,
			"budget amount has too many decimal places",
			domainerror.ErrBudgetAmountPrecision,
		)
	}

	if f.StartDate.IsZero() || f.EndDate.IsZero() {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeMissingBudgetFields,
			"start date and end date are required",
			domainerror.ErrInvalidBudgetWindow,
		)
	}

	if entity.NewDateRange(f.StartDate, f.EndDate).IsEmpty() {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetWindow,
			"invalid budget window",
			domainerror.ErrInvalidBudgetWindow,
		)
	}

	period, ok := entity.ParseBudgetPeriod(f.Period)
	if !ok {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetPeriod,
			"invalid budget period",
			domainerror.ErrInvalidBudgetPeriod,
		)
	}

	status, ok := entity.ParseActivityStatus(f.Status)
	if !ok {
		return nil, invalidStatusError()
	}

	return &validFields{period: period, status: status}, nil
}

func invalidStatusError() error {
	return domainerror.NewBudgetError(
		domainerror.ErrCodeInvalidBudgetStatus,
		"invalid budget status",
		domainerror.ErrInvalidBudgetStatus,
	)
}

// findError converts a repository lookup failure into a coded error.
func findError(err error) error {
	if errors.Is(err, domainerror.ErrBudgetNotFound) {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetNotFound,
			"budget not found",
			domainerror.ErrBudgetNotFound,
		)
	}
	return storageError("failed to find budget", err)
}

func storageError(message string, err error) error {
	return domainerror.NewBudgetError(
		domainerror.ErrCodeBudgetStorage,
		message,
		err,
	)
}
