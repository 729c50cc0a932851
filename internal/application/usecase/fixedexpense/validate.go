// Package fixedexpense contains recurring obligation use cases.
package fixedexpense

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/budget-ledger/backend/internal/domain/entity"
	domainerror "github.com/budget-ledger/backend/internal/domain/error"
)

// FixedExpenseFields holds the caller-editable fields of a fixed expense.
type FixedExpenseFields struct {
	Name     string
	Amount   decimal.Decimal
	DueDate  int
	Category string
	Status   string
}

func validateFields(f FixedExpenseFields) (entity.ActivityStatus, error) {
	if strings.TrimSpace(f.Name) == "" {
		return "", domainerror.NewFixedExpenseError(
			domainerror.ErrCodeFixedExpenseNameRequired,
			"missing name",
			domainerror.ErrFixedExpenseNameRequired,
		)
	}

	if !f.Amount.IsPositive() {
		return "", domainerror.NewFixedExpenseError(
			domainerror.ErrCodeInvalidFixedExpenseAmount,
			"invalid fixed expense amount",
			domainerror.ErrInvalidFixedExpenseAmount,
		)
	}
	if !entity.FitsMoneyScale(f.Amount) {
		return "", domainerror.NewFixedExpenseError(
			domainerror.ErrCodeInvalidFixedExpenseAmount,
			"fixed expense amount has too many decimal places",
			domainerror.ErrFixedExpenseAmountPrecision,
		)
	}

	if f.DueDate < 1 || f.DueDate > 31 {
		return "", domainerror.NewFixedExpenseError(
			domainerror.ErrCodeInvalidDueDate,
			"invalid due date",
			domainerror.ErrInvalidDueDate,
		)
	}

	if strings.TrimSpace(f.Category) == "" {
		return "", domainerror.NewFixedExpenseError(
			domainerror.ErrCodeFixedExpenseCategoryRequired,
			"missing category",
			domainerror.ErrFixedExpenseCategoryRequired,
		)
	}

	status, ok := entity.ParseActivityStatus(f.Status)
	if !ok {
		return "", domainerror.NewFixedExpenseError(
			domainerror.ErrCodeInvalidFixedExpenseStatus,
			"invalid fixed expense status",
			domainerror.ErrInvalidFixedExpenseStatus,
		)
	}

	return status, nil
}

// findError converts a repository lookup failure into a coded error.
func findError(err error) error {
	if errors.Is(err, domainerror.ErrFixedExpenseNotFound) {
		return domainerror.NewFixedExpenseError(
			domainerror.ErrCodeFixedExpenseNotFound,
			"fixed expense not found",
			domainerror.ErrFixedExpenseNotFound,
		)
	}
	return storageError("failed to find fixed expense", err)
}

func storageError(message string, err error) error {
	return domainerror.NewFixedExpenseError(
		domainerror.ErrCodeFixedExpenseStorage,
		message,
		err,
	)
}
