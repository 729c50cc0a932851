// Package goal contains savings goal use cases.
package goal

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/budget-ledger/backend/internal/domain/entity"
	domainerror "github.com/budget-ledger/backend/internal/domain/error"
)

// GoalFields holds the caller-editable fields of a goal.
type GoalFields struct {
	Name           string
	TargetAmount   decimal.Decimal
	CurrentSavings decimal.Decimal
	IconName       string
	Status         string
	Description    string
}

func validateFields(f GoalFields) (entity.GoalStatus, error) {
	if strings.TrimSpace(f.Name) == "" {
		return "", domainerror.NewGoalError(
			domainerror.ErrCodeGoalNameRequired,
			"missing name",
			domainerror.ErrGoalNameRequired,
		)
	}

	if !f.TargetAmount.IsPositive() {
		return "", domainerror.NewGoalError(
			domainerror.ErrCodeInvalidTargetAmount,
			"invalid target amount",
			domainerror.ErrInvalidTargetAmount,
		)
	}
	if !entity.FitsMoneyScale(f.TargetAmount) {
		return "", domainerror.NewGoalError(
			domainerror.ErrCodeInvalidTargetAmount,
			"target amount has too many decimal places",
			domainerror.ErrGoalAmountPrecision,
		)
	}

	if f.CurrentSavings.IsNegative() {
		return "", domainerror.NewGoalError(
			domainerror.ErrCodeInvalidCurrentSavings,
			"invalid current savings",
			domainerror.ErrInvalidCurrentSavings,
		)
	}
	if !entity.FitsMoneyScale(f.CurrentSavings) {
		return "", domainerror.NewGoalError(
			domainerror.ErrCodeInvalidCurrentSavings,
			"current savings have too many decimal places",
			domainerror.ErrGoalAmountPrecision,
		)
	}

	status, ok := entity.ParseGoalStatus(f.Status)
	if !ok {
		return "", domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalStatus,
			"invalid goal status",
			domainerror.ErrInvalidGoalStatus,
		)
	}

	return status, nil
}

// findError converts a repository lookup failure into a coded error.
func findError(err error) error {
	if errors.Is(err, domainerror.ErrGoalNotFound) {
		return domainerror.NewGoalError(
			domainerror.ErrCodeGoalNotFound,
			"goal not found",
			domainerror.ErrGoalNotFound,
		)
	}
	return storageError("failed to find goal", err)
}

func storageError(message string, err error) error {
	return domainerror.NewGoalError(
		domainerror.ErrCodeGoalStorage,
		message,
		err,
	)
}
