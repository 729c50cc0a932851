// Package transaction contains ledger use cases.
package transaction

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/budget-ledger/backend/internal/domain/entity"
	domainerror "github.com/budget-ledger/backend/internal/domain/error"
)

// TransactionFields holds the caller-editable fields of a transaction.
type TransactionFields struct {
	Type        string
	Amount      decimal.Decimal
	Category    string
	Description string
	Date        time.Time
}

// validateFields checks the fields and returns the normalized type.
func validateFields(f TransactionFields) (entity.TransactionType, error) {
	transactionType, ok := entity.ParseTransactionType(f.Type)
	if !ok {
		return "", domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"invalid transaction type",
			domainerror.ErrInvalidTransactionType,
		)
	}

	if !f.Amount.IsPositive() {
		return "", domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"invalid transaction amount",
			domainerror.ErrInvalidTransactionAmount,
		)
	}
	if !entity.FitsMoneyScale(f.Amount) {
		return "", domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"transaction amount has too many decimal places",
			domainerror.ErrTransactionAmountPrecision,
		)
	}

	if strings.TrimSpace(f.Category) == "" {
		return "", domainerror.NewTransactionError(
			domainerror.ErrCodeTxnCategoryRequired,
			"missing category",
			domainerror.ErrTransactionCategoryRequired,
		)
	}

	if f.Date.IsZero() {
		return "", domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionDate,
			"invalid transaction date",
			domainerror.ErrInvalidTransactionDate,
		)
	}

	return transactionType, nil
}

// findError converts a repository lookup failure into a coded error.
func findError(err error) error {
	if errors.Is(err, domainerror.ErrTransactionNotFound) {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionNotFound,
			"transaction not found",
			domainerror.ErrTransactionNotFound,
		)
	}
	return storageError("failed to find transaction", err)
}

func storageError(message string, err error) error {
	return domainerror.NewTransactionError(
		domainerror.ErrCodeTransactionStorage,
		message,
		err,
	)
}
