package error

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not found in the ledger.
	ErrTransactionNotFound = notFound("transaction")

	// ErrInvalidTransactionType is returned when the transaction type is not INCOME or EXPENSE.
	ErrInvalidTransactionType = validation("transaction type must be INCOME or EXPENSE")

	// ErrInvalidTransactionAmount is returned when the amount is zero or negative.
	ErrInvalidTransactionAmount = validation("transaction amount must be greater than zero")

	// ErrTransactionAmountPrecision is returned when the amount has more than two decimal places.
	ErrTransactionAmountPrecision = validation("transaction amount must have at most 2 decimal places")

	// ErrInvalidTransactionDate is returned when the transaction date is missing.
	ErrInvalidTransactionDate = validation("transaction date is required")

	// ErrTransactionCategoryRequired is returned when the category is blank.
	ErrTransactionCategoryRequired = validation("transaction category is required")

	// ErrInvalidTransactionID is returned when an id is not a positive integer.
	ErrInvalidTransactionID = validation("transaction id must be a positive integer")

	// ErrInvalidDateRange is returned when a date range bound cannot be parsed.
	ErrInvalidDateRange = validation("date range bounds must be YYYY-MM-DD")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTransactionType   TransactionErrorCode = "TXN-010001"
	ErrCodeInvalidTransactionDate   TransactionErrorCode = "TXN-010002"
	ErrCodeInvalidTransactionAmount TransactionErrorCode = "TXN-010003"
	ErrCodeTransactionNotFound      TransactionErrorCode = "TXN-010004"
	ErrCodeTxnCategoryRequired      TransactionErrorCode = "TXN-010005"
	ErrCodeMissingTransactionFields TransactionErrorCode = "TXN-010006"
	ErrCodeInvalidTransactionID     TransactionErrorCode = "TXN-010007"
	ErrCodeInvalidDateRange         TransactionErrorCode = "TXN-010008"

	// Storage errors (02XXXX)
	ErrCodeTransactionStorage TransactionErrorCode = "TXN-020001"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
