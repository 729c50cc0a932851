package error

// Fixed expense domain errors.
var (
	// ErrFixedExpenseNotFound is returned when a fixed expense is not found.
	ErrFixedExpenseNotFound = notFound("fixed expense")

	// ErrFixedExpenseNameRequired is returned when the name is blank.
	ErrFixedExpenseNameRequired = validation("fixed expense name is required")

	// ErrInvalidFixedExpenseAmount is returned when the amount is zero or negative.
	ErrInvalidFixedExpenseAmount = validation("fixed expense amount must be greater than zero")

	// ErrFixedExpenseAmountPrecision is returned when the amount has more than two decimal places.
	ErrFixedExpenseAmountPrecision = validation("fixed expense amount must have at most 2 decimal places")

	// ErrInvalidDueDate is returned when the due day is outside 1..31.
	ErrInvalidDueDate = validation("due date must be a day of month between 1 and 31")

	// ErrFixedExpenseCategoryRequired is returned when the category is blank.
	ErrFixedExpenseCategoryRequired = validation("fixed expense category is required")

	// ErrInvalidFixedExpenseStatus is returned for an unknown status.
	ErrInvalidFixedExpenseStatus = validation("fixed expense status must be ACTIVE or INACTIVE")
)

// FixedExpenseErrorCode defines error codes for fixed expense errors.
// Format: FXE-XXYYYY where XX is category and YYYY is specific error.
type FixedExpenseErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeFixedExpenseNotFound         FixedExpenseErrorCode = "FXE-010001"
	ErrCodeFixedExpenseNameRequired     FixedExpenseErrorCode = "FXE-010002"
	ErrCodeInvalidFixedExpenseAmount    FixedExpenseErrorCode = "FXE-010003"
	ErrCodeInvalidDueDate               FixedExpenseErrorCode = "FXE-010004"
	ErrCodeFixedExpenseCategoryRequired FixedExpenseErrorCode = "FXE-010005"
	ErrCodeInvalidFixedExpenseStatus    FixedExpenseErrorCode = "FXE-010006"
	ErrCodeMissingFixedExpenseFields    FixedExpenseErrorCode = "FXE-010007"

	// Storage errors (02XXXX)
	ErrCodeFixedExpenseStorage FixedExpenseErrorCode = "FXE-020001"
)

// FixedExpenseError represents a fixed expense error with code and message.
type FixedExpenseError struct {
	Code    FixedExpenseErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *FixedExpenseError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *FixedExpenseError) Unwrap() error {
	return e.Err
}

// NewFixedExpenseError creates a new FixedExpenseError with the given code and message.
func NewFixedExpenseError(code FixedExpenseErrorCode, message string, err error) *FixedExpenseError {
	return &FixedExpenseError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
