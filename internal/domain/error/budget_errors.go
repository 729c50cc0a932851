package error

// Budget domain errors.
var (
	// ErrBudgetNotFound is returned when a budget is not found.
	ErrBudgetNotFound = notFound("budget")

	// ErrInvalidBudgetAmount is returned when the allocated amount is negative.
	ErrInvalidBudgetAmount = validation("budget amount must not be negative")

	// ErrBudgetAmountPrecision is returned when the amount has more than two decimal places.
	ErrBudgetAmountPrecision = validation("budget amount must have at most 2 decimal places")

	// ErrInvalidBudgetWindow is returned when the start date is after the end date.
	ErrInvalidBudgetWindow = validation("budget start date must not be after end date")

	// ErrBudgetCategoryRequired is returned when the category is blank.
	ErrBudgetCategoryRequired = validation("budget category is required")

	// ErrInvalidBudgetPeriod is returned for an unknown period label.
	ErrInvalidBudgetPeriod = validation("budget period must be WEEKLY, MONTHLY, QUARTERLY or YEARLY")

	// ErrInvalidBudgetStatus is returned for an unknown status.
	ErrInvalidBudgetStatus = validation("budget status must be ACTIVE or INACTIVE")
)

// BudgetErrorCode defines error codes for budget errors.
// Format: BUD-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeBudgetNotFound         BudgetErrorCode = "BUD-010001"
	ErrCodeInvalidBudgetAmount    BudgetErrorCode = "BUD-010002"
	ErrCodeInvalidBudgetWindow    BudgetErrorCode = "BUD-010003"
	ErrCodeBudgetCategoryRequired BudgetErrorCode = "BUD-010004"
	ErrCodeInvalidBudgetPeriod    BudgetErrorCode = "BUD-010005"
	ErrCodeInvalidBudgetStatus    BudgetErrorCode = "BUD-010006"
	ErrCodeMissingBudgetFields    BudgetErrorCode = "BUD-010007"

	// Storage errors (02XXXX)
	ErrCodeBudgetStorage BudgetErrorCode = "BUD-020001"
)

// BudgetError represents a budget error with code and message.
type BudgetError struct {
	Code    BudgetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BudgetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BudgetError) Unwrap() error {
	return e.Err
}

// NewBudgetError creates a new BudgetError with the given code and message.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return &BudgetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
