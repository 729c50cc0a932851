package error

// Goal domain errors.
var (
	// ErrGoalNotFound is returned when a goal is not found in the system.
	ErrGoalNotFound = notFound("goal")

	// ErrGoalNameRequired is returned when the name is blank.
	ErrGoalNameRequired = validation("goal name is required")

	// ErrInvalidTargetAmount is returned when the target amount is zero or negative.
	ErrInvalidTargetAmount = validation("goal target amount must be greater than zero")

	// ErrInvalidCurrentSavings is returned when current savings are negative.
	ErrInvalidCurrentSavings = validation("goal current savings must not be negative")

	// ErrGoalAmountPrecision is returned when an amount has more than two decimal places.
	ErrGoalAmountPrecision = validation("goal amounts must have at most 2 decimal places")

	// ErrInvalidGoalStatus is returned for an unknown status.
	ErrInvalidGoalStatus = validation("goal status must be ACTIVE, COMPLETED or DELETED")
)

// GoalErrorCode defines error codes for goal errors.
// Format: GOL-XXYYYY where XX is category and YYYY is specific error.
type GoalErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeGoalNotFound          GoalErrorCode = "GOL-010001"
	ErrCodeGoalNameRequired      GoalErrorCode = "GOL-010002"
	ErrCodeInvalidTargetAmount   GoalErrorCode = "GOL-010003"
	ErrCodeInvalidCurrentSavings GoalErrorCode = "GOL-010004"
	ErrCodeInvalidGoalStatus     GoalErrorCode = "GOL-010005"
	ErrCodeMissingGoalFields     GoalErrorCode = "GOL-010006"

	// Storage errors (02XXXX)
	ErrCodeGoalStorage GoalErrorCode = "GOL-020001"
)

// GoalError represents a goal error with code and message.
type GoalError struct {
	Code    GoalErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *GoalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GoalError) Unwrap() error {
	return e.Err
}

// NewGoalError creates a new GoalError with the given code and message.
func NewGoalError(code GoalErrorCode, message string, err error) *GoalError {
	return &GoalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
