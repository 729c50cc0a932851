package error

// Settings domain errors.
var (
	// ErrSettingsNotFound is returned when no settings record exists.
	ErrSettingsNotFound = notFound("settings")

	// ErrInvalidCurrency is returned when the currency is not a 3-letter code.
	ErrInvalidCurrency = validation("currency must be a 3-letter ISO code")

	// ErrInvalidTimezone is returned when the timezone is not a known IANA zone.
	ErrInvalidTimezone = validation("timezone must be a valid IANA zone name")

	// ErrInvalidBudgetingFrequency is returned for an unknown budgeting frequency.
	ErrInvalidBudgetingFrequency = validation("budgeting frequency must be MONTHLY or YEARLY")
)

// SettingsErrorCode defines error codes for settings errors.
// Format: SET-XXYYYY where XX is category and YYYY is specific error.
type SettingsErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeSettingsNotFound          SettingsErrorCode = "SET-010001"
	ErrCodeInvalidCurrency           SettingsErrorCode = "SET-010002"
	ErrCodeInvalidTimezone           SettingsErrorCode = "SET-010003"
	ErrCodeInvalidBudgetingFrequency SettingsErrorCode = "SET-010004"
	ErrCodeMissingSettingsFields     SettingsErrorCode = "SET-010005"

	// Storage errors (02XXXX)
	ErrCodeSettingsStorage SettingsErrorCode = "SET-020001"
)

// SettingsError represents a settings error with code and message.
type SettingsError struct {
	Code    SettingsErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SettingsError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SettingsError) Unwrap() error {
	return e.Err
}

// NewSettingsError creates a new SettingsError with the given code and message.
func NewSettingsError(code SettingsErrorCode, message string, err error) *SettingsError {
	return &SettingsError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
