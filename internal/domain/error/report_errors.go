package error

// Report domain errors.
var (
	// ErrReportNotFound is returned when a report is not found.
	ErrReportNotFound = notFound("report")

	// ErrReportNameRequired is returned when the name is blank.
	ErrReportNameRequired = validation("report name is required")

	// ErrInvalidReportType is returned for an unknown report type.
	ErrInvalidReportType = validation("report type must be EXPENSE, INCOME, SUMMARY or CATEGORY_WISE")

	// ErrInvalidReportWindow is returned when the start date is after the end date.
	ErrInvalidReportWindow = validation("report start date must not be after end date")

	// ErrInvalidReportTimeframe is returned for an unknown timeframe.
	ErrInvalidReportTimeframe = validation("report timeframe must be DAILY, WEEKLY, MONTHLY or YEARLY")

	// ErrInvalidReportStatus is returned for an unknown status filter.
	ErrInvalidReportStatus = validation("report status must be GENERATED or PENDING")

	// ErrReportNotGenerated is returned when exporting a report that is still pending.
	ErrReportNotGenerated = validation("report has not been generated yet")
)

// ReportErrorCode defines error codes for report errors.
// Format: RPT-XXYYYY where XX is category and YYYY is specific error.
type ReportErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeReportNotFound         ReportErrorCode = "RPT-010001"
	ErrCodeReportNameRequired     ReportErrorCode = "RPT-010002"
	ErrCodeInvalidReportType      ReportErrorCode = "RPT-010003"
	ErrCodeInvalidReportWindow    ReportErrorCode = "RPT-010004"
	ErrCodeInvalidReportTimeframe ReportErrorCode = "RPT-010005"
	ErrCodeInvalidReportStatus    ReportErrorCode = "RPT-010006"
	ErrCodeMissingReportFields    ReportErrorCode = "RPT-010007"
	ErrCodeReportNotGenerated     ReportErrorCode = "RPT-010008"

	// Storage and rendering errors (02XXXX)
	ErrCodeReportStorage   ReportErrorCode = "RPT-020001"
	ErrCodeReportRendering ReportErrorCode = "RPT-020002"
)

// ReportError represents a report error with code and message.
type ReportError struct {
	Code    ReportErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReportError) Unwrap() error {
	return e.Err
}

// NewReportError creates a new ReportError with the given code and message.
func NewReportError(code ReportErrorCode, message string, err error) *ReportError {
	return &ReportError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
