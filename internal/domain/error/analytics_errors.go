// Package error defines domain-specific errors for the Salon Manager application.
package error

import "errors"

// Analytics domain errors.
var (
	// ErrMissingStartDate is returned when start_date is not provided.
	ErrMissingStartDate = errors.New("start_date is required")

	// ErrMissingEndDate is returned when end_date is not provided.
	ErrMissingEndDate = errors.New("end_date is required")

	// ErrInvalidDateRange is returned when the period start is after its end.
	ErrInvalidDateRange = errors.New("start date must not be after end date")

	// ErrInvalidDateFormat is returned when a date parameter is malformed.
	ErrInvalidDateFormat = errors.New("invalid date format, expected YYYY-MM-DD")

	// ErrInvalidCommissionRate is returned when the commission rate is outside [0,1].
	ErrInvalidCommissionRate = errors.New("commission rate must be between 0 and 1")
)

// AnalyticsErrorCode defines error codes for analytics errors.
// Format: ANL-XXYYYY where XX is category and YYYY is specific error.
type AnalyticsErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingStartDate      AnalyticsErrorCode = "ANL-010001"
	ErrCodeMissingEndDate        AnalyticsErrorCode = "ANL-010002"
	ErrCodeInvalidDateRange      AnalyticsErrorCode = "ANL-010003"
	ErrCodeInvalidDateFormat     AnalyticsErrorCode = "ANL-010004"
	ErrCodeInvalidCommissionRate AnalyticsErrorCode = "ANL-010005"

	// Internal errors (99XXXX)
	ErrCodeAnalyticsInternalError AnalyticsErrorCode = "ANL-990001"
)

// AnalyticsError represents an analytics error with code and message.
type AnalyticsError struct {
	Code    AnalyticsErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AnalyticsError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AnalyticsError) Unwrap() error {
	return e.Err
}

// NewAnalyticsError creates a new AnalyticsError with the given code and message.
func NewAnalyticsError(code AnalyticsErrorCode, message string, err error) *AnalyticsError {
	return &AnalyticsError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
