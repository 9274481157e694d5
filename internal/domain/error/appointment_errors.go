// Package error defines domain-specific errors for the Salon Manager application.
package error

import "errors"

// Appointment domain errors.
var (
	// ErrAppointmentNotFound is returned when an appointment does not exist or belongs to another salon.
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrAppointmentNotScheduled is returned when completing or cancelling an
	// appointment that is no longer in the scheduled state.
	ErrAppointmentNotScheduled = errors.New("appointment is not in scheduled state")

	// ErrInvalidPaymentMethod is returned when an unknown payment method is supplied.
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
)

// AppointmentErrorCode defines error codes for appointment errors.
// Format: APT-XXYYYY where XX is category and YYYY is specific error.
type AppointmentErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidPaymentMethod AppointmentErrorCode = "APT-010001"

	// Lookup errors (02XXXX)
	ErrCodeAppointmentNotFound AppointmentErrorCode = "APT-020001"

	// State errors (03XXXX)
	ErrCodeAppointmentNotScheduled AppointmentErrorCode = "APT-030001"
)

// AppointmentError represents an appointment error with code and message.
type AppointmentError struct {
	Code    AppointmentErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AppointmentError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AppointmentError) Unwrap() error {
	return e.Err
}

// NewAppointmentError creates a new AppointmentError with the given code and message.
func NewAppointmentError(code AppointmentErrorCode, message string, err error) *AppointmentError {
	return &AppointmentError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
