// Package error defines domain-specific errors for the Salon Manager application.
package error

import "errors"

// Customer domain errors.
var (
	// ErrCustomerNotFound is returned when a customer does not exist or belongs to another salon.
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrCustomerNameRequired is returned when a customer is created without a name.
	ErrCustomerNameRequired = errors.New("customer name is required")
)

// CustomerErrorCode defines error codes for customer errors.
// Format: CST-XXYYYY where XX is category and YYYY is specific error.
type CustomerErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeCustomerNameRequired CustomerErrorCode = "CST-010001"

	// Lookup errors (02XXXX)
	ErrCodeCustomerNotFound CustomerErrorCode = "CST-020001"
)

// CustomerError represents a customer error with code and message.
type CustomerError struct {
	Code    CustomerErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CustomerError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CustomerError) Unwrap() error {
	return e.Err
}

// NewCustomerError creates a new CustomerError with the given code and message.
func NewCustomerError(code CustomerErrorCode, message string, err error) *CustomerError {
	return &CustomerError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
