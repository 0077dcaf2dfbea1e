// Package error defines domain-specific errors for the Budget Pilot application.
package error

import "errors"

// Recurring transaction domain errors.
var (
	// ErrRecurringNotFound is returned when a recurring transaction is not
	// found for the requesting user.
	ErrRecurringNotFound = errors.New("recurring transaction not found")

	// ErrInvalidRecurringAmount is returned when the amount is zero or negative.
	ErrInvalidRecurringAmount = errors.New("recurring amount must be greater than zero")

	// ErrInvalidRecurringType is returned when the type is not BILL or SUBSCRIPTION.
	ErrInvalidRecurringType = errors.New("invalid recurring transaction type")

	// ErrInvalidFrequency is returned when the frequency is not a known cadence.
	ErrInvalidFrequency = errors.New("invalid frequency")

	// ErrStartDateInFuture is returned when the start date is after today.
	ErrStartDateInFuture = errors.New("start date must not be in the future")
)

// RecurringErrorCode defines error codes for recurring transaction errors.
// Format: REC-XXYYYY where XX is category and YYYY is specific error.
type RecurringErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidRecurringAmount RecurringErrorCode = "REC-010001"
	ErrCodeInvalidRecurringType   RecurringErrorCode = "REC-010002"
	ErrCodeInvalidFrequency       RecurringErrorCode = "REC-010003"
	ErrCodeStartDateInFuture      RecurringErrorCode = "REC-010004"
	ErrCodeMissingRecurringFields RecurringErrorCode = "REC-010005"

	// Lookup errors (02XXXX)
	ErrCodeRecurringNotFound RecurringErrorCode = "REC-020001"
)

// RecurringError represents a recurring transaction error with code and message.
type RecurringError struct {
	Code    RecurringErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *RecurringError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *RecurringError) Unwrap() error {
	return e.Err
}

// NewRecurringError creates a new RecurringError with the given code and message.
func NewRecurringError(code RecurringErrorCode, message string, err error) *RecurringError {
	return &RecurringError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
