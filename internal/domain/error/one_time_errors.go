// Package error defines domain-specific errors for the Budget Pilot application.
package error

import "errors"

// One-time transaction domain errors.
var (
	// ErrOneTimeNotFound is returned when a one-time transaction is not found
	// for the requesting user.
	ErrOneTimeNotFound = errors.New("one-time transaction not found")

	// ErrInvalidOneTimeAmount is returned when the amount is zero or negative.
	ErrInvalidOneTimeAmount = errors.New("one-time amount must be greater than zero")
)

// OneTimeErrorCode defines error codes for one-time transaction errors.
// Format: OTT-XXYYYY where XX is category and YYYY is specific error.
type OneTimeErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidOneTimeAmount OneTimeErrorCode = "OTT-010001"
	ErrCodeMissingOneTimeFields OneTimeErrorCode = "OTT-010002"

	// Lookup errors (02XXXX)
	ErrCodeOneTimeNotFound OneTimeErrorCode = "OTT-020001"
)

// OneTimeError represents a one-time transaction error with code and message.
type OneTimeError struct {
	Code    OneTimeErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *OneTimeError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *OneTimeError) Unwrap() error {
	return e.Err
}

// NewOneTimeError creates a new OneTimeError with the given code and message.
func NewOneTimeError(code OneTimeErrorCode, message string, err error) *OneTimeError {
	return &OneTimeError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
