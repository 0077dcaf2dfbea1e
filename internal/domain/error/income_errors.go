// Package error defines domain-specific errors for the Budget Pilot application.
package error

import "errors"

// Income domain errors.
var (
	// ErrIncomeNotFound is returned when an income record is not found for the
	// requesting user. A record owned by another user is reported the same way.
	ErrIncomeNotFound = errors.New("income record not found")

	// ErrInvalidIncomeAmount is returned when the income amount is negative.
	ErrInvalidIncomeAmount = errors.New("income amount must not be negative")

	// ErrMissingIncomeSource is returned when the income source is empty.
	ErrMissingIncomeSource = errors.New("income source is required")
)

// IncomeErrorCode defines error codes for income errors.
// Format: INC-XXYYYY where XX is category and YYYY is specific error.
type IncomeErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidIncomeAmount IncomeErrorCode = "INC-010001"
	ErrCodeMissingIncomeSource IncomeErrorCode = "INC-010002"
	ErrCodeMissingIncomeFields IncomeErrorCode = "INC-010003"

	// Lookup errors (02XXXX)
	ErrCodeIncomeNotFound IncomeErrorCode = "INC-020001"
)

// IncomeError represents an income error with code and message.
type IncomeError struct {
	Code    IncomeErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *IncomeError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *IncomeError) Unwrap() error {
	return e.Err
}

// NewIncomeError creates a new IncomeError with the given code and message.
func NewIncomeError(code IncomeErrorCode, message string, err error) *IncomeError {
	return &IncomeError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
