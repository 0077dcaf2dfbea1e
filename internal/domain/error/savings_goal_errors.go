// Package error defines domain-specific errors for the Budget Pilot application.
package error

import "errors"

// Savings goal domain errors.
var (
	// ErrSavingsGoalNotFound is returned when a savings goal is not found for
	// the requesting user.
	ErrSavingsGoalNotFound = errors.New("savings goal not found")

	// ErrInvalidTargetAmount is returned when the target amount is zero or negative.
	ErrInvalidTargetAmount = errors.New("target amount must be greater than zero")

	// ErrInvalidCurrentAmount is returned when the current amount is negative.
	ErrInvalidCurrentAmount = errors.New("current amount must not be negative")

	// ErrCurrentExceedsTarget is returned at creation when the current amount
	// already meets or exceeds the target.
	ErrCurrentExceedsTarget = errors.New("current amount must be less than target amount")

	// ErrTargetDateNotFuture is returned at creation when the target date is
	// not in the future.
	ErrTargetDateNotFuture = errors.New("target date must be in the future")
)

// SavingsGoalErrorCode defines error codes for savings goal errors.
// Format: SVG-XXYYYY where XX is category and YYYY is specific error.
type SavingsGoalErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTargetAmount  SavingsGoalErrorCode = "SVG-010001"
	ErrCodeInvalidCurrentAmount SavingsGoalErrorCode = "SVG-010002"
	ErrCodeCurrentExceedsTarget SavingsGoalErrorCode = "SVG-010003"
	ErrCodeTargetDateNotFuture  SavingsGoalErrorCode = "SVG-010004"
	ErrCodeMissingGoalFields    SavingsGoalErrorCode = "SVG-010005"

	// Lookup errors (02XXXX)
	ErrCodeSavingsGoalNotFound SavingsGoalErrorCode = "SVG-020001"
)

// SavingsGoalError represents a savings goal error with code and message.
type SavingsGoalError struct {
	Code    SavingsGoalErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SavingsGoalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SavingsGoalError) Unwrap() error {
	return e.Err
}

// NewSavingsGoalError creates a new SavingsGoalError with the given code and message.
func NewSavingsGoalError(code SavingsGoalErrorCode, message string, err error) *SavingsGoalError {
	return &SavingsGoalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
