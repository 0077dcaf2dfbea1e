// Package error defines domain-specific errors for the Budget Pilot application.
package error

import "errors"

// Summary and analytics domain errors. The summary engine itself never
// reports not-found; empty collections yield zeroed aggregates. These errors
// cover input validation at the use-case boundary.
var (
	// ErrInvalidMonth is returned when the month is outside [1,12].
	ErrInvalidMonth = errors.New("month must be between 1 and 12")

	// ErrInvalidYear is returned when the year is outside [2000,2100].
	ErrInvalidYear = errors.New("year must be between 2000 and 2100")

	// ErrInvalidMonthsBack is returned when the analytics window is not 3, 6 or 12.
	ErrInvalidMonthsBack = errors.New("months back must be 3, 6 or 12")

	// ErrInvalidSpendAmount is returned when the hypothetical amount is zero or negative.
	ErrInvalidSpendAmount = errors.New("amount must be greater than zero")
)

// SummaryErrorCode defines error codes for summary errors.
// Format: SUM-XXYYYY where XX is category and YYYY is specific error.
type SummaryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidMonth       SummaryErrorCode = "SUM-010001"
	ErrCodeInvalidYear        SummaryErrorCode = "SUM-010002"
	ErrCodeInvalidMonthsBack  SummaryErrorCode = "SUM-010003"
	ErrCodeInvalidSpendAmount SummaryErrorCode = "SUM-010004"
)

// SummaryError represents a summary error with code and message.
type SummaryError struct {
	Code    SummaryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SummaryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SummaryError) Unwrap() error {
	return e.Err
}

// NewSummaryError creates a new SummaryError with the given code and message.
func NewSummaryError(code SummaryErrorCode, message string, err error) *SummaryError {
	return &SummaryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
