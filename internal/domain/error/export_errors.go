// Package error defines domain-specific errors for the Budget Pilot application.
package error

import "errors"

// Export domain errors.
var (
	// ErrInvalidExportRange is returned when the start month/year is
	// chronologically after the end month/year.
	ErrInvalidExportRange = errors.New("start of range must not be after end")

	// ErrInvalidExportType is returned when the export type is unknown.
	ErrInvalidExportType = errors.New("invalid export type")

	// ErrInvalidExportFormat is returned when the format is not csv or xlsx.
	ErrInvalidExportFormat = errors.New("invalid export format")

	// ErrNoExportData is returned when the requested section has zero rows.
	// An empty export is a rejected request, not an empty file.
	ErrNoExportData = errors.New("no data in selected range")
)

// ExportErrorCode defines error codes for export errors.
// Format: EXP-XXYYYY where XX is category and YYYY is specific error.
type ExportErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidExportRange  ExportErrorCode = "EXP-010001"
	ErrCodeInvalidExportType   ExportErrorCode = "EXP-010002"
	ErrCodeInvalidExportFormat ExportErrorCode = "EXP-010003"

	// Empty-result rejection (02XXXX)
	ErrCodeNoExportData ExportErrorCode = "EXP-020001"

	// Encoding errors (03XXXX)
	ErrCodeExportEncodeFailed ExportErrorCode = "EXP-030001"
)

// ExportError represents an export error with code and message.
type ExportError struct {
	Code    ExportErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ExportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ExportError) Unwrap() error {
	return e.Err
}

// NewExportError creates a new ExportError with the given code and message.
func NewExportError(code ExportErrorCode, message string, err error) *ExportError {
	return &ExportError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
