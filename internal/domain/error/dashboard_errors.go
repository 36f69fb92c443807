// Package error defines domain-specific errors for the Finance Pulse application.
package error

import "errors"

// Dashboard domain errors.
var (
	// ErrInvalidYear is returned when the requested year is out of range.
	ErrInvalidYear = errors.New("year must be a four-digit calendar year")

	// ErrInvalidDateFormat is returned when a date parameter is malformed.
	ErrInvalidDateFormat = errors.New("invalid date format, expected YYYY-MM-DD")
)

// DashboardErrorCode defines error codes for dashboard errors.
// Format: DSH-XXYYYY where XX is category and YYYY is specific error.
type DashboardErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidYear       DashboardErrorCode = "DSH-010001"
	ErrCodeInvalidDateFormat DashboardErrorCode = "DSH-010002"

	// Fetch errors (02XXXX)
	ErrCodeSourceFetchFailed DashboardErrorCode = "DSH-020001"

	// Internal errors (99XXXX)
	ErrCodeDashboardInternalError DashboardErrorCode = "DSH-990001"
)

// DashboardError represents a dashboard error with code and message.
type DashboardError struct {
	Code    DashboardErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *DashboardError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *DashboardError) Unwrap() error {
	return e.Err
}

// NewDashboardError creates a new DashboardError with the given code and message.
func NewDashboardError(code DashboardErrorCode, message string, err error) *DashboardError {
	return &DashboardError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
