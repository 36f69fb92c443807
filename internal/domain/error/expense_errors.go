// Package error defines domain-specific errors for the Finance Pulse application.
package error

import "errors"

// Expense domain errors.
var (
	// ErrExpenseNotFound is returned when an expense does not exist or is not
	// visible to the caller.
	ErrExpenseNotFound = errors.New("expense not found")

	// ErrCategoryNotFound is returned when a referenced category does not exist.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrNegativeAmount is returned when an expense amount is negative.
	ErrNegativeAmount = errors.New("amount must be non-negative")

	// ErrMissingDescription is returned when an expense has no description.
	ErrMissingDescription = errors.New("description is required")

	// ErrMissingDate is returned when an expense has no date.
	ErrMissingDate = errors.New("date is required")
)

// ExpenseErrorCode defines error codes for expense errors.
// Format: EXP-XXYYYY where XX is category and YYYY is specific error.
type ExpenseErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeNegativeAmount     ExpenseErrorCode = "EXP-010001"
	ErrCodeMissingDescription ExpenseErrorCode = "EXP-010002"
	ErrCodeMissingDate        ExpenseErrorCode = "EXP-010003"
	ErrCodeInvalidExpenseID   ExpenseErrorCode = "EXP-010004"

	// Lookup errors (02XXXX)
	ErrCodeExpenseNotFound  ExpenseErrorCode = "EXP-020001"
	ErrCodeCategoryNotFound ExpenseErrorCode = "EXP-020002"

	// Write errors (03XXXX)
	ErrCodeExpenseWriteFailed ExpenseErrorCode = "EXP-030001"
)

// ExpenseError represents an expense error with code and message.
type ExpenseError struct {
	Code    ExpenseErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ExpenseError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ExpenseError) Unwrap() error {
	return e.Err
}

// NewExpenseError creates a new ExpenseError with the given code and message.
func NewExpenseError(code ExpenseErrorCode, message string, err error) *ExpenseError {
	return &ExpenseError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
