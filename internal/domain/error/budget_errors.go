// Package error defines domain-specific errors for the Finance Tracker application.
package error

import "errors"

// Budget forecast domain errors.
var (
	// ErrInvalidBudgetLimit is returned when the limit is zero or negative.
	ErrInvalidBudgetLimit = errors.New("budget limit must be positive")

	// ErrInvalidBudgetPeriod is returned when the period is inverted.
	ErrInvalidBudgetPeriod = errors.New("budget period end must not precede its start")

	// ErrInvalidForecastMethod is returned when the method is neither linear nor smoothed.
	ErrInvalidForecastMethod = errors.New("invalid forecast method")

	// ErrInvalidConfidenceLevel is returned when an unsupported confidence level is requested.
	ErrInvalidConfidenceLevel = errors.New("confidence level must be 0.80 or 0.95")

	// ErrInvalidSpendAmount is returned when a spend carries a negative amount.
	ErrInvalidSpendAmount = errors.New("spend amount must not be negative")

	// ErrInvalidSmoothingAlpha is returned when the smoothing factor falls outside (0, 1].
	ErrInvalidSmoothingAlpha = errors.New("smoothing alpha must be in (0, 1]")
)

// BudgetErrorCode defines error codes for budget forecast errors.
// Format: BDG-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidBudgetLimit     BudgetErrorCode = "BDG-010001"
	ErrCodeInvalidBudgetPeriod    BudgetErrorCode = "BDG-010002"
	ErrCodeInvalidForecastMethod  BudgetErrorCode = "BDG-010003"
	ErrCodeInvalidConfidenceLevel BudgetErrorCode = "BDG-010004"
	ErrCodeInvalidSpendAmount     BudgetErrorCode = "BDG-010005"
	ErrCodeMissingBudgetFields    BudgetErrorCode = "BDG-010006"
	ErrCodeInvalidSmoothingAlpha  BudgetErrorCode = "BDG-010007"
)

// BudgetError represents a budget forecast error with code and message.
type BudgetError struct {
	Code    BudgetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BudgetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BudgetError) Unwrap() error {
	return e.Err
}

// NewBudgetError creates a new BudgetError with the given code and message.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return &BudgetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
