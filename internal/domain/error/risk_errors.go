// Package error defines domain-specific errors for the Finance Tracker application.
package error

import "errors"

// Risk classification domain errors.
var (
	// ErrInvalidSalaryDay is returned when the salary day is outside the month.
	ErrInvalidSalaryDay = errors.New("salary day must be between 1 and 31")

	// ErrInvalidAsOfDate is returned when the reference date cannot be parsed.
	ErrInvalidAsOfDate = errors.New("invalid as_of date")
)

// RiskErrorCode defines error codes for risk classification errors.
// Format: RSK-XXYYYY where XX is category and YYYY is specific error.
type RiskErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidSalaryDay  RiskErrorCode = "RSK-010001"
	ErrCodeInvalidAsOfDate   RiskErrorCode = "RSK-010002"
	ErrCodeMissingRiskFields RiskErrorCode = "RSK-010003"
)

// RiskError represents a risk classification error with code and message.
type RiskError struct {
	Code    RiskErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *RiskError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *RiskError) Unwrap() error {
	return e.Err
}

// NewRiskError creates a new RiskError with the given code and message.
func NewRiskError(code RiskErrorCode, message string, err error) *RiskError {
	return &RiskError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
