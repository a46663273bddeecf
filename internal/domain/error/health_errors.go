// Package error defines domain-specific errors for the Finance Tracker application.
package error

import "errors"

// Health score domain errors.
var (
	// ErrNegativeProfileValue is returned when any profile amount is negative.
	ErrNegativeProfileValue = errors.New("profile values must not be negative")
)

// HealthErrorCode defines error codes for health score errors.
// Format: HLT-XXYYYY where XX is category and YYYY is specific error.
type HealthErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeNegativeProfileValue HealthErrorCode = "HLT-010001"
	ErrCodeMissingProfileFields HealthErrorCode = "HLT-010002"
)

// HealthError represents a health score error with code and message.
type HealthError struct {
	Code    HealthErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *HealthError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *HealthError) Unwrap() error {
	return e.Err
}

// NewHealthError creates a new HealthError with the given code and message.
func NewHealthError(code HealthErrorCode, message string, err error) *HealthError {
	return &HealthError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
