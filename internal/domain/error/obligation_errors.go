// Package error defines domain-specific errors for the Finance Tracker application.
package error

import "errors"

// Obligation domain errors.
var (
	// ErrObligationNotFound is returned when an obligation is not found in the system.
	ErrObligationNotFound = errors.New("obligation not found")

	// ErrObligationNameRequired is returned when the name is blank.
	ErrObligationNameRequired = errors.New("obligation name is required")

	// ErrInvalidObligationAmount is returned when the amount is zero or negative.
	ErrInvalidObligationAmount = errors.New("invalid obligation amount")

	// ErrInvalidDueDay is returned when the due day is outside the month.
	ErrInvalidDueDay = errors.New("due day must be between 1 and 31")

	// ErrInvalidObligationCategory is returned when the category is not recognized.
	ErrInvalidObligationCategory = errors.New("invalid obligation category")

	// ErrUnauthorizedObligationAccess is returned when the obligation belongs to another user.
	ErrUnauthorizedObligationAccess = errors.New("unauthorized access to obligation")
)

// ObligationErrorCode defines error codes for obligation errors.
// Format: OBL-XXYYYY where XX is category and YYYY is specific error.
type ObligationErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeObligationNameRequired    ObligationErrorCode = "OBL-010001"
	ErrCodeInvalidObligationAmount   ObligationErrorCode = "OBL-010002"
	ErrCodeInvalidDueDay             ObligationErrorCode = "OBL-010003"
	ErrCodeInvalidObligationCategory ObligationErrorCode = "OBL-010004"
	ErrCodeMissingObligationFields   ObligationErrorCode = "OBL-010005"

	// Lookup errors (02XXXX)
	ErrCodeObligationNotFound           ObligationErrorCode = "OBL-020001"
	ErrCodeUnauthorizedObligationAccess ObligationErrorCode = "OBL-020002"
)

// ObligationError represents a obligation error with code and message.
type ObligationError struct {
	Code    ObligationErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ObligationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ObligationError) Unwrap() error {
	return e.Err
}

// NewObligationError creates a new ObligationError with the given code and message.
func NewObligationError(code ObligationErrorCode, message string, err error) *ObligationError {
	return &ObligationError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
