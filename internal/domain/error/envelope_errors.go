// Package error defines domain-specific errors for the Finance Tracker application.
package error

import "errors"

// Envelope projection domain errors.
var (
	// ErrInvalidEnvelopeTarget is returned when the target amount is zero or negative.
	ErrInvalidEnvelopeTarget = errors.New("envelope target must be positive")

	// ErrInvalidContributionFrequency is returned when a frequency is not daily, weekly or monthly.
	ErrInvalidContributionFrequency = errors.New("invalid contribution frequency")

	// ErrInvalidSurplusAmount is returned when the amount to allocate is negative.
	ErrInvalidSurplusAmount = errors.New("surplus amount must not be negative")

	// ErrMissingEnvelopeID is returned when an envelope has no id.
	ErrMissingEnvelopeID = errors.New("every envelope needs an id")

	// ErrDuplicateEnvelopeID is returned when two envelopes share an id.
	ErrDuplicateEnvelopeID = errors.New("envelope ids must be unique")
)

// EnvelopeErrorCode defines error codes for envelope projection errors.
// Format: ENV-XXYYYY where XX is category and YYYY is specific error.
type EnvelopeErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidEnvelopeTarget        EnvelopeErrorCode = "ENV-010001"
	ErrCodeInvalidContributionFrequency EnvelopeErrorCode = "ENV-010002"
	ErrCodeInvalidSurplusAmount         EnvelopeErrorCode = "ENV-010003"
	ErrCodeDuplicateEnvelopeID          EnvelopeErrorCode = "ENV-010004"
	ErrCodeMissingEnvelopeFields        EnvelopeErrorCode = "ENV-010005"
)

// EnvelopeError represents a envelope projection error with code and message.
type EnvelopeError struct {
	Code    EnvelopeErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *EnvelopeError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *EnvelopeError) Unwrap() error {
	return e.Err
}

// NewEnvelopeError creates a new EnvelopeError with the given code and message.
func NewEnvelopeError(code EnvelopeErrorCode, message string, err error) *EnvelopeError {
	return &EnvelopeError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
