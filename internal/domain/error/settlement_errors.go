// Package error defines domain-specific errors for the Finance Tracker application.
package error

import "errors"

// Settlement domain errors.
var (
	// ErrInvalidSplit is returned when a split variant is not recognized.
	ErrInvalidSplit = errors.New("invalid split")

	// ErrUnknownMember is returned when a transaction references a member outside the group.
	ErrUnknownMember = errors.New("member not found in group")

	// ErrExactSplitMismatch is returned when exact shares do not sum to the amount.
	ErrExactSplitMismatch = errors.New("exact split amounts must add up to the transaction amount")

	// ErrPercentageSplitMismatch is returned when percentages do not total 100.
	ErrPercentageSplitMismatch = errors.New("percentage split must add up to 100")

	// ErrInvalidSharedAmount is returned when a transaction amount is zero or negative.
	ErrInvalidSharedAmount = errors.New("shared transaction amount must be positive")

	// ErrNoMembers is returned when the group is empty.
	ErrNoMembers = errors.New("at least one member is required")
)

// SettlementErrorCode defines error codes for settlement errors.
// Format: STL-XXYYYY where XX is category and YYYY is specific error.
type SettlementErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidSplit            SettlementErrorCode = "STL-010001"
	ErrCodeUnknownMember           SettlementErrorCode = "STL-010002"
	ErrCodeExactSplitMismatch      SettlementErrorCode = "STL-010003"
	ErrCodePercentageSplitMismatch SettlementErrorCode = "STL-010004"
	ErrCodeInvalidSharedAmount     SettlementErrorCode = "STL-010005"
	ErrCodeNoMembers               SettlementErrorCode = "STL-010006"
	ErrCodeMissingSettlementFields SettlementErrorCode = "STL-010007"
)

// SettlementError represents a settlement error with code and message.
type SettlementError struct {
	Code    SettlementErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SettlementError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SettlementError) Unwrap() error {
	return e.Err
}

// NewSettlementError creates a new SettlementError with the given code and message.
func NewSettlementError(code SettlementErrorCode, message string, err error) *SettlementError {
	return &SettlementError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
