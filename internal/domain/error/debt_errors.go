// Package error defines domain-specific errors for the Finance Tracker application.
package error

import "errors"

// Debt optimizer domain errors.
var (
	// ErrInvalidStrategy is returned when the payoff strategy is not recognized.
	ErrInvalidStrategy = errors.New("strategy must be avalanche or snowball")

	// ErrInvalidDebtBalance is returned when a balance is negative.
	ErrInvalidDebtBalance = errors.New("debt balance must not be negative")

	// ErrInvalidMinPayment is returned when a minimum payment is negative.
	ErrInvalidMinPayment = errors.New("minimum payment must not be negative")

	// ErrInvalidExtraPayment is returned when the extra monthly payment is negative.
	ErrInvalidExtraPayment = errors.New("extra payment must not be negative")

	// ErrDuplicateDebtID is returned when two debts share an id.
	ErrDuplicateDebtID = errors.New("debt ids must be unique")

	// ErrMissingDebtID is returned when a debt has no id.
	ErrMissingDebtID = errors.New("every debt needs an id")

	// ErrNoDebts is returned when the request carries no debts.
	ErrNoDebts = errors.New("at least one debt is required")
)

// DebtErrorCode defines error codes for debt optimizer errors.
// Format: DBT-XXYYYY where XX is category and YYYY is specific error.
type DebtErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidStrategy     DebtErrorCode = "DBT-010001"
	ErrCodeInvalidDebtBalance  DebtErrorCode = "DBT-010002"
	ErrCodeInvalidMinPayment   DebtErrorCode = "DBT-010003"
	ErrCodeInvalidExtraPayment DebtErrorCode = "DBT-010004"
	ErrCodeDuplicateDebtID     DebtErrorCode = "DBT-010005"
	ErrCodeNoDebts             DebtErrorCode = "DBT-010006"
	ErrCodeMissingDebtFields   DebtErrorCode = "DBT-010007"
)

// DebtError represents a debt optimizer error with code and message.
type DebtError struct {
	Code    DebtErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *DebtError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *DebtError) Unwrap() error {
	return e.Err
}

// NewDebtError creates a new DebtError with the given code and message.
func NewDebtError(code DebtErrorCode, message string, err error) *DebtError {
	return &DebtError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
