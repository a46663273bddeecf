// Package error defines domain-specific errors for the Finance Tracker application.
package error

import "errors"

// Plan domain errors.
var (
	// ErrPlanTemplateNotFound is returned when a template id does not resolve in the catalog.
	ErrPlanTemplateNotFound = errors.New("plan template not found")

	// ErrTemplateIDRequired is returned when no template id is supplied.
	ErrTemplateIDRequired = errors.New("template id is required")

	// ErrInvalidPlanStartDate is returned when the plan start date cannot be used.
	ErrInvalidPlanStartDate = errors.New("invalid plan start date")

	// ErrPlanNotFound is returned when a plan is not found in the system.
	ErrPlanNotFound = errors.New("plan not found")

	// ErrPlanActionNotFound is returned when an action does not belong to the plan.
	ErrPlanActionNotFound = errors.New("plan action not found")

	// ErrUnauthorizedPlanAccess is returned when the plan belongs to another user.
	ErrUnauthorizedPlanAccess = errors.New("unauthorized access to plan")
)

// PlanErrorCode defines error codes for plan errors.
// Format: PLN-XXYYYY where XX is category and YYYY is specific error.
type PlanErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingPlanFields    PlanErrorCode = "PLN-010001"
	ErrCodeInvalidPlanStartDate PlanErrorCode = "PLN-010002"

	// Lookup errors (02XXXX)
	ErrCodePlanTemplateNotFound   PlanErrorCode = "PLN-020001"
	ErrCodePlanNotFound           PlanErrorCode = "PLN-020002"
	ErrCodePlanActionNotFound     PlanErrorCode = "PLN-020003"
	ErrCodeUnauthorizedPlanAccess PlanErrorCode = "PLN-020004"
)

// PlanError represents a plan error with code and message.
type PlanError struct {
	Code    PlanErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *PlanError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *PlanError) Unwrap() error {
	return e.Err
}

// NewPlanError creates a new PlanError with the given code and message.
func NewPlanError(code PlanErrorCode, message string, err error) *PlanError {
	return &PlanError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
