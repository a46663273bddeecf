// Package plan contains plan-related use cases.
package plan

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-tracker/analytics/internal/application/adapter"
	"github.com/finance-tracker/analytics/internal/domain/entity"
	domainerror "github.com/finance-tracker/analytics/internal/domain/error"
)

// TogglePlanActionInput represents the input for marking a plan action done or not done.
type TogglePlanActionInput struct {
	UserID   uuid.UUID
	PlanID   uuid.UUID
	ActionID uuid.UUID
	Done     bool
}

// TogglePlanActionOutput represents the output of toggling a plan action.
type TogglePlanActionOutput struct {
	Action *entity.PlanAction
}

// TogglePlanActionUseCase updates the done flag of a single plan action.
type TogglePlanActionUseCase struct {
	planRepo adapter.PlanRepository
}

// NewTogglePlanActionUseCase creates a new TogglePlanActionUseCase instance.
func NewTogglePlanActionUseCase(planRepo adapter.PlanRepository) *TogglePlanActionUseCase {
	return &TogglePlanActionUseCase{
		planRepo: planRepo,
	}
}

// Execute performs the update.
func (uc *TogglePlanActionUseCase) Execute(ctx context.Context, input TogglePlanActionInput) (*TogglePlanActionOutput, error) {
	plan, err := uc.planRepo.FindByID(ctx, input.PlanID)
	if err != nil {
		if errors.Is(err, domainerror.ErrPlanNotFound) {
			return nil, domainerror.NewPlanError(
				domainerror.ErrCodePlanNotFound,
				"plan not found",
				domainerror.ErrPlanNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find plan: %w", err)
	}

	if plan.Plan.UserID != input.UserID {
		return nil, domainerror.NewPlanError(
			domainerror.ErrCodeUnauthorizedPlanAccess,
			"plan belongs to another user",
			domainerror.ErrUnauthorizedPlanAccess,
		)
	}

	var action *entity.PlanAction
	for _, a := range plan.Actions {
		if a.ID == input.ActionID {
			action = a
			break
		}
	}
	if action == nil {
		return nil, domainerror.NewPlanError(
			domainerror.ErrCodePlanActionNotFound,
			"action not found in plan",
			domainerror.ErrPlanActionNotFound,
		)
	}

	action.Done = input.Done
	if err := uc.planRepo.UpdateAction(ctx, action); err != nil {
		return nil, fmt.Errorf("failed to update plan action: %w", err)
	}

	return &TogglePlanActionOutput{
		Action: action,
	}, nil
}
