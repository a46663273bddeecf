// Package plan contains plan-related use cases.
package plan

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-tracker/analytics/internal/application/adapter"
	"github.com/finance-tracker/analytics/internal/domain/entity"
)

// ListPlansInput represents the input for listing plans.
type ListPlansInput struct {
	UserID uuid.UUID
}

// ListPlansOutput represents the output of listing plans.
type ListPlansOutput struct {
	Plans []*entity.PlanWithDetails
}

// ListPlansUseCase lists the user's plans.
type ListPlansUseCase struct {
	planRepo adapter.PlanRepository
}

// NewListPlansUseCase creates a new ListPlansUseCase instance.
func NewListPlansUseCase(planRepo adapter.PlanRepository) *ListPlansUseCase {
	return &ListPlansUseCase{
		planRepo: planRepo,
	}
}

// Execute performs the listing.
func (uc *ListPlansUseCase) Execute(ctx context.Context, input ListPlansInput) (*ListPlansOutput, error) {
	plans, err := uc.planRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}

	return &ListPlansOutput{
		Plans: plans,
	}, nil
}
