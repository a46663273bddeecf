// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-tracker/analytics/internal/domain/entity"
)

// PlanRepository defines the interface for plan persistence operations.
type PlanRepository interface {
	// Create stores a plan instance together with its actions and rules.
	Create(ctx context.Context, plan *entity.PlanWithDetails) error

	// FindByID retrieves a plan with its actions and rules.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.PlanWithDetails, error)

	// FindByUserID retrieves all plans for a given user, newest first.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.PlanWithDetails, error)

	// UpdateAction persists the state of a single plan action.
	UpdateAction(ctx context.Context, action *entity.PlanAction) error
}
