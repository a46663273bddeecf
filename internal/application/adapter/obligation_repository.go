// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-tracker/analytics/internal/domain/entity"
)

// ObligationRepository defines the interface for obligation persistence operations.
type ObligationRepository interface {
	// Create creates a new obligation in the database.
	Create(ctx context.Context, obligation *entity.Obligation) error

	// FindByID retrieves an obligation by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Obligation, error)

	// FindByUserID retrieves all obligations for a given user ordered by due day.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Obligation, error)

	// FindUnpaidByUserID retrieves the unpaid obligations for a given user.
	FindUnpaidByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Obligation, error)

	// Update updates an existing obligation in the database.
	Update(ctx context.Context, obligation *entity.Obligation) error
}
