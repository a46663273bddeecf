// Package obligation contains obligation-related use cases.
package obligation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/analytics/internal/application/adapter"
	"github.com/finance-tracker/analytics/internal/domain/entity"
	domainerror "github.com/finance-tracker/analytics/internal/domain/error"
)

// MarkObligationPaidInput represents the input for toggling an obligation's paid flag.
type MarkObligationPaidInput struct {
	UserID       uuid.UUID
	ObligationID uuid.UUID
	Paid         bool
}

// MarkObligationPaidOutput represents the output of toggling an obligation's paid flag.
type MarkObligationPaidOutput struct {
	Obligation *entity.Obligation
}

// MarkObligationPaidUseCase handles marking an obligation as paid or unpaid.
type MarkObligationPaidUseCase struct {
	obligationRepo adapter.ObligationRepository
}

// NewMarkObligationPaidUseCase creates a new MarkObligationPaidUseCase instance.
func NewMarkObligationPaidUseCase(obligationRepo adapter.ObligationRepository) *MarkObligationPaidUseCase {
	return &MarkObligationPaidUseCase{
		obligationRepo: obligationRepo,
	}
}

// Execute performs the update.
func (uc *MarkObligationPaidUseCase) Execute(ctx context.Context, input MarkObligationPaidInput) (*MarkObligationPaidOutput, error) {
	obligation, err := uc.obligationRepo.FindByID(ctx, input.ObligationID)
	if err != nil {
		if errors.Is(err, domainerror.ErrObligationNotFound) {
			return nil, domainerror.NewObligationError(
				domainerror.ErrCodeObligationNotFound,
				"obligation not found",
				domainerror.ErrObligationNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find obligation: %w", err)
	}

	if obligation.UserID != input.UserID {
		return nil, domainerror.NewObligationError(
			domainerror.ErrCodeUnauthorizedObligationAccess,
			"obligation belongs to another user",
			domainerror.ErrUnauthorizedObligationAccess,
		)
	}

	obligation.Paid = input.Paid
	obligation.UpdatedAt = time.Now().UTC()

	if err := uc.obligationRepo.Update(ctx, obligation); err != nil {
		return nil, fmt.Errorf("failed to update obligation: %w", err)
	}

	return &MarkObligationPaidOutput{
		Obligation: obligation,
	}, nil
}
