// Package obligation contains obligation-related use cases.
package obligation

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/finance-tracker/analytics/internal/application/adapter"
	"github.com/finance-tracker/analytics/internal/domain/entity"
	domainerror "github.com/finance-tracker/analytics/internal/domain/error"
)

// MaxNameLength is the maximum length of an obligation name.
const MaxNameLength = 100

// CreateObligationInput represents the input for obligation creation.
type CreateObligationInput struct {
	UserID   uuid.UUID
	Name     string
	Amount   float64
	DueDay   int
	Category entity.ObligationCategory // Optional, defaults to other
}

// CreateObligationOutput represents the output of obligation creation.
type CreateObligationOutput struct {
	Obligation *entity.Obligation
}

// CreateObligationUseCase handles obligation creation logic.
type CreateObligationUseCase struct {
	obligationRepo adapter.ObligationRepository
}

// NewCreateObligationUseCase creates a new CreateObligationUseCase instance.
func NewCreateObligationUseCase(obligationRepo adapter.ObligationRepository) *CreateObligationUseCase {
	return &CreateObligationUseCase{
		obligationRepo: obligationRepo,
	}
}

// Execute performs the obligation creation.
func (uc *CreateObligationUseCase) Execute(ctx context.Context, input CreateObligationInput) (*CreateObligationOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" || len(name) > MaxNameLength {
		return nil, domainerror.NewObligationError(
			domainerror.ErrCodeObligationNameRequired,
			fmt.Sprintf("name is required and must be at most %d characters", MaxNameLength),
			domainerror.ErrObligationNameRequired,
		)
	}

	if input.Amount <= 0 {
		return nil, domainerror.NewObligationError(
			domainerror.ErrCodeInvalidObligationAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidObligationAmount,
		)
	}

	if input.DueDay < 1 || input.DueDay > 31 {
		return nil, domainerror.NewObligationError(
			domainerror.ErrCodeInvalidDueDay,
			"due_day must be between 1 and 31",
			domainerror.ErrInvalidDueDay,
		)
	}

	category := input.Category
	if category == "" {
		category = entity.ObligationCategoryOther
	}
	if !category.IsValid() {
		return nil, domainerror.NewObligationError(
			domainerror.ErrCodeInvalidObligationCategory,
			"category is not recognized",
			domainerror.ErrInvalidObligationCategory,
		)
	}

	obligation := entity.NewObligation(input.UserID, name, input.Amount, input.DueDay, category)

	if err := uc.obligationRepo.Create(ctx, obligation); err != nil {
		return nil, fmt.Errorf("failed to create obligation: %w", err)
	}

	return &CreateObligationOutput{
		Obligation: obligation,
	}, nil
}
