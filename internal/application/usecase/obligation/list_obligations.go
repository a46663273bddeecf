// Package obligation contains obligation-related use cases.
package obligation

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-tracker/analytics/internal/application/adapter"
	"github.com/finance-tracker/analytics/internal/domain/entity"
)

// ListObligationsInput represents the input for listing obligations.
type ListObligationsInput struct {
	UserID     uuid.UUID
	UnpaidOnly bool
}

// ListObligationsOutput represents the output of listing obligations.
type ListObligationsOutput struct {
	Obligations []*entity.Obligation
	TotalAmount float64
	UnpaidTotal float64
}

// ListObligationsUseCase handles listing obligations logic.
type ListObligationsUseCase struct {
	obligationRepo adapter.ObligationRepository
}

// NewListObligationsUseCase creates a new ListObligationsUseCase instance.
func NewListObligationsUseCase(obligationRepo adapter.ObligationRepository) *ListObligationsUseCase {
	return &ListObligationsUseCase{
		obligationRepo: obligationRepo,
	}
}

// Execute performs the obligation listing.
func (uc *ListObligationsUseCase) Execute(ctx context.Context, input ListObligationsInput) (*ListObligationsOutput, error) {
	var (
		obligations []*entity.Obligation
		err         error
	)
	if input.UnpaidOnly {
		obligations, err = uc.obligationRepo.FindUnpaidByUserID(ctx, input.UserID)
	} else {
		obligations, err = uc.obligationRepo.FindByUserID(ctx, input.UserID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list obligations: %w", err)
	}

	output := &ListObligationsOutput{Obligations: obligations}
	for _, o := range obligations {
		output.TotalAmount += o.Amount
		if !o.Paid {
			output.UnpaidTotal += o.Amount
		}
	}
	return output, nil
}
