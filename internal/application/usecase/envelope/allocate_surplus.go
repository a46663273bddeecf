// Package envelope contains savings envelope use cases.
package envelope

import (
	"context"

	envelopeengine "github.com/finance-tracker/analytics/internal/domain/engine/envelope"
	"github.com/finance-tracker/analytics/internal/domain/entity"
	domainerror "github.com/finance-tracker/analytics/internal/domain/error"
)

// AllocateSurplusInput represents the input for a surplus allocation.
type AllocateSurplusInput struct {
	Envelopes []entity.Envelope
	Amount    float64
}

// AllocateSurplusOutput represents the output of a surplus allocation.
type AllocateSurplusOutput struct {
	Result envelopeengine.AllocationResult
}

// AllocateSurplusUseCase spreads a lump sum across envelopes by priority.
type AllocateSurplusUseCase struct{}

// NewAllocateSurplusUseCase creates a new AllocateSurplusUseCase instance.
func NewAllocateSurplusUseCase() *AllocateSurplusUseCase {
	return &AllocateSurplusUseCase{}
}

// Execute performs the allocation.
func (uc *AllocateSurplusUseCase) Execute(ctx context.Context, input AllocateSurplusInput) (*AllocateSurplusOutput, error) {
	if input.Amount < 0 {
		return nil, domainerror.NewEnvelopeError(
			domainerror.ErrCodeInvalidSurplusAmount,
			"amount must not be negative",
			domainerror.ErrInvalidSurplusAmount,
		)
	}
	if err := validateEnvelopes(input.Envelopes); err != nil {
		return nil, err
	}

	return &AllocateSurplusOutput{
		Result: envelopeengine.AllocateSurplus(input.Envelopes, input.Amount),
	}, nil
}
