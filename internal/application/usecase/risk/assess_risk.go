// Package risk contains the cash-flow risk use case.
package risk

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/analytics/internal/application/adapter"
	riskengine "github.com/finance-tracker/analytics/internal/domain/engine/risk"
	"github.com/finance-tracker/analytics/internal/domain/entity"
	domainerror "github.com/finance-tracker/analytics/internal/domain/error"
)

// AssessRiskInput represents the input for a risk assessment.
type AssessRiskInput struct {
	UserID    uuid.UUID
	SalaryDay int
	Balance   *float64   // Optional, tightens the level when present
	AsOf      *time.Time // Optional, defaults to now
}

// AssessRiskOutput represents the output of a risk assessment.
type AssessRiskOutput struct {
	Result entity.RiskResult
	AsOf   time.Time
}

// AssessRiskUseCase classifies the user's unpaid obligations against the next salary.
type AssessRiskUseCase struct {
	obligationRepo adapter.ObligationRepository
	now            func() time.Time
}

// NewAssessRiskUseCase creates a new AssessRiskUseCase instance.
func NewAssessRiskUseCase(obligationRepo adapter.ObligationRepository, now func() time.Time) *AssessRiskUseCase {
	if now == nil {
		now = time.Now
	}
	return &AssessRiskUseCase{
		obligationRepo: obligationRepo,
		now:            now,
	}
}

// Execute performs the risk assessment.
func (uc *AssessRiskUseCase) Execute(ctx context.Context, input AssessRiskInput) (*AssessRiskOutput, error) {
	if input.SalaryDay < 1 || input.SalaryDay > 31 {
		return nil, domainerror.NewRiskError(
			domainerror.ErrCodeInvalidSalaryDay,
			"salary_day must be between 1 and 31",
			domainerror.ErrInvalidSalaryDay,
		)
	}

	asOf := uc.now().UTC()
	if input.AsOf != nil {
		asOf = *input.AsOf
	}

	unpaid, err := uc.obligationRepo.FindUnpaidByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load obligations: %w", err)
	}

	result := riskengine.Classify(riskengine.Input{
		Obligations: Values(unpaid),
		SalaryDay:   input.SalaryDay,
		Balance:     input.Balance,
		AsOf:        asOf,
	})

	return &AssessRiskOutput{
		Result: result,
		AsOf:   asOf,
	}, nil
}

// Values copies repository pointers into the value slice the engine consumes.
func Values(obligations []*entity.Obligation) []entity.Obligation {
	out := make([]entity.Obligation, 0, len(obligations))
	for _, o := range obligations {
		if o != nil {
			out = append(out, *o)
		}
	}
	return out
}
