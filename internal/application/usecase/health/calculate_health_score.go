// Package health contains the financial health score use case.
package health

import (
	"context"

	healthengine "github.com/finance-tracker/analytics/internal/domain/engine/health"
	"github.com/finance-tracker/analytics/internal/domain/entity"
	domainerror "github.com/finance-tracker/analytics/internal/domain/error"
)

// CalculateHealthScoreInput represents the input for a health score.
type CalculateHealthScoreInput struct {
	Profile entity.FinancialProfile
}

// CalculateHealthScoreOutput represents the output of a health score.
type CalculateHealthScoreOutput struct {
	Score healthengine.Score
}

// CalculateHealthScoreUseCase scores a financial profile.
type CalculateHealthScoreUseCase struct{}

// NewCalculateHealthScoreUseCase creates a new CalculateHealthScoreUseCase instance.
func NewCalculateHealthScoreUseCase() *CalculateHealthScoreUseCase {
	return &CalculateHealthScoreUseCase{}
}

// Execute performs the scoring.
func (uc *CalculateHealthScoreUseCase) Execute(ctx context.Context, input CalculateHealthScoreInput) (*CalculateHealthScoreOutput, error) {
	p := input.Profile
	if p.MonthlyIncome < 0 || p.MandatoryExpenses < 0 || p.DebtPayments < 0 || p.LiquidAssets < 0 || p.TotalDebt < 0 {
		return nil, domainerror.NewHealthError(
			domainerror.ErrCodeNegativeProfileValue,
			"profile values must not be negative",
			domainerror.ErrNegativeProfileValue,
		)
	}

	return &CalculateHealthScoreOutput{
		Score: healthengine.Calculate(p),
	}, nil
}
