// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/finance-tracker/analytics/internal/application/usecase/health"
	"github.com/finance-tracker/analytics/internal/domain/entity"
)

// HealthScoreRequest represents the request body for a financial health score.
type HealthScoreRequest struct {
	MonthlyIncome     float64 `json:"monthly_income"`
	MandatoryExpenses float64 `json:"mandatory_expenses"`
	DebtPayments      float64 `json:"debt_payments"`
	LiquidAssets      float64 `json:"liquid_assets"`
	TotalDebt         float64 `json:"total_debt"`
}

// ToInput converts the request into use case input.
func (r *HealthScoreRequest) ToInput() health.CalculateHealthScoreInput {
	return health.CalculateHealthScoreInput{
		Profile: entity.FinancialProfile{
			MonthlyIncome:     r.MonthlyIncome,
			MandatoryExpenses: r.MandatoryExpenses,
			DebtPayments:      r.DebtPayments,
			LiquidAssets:      r.LiquidAssets,
			TotalDebt:         r.TotalDebt,
		},
	}
}

// HealthFactorResponse is one scored factor, weakest first.
type HealthFactorResponse struct {
	Key            string  `json:"key"`
	Label          string  `json:"label"`
	Value          float64 `json:"value"`
	Score          float64 `json:"score"`
	Weight         float64 `json:"weight"`
	Contribution   float64 `json:"contribution"`
	Recommendation string  `json:"recommendation,omitempty"`
}

// HealthScoreResponse represents the response for a financial health score.
type HealthScoreResponse struct {
	Score   float64                `json:"score"`
	Rating  string                 `json:"rating"`
	Factors []HealthFactorResponse `json:"factors"`
}

// ToHealthScoreResponse converts a CalculateHealthScoreOutput to a HealthScoreResponse DTO.
func ToHealthScoreResponse(output *health.CalculateHealthScoreOutput) HealthScoreResponse {
	factors := make([]HealthFactorResponse, len(output.Score.Factors))
	for i, f := range output.Score.Factors {
		factors[i] = HealthFactorResponse{
			Key:            string(f.Key),
			Label:          f.Label,
			Value:          Ratio(f.Value),
			Score:          Money(f.Score),
			Weight:         f.Weight,
			Contribution:   Money(f.Contribution),
			Recommendation: f.Recommendation,
		}
	}
	return HealthScoreResponse{
		Score:   Money(output.Score.Total),
		Rating:  string(output.Score.Rating),
		Factors: factors,
	}
}
