// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
)

// DebtPlanSummary is the data an explanation is written from.
type DebtPlanSummary struct {
	Strategy             string
	ExtraPayment         float64
	DebtCount            int
	DebtFreeMonth        int
	Converged            bool
	TotalInterest        float64
	InterestSaved        float64
	MonthsSaved          int
	PayoffOrder          []string
	NegativeAmortization []string
}

// ExplanationService produces a human-readable explanation of a debt plan.
type ExplanationService interface {
	// ExplainDebtPlan returns a short narrative for the summary.
	ExplainDebtPlan(ctx context.Context, summary *DebtPlanSummary) (string, error)

	// IsAvailable checks if the AI service is available and properly configured.
	IsAvailable() bool
}
