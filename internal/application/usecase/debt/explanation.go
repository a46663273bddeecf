// Package debt contains debt payoff use cases.
package debt

import (
	"fmt"
	"strings"

	"github.com/finance-tracker/analytics/internal/application/adapter"
)

// ExplanationSource tells where an explanation came from.
type ExplanationSource string

const (
	ExplanationSourceAI       ExplanationSource = "ai"
	ExplanationSourceFallback ExplanationSource = "fallback"
)

// FallbackExplanation writes a deterministic explanation when the AI service
// is not configured or fails.
func FallbackExplanation(s *adapter.DebtPlanSummary) string {
	var sb strings.Builder

	strategy := "avalanche (highest interest rate first)"
	if s.Strategy == "snowball" {
		strategy = "snowball (smallest balance first)"
	}
	fmt.Fprintf(&sb, "Using the %s strategy", strategy)
	if s.ExtraPayment > 0 {
		fmt.Fprintf(&sb, " with %.2f extra per month", s.ExtraPayment)
	}

	if !s.Converged {
		sb.WriteString(", the payments do not clear your debts within 30 years. Increase the monthly payment or renegotiate the terms.")
	} else {
		fmt.Fprintf(&sb, ", you will be debt-free in %d months and pay %.2f in interest.", s.DebtFreeMonth, s.TotalInterest)
		if s.InterestSaved > 0 {
			fmt.Fprintf(&sb, " Compared with paying only the minimums you save %.2f in interest", s.InterestSaved)
			if s.MonthsSaved > 0 {
				fmt.Fprintf(&sb, " and finish %d months sooner", s.MonthsSaved)
			}
			sb.WriteString(".")
		}
	}

	if len(s.PayoffOrder) > 0 {
		fmt.Fprintf(&sb, " Payoff order: %s.", strings.Join(s.PayoffOrder, ", "))
	}
	if len(s.NegativeAmortization) > 0 {
		fmt.Fprintf(&sb, " Warning: the minimum payment on %s does not cover its monthly interest.", strings.Join(s.NegativeAmortization, ", "))
	}

	return sb.String()
}
