// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/finance-tracker/analytics/internal/application/usecase/risk"
	"github.com/finance-tracker/analytics/internal/domain/entity"
)

// AssessRiskRequest represents the request body for a risk assessment.
type AssessRiskRequest struct {
	SalaryDay int      `json:"salary_day" binding:"required"`
	Balance   *float64 `json:"balance,omitempty"`
	AsOf      *string  `json:"as_of,omitempty"`
}

// AtRiskObligationResponse represents an obligation inside the risk window.
type AtRiskObligationResponse struct {
	ObligationID string  `json:"obligation_id"`
	Name         string  `json:"name"`
	Amount       float64 `json:"amount"`
	DueDay       int     `json:"due_day"`
	DaysUntilDue int     `json:"days_until_due"`
	Overdue      bool    `json:"overdue"`
}

// RiskResponse represents the response for a risk assessment.
type RiskResponse struct {
	Level                 string                     `json:"level"`
	DueWithinWindow       float64                    `json:"due_within_window"`
	AmountDueBeforeSalary float64                    `json:"amount_due_before_salary"`
	DaysUntilSalary       int                        `json:"days_until_salary"`
	AtRisk                []AtRiskObligationResponse `json:"at_risk"`
	Overdue               []AtRiskObligationResponse `json:"overdue"`
	AsOf                  string                     `json:"as_of"`
}

// ToRiskResponse converts an AssessRiskOutput to a RiskResponse DTO.
func ToRiskResponse(output *risk.AssessRiskOutput) RiskResponse {
	return toRiskResponse(output.Result, output.AsOf)
}

func toRiskResponse(result entity.RiskResult, asOf time.Time) RiskResponse {
	return RiskResponse{
		Level:                 string(result.Level),
		DueWithinWindow:       Money(result.DueWithinWindow),
		AmountDueBeforeSalary: Money(result.AmountDueBeforeSalary),
		DaysUntilSalary:       result.DaysUntilSalary,
		AtRisk:                toAtRiskResponses(result.AtRisk),
		Overdue:               toAtRiskResponses(result.Overdue),
		AsOf:                  FormatDate(asOf),
	}
}

func toAtRiskResponses(items []entity.AtRiskObligation) []AtRiskObligationResponse {
	out := make([]AtRiskObligationResponse, len(items))
	for i, item := range items {
		out[i] = AtRiskObligationResponse{
			ObligationID: item.Obligation.ID.String(),
			Name:         item.Obligation.Name,
			Amount:       Money(item.Obligation.Amount),
			DueDay:       item.Obligation.DueDay,
			DaysUntilDue: item.DaysUntilDue,
			Overdue:      item.Overdue,
		}
	}
	return out
}
