// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/finance-tracker/analytics/internal/application/usecase/debt"
	debtengine "github.com/finance-tracker/analytics/internal/domain/engine/debt"
	"github.com/finance-tracker/analytics/internal/domain/entity"
)

// DebtRequest is a single debt in a simulation request.
type DebtRequest struct {
	ID         string  `json:"id" binding:"required"`
	Name       string  `json:"name,omitempty"`
	Balance    float64 `json:"balance"`
	APR        float64 `json:"apr"`
	MinPayment float64 `json:"min_payment"`
	DueDay     int     `json:"due_day,omitempty"`
	Fee        float64 `json:"fee,omitempty"`
	IncludeFee bool    `json:"include_fee,omitempty"`
}

// SimulateDebtsRequest represents the request body for a debt simulation.
type SimulateDebtsRequest struct {
	Debts              []DebtRequest `json:"debts" binding:"required,dive"`
	Strategy           string        `json:"strategy" binding:"required,oneof=avalanche snowball"`
	ExtraPayment       float64       `json:"extra_payment"`
	IncludeExplanation bool          `json:"include_explanation,omitempty"`
	IncludeSchedule    bool          `json:"include_schedule,omitempty"`
}

// CompareStrategiesRequest represents the request body for an avalanche/snowball comparison.
type CompareStrategiesRequest struct {
	Debts        []DebtRequest `json:"debts" binding:"required,dive"`
	ExtraPayment float64       `json:"extra_payment"`
}

// ToDebts converts debt requests into domain debts.
func ToDebts(requests []DebtRequest) []entity.Debt {
	debts := make([]entity.Debt, len(requests))
	for i, r := range requests {
		debts[i] = entity.Debt{
			ID:         r.ID,
			Name:       r.Name,
			Balance:    r.Balance,
			APR:        r.APR,
			MinPayment: r.MinPayment,
			DueDay:     r.DueDay,
			Fee:        r.Fee,
			IncludeFee: r.IncludeFee,
		}
	}
	return debts
}

// ToInput converts the request into use case input.
func (r *SimulateDebtsRequest) ToInput() debt.SimulateDebtsInput {
	return debt.SimulateDebtsInput{
		Debts:              ToDebts(r.Debts),
		Strategy:           debtengine.Strategy(r.Strategy),
		ExtraPayment:       r.ExtraPayment,
		IncludeExplanation: r.IncludeExplanation,
	}
}

// DebtMonthResponse is one debt's line in a schedule month.
type DebtMonthResponse struct {
	DebtID       string  `json:"debt_id"`
	StartBalance float64 `json:"start_balance"`
	Payment      float64 `json:"payment"`
	Interest     float64 `json:"interest"`
	Fee          float64 `json:"fee"`
	Principal    float64 `json:"principal"`
	Balance      float64 `json:"balance"`
}

// ScheduleMonthResponse is one month of a payoff schedule.
type ScheduleMonthResponse struct {
	Month     int                 `json:"month"`
	Payment   float64             `json:"payment"`
	Interest  float64             `json:"interest"`
	Fees      float64             `json:"fees"`
	Principal float64             `json:"principal"`
	Debts     []DebtMonthResponse `json:"debts"`
	Closed    []string            `json:"closed,omitempty"`
}

// PayoffResponse summarizes a simulated payoff.
type PayoffResponse struct {
	Strategy      string                  `json:"strategy"`
	ExtraPayment  float64                 `json:"extra_payment"`
	MonthlyBudget float64                 `json:"monthly_budget"`
	TotalInterest float64                 `json:"total_interest"`
	TotalFees     float64                 `json:"total_fees"`
	TotalPaid     float64                 `json:"total_paid"`
	DebtFreeMonth int                     `json:"debt_free_month"`
	Converged     bool                    `json:"converged"`
	PayoffOrder   []string                `json:"payoff_order"`
	Schedule      []ScheduleMonthResponse `json:"schedule,omitempty"`
}

// SensitivityResponse reports the effect of one more step of extra payment.
type SensitivityResponse struct {
	Step          float64 `json:"step"`
	NextExtra     float64 `json:"next_extra"`
	NextMonths    int     `json:"next_months"`
	MonthsSaved   int     `json:"months_saved"`
	InterestSaved float64 `json:"interest_saved"`
}

// SimulateDebtsResponse represents the response for a debt simulation.
type SimulateDebtsResponse struct {
	Plan                 PayoffResponse      `json:"plan"`
	Baseline             PayoffResponse      `json:"baseline"`
	InterestSaved        float64             `json:"interest_saved"`
	MonthsSaved          int                 `json:"months_saved"`
	Sensitivity          SensitivityResponse `json:"sensitivity"`
	NegativeAmortization []string            `json:"negative_amortization"`
	Explanation          string              `json:"explanation,omitempty"`
	ExplanationSource    string              `json:"explanation_source,omitempty"`
	Cached               bool                `json:"cached"`
}

// ToPayoffResponse converts a simulation result. The schedule is included on request.
func ToPayoffResponse(r debtengine.Result, includeSchedule bool) PayoffResponse {
	response := PayoffResponse{
		Strategy:      string(r.Strategy),
		ExtraPayment:  Money(r.ExtraPayment),
		MonthlyBudget: Money(r.MonthlyBudget),
		TotalInterest: Money(r.TotalInterest),
		TotalFees:     Money(r.TotalFees),
		TotalPaid:     Money(r.TotalPaid),
		DebtFreeMonth: r.DebtFreeMonth,
		Converged:     r.Converged,
		PayoffOrder:   append([]string{}, r.PayoffOrder...),
	}
	if !includeSchedule {
		return response
	}

	response.Schedule = make([]ScheduleMonthResponse, len(r.Schedule))
	for i, m := range r.Schedule {
		debts := make([]DebtMonthResponse, len(m.Debts))
		for j, d := range m.Debts {
			debts[j] = DebtMonthResponse{
				DebtID:       d.DebtID,
				StartBalance: Money(d.StartBalance),
				Payment:      Money(d.Payment),
				Interest:     Money(d.Interest),
				Fee:          Money(d.Fee),
				Principal:    Money(d.Principal),
				Balance:      Money(d.Balance),
			}
		}
		response.Schedule[i] = ScheduleMonthResponse{
			Month:     m.Index,
			Payment:   Money(m.Payment),
			Interest:  Money(m.Interest),
			Fees:      Money(m.Fees),
			Principal: Money(m.Principal),
			Debts:     debts,
			Closed:    m.Closed,
		}
	}
	return response
}

// ToSimulateDebtsResponse converts a SimulateDebtsOutput to a SimulateDebtsResponse DTO.
func ToSimulateDebtsResponse(output *debt.SimulateDebtsOutput, includeSchedule bool) SimulateDebtsResponse {
	s := output.Sensitivity
	return SimulateDebtsResponse{
		Plan:          ToPayoffResponse(output.Comparison.Optimized, includeSchedule),
		Baseline:      ToPayoffResponse(output.Comparison.Baseline, false),
		InterestSaved: Money(output.Comparison.InterestSaved),
		MonthsSaved:   output.Comparison.MonthsSaved,
		Sensitivity: SensitivityResponse{
			Step:          Money(s.Step),
			NextExtra:     Money(s.NextExtra),
			NextMonths:    s.NextMonths,
			MonthsSaved:   s.MonthsSaved,
			InterestSaved: Money(s.InterestSaved),
		},
		NegativeAmortization: append([]string{}, output.NegativeAmortization...),
		Explanation:          output.Explanation,
		ExplanationSource:    string(output.ExplanationSource),
		Cached:               output.Cached,
	}
}

// CompareStrategiesResponse represents the response for a strategy comparison.
type CompareStrategiesResponse struct {
	Avalanche          PayoffResponse `json:"avalanche"`
	Snowball           PayoffResponse `json:"snowball"`
	Recommended        string         `json:"recommended"`
	InterestDifference float64        `json:"interest_difference"`
	MonthsDifference   int            `json:"months_difference"`
	Cached             bool           `json:"cached"`
}

// ToCompareStrategiesResponse converts a CompareStrategiesOutput to a CompareStrategiesResponse DTO.
func ToCompareStrategiesResponse(output *debt.CompareStrategiesOutput) CompareStrategiesResponse {
	c := output.Comparison
	return CompareStrategiesResponse{
		Avalanche:          ToPayoffResponse(c.Avalanche, false),
		Snowball:           ToPayoffResponse(c.Snowball, false),
		Recommended:        string(c.Recommended),
		InterestDifference: Money(c.InterestDifference),
		MonthsDifference:   c.MonthsDifference,
		Cached:             output.Cached,
	}
}
