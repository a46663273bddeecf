// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"fmt"

	"github.com/finance-tracker/analytics/internal/application/usecase/budget"
	"github.com/finance-tracker/analytics/internal/domain/engine/forecast"
	"github.com/finance-tracker/analytics/internal/domain/entity"
)

// BudgetThresholdsRequest holds optional utilization thresholds.
type BudgetThresholdsRequest struct {
	Warning  float64 `json:"warning"`
	Danger   float64 `json:"danger"`
	Exceeded float64 `json:"exceeded"`
}

// BudgetSpendRequest is a single dated spend.
type BudgetSpendRequest struct {
	Amount  float64 `json:"amount"`
	SpentAt string  `json:"spent_at" binding:"required"`
}

// ForecastBudgetRequest represents the request body for a budget forecast.
type ForecastBudgetRequest struct {
	Name        string                   `json:"name,omitempty"`
	Limit       float64                  `json:"limit" binding:"required"`
	PeriodStart string                   `json:"period_start" binding:"required"`
	PeriodEnd   string                   `json:"period_end" binding:"required"`
	Thresholds  *BudgetThresholdsRequest `json:"thresholds,omitempty"`
	Spends      []BudgetSpendRequest     `json:"spends"`
	History     [][]float64              `json:"history,omitempty"`
	Method      string                   `json:"method,omitempty" binding:"omitempty,oneof=linear smoothed"`
	Alpha       *float64                 `json:"alpha,omitempty"`
	Confidence  *float64                 `json:"confidence,omitempty"`
	AsOf        *string                  `json:"as_of,omitempty"`
}

// ToInput converts the request into use case input.
func (r *ForecastBudgetRequest) ToInput() (budget.ForecastBudgetInput, error) {
	start, err := ParseDate(r.PeriodStart)
	if err != nil {
		return budget.ForecastBudgetInput{}, fmt.Errorf("period_start: %w", err)
	}
	end, err := ParseDate(r.PeriodEnd)
	if err != nil {
		return budget.ForecastBudgetInput{}, fmt.Errorf("period_end: %w", err)
	}
	asOf, err := ParseOptionalDate(r.AsOf)
	if err != nil {
		return budget.ForecastBudgetInput{}, fmt.Errorf("as_of: %w", err)
	}

	spends := make([]entity.BudgetSpend, len(r.Spends))
	for i, s := range r.Spends {
		spentAt, err := ParseDate(s.SpentAt)
		if err != nil {
			return budget.ForecastBudgetInput{}, fmt.Errorf("spends[%d].spent_at: %w", i, err)
		}
		spends[i] = entity.BudgetSpend{Amount: s.Amount, SpentAt: spentAt}
	}

	b := entity.Budget{
		Name:        r.Name,
		Limit:       r.Limit,
		PeriodStart: start,
		PeriodEnd:   end,
		Spends:      spends,
	}
	if r.Thresholds != nil {
		b.Thresholds = entity.BudgetThresholds{
			Warning:  r.Thresholds.Warning,
			Danger:   r.Thresholds.Danger,
			Exceeded: r.Thresholds.Exceeded,
		}
	}

	return budget.ForecastBudgetInput{
		Budget:     b,
		History:    r.History,
		Method:     forecast.Method(r.Method),
		Alpha:      r.Alpha,
		Confidence: r.Confidence,
		AsOf:       asOf,
	}, nil
}

// IntervalResponse is a forecast confidence interval.
type IntervalResponse struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
	Level float64 `json:"level"`
}

// ForecastBudgetResponse represents the response for a budget forecast.
type ForecastBudgetResponse struct {
	Method             string           `json:"method"`
	TotalDays          int              `json:"total_days"`
	CurrentDay         int              `json:"current_day"`
	CurrentSpend       float64          `json:"current_spend"`
	Remaining          float64          `json:"remaining"`
	Utilization        float64          `json:"utilization"`
	Threshold          string           `json:"threshold"`
	BurnRate           float64          `json:"burn_rate"`
	Forecast           float64          `json:"forecast"`
	ForecastSigma      float64          `json:"forecast_sigma"`
	Interval           IntervalResponse `json:"interval"`
	OverrunProbability float64          `json:"overrun_probability"`
	WillOverrun        bool             `json:"will_overrun"`
	OverrunDay         int              `json:"overrun_day,omitempty"`
	TodaySpend         float64          `json:"today_spend"`
	AnomalyScore       float64          `json:"anomaly_score"`
	Anomalous          bool             `json:"anomalous"`
	RecommendedLimit   float64          `json:"recommended_limit"`
	Tier               string           `json:"tier"`
	AsOf               string           `json:"as_of"`
}

// ToForecastBudgetResponse converts a ForecastBudgetOutput to a ForecastBudgetResponse DTO.
func ToForecastBudgetResponse(output *budget.ForecastBudgetOutput) ForecastBudgetResponse {
	r := output.Result
	return ForecastBudgetResponse{
		Method:        string(output.Method),
		TotalDays:     output.TotalDays,
		CurrentDay:    output.CurrentDay,
		CurrentSpend:  Money(r.CurrentSpend),
		Remaining:     Money(r.Remaining),
		Utilization:   Ratio(r.Utilization),
		Threshold:     string(output.Threshold),
		BurnRate:      Money(r.BurnRate),
		Forecast:      Money(r.Forecast),
		ForecastSigma: Money(r.ForecastSigma),
		Interval: IntervalResponse{
			Lower: Money(r.Interval.Lower),
			Upper: Money(r.Interval.Upper),
			Level: float64(r.Interval.Level),
		},
		OverrunProbability: Ratio(r.OverrunProbability),
		WillOverrun:        r.WillOverrun,
		OverrunDay:         r.OverrunDay,
		TodaySpend:         Money(r.TodaySpend),
		AnomalyScore:       Ratio(r.AnomalyScore),
		Anomalous:          r.Anomalous,
		RecommendedLimit:   Money(r.RecommendedLimit),
		Tier:               string(r.Tier),
		AsOf:               FormatDate(output.AsOf),
	}
}
