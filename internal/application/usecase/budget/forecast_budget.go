// Package budget contains the budget forecast use case.
package budget

import (
	"context"
	"time"

	"github.com/finance-tracker/analytics/internal/domain/engine/forecast"
	"github.com/finance-tracker/analytics/internal/domain/engine/stats"
	"github.com/finance-tracker/analytics/internal/domain/entity"
	domainerror "github.com/finance-tracker/analytics/internal/domain/error"
)

// ForecastBudgetInput represents the input for a budget forecast.
type ForecastBudgetInput struct {
	Budget     entity.Budget
	History    [][]float64     // daily spend of prior periods
	Method     forecast.Method // Optional, defaults to linear
	Alpha      *float64        // Optional, smoothing factor for the smoothed method
	Confidence *float64        // Optional, 0.80 or 0.95
	AsOf       *time.Time      // Optional, defaults to now
}

// ForecastBudgetOutput represents the output of a budget forecast.
type ForecastBudgetOutput struct {
	Result     forecast.Result
	Threshold  forecast.ThresholdStatus
	TotalDays  int
	CurrentDay int
	Method     forecast.Method
	AsOf       time.Time
}

// ForecastBudgetUseCase projects end-of-period spend for a budget.
type ForecastBudgetUseCase struct {
	defaultAlpha      float64
	defaultConfidence forecast.ConfidenceLevel
	now               func() time.Time
}

// NewForecastBudgetUseCase creates a new ForecastBudgetUseCase instance.
func NewForecastBudgetUseCase(defaultAlpha, defaultConfidence float64, now func() time.Time) *ForecastBudgetUseCase {
	if defaultAlpha <= 0 || defaultAlpha > 1 {
		defaultAlpha = stats.DefaultAlpha
	}
	confidence := forecast.ConfidenceLevel(defaultConfidence)
	if !isSupportedConfidence(confidence) {
		confidence = forecast.Confidence80
	}
	if now == nil {
		now = time.Now
	}
	return &ForecastBudgetUseCase{
		defaultAlpha:      defaultAlpha,
		defaultConfidence: confidence,
		now:               now,
	}
}

// Execute performs the budget forecast.
func (uc *ForecastBudgetUseCase) Execute(ctx context.Context, input ForecastBudgetInput) (*ForecastBudgetOutput, error) {
	b := input.Budget

	if b.Limit <= 0 {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetLimit,
			"limit must be greater than zero",
			domainerror.ErrInvalidBudgetLimit,
		)
	}

	if b.PeriodEnd.Before(b.PeriodStart) {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetPeriod,
			"period_end must not be before period_start",
			domainerror.ErrInvalidBudgetPeriod,
		)
	}

	method := input.Method
	if method == "" {
		method = forecast.MethodLinear
	}
	if method != forecast.MethodLinear && method != forecast.MethodSmoothed {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidForecastMethod,
			"method must be 'linear' or 'smoothed'",
			domainerror.ErrInvalidForecastMethod,
		)
	}

	confidence := uc.defaultConfidence
	if input.Confidence != nil {
		confidence = forecast.ConfidenceLevel(*input.Confidence)
		if !isSupportedConfidence(confidence) {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeInvalidConfidenceLevel,
				"confidence must be 0.80 or 0.95",
				domainerror.ErrInvalidConfidenceLevel,
			)
		}
	}

	for _, s := range b.Spends {
		if s.Amount < 0 {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeInvalidSpendAmount,
				"spend amounts must not be negative",
				domainerror.ErrInvalidSpendAmount,
			)
		}
	}

	alpha := uc.defaultAlpha
	if input.Alpha != nil {
		alpha = *input.Alpha
		if !(alpha > 0 && alpha <= 1) {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeInvalidSmoothingAlpha,
				"alpha must be greater than 0 and at most 1",
				domainerror.ErrInvalidSmoothingAlpha,
			)
		}
	}

	if b.Thresholds == (entity.BudgetThresholds{}) {
		b.Thresholds = entity.DefaultBudgetThresholds()
	}

	asOf := uc.now().UTC()
	if input.AsOf != nil {
		asOf = *input.AsOf
	}

	totalDays := b.TotalDays()
	currentDay := forecast.CurrentDay(b, asOf)

	result := forecast.Forecast(forecast.Input{
		Limit:      b.Limit,
		TotalDays:  totalDays,
		CurrentDay: currentDay,
		Daily:      forecast.DailySeries(b),
		History:    input.History,
		Method:     method,
		Alpha:      alpha,
		Confidence: confidence,
	})

	return &ForecastBudgetOutput{
		Result:     result,
		Threshold:  forecast.ClassifyThreshold(result.Utilization, b.Thresholds),
		TotalDays:  totalDays,
		CurrentDay: currentDay,
		Method:     method,
		AsOf:       asOf,
	}, nil
}

func isSupportedConfidence(c forecast.ConfidenceLevel) bool {
	return c == forecast.Confidence80 || c == forecast.Confidence95
}
