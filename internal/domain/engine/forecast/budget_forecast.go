package forecast

import (
	"github.com/finance-tracker/analytics/internal/domain/engine/stats"
)

// Input is everything needed to forecast one budget period.
type Input struct {
	Limit      float64
	TotalDays  int
	CurrentDay int
	Daily      []float64   // spend per day of the current period, day 1 first
	History    [][]float64 // daily spend of prior periods
	Method     Method
	Alpha      float64
	Confidence ConfidenceLevel
}

// Result aggregates every metric of a budget forecast.
type Result struct {
	CurrentSpend       float64
	Remaining          float64
	Utilization        float64
	BurnRate           float64
	Forecast           float64
	ForecastSigma      float64
	Interval           Interval
	OverrunProbability float64
	OverrunDay         int
	WillOverrun        bool
	MeanDay            float64
	StdDay             float64
	TodaySpend         float64
	AnomalyScore       float64
	Anomalous          bool
	RecommendedLimit   float64
	Tier               RiskTier
}

// Forecast computes the full set of budget metrics for in.
func Forecast(in Input) Result {
	day := in.CurrentDay
	if day < 0 {
		day = 0
	}
	if in.TotalDays > 0 && day > in.TotalDays {
		day = in.TotalDays
	}

	spend := CumulativeSpend(in.Daily, day)

	var rate, projected float64
	switch in.Method {
	case MethodSmoothed:
		rate = SmoothedBurnRate(in.Daily, day, in.Alpha)
		projected = SmoothedForecast(spend, rate, in.TotalDays-day)
	default:
		rate = LinearBurnRate(spend, day)
		projected = LinearForecast(rate, in.TotalDays)
	}

	meanDay, stdDay := DailyStats(in.History)
	sigma := ForecastSigma(stdDay, in.TotalDays)
	probability := OverrunProbability(in.Limit, projected, sigma)
	utilization := Utilization(spend, in.Limit)

	overrunDay, willOverrun := ExpectedOverrunDay(day, spend, in.Limit, rate)

	var today float64
	if day > 0 && day <= len(in.Daily) {
		today = in.Daily[day-1]
	}
	anomaly := AnomalyScore(today, meanDay, stdDay)

	totals := make([]float64, 0, len(in.History))
	for _, period := range in.History {
		var sum float64
		for _, v := range period {
			sum += v
		}
		totals = append(totals, sum)
	}

	return Result{
		CurrentSpend:       spend,
		Remaining:          Remaining(in.Limit, spend),
		Utilization:        utilization,
		BurnRate:           rate,
		Forecast:           projected,
		ForecastSigma:      sigma,
		Interval:           ConfidenceInterval(projected, sigma, in.Confidence),
		OverrunProbability: stats.Clamp(probability, 0, 1),
		OverrunDay:         overrunDay,
		WillOverrun:        willOverrun,
		MeanDay:            meanDay,
		StdDay:             stdDay,
		TodaySpend:         today,
		AnomalyScore:       anomaly,
		Anomalous:          len(in.History) > 0 && IsAnomalous(anomaly),
		RecommendedLimit:   RecommendedLimit(totals),
		Tier:               ClassifyTier(utilization, probability),
	}
}
