// Package forecast projects budget spend over a period: burn rates, linear and
// smoothed forecasts, confidence bands from historical variance, the chance of
// overrunning the limit and a risk tier derived from them.
package forecast

import (
	"math"
	"time"

	"github.com/finance-tracker/analytics/internal/domain/engine/stats"
	"github.com/finance-tracker/analytics/internal/domain/entity"
)

// Method selects how the burn rate is estimated.
type Method string

const (
	MethodLinear   Method = "linear"
	MethodSmoothed Method = "smoothed"
)

// ConfidenceLevel is a two-sided interval coverage.
type ConfidenceLevel float64

const (
	Confidence80 ConfidenceLevel = 0.80
	Confidence95 ConfidenceLevel = 0.95
)

// ZScore returns the normal quantile for the level. Unknown levels use 80%.
func (c ConfidenceLevel) ZScore() float64 {
	if c == Confidence95 {
		return 1.96
	}
	return 1.28
}

// RiskTier is the budget's overall standing.
type RiskTier string

const (
	TierOnTrack   RiskTier = "onTrack"
	TierAtRisk    RiskTier = "atRisk"
	TierHighRisk  RiskTier = "highRisk"
	TierOverLimit RiskTier = "overLimit"
)

// ThresholdStatus is the budget status against its configured ratios.
type ThresholdStatus string

const (
	StatusNormal   ThresholdStatus = "normal"
	StatusWarning  ThresholdStatus = "warning"
	StatusDanger   ThresholdStatus = "danger"
	StatusExceeded ThresholdStatus = "exceeded"
)

const (
	// AnomalyThreshold is the absolute z-score at which a day is anomalous.
	AnomalyThreshold = 2.0
	// MaxAnomalyScore bounds the reported z-score when the history has no spread.
	MaxAnomalyScore = 1e6
	// RecommendedLimitK is the number of standard deviations added to the mean period total.
	RecommendedLimitK = 0.5
	// HighRiskProbability is the overrun probability above which a budget is high risk.
	HighRiskProbability = 0.60
	// AtRiskProbability is the overrun probability from which a budget is at risk.
	AtRiskProbability = 0.30
	// AtRiskUtilization is the utilization from which a budget is at risk.
	AtRiskUtilization = 0.90
)

// CumulativeSpend sums the first day entries of a day-indexed series.
func CumulativeSpend(daily []float64, day int) float64 {
	if day > len(daily) {
		day = len(daily)
	}
	var total float64
	for i := 0; i < day; i++ {
		total += daily[i]
	}
	return total
}

// Remaining returns limit minus spend. It is negative once the limit is exceeded.
func Remaining(limit, spend float64) float64 {
	return limit - spend
}

// Utilization returns spend/limit. A non-positive limit yields 1 when anything
// was spent and 0 otherwise.
func Utilization(spend, limit float64) float64 {
	if limit <= 0 {
		if spend > 0 {
			return 1
		}
		return 0
	}
	return spend / limit
}

// LinearBurnRate is the average spend per elapsed day.
func LinearBurnRate(spend float64, elapsedDays int) float64 {
	if elapsedDays <= 0 {
		return 0
	}
	return spend / float64(elapsedDays)
}

// SmoothedBurnRate is the EWMA of daily spend from day 1 through day.
func SmoothedBurnRate(daily []float64, day int, alpha float64) float64 {
	if day > len(daily) {
		day = len(daily)
	}
	if day <= 0 {
		return 0
	}
	return stats.EWMA(daily[:day], alpha)
}

// LinearForecast projects a constant burn rate over the whole period.
func LinearForecast(burnRate float64, totalDays int) float64 {
	return burnRate * float64(totalDays)
}

// SmoothedForecast adds the smoothed rate over the remaining days to what is already spent.
func SmoothedForecast(currentSpend, rate float64, remainingDays int) float64 {
	if remainingDays < 0 {
		remainingDays = 0
	}
	return currentSpend + rate*float64(remainingDays)
}

// DailyStats pools the daily values of prior periods into a mean and population std.
func DailyStats(history [][]float64) (mean, std float64) {
	var pooled []float64
	for _, period := range history {
		pooled = append(pooled, period...)
	}
	return stats.Mean(pooled), stats.StdDev(pooled)
}

// ForecastSigma propagates daily dispersion to the period total.
func ForecastSigma(stdDay float64, totalDays int) float64 {
	if totalDays <= 0 {
		return 0
	}
	return stdDay * math.Sqrt(float64(totalDays))
}

// Interval is a confidence band around a forecast.
type Interval struct {
	Lower float64
	Upper float64
	Level ConfidenceLevel
}

// ConfidenceInterval returns forecast ± z·sigma. The lower bound never drops below zero.
func ConfidenceInterval(forecast, sigma float64, level ConfidenceLevel) Interval {
	z := level.ZScore()
	return Interval{
		Lower: math.Max(0, forecast-z*sigma),
		Upper: forecast + z*sigma,
		Level: level,
	}
}

// OverrunProbability is P(total > limit) under N(forecast, sigma²).
func OverrunProbability(limit, forecast, sigma float64) float64 {
	return 1 - stats.NormalCDF(limit, forecast, sigma)
}

// ExpectedOverrunDay returns the day on which spend is expected to reach the
// limit. ok is false when the burn rate is not positive ("never").
func ExpectedOverrunDay(currentDay int, spend, limit, burnRate float64) (day int, ok bool) {
	if spend >= limit {
		return currentDay, true
	}
	if burnRate <= 0 {
		return 0, false
	}
	return currentDay + int(math.Ceil((limit-spend)/burnRate)), true
}

// AnomalyScore is the z-score of today's spend against the historical daily
// distribution, clamped to ±MaxAnomalyScore.
func AnomalyScore(todaySpend, meanDay, stdDay float64) float64 {
	score := (todaySpend - meanDay) / math.Max(stdDay, stats.Epsilon)
	return stats.Clamp(score, -MaxAnomalyScore, MaxAnomalyScore)
}

// IsAnomalous reports whether an anomaly score crosses AnomalyThreshold.
func IsAnomalous(score float64) bool {
	return math.Abs(score) >= AnomalyThreshold
}

// RecommendedLimit suggests a limit of mean + k·std over prior period totals.
func RecommendedLimit(periodTotals []float64) float64 {
	return stats.Mean(periodTotals) + RecommendedLimitK*stats.StdDev(periodTotals)
}

// ClassifyTier applies the risk tier policy. Utilization at or above 1 is
// always overLimit regardless of probability.
func ClassifyTier(utilization, probability float64) RiskTier {
	switch {
	case utilization >= 1.0:
		return TierOverLimit
	case probability > HighRiskProbability:
		return TierHighRisk
	case probability >= AtRiskProbability || utilization >= AtRiskUtilization:
		return TierAtRisk
	default:
		return TierOnTrack
	}
}

// ClassifyThreshold maps utilization onto the budget's configured ratios.
func ClassifyThreshold(utilization float64, t entity.BudgetThresholds) ThresholdStatus {
	if t.Exceeded <= 0 {
		t = entity.DefaultBudgetThresholds()
	}
	switch {
	case utilization >= t.Exceeded:
		return StatusExceeded
	case t.Danger > 0 && utilization >= t.Danger:
		return StatusDanger
	case t.Warning > 0 && utilization >= t.Warning:
		return StatusWarning
	default:
		return StatusNormal
	}
}

// DailySeries buckets spends into a series indexed by day of the budget
// period. Spends outside the period are dropped.
func DailySeries(b entity.Budget) []float64 {
	days := b.TotalDays()
	if days <= 0 {
		return nil
	}
	start := startOfDay(b.PeriodStart)

	series := make([]float64, days)
	for _, s := range b.Spends {
		idx := daysBetween(start, startOfDay(s.SpentAt.In(start.Location())))
		if idx < 0 || idx >= days {
			continue
		}
		series[idx] += s.Amount
	}
	return series
}

// CurrentDay returns the 1-based day of the period that asOf falls on, clamped to the period.
func CurrentDay(b entity.Budget, asOf time.Time) int {
	days := b.TotalDays()
	start := startOfDay(b.PeriodStart)
	d := daysBetween(start, startOfDay(asOf.In(start.Location()))) + 1
	if d < 0 {
		return 0
	}
	if d > days {
		return days
	}
	return d
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func daysBetween(from, to time.Time) int {
	return int(math.Round(to.Sub(from).Hours() / 24))
}
