package forecast

import (
	"math"
	"testing"
	"time"

	"github.com/finance-tracker/analytics/internal/domain/entity"
)

func constantSeries(value float64, days int) []float64 {
	out := make([]float64, days)
	for i := range out {
		out[i] = value
	}
	return out
}

func TestForecast_Linear(t *testing.T) {
	result := Forecast(Input{
		Limit:      3000,
		TotalDays:  30,
		CurrentDay: 5,
		Daily:      constantSeries(100, 5),
		Method:     MethodLinear,
		Confidence: Confidence80,
	})

	if result.CurrentSpend != 500 {
		t.Errorf("expected spend 500, got %.2f", result.CurrentSpend)
	}
	if result.Remaining != 2500 {
		t.Errorf("expected remaining 2500, got %.2f", result.Remaining)
	}
	if result.BurnRate != 100 {
		t.Errorf("expected burn rate 100, got %.2f", result.BurnRate)
	}
	if result.Forecast != 3000 {
		t.Errorf("expected forecast 3000, got %.2f", result.Forecast)
	}
	if !result.WillOverrun || result.OverrunDay != 30 {
		t.Errorf("expected overrun on day 30, got %d (%v)", result.OverrunDay, result.WillOverrun)
	}
	if result.Tier != TierOnTrack {
		t.Errorf("expected onTrack with zero variance at the limit, got %s", result.Tier)
	}
}

func TestForecast_Smoothed(t *testing.T) {
	daily := []float64{100, 200, 300}
	result := Forecast(Input{
		Limit:      10000,
		TotalDays:  10,
		CurrentDay: 3,
		Daily:      daily,
		Method:     MethodSmoothed,
		Alpha:      0.5,
	})

	// EWMA(0.5) over 100, 200, 300 = 225; 600 spent + 225 * 7 remaining days.
	if math.Abs(result.BurnRate-225) > 1e-9 {
		t.Errorf("expected smoothed rate 225, got %.4f", result.BurnRate)
	}
	if math.Abs(result.Forecast-2175) > 1e-9 {
		t.Errorf("expected forecast 2175, got %.4f", result.Forecast)
	}
}

func TestForecast_UncertaintyFromHistory(t *testing.T) {
	history := [][]float64{
		{50, 150, 50, 150},
		{50, 150, 50, 150},
	}
	result := Forecast(Input{
		Limit:      400,
		TotalDays:  4,
		CurrentDay: 2,
		Daily:      []float64{100, 100},
		History:    history,
		Method:     MethodLinear,
		Confidence: Confidence95,
	})

	if result.MeanDay != 100 || result.StdDay != 50 {
		t.Fatalf("expected pooled mean 100 std 50, got %.2f %.2f", result.MeanDay, result.StdDay)
	}
	if math.Abs(result.ForecastSigma-100) > 1e-9 {
		t.Errorf("expected sigma 50*sqrt(4)=100, got %.4f", result.ForecastSigma)
	}
	if math.Abs(result.Interval.Lower-204) > 1e-9 || math.Abs(result.Interval.Upper-596) > 1e-9 {
		t.Errorf("expected interval [204, 596], got [%.2f, %.2f]", result.Interval.Lower, result.Interval.Upper)
	}
	if math.Abs(result.OverrunProbability-0.5) > 1e-6 {
		t.Errorf("expected overrun probability 0.5, got %.6f", result.OverrunProbability)
	}
	if result.Tier != TierAtRisk {
		t.Errorf("expected atRisk at 50%% probability, got %s", result.Tier)
	}
	if result.RecommendedLimit != 400 {
		t.Errorf("expected recommended limit 400 for identical totals, got %.2f", result.RecommendedLimit)
	}
}

func TestForecast_Monotonic(t *testing.T) {
	previous := math.Inf(-1)
	for _, rate := range []float64{0, 1, 10, 55.5, 100, 1000} {
		f := LinearForecast(rate, 30)
		if f < previous {
			t.Fatalf("forecast decreased when burn rate rose to %.2f", rate)
		}
		previous = f
	}

	previous = math.Inf(-1)
	for _, rate := range []float64{0, 1, 10, 55.5, 100, 1000} {
		f := SmoothedForecast(500, rate, 20)
		if f < previous {
			t.Fatalf("smoothed forecast decreased when rate rose to %.2f", rate)
		}
		previous = f
	}
}

func TestClassifyTier(t *testing.T) {
	tests := []struct {
		name        string
		utilization float64
		probability float64
		expected    RiskTier
	}{
		{name: "over limit wins over low probability", utilization: 1.0, probability: 0, expected: TierOverLimit},
		{name: "over limit wins over high probability", utilization: 1.3, probability: 0.99, expected: TierOverLimit},
		{name: "high probability", utilization: 0.5, probability: 0.61, expected: TierHighRisk},
		{name: "probability exactly 0.60 is at risk", utilization: 0.5, probability: 0.60, expected: TierAtRisk},
		{name: "probability exactly 0.30 is at risk", utilization: 0.5, probability: 0.30, expected: TierAtRisk},
		{name: "high utilization is at risk", utilization: 0.92, probability: 0.1, expected: TierAtRisk},
		{name: "on track", utilization: 0.5, probability: 0.29, expected: TierOnTrack},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyTier(tt.utilization, tt.probability); got != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestExpectedOverrunDay(t *testing.T) {
	if _, ok := ExpectedOverrunDay(10, 100, 1000, 0); ok {
		t.Error("expected never when burn rate is zero")
	}
	if day, ok := ExpectedOverrunDay(10, 1200, 1000, 50); !ok || day != 10 {
		t.Errorf("expected current day when already over, got %d", day)
	}
	if day, ok := ExpectedOverrunDay(10, 900, 1000, 30); !ok || day != 14 {
		t.Errorf("expected day 14, got %d", day)
	}
}

func TestAnomalyScore(t *testing.T) {
	mean, std := DailyStats([][]float64{{10, 10, 10, 30}})
	score := AnomalyScore(40, mean, std)
	if !IsAnomalous(score) {
		t.Errorf("expected 40 to be anomalous against mean %.2f std %.2f (score %.2f)", mean, std, score)
	}
	if IsAnomalous(AnomalyScore(20, mean, std)) {
		t.Error("expected 20 not to be anomalous")
	}
	if IsAnomalous(AnomalyScore(mean, mean, 0)) {
		t.Error("expected spend equal to the mean not to be anomalous with zero std")
	}
}

func TestAnomalyScore_FlatHistoryIsClamped(t *testing.T) {
	tests := []struct {
		name  string
		today float64
		want  float64
	}{
		{name: "spend above a flat mean", today: 60, want: MaxAnomalyScore},
		{name: "spend below a flat mean", today: 0, want: -MaxAnomalyScore},
		{name: "spend equal to a flat mean", today: 25, want: 0},
	}

	mean, std := DailyStats([][]float64{{25, 25, 25, 25}})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AnomalyScore(tt.today, mean, std)
			if got != tt.want {
				t.Errorf("expected score %g, got %g", tt.want, got)
			}
			if tt.want != 0 && !IsAnomalous(got) {
				t.Errorf("expected score %g to be anomalous", got)
			}
		})
	}
}

func TestRecommendedLimit(t *testing.T) {
	got := RecommendedLimit([]float64{1000, 1200, 1400})
	expected := 1200 + 0.5*math.Sqrt(80000.0/3)
	if math.Abs(got-expected) > 1e-9 {
		t.Errorf("expected %.4f, got %.4f", expected, got)
	}
}

func TestUtilization_ZeroLimit(t *testing.T) {
	if got := Utilization(0, 0); got != 0 {
		t.Errorf("expected 0, got %v", got)
	}
	if got := Utilization(10, 0); got != 1 {
		t.Errorf("expected 1, got %v", got)
	}
}

func TestClassifyThreshold(t *testing.T) {
	thresholds := entity.BudgetThresholds{Warning: 0.5, Danger: 0.8, Exceeded: 1}
	tests := []struct {
		utilization float64
		expected    ThresholdStatus
	}{
		{0.1, StatusNormal},
		{0.5, StatusWarning},
		{0.85, StatusDanger},
		{1.0, StatusExceeded},
	}
	for _, tt := range tests {
		if got := ClassifyThreshold(tt.utilization, thresholds); got != tt.expected {
			t.Errorf("utilization %.2f: expected %s, got %s", tt.utilization, tt.expected, got)
		}
	}
	if got := ClassifyThreshold(0.8, entity.BudgetThresholds{}); got != StatusWarning {
		t.Errorf("expected default thresholds to apply, got %s", got)
	}
}

func TestDailySeries(t *testing.T) {
	start := time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)
	b := entity.Budget{
		Limit:       1000,
		PeriodStart: start,
		PeriodEnd:   time.Date(2025, time.April, 30, 0, 0, 0, 0, time.UTC),
		Spends: []entity.BudgetSpend{
			{Amount: 10, SpentAt: start.Add(3 * time.Hour)},
			{Amount: 5, SpentAt: start.Add(20 * time.Hour)},
			{Amount: 7, SpentAt: start.AddDate(0, 0, 2)},
			{Amount: 99, SpentAt: start.AddDate(0, 0, -1)},
			{Amount: 99, SpentAt: start.AddDate(0, 1, 0)},
		},
	}

	series := DailySeries(b)
	if len(series) != 30 {
		t.Fatalf("expected 30 days, got %d", len(series))
	}
	if series[0] != 15 || series[1] != 0 || series[2] != 7 {
		t.Errorf("unexpected series head: %v", series[:3])
	}

	if d := CurrentDay(b, start.AddDate(0, 0, 4)); d != 5 {
		t.Errorf("expected day 5, got %d", d)
	}
	if d := CurrentDay(b, start.AddDate(0, 2, 0)); d != 30 {
		t.Errorf("expected clamp to 30, got %d", d)
	}
}
