package envelope

import (
	"math"

	"github.com/finance-tracker/analytics/internal/domain/entity"
)

// InterestPlan is the periodic contribution that reaches a target when the
// balance earns a yield.
type InterestPlan struct {
	Frequency            entity.ContributionFrequency
	Periods              int
	PeriodRate           float64
	RequiredContribution float64
	ProjectedValue       float64
}

// DailyRate converts an annual percentage rate into the equivalent daily compound rate.
func DailyRate(annualPercent float64) float64 {
	if annualPercent <= -100 {
		return -1
	}
	return math.Pow(1+annualPercent/100, 1/daysPerYear) - 1
}

// PeriodRate returns the compound rate for one capitalization period.
func PeriodRate(annualPercent float64, frequency entity.ContributionFrequency) float64 {
	daily := DailyRate(annualPercent)
	if frequency == entity.FrequencyMonthly {
		return math.Pow(1+daily, daysPerMonth) - 1
	}
	return daily
}

// Periods returns the capitalization periods that fit in days.
func Periods(days int, frequency entity.ContributionFrequency) int {
	if days <= 0 {
		return 0
	}
	if frequency == entity.FrequencyMonthly {
		return int(math.Floor(float64(days) / daysPerMonth))
	}
	return days
}

// FutureValue compounds current over n periods at rate r with a contribution
// added at the end of every period.
func FutureValue(current, contribution, r float64, n int) float64 {
	if n <= 0 {
		return current
	}
	growth := math.Pow(1+r, float64(n))
	if r == 0 {
		return current + contribution*float64(n)
	}
	return current*growth + contribution*(growth-1)/r
}

// RequiredPeriodicContribution solves the future-value annuity for the payment
// that reaches target in the days available. Without a full period left the
// whole remaining amount is due now.
func RequiredPeriodicContribution(current, target, annualPercent float64, days int, frequency entity.ContributionFrequency) InterestPlan {
	if frequency != entity.FrequencyMonthly {
		frequency = entity.FrequencyDaily
	}
	r := PeriodRate(annualPercent, frequency)
	n := Periods(days, frequency)

	plan := InterestPlan{Frequency: frequency, Periods: n, PeriodRate: r}
	if n == 0 {
		plan.RequiredContribution = math.Max(0, target-current)
		plan.ProjectedValue = current + plan.RequiredContribution
		return plan
	}

	growth := math.Pow(1+r, float64(n))
	var payment float64
	if r == 0 {
		payment = (target - current) / float64(n)
	} else {
		payment = (target - current*growth) * r / (growth - 1)
	}
	plan.RequiredContribution = math.Max(0, payment)
	plan.ProjectedValue = FutureValue(current, plan.RequiredContribution, r, n)
	return plan
}
