// Package envelope projects savings goals: remaining amount, required daily
// contribution, historical pace, ETA bands and interest-bearing goal math.
package envelope

import (
	"math"
	"time"

	"github.com/finance-tracker/analytics/internal/domain/engine/stats"
	"github.com/finance-tracker/analytics/internal/domain/entity"
)

// Status tells whether an envelope will reach its target before the deadline.
type Status string

const (
	StatusOnTrack Status = "onTrack"
	StatusAtRisk  Status = "atRisk"
	StatusBehind  Status = "behind"
)

const (
	// VolatilityFactor approximates daily pace deviation as a share of the pace itself.
	// Contribution histories are too sparse for a sample variance.
	VolatilityFactor = 0.3
	// MaxETADays caps projected arrival at 100 years.
	MaxETADays = 36500
	// AtRiskFactor is the deadline overshoot still reported as atRisk.
	AtRiskFactor = 1.2

	daysPerYear  = 365.0
	daysPerMonth = 30.4375
	daysPerWeek  = 7.0
)

// Projection is the full read-out for a single envelope.
type Projection struct {
	EnvelopeID        string
	Remaining         float64
	HasDeadline       bool
	DaysUntilDeadline int
	RequiredDaily     float64
	Pace              float64
	Sigma             float64
	ETADays           int
	OptimisticDays    int
	PessimisticDays   int
	ETA               time.Time
	OptimisticETA     time.Time
	PessimisticETA    time.Time
	Status            Status
	Interest          *InterestPlan
}

// Remaining returns the amount still needed to hit the target.
func Remaining(e entity.Envelope) float64 {
	return math.Max(0, e.TargetAmount-e.CurrentAmount)
}

// DaysUntilDeadline returns the whole days left before deadline. bounded is
// false when there is no deadline. A passed deadline yields 0.
func DaysUntilDeadline(deadline *time.Time, today time.Time) (days int, bounded bool) {
	if deadline == nil {
		return 0, false
	}
	diff := deadline.Sub(today).Hours() / 24
	if diff <= 0 {
		return 0, true
	}
	return int(math.Ceil(diff)), true
}

// RequiredDaily returns the daily contribution needed to finish by the deadline.
func RequiredDaily(remaining float64, days int, bounded bool) float64 {
	if !bounded || days <= 0 {
		return 0
	}
	return remaining / float64(days)
}

// TotalContributed sums dated contributions, or falls back to the current amount
// when the envelope carries no history.
func TotalContributed(e entity.Envelope) float64 {
	if len(e.Contributions) == 0 {
		return math.Max(0, e.CurrentAmount)
	}
	total := 0.0
	for _, c := range e.Contributions {
		total += c.Amount
	}
	return math.Max(0, total)
}

// DaysActive returns the whole days since creation, at least 1.
func DaysActive(e entity.Envelope, today time.Time) int {
	if e.CreatedAt.IsZero() || !e.CreatedAt.Before(today) {
		return 1
	}
	days := int(math.Ceil(today.Sub(e.CreatedAt).Hours() / 24))
	if days < 1 {
		return 1
	}
	return days
}

// HistoricalPace is the average contribution per active day. When nothing has
// been contributed yet, the auto-contribution rule's daily equivalent is used.
// Without a creation date there is no history to average, so only the rule counts.
func HistoricalPace(e entity.Envelope, today time.Time) float64 {
	if e.CreatedAt.IsZero() {
		return AutoContributionDaily(e.AutoContribution)
	}
	pace := TotalContributed(e) / float64(DaysActive(e, today))
	if pace > 0 {
		return pace
	}
	return AutoContributionDaily(e.AutoContribution)
}

// AutoContributionDaily converts a recurring rule into a per-day amount.
func AutoContributionDaily(rule *entity.AutoContribution) float64 {
	if rule == nil || rule.Amount <= 0 {
		return 0
	}
	switch rule.Frequency {
	case entity.FrequencyDaily:
		return rule.Amount
	case entity.FrequencyWeekly:
		return rule.Amount / daysPerWeek
	case entity.FrequencyMonthly:
		return rule.Amount * 12 / daysPerYear
	default:
		return 0
	}
}

// ETADays returns the days needed to cover remaining at pace, capped at MaxETADays.
func ETADays(remaining, pace float64) int {
	if remaining <= 0 {
		return 0
	}
	days := math.Ceil(remaining / math.Max(pace, stats.Epsilon))
	if days > MaxETADays {
		return MaxETADays
	}
	return int(days)
}

// ClassifyStatus compares the projected arrival with the deadline.
func ClassifyStatus(etaDays, deadlineDays int, bounded bool) Status {
	if !bounded {
		return StatusOnTrack
	}
	switch {
	case etaDays <= deadlineDays:
		return StatusOnTrack
	case float64(etaDays) <= float64(deadlineDays)*AtRiskFactor:
		return StatusAtRisk
	default:
		return StatusBehind
	}
}

// Project derives the pace from the envelope's own history.
func Project(e entity.Envelope, today time.Time) Projection {
	return ProjectWithPace(e, today, HistoricalPace(e, today))
}

// ProjectWithPace builds a projection using an explicit daily pace.
func ProjectWithPace(e entity.Envelope, today time.Time, pace float64) Projection {
	pace = math.Max(0, pace)
	remaining := Remaining(e)
	days, bounded := DaysUntilDeadline(e.Deadline, today)
	sigma := VolatilityFactor * pace

	p := Projection{
		EnvelopeID:        e.ID,
		Remaining:         remaining,
		HasDeadline:       bounded,
		DaysUntilDeadline: days,
		RequiredDaily:     RequiredDaily(remaining, days, bounded),
		Pace:              pace,
		Sigma:             sigma,
		ETADays:           ETADays(remaining, pace),
		OptimisticDays:    ETADays(remaining, pace+sigma),
		PessimisticDays:   ETADays(remaining, math.Max(pace-sigma, stats.Epsilon)),
	}
	p.ETA = today.AddDate(0, 0, p.ETADays)
	p.OptimisticETA = today.AddDate(0, 0, p.OptimisticDays)
	p.PessimisticETA = today.AddDate(0, 0, p.PessimisticDays)
	p.Status = ClassifyStatus(p.ETADays, days, bounded)

	if e.YieldRate != nil && bounded {
		plan := RequiredPeriodicContribution(e.CurrentAmount, e.TargetAmount, *e.YieldRate, days, e.YieldFrequency)
		p.Interest = &plan
	}

	return p
}
