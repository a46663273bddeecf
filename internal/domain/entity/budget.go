package entity

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// BudgetThresholds are utilization ratios at which a budget changes status.
type BudgetThresholds struct {
	Warning  float64
	Danger   float64
	Exceeded float64
}

// DefaultBudgetThresholds returns the thresholds applied when a budget has none.
func DefaultBudgetThresholds() BudgetThresholds {
	return BudgetThresholds{
		Warning:  0.75,
		Danger:   0.90,
		Exceeded: 1.00,
	}
}

// Budget is a spending limit over a period.
type Budget struct {
	ID          uuid.UUID
	Name        string
	Limit       float64
	PeriodStart time.Time
	PeriodEnd   time.Time
	Thresholds  BudgetThresholds
	Spends      []BudgetSpend
}

// TotalDays returns the inclusive number of days in the budget period.
func (b Budget) TotalDays() int {
	start := truncateDay(b.PeriodStart)
	end := truncateDay(b.PeriodEnd)
	if end.Before(start) {
		return 0
	}
	return int(math.Round(end.Sub(start).Hours()/24)) + 1
}

// BudgetSpend is a dated spend event. Spends are append-only facts.
type BudgetSpend struct {
	Amount  float64
	SpentAt time.Time
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
