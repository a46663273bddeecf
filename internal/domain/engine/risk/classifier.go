// Package risk classifies short-term cash-flow risk from unpaid obligations
// and the user's balance relative to the next salary.
//
// Day arithmetic treats every month as MonthLength days. Near month ends in
// 28, 29 and 31 day months the computed distances are off by up to three days;
// the window and lookback thresholds were tuned against this approximation.
package risk

import (
	"sort"
	"time"

	"github.com/finance-tracker/analytics/internal/domain/entity"
)

const (
	// MonthLength is the assumed length of every month.
	MonthLength = 30
	// WindowDays is the look-ahead window for obligations at risk.
	WindowDays = 7
	// LookbackDays bounds how far back an unpaid due day still counts as overdue.
	LookbackDays = 15
	// MediumBalanceShare is the share of the balance above which upcoming dues are medium risk.
	MediumBalanceShare = 0.5
	// MediumCountWithoutBalance is the number of upcoming dues that is medium risk when the balance is unknown.
	MediumCountWithoutBalance = 3
)

// Input is the snapshot the classifier reads.
type Input struct {
	Obligations []entity.Obligation
	SalaryDay   int
	Balance     *float64
	AsOf        time.Time
}

// DaysUntilDue returns the days from today until the next occurrence of dueDay.
func DaysUntilDue(dueDay, today int) int {
	diff := dueDay - today
	if diff < 0 {
		diff += MonthLength
	}
	return diff
}

// DaysOverdue reports how many days ago dueDay passed when it lies within the lookback.
func DaysOverdue(dueDay, today int) (int, bool) {
	if dueDay >= today {
		return 0, false
	}
	late := today - dueDay
	if late > LookbackDays {
		return 0, false
	}
	return late, true
}

// DaysUntilSalary returns the days until the next salary, rolling into the
// next month when today is on or after the salary day.
func DaysUntilSalary(salaryDay, today int) int {
	if salaryDay < 1 {
		salaryDay = 1
	}
	if salaryDay > 31 {
		salaryDay = 31
	}
	if today >= salaryDay {
		return salaryDay - today + MonthLength
	}
	return salaryDay - today
}

// Classify computes the risk level for in.
func Classify(in Input) entity.RiskResult {
	today := in.AsOf.Day()
	daysToSalary := DaysUntilSalary(in.SalaryDay, today)

	result := entity.RiskResult{
		Level:           entity.RiskLevelLow,
		DaysUntilSalary: daysToSalary,
		AtRisk:          []entity.AtRiskObligation{},
		Overdue:         []entity.AtRiskObligation{},
	}

	for _, o := range in.Obligations {
		if o.Paid {
			continue
		}

		if late, overdue := DaysOverdue(o.DueDay, today); overdue {
			result.Overdue = append(result.Overdue, entity.AtRiskObligation{
				Obligation:   o,
				DaysUntilDue: -late,
				Overdue:      true,
			})
			result.AmountDueBeforeSalary += o.Amount
			continue
		}

		days := DaysUntilDue(o.DueDay, today)
		if days < daysToSalary {
			result.AmountDueBeforeSalary += o.Amount
		}
		if days <= WindowDays {
			result.AtRisk = append(result.AtRisk, entity.AtRiskObligation{
				Obligation:   o,
				DaysUntilDue: days,
			})
			result.DueWithinWindow += o.Amount
		}
	}

	sortByUrgency(result.AtRisk)
	sortByUrgency(result.Overdue)

	result.Level = classifyLevel(result, in.Balance)
	return result
}

func classifyLevel(result entity.RiskResult, balance *float64) entity.RiskLevel {
	if len(result.Overdue) > 0 {
		return entity.RiskLevelHigh
	}

	if balance != nil {
		due := result.DueWithinWindow
		switch {
		case *balance < due:
			return entity.RiskLevelHigh
		case due > MediumBalanceShare*(*balance):
			return entity.RiskLevelMedium
		default:
			return entity.RiskLevelLow
		}
	}

	if len(result.AtRisk) >= MediumCountWithoutBalance {
		return entity.RiskLevelMedium
	}
	return entity.RiskLevelLow
}

func sortByUrgency(items []entity.AtRiskObligation) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].DaysUntilDue != items[j].DaysUntilDue {
			return items[i].DaysUntilDue < items[j].DaysUntilDue
		}
		if items[i].Obligation.Amount != items[j].Obligation.Amount {
			return items[i].Obligation.Amount > items[j].Obligation.Amount
		}
		return items[i].Obligation.ID.String() < items[j].Obligation.ID.String()
	})
}
