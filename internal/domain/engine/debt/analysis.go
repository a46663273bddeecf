package debt

import (
	"math"

	"github.com/finance-tracker/analytics/internal/domain/entity"
)

// DefaultSensitivityStep is the additional monthly payment probed by MarginalSensitivity.
const DefaultSensitivityStep = 500.0

// Comparison contrasts a zero-extra baseline with the requested plan.
type Comparison struct {
	Baseline      Result
	Optimized     Result
	InterestSaved float64
	MonthsSaved   int
	BothConverged bool
}

// Compare runs the strategy with no extra payment and with extra, and reports the savings.
// MonthsSaved is only meaningful when both schedules converge; otherwise it is 0.
func Compare(debts []entity.Debt, strategy Strategy, extra float64) Comparison {
	baseline := Simulate(debts, strategy, 0)
	optimized := Simulate(debts, strategy, extra)

	c := Comparison{
		Baseline:      baseline,
		Optimized:     optimized,
		InterestSaved: baseline.TotalInterest - optimized.TotalInterest,
		BothConverged: baseline.Converged && optimized.Converged,
	}
	if c.BothConverged {
		c.MonthsSaved = baseline.DebtFreeMonth - optimized.DebtFreeMonth
	}
	return c
}

// Sensitivity is the marginal effect of paying Step more each month.
type Sensitivity struct {
	Step          float64
	CurrentExtra  float64
	NextExtra     float64
	CurrentMonths int
	NextMonths    int
	MonthsSaved   int
	InterestSaved float64
}

// MarginalSensitivity re-runs the simulation with extra+step and reports the
// incremental months and interest saved. A non-positive step uses DefaultSensitivityStep.
func MarginalSensitivity(debts []entity.Debt, strategy Strategy, extra, step float64) Sensitivity {
	if step <= 0 {
		step = DefaultSensitivityStep
	}
	extra = math.Max(0, extra)

	current := Simulate(debts, strategy, extra)
	next := Simulate(debts, strategy, extra+step)

	s := Sensitivity{
		Step:          step,
		CurrentExtra:  extra,
		NextExtra:     extra + step,
		CurrentMonths: current.DebtFreeMonth,
		NextMonths:    next.DebtFreeMonth,
		InterestSaved: current.TotalInterest - next.TotalInterest,
	}
	if current.Converged && next.Converged {
		s.MonthsSaved = current.DebtFreeMonth - next.DebtFreeMonth
	}
	return s
}

// StrategyComparison runs avalanche and snowball side by side.
type StrategyComparison struct {
	Avalanche          Result
	Snowball           Result
	Recommended        Strategy
	InterestDifference float64
	MonthsDifference   int
}

// CompareStrategies simulates both strategies with the same extra payment and
// recommends the cheaper one, falling back to fewer months, then avalanche.
func CompareStrategies(debts []entity.Debt, extra float64) StrategyComparison {
	avalanche := Simulate(debts, Avalanche, extra)
	snowball := Simulate(debts, Snowball, extra)

	c := StrategyComparison{
		Avalanche:          avalanche,
		Snowball:           snowball,
		Recommended:        Avalanche,
		InterestDifference: snowball.TotalInterest - avalanche.TotalInterest,
	}
	if avalanche.Converged && snowball.Converged {
		c.MonthsDifference = snowball.DebtFreeMonth - avalanche.DebtFreeMonth
	}

	switch {
	case snowball.Converged && !avalanche.Converged:
		c.Recommended = Snowball
	case c.InterestDifference < -BalanceTolerance:
		c.Recommended = Snowball
	case math.Abs(c.InterestDifference) <= BalanceTolerance && c.MonthsDifference < 0:
		c.Recommended = Snowball
	}
	return c
}
