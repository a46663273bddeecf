package debt

import (
	"math"
	"testing"

	"github.com/finance-tracker/analytics/internal/domain/entity"
)

func twoDebts() []entity.Debt {
	return []entity.Debt{
		{ID: "card-a", Name: "Card A", Balance: 10000, APR: 20, MinPayment: 500},
		{ID: "card-b", Name: "Card B", Balance: 5000, APR: 30, MinPayment: 300},
	}
}

func lineFor(m Month, id string) (DebtMonth, bool) {
	for _, d := range m.Debts {
		if d.DebtID == id {
			return d, true
		}
	}
	return DebtMonth{}, false
}

func closingMonth(result Result, id string) int {
	for _, m := range result.Schedule {
		for _, closed := range m.Closed {
			if closed == id {
				return m.Index
			}
		}
	}
	return -1
}

func TestSimulate_AvalancheRollsMinimumOver(t *testing.T) {
	result := Simulate(twoDebts(), Avalanche, 1000)

	if result.MonthlyBudget != 1800 {
		t.Fatalf("expected monthly budget 1800, got %.2f", result.MonthlyBudget)
	}

	first := result.Schedule[0]
	b, _ := lineFor(first, "card-b")
	a, _ := lineFor(first, "card-a")
	if math.Abs(b.Payment-1300) > 1e-9 {
		t.Errorf("expected highest APR to receive minimum plus extra (1300), got %.2f", b.Payment)
	}
	if math.Abs(a.Payment-500) > 1e-9 {
		t.Errorf("expected other debt to receive its minimum (500), got %.2f", a.Payment)
	}

	closedB := closingMonth(result, "card-b")
	if closedB < 2 {
		t.Fatalf("expected card-b to close after a few months, got %d", closedB)
	}
	for _, m := range result.Schedule[:closedB-1] {
		line, _ := lineFor(m, "card-a")
		if math.Abs(line.Payment-500) > 1e-9 {
			t.Errorf("month %d: expected card-a minimum only, got %.2f", m.Index, line.Payment)
		}
	}

	after := result.Schedule[closedB]
	line, ok := lineFor(after, "card-a")
	if !ok {
		t.Fatalf("expected card-a to remain open after card-b closes")
	}
	if math.Abs(line.Payment-1800) > 1e-9 {
		t.Errorf("expected freed minimum to roll over (1800), got %.2f", line.Payment)
	}

	if !result.Converged || result.DebtFreeMonth != len(result.Schedule) {
		t.Errorf("expected convergence at the last scheduled month, got %d of %d", result.DebtFreeMonth, len(result.Schedule))
	}
	if len(result.PayoffOrder) != 2 || result.PayoffOrder[0] != "card-b" || result.PayoffOrder[1] != "card-a" {
		t.Errorf("unexpected payoff order %v", result.PayoffOrder)
	}
}

func TestSimulate_SnowballTargetsSmallestBalance(t *testing.T) {
	debts := []entity.Debt{
		{ID: "big", Balance: 8000, APR: 25, MinPayment: 200},
		{ID: "small", Balance: 1000, APR: 10, MinPayment: 50},
	}
	result := Simulate(debts, Snowball, 300)

	line, _ := lineFor(result.Schedule[0], "small")
	if math.Abs(line.Payment-350) > 1e-9 {
		t.Errorf("expected smallest balance to receive the extra, got %.2f", line.Payment)
	}
	if result.PayoffOrder[0] != "small" {
		t.Errorf("expected small to close first, got %v", result.PayoffOrder)
	}
}

func TestSimulate_AmortizationInvariants(t *testing.T) {
	debts := []entity.Debt{
		{ID: "a", Balance: 2500, APR: 18.5, MinPayment: 75, Fee: 5, IncludeFee: true},
		{ID: "b", Balance: 900, APR: 0, MinPayment: 40},
		{ID: "c", Balance: 12000, APR: 7.2, MinPayment: 250},
	}

	for _, strategy := range []Strategy{Avalanche, Snowball} {
		t.Run(string(strategy), func(t *testing.T) {
			result := Simulate(debts, strategy, 150)
			for _, m := range result.Schedule {
				if m.Payment > result.MonthlyBudget+1e-9 {
					t.Errorf("month %d: payment %.2f exceeds budget %.2f", m.Index, m.Payment, result.MonthlyBudget)
				}
				for _, line := range m.Debts {
					if line.Principal < 0 {
						t.Errorf("month %d %s: negative principal %.2f", m.Index, line.DebtID, line.Principal)
					}
					if line.Balance < 0 || line.Balance > line.StartBalance+1e-9 {
						t.Errorf("month %d %s: balance moved from %.2f to %.2f", m.Index, line.DebtID, line.StartBalance, line.Balance)
					}
					if line.Payment > line.StartBalance+line.Interest+line.Fee+1e-9 {
						t.Errorf("month %d %s: overpaid %.2f", m.Index, line.DebtID, line.Payment)
					}
				}
			}
			if !result.Converged {
				t.Errorf("expected convergence")
			}
		})
	}
}

func TestSimulate_ZeroAPR(t *testing.T) {
	result := Simulate([]entity.Debt{{ID: "loan", Balance: 1200, MinPayment: 100}}, Avalanche, 0)

	if result.DebtFreeMonth != 12 {
		t.Errorf("expected 12 months, got %d", result.DebtFreeMonth)
	}
	if result.TotalInterest != 0 {
		t.Errorf("expected no interest, got %.2f", result.TotalInterest)
	}
}

func TestSimulate_CapReached(t *testing.T) {
	debts := []entity.Debt{{ID: "stuck", Balance: 1000, APR: 24, MinPayment: 10}}

	result := Simulate(debts, Avalanche, 0)
	if result.Converged || result.DebtFreeMonth != NotDebtFree {
		t.Errorf("expected non-convergence, got month %d", result.DebtFreeMonth)
	}
	if len(result.Schedule) != MaxMonths {
		t.Errorf("expected %d scheduled months, got %d", MaxMonths, len(result.Schedule))
	}

	ids := NegativeAmortization(debts)
	if len(ids) != 1 || ids[0] != "stuck" {
		t.Errorf("expected stuck to be flagged, got %v", ids)
	}
}

func TestSimulate_NoDebts(t *testing.T) {
	result := Simulate(nil, Snowball, 100)
	if !result.Converged || result.DebtFreeMonth != 0 || len(result.Schedule) != 0 {
		t.Errorf("expected immediate convergence, got %+v", result)
	}
}

func TestSimulate_Deterministic(t *testing.T) {
	first := Simulate(twoDebts(), Avalanche, 250)
	second := Simulate(twoDebts(), Avalanche, 250)
	if first.TotalInterest != second.TotalInterest || first.DebtFreeMonth != second.DebtFreeMonth {
		t.Errorf("expected identical results for identical input")
	}
}

func TestCompare(t *testing.T) {
	c := Compare(twoDebts(), Avalanche, 1000)

	if !c.BothConverged {
		t.Fatalf("expected both schedules to converge")
	}
	if c.InterestSaved <= 0 {
		t.Errorf("expected interest saved, got %.2f", c.InterestSaved)
	}
	if c.MonthsSaved <= 0 {
		t.Errorf("expected months saved, got %d", c.MonthsSaved)
	}
	if c.Baseline.ExtraPayment != 0 {
		t.Errorf("expected baseline without extra payment")
	}
}

func TestCompare_BaselineDiverges(t *testing.T) {
	debts := []entity.Debt{{ID: "stuck", Balance: 1000, APR: 24, MinPayment: 10}}
	c := Compare(debts, Avalanche, 200)

	if c.BothConverged || c.MonthsSaved != 0 {
		t.Errorf("expected months saved to be suppressed, got %d", c.MonthsSaved)
	}
	if !c.Optimized.Converged {
		t.Errorf("expected optimized schedule to converge")
	}
}

func TestMarginalSensitivity(t *testing.T) {
	s := MarginalSensitivity(twoDebts(), Avalanche, 1000, 0)

	if s.Step != DefaultSensitivityStep || s.NextExtra != 1500 {
		t.Errorf("expected default step, got %.2f -> %.2f", s.Step, s.NextExtra)
	}
	if s.MonthsSaved < 0 || s.InterestSaved <= 0 {
		t.Errorf("expected non-negative savings, got %d months %.2f interest", s.MonthsSaved, s.InterestSaved)
	}
}

func TestCompareStrategies(t *testing.T) {
	c := CompareStrategies(twoDebts(), 1000)

	if c.Recommended != Avalanche {
		t.Errorf("expected avalanche when both strategies target the same debt, got %s", c.Recommended)
	}
	if c.InterestDifference < -BalanceTolerance {
		t.Errorf("expected avalanche to cost no more interest, got %.2f", c.InterestDifference)
	}
}
