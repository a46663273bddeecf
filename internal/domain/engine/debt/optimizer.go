// Package debt simulates month-by-month payoff of a set of debts under the
// avalanche or snowball strategy, with an extra monthly payment and freed
// minimums rolling into the next target.
package debt

import (
	"math"
	"sort"

	"github.com/finance-tracker/analytics/internal/domain/entity"
)

// Strategy orders open debts when distributing money beyond the minimums.
type Strategy string

const (
	// Avalanche targets the highest APR first.
	Avalanche Strategy = "avalanche"
	// Snowball targets the smallest balance first.
	Snowball Strategy = "snowball"
)

// IsValid reports whether s is a known strategy.
func (s Strategy) IsValid() bool {
	return s == Avalanche || s == Snowball
}

const (
	// MaxMonths caps the simulation. Hitting it means the schedule does not converge.
	MaxMonths = 360
	// BalanceTolerance is the balance at or below which a debt counts as closed.
	BalanceTolerance = 0.01
	// NotDebtFree is reported as DebtFreeMonth when the cap is reached.
	NotDebtFree = -1
)

// DebtMonth is one debt's line in a monthly schedule.
type DebtMonth struct {
	DebtID       string
	StartBalance float64
	Payment      float64
	Interest     float64
	Fee          float64
	Principal    float64
	Balance      float64
}

// Month is one step of the payoff schedule.
type Month struct {
	Index     int
	Payment   float64
	Interest  float64
	Fees      float64
	Principal float64
	Debts     []DebtMonth
	Closed    []string
}

// Result is a full payoff simulation. It is built fresh for every call.
type Result struct {
	Strategy      Strategy
	ExtraPayment  float64
	MonthlyBudget float64
	Schedule      []Month
	TotalInterest float64
	TotalFees     float64
	TotalPaid     float64
	DebtFreeMonth int
	Converged     bool
	PayoffOrder   []string
}

type debtState struct {
	debt    entity.Debt
	balance float64
}

// Simulate runs the payoff schedule for debts. The monthly budget is the sum
// of every debt's original minimum plus extra, so minimums freed by closed
// debts flow into the ranked target automatically.
func Simulate(debts []entity.Debt, strategy Strategy, extra float64) Result {
	if !strategy.IsValid() {
		strategy = Avalanche
	}
	extra = math.Max(0, extra)

	states := make([]*debtState, 0, len(debts))
	budget := extra
	for _, d := range debts {
		budget += math.Max(0, d.MinPayment)
		states = append(states, &debtState{debt: d, balance: math.Max(0, d.Balance)})
	}

	result := Result{
		Strategy:      strategy,
		ExtraPayment:  extra,
		MonthlyBudget: budget,
		Schedule:      []Month{},
		PayoffOrder:   []string{},
		DebtFreeMonth: NotDebtFree,
	}

	if len(openDebts(states)) == 0 {
		result.DebtFreeMonth = 0
		result.Converged = true
		return result
	}

	for index := 1; index <= MaxMonths; index++ {
		month := step(states, strategy, budget, index)

		result.Schedule = append(result.Schedule, month)
		result.TotalInterest += month.Interest
		result.TotalFees += month.Fees
		result.TotalPaid += month.Payment
		result.PayoffOrder = append(result.PayoffOrder, month.Closed...)

		if len(openDebts(states)) == 0 {
			result.DebtFreeMonth = index
			result.Converged = true
			break
		}
	}

	return result
}

// step advances every open debt by one month and returns the schedule line.
func step(states []*debtState, strategy Strategy, budget float64, index int) Month {
	open := openDebts(states)

	interest := make(map[*debtState]float64, len(open))
	fee := make(map[*debtState]float64, len(open))
	due := make(map[*debtState]float64, len(open))
	payment := make(map[*debtState]float64, len(open))

	leftover := budget
	for _, s := range open {
		interest[s] = monthlyInterest(s.balance, s.debt.APR)
		fee[s] = s.debt.MonthlyFee()
		due[s] = s.balance + interest[s] + fee[s]
		payment[s] = math.Min(math.Max(0, s.debt.MinPayment), due[s])
		leftover -= payment[s]
	}

	for _, s := range rank(open, strategy) {
		if leftover <= 0 {
			break
		}
		add := math.Min(due[s]-payment[s], leftover)
		if add <= 0 {
			continue
		}
		payment[s] += add
		leftover -= add
	}

	month := Month{Index: index, Debts: make([]DebtMonth, 0, len(open)), Closed: []string{}}
	for _, s := range open {
		principal := math.Max(0, payment[s]-interest[s]-fee[s])
		start := s.balance
		s.balance = math.Max(0, s.balance-principal)
		if s.balance <= BalanceTolerance {
			s.balance = 0
			month.Closed = append(month.Closed, s.debt.ID)
		}

		month.Debts = append(month.Debts, DebtMonth{
			DebtID:       s.debt.ID,
			StartBalance: start,
			Payment:      payment[s],
			Interest:     interest[s],
			Fee:          fee[s],
			Principal:    principal,
			Balance:      s.balance,
		})
		month.Payment += payment[s]
		month.Interest += interest[s]
		month.Fees += fee[s]
		month.Principal += principal
	}

	return month
}

func monthlyInterest(balance, apr float64) float64 {
	if apr <= 0 {
		return 0
	}
	return balance * (apr / 12 / 100)
}

func openDebts(states []*debtState) []*debtState {
	open := make([]*debtState, 0, len(states))
	for _, s := range states {
		if s.balance > BalanceTolerance {
			open = append(open, s)
		}
	}
	return open
}

// rank returns open debts in the order the strategy funds them.
func rank(open []*debtState, strategy Strategy) []*debtState {
	ranked := make([]*debtState, len(open))
	copy(ranked, open)

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if strategy == Snowball {
			if a.balance != b.balance {
				return a.balance < b.balance
			}
			if a.debt.APR != b.debt.APR {
				return a.debt.APR > b.debt.APR
			}
			return a.debt.ID < b.debt.ID
		}
		if a.debt.APR != b.debt.APR {
			return a.debt.APR > b.debt.APR
		}
		if a.balance != b.balance {
			return a.balance < b.balance
		}
		return a.debt.ID < b.debt.ID
	})
	return ranked
}

// NegativeAmortization returns the ids of debts whose minimum payment does not
// cover the first month's interest and fee. Such debts are simulated as-is.
func NegativeAmortization(debts []entity.Debt) []string {
	ids := []string{}
	for _, d := range debts {
		if d.Balance <= BalanceTolerance {
			continue
		}
		if d.MinPayment < monthlyInterest(d.Balance, d.APR)+d.MonthlyFee() {
			ids = append(ids, d.ID)
		}
	}
	return ids
}
