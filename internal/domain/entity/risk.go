package entity

// RiskLevel is the discrete cash-flow risk before the next salary.
type RiskLevel string

const (
	RiskLevelLow    RiskLevel = "low"
	RiskLevelMedium RiskLevel = "medium"
	RiskLevelHigh   RiskLevel = "high"
)

// AtRiskObligation is an unpaid obligation that falls inside the risk window.
type AtRiskObligation struct {
	Obligation   Obligation
	DaysUntilDue int
	Overdue      bool
}

// RiskResult is the derived risk classification. It is recomputed on demand and never stored.
type RiskResult struct {
	Level                 RiskLevel
	DueWithinWindow       float64
	AmountDueBeforeSalary float64
	DaysUntilSalary       int
	AtRisk                []AtRiskObligation
	Overdue               []AtRiskObligation
}
