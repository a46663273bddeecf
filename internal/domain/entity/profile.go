package entity

// FinancialProfile is a flat monthly snapshot consumed by the health scorer.
type FinancialProfile struct {
	MonthlyIncome     float64
	MandatoryExpenses float64
	DebtPayments      float64
	LiquidAssets      float64
	TotalDebt         float64
}
