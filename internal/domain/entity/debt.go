package entity

// Debt is an amortizing balance with a monthly minimum payment.
type Debt struct {
	ID         string
	Name       string
	Balance    float64
	APR        float64 // annual percentage rate, e.g. 19.9
	MinPayment float64
	DueDay     int
	Fee        float64 // fixed monthly fee
	IncludeFee bool
}

// MonthlyFee returns the fee charged each month, or 0 when fees are excluded.
func (d Debt) MonthlyFee() float64 {
	if !d.IncludeFee || d.Fee < 0 {
		return 0
	}
	return d.Fee
}
