// Package health turns a monthly financial snapshot into a 0-1000 score built
// from five logistic sub-scores.
package health

import (
	"math"
	"sort"

	"github.com/finance-tracker/analytics/internal/domain/engine/stats"
	"github.com/finance-tracker/analytics/internal/domain/entity"
)

// FactorKey identifies one of the five scored ratios.
type FactorKey string

const (
	FactorDebtService FactorKey = "debt_service_ratio"
	FactorReserve     FactorKey = "reserve_coverage"
	FactorLiquidity   FactorKey = "liquidity_ratio"
	FactorSurplus     FactorKey = "surplus_ratio"
	FactorDebtBurden  FactorKey = "debt_burden_ratio"
)

// Rating buckets the total score.
type Rating string

const (
	RatingExcellent Rating = "excellent"
	RatingGood      Rating = "good"
	RatingFair      Rating = "fair"
	RatingPoor      Rating = "poor"
	RatingCritical  Rating = "critical"
)

const (
	// MaxScore is the upper bound of the total score.
	MaxScore = 1000.0
	// RecommendationThreshold is the sub-score below which a factor carries advice.
	RecommendationThreshold = 60.0

	// unboundedRatio stands in for a ratio whose denominator is zero.
	unboundedRatio = 100.0
)

// Factor is one scored ratio with its contribution to the total.
type Factor struct {
	Key            FactorKey
	Label          string
	Value          float64
	Score          float64
	Weight         float64
	Contribution   float64
	Recommendation string
}

// Score is the health read-out. Factors are ordered worst first.
type Score struct {
	Total   float64
	Rating  Rating
	Factors []Factor
}

type factorSpec struct {
	key            FactorKey
	label          string
	midpoint       float64
	steepness      float64
	direction      stats.Direction
	weight         float64
	recommendation string
}

var factorSpecs = []factorSpec{
	{
		key: FactorDebtService, label: "Debt service ratio",
		midpoint: 0.40, steepness: 10, direction: stats.Decay, weight: 0.25,
		recommendation: "Debt payments take a large share of income. Prioritize paying down the highest-rate balances.",
	},
	{
		key: FactorReserve, label: "Reserve coverage",
		midpoint: 3.0, steepness: 1, direction: stats.Growth, weight: 0.25,
		recommendation: "Build an emergency reserve covering at least three months of mandatory expenses.",
	},
	{
		key: FactorLiquidity, label: "Liquidity ratio",
		midpoint: 0.25, steepness: 10, direction: stats.Growth, weight: 0.20,
		recommendation: "Liquid assets are low compared to outstanding debt. Keep more cash available.",
	},
	{
		key: FactorSurplus, label: "Surplus ratio",
		midpoint: 0.10, steepness: 15, direction: stats.Growth, weight: 0.15,
		recommendation: "Little is left after expenses and debt payments. Review discretionary spending.",
	},
	{
		key: FactorDebtBurden, label: "Debt burden ratio",
		midpoint: 0.60, steepness: 5, direction: stats.Decay, weight: 0.15,
		recommendation: "Total debt is high relative to annual income. Avoid taking on new debt.",
	},
}

// Ratios computes the five raw ratios from a profile. Zero income or expenses
// never divide: the ratio falls back to its worst or best sensible value.
func Ratios(p entity.FinancialProfile) map[FactorKey]float64 {
	income := math.Max(0, p.MonthlyIncome)
	expenses := math.Max(0, p.MandatoryExpenses)
	payments := math.Max(0, p.DebtPayments)
	liquid := math.Max(0, p.LiquidAssets)
	debt := math.Max(0, p.TotalDebt)

	debtService := 0.0
	if payments > 0 {
		debtService = stats.SafeDiv(payments, income, 1)
	}

	reserve := stats.SafeDiv(liquid, expenses, 0)
	if expenses <= 0 && liquid > 0 {
		reserve = unboundedRatio
	}

	liquidity := unboundedRatio
	if debt > 0 {
		liquidity = liquid / debt
	}

	surplus := stats.SafeDiv(income-expenses-payments, income, -1)

	burden := 0.0
	if debt > 0 {
		burden = stats.SafeDiv(debt, income*12, unboundedRatio)
	}

	return map[FactorKey]float64{
		FactorDebtService: debtService,
		FactorReserve:     reserve,
		FactorLiquidity:   liquidity,
		FactorSurplus:     surplus,
		FactorDebtBurden:  burden,
	}
}

// Calculate scores a profile. The total always lies in [0, MaxScore].
func Calculate(p entity.FinancialProfile) Score {
	ratios := Ratios(p)

	factors := make([]Factor, 0, len(factorSpecs))
	total := 0.0
	for _, spec := range factorSpecs {
		value := ratios[spec.key]
		score := stats.LogisticScore(value, spec.midpoint, spec.steepness, spec.direction)
		f := Factor{
			Key:          spec.key,
			Label:        spec.label,
			Value:        value,
			Score:        score,
			Weight:       spec.weight,
			Contribution: score * spec.weight * 10,
		}
		if score < RecommendationThreshold {
			f.Recommendation = spec.recommendation
		}
		total += f.Contribution
		factors = append(factors, f)
	}

	sort.SliceStable(factors, func(i, j int) bool {
		if factors[i].Score != factors[j].Score {
			return factors[i].Score < factors[j].Score
		}
		return factors[i].Key < factors[j].Key
	})

	total = stats.Clamp(total, 0, MaxScore)
	return Score{Total: total, Rating: RatingFor(total), Factors: factors}
}

// RatingFor buckets a total score.
func RatingFor(total float64) Rating {
	switch {
	case total >= 900:
		return RatingExcellent
	case total >= 750:
		return RatingGood
	case total >= 600:
		return RatingFair
	case total >= 400:
		return RatingPoor
	default:
		return RatingCritical
	}
}
