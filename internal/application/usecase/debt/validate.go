// Package debt contains debt payoff use cases.
package debt

import (
	"strings"

	"github.com/finance-tracker/analytics/internal/domain/entity"
	domainerror "github.com/finance-tracker/analytics/internal/domain/error"
)

// validateDebts checks the debt list shared by every debt use case.
func validateDebts(debts []entity.Debt, extra float64) error {
	if len(debts) == 0 {
		return domainerror.NewDebtError(
			domainerror.ErrCodeNoDebts,
			"at least one debt is required",
			domainerror.ErrNoDebts,
		)
	}

	if extra < 0 {
		return domainerror.NewDebtError(
			domainerror.ErrCodeInvalidExtraPayment,
			"extra_payment must not be negative",
			domainerror.ErrInvalidExtraPayment,
		)
	}

	seen := make(map[string]struct{}, len(debts))
	for _, d := range debts {
		if strings.TrimSpace(d.ID) == "" {
			return domainerror.NewDebtError(
				domainerror.ErrCodeMissingDebtFields,
				"every debt needs an id",
				domainerror.ErrMissingDebtID,
			)
		}
		if _, dup := seen[d.ID]; dup {
			return domainerror.NewDebtError(
				domainerror.ErrCodeDuplicateDebtID,
				"debt ids must be unique",
				domainerror.ErrDuplicateDebtID,
			)
		}
		seen[d.ID] = struct{}{}

		if d.Balance < 0 {
			return domainerror.NewDebtError(
				domainerror.ErrCodeInvalidDebtBalance,
				"balance must not be negative",
				domainerror.ErrInvalidDebtBalance,
			)
		}
		if d.MinPayment < 0 {
			return domainerror.NewDebtError(
				domainerror.ErrCodeInvalidMinPayment,
				"min_payment must not be negative",
				domainerror.ErrInvalidMinPayment,
			)
		}
	}
	return nil
}
