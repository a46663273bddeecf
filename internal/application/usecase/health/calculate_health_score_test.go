// Package health contains the financial health score use case.
package health

import (
	"context"
	"errors"
	"testing"

	"github.com/finance-tracker/analytics/internal/domain/entity"
	domainerror "github.com/finance-tracker/analytics/internal/domain/error"
)

func TestCalculateHealthScoreUseCase(t *testing.T) {
	uc := NewCalculateHealthScoreUseCase()

	t.Run("valid profile", func(t *testing.T) {
		output, err := uc.Execute(context.Background(), CalculateHealthScoreInput{Profile: entity.FinancialProfile{
			MonthlyIncome: 8000, MandatoryExpenses: 3500, DebtPayments: 800, LiquidAssets: 15000, TotalDebt: 20000,
		}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Score.Total <= 0 || output.Score.Total > 1000 {
			t.Errorf("unexpected total %.2f", output.Score.Total)
		}
		if len(output.Score.Factors) != 5 {
			t.Errorf("expected 5 factors, got %d", len(output.Score.Factors))
		}
	})

	t.Run("negative value", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), CalculateHealthScoreInput{Profile: entity.FinancialProfile{TotalDebt: -1}})
		if !errors.Is(err, domainerror.ErrNegativeProfileValue) {
			t.Errorf("expected ErrNegativeProfileValue, got %v", err)
		}
	})
}
