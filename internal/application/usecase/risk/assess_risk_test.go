// Package risk contains the cash-flow risk use case.
package risk

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/analytics/internal/domain/entity"
	domainerror "github.com/finance-tracker/analytics/internal/domain/error"
)

type stubObligationRepository struct {
	unpaid []*entity.Obligation
	err    error
}

func (s *stubObligationRepository) Create(context.Context, *entity.Obligation) error { return nil }
func (s *stubObligationRepository) FindByID(context.Context, uuid.UUID) (*entity.Obligation, error) {
	return nil, domainerror.ErrObligationNotFound
}
func (s *stubObligationRepository) FindByUserID(context.Context, uuid.UUID) ([]*entity.Obligation, error) {
	return s.unpaid, s.err
}
func (s *stubObligationRepository) FindUnpaidByUserID(context.Context, uuid.UUID) ([]*entity.Obligation, error) {
	return s.unpaid, s.err
}
func (s *stubObligationRepository) Update(context.Context, *entity.Obligation) error { return nil }

func TestAssessRiskUseCase(t *testing.T) {
	fixedNow := time.Date(2024, time.June, 5, 9, 0, 0, 0, time.UTC)
	repo := &stubObligationRepository{unpaid: []*entity.Obligation{
		{ID: uuid.New(), Name: "Card", Amount: 8000, DueDay: 8},
	}}
	uc := NewAssessRiskUseCase(repo, func() time.Time { return fixedNow })

	tests := []struct {
		name     string
		balance  float64
		expected entity.RiskLevel
	}{
		{name: "more than half the balance", balance: 10000, expected: entity.RiskLevelMedium},
		{name: "exceeds the balance", balance: 5000, expected: entity.RiskLevelHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			balance := tt.balance
			output, err := uc.Execute(context.Background(), AssessRiskInput{UserID: uuid.New(), SalaryDay: 10, Balance: &balance})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if output.Result.Level != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, output.Result.Level)
			}
			if !output.AsOf.Equal(fixedNow) {
				t.Errorf("expected injected clock, got %s", output.AsOf)
			}
		})
	}
}

func TestAssessRiskUseCase_Errors(t *testing.T) {
	t.Run("invalid salary day", func(t *testing.T) {
		uc := NewAssessRiskUseCase(&stubObligationRepository{}, nil)
		_, err := uc.Execute(context.Background(), AssessRiskInput{SalaryDay: 0})

		var riskErr *domainerror.RiskError
		if !errors.As(err, &riskErr) || riskErr.Code != domainerror.ErrCodeInvalidSalaryDay {
			t.Errorf("expected invalid salary day error, got %v", err)
		}
	})

	t.Run("repository failure", func(t *testing.T) {
		uc := NewAssessRiskUseCase(&stubObligationRepository{err: errors.New("db down")}, nil)
		if _, err := uc.Execute(context.Background(), AssessRiskInput{SalaryDay: 5}); err == nil {
			t.Error("expected error")
		}
	})
}
