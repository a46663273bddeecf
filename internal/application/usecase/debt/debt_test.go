// Package debt contains debt payoff use cases.
package debt

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/finance-tracker/analytics/internal/application/adapter"
	debtengine "github.com/finance-tracker/analytics/internal/domain/engine/debt"
	"github.com/finance-tracker/analytics/internal/domain/entity"
	domainerror "github.com/finance-tracker/analytics/internal/domain/error"
)

type memoryCache struct {
	values map[string][]byte
	sets   int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{values: map[string][]byte{}}
}

func (c *memoryCache) Get(_ context.Context, key string, dest any) (bool, error) {
	raw, ok := c.values[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (c *memoryCache) Set(_ context.Context, key string, value any, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.values[key] = raw
	c.sets++
	return nil
}

type stubExplainer struct {
	available bool
	text      string
	err       error
	calls     int
}

func (s *stubExplainer) ExplainDebtPlan(_ context.Context, _ *adapter.DebtPlanSummary) (string, error) {
	s.calls++
	return s.text, s.err
}

func (s *stubExplainer) IsAvailable() bool { return s.available }

func sampleDebts() []entity.Debt {
	return []entity.Debt{
		{ID: "card-a", Balance: 10000, APR: 20, MinPayment: 500},
		{ID: "card-b", Balance: 5000, APR: 30, MinPayment: 300},
	}
}

func TestSimulateDebtsUseCase_Explanation(t *testing.T) {
	tests := []struct {
		name           string
		explainer      *stubExplainer
		expectedSource ExplanationSource
		expectedCalls  int
	}{
		{name: "no explainer", explainer: nil, expectedSource: ExplanationSourceFallback},
		{name: "explainer not configured", explainer: &stubExplainer{}, expectedSource: ExplanationSourceFallback},
		{name: "explainer succeeds", explainer: &stubExplainer{available: true, text: "Pay card-b first."}, expectedSource: ExplanationSourceAI, expectedCalls: 1},
		{name: "explainer fails", explainer: &stubExplainer{available: true, err: errors.New("quota")}, expectedSource: ExplanationSourceFallback, expectedCalls: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var explainer adapter.ExplanationService
			if tt.explainer != nil {
				explainer = tt.explainer
			}
			uc := NewSimulateDebtsUseCase(nil, time.Minute, explainer, 500)

			output, err := uc.Execute(context.Background(), SimulateDebtsInput{
				Debts:              sampleDebts(),
				Strategy:           debtengine.Avalanche,
				ExtraPayment:       1000,
				IncludeExplanation: true,
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if output.ExplanationSource != tt.expectedSource {
				t.Errorf("expected source %s, got %s", tt.expectedSource, output.ExplanationSource)
			}
			if output.Explanation == "" {
				t.Error("expected an explanation")
			}
			if tt.explainer != nil && tt.explainer.calls != tt.expectedCalls {
				t.Errorf("expected %d explainer calls, got %d", tt.expectedCalls, tt.explainer.calls)
			}
		})
	}
}

func TestSimulateDebtsUseCase_Cache(t *testing.T) {
	cache := newMemoryCache()
	uc := NewSimulateDebtsUseCase(cache, time.Minute, nil, 500)
	input := SimulateDebtsInput{Debts: sampleDebts(), Strategy: debtengine.Snowball, ExtraPayment: 200}

	first, err := uc.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Cached {
		t.Error("expected first call to compute")
	}

	second, err := uc.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !second.Cached {
		t.Error("expected second call to be served from cache")
	}
	if second.Comparison.Optimized.DebtFreeMonth != first.Comparison.Optimized.DebtFreeMonth ||
		second.Comparison.Optimized.TotalInterest != first.Comparison.Optimized.TotalInterest {
		t.Error("expected cached result to match the computed one")
	}
	if cache.sets != 1 {
		t.Errorf("expected one cache write, got %d", cache.sets)
	}
}

func TestSimulateDebtsUseCase_Validation(t *testing.T) {
	uc := NewSimulateDebtsUseCase(nil, 0, nil, 0)

	tests := []struct {
		name     string
		input    SimulateDebtsInput
		expected error
	}{
		{name: "unknown strategy", input: SimulateDebtsInput{Debts: sampleDebts(), Strategy: "tornado"}, expected: domainerror.ErrInvalidStrategy},
		{name: "no debts", input: SimulateDebtsInput{}, expected: domainerror.ErrNoDebts},
		{name: "negative extra", input: SimulateDebtsInput{Debts: sampleDebts(), ExtraPayment: -1}, expected: domainerror.ErrInvalidExtraPayment},
		{name: "duplicate ids", input: SimulateDebtsInput{Debts: []entity.Debt{{ID: "a"}, {ID: "a"}}}, expected: domainerror.ErrDuplicateDebtID},
		{name: "missing id", input: SimulateDebtsInput{Debts: []entity.Debt{{Balance: 10}}}, expected: domainerror.ErrMissingDebtID},
		{name: "negative balance", input: SimulateDebtsInput{Debts: []entity.Debt{{ID: "a", Balance: -5}}}, expected: domainerror.ErrInvalidDebtBalance},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.input)
			if !errors.Is(err, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, err)
			}
		})
	}
}

func TestCompareStrategiesUseCase(t *testing.T) {
	cache := newMemoryCache()
	uc := NewCompareStrategiesUseCase(cache, time.Minute)

	output, err := uc.Execute(context.Background(), CompareStrategiesInput{Debts: sampleDebts(), ExtraPayment: 1000})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.Comparison.Recommended != debtengine.Avalanche {
		t.Errorf("expected avalanche, got %s", output.Comparison.Recommended)
	}

	again, _ := uc.Execute(context.Background(), CompareStrategiesInput{Debts: sampleDebts(), ExtraPayment: 1000})
	if !again.Cached {
		t.Error("expected cached comparison")
	}
}

func TestFallbackExplanation(t *testing.T) {
	text := FallbackExplanation(&adapter.DebtPlanSummary{
		Strategy:             "snowball",
		ExtraPayment:         100,
		Converged:            true,
		DebtFreeMonth:        24,
		TotalInterest:        1234.5,
		InterestSaved:        300,
		MonthsSaved:          6,
		PayoffOrder:          []string{"small", "big"},
		NegativeAmortization: []string{"big"},
	})

	for _, want := range []string{"snowball", "24 months", "1234.50", "6 months sooner", "small, big", "Warning"} {
		if !strings.Contains(text, want) {
			t.Errorf("expected %q in %q", want, text)
		}
	}

	stuck := FallbackExplanation(&adapter.DebtPlanSummary{Strategy: "avalanche"})
	if !strings.Contains(stuck, "do not clear") {
		t.Errorf("expected non-convergence warning, got %q", stuck)
	}
}
