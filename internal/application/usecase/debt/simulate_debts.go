// Package debt contains debt payoff use cases.
package debt

import (
	"context"
	"log/slog"
	"time"

	"github.com/finance-tracker/analytics/internal/application/adapter"
	debtengine "github.com/finance-tracker/analytics/internal/domain/engine/debt"
	"github.com/finance-tracker/analytics/internal/domain/entity"
	domainerror "github.com/finance-tracker/analytics/internal/domain/error"
)

const simulateCacheNamespace = "debt:simulate:v1"

// SimulateDebtsInput represents the input for a payoff simulation.
type SimulateDebtsInput struct {
	Debts              []entity.Debt
	Strategy           debtengine.Strategy
	ExtraPayment       float64
	IncludeExplanation bool
}

// SimulateDebtsOutput represents the output of a payoff simulation.
type SimulateDebtsOutput struct {
	Comparison           debtengine.Comparison
	Sensitivity          debtengine.Sensitivity
	NegativeAmortization []string
	Explanation          string
	ExplanationSource    ExplanationSource
	Cached               bool
}

// SimulateDebtsUseCase runs the payoff simulation with its baseline and sensitivity analyses.
type SimulateDebtsUseCase struct {
	cache           adapter.ResultCache
	cacheTTL        time.Duration
	explainer       adapter.ExplanationService
	sensitivityStep float64
}

// NewSimulateDebtsUseCase creates a new SimulateDebtsUseCase instance.
// cache and explainer may be nil.
func NewSimulateDebtsUseCase(
	cache adapter.ResultCache,
	cacheTTL time.Duration,
	explainer adapter.ExplanationService,
	sensitivityStep float64,
) *SimulateDebtsUseCase {
	return &SimulateDebtsUseCase{
		cache:           cache,
		cacheTTL:        cacheTTL,
		explainer:       explainer,
		sensitivityStep: sensitivityStep,
	}
}

// Execute performs the simulation.
func (uc *SimulateDebtsUseCase) Execute(ctx context.Context, input SimulateDebtsInput) (*SimulateDebtsOutput, error) {
	strategy := input.Strategy
	if strategy == "" {
		strategy = debtengine.Avalanche
	}
	if !strategy.IsValid() {
		return nil, domainerror.NewDebtError(
			domainerror.ErrCodeInvalidStrategy,
			"strategy must be 'avalanche' or 'snowball'",
			domainerror.ErrInvalidStrategy,
		)
	}
	input.Strategy = strategy

	if err := validateDebts(input.Debts, input.ExtraPayment); err != nil {
		return nil, err
	}

	key, keyErr := cacheKey(simulateCacheNamespace, struct {
		Input SimulateDebtsInput
		Step  float64
	}{input, uc.sensitivityStep})
	if keyErr == nil && uc.cache != nil {
		var cached SimulateDebtsOutput
		hit, err := uc.cache.Get(ctx, key, &cached)
		if err != nil {
			slog.Warn("Failed to read debt simulation from cache", "error", err)
		} else if hit {
			cached.Cached = true
			return &cached, nil
		}
	}

	comparison := debtengine.Compare(input.Debts, strategy, input.ExtraPayment)
	output := &SimulateDebtsOutput{
		Comparison:           comparison,
		Sensitivity:          debtengine.MarginalSensitivity(input.Debts, strategy, input.ExtraPayment, uc.sensitivityStep),
		NegativeAmortization: debtengine.NegativeAmortization(input.Debts),
	}

	if input.IncludeExplanation {
		output.Explanation, output.ExplanationSource = uc.explain(ctx, summarize(input, output))
	}

	if keyErr == nil && uc.cache != nil {
		if err := uc.cache.Set(ctx, key, output, uc.cacheTTL); err != nil {
			slog.Warn("Failed to store debt simulation in cache", "error", err)
		}
	}

	return output, nil
}

func (uc *SimulateDebtsUseCase) explain(ctx context.Context, summary *adapter.DebtPlanSummary) (string, ExplanationSource) {
	if uc.explainer == nil || !uc.explainer.IsAvailable() {
		return FallbackExplanation(summary), ExplanationSourceFallback
	}

	text, err := uc.explainer.ExplainDebtPlan(ctx, summary)
	if err != nil || text == "" {
		slog.Warn("AI explanation unavailable, using fallback", "error", err, "strategy", summary.Strategy)
		return FallbackExplanation(summary), ExplanationSourceFallback
	}
	return text, ExplanationSourceAI
}

func summarize(input SimulateDebtsInput, output *SimulateDebtsOutput) *adapter.DebtPlanSummary {
	optimized := output.Comparison.Optimized
	return &adapter.DebtPlanSummary{
		Strategy:             string(input.Strategy),
		ExtraPayment:         input.ExtraPayment,
		DebtCount:            len(input.Debts),
		DebtFreeMonth:        optimized.DebtFreeMonth,
		Converged:            optimized.Converged,
		TotalInterest:        optimized.TotalInterest,
		InterestSaved:        output.Comparison.InterestSaved,
		MonthsSaved:          output.Comparison.MonthsSaved,
		PayoffOrder:          optimized.PayoffOrder,
		NegativeAmortization: output.NegativeAmortization,
	}
}
