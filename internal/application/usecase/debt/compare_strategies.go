// Package debt contains debt payoff use cases.
package debt

import (
	"context"
	"log/slog"
	"time"

	"github.com/finance-tracker/analytics/internal/application/adapter"
	debtengine "github.com/finance-tracker/analytics/internal/domain/engine/debt"
	"github.com/finance-tracker/analytics/internal/domain/entity"
)

const compareCacheNamespace = "debt:compare:v1"

// CompareStrategiesInput represents the input for an avalanche versus snowball comparison.
type CompareStrategiesInput struct {
	Debts        []entity.Debt
	ExtraPayment float64
}

// CompareStrategiesOutput represents the output of a strategy comparison.
type CompareStrategiesOutput struct {
	Comparison debtengine.StrategyComparison
	Cached     bool
}

// CompareStrategiesUseCase simulates both payoff strategies side by side.
type CompareStrategiesUseCase struct {
	cache    adapter.ResultCache
	cacheTTL time.Duration
}

// NewCompareStrategiesUseCase creates a new CompareStrategiesUseCase instance. cache may be nil.
func NewCompareStrategiesUseCase(cache adapter.ResultCache, cacheTTL time.Duration) *CompareStrategiesUseCase {
	return &CompareStrategiesUseCase{
		cache:    cache,
		cacheTTL: cacheTTL,
	}
}

// Execute performs the comparison.
func (uc *CompareStrategiesUseCase) Execute(ctx context.Context, input CompareStrategiesInput) (*CompareStrategiesOutput, error) {
	if err := validateDebts(input.Debts, input.ExtraPayment); err != nil {
		return nil, err
	}

	key, keyErr := cacheKey(compareCacheNamespace, input)
	if keyErr == nil && uc.cache != nil {
		var cached CompareStrategiesOutput
		hit, err := uc.cache.Get(ctx, key, &cached)
		if err != nil {
			slog.Warn("Failed to read strategy comparison from cache", "error", err)
		} else if hit {
			cached.Cached = true
			return &cached, nil
		}
	}

	output := &CompareStrategiesOutput{
		Comparison: debtengine.CompareStrategies(input.Debts, input.ExtraPayment),
	}

	if keyErr == nil && uc.cache != nil {
		if err := uc.cache.Set(ctx, key, output, uc.cacheTTL); err != nil {
			slog.Warn("Failed to store strategy comparison in cache", "error", err)
		}
	}

	return output, nil
}
