package envelope

import (
	"math"
	"sort"

	"github.com/finance-tracker/analytics/internal/domain/entity"
)

// Allocation is the share of a surplus assigned to one envelope.
type Allocation struct {
	EnvelopeID string
	Amount     float64
	Completes  bool
}

// AllocationResult lists allocations in funding order and what was left over.
type AllocationResult struct {
	Allocations []Allocation
	Unallocated float64
}

// AllocateSurplus fills envelopes in priority order (lower first, then the
// earliest deadline, then id) until the amount runs out.
func AllocateSurplus(envelopes []entity.Envelope, amount float64) AllocationResult {
	ordered := make([]entity.Envelope, len(envelopes))
	copy(ordered, envelopes)
	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if a.Priority != b.Priority {
			return a.Priority < b.Priority
		}
		switch {
		case a.Deadline != nil && b.Deadline != nil && !a.Deadline.Equal(*b.Deadline):
			return a.Deadline.Before(*b.Deadline)
		case a.Deadline != nil && b.Deadline == nil:
			return true
		case a.Deadline == nil && b.Deadline != nil:
			return false
		}
		return a.ID < b.ID
	})

	left := math.Max(0, amount)
	result := AllocationResult{Allocations: []Allocation{}}
	for _, e := range ordered {
		if left <= 0 {
			break
		}
		need := Remaining(e)
		if need <= 0 {
			continue
		}
		give := math.Min(need, left)
		left -= give
		result.Allocations = append(result.Allocations, Allocation{
			EnvelopeID: e.ID,
			Amount:     give,
			Completes:  give >= need,
		})
	}
	result.Unallocated = left
	return result
}
