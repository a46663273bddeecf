package envelope

import (
	"testing"

	"github.com/finance-tracker/analytics/internal/domain/entity"
)

func TestAllocateSurplus(t *testing.T) {
	envelopes := []entity.Envelope{
		{ID: "vacation", Priority: 2, TargetAmount: 3000, CurrentAmount: 1000},
		{ID: "emergency", Priority: 1, TargetAmount: 5000, CurrentAmount: 4500},
		{ID: "car", Priority: 2, TargetAmount: 8000, CurrentAmount: 0, Deadline: daysFromToday(60)},
		{ID: "done", Priority: 0, TargetAmount: 100, CurrentAmount: 100},
	}

	result := AllocateSurplus(envelopes, 1500)

	want := []Allocation{
		{EnvelopeID: "emergency", Amount: 500, Completes: true},
		{EnvelopeID: "car", Amount: 1000, Completes: false},
	}
	if len(result.Allocations) != len(want) {
		t.Fatalf("expected %d allocations, got %+v", len(want), result.Allocations)
	}
	for i, w := range want {
		if result.Allocations[i] != w {
			t.Errorf("allocation %d: got %+v, want %+v", i, result.Allocations[i], w)
		}
	}
	if result.Unallocated != 0 {
		t.Errorf("expected nothing left, got %.2f", result.Unallocated)
	}
}

func TestAllocateSurplus_Leftover(t *testing.T) {
	result := AllocateSurplus([]entity.Envelope{{ID: "a", TargetAmount: 200, CurrentAmount: 50}}, 500)
	if result.Unallocated != 350 {
		t.Errorf("expected 350 unallocated, got %.2f", result.Unallocated)
	}
}
