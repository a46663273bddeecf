package settlement

import (
	"errors"
	"math"
	"testing"

	"github.com/finance-tracker/analytics/internal/domain/entity"
	domainerror "github.com/finance-tracker/analytics/internal/domain/error"
)

// unknownSplit satisfies entity.Split without being one of its known variants.
type unknownSplit struct {
	entity.EqualSplit
}

func group() []entity.Member {
	return []entity.Member{
		{ID: "ana", Name: "Ana", IncomeWeight: 6000},
		{ID: "bruno", Name: "Bruno", IncomeWeight: 3000},
		{ID: "carla", Name: "Carla", IncomeWeight: 1000},
	}
}

func shareOf(shares []Share, id string) float64 {
	for _, s := range shares {
		if s.MemberID == id {
			return s.Amount
		}
	}
	return 0
}

func TestShares(t *testing.T) {
	tests := []struct {
		name    string
		tx      entity.SharedTransaction
		want    map[string]float64
		wantErr error
	}{
		{
			name: "equal across all members",
			tx:   entity.SharedTransaction{ID: "t1", PaidBy: "ana", Amount: 300, Split: entity.EqualSplit{}},
			want: map[string]float64{"ana": 100, "bruno": 100, "carla": 100},
		},
		{
			name: "nil split is equal",
			tx:   entity.SharedTransaction{ID: "t1", PaidBy: "ana", Amount: 90, Participants: []string{"ana", "carla"}},
			want: map[string]float64{"ana": 45, "carla": 45, "bruno": 0},
		},
		{
			name: "weighted by income",
			tx:   entity.SharedTransaction{ID: "t2", PaidBy: "bruno", Amount: 1000, Split: entity.WeightedSplit{}},
			want: map[string]float64{"ana": 600, "bruno": 300, "carla": 100},
		},
		{
			name: "exact amounts",
			tx: entity.SharedTransaction{ID: "t3", PaidBy: "carla", Amount: 100, Split: entity.ExactSplit{
				Amounts: map[string]float64{"ana": 70, "bruno": 20, "carla": 10},
			}},
			want: map[string]float64{"ana": 70, "bruno": 20, "carla": 10},
		},
		{
			name: "percentages",
			tx: entity.SharedTransaction{ID: "t4", PaidBy: "ana", Amount: 200, Split: entity.PercentageSplit{
				Percents: map[string]float64{"ana": 50, "bruno": 25, "carla": 25},
			}},
			want: map[string]float64{"ana": 100, "bruno": 50, "carla": 50},
		},
		{
			name: "exact mismatch",
			tx: entity.SharedTransaction{ID: "t5", PaidBy: "ana", Amount: 100, Split: entity.ExactSplit{
				Amounts: map[string]float64{"ana": 70, "bruno": 20},
			}},
			wantErr: domainerror.ErrExactSplitMismatch,
		},
		{
			name: "percentages not totalling 100",
			tx: entity.SharedTransaction{ID: "t6", PaidBy: "ana", Amount: 100, Split: entity.PercentageSplit{
				Percents: map[string]float64{"ana": 50, "bruno": 40},
			}},
			wantErr: domainerror.ErrPercentageSplitMismatch,
		},
		{
			name:    "unknown participant",
			tx:      entity.SharedTransaction{ID: "t7", PaidBy: "ana", Amount: 100, Participants: []string{"ana", "zed"}},
			wantErr: domainerror.ErrUnknownMember,
		},
		{
			name:    "unknown split variant",
			tx:      entity.SharedTransaction{ID: "t8", PaidBy: "ana", Amount: 100, Split: unknownSplit{}},
			wantErr: domainerror.ErrInvalidSplit,
		},
		{
			name:    "non-positive amount",
			tx:      entity.SharedTransaction{ID: "t9", PaidBy: "ana", Amount: 0},
			wantErr: domainerror.ErrInvalidSharedAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shares, err := Shares(tt.tx, group())
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for id, want := range tt.want {
				if got := shareOf(shares, id); math.Abs(got-want) > 1e-9 {
					t.Errorf("%s: expected share %.2f, got %.2f", id, want, got)
				}
			}
		})
	}
}

func TestShares_WeightedFallsBackToEqual(t *testing.T) {
	members := []entity.Member{{ID: "a"}, {ID: "b"}}
	shares, err := Shares(entity.SharedTransaction{ID: "t", PaidBy: "a", Amount: 50, Split: entity.WeightedSplit{}}, members)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if shareOf(shares, "a") != 25 || shareOf(shares, "b") != 25 {
		t.Errorf("expected equal shares, got %+v", shares)
	}
}

func TestSolve_TransfersReproduceBalances(t *testing.T) {
	members := []entity.Member{
		{ID: "a", IncomeWeight: 1}, {ID: "b", IncomeWeight: 2}, {ID: "c", IncomeWeight: 3},
		{ID: "d", IncomeWeight: 4}, {ID: "e", IncomeWeight: 5},
	}
	txs := []entity.SharedTransaction{
		{ID: "rent", PaidBy: "a", Amount: 2500, Split: entity.WeightedSplit{}},
		{ID: "food", PaidBy: "b", Amount: 430.55},
		{ID: "trip", PaidBy: "c", Amount: 1200, Participants: []string{"c", "d", "e"}},
		{ID: "gift", PaidBy: "e", Amount: 90, Split: entity.PercentageSplit{Percents: map[string]float64{"a": 10, "b": 20, "c": 30, "d": 40}}},
		{ID: "bill", PaidBy: "d", Amount: 77.77, Split: entity.ExactSplit{Amounts: map[string]float64{"a": 7.77, "e": 70}}},
	}

	result, err := Solve(members, txs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Transfers) > len(members)-1 {
		t.Errorf("expected at most %d transfers, got %d", len(members)-1, len(result.Transfers))
	}

	flow := map[string]float64{}
	for _, tr := range result.Transfers {
		if tr.Amount <= 0 {
			t.Errorf("non-positive transfer %+v", tr)
		}
		flow[tr.From] += tr.Amount
		flow[tr.To] -= tr.Amount
	}

	netSum := 0.0
	for _, b := range result.Balances {
		netSum += b.Net
		if residue := b.Net + flow[b.MemberID]; math.Abs(residue) > 2*Epsilon {
			t.Errorf("%s: balance %.4f not reproduced by transfers (residue %.4f)", b.MemberID, b.Net, residue)
		}
	}
	if math.Abs(netSum) > 1e-6 {
		t.Errorf("expected balances to sum to zero, got %.6f", netSum)
	}
}

func TestSettle_LargestFirst(t *testing.T) {
	transfers := Settle([]Balance{
		{MemberID: "x", Net: -30},
		{MemberID: "y", Net: -70},
		{MemberID: "z", Net: 100},
	})

	want := []Transfer{{From: "y", To: "z", Amount: 70}, {From: "x", To: "z", Amount: 30}}
	if len(transfers) != len(want) {
		t.Fatalf("expected %d transfers, got %+v", len(want), transfers)
	}
	for i := range want {
		if transfers[i] != want[i] {
			t.Errorf("transfer %d: got %+v, want %+v", i, transfers[i], want[i])
		}
	}
}

func TestSolve_Errors(t *testing.T) {
	if _, err := Solve(nil, nil); !errors.Is(err, domainerror.ErrNoMembers) {
		t.Errorf("expected ErrNoMembers, got %v", err)
	}

	_, err := Solve(group(), []entity.SharedTransaction{{ID: "t", PaidBy: "zed", Amount: 10}})
	if !errors.Is(err, domainerror.ErrUnknownMember) {
		t.Errorf("expected ErrUnknownMember for an outside payer, got %v", err)
	}
}
