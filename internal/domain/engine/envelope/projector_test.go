package envelope

import (
	"math"
	"testing"
	"time"

	"github.com/finance-tracker/analytics/internal/domain/entity"
)

var today = time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

func daysFromToday(n int) *time.Time {
	d := today.AddDate(0, 0, n)
	return &d
}

func TestProjectWithPace_Scenario(t *testing.T) {
	e := entity.Envelope{
		ID:            "house",
		TargetAmount:  100000,
		CurrentAmount: 27000,
		Deadline:      daysFromToday(180),
	}

	p := ProjectWithPace(e, today, 500)

	if math.Abs(p.RequiredDaily-73000.0/180.0) > 1e-9 {
		t.Errorf("expected required daily ~405.6, got %.4f", p.RequiredDaily)
	}
	if p.ETADays != 146 {
		t.Errorf("expected ETA 146 days, got %d", p.ETADays)
	}
	if p.Status != StatusOnTrack {
		t.Errorf("expected onTrack, got %s", p.Status)
	}
	if !p.ETA.Equal(today.AddDate(0, 0, 146)) {
		t.Errorf("unexpected ETA date %s", p.ETA)
	}
}

// Sigma is a fixed share of pace, not a sample deviation; this pins the
// approximation so a change to it is deliberate.
func TestProjectWithPace_VolatilityApproximation(t *testing.T) {
	e := entity.Envelope{TargetAmount: 1300, CurrentAmount: 0}
	p := ProjectWithPace(e, today, 100)

	if math.Abs(p.Sigma-30) > 1e-9 {
		t.Errorf("expected sigma 0.3 x pace = 30, got %.4f", p.Sigma)
	}
	if p.OptimisticDays != 10 {
		t.Errorf("expected optimistic 10 days at 130/day, got %d", p.OptimisticDays)
	}
	if p.PessimisticDays != 19 {
		t.Errorf("expected pessimistic 19 days at 70/day, got %d", p.PessimisticDays)
	}
	if p.ETADays != 13 {
		t.Errorf("expected 13 days, got %d", p.ETADays)
	}
}

func TestDaysUntilDeadline(t *testing.T) {
	tests := []struct {
		name        string
		deadline    *time.Time
		wantDays    int
		wantBounded bool
	}{
		{name: "no deadline", deadline: nil, wantDays: 0, wantBounded: false},
		{name: "passed", deadline: daysFromToday(-3), wantDays: 0, wantBounded: true},
		{name: "partial day rounds up", deadline: func() *time.Time { d := today.Add(30 * time.Hour); return &d }(), wantDays: 2, wantBounded: true},
		{name: "whole days", deadline: daysFromToday(10), wantDays: 10, wantBounded: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days, bounded := DaysUntilDeadline(tt.deadline, today)
			if days != tt.wantDays || bounded != tt.wantBounded {
				t.Errorf("got (%d, %v), want (%d, %v)", days, bounded, tt.wantDays, tt.wantBounded)
			}
		})
	}
}

func TestRequiredDaily_NoDeadlineOrPassed(t *testing.T) {
	if got := RequiredDaily(1000, 0, false); got != 0 {
		t.Errorf("expected 0 without deadline, got %.2f", got)
	}
	if got := RequiredDaily(1000, 0, true); got != 0 {
		t.Errorf("expected 0 for a passed deadline, got %.2f", got)
	}
}

func TestClassifyStatus(t *testing.T) {
	tests := []struct {
		eta, deadline int
		bounded       bool
		want          Status
	}{
		{eta: 100, deadline: 100, bounded: true, want: StatusOnTrack},
		{eta: 120, deadline: 100, bounded: true, want: StatusAtRisk},
		{eta: 121, deadline: 100, bounded: true, want: StatusBehind},
		{eta: MaxETADays, deadline: 0, bounded: false, want: StatusOnTrack},
		{eta: 5, deadline: 0, bounded: true, want: StatusBehind},
	}

	for _, tt := range tests {
		if got := ClassifyStatus(tt.eta, tt.deadline, tt.bounded); got != tt.want {
			t.Errorf("ClassifyStatus(%d, %d, %v) = %s, want %s", tt.eta, tt.deadline, tt.bounded, got, tt.want)
		}
	}
}

func TestETADays_ZeroPaceIsCapped(t *testing.T) {
	if got := ETADays(500, 0); got != MaxETADays {
		t.Errorf("expected cap %d, got %d", MaxETADays, got)
	}
	if got := ETADays(0, 0); got != 0 {
		t.Errorf("expected 0 when nothing remains, got %d", got)
	}
}

func TestHistoricalPace(t *testing.T) {
	e := entity.Envelope{
		CurrentAmount: 900,
		CreatedAt:     today.AddDate(0, 0, -10),
		Contributions: []entity.Contribution{
			{Amount: 400, At: today.AddDate(0, 0, -9)},
			{Amount: 600, At: today.AddDate(0, 0, -2)},
		},
	}
	if got := HistoricalPace(e, today); math.Abs(got-100) > 1e-9 {
		t.Errorf("expected 100/day, got %.4f", got)
	}

	fresh := entity.Envelope{
		CreatedAt:        today,
		AutoContribution: &entity.AutoContribution{Amount: 70, Frequency: entity.FrequencyWeekly},
	}
	if got := HistoricalPace(fresh, today); math.Abs(got-10) > 1e-9 {
		t.Errorf("expected auto-contribution pace 10/day, got %.4f", got)
	}
}

func TestProject_WithoutCreatedAt(t *testing.T) {
	tests := []struct {
		name       string
		rule       *entity.AutoContribution
		wantPace   float64
		wantETA    int
		wantStatus Status
	}{
		{
			name:       "no auto-contribution rule",
			wantPace:   0,
			wantETA:    MaxETADays,
			wantStatus: StatusBehind,
		},
		{
			name:       "monthly auto-contribution rule",
			rule:       &entity.AutoContribution{Amount: 365, Frequency: entity.FrequencyMonthly},
			wantPace:   12,
			wantETA:    6084,
			wantStatus: StatusBehind,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := entity.Envelope{
				ID:               "house",
				TargetAmount:     100000,
				CurrentAmount:    27000,
				Deadline:         daysFromToday(180),
				AutoContribution: tt.rule,
			}

			p := Project(e, today)

			if math.Abs(p.Pace-tt.wantPace) > 1e-9 {
				t.Errorf("expected pace %.2f, got %.2f", tt.wantPace, p.Pace)
			}
			if p.ETADays != tt.wantETA {
				t.Errorf("expected eta %d days, got %d", tt.wantETA, p.ETADays)
			}
			if p.Status != tt.wantStatus {
				t.Errorf("expected status %s, got %s", tt.wantStatus, p.Status)
			}
		})
	}
}

func TestAutoContributionDaily(t *testing.T) {
	monthly := &entity.AutoContribution{Amount: 365, Frequency: entity.FrequencyMonthly}
	if got := AutoContributionDaily(monthly); math.Abs(got-12) > 1e-9 {
		t.Errorf("expected 12/day, got %.4f", got)
	}
	if got := AutoContributionDaily(nil); got != 0 {
		t.Errorf("expected 0 without a rule, got %.4f", got)
	}
}

func TestProject_Deterministic(t *testing.T) {
	e := entity.Envelope{ID: "a", TargetAmount: 5000, CurrentAmount: 1000, CreatedAt: today.AddDate(0, -2, 0), Deadline: daysFromToday(90)}
	if Project(e, today) != Project(e, today) {
		t.Errorf("expected identical projections")
	}
}
