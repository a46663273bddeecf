// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"fmt"

	"github.com/finance-tracker/analytics/internal/application/usecase/envelope"
	envelopeengine "github.com/finance-tracker/analytics/internal/domain/engine/envelope"
	"github.com/finance-tracker/analytics/internal/domain/entity"
)

// AutoContributionRequest is a recurring contribution rule.
type AutoContributionRequest struct {
	Amount    float64 `json:"amount"`
	Frequency string  `json:"frequency"`
}

// ContributionRequest is a single dated deposit.
type ContributionRequest struct {
	Amount float64 `json:"amount"`
	At     string  `json:"at" binding:"required"`
}

// EnvelopeRequest is a savings envelope in a request.
type EnvelopeRequest struct {
	ID               string                   `json:"id" binding:"required"`
	Name             string                   `json:"name,omitempty"`
	TargetAmount     float64                  `json:"target_amount"`
	CurrentAmount    float64                  `json:"current_amount"`
	Deadline         *string                  `json:"deadline,omitempty"`
	Priority         int                      `json:"priority,omitempty"`
	CreatedAt        *string                  `json:"created_at,omitempty"`
	AutoContribution *AutoContributionRequest `json:"auto_contribution,omitempty"`
	Contributions    []ContributionRequest    `json:"contributions,omitempty"`
	YieldRate        *float64                 `json:"yield_rate,omitempty"`
	YieldFrequency   string                   `json:"yield_frequency,omitempty"`
	Pace             *float64                 `json:"pace,omitempty"`
}

// ToEntity converts the request into a domain envelope.
func (r *EnvelopeRequest) ToEntity() (entity.Envelope, error) {
	deadline, err := ParseOptionalDate(r.Deadline)
	if err != nil {
		return entity.Envelope{}, fmt.Errorf("envelope %s deadline: %w", r.ID, err)
	}
	createdAt, err := ParseOptionalDate(r.CreatedAt)
	if err != nil {
		return entity.Envelope{}, fmt.Errorf("envelope %s created_at: %w", r.ID, err)
	}

	e := entity.Envelope{
		ID:             r.ID,
		Name:           r.Name,
		TargetAmount:   r.TargetAmount,
		CurrentAmount:  r.CurrentAmount,
		Deadline:       deadline,
		Priority:       r.Priority,
		YieldRate:      r.YieldRate,
		YieldFrequency: entity.ContributionFrequency(r.YieldFrequency),
		Contributions:  make([]entity.Contribution, len(r.Contributions)),
	}
	if createdAt != nil {
		e.CreatedAt = *createdAt
	}
	if r.AutoContribution != nil {
		e.AutoContribution = &entity.AutoContribution{
			Amount:    r.AutoContribution.Amount,
			Frequency: entity.ContributionFrequency(r.AutoContribution.Frequency),
		}
	}
	for i, c := range r.Contributions {
		at, err := ParseDate(c.At)
		if err != nil {
			return entity.Envelope{}, fmt.Errorf("envelope %s contributions[%d]: %w", r.ID, i, err)
		}
		e.Contributions[i] = entity.Contribution{Amount: c.Amount, At: at}
	}
	return e, nil
}

// ProjectEnvelopesRequest represents the request body for envelope projections.
type ProjectEnvelopesRequest struct {
	Envelopes []EnvelopeRequest `json:"envelopes" binding:"required,dive"`
	AsOf      *string           `json:"as_of,omitempty"`
}

// ToInput converts the request into use case input.
func (r *ProjectEnvelopesRequest) ToInput() (envelope.ProjectEnvelopesInput, error) {
	asOf, err := ParseOptionalDate(r.AsOf)
	if err != nil {
		return envelope.ProjectEnvelopesInput{}, fmt.Errorf("as_of: %w", err)
	}

	requests := make([]envelope.EnvelopeRequest, len(r.Envelopes))
	for i := range r.Envelopes {
		e, err := r.Envelopes[i].ToEntity()
		if err != nil {
			return envelope.ProjectEnvelopesInput{}, err
		}
		requests[i] = envelope.EnvelopeRequest{Envelope: e, Pace: r.Envelopes[i].Pace}
	}

	return envelope.ProjectEnvelopesInput{Envelopes: requests, AsOf: asOf}, nil
}

// AllocateSurplusRequest represents the request body for a surplus allocation.
type AllocateSurplusRequest struct {
	Amount    float64           `json:"amount"`
	Envelopes []EnvelopeRequest `json:"envelopes" binding:"required,dive"`
}

// ToInput converts the request into use case input.
func (r *AllocateSurplusRequest) ToInput() (envelope.AllocateSurplusInput, error) {
	envelopes := make([]entity.Envelope, len(r.Envelopes))
	for i := range r.Envelopes {
		e, err := r.Envelopes[i].ToEntity()
		if err != nil {
			return envelope.AllocateSurplusInput{}, err
		}
		envelopes[i] = e
	}
	return envelope.AllocateSurplusInput{Envelopes: envelopes, Amount: r.Amount}, nil
}

// InterestPlanResponse is the compounding read-out for an envelope with a yield.
type InterestPlanResponse struct {
	Frequency            string  `json:"frequency"`
	Periods              int     `json:"periods"`
	PeriodRate           float64 `json:"period_rate"`
	RequiredContribution float64 `json:"required_contribution"`
	ProjectedValue       float64 `json:"projected_value"`
}

// ProjectionResponse is the projection of a single envelope.
type ProjectionResponse struct {
	EnvelopeID        string                `json:"envelope_id"`
	Remaining         float64               `json:"remaining"`
	DaysUntilDeadline *int                  `json:"days_until_deadline,omitempty"`
	RequiredDaily     float64               `json:"required_daily"`
	Pace              float64               `json:"pace"`
	Sigma             float64               `json:"sigma"`
	ETADays           int                   `json:"eta_days"`
	OptimisticDays    int                   `json:"optimistic_days"`
	PessimisticDays   int                   `json:"pessimistic_days"`
	ETA               string                `json:"eta"`
	OptimisticETA     string                `json:"optimistic_eta"`
	PessimisticETA    string                `json:"pessimistic_eta"`
	Status            string                `json:"status"`
	Interest          *InterestPlanResponse `json:"interest,omitempty"`
}

// ProjectEnvelopesResponse represents the response for envelope projections.
type ProjectEnvelopesResponse struct {
	Projections []ProjectionResponse `json:"projections"`
	AsOf        string               `json:"as_of"`
}

// ToProjectEnvelopesResponse converts a ProjectEnvelopesOutput to a ProjectEnvelopesResponse DTO.
func ToProjectEnvelopesResponse(output *envelope.ProjectEnvelopesOutput) ProjectEnvelopesResponse {
	projections := make([]ProjectionResponse, len(output.Projections))
	for i, p := range output.Projections {
		projections[i] = toProjectionResponse(p)
	}
	return ProjectEnvelopesResponse{
		Projections: projections,
		AsOf:        FormatDate(output.AsOf),
	}
}

func toProjectionResponse(p envelopeengine.Projection) ProjectionResponse {
	response := ProjectionResponse{
		EnvelopeID:      p.EnvelopeID,
		Remaining:       Money(p.Remaining),
		RequiredDaily:   Money(p.RequiredDaily),
		Pace:            Money(p.Pace),
		Sigma:           Money(p.Sigma),
		ETADays:         p.ETADays,
		OptimisticDays:  p.OptimisticDays,
		PessimisticDays: p.PessimisticDays,
		ETA:             FormatDate(p.ETA),
		OptimisticETA:   FormatDate(p.OptimisticETA),
		PessimisticETA:  FormatDate(p.PessimisticETA),
		Status:          string(p.Status),
	}
	if p.HasDeadline {
		days := p.DaysUntilDeadline
		response.DaysUntilDeadline = &days
	}
	if p.Interest != nil {
		response.Interest = &InterestPlanResponse{
			Frequency:            string(p.Interest.Frequency),
			Periods:              p.Interest.Periods,
			PeriodRate:           p.Interest.PeriodRate,
			RequiredContribution: Money(p.Interest.RequiredContribution),
			ProjectedValue:       Money(p.Interest.ProjectedValue),
		}
	}
	return response
}

// AllocationResponse is the share of a surplus given to one envelope.
type AllocationResponse struct {
	EnvelopeID string  `json:"envelope_id"`
	Amount     float64 `json:"amount"`
	Completes  bool    `json:"completes"`
}

// AllocateSurplusResponse represents the response for a surplus allocation.
type AllocateSurplusResponse struct {
	Allocations []AllocationResponse `json:"allocations"`
	Unallocated float64              `json:"unallocated"`
}

// ToAllocateSurplusResponse converts an AllocateSurplusOutput to an AllocateSurplusResponse DTO.
func ToAllocateSurplusResponse(output *envelope.AllocateSurplusOutput) AllocateSurplusResponse {
	allocations := make([]AllocationResponse, len(output.Result.Allocations))
	for i, a := range output.Result.Allocations {
		allocations[i] = AllocationResponse{
			EnvelopeID: a.EnvelopeID,
			Amount:     Money(a.Amount),
			Completes:  a.Completes,
		}
	}
	return AllocateSurplusResponse{
		Allocations: allocations,
		Unallocated: Money(output.Result.Unallocated),
	}
}
