// Package envelope contains savings envelope use cases.
package envelope

import (
	"context"
	"time"

	envelopeengine "github.com/finance-tracker/analytics/internal/domain/engine/envelope"
	"github.com/finance-tracker/analytics/internal/domain/entity"
	domainerror "github.com/finance-tracker/analytics/internal/domain/error"
)

// EnvelopeRequest pairs an envelope with an optional pace override.
type EnvelopeRequest struct {
	Envelope entity.Envelope
	Pace     *float64 // Optional, daily pace; derived from history when nil
}

// ProjectEnvelopesInput represents the input for envelope projections.
type ProjectEnvelopesInput struct {
	Envelopes []EnvelopeRequest
	AsOf      *time.Time // Optional, defaults to now
}

// ProjectEnvelopesOutput represents the output of envelope projections.
type ProjectEnvelopesOutput struct {
	Projections []envelopeengine.Projection
	AsOf        time.Time
}

// ProjectEnvelopesUseCase projects when each envelope reaches its target.
type ProjectEnvelopesUseCase struct {
	now func() time.Time
}

// NewProjectEnvelopesUseCase creates a new ProjectEnvelopesUseCase instance.
func NewProjectEnvelopesUseCase(now func() time.Time) *ProjectEnvelopesUseCase {
	if now == nil {
		now = time.Now
	}
	return &ProjectEnvelopesUseCase{now: now}
}

// Execute performs the projections.
func (uc *ProjectEnvelopesUseCase) Execute(ctx context.Context, input ProjectEnvelopesInput) (*ProjectEnvelopesOutput, error) {
	envelopes := make([]entity.Envelope, 0, len(input.Envelopes))
	for _, r := range input.Envelopes {
		envelopes = append(envelopes, r.Envelope)
	}
	if err := validateEnvelopes(envelopes); err != nil {
		return nil, err
	}

	asOf := uc.now().UTC()
	if input.AsOf != nil {
		asOf = *input.AsOf
	}

	projections := make([]envelopeengine.Projection, 0, len(input.Envelopes))
	for _, r := range input.Envelopes {
		if r.Pace != nil {
			projections = append(projections, envelopeengine.ProjectWithPace(r.Envelope, asOf, *r.Pace))
			continue
		}
		projections = append(projections, envelopeengine.Project(r.Envelope, asOf))
	}

	return &ProjectEnvelopesOutput{
		Projections: projections,
		AsOf:        asOf,
	}, nil
}

// validateEnvelopes checks fields shared by every envelope use case.
func validateEnvelopes(envelopes []entity.Envelope) error {
	seen := make(map[string]struct{}, len(envelopes))
	for _, e := range envelopes {
		if e.ID == "" {
			return domainerror.NewEnvelopeError(
				domainerror.ErrCodeMissingEnvelopeFields,
				"every envelope needs an id",
				domainerror.ErrMissingEnvelopeID,
			)
		}
		if _, dup := seen[e.ID]; dup {
			return domainerror.NewEnvelopeError(
				domainerror.ErrCodeDuplicateEnvelopeID,
				"envelope ids must be unique",
				domainerror.ErrDuplicateEnvelopeID,
			)
		}
		seen[e.ID] = struct{}{}

		if e.TargetAmount <= 0 {
			return domainerror.NewEnvelopeError(
				domainerror.ErrCodeInvalidEnvelopeTarget,
				"target_amount must be greater than zero",
				domainerror.ErrInvalidEnvelopeTarget,
			)
		}

		if e.AutoContribution != nil && !isValidFrequency(e.AutoContribution.Frequency) {
			return invalidFrequency()
		}
		if e.YieldFrequency != "" && e.YieldFrequency != entity.FrequencyDaily && e.YieldFrequency != entity.FrequencyMonthly {
			return invalidFrequency()
		}
	}
	return nil
}

func isValidFrequency(f entity.ContributionFrequency) bool {
	return f == entity.FrequencyDaily || f == entity.FrequencyWeekly || f == entity.FrequencyMonthly
}

func invalidFrequency() error {
	return domainerror.NewEnvelopeError(
		domainerror.ErrCodeInvalidContributionFrequency,
		"frequency must be 'daily', 'weekly' or 'monthly' (yield: 'daily' or 'monthly')",
		domainerror.ErrInvalidContributionFrequency,
	)
}
