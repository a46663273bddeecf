// Package plan contains plan-related use cases.
package plan

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/analytics/internal/application/adapter"
	"github.com/finance-tracker/analytics/internal/application/usecase/risk"
	planengine "github.com/finance-tracker/analytics/internal/domain/engine/plan"
	riskengine "github.com/finance-tracker/analytics/internal/domain/engine/risk"
	"github.com/finance-tracker/analytics/internal/domain/entity"
	domainerror "github.com/finance-tracker/analytics/internal/domain/error"
)

// CreatePlanInput represents the input for creating a plan from a template.
type CreatePlanInput struct {
	UserID     uuid.UUID
	TemplateID string
	SalaryDay  int
	Balance    *float64   // Optional
	StartDate  *time.Time // Optional, defaults to today
}

// CreatePlanOutput represents the output of creating a plan.
type CreatePlanOutput struct {
	Plan *entity.PlanWithDetails
	Risk entity.RiskResult
}

// CreatePlanUseCase builds a plan from the catalog and the user's current risk, then stores it.
type CreatePlanUseCase struct {
	planRepo       adapter.PlanRepository
	obligationRepo adapter.ObligationRepository
	catalog        planengine.Catalog
	now            func() time.Time
}

// NewCreatePlanUseCase creates a new CreatePlanUseCase instance.
func NewCreatePlanUseCase(
	planRepo adapter.PlanRepository,
	obligationRepo adapter.ObligationRepository,
	catalog planengine.Catalog,
	now func() time.Time,
) *CreatePlanUseCase {
	if now == nil {
		now = time.Now
	}
	return &CreatePlanUseCase{
		planRepo:       planRepo,
		obligationRepo: obligationRepo,
		catalog:        catalog,
		now:            now,
	}
}

// Execute performs the plan creation.
func (uc *CreatePlanUseCase) Execute(ctx context.Context, input CreatePlanInput) (*CreatePlanOutput, error) {
	templateID := strings.TrimSpace(input.TemplateID)
	if templateID == "" {
		return nil, domainerror.NewPlanError(
			domainerror.ErrCodeMissingPlanFields,
			"template_id is required",
			domainerror.ErrTemplateIDRequired,
		)
	}
	if input.SalaryDay < 1 || input.SalaryDay > 31 {
		return nil, domainerror.NewRiskError(
			domainerror.ErrCodeInvalidSalaryDay,
			"salary_day must be between 1 and 31",
			domainerror.ErrInvalidSalaryDay,
		)
	}

	now := uc.now().UTC()
	startDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if input.StartDate != nil {
		if input.StartDate.IsZero() {
			return nil, domainerror.NewPlanError(
				domainerror.ErrCodeInvalidPlanStartDate,
				"start_date is invalid",
				domainerror.ErrInvalidPlanStartDate,
			)
		}
		startDate = input.StartDate.UTC()
	}

	unpaid, err := uc.obligationRepo.FindUnpaidByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load obligations: %w", err)
	}
	obligations := risk.Values(unpaid)

	riskResult := riskengine.Classify(riskengine.Input{
		Obligations: obligations,
		SalaryDay:   input.SalaryDay,
		Balance:     input.Balance,
		AsOf:        startDate,
	})

	plan, err := planengine.Generate(uc.catalog, planengine.Input{
		UserID:      input.UserID,
		TemplateID:  templateID,
		StartDate:   startDate,
		CreatedAt:   now,
		Risk:        riskResult,
		Obligations: obligations,
	})
	if err != nil {
		if errors.Is(err, domainerror.ErrPlanTemplateNotFound) {
			return nil, domainerror.NewPlanError(
				domainerror.ErrCodePlanTemplateNotFound,
				fmt.Sprintf("template %q not found", templateID),
				domainerror.ErrPlanTemplateNotFound,
			)
		}
		return nil, fmt.Errorf("failed to generate plan: %w", err)
	}

	if err := uc.planRepo.Create(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to create plan: %w", err)
	}

	slog.Info("Plan created",
		"plan_id", plan.Plan.ID,
		"template_id", templateID,
		"risk_level", riskResult.Level,
		"actions", len(plan.Actions))

	return &CreatePlanOutput{
		Plan: plan,
		Risk: riskResult,
	}, nil
}
