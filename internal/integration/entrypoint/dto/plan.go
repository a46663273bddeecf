// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/finance-tracker/analytics/internal/application/usecase/plan"
	"github.com/finance-tracker/analytics/internal/domain/entity"
)

// CreatePlanRequest represents the request body for creating a plan.
type CreatePlanRequest struct {
	TemplateID string   `json:"template_id" binding:"required"`
	SalaryDay  int      `json:"salary_day" binding:"required"`
	Balance    *float64 `json:"balance,omitempty"`
	StartDate  *string  `json:"start_date,omitempty"`
}

// TogglePlanActionRequest represents the request body for marking an action done.
type TogglePlanActionRequest struct {
	Done *bool `json:"done" binding:"required"`
}

// PlanActionResponse represents a plan action in API responses.
type PlanActionResponse struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Description  string  `json:"description,omitempty"`
	Priority     int     `json:"priority"`
	Source       string  `json:"source"`
	ObligationID *string `json:"obligation_id,omitempty"`
	DueDate      *string `json:"due_date,omitempty"`
	Done         bool    `json:"done"`
}

// PlanRuleResponse represents a plan rule in API responses.
type PlanRuleResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Active      bool   `json:"active"`
}

// PlanResponse represents a plan in API responses.
type PlanResponse struct {
	ID                  string               `json:"id"`
	TemplateID          string               `json:"template_id"`
	Title               string               `json:"title"`
	Category            string               `json:"category"`
	StartDate           string               `json:"start_date"`
	EndDate             string               `json:"end_date"`
	Status              string               `json:"status"`
	RiskLevel           string               `json:"risk_level"`
	AtRiskObligationIDs []string             `json:"at_risk_obligation_ids"`
	Actions             []PlanActionResponse `json:"actions"`
	Rules               []PlanRuleResponse   `json:"rules"`
	CreatedAt           time.Time            `json:"created_at"`
}

// CreatePlanResponse represents the response for plan creation.
type CreatePlanResponse struct {
	Plan PlanResponse `json:"plan"`
	Risk RiskResponse `json:"risk"`
}

// PlanListResponse represents the response for listing plans.
type PlanListResponse struct {
	Plans []PlanResponse `json:"plans"`
}

// TemplateDurationResponse represents a template duration.
type TemplateDurationResponse struct {
	Unit  string `json:"unit"`
	Count int    `json:"count"`
}

// TemplateResponse represents a plan template in API responses.
type TemplateResponse struct {
	ID           string                   `json:"id"`
	Title        string                   `json:"title"`
	Description  string                   `json:"description"`
	Category     string                   `json:"category"`
	Duration     TemplateDurationResponse `json:"duration"`
	ExampleTasks []string                 `json:"example_tasks,omitempty"`
	TaskCount    int                      `json:"task_count"`
	RuleCount    int                      `json:"rule_count"`
}

// TemplateListResponse represents the response for listing plan templates.
type TemplateListResponse struct {
	Templates []TemplateResponse `json:"templates"`
}

// ToPlanActionResponse converts a PlanAction entity to a PlanActionResponse DTO.
func ToPlanActionResponse(a *entity.PlanAction) PlanActionResponse {
	resp := PlanActionResponse{
		ID:          a.ID.String(),
		Title:       a.Title,
		Description: a.Description,
		Priority:    a.Priority,
		Source:      string(a.Source),
		DueDate:     FormatOptionalDate(a.DueDate),
		Done:        a.Done,
	}
	if a.ObligationID != nil {
		id := a.ObligationID.String()
		resp.ObligationID = &id
	}
	return resp
}

// ToPlanResponse converts a PlanWithDetails entity to a PlanResponse DTO.
func ToPlanResponse(details *entity.PlanWithDetails) PlanResponse {
	p := details.Plan

	atRisk := make([]string, len(p.AtRiskObligationIDs))
	for i, id := range p.AtRiskObligationIDs {
		atRisk[i] = id.String()
	}

	actions := make([]PlanActionResponse, len(details.Actions))
	for i, a := range details.Actions {
		actions[i] = ToPlanActionResponse(a)
	}

	rules := make([]PlanRuleResponse, len(details.Rules))
	for i, r := range details.Rules {
		rules[i] = PlanRuleResponse{
			ID:          r.ID.String(),
			Title:       r.Title,
			Description: r.Description,
			Active:      r.Active,
		}
	}

	return PlanResponse{
		ID:                  p.ID.String(),
		TemplateID:          p.TemplateID,
		Title:               p.Title,
		Category:            string(p.Category),
		StartDate:           FormatDate(p.StartDate),
		EndDate:             FormatDate(p.EndDate),
		Status:              string(p.Status),
		RiskLevel:           string(p.RiskLevel),
		AtRiskObligationIDs: atRisk,
		Actions:             actions,
		Rules:               rules,
		CreatedAt:           p.CreatedAt,
	}
}

// ToCreatePlanResponse converts a CreatePlanOutput to a CreatePlanResponse DTO.
func ToCreatePlanResponse(output *plan.CreatePlanOutput) CreatePlanResponse {
	return CreatePlanResponse{
		Plan: ToPlanResponse(output.Plan),
		Risk: toRiskResponse(output.Risk, output.Plan.Plan.StartDate),
	}
}

// ToPlanListResponse converts a ListPlansOutput to a PlanListResponse DTO.
func ToPlanListResponse(output *plan.ListPlansOutput) PlanListResponse {
	plans := make([]PlanResponse, len(output.Plans))
	for i, p := range output.Plans {
		plans[i] = ToPlanResponse(p)
	}
	return PlanListResponse{Plans: plans}
}

// ToTemplateListResponse converts a ListTemplatesOutput to a TemplateListResponse DTO.
func ToTemplateListResponse(output *plan.ListTemplatesOutput) TemplateListResponse {
	templates := make([]TemplateResponse, len(output.Templates))
	for i, t := range output.Templates {
		templates[i] = TemplateResponse{
			ID:          t.ID,
			Title:       t.Title,
			Description: t.Description,
			Category:    string(t.Category),
			Duration: TemplateDurationResponse{
				Unit:  string(t.Duration.Unit),
				Count: t.Duration.Count,
			},
			ExampleTasks: t.ExampleTasks,
			TaskCount:    len(t.TasksBlueprint),
			RuleCount:    len(t.RulesBlueprint),
		}
	}
	return TemplateListResponse{Templates: templates}
}
