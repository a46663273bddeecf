package entity

import (
	"time"

	"github.com/google/uuid"
)

// PlanCategory groups templates by intent.
type PlanCategory string

const (
	PlanCategoryReserve PlanCategory = "reserve"
	PlanCategoryDebt    PlanCategory = "debt"
	PlanCategoryBudget  PlanCategory = "budget"
	PlanCategorySavings PlanCategory = "savings"
)

// DurationUnit is the unit of a plan template's duration.
type DurationUnit string

const (
	DurationDay     DurationUnit = "day"
	DurationWeek    DurationUnit = "week"
	DurationMonth   DurationUnit = "month"
	DurationQuarter DurationUnit = "quarter"
	DurationYear    DurationUnit = "year"
)

// PlanDuration is how long a plan runs from its start date.
type PlanDuration struct {
	Unit  DurationUnit `yaml:"unit"`
	Count int          `yaml:"count"`
}

// TaskBlueprint is a structured description of a template task.
type TaskBlueprint struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Priority    int    `yaml:"priority"`
	OffsetDays  int    `yaml:"offset_days"`
}

// RuleBlueprint is a structured description of a template behavior rule.
type RuleBlueprint struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// PlanTemplate is read-only catalog data.
type PlanTemplate struct {
	ID             string          `yaml:"id"`
	Title          string          `yaml:"title"`
	Description    string          `yaml:"description"`
	Category       PlanCategory    `yaml:"category"`
	Duration       PlanDuration    `yaml:"duration"`
	ExampleTasks   []string        `yaml:"example_tasks"`
	TasksBlueprint []TaskBlueprint `yaml:"tasks_blueprint"`
	RulesBlueprint []RuleBlueprint `yaml:"rules_blueprint"`
}

// PlanStatus is the lifecycle state of a plan instance.
type PlanStatus string

const (
	PlanStatusActive    PlanStatus = "active"
	PlanStatusCompleted PlanStatus = "completed"
	PlanStatusAbandoned PlanStatus = "abandoned"
)

// PlanInstance is the caller-owned record of an active plan.
type PlanInstance struct {
	ID                  uuid.UUID
	UserID              uuid.UUID
	TemplateID          string
	Title               string
	Category            PlanCategory
	StartDate           time.Time
	EndDate             time.Time
	Status              PlanStatus
	RiskLevel           RiskLevel
	AtRiskObligationIDs []uuid.UUID
	CreatedAt           time.Time
}

// ActionSource records which generation path produced an action.
type ActionSource string

const (
	ActionSourceObligation ActionSource = "obligation"
	ActionSourceRisk       ActionSource = "risk"
	ActionSourceBlueprint  ActionSource = "blueprint"
	ActionSourceExample    ActionSource = "example"
)

// PlanAction is a task generated for a plan.
type PlanAction struct {
	ID           uuid.UUID
	PlanID       uuid.UUID
	Title        string
	Description  string
	Priority     int // 1 is most urgent
	Source       ActionSource
	ObligationID *uuid.UUID
	DueDate      *time.Time
	Done         bool
}

// PlanRule is a behavioral rule generated for a plan.
type PlanRule struct {
	ID          uuid.UUID
	PlanID      uuid.UUID
	Title       string
	Description string
	Active      bool
}

// PlanWithDetails groups a plan instance with its actions and rules.
type PlanWithDetails struct {
	Plan    *PlanInstance
	Actions []*PlanAction
	Rules   []*PlanRule
}
