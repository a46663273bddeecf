// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/analytics/internal/domain/entity"
)

// PlanModel represents the plans table in the database.
type PlanModel struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID              uuid.UUID `gorm:"type:uuid;not null;index"`
	TemplateID          string    `gorm:"type:varchar(100);not null"`
	Title               string    `gorm:"type:varchar(255);not null"`
	Category            string    `gorm:"type:varchar(20);not null"`
	StartDate           time.Time `gorm:"not null"`
	EndDate             time.Time `gorm:"not null"`
	Status              string    `gorm:"type:varchar(20);not null;default:'active'"`
	RiskLevel           string    `gorm:"type:varchar(10);not null"`
	AtRiskObligationIDs IDList
	CreatedAt           time.Time `gorm:"not null;index"`

	// Relationships (loaded with Preload)
	Actions []PlanActionModel `gorm:"foreignKey:PlanID;references:ID;constraint:OnDelete:CASCADE"`
	Rules   []PlanRuleModel   `gorm:"foreignKey:PlanID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for the PlanModel.
func (PlanModel) TableName() string {
	return "plans"
}

// PlanActionModel represents the plan_actions table in the database.
type PlanActionModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	PlanID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	Position     int        `gorm:"not null"`
	Title        string     `gorm:"type:varchar(255);not null"`
	Description  string     `gorm:"type:text"`
	Priority     int        `gorm:"not null"`
	Source       string     `gorm:"type:varchar(20);not null"`
	ObligationID *uuid.UUID `gorm:"type:uuid"`
	DueDate      *time.Time `gorm:"index"`
	Done         bool       `gorm:"not null;default:false"`
}

// TableName returns the table name for the PlanActionModel.
func (PlanActionModel) TableName() string {
	return "plan_actions"
}

// PlanRuleModel represents the plan_rules table in the database.
type PlanRuleModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	PlanID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Position    int       `gorm:"not null"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	Active      bool      `gorm:"not null;default:true"`
}

// TableName returns the table name for the PlanRuleModel.
func (PlanRuleModel) TableName() string {
	return "plan_rules"
}

// ToEntity converts a PlanModel with its preloaded actions and rules to a domain entity.
// Actions and rules are returned in generation order.
func (m *PlanModel) ToEntity() *entity.PlanWithDetails {
	plan := &entity.PlanInstance{
		ID:                  m.ID,
		UserID:              m.UserID,
		TemplateID:          m.TemplateID,
		Title:               m.Title,
		Category:            entity.PlanCategory(m.Category),
		StartDate:           m.StartDate,
		EndDate:             m.EndDate,
		Status:              entity.PlanStatus(m.Status),
		RiskLevel:           entity.RiskLevel(m.RiskLevel),
		AtRiskObligationIDs: m.AtRiskObligationIDs.UUIDs(),
		CreatedAt:           m.CreatedAt,
	}

	actions := make([]*entity.PlanAction, len(m.Actions))
	for i := range m.Actions {
		actions[i] = m.Actions[i].ToEntity()
	}
	rules := make([]*entity.PlanRule, len(m.Rules))
	for i := range m.Rules {
		rules[i] = m.Rules[i].ToEntity()
	}

	return &entity.PlanWithDetails{
		Plan:    plan,
		Actions: actions,
		Rules:   rules,
	}
}

// ToEntity converts a PlanActionModel to a domain PlanAction entity.
func (m *PlanActionModel) ToEntity() *entity.PlanAction {
	return &entity.PlanAction{
		ID:           m.ID,
		PlanID:       m.PlanID,
		Title:        m.Title,
		Description:  m.Description,
		Priority:     m.Priority,
		Source:       entity.ActionSource(m.Source),
		ObligationID: m.ObligationID,
		DueDate:      m.DueDate,
		Done:         m.Done,
	}
}

// ToEntity converts a PlanRuleModel to a domain PlanRule entity.
func (m *PlanRuleModel) ToEntity() *entity.PlanRule {
	return &entity.PlanRule{
		ID:          m.ID,
		PlanID:      m.PlanID,
		Title:       m.Title,
		Description: m.Description,
		Active:      m.Active,
	}
}

// PlanFromEntity creates a PlanModel, including actions and rules, from a domain entity.
func PlanFromEntity(details *entity.PlanWithDetails) *PlanModel {
	p := details.Plan
	model := &PlanModel{
		ID:                  p.ID,
		UserID:              p.UserID,
		TemplateID:          p.TemplateID,
		Title:               p.Title,
		Category:            string(p.Category),
		StartDate:           p.StartDate,
		EndDate:             p.EndDate,
		Status:              string(p.Status),
		RiskLevel:           string(p.RiskLevel),
		AtRiskObligationIDs: IDListFrom(p.AtRiskObligationIDs),
		CreatedAt:           p.CreatedAt,
		Actions:             make([]PlanActionModel, len(details.Actions)),
		Rules:               make([]PlanRuleModel, len(details.Rules)),
	}

	for i, a := range details.Actions {
		model.Actions[i] = *PlanActionFromEntity(a, i)
	}
	for i, r := range details.Rules {
		model.Rules[i] = PlanRuleModel{
			ID:          r.ID,
			PlanID:      r.PlanID,
			Position:    i,
			Title:       r.Title,
			Description: r.Description,
			Active:      r.Active,
		}
	}

	return model
}

// PlanActionFromEntity creates a PlanActionModel from a domain PlanAction at the given position.
func PlanActionFromEntity(action *entity.PlanAction, position int) *PlanActionModel {
	return &PlanActionModel{
		ID:           action.ID,
		PlanID:       action.PlanID,
		Position:     position,
		Title:        action.Title,
		Description:  action.Description,
		Priority:     action.Priority,
		Source:       string(action.Source),
		ObligationID: action.ObligationID,
		DueDate:      action.DueDate,
		Done:         action.Done,
	}
}
