// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/analytics/internal/domain/entity"
)

// ObligationModel represents the obligations table in the database.
type ObligationModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Amount    float64   `gorm:"type:decimal(15,2);not null"`
	DueDay    int       `gorm:"not null"`
	Category  string    `gorm:"type:varchar(20);not null;default:'other'"`
	Paid      bool      `gorm:"not null;default:false;index"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the ObligationModel.
func (ObligationModel) TableName() string {
	return "obligations"
}

// ToEntity converts an ObligationModel to a domain Obligation entity.
func (m *ObligationModel) ToEntity() *entity.Obligation {
	return &entity.Obligation{
		ID:        m.ID,
		UserID:    m.UserID,
		Name:      m.Name,
		Amount:    m.Amount,
		DueDay:    m.DueDay,
		Category:  entity.ObligationCategory(m.Category),
		Paid:      m.Paid,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// ObligationFromEntity creates an ObligationModel from a domain Obligation entity.
func ObligationFromEntity(obligation *entity.Obligation) *ObligationModel {
	return &ObligationModel{
		ID:        obligation.ID,
		UserID:    obligation.UserID,
		Name:      obligation.Name,
		Amount:    obligation.Amount,
		DueDay:    obligation.DueDay,
		Category:  string(obligation.Category),
		Paid:      obligation.Paid,
		CreatedAt: obligation.CreatedAt,
		UpdatedAt: obligation.UpdatedAt,
	}
}
