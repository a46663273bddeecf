// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ObligationCategory classifies a recurring obligation.
type ObligationCategory string

const (
	ObligationCategoryHousing      ObligationCategory = "housing"
	ObligationCategoryUtilities    ObligationCategory = "utilities"
	ObligationCategoryLoan         ObligationCategory = "loan"
	ObligationCategoryCreditCard   ObligationCategory = "credit_card"
	ObligationCategoryInsurance    ObligationCategory = "insurance"
	ObligationCategorySubscription ObligationCategory = "subscription"
	ObligationCategoryTax          ObligationCategory = "tax"
	ObligationCategoryOther        ObligationCategory = "other"
)

// IsValid reports whether c is one of the known categories.
func (c ObligationCategory) IsValid() bool {
	switch c {
	case ObligationCategoryHousing,
		ObligationCategoryUtilities,
		ObligationCategoryLoan,
		ObligationCategoryCreditCard,
		ObligationCategoryInsurance,
		ObligationCategorySubscription,
		ObligationCategoryTax,
		ObligationCategoryOther:
		return true
	default:
		return false
	}
}

// Obligation represents a recurring monthly payment owed by a user.
type Obligation struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Amount    float64
	DueDay    int // 1..31
	Category  ObligationCategory
	Paid      bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewObligation creates a new unpaid Obligation entity.
func NewObligation(userID uuid.UUID, name string, amount float64, dueDay int, category ObligationCategory) *Obligation {
	now := time.Now().UTC()

	return &Obligation{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Amount:    amount,
		DueDay:    dueDay,
		Category:  category,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
