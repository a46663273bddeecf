// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/finance-tracker/analytics/internal/application/usecase/obligation"
	"github.com/finance-tracker/analytics/internal/domain/entity"
)

// CreateObligationRequest represents the request body for obligation creation.
type CreateObligationRequest struct {
	Name     string  `json:"name" binding:"required"`
	Amount   float64 `json:"amount" binding:"required"`
	DueDay   int     `json:"due_day" binding:"required"`
	Category string  `json:"category,omitempty"`
}

// MarkObligationPaidRequest represents the request body for toggling the paid flag.
type MarkObligationPaidRequest struct {
	Paid *bool `json:"paid" binding:"required"`
}

// ObligationResponse represents a single obligation in API responses.
type ObligationResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Amount    float64   `json:"amount"`
	DueDay    int       `json:"due_day"`
	Category  string    `json:"category"`
	Paid      bool      `json:"paid"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ObligationListResponse represents the response for listing obligations.
type ObligationListResponse struct {
	Obligations []ObligationResponse `json:"obligations"`
	TotalAmount float64              `json:"total_amount"`
	UnpaidTotal float64              `json:"unpaid_total"`
}

// ToObligationResponse converts a domain Obligation entity to an ObligationResponse DTO.
func ToObligationResponse(o *entity.Obligation) ObligationResponse {
	return ObligationResponse{
		ID:        o.ID.String(),
		Name:      o.Name,
		Amount:    Money(o.Amount),
		DueDay:    o.DueDay,
		Category:  string(o.Category),
		Paid:      o.Paid,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

// ToObligationListResponse converts a ListObligationsOutput to an ObligationListResponse DTO.
func ToObligationListResponse(output *obligation.ListObligationsOutput) ObligationListResponse {
	items := make([]ObligationResponse, len(output.Obligations))
	for i, o := range output.Obligations {
		items[i] = ToObligationResponse(o)
	}
	return ObligationListResponse{
		Obligations: items,
		TotalAmount: Money(output.TotalAmount),
		UnpaidTotal: Money(output.UnpaidTotal),
	}
}
