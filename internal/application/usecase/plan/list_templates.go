// Package plan contains plan-related use cases.
package plan

import (
	"context"

	planengine "github.com/finance-tracker/analytics/internal/domain/engine/plan"
	"github.com/finance-tracker/analytics/internal/domain/entity"
)

// ListTemplatesInput represents the input for listing plan templates.
type ListTemplatesInput struct {
	Category entity.PlanCategory // Optional filter
}

// ListTemplatesOutput represents the output of listing plan templates.
type ListTemplatesOutput struct {
	Templates []entity.PlanTemplate
}

// ListTemplatesUseCase lists the built-in plan templates.
type ListTemplatesUseCase struct {
	catalog planengine.Catalog
}

// NewListTemplatesUseCase creates a new ListTemplatesUseCase instance.
func NewListTemplatesUseCase(catalog planengine.Catalog) *ListTemplatesUseCase {
	return &ListTemplatesUseCase{
		catalog: catalog,
	}
}

// Execute performs the listing.
func (uc *ListTemplatesUseCase) Execute(ctx context.Context, input ListTemplatesInput) (*ListTemplatesOutput, error) {
	templates := uc.catalog.Templates()
	if input.Category != "" {
		filtered := make([]entity.PlanTemplate, 0, len(templates))
		for _, t := range templates {
			if t.Category == input.Category {
				filtered = append(filtered, t)
			}
		}
		templates = filtered
	}

	return &ListTemplatesOutput{
		Templates: templates,
	}, nil
}
