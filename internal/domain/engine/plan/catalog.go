package plan

import "github.com/finance-tracker/analytics/internal/domain/entity"

// Catalog is an immutable set of plan templates keyed by id.
type Catalog struct {
	templates []entity.PlanTemplate
	byID      map[string]int
}

// NewCatalog copies templates into a catalog. Later duplicates of an id are ignored.
func NewCatalog(templates []entity.PlanTemplate) Catalog {
	c := Catalog{
		templates: make([]entity.PlanTemplate, 0, len(templates)),
		byID:      make(map[string]int, len(templates)),
	}
	for _, t := range templates {
		if _, exists := c.byID[t.ID]; exists {
			continue
		}
		c.byID[t.ID] = len(c.templates)
		c.templates = append(c.templates, t)
	}
	return c
}

// Lookup returns the template with the given id.
func (c Catalog) Lookup(id string) (entity.PlanTemplate, bool) {
	i, ok := c.byID[id]
	if !ok {
		return entity.PlanTemplate{}, false
	}
	return c.templates[i], true
}

// Templates returns every template in catalog order.
func (c Catalog) Templates() []entity.PlanTemplate {
	out := make([]entity.PlanTemplate, len(c.templates))
	copy(out, c.templates)
	return out
}

// Len returns the number of templates.
func (c Catalog) Len() int {
	return len(c.templates)
}
