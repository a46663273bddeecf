// Package catalog loads plan templates from YAML into an immutable catalog.
package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	planengine "github.com/finance-tracker/analytics/internal/domain/engine/plan"
	"github.com/finance-tracker/analytics/internal/domain/entity"
)

//go:embed templates.yaml
var builtinTemplates []byte

// document is the top-level YAML shape.
type document struct {
	Templates []entity.PlanTemplate `yaml:"templates"`
}

// Default returns the built-in template catalog.
func Default() (planengine.Catalog, error) {
	return Parse(builtinTemplates)
}

// LoadFile reads a catalog from a YAML file. An empty path yields the built-in catalog.
func LoadFile(path string) (planengine.Catalog, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return planengine.Catalog{}, fmt.Errorf("failed to read template catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML into a catalog after validating every template.
func Parse(data []byte) (planengine.Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return planengine.Catalog{}, fmt.Errorf("failed to parse template catalog: %w", err)
	}

	seen := make(map[string]bool, len(doc.Templates))
	for i, t := range doc.Templates {
		if t.ID == "" {
			return planengine.Catalog{}, fmt.Errorf("template %d has no id", i)
		}
		if seen[t.ID] {
			return planengine.Catalog{}, fmt.Errorf("duplicate template id %q", t.ID)
		}
		seen[t.ID] = true

		switch t.Duration.Unit {
		case entity.DurationDay, entity.DurationWeek, entity.DurationMonth, entity.DurationQuarter, entity.DurationYear:
		default:
			return planengine.Catalog{}, fmt.Errorf("template %q has unknown duration unit %q", t.ID, t.Duration.Unit)
		}
	}

	return planengine.NewCatalog(doc.Templates), nil
}
