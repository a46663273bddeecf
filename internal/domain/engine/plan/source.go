package plan

import "github.com/finance-tracker/analytics/internal/domain/entity"

// TaskSource is where a template's actions come from. It is either
// StructuredTasks or LegacyTasks.
type TaskSource interface {
	taskSource()
}

// StructuredTasks carries the template's task blueprint.
type StructuredTasks struct {
	Blueprints []entity.TaskBlueprint
}

// LegacyTasks carries the template's plain example task titles.
type LegacyTasks struct {
	Examples []string
}

func (StructuredTasks) taskSource() {}
func (LegacyTasks) taskSource()     {}

// RuleSource is where a template's rules come from. It is either
// StructuredRules or LegacyRules.
type RuleSource interface {
	ruleSource()
}

// StructuredRules carries the template's rule blueprint.
type StructuredRules struct {
	Blueprints []entity.RuleBlueprint
}

// LegacyRules derives fixed rules from the template category.
type LegacyRules struct {
	Category entity.PlanCategory
}

func (StructuredRules) ruleSource() {}
func (LegacyRules) ruleSource()     {}

// ResolveTaskSource picks the blueprint when present.
func ResolveTaskSource(t entity.PlanTemplate) TaskSource {
	if len(t.TasksBlueprint) > 0 {
		return StructuredTasks{Blueprints: t.TasksBlueprint}
	}
	return LegacyTasks{Examples: t.ExampleTasks}
}

// ResolveRuleSource picks the blueprint when present.
func ResolveRuleSource(t entity.PlanTemplate) RuleSource {
	if len(t.RulesBlueprint) > 0 {
		return StructuredRules{Blueprints: t.RulesBlueprint}
	}
	return LegacyRules{Category: t.Category}
}
