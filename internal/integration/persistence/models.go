// Package persistence implements repository interfaces for database operations.
package persistence

import "github.com/finance-tracker/analytics/internal/integration/persistence/model"

// Models returns every persisted model in migration order.
func Models() []any {
	return []any{
		&model.ObligationModel{},
		&model.PlanModel{},
		&model.PlanActionModel{},
		&model.PlanRuleModel{},
	}
}
