// Package plan turns a template, a risk result and the user's obligations into
// a plan instance with prioritized actions and behavior rules.
package plan

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/analytics/internal/domain/engine/risk"
	"github.com/finance-tracker/analytics/internal/domain/entity"
	domainerror "github.com/finance-tracker/analytics/internal/domain/error"
)

const (
	// ObligationWindowDays is how far ahead unpaid obligations become actions.
	ObligationWindowDays = 10

	PriorityUrgent    = 1
	PriorityBlueprint = 2
	PriorityExample   = 3
)

var idNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("finance-tracker/analytics/plan"))

// Input is everything needed to synthesize a plan.
type Input struct {
	UserID      uuid.UUID
	TemplateID  string
	StartDate   time.Time
	CreatedAt   time.Time
	Risk        entity.RiskResult
	Obligations []entity.Obligation
}

// Generate builds a plan from the catalog template named by in.TemplateID.
// Ids are derived from the input, so the same input always yields the same plan.
func Generate(catalog Catalog, in Input) (*entity.PlanWithDetails, error) {
	template, ok := catalog.Lookup(in.TemplateID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domainerror.ErrPlanTemplateNotFound, in.TemplateID)
	}

	createdAt := in.CreatedAt
	if createdAt.IsZero() {
		createdAt = in.StartDate
	}

	planID := uuid.NewSHA1(idNamespace, []byte(in.UserID.String()+"|"+template.ID+"|"+
		in.StartDate.UTC().Format(time.RFC3339)+"|"+createdAt.UTC().Format(time.RFC3339Nano)))

	plan := &entity.PlanInstance{
		ID:                  planID,
		UserID:              in.UserID,
		TemplateID:          template.ID,
		Title:               template.Title,
		Category:            template.Category,
		StartDate:           in.StartDate,
		EndDate:             EndDate(in.StartDate, template.Duration),
		Status:              entity.PlanStatusActive,
		RiskLevel:           in.Risk.Level,
		AtRiskObligationIDs: []uuid.UUID{},
		CreatedAt:           createdAt,
	}

	actions := []*entity.PlanAction{}
	if in.Risk.Level == entity.RiskLevelHigh {
		actions = append(actions, reviewAction(in.Risk))
	}
	if template.Category != entity.PlanCategoryReserve {
		obligationActions := obligationActions(in.Obligations, in.StartDate)
		for _, a := range obligationActions {
			plan.AtRiskObligationIDs = append(plan.AtRiskObligationIDs, *a.ObligationID)
		}
		actions = append(actions, obligationActions...)
	}
	actions = append(actions, templateActions(ResolveTaskSource(template), in.StartDate)...)

	rules := templateRules(ResolveRuleSource(template))

	for i, a := range actions {
		a.PlanID = planID
		a.ID = uuid.NewSHA1(planID, []byte("action:"+strconv.Itoa(i)))
	}
	for i, r := range rules {
		r.PlanID = planID
		r.ID = uuid.NewSHA1(planID, []byte("rule:"+strconv.Itoa(i)))
	}

	return &entity.PlanWithDetails{Plan: plan, Actions: actions, Rules: rules}, nil
}

// EndDate offsets start by the template duration. A non-positive count is one unit.
func EndDate(start time.Time, d entity.PlanDuration) time.Time {
	n := d.Count
	if n <= 0 {
		n = 1
	}
	switch d.Unit {
	case entity.DurationDay:
		return start.AddDate(0, 0, n)
	case entity.DurationWeek:
		return start.AddDate(0, 0, 7*n)
	case entity.DurationQuarter:
		return start.AddDate(0, 3*n, 0)
	case entity.DurationYear:
		return start.AddDate(n, 0, 0)
	default:
		return start.AddDate(0, n, 0)
	}
}

func reviewAction(r entity.RiskResult) *entity.PlanAction {
	return &entity.PlanAction{
		Title: "Review payments before next salary",
		Description: fmt.Sprintf("%.2f is due in the %d days before your next salary. Prioritize essential bills and postpone the rest.",
			r.AmountDueBeforeSalary, r.DaysUntilSalary),
		Priority: PriorityUrgent,
		Source:   entity.ActionSourceRisk,
	}
}

type dueObligation struct {
	obligation entity.Obligation
	days       int
	overdue    bool
}

func obligationActions(obligations []entity.Obligation, start time.Time) []*entity.PlanAction {
	today := start.Day()

	due := []dueObligation{}
	for _, o := range obligations {
		if o.Paid {
			continue
		}
		if late, ok := risk.DaysOverdue(o.DueDay, today); ok {
			due = append(due, dueObligation{obligation: o, days: -late, overdue: true})
			continue
		}
		if days := risk.DaysUntilDue(o.DueDay, today); days <= ObligationWindowDays {
			due = append(due, dueObligation{obligation: o, days: days})
		}
	}

	sort.SliceStable(due, func(i, j int) bool {
		if due[i].days != due[j].days {
			return due[i].days < due[j].days
		}
		if due[i].obligation.Amount != due[j].obligation.Amount {
			return due[i].obligation.Amount > due[j].obligation.Amount
		}
		return due[i].obligation.ID.String() < due[j].obligation.ID.String()
	})

	actions := make([]*entity.PlanAction, 0, len(due))
	for _, d := range due {
		id := d.obligation.ID
		dueDate := start.AddDate(0, 0, d.days)

		title := "Pay " + d.obligation.Name
		description := fmt.Sprintf("%.2f due in %d days.", d.obligation.Amount, d.days)
		if d.overdue {
			title = "Pay overdue " + d.obligation.Name
			description = fmt.Sprintf("%.2f was due %d days ago.", d.obligation.Amount, -d.days)
		}

		actions = append(actions, &entity.PlanAction{
			Title:        title,
			Description:  description,
			Priority:     PriorityUrgent,
			Source:       entity.ActionSourceObligation,
			ObligationID: &id,
			DueDate:      &dueDate,
		})
	}
	return actions
}

func templateActions(source TaskSource, start time.Time) []*entity.PlanAction {
	actions := []*entity.PlanAction{}
	switch src := source.(type) {
	case StructuredTasks:
		for _, b := range src.Blueprints {
			priority := b.Priority
			if priority <= 0 {
				priority = PriorityBlueprint
			}
			dueDate := start.AddDate(0, 0, b.OffsetDays)
			actions = append(actions, &entity.PlanAction{
				Title:       b.Title,
				Description: b.Description,
				Priority:    priority,
				Source:      entity.ActionSourceBlueprint,
				DueDate:     &dueDate,
			})
		}
	case LegacyTasks:
		for _, title := range src.Examples {
			actions = append(actions, &entity.PlanAction{
				Title:    title,
				Priority: PriorityExample,
				Source:   entity.ActionSourceExample,
			})
		}
	}
	return actions
}

func templateRules(source RuleSource) []*entity.PlanRule {
	rules := []*entity.PlanRule{}
	switch src := source.(type) {
	case StructuredRules:
		for _, b := range src.Blueprints {
			rules = append(rules, &entity.PlanRule{Title: b.Title, Description: b.Description, Active: true})
		}
	case LegacyRules:
		for _, r := range legacyRules(src.Category) {
			rule := r
			rules = append(rules, &rule)
		}
	}
	return rules
}

func legacyRules(category entity.PlanCategory) []entity.PlanRule {
	switch category {
	case entity.PlanCategoryReserve:
		return []entity.PlanRule{
			{
				Title:       "Pay yourself first",
				Description: "Move the reserve contribution as soon as income arrives, before any discretionary spending.",
				Active:      true,
			},
			{
				Title:       "24-hour purchase pause",
				Description: "Wait 24 hours before any non-essential purchase.",
				Active:      true,
			},
		}
	case entity.PlanCategoryDebt:
		return []entity.PlanRule{
			{
				Title:       "No new debt",
				Description: "Do not open new credit lines or installment purchases while the plan is active.",
				Active:      true,
			},
		}
	default:
		return nil
	}
}
