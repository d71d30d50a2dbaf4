package mapping

import (
	"github.com/calema/findash_backend/internal/core/domain"
	"github.com/calema/findash_backend/internal/models"
)

// ToModelGoal converts a domain Goal to its row shape
func ToModelGoal(d domain.Goal) models.Goal {
	return models.Goal{
		GoalID:        d.GoalID,
		DashboardID:   d.DashboardID,
		Name:          d.Name,
		TargetAmount:  d.TargetAmount,
		CurrentAmount: d.CurrentAmount,
		Deadline:      d.Deadline,
		Category:      d.Category,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainGoal converts a goals row to the domain model
func ToDomainGoal(m models.Goal) domain.Goal {
	return domain.Goal{
		GoalID:        m.GoalID,
		DashboardID:   m.DashboardID,
		Name:          m.Name,
		TargetAmount:  m.TargetAmount,
		CurrentAmount: m.CurrentAmount,
		Deadline:      m.Deadline,
		Category:      m.Category,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainGoals converts a slice of goals rows
func ToDomainGoals(ms []models.Goal) []domain.Goal {
	out := make([]domain.Goal, len(ms))
	for i, m := range ms {
		out[i] = ToDomainGoal(m)
	}
	return out
}

// ToModelBudget converts a domain Budget to its row shape
func ToModelBudget(d domain.Budget) models.Budget {
	return models.Budget{
		BudgetID:    d.BudgetID,
		DashboardID: d.DashboardID,
		Category:    d.Category,
		LimitAmount: d.LimitAmount,
		SpentAmount: d.SpentAmount,
		Month:       d.Month,
		Year:        d.Year,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBudget converts a budgets row to the domain model
func ToDomainBudget(m models.Budget) domain.Budget {
	return domain.Budget{
		BudgetID:    m.BudgetID,
		DashboardID: m.DashboardID,
		Category:    m.Category,
		LimitAmount: m.LimitAmount,
		SpentAmount: m.SpentAmount,
		Month:       m.Month,
		Year:        m.Year,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainBudgets converts a slice of budgets rows
func ToDomainBudgets(ms []models.Budget) []domain.Budget {
	out := make([]domain.Budget, len(ms))
	for i, m := range ms {
		out[i] = ToDomainBudget(m)
	}
	return out
}

// ToModelCategory converts a domain Category to its row shape
func ToModelCategory(d domain.Category) models.Category {
	return models.Category{
		CategoryID:  d.CategoryID,
		DashboardID: d.DashboardID,
		Name:        d.Name,
		Kind:        string(d.Kind),
		Description: d.Description,
		Icon:        d.Icon,
		Color:       d.Color,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCategory converts a categories row to the domain model
func ToDomainCategory(m models.Category) domain.Category {
	return domain.Category{
		CategoryID:  m.CategoryID,
		DashboardID: m.DashboardID,
		Name:        m.Name,
		Kind:        domain.CategoryKind(m.Kind),
		Description: m.Description,
		Icon:        m.Icon,
		Color:       m.Color,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCategories converts a slice of categories rows
func ToDomainCategories(ms []models.Category) []domain.Category {
	out := make([]domain.Category, len(ms))
	for i, m := range ms {
		out[i] = ToDomainCategory(m)
	}
	return out
}
