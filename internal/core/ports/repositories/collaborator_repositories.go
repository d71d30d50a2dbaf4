package repositories

import (
	"context"

	"github.com/calema/findash_backend/internal/core/domain"
)

// GoalRepository defines CRUD for savings goals; thin collaborator data with
// the same dashboard scoping rules as transactions.
type GoalRepository interface {
	ListByDashboard(ctx context.Context, dashboardID string) ([]domain.Goal, error)
	FindGoalByID(ctx context.Context, goalID, dashboardID string) (*domain.Goal, error)
	SaveGoal(ctx context.Context, goal domain.Goal) error
	UpdateGoal(ctx context.Context, goal domain.Goal) error
	DeleteGoal(ctx context.Context, goalID, dashboardID string) error
}

// BudgetRepository defines CRUD for category budgets.
type BudgetRepository interface {
	ListByDashboard(ctx context.Context, dashboardID string) ([]domain.Budget, error)
	FindBudgetByID(ctx context.Context, budgetID, dashboardID string) (*domain.Budget, error)
	SaveBudget(ctx context.Context, budget domain.Budget) error
	UpdateBudget(ctx context.Context, budget domain.Budget) error
	DeleteBudget(ctx context.Context, budgetID, dashboardID string) error
}

// CategoryRepository defines CRUD for transaction categories.
type CategoryRepository interface {
	ListByDashboard(ctx context.Context, dashboardID string) ([]domain.Category, error)
	FindCategoryByID(ctx context.Context, categoryID, dashboardID string) (*domain.Category, error)
	SaveCategory(ctx context.Context, category domain.Category) error
	UpdateCategory(ctx context.Context, category domain.Category) error
	DeleteCategory(ctx context.Context, categoryID, dashboardID string) error
}
