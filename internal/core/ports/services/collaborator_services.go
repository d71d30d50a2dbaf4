package services

import (
	"context"

	"github.com/calema/findash_backend/internal/core/domain"
	"github.com/calema/findash_backend/internal/dto"
)

// GoalSvcFacade is thin, access-guarded CRUD over savings goals.
type GoalSvcFacade interface {
	ListGoals(ctx context.Context, dashboardID, userID string) ([]domain.Goal, error)
	CreateGoal(ctx context.Context, req dto.CreateGoalRequest, userID string) (*domain.Goal, error)
	UpdateGoal(ctx context.Context, goalID string, req dto.UpdateGoalRequest, userID string) (*domain.Goal, error)
	DeleteGoal(ctx context.Context, goalID, dashboardID, userID string) error
}

// BudgetSvcFacade is thin, access-guarded CRUD over category budgets.
type BudgetSvcFacade interface {
	ListBudgets(ctx context.Context, dashboardID, userID string) ([]domain.Budget, error)
	CreateBudget(ctx context.Context, req dto.CreateBudgetRequest, userID string) (*domain.Budget, error)
	UpdateBudget(ctx context.Context, budgetID string, req dto.UpdateBudgetRequest, userID string) (*domain.Budget, error)
	DeleteBudget(ctx context.Context, budgetID, dashboardID, userID string) error
}

// CategorySvcFacade is thin, access-guarded CRUD over categories.
type CategorySvcFacade interface {
	ListCategories(ctx context.Context, dashboardID, userID string) ([]domain.Category, error)
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest, userID string) (*domain.Category, error)
	UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest, userID string) (*domain.Category, error)
	DeleteCategory(ctx context.Context, categoryID, dashboardID, userID string) error
}
