package services

import (
	"context"
	"fmt"

	"github.com/calema/findash_backend/internal/core/domain"
	portsrepo "github.com/calema/findash_backend/internal/core/ports/repositories"
	portssvc "github.com/calema/findash_backend/internal/core/ports/services"
	"github.com/calema/findash_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetService is access-guarded CRUD over category budgets.
type BudgetService struct {
	budgetRepo portsrepo.BudgetRepository
	authorizer portssvc.DashboardAuthorizerSvc
	clock      Clock
}

// NewBudgetService creates a new BudgetService.
func NewBudgetService(br portsrepo.BudgetRepository, authorizer portssvc.DashboardAuthorizerSvc, clock Clock) *BudgetService {
	if clock == nil {
		clock = SystemClock{}
	}
	return &BudgetService{budgetRepo: br, authorizer: authorizer, clock: clock}
}

var _ portssvc.BudgetSvcFacade = (*BudgetService)(nil)

func (s *BudgetService) ListBudgets(ctx context.Context, dashboardID, userID string) ([]domain.Budget, error) {
	if err := s.authorizer.AuthorizeUserAction(ctx, userID, dashboardID, domain.RoleMember); err != nil {
		return nil, err
	}
	budgets, err := s.budgetRepo.ListByDashboard(ctx, dashboardID)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}
	return budgets, nil
}

func (s *BudgetService) CreateBudget(ctx context.Context, req dto.CreateBudgetRequest, userID string) (*domain.Budget, error) {
	if err := s.authorizer.AuthorizeUserAction(ctx, userID, req.DashboardID, domain.RoleMember); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	budget := domain.Budget{
		BudgetID:    uuid.NewString(),
		DashboardID: req.DashboardID,
		Category:    req.Categoria,
		LimitAmount: req.ValorLimite,
		SpentAmount: decimal.Zero,
		Month:       req.Mes,
		Year:        req.Ano,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if req.ValorGasto != nil {
		budget.SpentAmount = *req.ValorGasto
	}

	if err := s.budgetRepo.SaveBudget(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}
	return &budget, nil
}

func (s *BudgetService) UpdateBudget(ctx context.Context, budgetID string, req dto.UpdateBudgetRequest, userID string) (*domain.Budget, error) {
	if err := s.authorizer.AuthorizeUserAction(ctx, userID, req.DashboardID, domain.RoleMember); err != nil {
		return nil, err
	}

	budget, err := s.budgetRepo.FindBudgetByID(ctx, budgetID, req.DashboardID)
	if err != nil {
		return nil, err
	}

	if req.Categoria != nil {
		budget.Category = *req.Categoria
	}
	if req.ValorLimite != nil {
		budget.LimitAmount = *req.ValorLimite
	}
	if req.ValorGasto != nil {
		budget.SpentAmount = *req.ValorGasto
	}
	if req.Mes != nil {
		budget.Month = *req.Mes
	}
	if req.Ano != nil {
		budget.Year = *req.Ano
	}
	budget.LastUpdatedAt = s.clock.Now()
	budget.LastUpdatedBy = userID

	if err := s.budgetRepo.UpdateBudget(ctx, *budget); err != nil {
		return nil, err
	}
	return budget, nil
}

func (s *BudgetService) DeleteBudget(ctx context.Context, budgetID, dashboardID, userID string) error {
	if err := s.authorizer.AuthorizeUserAction(ctx, userID, dashboardID, domain.RoleMember); err != nil {
		return err
	}
	return s.budgetRepo.DeleteBudget(ctx, budgetID, dashboardID)
}
