package services

import (
	"context"
	"fmt"

	"github.com/calema/findash_backend/internal/apperrors"
	"github.com/calema/findash_backend/internal/core/domain"
	portsrepo "github.com/calema/findash_backend/internal/core/ports/repositories"
	portssvc "github.com/calema/findash_backend/internal/core/ports/services"
	"github.com/calema/findash_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GoalService is access-guarded CRUD over savings goals.
type GoalService struct {
	goalRepo   portsrepo.GoalRepository
	authorizer portssvc.DashboardAuthorizerSvc
	clock      Clock
}

// NewGoalService creates a new GoalService.
func NewGoalService(gr portsrepo.GoalRepository, authorizer portssvc.DashboardAuthorizerSvc, clock Clock) *GoalService {
	if clock == nil {
		clock = SystemClock{}
	}
	return &GoalService{goalRepo: gr, authorizer: authorizer, clock: clock}
}

var _ portssvc.GoalSvcFacade = (*GoalService)(nil)

func (s *GoalService) ListGoals(ctx context.Context, dashboardID, userID string) ([]domain.Goal, error) {
	if err := s.authorizer.AuthorizeUserAction(ctx, userID, dashboardID, domain.RoleMember); err != nil {
		return nil, err
	}
	goals, err := s.goalRepo.ListByDashboard(ctx, dashboardID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	return goals, nil
}

func (s *GoalService) CreateGoal(ctx context.Context, req dto.CreateGoalRequest, userID string) (*domain.Goal, error) {
	if err := s.authorizer.AuthorizeUserAction(ctx, userID, req.DashboardID, domain.RoleMember); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	goal := domain.Goal{
		GoalID:       uuid.NewString(),
		DashboardID:  req.DashboardID,
		Name:         req.Nome,
		TargetAmount: req.ValorAlvo,
		Category:     req.Categoria,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if req.ValorAtual != nil {
		goal.CurrentAmount = *req.ValorAtual
	} else {
		goal.CurrentAmount = decimal.Zero
	}
	if req.DataLimite != nil {
		deadline, err := dto.ParseWireDate(*req.DataLimite)
		if err != nil {
			return nil, apperrors.NewValidationFailedError(err.Error(), err)
		}
		goal.Deadline = &deadline
	}

	if err := s.goalRepo.SaveGoal(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}
	return &goal, nil
}

func (s *GoalService) UpdateGoal(ctx context.Context, goalID string, req dto.UpdateGoalRequest, userID string) (*domain.Goal, error) {
	if err := s.authorizer.AuthorizeUserAction(ctx, userID, req.DashboardID, domain.RoleMember); err != nil {
		return nil, err
	}

	goal, err := s.goalRepo.FindGoalByID(ctx, goalID, req.DashboardID)
	if err != nil {
		return nil, err
	}

	if req.Nome != nil {
		goal.Name = *req.Nome
	}
	if req.ValorAlvo != nil {
		goal.TargetAmount = *req.ValorAlvo
	}
	if req.ValorAtual != nil {
		goal.CurrentAmount = *req.ValorAtual
	}
	if req.Categoria != nil {
		goal.Category = *req.Categoria
	}
	if req.DataLimite != nil {
		deadline, err := dto.ParseWireDate(*req.DataLimite)
		if err != nil {
			return nil, apperrors.NewValidationFailedError(err.Error(), err)
		}
		goal.Deadline = &deadline
	}
	goal.LastUpdatedAt = s.clock.Now()
	goal.LastUpdatedBy = userID

	if err := s.goalRepo.UpdateGoal(ctx, *goal); err != nil {
		return nil, err
	}
	return goal, nil
}

func (s *GoalService) DeleteGoal(ctx context.Context, goalID, dashboardID, userID string) error {
	if err := s.authorizer.AuthorizeUserAction(ctx, userID, dashboardID, domain.RoleMember); err != nil {
		return err
	}
	return s.goalRepo.DeleteGoal(ctx, goalID, dashboardID)
}
