package services

import (
	"context"
	"fmt"

	"github.com/calema/findash_backend/internal/core/domain"
	portsrepo "github.com/calema/findash_backend/internal/core/ports/repositories"
	portssvc "github.com/calema/findash_backend/internal/core/ports/services"
	"github.com/calema/findash_backend/internal/dto"
	"github.com/google/uuid"
)

// CategoryService is access-guarded CRUD over transaction categories.
type CategoryService struct {
	categoryRepo portsrepo.CategoryRepository
	authorizer   portssvc.DashboardAuthorizerSvc
	clock        Clock
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(cr portsrepo.CategoryRepository, authorizer portssvc.DashboardAuthorizerSvc, clock Clock) *CategoryService {
	if clock == nil {
		clock = SystemClock{}
	}
	return &CategoryService{categoryRepo: cr, authorizer: authorizer, clock: clock}
}

var _ portssvc.CategorySvcFacade = (*CategoryService)(nil)

func (s *CategoryService) ListCategories(ctx context.Context, dashboardID, userID string) ([]domain.Category, error) {
	if err := s.authorizer.AuthorizeUserAction(ctx, userID, dashboardID, domain.RoleMember); err != nil {
		return nil, err
	}
	categories, err := s.categoryRepo.ListByDashboard(ctx, dashboardID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

func (s *CategoryService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest, userID string) (*domain.Category, error) {
	if err := s.authorizer.AuthorizeUserAction(ctx, userID, req.DashboardID, domain.RoleMember); err != nil {
		return nil, err
	}

	kind := domain.CategoryBoth
	if req.Tipo != "" {
		kind = domain.CategoryKind(req.Tipo)
	}

	now := s.clock.Now()
	category := domain.Category{
		CategoryID:  uuid.NewString(),
		DashboardID: req.DashboardID,
		Name:        req.Nome,
		Kind:        kind,
		Description: req.Descricao,
		Icon:        req.Icone,
		Color:       req.Cor,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return &category, nil
}

func (s *CategoryService) UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest, userID string) (*domain.Category, error) {
	if err := s.authorizer.AuthorizeUserAction(ctx, userID, req.DashboardID, domain.RoleMember); err != nil {
		return nil, err
	}

	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID, req.DashboardID)
	if err != nil {
		return nil, err
	}

	if req.Nome != nil {
		category.Name = *req.Nome
	}
	if req.Tipo != nil {
		category.Kind = domain.CategoryKind(*req.Tipo)
	}
	if req.Descricao != nil {
		category.Description = *req.Descricao
	}
	if req.Icone != nil {
		category.Icon = *req.Icone
	}
	if req.Cor != nil {
		category.Color = *req.Cor
	}
	category.LastUpdatedAt = s.clock.Now()
	category.LastUpdatedBy = userID

	if err := s.categoryRepo.UpdateCategory(ctx, *category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) DeleteCategory(ctx context.Context, categoryID, dashboardID, userID string) error {
	if err := s.authorizer.AuthorizeUserAction(ctx, userID, dashboardID, domain.RoleMember); err != nil {
		return err
	}
	return s.categoryRepo.DeleteCategory(ctx, categoryID, dashboardID)
}
