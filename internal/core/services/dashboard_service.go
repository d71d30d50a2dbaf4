package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/calema/findash_backend/internal/apperrors"
	"github.com/calema/findash_backend/internal/core/domain"
	portsrepo "github.com/calema/findash_backend/internal/core/ports/repositories"
	portssvc "github.com/calema/findash_backend/internal/core/ports/services"
	"github.com/calema/findash_backend/internal/dto"
	"github.com/calema/findash_backend/internal/middleware"
	"github.com/google/uuid"
)

// DashboardService handles dashboard lifecycle and the membership guard that
// scopes every other operation in the system.
type DashboardService struct {
	dashboardRepo portsrepo.DashboardRepositoryFacade
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(dr portsrepo.DashboardRepositoryFacade) *DashboardService {
	return &DashboardService{dashboardRepo: dr}
}

var _ portssvc.DashboardSvcFacade = (*DashboardService)(nil)

// CheckAccess returns the role userID holds on the dashboard, or
// apperrors.ErrForbidden when no membership exists.
func (s *DashboardService) CheckAccess(ctx context.Context, userID, dashboardID string) (domain.DashboardRole, error) {
	membership, err := s.dashboardRepo.FindUserDashboardRole(ctx, userID, dashboardID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", apperrors.NewForbiddenError(fmt.Sprintf("user %s has no access to dashboard %s", userID, dashboardID))
		}
		return "", fmt.Errorf("failed to check dashboard access: %w", err)
	}
	return membership.Role, nil
}

// AuthorizeUserAction verifies the user holds at least requiredRole on the dashboard.
func (s *DashboardService) AuthorizeUserAction(ctx context.Context, userID, dashboardID string, requiredRole domain.DashboardRole) error {
	role, err := s.CheckAccess(ctx, userID, dashboardID)
	if err != nil {
		return err
	}
	if !role.AtLeast(requiredRole) {
		logger := middleware.GetLoggerFromCtx(ctx)
		logger.Warn("Insufficient dashboard role",
			slog.String("user_id", userID),
			slog.String("dashboard_id", dashboardID),
			slog.String("role", string(role)),
			slog.String("required_role", string(requiredRole)))
		return apperrors.NewForbiddenError(fmt.Sprintf("role %s required on dashboard %s", requiredRole, dashboardID))
	}
	return nil
}

// CreateDashboard creates a dashboard and registers the creator as its owner.
func (s *DashboardService) CreateDashboard(ctx context.Context, req dto.CreateDashboardRequest, creatorUserID string) (*domain.Dashboard, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now()
	dashboard := domain.Dashboard{
		DashboardID: uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	membership := domain.UserDashboard{
		UserID:      creatorUserID,
		DashboardID: dashboard.DashboardID,
		Role:        domain.RoleOwner,
		JoinedAt:    now,
	}
	// Both rows land in one database transaction; a dashboard without an
	// owner membership must never exist.
	if err := s.dashboardRepo.CreateDashboardWithOwner(ctx, dashboard, membership); err != nil {
		logger.Error("Failed to save dashboard", slog.String("error", err.Error()), slog.String("dashboard_name", req.Name))
		return nil, fmt.Errorf("failed to create dashboard: %w", err)
	}

	logger.Info("Dashboard created", slog.String("dashboard_id", dashboard.DashboardID), slog.String("owner_id", creatorUserID))
	return &dashboard, nil
}

// ListUserDashboards returns every dashboard the user is a member of.
func (s *DashboardService) ListUserDashboards(ctx context.Context, userID string) ([]domain.Dashboard, error) {
	dashboards, err := s.dashboardRepo.ListDashboardsByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list dashboards for user %s: %w", userID, err)
	}
	return dashboards, nil
}

// AddUserToDashboard grants targetUserID a role on the dashboard. The caller
// must hold the admin role or better.
func (s *DashboardService) AddUserToDashboard(ctx context.Context, addingUserID, targetUserID, dashboardID string, role domain.DashboardRole) error {
	if err := s.AuthorizeUserAction(ctx, addingUserID, dashboardID, domain.RoleAdmin); err != nil {
		return err
	}

	membership := domain.UserDashboard{
		UserID:      targetUserID,
		DashboardID: dashboardID,
		Role:        role,
		JoinedAt:    time.Now(),
	}
	if err := s.dashboardRepo.AddUserToDashboard(ctx, membership); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return apperrors.NewAppError(409, fmt.Sprintf("user %s is already a member of dashboard %s", targetUserID, dashboardID), apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to add user to dashboard: %w", err)
	}

	middleware.GetLoggerFromCtx(ctx).Info("User added to dashboard",
		slog.String("dashboard_id", dashboardID),
		slog.String("target_user_id", targetUserID),
		slog.String("role", string(role)))
	return nil
}

// ListDashboardUsers returns all memberships of the dashboard. Any member may list.
func (s *DashboardService) ListDashboardUsers(ctx context.Context, requestingUserID, dashboardID string) ([]domain.UserDashboard, error) {
	if _, err := s.CheckAccess(ctx, requestingUserID, dashboardID); err != nil {
		return nil, err
	}
	users, err := s.dashboardRepo.ListUsersByDashboardID(ctx, dashboardID)
	if err != nil {
		return nil, fmt.Errorf("failed to list dashboard users: %w", err)
	}
	return users, nil
}
