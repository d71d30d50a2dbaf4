package services

import (
	"context"

	"github.com/calema/findash_backend/internal/core/domain"
	"github.com/calema/findash_backend/internal/dto"
)

// DashboardAuthorizerSvc is the access guard: every dashboard-scoped read or
// write goes through it before touching a repository.
type DashboardAuthorizerSvc interface {
	// CheckAccess returns the caller's role on the dashboard, or
	// apperrors.ErrForbidden when the caller has no membership.
	CheckAccess(ctx context.Context, userID, dashboardID string) (domain.DashboardRole, error)

	// AuthorizeUserAction returns nil when the caller holds requiredRole or
	// higher on the dashboard, apperrors.ErrForbidden otherwise.
	AuthorizeUserAction(ctx context.Context, userID, dashboardID string, requiredRole domain.DashboardRole) error
}

// DashboardSvcFacade combines dashboard management with the access guard.
type DashboardSvcFacade interface {
	DashboardAuthorizerSvc

	// CreateDashboard creates a dashboard and makes the creator its owner.
	CreateDashboard(ctx context.Context, req dto.CreateDashboardRequest, creatorUserID string) (*domain.Dashboard, error)

	// ListUserDashboards lists the dashboards the user belongs to.
	ListUserDashboards(ctx context.Context, userID string) ([]domain.Dashboard, error)

	// AddUserToDashboard adds a member; requires admin or owner on the target.
	AddUserToDashboard(ctx context.Context, addingUserID, targetUserID, dashboardID string, role domain.DashboardRole) error

	// ListDashboardUsers lists memberships; any member may look.
	ListDashboardUsers(ctx context.Context, requestingUserID, dashboardID string) ([]domain.UserDashboard, error)
}
