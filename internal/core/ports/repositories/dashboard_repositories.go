package repositories

import (
	"context"

	"github.com/calema/findash_backend/internal/core/domain"
)

// DashboardReader defines read operations for dashboard data
type DashboardReader interface {
	// FindDashboardByID retrieves a specific dashboard by its ID.
	FindDashboardByID(ctx context.Context, dashboardID string) (*domain.Dashboard, error)

	// ListDashboardsByUserID retrieves all dashboards a user belongs to.
	ListDashboardsByUserID(ctx context.Context, userID string) ([]domain.Dashboard, error)
}

// DashboardWriter defines write operations for dashboard data
type DashboardWriter interface {
	// SaveDashboard persists a new dashboard.
	SaveDashboard(ctx context.Context, dashboard domain.Dashboard) error

	// CreateDashboardWithOwner persists a new dashboard and its owner
	// membership in one database transaction. Either both rows exist
	// afterwards or neither does.
	CreateDashboardWithOwner(ctx context.Context, dashboard domain.Dashboard, owner domain.UserDashboard) error
}

// DashboardMembershipManager defines operations for managing dashboard memberships
type DashboardMembershipManager interface {
	// AddUserToDashboard adds a user to a dashboard with a specific role.
	AddUserToDashboard(ctx context.Context, membership domain.UserDashboard) error

	// FindUserDashboardRole retrieves the role of a user in a dashboard.
	// Returns apperrors.ErrNotFound when the user is not a member.
	FindUserDashboardRole(ctx context.Context, userID, dashboardID string) (*domain.UserDashboard, error)

	// ListUsersByDashboardID retrieves all memberships of a dashboard.
	ListUsersByDashboardID(ctx context.Context, dashboardID string) ([]domain.UserDashboard, error)
}

// DashboardRepositoryFacade combines all dashboard-related repository interfaces
type DashboardRepositoryFacade interface {
	DashboardReader
	DashboardWriter
	DashboardMembershipManager
}

// DashboardRepositoryWithTx extends DashboardRepositoryFacade with transaction capabilities
type DashboardRepositoryWithTx interface {
	DashboardRepositoryFacade
	TransactionManager
}
