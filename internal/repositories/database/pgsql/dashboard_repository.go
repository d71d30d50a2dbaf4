package pgsql

import (
	"context"
	"errors"

	"github.com/calema/findash_backend/internal/apperrors"
	"github.com/calema/findash_backend/internal/core/domain"
	portsrepo "github.com/calema/findash_backend/internal/core/ports/repositories"
	"github.com/calema/findash_backend/internal/models"
	"github.com/calema/findash_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxDashboardRepository struct {
	BaseRepository
}

// newPgxDashboardRepository creates a new repository for dashboard data.
func newPgxDashboardRepository(pool *pgxpool.Pool) portsrepo.DashboardRepositoryWithTx {
	return &PgxDashboardRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.DashboardRepositoryWithTx = (*PgxDashboardRepository)(nil)

var FULL_DASHBOARD_SELECT_QUERY = `
SELECT
	d.dashboard_id, d.name, d.description,
	d.created_at, d.created_by, d.last_updated_at, d.last_updated_by
FROM dashboards d
`

func (r *PgxDashboardRepository) getDashboards(ctx context.Context, filterQuery string, args ...any) ([]domain.Dashboard, error) {
	query := FULL_DASHBOARD_SELECT_QUERY + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query dashboards", err)
	}
	defer rows.Close()
	modelDashboards, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Dashboard])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Dashboard{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect dashboard rows", err)
	}
	return mapping.ToDomainDashboards(modelDashboards), nil
}

func (r *PgxDashboardRepository) SaveDashboard(ctx context.Context, dashboard domain.Dashboard) error {
	m := mapping.ToModelDashboard(dashboard)
	query := `
		INSERT INTO dashboards (
			dashboard_id, name, description,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.DashboardID,
		m.Name,
		m.Description,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return apperrors.NewAppError(409, "dashboard ID "+m.DashboardID+" already exists", apperrors.ErrDuplicate)
		}
		return apperrors.NewAppError(500, "failed to save dashboard "+m.DashboardID, err)
	}
	return nil
}

// CreateDashboardWithOwner inserts the dashboard and its owner membership in
// one transaction so a failed membership write never leaves an ownerless
// dashboard behind.
func (r *PgxDashboardRepository) CreateDashboardWithOwner(ctx context.Context, dashboard domain.Dashboard, owner domain.UserDashboard) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // no-op once committed

	m := mapping.ToModelDashboard(dashboard)
	dashboardQuery := `
		INSERT INTO dashboards (
			dashboard_id, name, description,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err = tx.Exec(ctx, dashboardQuery,
		m.DashboardID,
		m.Name,
		m.Description,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return apperrors.NewAppError(409, "dashboard ID "+m.DashboardID+" already exists", apperrors.ErrDuplicate)
		}
		return apperrors.NewAppError(500, "failed to save dashboard "+m.DashboardID, err)
	}

	membershipQuery := `
		INSERT INTO user_dashboards (user_id, dashboard_id, role, joined_at)
		VALUES ($1, $2, $3, $4);
	`
	_, err = tx.Exec(ctx, membershipQuery,
		owner.UserID,
		owner.DashboardID,
		string(owner.Role),
		owner.JoinedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return apperrors.NewValidationFailedError("owner user does not exist", err)
		}
		return apperrors.NewAppError(500, "failed to register owner of dashboard "+m.DashboardID, err)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxDashboardRepository) FindDashboardByID(ctx context.Context, dashboardID string) (*domain.Dashboard, error) {
	dashboards, err := r.getDashboards(ctx, `WHERE d.dashboard_id = $1`, dashboardID)
	if err != nil {
		return nil, err
	}
	if len(dashboards) == 0 {
		return nil, apperrors.NewNotFoundError("dashboard " + dashboardID + " not found")
	}
	return &dashboards[0], nil
}

func (r *PgxDashboardRepository) ListDashboardsByUserID(ctx context.Context, userID string) ([]domain.Dashboard, error) {
	filter := `
		JOIN user_dashboards ud ON ud.dashboard_id = d.dashboard_id
		WHERE ud.user_id = $1
		ORDER BY d.created_at;
	`
	return r.getDashboards(ctx, filter, userID)
}

func (r *PgxDashboardRepository) AddUserToDashboard(ctx context.Context, membership domain.UserDashboard) error {
	query := `
		INSERT INTO user_dashboards (user_id, dashboard_id, role, joined_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, dashboard_id) DO UPDATE SET role = EXCLUDED.role;
	` // Upsert: add the user or update their role if already a member
	_, err := r.Pool.Exec(ctx, query,
		membership.UserID,
		membership.DashboardID,
		string(membership.Role),
		membership.JoinedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return apperrors.NewValidationFailedError("user or dashboard does not exist", err)
		}
		return apperrors.NewAppError(500, "failed to add user "+membership.UserID+" to dashboard "+membership.DashboardID, err)
	}
	return nil
}

// FindUserDashboardRole returns apperrors.ErrNotFound when the user holds no
// membership; the access guard turns that into a forbidden error.
func (r *PgxDashboardRepository) FindUserDashboardRole(ctx context.Context, userID, dashboardID string) (*domain.UserDashboard, error) {
	query := `
		SELECT ud.user_id, '' AS user_name, ud.dashboard_id, ud.role, ud.joined_at
		FROM user_dashboards ud
		WHERE ud.user_id = $1 AND ud.dashboard_id = $2;
	`
	rows, err := r.Pool.Query(ctx, query, userID, dashboardID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query dashboard membership", err)
	}
	defer rows.Close()
	m, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.UserDashboard])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to collect membership row", err)
	}
	membership := mapping.ToDomainUserDashboard(m)
	return &membership, nil
}

func (r *PgxDashboardRepository) ListUsersByDashboardID(ctx context.Context, dashboardID string) ([]domain.UserDashboard, error) {
	query := `
		SELECT ud.user_id, u.name AS user_name, ud.dashboard_id, ud.role, ud.joined_at
		FROM user_dashboards ud
		JOIN users u ON u.user_id = ud.user_id
		WHERE ud.dashboard_id = $1
		ORDER BY ud.joined_at;
	`
	rows, err := r.Pool.Query(ctx, query, dashboardID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query dashboard users", err)
	}
	defer rows.Close()
	modelMemberships, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.UserDashboard])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.UserDashboard{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect dashboard user rows", err)
	}
	return mapping.ToDomainUserDashboards(modelMemberships), nil
}
