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

type PgxCategoryRepository struct {
	BaseRepository
}

// newPgxCategoryRepository creates a new repository for category data.
func newPgxCategoryRepository(pool *pgxpool.Pool) portsrepo.CategoryRepository {
	return &PgxCategoryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.CategoryRepository = (*PgxCategoryRepository)(nil)

var FULL_CATEGORY_SELECT_QUERY = `
SELECT
	c.category_id, c.dashboard_id, c.name, c.kind, c.description, c.icon, c.color,
	c.created_at, c.created_by, c.last_updated_at, c.last_updated_by
FROM categories c
`

func (r *PgxCategoryRepository) getCategories(ctx context.Context, filterQuery string, args ...any) ([]domain.Category, error) {
	query := FULL_CATEGORY_SELECT_QUERY + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query categories", err)
	}
	defer rows.Close()
	modelCategories, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Category])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Category{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect category rows", err)
	}
	return mapping.ToDomainCategories(modelCategories), nil
}

func (r *PgxCategoryRepository) ListByDashboard(ctx context.Context, dashboardID string) ([]domain.Category, error) {
	return r.getCategories(ctx, `WHERE c.dashboard_id = $1 ORDER BY c.name`, dashboardID)
}

func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, categoryID, dashboardID string) (*domain.Category, error) {
	categories, err := r.getCategories(ctx, `WHERE c.category_id = $1 AND c.dashboard_id = $2`, categoryID, dashboardID)
	if err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		return nil, apperrors.NewNotFoundError("category " + categoryID + " not found")
	}
	return &categories[0], nil
}

func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	m := mapping.ToModelCategory(category)
	query := `
		INSERT INTO categories (
			category_id, dashboard_id, name, kind, description, icon, color,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.CategoryID, m.DashboardID, m.Name, m.Kind, m.Description, m.Icon, m.Color,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique name per dashboard
			return apperrors.NewAppError(409, "category "+m.Name+" already exists", apperrors.ErrDuplicate)
		}
		return apperrors.NewAppError(500, "failed to save category "+m.CategoryID, err)
	}
	return nil
}

func (r *PgxCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	m := mapping.ToModelCategory(category)
	query := `
		UPDATE categories SET
			name = $1, kind = $2, description = $3, icon = $4, color = $5,
			last_updated_at = $6, last_updated_by = $7
		WHERE category_id = $8 AND dashboard_id = $9;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.Name, m.Kind, m.Description, m.Icon, m.Color,
		m.LastUpdatedAt, m.LastUpdatedBy,
		m.CategoryID, m.DashboardID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update category "+m.CategoryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("category " + m.CategoryID + " not found")
	}
	return nil
}

func (r *PgxCategoryRepository) DeleteCategory(ctx context.Context, categoryID, dashboardID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM categories WHERE category_id = $1 AND dashboard_id = $2;`, categoryID, dashboardID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete category "+categoryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("category " + categoryID + " not found")
	}
	return nil
}
