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
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxBudgetRepository struct {
	BaseRepository
}

// newPgxBudgetRepository creates a new repository for budget data.
func newPgxBudgetRepository(pool *pgxpool.Pool) portsrepo.BudgetRepository {
	return &PgxBudgetRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.BudgetRepository = (*PgxBudgetRepository)(nil)

var FULL_BUDGET_SELECT_QUERY = `
SELECT
	b.budget_id, b.dashboard_id, b.category, b.limit_amount, b.spent_amount,
	b.month, b.year,
	b.created_at, b.created_by, b.last_updated_at, b.last_updated_by
FROM budgets b
`

func (r *PgxBudgetRepository) getBudgets(ctx context.Context, filterQuery string, args ...any) ([]domain.Budget, error) {
	query := FULL_BUDGET_SELECT_QUERY + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query budgets", err)
	}
	defer rows.Close()
	modelBudgets, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Budget])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Budget{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect budget rows", err)
	}
	return mapping.ToDomainBudgets(modelBudgets), nil
}

func (r *PgxBudgetRepository) ListByDashboard(ctx context.Context, dashboardID string) ([]domain.Budget, error) {
	return r.getBudgets(ctx, `WHERE b.dashboard_id = $1 ORDER BY b.year DESC, b.month DESC, b.category`, dashboardID)
}

func (r *PgxBudgetRepository) FindBudgetByID(ctx context.Context, budgetID, dashboardID string) (*domain.Budget, error) {
	budgets, err := r.getBudgets(ctx, `WHERE b.budget_id = $1 AND b.dashboard_id = $2`, budgetID, dashboardID)
	if err != nil {
		return nil, err
	}
	if len(budgets) == 0 {
		return nil, apperrors.NewNotFoundError("budget " + budgetID + " not found")
	}
	return &budgets[0], nil
}

func (r *PgxBudgetRepository) SaveBudget(ctx context.Context, budget domain.Budget) error {
	m := mapping.ToModelBudget(budget)
	query := `
		INSERT INTO budgets (
			budget_id, dashboard_id, category, limit_amount, spent_amount,
			month, year,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.BudgetID, m.DashboardID, m.Category, m.LimitAmount, m.SpentAmount,
		m.Month, m.Year,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save budget "+m.BudgetID, err)
	}
	return nil
}

func (r *PgxBudgetRepository) UpdateBudget(ctx context.Context, budget domain.Budget) error {
	m := mapping.ToModelBudget(budget)
	query := `
		UPDATE budgets SET
			category = $1, limit_amount = $2, spent_amount = $3,
			month = $4, year = $5,
			last_updated_at = $6, last_updated_by = $7
		WHERE budget_id = $8 AND dashboard_id = $9;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.Category, m.LimitAmount, m.SpentAmount,
		m.Month, m.Year,
		m.LastUpdatedAt, m.LastUpdatedBy,
		m.BudgetID, m.DashboardID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update budget "+m.BudgetID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("budget " + m.BudgetID + " not found")
	}
	return nil
}

func (r *PgxBudgetRepository) DeleteBudget(ctx context.Context, budgetID, dashboardID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM budgets WHERE budget_id = $1 AND dashboard_id = $2;`, budgetID, dashboardID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete budget "+budgetID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("budget " + budgetID + " not found")
	}
	return nil
}
