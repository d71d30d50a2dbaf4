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

type PgxGoalRepository struct {
	BaseRepository
}

// newPgxGoalRepository creates a new repository for savings goal data.
func newPgxGoalRepository(pool *pgxpool.Pool) portsrepo.GoalRepository {
	return &PgxGoalRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.GoalRepository = (*PgxGoalRepository)(nil)

var FULL_GOAL_SELECT_QUERY = `
SELECT
	g.goal_id, g.dashboard_id, g.name, g.target_amount, g.current_amount,
	g.deadline, g.category,
	g.created_at, g.created_by, g.last_updated_at, g.last_updated_by
FROM goals g
`

func (r *PgxGoalRepository) getGoals(ctx context.Context, filterQuery string, args ...any) ([]domain.Goal, error) {
	query := FULL_GOAL_SELECT_QUERY + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query goals", err)
	}
	defer rows.Close()
	modelGoals, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Goal])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Goal{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect goal rows", err)
	}
	return mapping.ToDomainGoals(modelGoals), nil
}

func (r *PgxGoalRepository) ListByDashboard(ctx context.Context, dashboardID string) ([]domain.Goal, error) {
	return r.getGoals(ctx, `WHERE g.dashboard_id = $1 ORDER BY g.created_at`, dashboardID)
}

func (r *PgxGoalRepository) FindGoalByID(ctx context.Context, goalID, dashboardID string) (*domain.Goal, error) {
	goals, err := r.getGoals(ctx, `WHERE g.goal_id = $1 AND g.dashboard_id = $2`, goalID, dashboardID)
	if err != nil {
		return nil, err
	}
	if len(goals) == 0 {
		return nil, apperrors.NewNotFoundError("goal " + goalID + " not found")
	}
	return &goals[0], nil
}

func (r *PgxGoalRepository) SaveGoal(ctx context.Context, goal domain.Goal) error {
	m := mapping.ToModelGoal(goal)
	query := `
		INSERT INTO goals (
			goal_id, dashboard_id, name, target_amount, current_amount,
			deadline, category,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.GoalID, m.DashboardID, m.Name, m.TargetAmount, m.CurrentAmount,
		m.Deadline, m.Category,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save goal "+m.GoalID, err)
	}
	return nil
}

func (r *PgxGoalRepository) UpdateGoal(ctx context.Context, goal domain.Goal) error {
	m := mapping.ToModelGoal(goal)
	query := `
		UPDATE goals SET
			name = $1, target_amount = $2, current_amount = $3,
			deadline = $4, category = $5,
			last_updated_at = $6, last_updated_by = $7
		WHERE goal_id = $8 AND dashboard_id = $9;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.Name, m.TargetAmount, m.CurrentAmount,
		m.Deadline, m.Category,
		m.LastUpdatedAt, m.LastUpdatedBy,
		m.GoalID, m.DashboardID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update goal "+m.GoalID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("goal " + m.GoalID + " not found")
	}
	return nil
}

func (r *PgxGoalRepository) DeleteGoal(ctx context.Context, goalID, dashboardID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM goals WHERE goal_id = $1 AND dashboard_id = $2;`, goalID, dashboardID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete goal "+goalID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("goal " + goalID + " not found")
	}
	return nil
}
