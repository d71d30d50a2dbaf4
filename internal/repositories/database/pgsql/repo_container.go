package pgsql

import (
	portsrepo "github.com/calema/findash_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every pgx-backed repository over one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		TransactionRepo: newPgxTransactionRepository(dbPool),
		DashboardRepo:   newPgxDashboardRepository(dbPool),
		GoalRepo:        newPgxGoalRepository(dbPool),
		BudgetRepo:      newPgxBudgetRepository(dbPool),
		CategoryRepo:    newPgxCategoryRepository(dbPool),
		UserRepo:        newPgxUserRepository(dbPool),
	}
}
