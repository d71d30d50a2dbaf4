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

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for transaction data.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryWithTx {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.TransactionRepositoryWithTx = (*PgxTransactionRepository)(nil)

var FULL_TRANSACTION_SELECT_QUERY = `
SELECT
	t.transaction_id, t.dashboard_id, t.description, t.amount, t.type, t.status,
	t.category, t.account, t.method, t.date,
	t.installments, t.current_installment, t.total_amount, t.remaining_amount, t.next_payment_date,
	t.version, t.created_at, t.created_by, t.last_updated_at, t.last_updated_by
FROM transactions t
`

func (r *PgxTransactionRepository) getTransactions(ctx context.Context, filterQuery string, args ...any) ([]domain.Transaction, error) {
	query := FULL_TRANSACTION_SELECT_QUERY + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query transactions", err)
	}
	defer rows.Close()
	modelTxns, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Transaction])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Transaction{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect transaction rows", err)
	}
	return mapping.ToDomainTransactions(modelTxns), nil
}

// ListByDashboard returns the dashboard's transactions ordered by date
// descending, newest first.
func (r *PgxTransactionRepository) ListByDashboard(ctx context.Context, dashboardID string) ([]domain.Transaction, error) {
	return r.getTransactions(ctx, `WHERE t.dashboard_id = $1 ORDER BY t.date DESC, t.created_at DESC`, dashboardID)
}

// FindByID is dashboard-scoped: an id under another dashboard reports not found.
func (r *PgxTransactionRepository) FindByID(ctx context.Context, transactionID, dashboardID string) (*domain.Transaction, error) {
	txns, err := r.getTransactions(ctx, `WHERE t.transaction_id = $1 AND t.dashboard_id = $2`, transactionID, dashboardID)
	if err != nil {
		return nil, err
	}
	if len(txns) == 0 {
		return nil, apperrors.NewNotFoundError("transaction " + transactionID + " not found")
	}
	return &txns[0], nil
}

func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	query := `
		INSERT INTO transactions (
			transaction_id, dashboard_id, description, amount, type, status,
			category, account, method, date,
			installments, current_installment, total_amount, remaining_amount, next_payment_date,
			version, created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.TransactionID,
		m.DashboardID,
		m.Description,
		m.Amount,
		m.Type,
		m.Status,
		m.Category,
		m.Account,
		m.Method,
		m.Date,
		m.Installments,
		m.CurrentInstallment,
		m.TotalAmount,
		m.RemainingAmount,
		m.NextPaymentDate,
		m.Version,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation
				return apperrors.NewAppError(409, "transaction ID "+m.TransactionID+" already exists", apperrors.ErrDuplicate)
			}
			if pgErr.Code == "23503" { // foreign_key_violation
				return apperrors.NewValidationFailedError("dashboard "+m.DashboardID+" does not exist", err)
			}
		}
		return apperrors.NewAppError(500, "failed to save transaction "+m.TransactionID, err)
	}
	return nil
}

// UpdateTransaction overwrites the mutable fields and bumps the version
// unconditionally. For the installment progression write use
// UpdateTransactionVersioned instead.
func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	query := `
		UPDATE transactions SET
			description = $1, amount = $2, type = $3, status = $4,
			category = $5, account = $6, method = $7, date = $8,
			installments = $9, current_installment = $10, total_amount = $11,
			remaining_amount = $12, next_payment_date = $13,
			version = version + 1, last_updated_at = $14, last_updated_by = $15
		WHERE transaction_id = $16 AND dashboard_id = $17;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.Description, m.Amount, m.Type, m.Status,
		m.Category, m.Account, m.Method, m.Date,
		m.Installments, m.CurrentInstallment, m.TotalAmount,
		m.RemainingAmount, m.NextPaymentDate,
		m.LastUpdatedAt, m.LastUpdatedBy,
		m.TransactionID, m.DashboardID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update transaction "+m.TransactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("transaction " + m.TransactionID + " not found")
	}
	return nil
}

// UpdateTransactionVersioned is a compare-and-swap on the version column. A
// concurrent writer that advanced the row first makes RowsAffected zero, which
// reports as a conflict, distinguished from a genuinely missing row.
func (r *PgxTransactionRepository) UpdateTransactionVersioned(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	query := `
		UPDATE transactions SET
			status = $1, current_installment = $2, remaining_amount = $3,
			next_payment_date = $4, version = version + 1,
			last_updated_at = $5, last_updated_by = $6
		WHERE transaction_id = $7 AND dashboard_id = $8 AND version = $9;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.Status, m.CurrentInstallment, m.RemainingAmount,
		m.NextPaymentDate,
		m.LastUpdatedAt, m.LastUpdatedBy,
		m.TransactionID, m.DashboardID, m.Version,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update transaction "+m.TransactionID, err)
	}
	if tag.RowsAffected() == 0 {
		if _, findErr := r.FindByID(ctx, txn.TransactionID, txn.DashboardID); findErr != nil {
			return findErr
		}
		return apperrors.NewConflictError("transaction " + m.TransactionID + " was modified concurrently")
	}
	return nil
}

// DeleteTransaction removes the row unconditionally, mid-schedule or not.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID, dashboardID string) error {
	query := `DELETE FROM transactions WHERE transaction_id = $1 AND dashboard_id = $2;`
	tag, err := r.Pool.Exec(ctx, query, transactionID, dashboardID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete transaction "+transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("transaction " + transactionID + " not found")
	}
	return nil
}
