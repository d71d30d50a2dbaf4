package repositories

import (
	"context"

	"github.com/calema/findash_backend/internal/core/domain"
)

// TransactionReader defines read operations for transaction data.
// Every operation is dashboard-scoped: an id that exists under a different
// dashboard behaves exactly like a missing id.
type TransactionReader interface {
	// ListByDashboard retrieves all transactions of a dashboard, ordered by
	// date descending. An empty dashboard yields an empty slice, not an error.
	ListByDashboard(ctx context.Context, dashboardID string) ([]domain.Transaction, error)

	// FindByID retrieves one transaction, scoped to the given dashboard.
	FindByID(ctx context.Context, transactionID, dashboardID string) (*domain.Transaction, error)
}

// TransactionWriter defines write operations for transaction data.
type TransactionWriter interface {
	// SaveTransaction persists a new transaction.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// UpdateTransaction overwrites a transaction's mutable fields, scoped to
	// the given dashboard. Returns apperrors.ErrNotFound when the id does not
	// belong to the dashboard.
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error

	// UpdateTransactionVersioned performs a compare-and-swap update against
	// txn.Version. Returns apperrors.ErrConflict when another writer advanced
	// the row first; used for the installment progression write.
	UpdateTransactionVersioned(ctx context.Context, txn domain.Transaction) error

	// DeleteTransaction removes a transaction unconditionally, scoped to the
	// given dashboard. Mid-schedule installment purchases are deleted whole.
	DeleteTransaction(ctx context.Context, transactionID, dashboardID string) error
}

// TransactionRepositoryFacade combines all transaction repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}

// TransactionRepositoryWithTx extends the facade with transaction capabilities.
type TransactionRepositoryWithTx interface {
	TransactionRepositoryFacade
	TransactionManager
}
