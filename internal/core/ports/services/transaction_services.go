package services

import (
	"context"

	"github.com/calema/findash_backend/internal/core/domain"
	"github.com/calema/findash_backend/internal/dto"
)

// TransactionSvcFacade covers the transaction lifecycle, including the manual
// pay-installment entry point. Every operation is access-guarded.
type TransactionSvcFacade interface {
	// ListTransactions returns the dashboard's transactions, newest first.
	ListTransactions(ctx context.Context, dashboardID, userID string) ([]domain.Transaction, error)

	// CreateTransaction persists a new transaction; installment fields get
	// their creation defaults (currentInstallment=0, remaining=total).
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, userID string) (*domain.Transaction, error)

	// UpdateTransaction applies partial field updates.
	UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest, userID string) (*domain.Transaction, error)

	// DeleteTransaction removes a transaction unconditionally, whatever its
	// installment state.
	DeleteTransaction(ctx context.Context, transactionID, dashboardID, userID string) error

	// PayInstallment advances the next due installment of one transaction and
	// persists the result atomically (compute then write, never partial).
	PayInstallment(ctx context.Context, transactionID, dashboardID, userID string) (*domain.Transaction, error)
}

// InstallmentSweeperSvc is the automatic entry point of the progression
// engine, driven by the session timers rather than user action.
type InstallmentSweeperSvc interface {
	// SweepDashboard advances every due installment schedule of the dashboard
	// by exactly one step and reports how many advanced. Per-transaction
	// failures are logged and skipped, not propagated.
	SweepDashboard(ctx context.Context, dashboardID string) (int, error)
}
