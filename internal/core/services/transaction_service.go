package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/calema/findash_backend/internal/apperrors"
	"github.com/calema/findash_backend/internal/core/domain"
	portsrepo "github.com/calema/findash_backend/internal/core/ports/repositories"
	portssvc "github.com/calema/findash_backend/internal/core/ports/services"
	"github.com/calema/findash_backend/internal/dto"
	"github.com/calema/findash_backend/internal/middleware"
	"github.com/calema/findash_backend/internal/platform/metrics"
	"github.com/google/uuid"
)

// TransactionService implements the transaction lifecycle, including the
// manual pay-installment entry point of the progression engine.
type TransactionService struct {
	txnRepo       portsrepo.TransactionRepositoryWithTx
	authorizer    portssvc.DashboardAuthorizerSvc
	notifications portssvc.NotificationSvcFacade
	clock         Clock
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(tr portsrepo.TransactionRepositoryWithTx, authorizer portssvc.DashboardAuthorizerSvc, notifications portssvc.NotificationSvcFacade, clock Clock) *TransactionService {
	if clock == nil {
		clock = SystemClock{}
	}
	return &TransactionService{
		txnRepo:       tr,
		authorizer:    authorizer,
		notifications: notifications,
		clock:         clock,
	}
}

var _ portssvc.TransactionSvcFacade = (*TransactionService)(nil)

// ListTransactions returns the dashboard's transactions, newest first.
func (s *TransactionService) ListTransactions(ctx context.Context, dashboardID, userID string) ([]domain.Transaction, error) {
	if err := s.authorizer.AuthorizeUserAction(ctx, userID, dashboardID, domain.RoleMember); err != nil {
		return nil, err
	}
	txns, err := s.txnRepo.ListByDashboard(ctx, dashboardID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txns, nil
}

// CreateTransaction persists a new transaction. Installment purchases start
// with zero installments paid and the full amount remaining; the next payment
// date defaults to the transaction date when the client omits it.
func (s *TransactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, userID string) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.authorizer.AuthorizeUserAction(ctx, userID, req.DashboardID, domain.RoleMember); err != nil {
		return nil, err
	}

	txn, err := s.buildTransaction(req, userID)
	if err != nil {
		return nil, err
	}

	if err := txn.Validate(); err != nil {
		return nil, apperrors.NewValidationFailedError(err.Error(), err)
	}

	if err := s.txnRepo.SaveTransaction(ctx, *txn); err != nil {
		logger.Error("Failed to save transaction", slog.String("error", err.Error()), slog.String("dashboard_id", req.DashboardID))
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	logger.Info("Transaction created",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("dashboard_id", txn.DashboardID),
		slog.Bool("installment", txn.IsInstallment()))
	return txn, nil
}

func (s *TransactionService) buildTransaction(req dto.CreateTransactionRequest, userID string) (*domain.Transaction, error) {
	date, err := dto.ParseWireDate(req.Data)
	if err != nil {
		return nil, apperrors.NewValidationFailedError(err.Error(), err)
	}

	txnType := domain.Expense
	if req.Tipo == "receita" {
		txnType = domain.Income
	}

	status := domain.StatusPending
	if req.Status != "" {
		status = domain.TransactionStatus(req.Status)
	}

	now := s.clock.Now()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		DashboardID:   req.DashboardID,
		Description:   req.Descricao,
		Type:          txnType,
		Status:        status,
		Category:      req.Categoria,
		Account:       req.Account,
		Method:        req.Method,
		Date:          date,
		Version:       1,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if req.Installments != nil && *req.Installments > 1 {
		if req.TotalAmount == nil {
			return nil, apperrors.NewValidationFailedError("totalamount is required for installment purchases", nil)
		}
		next := date
		if req.NextPaymentDate != nil {
			next, err = dto.ParseWireDate(*req.NextPaymentDate)
			if err != nil {
				return nil, apperrors.NewValidationFailedError(err.Error(), err)
			}
		}
		txn.Installment = &domain.InstallmentPlan{
			Total:           *req.Installments,
			Current:         0,
			TotalAmount:     *req.TotalAmount,
			RemainingAmount: *req.TotalAmount,
			NextPaymentDate: &next,
		}
		txn.Status = domain.StatusPending
		// The headline amount of an installment purchase is always the
		// per-payment share, not the full purchase price. A client-supplied
		// valor is ignored here; it cannot disagree with the schedule.
		txn.Amount = txn.Installment.Share()
	} else {
		if req.Valor == nil {
			return nil, apperrors.NewValidationFailedError("valor is required", nil)
		}
		txn.Amount = *req.Valor
	}

	return &txn, nil
}

// UpdateTransaction applies partial field updates to an existing transaction.
func (s *TransactionService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest, userID string) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.authorizer.AuthorizeUserAction(ctx, userID, req.DashboardID, domain.RoleMember); err != nil {
		return nil, err
	}

	txn, err := s.txnRepo.FindByID(ctx, transactionID, req.DashboardID)
	if err != nil {
		return nil, err
	}

	// Status and amount of an installment transaction are owned by the
	// schedule; only AdvanceInstallment moves them.
	if txn.IsInstallment() {
		if req.Status != nil {
			return nil, apperrors.NewValidationFailedError("status of an installment transaction is driven by its schedule", nil)
		}
		if req.Valor != nil {
			return nil, apperrors.NewValidationFailedError("valor of an installment transaction is the per-payment share and cannot be edited", nil)
		}
	}

	if req.Descricao != nil {
		txn.Description = *req.Descricao
	}
	if req.Valor != nil {
		txn.Amount = *req.Valor
	}
	if req.Tipo != nil {
		if *req.Tipo == "receita" {
			txn.Type = domain.Income
		} else {
			txn.Type = domain.Expense
		}
	}
	if req.Categoria != nil {
		txn.Category = *req.Categoria
	}
	if req.Data != nil {
		date, err := dto.ParseWireDate(*req.Data)
		if err != nil {
			return nil, apperrors.NewValidationFailedError(err.Error(), err)
		}
		txn.Date = date
	}
	if req.Status != nil {
		txn.Status = domain.TransactionStatus(*req.Status)
	}
	if req.Method != nil {
		txn.Method = *req.Method
	}
	if req.Account != nil {
		txn.Account = *req.Account
	}

	if err := txn.Validate(); err != nil {
		return nil, apperrors.NewValidationFailedError(err.Error(), err)
	}

	txn.LastUpdatedAt = s.clock.Now()
	txn.LastUpdatedBy = userID

	if err := s.txnRepo.UpdateTransaction(ctx, *txn); err != nil {
		logger.Error("Failed to update transaction", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		return nil, err
	}
	txn.Version++
	return txn, nil
}

// DeleteTransaction removes a transaction unconditionally, whatever its
// installment state.
func (s *TransactionService) DeleteTransaction(ctx context.Context, transactionID, dashboardID, userID string) error {
	if err := s.authorizer.AuthorizeUserAction(ctx, userID, dashboardID, domain.RoleMember); err != nil {
		return err
	}
	if err := s.txnRepo.DeleteTransaction(ctx, transactionID, dashboardID); err != nil {
		return err
	}
	middleware.GetLoggerFromCtx(ctx).Info("Transaction deleted",
		slog.String("transaction_id", transactionID),
		slog.String("dashboard_id", dashboardID))
	return nil
}

// PayInstallment advances one installment of the transaction and persists the
// result with a compare-and-swap on the version column, so a concurrent sweep
// and a user click can never both count the same installment.
func (s *TransactionService) PayInstallment(ctx context.Context, transactionID, dashboardID, userID string) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.authorizer.AuthorizeUserAction(ctx, userID, dashboardID, domain.RoleMember); err != nil {
		return nil, err
	}

	txn, err := s.txnRepo.FindByID(ctx, transactionID, dashboardID)
	if err != nil {
		return nil, err
	}

	advanced, err := txn.AdvanceInstallment()
	if err != nil {
		return nil, apperrors.NewValidationFailedError(err.Error(), err)
	}
	advanced.LastUpdatedAt = s.clock.Now()
	advanced.LastUpdatedBy = userID

	if err := s.txnRepo.UpdateTransactionVersioned(ctx, advanced); err != nil {
		logger.Warn("Installment advance lost the version race",
			slog.String("transaction_id", transactionID),
			slog.Int64("version", advanced.Version))
		return nil, err
	}
	advanced.Version++
	metrics.InstallmentsAdvanced.WithLabelValues("manual").Inc()

	logger.Info("Installment paid",
		slog.String("transaction_id", transactionID),
		slog.Int("current", advanced.Installment.Current),
		slog.Int("total", advanced.Installment.Total))

	s.notifications.Notify(ctx, domain.InstallmentNotice{
		TransactionID: advanced.TransactionID,
		DashboardID:   advanced.DashboardID,
		Description:   advanced.Description,
		Current:       advanced.Installment.Current,
		Total:         advanced.Installment.Total,
		OccurredAt:    s.clock.Now(),
	})

	return &advanced, nil
}
