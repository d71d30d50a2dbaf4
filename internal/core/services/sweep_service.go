package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/calema/findash_backend/internal/core/domain"
	portsrepo "github.com/calema/findash_backend/internal/core/ports/repositories"
	portssvc "github.com/calema/findash_backend/internal/core/ports/services"
	"github.com/calema/findash_backend/internal/middleware"
	"github.com/calema/findash_backend/internal/platform/metrics"
)

// SweepService is the automatic half of the installment progression engine.
// Each pass advances every due schedule of a dashboard by exactly one step;
// a schedule that fell several months behind catches up across passes, one
// installment per pass.
type SweepService struct {
	txnRepo       portsrepo.TransactionRepositoryWithTx
	notifications portssvc.NotificationSvcFacade
	clock         Clock
}

// NewSweepService creates a new SweepService.
func NewSweepService(tr portsrepo.TransactionRepositoryWithTx, notifications portssvc.NotificationSvcFacade, clock Clock) *SweepService {
	if clock == nil {
		clock = SystemClock{}
	}
	return &SweepService{
		txnRepo:       tr,
		notifications: notifications,
		clock:         clock,
	}
}

var _ portssvc.InstallmentSweeperSvc = (*SweepService)(nil)

// SweepDashboard scans the dashboard's transactions and advances each due
// installment schedule once. Per-transaction failures, including losing the
// version race to a concurrent manual payment, are logged and skipped so the
// rest of the pass still runs. Returns the number of schedules advanced.
func (s *SweepService) SweepDashboard(ctx context.Context, dashboardID string) (int, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	today := s.clock.Now()

	txns, err := s.txnRepo.ListByDashboard(ctx, dashboardID)
	if err != nil {
		return 0, fmt.Errorf("sweep failed to list transactions for dashboard %s: %w", dashboardID, err)
	}

	advancedCount := 0
	for i := range txns {
		txn := txns[i]
		if !txn.DueForAdvance(today) {
			continue
		}

		advanced, err := txn.AdvanceInstallment()
		if err != nil {
			// DueForAdvance already filtered these out; log and move on.
			logger.Warn("Sweep skipped unadvanceable transaction",
				slog.String("transaction_id", txn.TransactionID),
				slog.String("error", err.Error()))
			continue
		}
		advanced.LastUpdatedAt = today

		if err := s.txnRepo.UpdateTransactionVersioned(ctx, advanced); err != nil {
			logger.Warn("Sweep failed to persist installment advance",
				slog.String("transaction_id", txn.TransactionID),
				slog.String("dashboard_id", dashboardID),
				slog.String("error", err.Error()))
			continue
		}

		advancedCount++
		metrics.InstallmentsAdvanced.WithLabelValues("sweep").Inc()

		s.notifications.Notify(ctx, domain.InstallmentNotice{
			TransactionID: advanced.TransactionID,
			DashboardID:   advanced.DashboardID,
			Description:   advanced.Description,
			Current:       advanced.Installment.Current,
			Total:         advanced.Installment.Total,
			OccurredAt:    today,
		})
	}

	metrics.SweepRuns.Inc()
	if advancedCount > 0 {
		logger.Info("Sweep advanced installments",
			slog.String("dashboard_id", dashboardID),
			slog.Int("advanced", advancedCount))
	}
	return advancedCount, nil
}
