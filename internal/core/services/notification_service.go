package services

import (
	"context"
	"log/slog"
	"sync"

	"github.com/calema/findash_backend/internal/core/domain"
	portssvc "github.com/calema/findash_backend/internal/core/ports/services"
	"github.com/calema/findash_backend/internal/middleware"
)

// NotificationService keeps the transient installment notices in memory,
// one queue per dashboard. Notices survive until dismissed or the process
// restarts; there is deliberately no persistence.
type NotificationService struct {
	mu      sync.Mutex
	pending map[string][]domain.InstallmentNotice // dashboardID -> notices, oldest first
}

// NewNotificationService creates an empty in-memory notification queue.
func NewNotificationService() *NotificationService {
	return &NotificationService{
		pending: make(map[string][]domain.InstallmentNotice),
	}
}

var _ portssvc.NotificationSvcFacade = (*NotificationService)(nil)

// Notify queues a notice on its dashboard. A second notice for the same
// transaction replaces the first, keeping the queue at one entry per schedule.
func (s *NotificationService) Notify(ctx context.Context, notice domain.InstallmentNotice) {
	s.mu.Lock()
	defer s.mu.Unlock()

	queue := s.pending[notice.DashboardID]
	for i := range queue {
		if queue[i].TransactionID == notice.TransactionID {
			queue[i] = notice
			return
		}
	}
	s.pending[notice.DashboardID] = append(queue, notice)

	middleware.GetLoggerFromCtx(ctx).Debug("Installment notice queued",
		slog.String("dashboard_id", notice.DashboardID),
		slog.String("transaction_id", notice.TransactionID),
		slog.Int("current", notice.Current),
		slog.Int("total", notice.Total))
}

// ListNotifications returns the dashboard's pending notices, oldest first.
func (s *NotificationService) ListNotifications(ctx context.Context, dashboardID string) []domain.InstallmentNotice {
	s.mu.Lock()
	defer s.mu.Unlock()

	queue := s.pending[dashboardID]
	out := make([]domain.InstallmentNotice, len(queue))
	copy(out, queue)
	return out
}

// DismissNotification drops the notice for one transaction. Dismissing an
// absent notice is a no-op.
func (s *NotificationService) DismissNotification(ctx context.Context, dashboardID, transactionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	queue := s.pending[dashboardID]
	for i := range queue {
		if queue[i].TransactionID == transactionID {
			s.pending[dashboardID] = append(queue[:i], queue[i+1:]...)
			return
		}
	}
}
