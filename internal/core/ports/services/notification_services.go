package services

import (
	"context"

	"github.com/calema/findash_backend/internal/core/domain"
)

// NotificationSvcFacade is the transient in-app notification queue fed by the
// installment engine and drained by the user dismissing entries.
type NotificationSvcFacade interface {
	// Notify queues a notice for the dashboard it belongs to.
	Notify(ctx context.Context, notice domain.InstallmentNotice)

	// ListNotifications returns the dashboard's pending notices, oldest first.
	ListNotifications(ctx context.Context, dashboardID string) []domain.InstallmentNotice

	// DismissNotification drops the notice for one transaction; dismissing an
	// absent notice is a no-op.
	DismissNotification(ctx context.Context, dashboardID, transactionID string)
}
