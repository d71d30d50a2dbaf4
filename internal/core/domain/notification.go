package domain

import "time"

// InstallmentNotice is the transient in-app notification queued when an
// installment is paid, either manually or by the automatic sweep. It lives
// in memory until the user dismisses it; nothing is persisted.
type InstallmentNotice struct {
	TransactionID string    `json:"transactionID"`
	DashboardID   string    `json:"dashboardID"`
	Description   string    `json:"description"`
	Current       int       `json:"current"` // 1-based index of the installment just paid
	Total         int       `json:"total"`
	OccurredAt    time.Time `json:"occurredAt"`
}
