package dto

import (
	"fmt"
	"time"

	"github.com/calema/findash_backend/internal/core/domain"
)

// InstallmentNoticeResponse is the wire shape of a transient installment
// notification, including the "3/12" style label the UI renders.
type InstallmentNoticeResponse struct {
	TransactionID string    `json:"transactionID"`
	Description   string    `json:"description"`
	Installment   string    `json:"installment"` // e.g. "3/12"
	Current       int       `json:"current"`
	Total         int       `json:"total"`
	OccurredAt    time.Time `json:"occurredAt"`
}

// ListNotificationsResponse wraps a dashboard's pending notices.
type ListNotificationsResponse struct {
	Notifications []InstallmentNoticeResponse `json:"notifications"`
}

// ToListNotificationsResponse converts pending notices to the wire shape.
func ToListNotificationsResponse(notices []domain.InstallmentNotice) ListNotificationsResponse {
	out := make([]InstallmentNoticeResponse, len(notices))
	for i, n := range notices {
		out[i] = InstallmentNoticeResponse{
			TransactionID: n.TransactionID,
			Description:   n.Description,
			Installment:   fmt.Sprintf("%d/%d", n.Current, n.Total),
			Current:       n.Current,
			Total:         n.Total,
			OccurredAt:    n.OccurredAt,
		}
	}
	return ListNotificationsResponse{Notifications: out}
}
