package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the transactions row. The installment columns are nullable
// and either all set or all NULL (except next_payment_date, which goes NULL
// once the schedule completes); a row with NULL installments is a plain
// one-off transaction.
type Transaction struct {
	TransactionID string          `db:"transaction_id"`
	DashboardID   string          `db:"dashboard_id"`
	Description   string          `db:"description"`
	Amount        decimal.Decimal `db:"amount"`
	Type          string          `db:"type"`
	Status        string          `db:"status"`
	Category      string          `db:"category"`
	Account       string          `db:"account"`
	Method        string          `db:"method"`
	Date          time.Time       `db:"date"`

	Installments       *int             `db:"installments"`
	CurrentInstallment *int             `db:"current_installment"`
	TotalAmount        *decimal.Decimal `db:"total_amount"`
	RemainingAmount    *decimal.Decimal `db:"remaining_amount"`
	NextPaymentDate    *time.Time       `db:"next_payment_date"`

	Version int64 `db:"version"` // optimistic concurrency token
	AuditFields
}
