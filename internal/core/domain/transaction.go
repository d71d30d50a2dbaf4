package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a transaction is money coming in or going out.
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// TransactionStatus is the lifecycle state of a transaction.
// Completed is terminal: an installment schedule finished, or a
// non-installment transaction was marked paid.
type TransactionStatus string

const (
	StatusPending   TransactionStatus = "pending"
	StatusCompleted TransactionStatus = "completed"
)

var (
	// ErrNotInstallment is returned when the installment engine is invoked on
	// a transaction that carries no installment plan.
	ErrNotInstallment = errors.New("transaction is not an installment purchase")
	// ErrInstallmentsExhausted is returned when every installment has already
	// been paid. Advancing past exhaustion is a contract violation, not a no-op.
	ErrInstallmentsExhausted = errors.New("all installments have already been paid")
)

// InstallmentPlan is the schedule attached to an installment purchase.
// Its presence on a Transaction is what makes the transaction an installment
// purchase; a nil plan means a plain one-off transaction.
type InstallmentPlan struct {
	Total           int             `json:"total"`           // N, fixed at creation, N > 1
	Current         int             `json:"current"`         // installments already paid, in [0, N]
	TotalAmount     decimal.Decimal `json:"totalAmount"`     // full purchase price
	RemainingAmount decimal.Decimal `json:"remainingAmount"` // balance still owed, floored at 0
	NextPaymentDate *time.Time      `json:"nextPaymentDate"` // nil once the schedule is exhausted
}

// Exhausted reports whether every installment has been paid.
func (p InstallmentPlan) Exhausted() bool {
	return p.Current >= p.Total
}

// Share is the per-installment amount: TotalAmount / Total rounded to cents.
// Recomputed rather than stored so every advance uses the same figure.
func (p InstallmentPlan) Share() decimal.Decimal {
	return InstallmentShare(p.TotalAmount, p.Total)
}

// InstallmentShare computes the per-installment value of a purchase,
// rounded to two decimal places.
func InstallmentShare(totalAmount decimal.Decimal, installments int) decimal.Decimal {
	return totalAmount.Div(decimal.NewFromInt(int64(installments))).Round(2)
}

// Transaction is the central entity: a single payment, or the head record of
// an installment purchase when Installment is non-nil.
type Transaction struct {
	TransactionID string            `json:"transactionID"` // Primary Key (UUID), immutable
	DashboardID   string            `json:"dashboardID"`   // FK -> Dashboard.dashboardID
	Description   string            `json:"description"`
	Amount        decimal.Decimal   `json:"amount"` // amount attributable to this installment, not the total purchase
	Type          TransactionType   `json:"type"`
	Status        TransactionStatus `json:"status"`
	Category      string            `json:"category"` // descriptive only, no lifecycle impact
	Account       string            `json:"account"`
	Method        string            `json:"method"`
	Date          time.Time         `json:"date"` // calendar date of the transaction
	Installment   *InstallmentPlan  `json:"installment,omitempty"`
	Version       int64             `json:"version"` // optimistic concurrency token
	AuditFields
}

// IsInstallment reports whether this transaction carries an installment schedule.
func (t Transaction) IsInstallment() bool {
	return t.Installment != nil && t.Installment.Total > 1
}

// DueForAdvance reports whether the automatic sweep should advance this
// transaction: pending, schedule not exhausted, and the next payment date has
// arrived (compared at day granularity).
func (t Transaction) DueForAdvance(today time.Time) bool {
	if !t.IsInstallment() || t.Status != StatusPending {
		return false
	}
	p := t.Installment
	if p.Exhausted() || p.NextPaymentDate == nil {
		return false
	}
	return !DateOnly(today).Before(DateOnly(*p.NextPaymentDate))
}

// AdvanceInstallment moves the schedule from installment k to k+1 and returns
// the resulting transaction value; the receiver is not mutated. The final
// advance zeroes the remaining balance outright, so rounding residue from
// non-divisible totals is absorbed by the last installment and the schedule
// converges to exactly zero after Total advances.
func (t Transaction) AdvanceInstallment() (Transaction, error) {
	if !t.IsInstallment() {
		return Transaction{}, ErrNotInstallment
	}
	if t.Installment.Exhausted() {
		return Transaction{}, ErrInstallmentsExhausted
	}

	plan := *t.Installment
	plan.Current++
	isLast := plan.Current >= plan.Total

	if isLast {
		plan.RemainingAmount = decimal.Zero
		plan.NextPaymentDate = nil
		t.Status = StatusCompleted
	} else {
		remaining := plan.RemainingAmount.Sub(plan.Share())
		if remaining.IsNegative() {
			remaining = decimal.Zero
		}
		plan.RemainingAmount = remaining
		if plan.NextPaymentDate != nil {
			next := AddMonthClamped(DateOnly(*plan.NextPaymentDate))
			plan.NextPaymentDate = &next
		}
		t.Status = StatusPending
	}

	t.Installment = &plan
	return t, nil
}

// Validate checks the installment invariants. Plain transactions only need a
// positive amount; installment transactions must satisfy the full set.
func (t Transaction) Validate() error {
	if t.Amount.IsNegative() {
		return fmt.Errorf("transaction amount must not be negative")
	}
	if t.Installment == nil {
		return nil
	}
	p := t.Installment
	if p.Total <= 1 {
		return fmt.Errorf("installment plan requires more than one installment, got %d", p.Total)
	}
	if p.Current < 0 || p.Current > p.Total {
		return fmt.Errorf("current installment %d out of range [0, %d]", p.Current, p.Total)
	}
	if p.TotalAmount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("installment total amount must be positive")
	}
	if p.RemainingAmount.IsNegative() {
		return fmt.Errorf("remaining amount must not be negative")
	}
	exhausted := p.Exhausted()
	if exhausted != (t.Status == StatusCompleted) {
		return fmt.Errorf("status %q inconsistent with %d/%d installments paid", t.Status, p.Current, p.Total)
	}
	hasNextDate := p.NextPaymentDate != nil
	if hasNextDate == exhausted {
		return fmt.Errorf("next payment date must be present exactly while the schedule is pending")
	}
	return nil
}
