package mapping

import (
	"github.com/calema/findash_backend/internal/core/domain"
	"github.com/calema/findash_backend/internal/models"
)

// ToModelTransaction converts a domain Transaction to its row shape. A nil
// installment plan maps to NULL installment columns.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	m := models.Transaction{
		TransactionID: d.TransactionID,
		DashboardID:   d.DashboardID,
		Description:   d.Description,
		Amount:        d.Amount,
		Type:          string(d.Type),
		Status:        string(d.Status),
		Category:      d.Category,
		Account:       d.Account,
		Method:        d.Method,
		Date:          d.Date,
		Version:       d.Version,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
	if p := d.Installment; p != nil {
		installments := p.Total
		current := p.Current
		totalAmount := p.TotalAmount
		remaining := p.RemainingAmount
		m.Installments = &installments
		m.CurrentInstallment = &current
		m.TotalAmount = &totalAmount
		m.RemainingAmount = &remaining
		m.NextPaymentDate = p.NextPaymentDate
	}
	return m
}

// ToDomainTransaction converts a transactions row to the domain model. The
// installments column being NULL marks a plain transaction.
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	d := domain.Transaction{
		TransactionID: m.TransactionID,
		DashboardID:   m.DashboardID,
		Description:   m.Description,
		Amount:        m.Amount,
		Type:          domain.TransactionType(m.Type),
		Status:        domain.TransactionStatus(m.Status),
		Category:      m.Category,
		Account:       m.Account,
		Method:        m.Method,
		Date:          m.Date,
		Version:       m.Version,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
	if m.Installments != nil {
		plan := domain.InstallmentPlan{
			Total:           *m.Installments,
			NextPaymentDate: m.NextPaymentDate,
		}
		if m.CurrentInstallment != nil {
			plan.Current = *m.CurrentInstallment
		}
		if m.TotalAmount != nil {
			plan.TotalAmount = *m.TotalAmount
		}
		if m.RemainingAmount != nil {
			plan.RemainingAmount = *m.RemainingAmount
		}
		d.Installment = &plan
	}
	return d
}

// ToDomainTransactions converts a slice of rows.
func ToDomainTransactions(ms []models.Transaction) []domain.Transaction {
	out := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		out[i] = ToDomainTransaction(m)
	}
	return out
}
