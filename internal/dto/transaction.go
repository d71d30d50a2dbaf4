package dto

import (
	"fmt"
	"time"

	"github.com/calema/findash_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// The HTTP surface keeps the original product's wire vocabulary: lower-case,
// Portuguese-flavored field names (descricao, valor, tipo receita/despesa...)
// that existing clients depend on. The converters below are the single place
// where wire names meet the domain model, and they are invertible: domain ->
// response -> domain restores every wire-visible field.

const wireDateLayout = "2006-01-02"

const (
	wireTipoReceita = "receita"
	wireTipoDespesa = "despesa"
)

// CreateTransactionRequest is the POST /transacoes body.
type CreateTransactionRequest struct {
	DashboardID string           `json:"dashboard_id" binding:"required"`
	Descricao   string           `json:"descricao" binding:"required"`
	Valor       *decimal.Decimal `json:"valor"`
	Tipo        string           `json:"tipo" binding:"required,oneof=receita despesa"`
	Categoria   string           `json:"categoria"`
	Data        string           `json:"data" binding:"required"`
	Status      string           `json:"status" binding:"omitempty,oneof=pending completed"`
	Method      string           `json:"method"`
	Account     string           `json:"account"`

	// Installment fields; present only for installment purchases.
	Installments    *int             `json:"installments"`
	TotalAmount     *decimal.Decimal `json:"totalamount"`
	NextPaymentDate *string          `json:"nextpaymentdate"`
}

// UpdateTransactionRequest is the PUT /transacoes/:id body; every field is
// optional except the dashboard scope.
type UpdateTransactionRequest struct {
	DashboardID string           `json:"dashboard_id" binding:"required"`
	Descricao   *string          `json:"descricao"`
	Valor       *decimal.Decimal `json:"valor"`
	Tipo        *string          `json:"tipo" binding:"omitempty,oneof=receita despesa"`
	Categoria   *string          `json:"categoria"`
	Data        *string          `json:"data"`
	Status      *string          `json:"status" binding:"omitempty,oneof=pending completed"`
	Method      *string          `json:"method"`
	Account     *string          `json:"account"`
}

// PayInstallmentRequest is the POST /transacoes/:id/pay-installment body.
type PayInstallmentRequest struct {
	DashboardID string `json:"dashboard_id" binding:"required"`
}

// TransactionResponse is the wire shape of a transaction. LegacyID echoes the
// id under "_id" as the original API always did.
type TransactionResponse struct {
	LegacyID    string          `json:"_id"`
	ID          string          `json:"id"`
	DashboardID string          `json:"dashboard_id"`
	Descricao   string          `json:"descricao"`
	Valor       decimal.Decimal `json:"valor"`
	Tipo        string          `json:"tipo"`
	Categoria   string          `json:"categoria"`
	Data        string          `json:"data"`
	Status      string          `json:"status"`
	Method      string          `json:"method"`
	Account     string          `json:"account"`

	Installments       *int             `json:"installments,omitempty"`
	CurrentInstallment *int             `json:"currentinstallment,omitempty"`
	TotalAmount        *decimal.Decimal `json:"totalamount,omitempty"`
	RemainingAmount    *decimal.Decimal `json:"remainingamount,omitempty"`
	NextPaymentDate    *string          `json:"nextpaymentdate,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ListTransactionsResponse wraps the canonical list payload.
type ListTransactionsResponse struct {
	Transacoes []TransactionResponse `json:"transacoes"`
}

// ToTransactionResponse converts a domain.Transaction to its wire shape.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	resp := TransactionResponse{
		LegacyID:    t.TransactionID,
		ID:          t.TransactionID,
		DashboardID: t.DashboardID,
		Descricao:   t.Description,
		Valor:       t.Amount,
		Tipo:        tipoFromType(t.Type),
		Categoria:   t.Category,
		Data:        t.Date.Format(wireDateLayout),
		Status:      string(t.Status),
		Method:      t.Method,
		Account:     t.Account,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.LastUpdatedAt,
	}
	if p := t.Installment; p != nil {
		installments := p.Total
		current := p.Current
		total := p.TotalAmount
		remaining := p.RemainingAmount
		resp.Installments = &installments
		resp.CurrentInstallment = &current
		resp.TotalAmount = &total
		resp.RemainingAmount = &remaining
		if p.NextPaymentDate != nil {
			next := p.NextPaymentDate.Format(wireDateLayout)
			resp.NextPaymentDate = &next
		}
	}
	return resp
}

// ToListTransactionsResponse converts a slice of domain transactions.
func ToListTransactionsResponse(txns []domain.Transaction) ListTransactionsResponse {
	out := make([]TransactionResponse, len(txns))
	for i := range txns {
		out[i] = ToTransactionResponse(&txns[i])
	}
	return ListTransactionsResponse{Transacoes: out}
}

// ToDomain converts a wire transaction back to the domain model. Inverse of
// ToTransactionResponse for every wire-visible field.
func (r TransactionResponse) ToDomain() (domain.Transaction, error) {
	date, err := ParseWireDate(r.Data)
	if err != nil {
		return domain.Transaction{}, err
	}
	txnType, err := typeFromTipo(r.Tipo)
	if err != nil {
		return domain.Transaction{}, err
	}

	t := domain.Transaction{
		TransactionID: r.ID,
		DashboardID:   r.DashboardID,
		Description:   r.Descricao,
		Amount:        r.Valor,
		Type:          txnType,
		Status:        domain.TransactionStatus(r.Status),
		Category:      r.Categoria,
		Account:       r.Account,
		Method:        r.Method,
		Date:          date,
	}
	t.CreatedAt = r.CreatedAt
	t.LastUpdatedAt = r.UpdatedAt

	if r.Installments != nil {
		plan := domain.InstallmentPlan{Total: *r.Installments}
		if r.CurrentInstallment != nil {
			plan.Current = *r.CurrentInstallment
		}
		if r.TotalAmount != nil {
			plan.TotalAmount = *r.TotalAmount
		}
		if r.RemainingAmount != nil {
			plan.RemainingAmount = *r.RemainingAmount
		}
		if r.NextPaymentDate != nil {
			next, err := ParseWireDate(*r.NextPaymentDate)
			if err != nil {
				return domain.Transaction{}, err
			}
			plan.NextPaymentDate = &next
		}
		t.Installment = &plan
	}
	return t, nil
}

// ParseWireDate parses the API's calendar-date format.
func ParseWireDate(s string) (time.Time, error) {
	d, err := time.Parse(wireDateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", s, err)
	}
	return d, nil
}

func tipoFromType(t domain.TransactionType) string {
	if t == domain.Income {
		return wireTipoReceita
	}
	return wireTipoDespesa
}

func typeFromTipo(tipo string) (domain.TransactionType, error) {
	switch tipo {
	case wireTipoReceita:
		return domain.Income, nil
	case wireTipoDespesa:
		return domain.Expense, nil
	default:
		return "", fmt.Errorf("invalid tipo %q, expected receita or despesa", tipo)
	}
}
