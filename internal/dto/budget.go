package dto

import (
	"github.com/calema/findash_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateBudgetRequest is the POST /orcamentos body.
type CreateBudgetRequest struct {
	DashboardID string           `json:"dashboard_id" binding:"required"`
	Categoria   string           `json:"categoria" binding:"required"`
	ValorLimite decimal.Decimal  `json:"valor_limite" binding:"required"`
	ValorGasto  *decimal.Decimal `json:"valor_gasto"`
	Mes         int              `json:"mes" binding:"required,min=1,max=12"`
	Ano         int              `json:"ano" binding:"required"`
}

// UpdateBudgetRequest is the PUT /orcamentos/:id body.
type UpdateBudgetRequest struct {
	DashboardID string           `json:"dashboard_id" binding:"required"`
	Categoria   *string          `json:"categoria"`
	ValorLimite *decimal.Decimal `json:"valor_limite"`
	ValorGasto  *decimal.Decimal `json:"valor_gasto"`
	Mes         *int             `json:"mes" binding:"omitempty,min=1,max=12"`
	Ano         *int             `json:"ano"`
}

// BudgetResponse is the wire shape of a budget.
type BudgetResponse struct {
	LegacyID    string          `json:"_id"`
	ID          string          `json:"id"`
	Categoria   string          `json:"categoria"`
	ValorLimite decimal.Decimal `json:"valor_limite"`
	ValorGasto  decimal.Decimal `json:"valor_gasto"`
	Mes         int             `json:"mes"`
	Ano         int             `json:"ano"`
}

// ListBudgetsResponse wraps the list payload.
type ListBudgetsResponse struct {
	Orcamentos []BudgetResponse `json:"orcamentos"`
}

// ToBudgetResponse converts a domain.Budget to its wire shape.
func ToBudgetResponse(b *domain.Budget) BudgetResponse {
	return BudgetResponse{
		LegacyID:    b.BudgetID,
		ID:          b.BudgetID,
		Categoria:   b.Category,
		ValorLimite: b.LimitAmount,
		ValorGasto:  b.SpentAmount,
		Mes:         b.Month,
		Ano:         b.Year,
	}
}

// ToListBudgetsResponse converts a slice of domain budgets.
func ToListBudgetsResponse(budgets []domain.Budget) ListBudgetsResponse {
	out := make([]BudgetResponse, len(budgets))
	for i := range budgets {
		out[i] = ToBudgetResponse(&budgets[i])
	}
	return ListBudgetsResponse{Orcamentos: out}
}
