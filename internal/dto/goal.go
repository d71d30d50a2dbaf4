package dto

import (
	"github.com/calema/findash_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Goal wire format keeps the original's meta vocabulary.

// CreateGoalRequest is the POST /metas body.
type CreateGoalRequest struct {
	DashboardID string           `json:"dashboard_id" binding:"required"`
	Nome        string           `json:"nome" binding:"required"`
	ValorAlvo   decimal.Decimal  `json:"valor_alvo" binding:"required"`
	ValorAtual  *decimal.Decimal `json:"valor_atual"`
	DataLimite  *string          `json:"data_limite"`
	Categoria   string           `json:"categoria"`
}

// UpdateGoalRequest is the PUT /metas/:id body.
type UpdateGoalRequest struct {
	DashboardID string           `json:"dashboard_id" binding:"required"`
	Nome        *string          `json:"nome"`
	ValorAlvo   *decimal.Decimal `json:"valor_alvo"`
	ValorAtual  *decimal.Decimal `json:"valor_atual"`
	DataLimite  *string          `json:"data_limite"`
	Categoria   *string          `json:"categoria"`
}

// GoalResponse is the wire shape of a goal.
type GoalResponse struct {
	LegacyID   string          `json:"_id"`
	ID         string          `json:"id"`
	Nome       string          `json:"nome"`
	ValorAlvo  decimal.Decimal `json:"valor_alvo"`
	ValorAtual decimal.Decimal `json:"valor_atual"`
	DataLimite *string         `json:"data_limite,omitempty"`
	Categoria  string          `json:"categoria"`
}

// ListGoalsResponse wraps the list payload.
type ListGoalsResponse struct {
	Metas []GoalResponse `json:"metas"`
}

// ToGoalResponse converts a domain.Goal to its wire shape.
func ToGoalResponse(g *domain.Goal) GoalResponse {
	resp := GoalResponse{
		LegacyID:   g.GoalID,
		ID:         g.GoalID,
		Nome:       g.Name,
		ValorAlvo:  g.TargetAmount,
		ValorAtual: g.CurrentAmount,
		Categoria:  g.Category,
	}
	if g.Deadline != nil {
		deadline := g.Deadline.Format(wireDateLayout)
		resp.DataLimite = &deadline
	}
	return resp
}

// ToListGoalsResponse converts a slice of domain goals.
func ToListGoalsResponse(goals []domain.Goal) ListGoalsResponse {
	out := make([]GoalResponse, len(goals))
	for i := range goals {
		out[i] = ToGoalResponse(&goals[i])
	}
	return ListGoalsResponse{Metas: out}
}
