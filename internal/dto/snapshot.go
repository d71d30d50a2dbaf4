package dto

import "time"

// SnapshotResponse is the wire shape of a dashboard session snapshot: every
// collection from the same load, plus the snapshot version clients compare to
// detect staleness.
type SnapshotResponse struct {
	DashboardID string                `json:"dashboard_id"`
	Version     uint64                `json:"version"`
	LoadedAt    time.Time             `json:"loaded_at"`
	Transacoes  []TransactionResponse `json:"transacoes"`
	Metas       []GoalResponse        `json:"metas"`
	Orcamentos  []BudgetResponse      `json:"orcamentos"`
	Categorias  []CategoryResponse    `json:"categorias"`
}
