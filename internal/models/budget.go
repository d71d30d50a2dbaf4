package models

import "github.com/shopspring/decimal"

// Budget is the budgets row.
type Budget struct {
	BudgetID    string          `db:"budget_id"`
	DashboardID string          `db:"dashboard_id"`
	Category    string          `db:"category"`
	LimitAmount decimal.Decimal `db:"limit_amount"`
	SpentAmount decimal.Decimal `db:"spent_amount"`
	Month       int             `db:"month"`
	Year        int             `db:"year"`
	AuditFields
}
