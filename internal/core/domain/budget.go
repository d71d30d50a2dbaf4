package domain

import "github.com/shopspring/decimal"

// Budget is a monthly spending limit for one category within a dashboard.
type Budget struct {
	BudgetID    string          `json:"budgetID"` // Primary Key (UUID)
	DashboardID string          `json:"dashboardID"`
	Category    string          `json:"category"`
	LimitAmount decimal.Decimal `json:"limitAmount"`
	SpentAmount decimal.Decimal `json:"spentAmount"`
	Month       int             `json:"month"` // 1-12
	Year        int             `json:"year"`
	AuditFields
}
