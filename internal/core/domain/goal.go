package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Goal is a savings target scoped to a dashboard. Pure CRUD data, no
// lifecycle logic; it exists so the refresh loop has the full set of
// dashboard collections to reconcile.
type Goal struct {
	GoalID        string          `json:"goalID"` // Primary Key (UUID)
	DashboardID   string          `json:"dashboardID"`
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	Deadline      *time.Time      `json:"deadline,omitempty"`
	Category      string          `json:"category"`
	AuditFields
}
