package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Goal is the goals row.
type Goal struct {
	GoalID        string          `db:"goal_id"`
	DashboardID   string          `db:"dashboard_id"`
	Name          string          `db:"name"`
	TargetAmount  decimal.Decimal `db:"target_amount"`
	CurrentAmount decimal.Decimal `db:"current_amount"`
	Deadline      *time.Time      `db:"deadline"`
	Category      string          `db:"category"`
	AuditFields
}
