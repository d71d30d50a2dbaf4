package models

import "time"

// Dashboard is the dashboards row.
type Dashboard struct {
	DashboardID string `db:"dashboard_id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	AuditFields
}

// UserDashboard is the user_dashboards membership row.
type UserDashboard struct {
	UserID      string    `db:"user_id"`
	UserName    string    `db:"user_name"` // joined from users, not a column
	DashboardID string    `db:"dashboard_id"`
	Role        string    `db:"role"`
	JoinedAt    time.Time `db:"joined_at"`
}
