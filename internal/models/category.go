package models

// Category is the categories row.
type Category struct {
	CategoryID  string `db:"category_id"`
	DashboardID string `db:"dashboard_id"`
	Name        string `db:"name"`
	Kind        string `db:"kind"`
	Description string `db:"description"`
	Icon        string `db:"icon"`
	Color       string `db:"color"`
	AuditFields
}
