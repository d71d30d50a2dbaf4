package domain

import "time"

// Dashboard is the tenant boundary: every transaction, goal, budget and
// category belongs to exactly one dashboard, and dashboards are shared
// between users through memberships.
type Dashboard struct {
	DashboardID string `json:"dashboardID"` // Primary Key (UUID)
	Name        string `json:"name"`
	Description string `json:"description"`
	AuditFields
}

// DashboardRole defines the possible roles a user can have within a dashboard.
type DashboardRole string

const (
	RoleOwner  DashboardRole = "owner"
	RoleAdmin  DashboardRole = "admin"
	RoleMember DashboardRole = "member"
)

// roleRank orders roles for the access guard: owner > admin > member.
var roleRank = map[DashboardRole]int{
	RoleMember: 1,
	RoleAdmin:  2,
	RoleOwner:  3,
}

// AtLeast reports whether the role grants the permissions of required.
func (r DashboardRole) AtLeast(required DashboardRole) bool {
	return roleRank[r] >= roleRank[required]
}

// UserDashboard represents the membership of a User in a Dashboard.
type UserDashboard struct {
	UserID      string        `json:"userID"`
	UserName    string        `json:"userName,omitempty"`
	DashboardID string        `json:"dashboardID"`
	Role        DashboardRole `json:"role"`
	JoinedAt    time.Time     `json:"joinedAt"`
}
