package dto

import (
	"time"

	"github.com/calema/findash_backend/internal/core/domain"
)

// CreateDashboardRequest defines the expected JSON body for creating a dashboard.
type CreateDashboardRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// AddUserToDashboardRequest defines the body for adding a user to a dashboard.
type AddUserToDashboardRequest struct {
	UserID string               `json:"userID" binding:"required"`
	Role   domain.DashboardRole `json:"role" binding:"required,oneof=owner admin member"`
}

// DashboardResponse defines the data returned for a dashboard.
type DashboardResponse struct {
	DashboardID string    `json:"dashboardID"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	CreatedBy   string    `json:"createdBy"`
}

// ListDashboardsResponse wraps a list of dashboards.
type ListDashboardsResponse struct {
	Dashboards []DashboardResponse `json:"dashboards"`
}

// DashboardUserResponse defines the data returned for a dashboard membership.
type DashboardUserResponse struct {
	UserID   string               `json:"userID"`
	UserName string               `json:"userName,omitempty"`
	Role     domain.DashboardRole `json:"role"`
	JoinedAt time.Time            `json:"joinedAt"`
}

// ToDashboardResponse converts a domain.Dashboard to DashboardResponse.
func ToDashboardResponse(d *domain.Dashboard) DashboardResponse {
	return DashboardResponse{
		DashboardID: d.DashboardID,
		Name:        d.Name,
		Description: d.Description,
		CreatedAt:   d.CreatedAt,
		CreatedBy:   d.CreatedBy,
	}
}

// ToListDashboardsResponse converts a slice of domain.Dashboard.
func ToListDashboardsResponse(dashboards []domain.Dashboard) ListDashboardsResponse {
	out := make([]DashboardResponse, len(dashboards))
	for i := range dashboards {
		out[i] = ToDashboardResponse(&dashboards[i])
	}
	return ListDashboardsResponse{Dashboards: out}
}

// ToDashboardUserResponses converts dashboard memberships.
func ToDashboardUserResponses(members []domain.UserDashboard) []DashboardUserResponse {
	out := make([]DashboardUserResponse, len(members))
	for i, m := range members {
		out[i] = DashboardUserResponse{
			UserID:   m.UserID,
			UserName: m.UserName,
			Role:     m.Role,
			JoinedAt: m.JoinedAt,
		}
	}
	return out
}
