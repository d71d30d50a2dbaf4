package mapping

import (
	"github.com/calema/findash_backend/internal/core/domain"
	"github.com/calema/findash_backend/internal/models"
)

// ToModelDashboard converts a domain Dashboard to a model Dashboard
func ToModelDashboard(d domain.Dashboard) models.Dashboard {
	return models.Dashboard{
		DashboardID: d.DashboardID,
		Name:        d.Name,
		Description: d.Description,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainDashboard converts a model Dashboard to a domain Dashboard
func ToDomainDashboard(m models.Dashboard) domain.Dashboard {
	return domain.Dashboard{
		DashboardID: m.DashboardID,
		Name:        m.Name,
		Description: m.Description,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainDashboards converts a slice of model Dashboards
func ToDomainDashboards(ms []models.Dashboard) []domain.Dashboard {
	out := make([]domain.Dashboard, len(ms))
	for i, m := range ms {
		out[i] = ToDomainDashboard(m)
	}
	return out
}

// ToModelUserDashboard converts a domain membership to its row shape
func ToModelUserDashboard(d domain.UserDashboard) models.UserDashboard {
	return models.UserDashboard{
		UserID:      d.UserID,
		UserName:    d.UserName,
		DashboardID: d.DashboardID,
		Role:        string(d.Role),
		JoinedAt:    d.JoinedAt,
	}
}

// ToDomainUserDashboard converts a membership row to the domain model
func ToDomainUserDashboard(m models.UserDashboard) domain.UserDashboard {
	return domain.UserDashboard{
		UserID:      m.UserID,
		UserName:    m.UserName,
		DashboardID: m.DashboardID,
		Role:        domain.DashboardRole(m.Role),
		JoinedAt:    m.JoinedAt,
	}
}

// ToDomainUserDashboards converts a slice of membership rows
func ToDomainUserDashboards(ms []models.UserDashboard) []domain.UserDashboard {
	out := make([]domain.UserDashboard, len(ms))
	for i, m := range ms {
		out[i] = ToDomainUserDashboard(m)
	}
	return out
}
