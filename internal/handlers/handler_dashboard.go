package handlers

import (
	"net/http"

	"github.com/calema/findash_backend/internal/core/domain"
	portssvc "github.com/calema/findash_backend/internal/core/ports/services"
	"github.com/calema/findash_backend/internal/dto"
	"github.com/calema/findash_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// dashboardHandler handles HTTP requests related to dashboards and memberships.
type dashboardHandler struct {
	dashboardService portssvc.DashboardSvcFacade
}

func newDashboardHandler(ds portssvc.DashboardSvcFacade) *dashboardHandler {
	return &dashboardHandler{dashboardService: ds}
}

// registerDashboardRoutes registers routes related to dashboards.
func registerDashboardRoutes(rg *gin.RouterGroup, ds portssvc.DashboardSvcFacade) {
	h := newDashboardHandler(ds)

	dashboards := rg.Group("/dashboards")
	{
		dashboards.GET("", h.listDashboards)
		dashboards.POST("", h.createDashboard)
		dashboards.GET("/:dashboard_id/users", h.listDashboardUsers)
		dashboards.POST("/:dashboard_id/users", h.addUserToDashboard)
	}
}

func (h *dashboardHandler) listDashboards(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	dashboards, err := h.dashboardService.ListUserDashboards(c.Request.Context(), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to list dashboards")
		return
	}

	c.JSON(http.StatusOK, dto.ToListDashboardsResponse(dashboards))
}

func (h *dashboardHandler) createDashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateDashboardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, "CreateDashboard", err)
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	dashboard, err := h.dashboardService.CreateDashboard(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to create dashboard")
		return
	}

	c.JSON(http.StatusCreated, dto.ToDashboardResponse(dashboard))
}

func (h *dashboardHandler) listDashboardUsers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	dashboardID := c.Param("dashboard_id")
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	members, err := h.dashboardService.ListDashboardUsers(c.Request.Context(), userID, dashboardID)
	if err != nil {
		respondError(c, logger, err, "Failed to list dashboard users")
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": dto.ToDashboardUserResponses(members)})
}

func (h *dashboardHandler) addUserToDashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	dashboardID := c.Param("dashboard_id")
	var req dto.AddUserToDashboardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, "AddUserToDashboard", err)
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	err := h.dashboardService.AddUserToDashboard(c.Request.Context(), userID, req.UserID, dashboardID, domain.DashboardRole(req.Role))
	if err != nil {
		respondError(c, logger, err, "Failed to add user to dashboard")
		return
	}

	c.Status(http.StatusNoContent)
}
