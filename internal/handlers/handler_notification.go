package handlers

import (
	"net/http"

	"github.com/calema/findash_backend/internal/core/domain"
	portssvc "github.com/calema/findash_backend/internal/core/ports/services"
	"github.com/calema/findash_backend/internal/dto"
	"github.com/calema/findash_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// notificationHandler exposes the transient installment notices.
type notificationHandler struct {
	notificationService portssvc.NotificationSvcFacade
	authorizer          portssvc.DashboardAuthorizerSvc
}

func newNotificationHandler(ns portssvc.NotificationSvcFacade, authorizer portssvc.DashboardAuthorizerSvc) *notificationHandler {
	return &notificationHandler{notificationService: ns, authorizer: authorizer}
}

// registerNotificationRoutes registers routes related to installment notices.
func registerNotificationRoutes(rg *gin.RouterGroup, ns portssvc.NotificationSvcFacade, authorizer portssvc.DashboardAuthorizerSvc) {
	h := newNotificationHandler(ns, authorizer)

	notifications := rg.Group("/dashboards/:dashboard_id/notifications")
	{
		notifications.GET("", h.listNotifications)
		notifications.DELETE("/:transaction_id", h.dismissNotification)
	}
}

func (h *notificationHandler) listNotifications(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	dashboardID := c.Param("dashboard_id")
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	if err := h.authorizer.AuthorizeUserAction(c.Request.Context(), userID, dashboardID, domain.RoleMember); err != nil {
		respondError(c, logger, err, "Failed to list notifications")
		return
	}

	notices := h.notificationService.ListNotifications(c.Request.Context(), dashboardID)
	c.JSON(http.StatusOK, dto.ToListNotificationsResponse(notices))
}

func (h *notificationHandler) dismissNotification(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	dashboardID := c.Param("dashboard_id")
	transactionID := c.Param("transaction_id")
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	if err := h.authorizer.AuthorizeUserAction(c.Request.Context(), userID, dashboardID, domain.RoleMember); err != nil {
		respondError(c, logger, err, "Failed to dismiss notification")
		return
	}

	h.notificationService.DismissNotification(c.Request.Context(), dashboardID, transactionID)
	c.Status(http.StatusNoContent)
}
