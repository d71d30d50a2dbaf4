package handlers

import (
	"net/http"

	"github.com/calema/findash_backend/internal/core/domain"
	portssvc "github.com/calema/findash_backend/internal/core/ports/services"
	"github.com/calema/findash_backend/internal/core/session"
	"github.com/calema/findash_backend/internal/dto"
	"github.com/calema/findash_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// snapshotHandler serves the session's in-memory view of a dashboard.
type snapshotHandler struct {
	sessions   *session.Manager
	authorizer portssvc.DashboardAuthorizerSvc
}

// registerSnapshotRoutes registers the dashboard snapshot route.
func registerSnapshotRoutes(rg *gin.RouterGroup, sessions *session.Manager, authorizer portssvc.DashboardAuthorizerSvc) {
	h := &snapshotHandler{sessions: sessions, authorizer: authorizer}

	rg.GET("/dashboards/:dashboard_id/snapshot", h.getSnapshot)
}

func (h *snapshotHandler) getSnapshot(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	dashboardID := c.Param("dashboard_id")
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	if err := h.authorizer.AuthorizeUserAction(c.Request.Context(), userID, dashboardID, domain.RoleMember); err != nil {
		respondError(c, logger, err, "Failed to read dashboard snapshot")
		return
	}

	sess := h.sessions.Ensure(dashboardID)
	snap := sess.Snapshot()
	if snap.Version == 0 {
		// First touch of this dashboard; load synchronously rather than
		// answering with an empty view.
		if err := sess.Refresh(c.Request.Context()); err != nil {
			respondError(c, logger, err, "Failed to load dashboard snapshot")
			return
		}
		snap = sess.Snapshot()
	}

	c.JSON(http.StatusOK, dto.SnapshotResponse{
		DashboardID: dashboardID,
		Version:     snap.Version,
		LoadedAt:    snap.LoadedAt,
		Transacoes:  dto.ToListTransactionsResponse(snap.Transactions).Transacoes,
		Metas:       dto.ToListGoalsResponse(snap.Goals).Metas,
		Orcamentos:  dto.ToListBudgetsResponse(snap.Budgets).Orcamentos,
		Categorias:  dto.ToListCategoriesResponse(snap.Categories).Categorias,
	})
}
