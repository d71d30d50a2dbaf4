package handlers

import (
	"net/http"

	portssvc "github.com/calema/findash_backend/internal/core/ports/services"
	"github.com/calema/findash_backend/internal/dto"
	"github.com/calema/findash_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// goalHandler handles HTTP requests related to savings goals.
type goalHandler struct {
	goalService portssvc.GoalSvcFacade
}

func newGoalHandler(gs portssvc.GoalSvcFacade) *goalHandler {
	return &goalHandler{goalService: gs}
}

// registerGoalRoutes registers routes related to savings goals.
func registerGoalRoutes(rg *gin.RouterGroup, gs portssvc.GoalSvcFacade) {
	h := newGoalHandler(gs)

	metas := rg.Group("/metas")
	{
		metas.GET("", h.listGoals)
		metas.POST("", h.createGoal)
		metas.PUT("/:id", h.updateGoal)
		metas.DELETE("/:id", h.deleteGoal)
	}
}

func (h *goalHandler) listGoals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	dashboardID, ok := requireDashboardID(c)
	if !ok {
		return
	}

	goals, err := h.goalService.ListGoals(c.Request.Context(), dashboardID, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to list goals")
		return
	}

	c.JSON(http.StatusOK, dto.ToListGoalsResponse(goals))
}

func (h *goalHandler) createGoal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, "CreateGoal", err)
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	goal, err := h.goalService.CreateGoal(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to create goal")
		return
	}

	c.JSON(http.StatusCreated, dto.ToGoalResponse(goal))
}

func (h *goalHandler) updateGoal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	goalID := c.Param("id")
	var req dto.UpdateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, "UpdateGoal", err)
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	goal, err := h.goalService.UpdateGoal(c.Request.Context(), goalID, req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to update goal")
		return
	}

	c.JSON(http.StatusOK, dto.ToGoalResponse(goal))
}

func (h *goalHandler) deleteGoal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	goalID := c.Param("id")
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	dashboardID, ok := requireDashboardID(c)
	if !ok {
		return
	}

	if err := h.goalService.DeleteGoal(c.Request.Context(), goalID, dashboardID, userID); err != nil {
		respondError(c, logger, err, "Failed to delete goal")
		return
	}

	c.Status(http.StatusNoContent)
}
