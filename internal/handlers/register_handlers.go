package handlers

import (
	"net/http"

	portssvc "github.com/calema/findash_backend/internal/core/ports/services"
	"github.com/calema/findash_backend/internal/core/session"
	"github.com/calema/findash_backend/internal/middleware"
	"github.com/calema/findash_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	limiter "github.com/ulule/limiter/v3"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// Routes live at the root paths the original clients already call.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	sessions *session.Manager,
	rateLimiter *limiter.Limiter,
) {
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public routes, rate limited per client IP.
	public := r.Group("")
	if rateLimiter != nil {
		public.Use(middleware.RateLimit(rateLimiter))
	}
	registerAuthRoutes(public, services.Auth)

	// Everything else requires a bearer token.
	authed := r.Group("", middleware.AuthMiddleware(cfg.JWTSecret))
	registerTransactionRoutes(authed, services.Transaction, sessions)
	registerGoalRoutes(authed, services.Goal)
	registerBudgetRoutes(authed, services.Budget)
	registerCategoryRoutes(authed, services.Category)
	registerDashboardRoutes(authed, services.Dashboard)
	registerNotificationRoutes(authed, services.Notification, services.Dashboard)
	if sessions != nil {
		registerSnapshotRoutes(authed, sessions, services.Dashboard)
	}
}
