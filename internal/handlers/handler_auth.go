package handlers

import (
	"net/http"

	portssvc "github.com/calema/findash_backend/internal/core/ports/services"
	"github.com/calema/findash_backend/internal/dto"
	"github.com/calema/findash_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// authHandler handles the login flow.
type authHandler struct {
	authService portssvc.AuthSvcFacade
}

func newAuthHandler(as portssvc.AuthSvcFacade) *authHandler {
	return &authHandler{authService: as}
}

// registerAuthRoutes registers the public auth routes.
func registerAuthRoutes(rg *gin.RouterGroup, as portssvc.AuthSvcFacade) {
	h := newAuthHandler(as)

	auth := rg.Group("/auth")
	{
		auth.POST("/login", h.login)
	}
}

func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, "Login", err)
		return
	}

	user, token, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, logger, err, "Failed to log in")
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		AccessToken: token,
		User: dto.UserResponse{
			UserID: user.UserID,
			Name:   user.Name,
			Email:  user.Email,
		},
	})
}
