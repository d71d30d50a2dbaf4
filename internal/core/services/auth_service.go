package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/calema/findash_backend/internal/apperrors"
	"github.com/calema/findash_backend/internal/core/domain"
	portsrepo "github.com/calema/findash_backend/internal/core/ports/repositories"
	portssvc "github.com/calema/findash_backend/internal/core/ports/services"
	"github.com/calema/findash_backend/internal/middleware"
	"github.com/calema/findash_backend/internal/platform/config"
	"github.com/calema/findash_backend/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

// AuthService verifies credentials and issues bearer tokens.
type AuthService struct {
	userRepo portsrepo.UserRepositoryFacade
	cfg      *config.Config
}

// NewAuthService creates a new AuthService.
func NewAuthService(ur portsrepo.UserRepositoryFacade, cfg *config.Config) *AuthService {
	return &AuthService{userRepo: ur, cfg: cfg}
}

var _ portssvc.AuthSvcFacade = (*AuthService)(nil)

// Login verifies the email/password pair and returns the user plus a signed
// JWT. Unknown email and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, "", apperrors.NewAppError(401, "invalid credentials", apperrors.ErrUnauthorized)
		}
		logger.Error("Failed to look up user for login", slog.String("error", err.Error()))
		return nil, "", fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Warn("Login failed", slog.String("user_id", user.UserID))
		return nil, "", apperrors.NewAppError(401, "invalid credentials", apperrors.ErrUnauthorized)
	}

	token, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		logger.Error("Failed to generate access token", slog.String("error", err.Error()), slog.String("user_id", user.UserID))
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}

	logger.Info("User logged in", slog.String("user_id", user.UserID))
	return user, token, nil
}
