package services

import (
	"context"

	"github.com/calema/findash_backend/internal/core/domain"
)

// AuthSvcFacade issues bearer tokens. Registration, invitations and refresh
// flows live outside this service's scope.
type AuthSvcFacade interface {
	// Login verifies the credentials and returns the user plus a signed JWT.
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
}
