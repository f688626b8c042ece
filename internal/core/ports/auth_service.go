package ports

import (
	"context"

	"github.com/portfolio-cms/portfolio-api/internal/core/domain"
)

// AuthService implements credential verification, token issuance and the
// self-service password-change flow.
type AuthService interface {
	// Login verifies the credentials and returns a signed bearer token
	// together with the authenticated user. Unknown username and wrong
	// password both surface as domain.ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	// Authenticate verifies the credentials without issuing a token.
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
	// ChangePassword rotates the password of username after verifying the
	// current one, clears the forced-rotation flag and persists.
	ChangePassword(ctx context.Context, username, currentPassword, newPassword string) (*domain.User, error)
	// TokenTTLSeconds returns the token lifetime in whole seconds, as
	// reported to clients in the login response.
	TokenTTLSeconds() int64
}
