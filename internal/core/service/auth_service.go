package service

import (
	"context"
	"errors"

	"github.com/portfolio-cms/portfolio-api/internal/core/domain"
	"github.com/portfolio-cms/portfolio-api/internal/core/ports"
)

// AuthService implements credential verification, token issuance and the
// password-change flow on top of the user repository, the password hasher
// and the token codec.
type AuthService struct {
	users  ports.UserRepository
	hasher ports.PasswordHasher
	codec  ports.TokenCodec
	clock  Clock

	// dummyHash is compared against when the username is unknown, so a
	// miss costs one full hasher round and login latency does not reveal
	// whether the username exists.
	dummyHash string
}

// NewAuthService wires the auth service. The clock defaults to the system
// clock when nil.
func NewAuthService(users ports.UserRepository, hasher ports.PasswordHasher, codec ports.TokenCodec, clock Clock) (*AuthService, error) {
	if clock == nil {
		clock = SystemClock{}
	}
	dummy, err := hasher.Hash("dummy-timing-equalizer")
	if err != nil {
		return nil, err
	}
	return &AuthService{
		users:     users,
		hasher:    hasher,
		codec:     codec,
		clock:     clock,
		dummyHash: dummy,
	}, nil
}

// Authenticate verifies username/password and returns the user. Unknown
// username and wrong password both return domain.ErrInvalidCredentials.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		// Burn a hasher round anyway; see dummyHash.
		s.hasher.Verify(password, s.dummyHash)
		return nil, domain.ErrInvalidCredentials
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}

// Login authenticates and issues a bearer token carrying the user's role.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	user, err := s.Authenticate(ctx, username, password)
	if err != nil {
		return "", nil, err
	}

	token, err := s.codec.Issue(user.Username, user.Role, s.clock.Now())
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// ChangePassword rotates the password after verifying the current one. The
// new password must differ from the current one; the forced-rotation flag
// is cleared on success and never re-raised automatically.
func (s *AuthService) ChangePassword(ctx context.Context, username, currentPassword, newPassword string) (*domain.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		// The principal's user can disappear between token verification
		// and this lookup; treat it as a credential failure, not a 404.
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.hasher.Verify(currentPassword, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}
	if s.hasher.Verify(newPassword, user.PasswordHash) {
		return nil, domain.ErrPasswordUnchanged
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = hash
	user.RequiresPasswordChange = false

	return s.users.Save(ctx, user)
}

// TokenTTLSeconds returns the token lifetime in whole seconds.
func (s *AuthService) TokenTTLSeconds() int64 {
	return int64(s.codec.TTL().Seconds())
}
