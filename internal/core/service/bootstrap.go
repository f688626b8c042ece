package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/portfolio-cms/portfolio-api/internal/core/domain"
	"github.com/portfolio-cms/portfolio-api/internal/core/ports"
)

// Bootstrap provisions the default administrator on an empty user store so
// a fresh deployment is immediately usable. It is idempotent: a store with
// any user at all is left untouched.
type Bootstrap struct {
	users    ports.UserRepository
	hasher   ports.PasswordHasher
	username string
	password string
	log      zerolog.Logger
}

// NewBootstrap wires the bootstrap with the configured default credentials.
func NewBootstrap(users ports.UserRepository, hasher ports.PasswordHasher, username, password string, log zerolog.Logger) *Bootstrap {
	return &Bootstrap{
		users:    users,
		hasher:   hasher,
		username: username,
		password: password,
		log:      log,
	}
}

// Run creates the default admin when the store is empty. Existing users are
// never overwritten.
func (b *Bootstrap) Run(ctx context.Context) error {
	n, err := b.users.Count(ctx)
	if err != nil {
		return fmt.Errorf("bootstrap: count users: %w", err)
	}
	if n > 0 {
		b.log.Info().Msg("users already exist, skipping default admin creation")
		return nil
	}

	hash, err := b.hasher.Hash(b.password)
	if err != nil {
		return fmt.Errorf("bootstrap: hash default password: %w", err)
	}

	admin := &domain.User{
		Username:               b.username,
		PasswordHash:           hash,
		Role:                   domain.RoleAdmin,
		RequiresPasswordChange: true,
	}
	if _, err := b.users.Save(ctx, admin); err != nil {
		return fmt.Errorf("bootstrap: save default admin: %w", err)
	}

	b.log.Warn().
		Str("username", b.username).
		Str("password", b.password).
		Msg("default admin user created - change this password immediately")
	return nil
}
