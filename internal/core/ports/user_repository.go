package ports

import (
	"context"

	"github.com/portfolio-cms/portfolio-api/internal/core/domain"
)

// UserRepository is the persistence contract the auth core consumes.
type UserRepository interface {
	// FindByUsername returns the user with the given (case-sensitive)
	// username, or domain.ErrUserNotFound.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// ExistsByUsername reports whether a user with the username exists.
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	// Save inserts or updates the user and returns the persisted copy.
	// On first insert the repository assigns ID, CreatedAt and UpdatedAt.
	Save(ctx context.Context, user *domain.User) (*domain.User, error)
	// Count returns the total number of users.
	Count(ctx context.Context) (int, error)
}
