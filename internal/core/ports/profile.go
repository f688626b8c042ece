package ports

import (
	"context"

	"github.com/portfolio-cms/portfolio-api/internal/core/domain"
)

// ProfileRepository persists the single owner profile, its social links and
// the avatar/resume blobs.
type ProfileRepository interface {
	// Find returns the profile, or domain.ErrProfileNotFound when none
	// has been created yet.
	Find(ctx context.Context) (*domain.Profile, error)
	FindByID(ctx context.Context, id string) (*domain.Profile, error)
	Save(ctx context.Context, profile *domain.Profile) (*domain.Profile, error)
	SaveAvatar(ctx context.Context, id string, asset *domain.Asset) error
	SaveResume(ctx context.Context, id string, asset *domain.Asset) error
	// FindResume loads only the resume blob of the profile.
	FindResume(ctx context.Context) (*domain.Asset, error)
	FindAvatar(ctx context.Context, id string) (*domain.Asset, error)
}

// ProfileService exposes profile reads/updates and asset uploads.
type ProfileService interface {
	Get(ctx context.Context) (*domain.Profile, error)
	Update(ctx context.Context, profile *domain.Profile) (*domain.Profile, error)
	UploadAvatar(ctx context.Context, profileID, base64Data, contentType string) (*domain.Profile, error)
	UploadResume(ctx context.Context, profileID, base64Data, contentType string) (*domain.Profile, error)
	GetResume(ctx context.Context) (*domain.Asset, error)
	GetAvatar(ctx context.Context, profileID string) (*domain.Asset, error)
}
