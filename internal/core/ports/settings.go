package ports

import (
	"context"

	"github.com/portfolio-cms/portfolio-api/internal/core/domain"
)

// SettingsRepository persists the single site-settings row.
type SettingsRepository interface {
	Find(ctx context.Context) (*domain.SiteSettings, error)
	Save(ctx context.Context, settings *domain.SiteSettings) (*domain.SiteSettings, error)
}

// SettingsService exposes site settings to the HTTP layer.
type SettingsService interface {
	Get(ctx context.Context) (*domain.SiteSettings, error)
	Update(ctx context.Context, settings *domain.SiteSettings) (*domain.SiteSettings, error)
}
