package service

import (
	"context"
	"errors"

	"github.com/portfolio-cms/portfolio-api/internal/core/domain"
	"github.com/portfolio-cms/portfolio-api/internal/core/ports"
)

// SettingsService implements reads and wholesale updates of the single
// site-settings row.
type SettingsService struct {
	repo ports.SettingsRepository
}

func NewSettingsService(repo ports.SettingsRepository) *SettingsService {
	return &SettingsService{repo: repo}
}

func (s *SettingsService) Get(ctx context.Context) (*domain.SiteSettings, error) {
	return s.repo.Find(ctx)
}

func (s *SettingsService) Update(ctx context.Context, settings *domain.SiteSettings) (*domain.SiteSettings, error) {
	existing, err := s.repo.Find(ctx)
	if err == nil {
		settings.ID = existing.ID
		settings.CreatedAt = existing.CreatedAt
	} else if !errors.Is(err, domain.ErrSettingsNotFound) {
		return nil, err
	}
	return s.repo.Save(ctx, settings)
}
