package service

import (
	"context"
	"errors"

	"github.com/portfolio-cms/portfolio-api/internal/core/domain"
	"github.com/portfolio-cms/portfolio-api/internal/core/ports"
)

// ProfileService implements profile reads/updates and asset uploads.
type ProfileService struct {
	repo ports.ProfileRepository
}

func NewProfileService(repo ports.ProfileRepository) *ProfileService {
	return &ProfileService{repo: repo}
}

func (s *ProfileService) Get(ctx context.Context) (*domain.Profile, error) {
	return s.repo.Find(ctx)
}

func (s *ProfileService) Update(ctx context.Context, profile *domain.Profile) (*domain.Profile, error) {
	existing, err := s.repo.Find(ctx)
	if err == nil {
		profile.ID = existing.ID
		profile.CreatedAt = existing.CreatedAt
	} else if !errors.Is(err, domain.ErrProfileNotFound) {
		return nil, err
	}
	return s.repo.Save(ctx, profile)
}

// UploadAvatar validates the image payload and stores it as the profile
// avatar.
func (s *ProfileService) UploadAvatar(ctx context.Context, profileID, base64Data, contentType string) (*domain.Profile, error) {
	asset, err := decodeImage(base64Data, contentType)
	if err != nil {
		return nil, err
	}
	if _, err := s.repo.FindByID(ctx, profileID); err != nil {
		return nil, err
	}
	if err := s.repo.SaveAvatar(ctx, profileID, asset); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, profileID)
}

// UploadResume validates the PDF payload and stores it as the profile
// resume.
func (s *ProfileService) UploadResume(ctx context.Context, profileID, base64Data, contentType string) (*domain.Profile, error) {
	asset, err := decodePDF(base64Data, contentType)
	if err != nil {
		return nil, err
	}
	if _, err := s.repo.FindByID(ctx, profileID); err != nil {
		return nil, err
	}
	if err := s.repo.SaveResume(ctx, profileID, asset); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, profileID)
}

func (s *ProfileService) GetResume(ctx context.Context) (*domain.Asset, error) {
	return s.repo.FindResume(ctx)
}

func (s *ProfileService) GetAvatar(ctx context.Context, profileID string) (*domain.Asset, error) {
	return s.repo.FindAvatar(ctx, profileID)
}
