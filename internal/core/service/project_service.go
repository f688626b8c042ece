package service

import (
	"context"

	"github.com/portfolio-cms/portfolio-api/internal/core/domain"
	"github.com/portfolio-cms/portfolio-api/internal/core/ports"
)

// ProjectService implements project CRUD and thumbnail handling.
type ProjectService struct {
	repo ports.ProjectRepository
}

func NewProjectService(repo ports.ProjectRepository) *ProjectService {
	return &ProjectService{repo: repo}
}

func (s *ProjectService) List(ctx context.Context) ([]domain.Project, error) {
	return s.repo.List(ctx)
}

func (s *ProjectService) ListFeatured(ctx context.Context) ([]domain.Project, error) {
	return s.repo.ListFeatured(ctx)
}

func (s *ProjectService) Get(ctx context.Context, id string) (*domain.Project, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ProjectService) Create(ctx context.Context, project *domain.Project) (*domain.Project, error) {
	return s.repo.Create(ctx, project)
}

func (s *ProjectService) Update(ctx context.Context, id string, project *domain.Project) (*domain.Project, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	project.ID = existing.ID
	project.CreatedAt = existing.CreatedAt
	return s.repo.Update(ctx, project)
}

func (s *ProjectService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// UploadThumbnail validates the image payload and stores it as the
// project's thumbnail.
func (s *ProjectService) UploadThumbnail(ctx context.Context, id, base64Data, contentType string) (*domain.Project, error) {
	asset, err := decodeImage(base64Data, contentType)
	if err != nil {
		return nil, err
	}
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, err
	}
	if err := s.repo.SaveThumbnail(ctx, id, asset); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

func (s *ProjectService) GetThumbnail(ctx context.Context, id string) (*domain.Asset, error) {
	return s.repo.FindThumbnail(ctx, id)
}
