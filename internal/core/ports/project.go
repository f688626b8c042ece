package ports

import (
	"context"

	"github.com/portfolio-cms/portfolio-api/internal/core/domain"
)

// ProjectRepository persists projects and their thumbnail blobs.
type ProjectRepository interface {
	List(ctx context.Context) ([]domain.Project, error)
	ListFeatured(ctx context.Context) ([]domain.Project, error)
	FindByID(ctx context.Context, id string) (*domain.Project, error)
	Create(ctx context.Context, project *domain.Project) (*domain.Project, error)
	Update(ctx context.Context, project *domain.Project) (*domain.Project, error)
	Delete(ctx context.Context, id string) error
	// SaveThumbnail replaces the thumbnail blob of the project.
	SaveThumbnail(ctx context.Context, id string, asset *domain.Asset) error
	// FindThumbnail loads only the thumbnail blob.
	FindThumbnail(ctx context.Context, id string) (*domain.Asset, error)
}

// ProjectService exposes project CRUD and thumbnail upload/serving.
type ProjectService interface {
	List(ctx context.Context) ([]domain.Project, error)
	ListFeatured(ctx context.Context) ([]domain.Project, error)
	Get(ctx context.Context, id string) (*domain.Project, error)
	Create(ctx context.Context, project *domain.Project) (*domain.Project, error)
	Update(ctx context.Context, id string, project *domain.Project) (*domain.Project, error)
	Delete(ctx context.Context, id string) error
	UploadThumbnail(ctx context.Context, id, base64Data, contentType string) (*domain.Project, error)
	GetThumbnail(ctx context.Context, id string) (*domain.Asset, error)
}
