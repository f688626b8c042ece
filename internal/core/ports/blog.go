package ports

import (
	"context"

	"github.com/portfolio-cms/portfolio-api/internal/core/domain"
)

// BlogRepository persists blog posts and their cover image blobs.
type BlogRepository interface {
	ListPublished(ctx context.Context) ([]domain.Blog, error)
	ListAll(ctx context.Context) ([]domain.Blog, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Blog, error)
	FindByID(ctx context.Context, id string) (*domain.Blog, error)
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
	Create(ctx context.Context, blog *domain.Blog) (*domain.Blog, error)
	Update(ctx context.Context, blog *domain.Blog) (*domain.Blog, error)
	Delete(ctx context.Context, id string) error
	SaveCover(ctx context.Context, id string, asset *domain.Asset) error
	FindCover(ctx context.Context, id string) (*domain.Asset, error)
}

// BlogService exposes blog CRUD, publishing and cover image handling.
type BlogService interface {
	ListPublished(ctx context.Context) ([]domain.Blog, error)
	ListAll(ctx context.Context) ([]domain.Blog, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Blog, error)
	Create(ctx context.Context, blog *domain.Blog) (*domain.Blog, error)
	Update(ctx context.Context, id string, blog *domain.Blog) (*domain.Blog, error)
	Delete(ctx context.Context, id string) error
	UploadCover(ctx context.Context, id, base64Data, contentType string) (*domain.Blog, error)
	GetCover(ctx context.Context, id string) (*domain.Asset, error)
}
