package ports

import (
	"context"

	"github.com/portfolio-cms/portfolio-api/internal/core/domain"
)

// ExperienceRepository persists work-history entries.
type ExperienceRepository interface {
	List(ctx context.Context) ([]domain.Experience, error)
	ListCurrent(ctx context.Context) ([]domain.Experience, error)
	FindByID(ctx context.Context, id string) (*domain.Experience, error)
	Create(ctx context.Context, exp *domain.Experience) (*domain.Experience, error)
	Update(ctx context.Context, exp *domain.Experience) (*domain.Experience, error)
	Delete(ctx context.Context, id string) error
}

// ExperienceService exposes experience CRUD to the HTTP layer.
type ExperienceService interface {
	List(ctx context.Context) ([]domain.Experience, error)
	ListCurrent(ctx context.Context) ([]domain.Experience, error)
	Get(ctx context.Context, id string) (*domain.Experience, error)
	Create(ctx context.Context, exp *domain.Experience) (*domain.Experience, error)
	Update(ctx context.Context, id string, exp *domain.Experience) (*domain.Experience, error)
	Delete(ctx context.Context, id string) error
}
