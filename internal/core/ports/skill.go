package ports

import (
	"context"

	"github.com/portfolio-cms/portfolio-api/internal/core/domain"
)

// SkillRepository persists skills.
type SkillRepository interface {
	List(ctx context.Context) ([]domain.Skill, error)
	ListByCategory(ctx context.Context, category string) ([]domain.Skill, error)
	FindByID(ctx context.Context, id string) (*domain.Skill, error)
	Create(ctx context.Context, skill *domain.Skill) (*domain.Skill, error)
	Update(ctx context.Context, skill *domain.Skill) (*domain.Skill, error)
	Delete(ctx context.Context, id string) error
}

// SkillService exposes skill CRUD to the HTTP layer.
type SkillService interface {
	List(ctx context.Context) ([]domain.Skill, error)
	ListByCategory(ctx context.Context, category string) ([]domain.Skill, error)
	Get(ctx context.Context, id string) (*domain.Skill, error)
	Create(ctx context.Context, skill *domain.Skill) (*domain.Skill, error)
	Update(ctx context.Context, id string, skill *domain.Skill) (*domain.Skill, error)
	Delete(ctx context.Context, id string) error
}
