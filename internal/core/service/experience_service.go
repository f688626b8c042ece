package service

import (
	"context"

	"github.com/portfolio-cms/portfolio-api/internal/core/domain"
	"github.com/portfolio-cms/portfolio-api/internal/core/ports"
)

// ExperienceService implements work-history CRUD over the repository.
type ExperienceService struct {
	repo ports.ExperienceRepository
}

func NewExperienceService(repo ports.ExperienceRepository) *ExperienceService {
	return &ExperienceService{repo: repo}
}

func (s *ExperienceService) List(ctx context.Context) ([]domain.Experience, error) {
	return s.repo.List(ctx)
}

func (s *ExperienceService) ListCurrent(ctx context.Context) ([]domain.Experience, error) {
	return s.repo.ListCurrent(ctx)
}

func (s *ExperienceService) Get(ctx context.Context, id string) (*domain.Experience, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ExperienceService) Create(ctx context.Context, exp *domain.Experience) (*domain.Experience, error) {
	if err := validateExperience(exp); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, exp)
}

func (s *ExperienceService) Update(ctx context.Context, id string, exp *domain.Experience) (*domain.Experience, error) {
	if err := validateExperience(exp); err != nil {
		return nil, err
	}
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	exp.ID = existing.ID
	exp.CreatedAt = existing.CreatedAt
	return s.repo.Update(ctx, exp)
}

func (s *ExperienceService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func validateExperience(exp *domain.Experience) error {
	if exp.EndDate != nil && exp.EndDate.Before(exp.StartDate) {
		return domain.NewValidationError("end date must not precede start date")
	}
	return nil
}
