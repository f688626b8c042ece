package service

import (
	"context"

	"github.com/portfolio-cms/portfolio-api/internal/core/domain"
	"github.com/portfolio-cms/portfolio-api/internal/core/ports"
)

// SkillService implements skill CRUD over the repository.
type SkillService struct {
	repo ports.SkillRepository
}

func NewSkillService(repo ports.SkillRepository) *SkillService {
	return &SkillService{repo: repo}
}

func (s *SkillService) List(ctx context.Context) ([]domain.Skill, error) {
	return s.repo.List(ctx)
}

func (s *SkillService) ListByCategory(ctx context.Context, category string) ([]domain.Skill, error) {
	return s.repo.ListByCategory(ctx, category)
}

func (s *SkillService) Get(ctx context.Context, id string) (*domain.Skill, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *SkillService) Create(ctx context.Context, skill *domain.Skill) (*domain.Skill, error) {
	if err := validateSkill(skill); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, skill)
}

func (s *SkillService) Update(ctx context.Context, id string, skill *domain.Skill) (*domain.Skill, error) {
	if err := validateSkill(skill); err != nil {
		return nil, err
	}
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	skill.ID = existing.ID
	skill.CreatedAt = existing.CreatedAt
	return s.repo.Update(ctx, skill)
}

func (s *SkillService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func validateSkill(skill *domain.Skill) error {
	if skill.Proficiency < 0 || skill.Proficiency > 100 {
		return domain.NewValidationError("proficiency must be between 0 and 100")
	}
	return nil
}
