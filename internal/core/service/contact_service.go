package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/portfolio-cms/portfolio-api/internal/core/domain"
	"github.com/portfolio-cms/portfolio-api/internal/core/ports"
)

// ContactService accepts contact-form submissions and serves the admin
// inbox. Repeated submissions of the same (email, message) pair inside the
// dedup window are accepted but not persisted twice.
type ContactService struct {
	repo  ports.ContactRepository
	dedup ports.ContactDeduper
	log   zerolog.Logger
}

func NewContactService(repo ports.ContactRepository, dedup ports.ContactDeduper, log zerolog.Logger) *ContactService {
	return &ContactService{repo: repo, dedup: dedup, log: log}
}

// Submit persists a new submission unless it is a recent duplicate. A
// dedup backend failure never blocks the submission.
func (s *ContactService) Submit(ctx context.Context, contact *domain.Contact) (*domain.Contact, error) {
	if s.dedup != nil {
		dup, err := s.dedup.IsDuplicate(ctx, contact.Email, contact.Message)
		if err != nil {
			s.log.Warn().Err(err).Msg("contact dedup check failed, accepting submission")
		} else if dup {
			s.log.Info().Str("email", contact.Email).Msg("duplicate contact submission suppressed")
			return contact, nil
		}
	}

	created, err := s.repo.Create(ctx, contact)
	if err != nil {
		return nil, err
	}

	if s.dedup != nil {
		if err := s.dedup.Mark(ctx, contact.Email, contact.Message); err != nil {
			s.log.Warn().Err(err).Msg("contact dedup mark failed")
		}
	}
	return created, nil
}

func (s *ContactService) List(ctx context.Context) ([]domain.Contact, error) {
	return s.repo.List(ctx)
}

func (s *ContactService) ListUnread(ctx context.Context) ([]domain.Contact, error) {
	return s.repo.ListUnread(ctx)
}

func (s *ContactService) Get(ctx context.Context, id string) (*domain.Contact, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ContactService) MarkRead(ctx context.Context, id string) (*domain.Contact, error) {
	return s.repo.MarkRead(ctx, id)
}

func (s *ContactService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
