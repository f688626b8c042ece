package ports

import (
	"context"

	"github.com/portfolio-cms/portfolio-api/internal/core/domain"
)

// ContactRepository persists contact-form submissions.
type ContactRepository interface {
	List(ctx context.Context) ([]domain.Contact, error)
	ListUnread(ctx context.Context) ([]domain.Contact, error)
	FindByID(ctx context.Context, id string) (*domain.Contact, error)
	Create(ctx context.Context, contact *domain.Contact) (*domain.Contact, error)
	MarkRead(ctx context.Context, id string) (*domain.Contact, error)
	Delete(ctx context.Context, id string) error
}

// ContactDeduper suppresses repeated submissions of the same message
// within a short window.
type ContactDeduper interface {
	// IsDuplicate reports whether an identical (email, message) pair has
	// been accepted recently.
	IsDuplicate(ctx context.Context, email, message string) (bool, error)
	// Mark records the pair so later duplicates are suppressed.
	Mark(ctx context.Context, email, message string) error
}

// ContactService exposes contact submission and the admin inbox.
type ContactService interface {
	Submit(ctx context.Context, contact *domain.Contact) (*domain.Contact, error)
	List(ctx context.Context) ([]domain.Contact, error)
	ListUnread(ctx context.Context) ([]domain.Contact, error)
	Get(ctx context.Context, id string) (*domain.Contact, error)
	MarkRead(ctx context.Context, id string) (*domain.Contact, error)
	Delete(ctx context.Context, id string) error
}
