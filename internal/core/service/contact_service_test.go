package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/portfolio-cms/portfolio-api/internal/core/domain"
)

type stubContactRepo struct {
	created []*domain.Contact
}

func (r *stubContactRepo) List(context.Context) ([]domain.Contact, error) {
	var out []domain.Contact
	for _, c := range r.created {
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubContactRepo) ListUnread(context.Context) ([]domain.Contact, error) {
	var out []domain.Contact
	for _, c := range r.created {
		if !c.Read {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *stubContactRepo) FindByID(_ context.Context, id string) (*domain.Contact, error) {
	for _, c := range r.created {
		if c.ID == id {
			clone := *c
			return &clone, nil
		}
	}
	return nil, domain.ErrContactNotFound
}

func (r *stubContactRepo) Create(_ context.Context, contact *domain.Contact) (*domain.Contact, error) {
	clone := *contact
	clone.ID = "contact-1"
	r.created = append(r.created, &clone)
	return &clone, nil
}

func (r *stubContactRepo) MarkRead(ctx context.Context, id string) (*domain.Contact, error) {
	for _, c := range r.created {
		if c.ID == id {
			c.Read = true
			clone := *c
			return &clone, nil
		}
	}
	return nil, domain.ErrContactNotFound
}

func (r *stubContactRepo) Delete(_ context.Context, id string) error {
	for i, c := range r.created {
		if c.ID == id {
			r.created = append(r.created[:i], r.created[i+1:]...)
			return nil
		}
	}
	return domain.ErrContactNotFound
}

type stubDeduper struct {
	seen map[string]bool
	err  error
}

func newStubDeduper() *stubDeduper {
	return &stubDeduper{seen: make(map[string]bool)}
}

func (d *stubDeduper) IsDuplicate(_ context.Context, email, message string) (bool, error) {
	if d.err != nil {
		return false, d.err
	}
	return d.seen[email+"|"+message], nil
}

func (d *stubDeduper) Mark(_ context.Context, email, message string) error {
	if d.err != nil {
		return d.err
	}
	d.seen[email+"|"+message] = true
	return nil
}

func TestContactService_Submit_PersistsAndMarks(t *testing.T) {
	repo := &stubContactRepo{}
	dedup := newStubDeduper()
	svc := NewContactService(repo, dedup, zerolog.Nop())

	created, err := svc.Submit(context.Background(), &domain.Contact{
		Name: "Ada", Email: "ada@example.com", Message: "hello",
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected assigned id")
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected one persisted contact, got %d", len(repo.created))
	}
}

func TestContactService_Submit_SuppressesDuplicate(t *testing.T) {
	repo := &stubContactRepo{}
	dedup := newStubDeduper()
	svc := NewContactService(repo, dedup, zerolog.Nop())

	msg := &domain.Contact{Name: "Ada", Email: "ada@example.com", Message: "hello"}
	if _, err := svc.Submit(context.Background(), msg); err != nil {
		t.Fatalf("first submit: %v", err)
	}
	if _, err := svc.Submit(context.Background(), msg); err != nil {
		t.Fatalf("duplicate submit: %v", err)
	}
	if len(repo.created) != 1 {
		t.Fatalf("duplicate was persisted: %d rows", len(repo.created))
	}
}

func TestContactService_Submit_DedupOutageDoesNotBlock(t *testing.T) {
	repo := &stubContactRepo{}
	dedup := newStubDeduper()
	dedup.err = errors.New("redis down")
	svc := NewContactService(repo, dedup, zerolog.Nop())

	if _, err := svc.Submit(context.Background(), &domain.Contact{
		Name: "Ada", Email: "ada@example.com", Message: "hello",
	}); err != nil {
		t.Fatalf("submit during dedup outage: %v", err)
	}
	if len(repo.created) != 1 {
		t.Fatalf("submission lost during dedup outage")
	}
}
