package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/portfolio-cms/portfolio-api/internal/core/domain"
)

type stubBlogRepo struct {
	bySlug map[string]*domain.Blog
	byID   map[string]*domain.Blog
}

func newStubBlogRepo() *stubBlogRepo {
	return &stubBlogRepo{
		bySlug: make(map[string]*domain.Blog),
		byID:   make(map[string]*domain.Blog),
	}
}

func cloneBlog(b *domain.Blog) *domain.Blog {
	if b == nil {
		return nil
	}
	clone := *b
	return &clone
}

func (r *stubBlogRepo) ListPublished(context.Context) ([]domain.Blog, error) {
	var out []domain.Blog
	for _, b := range r.byID {
		if b.Published {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *stubBlogRepo) ListAll(context.Context) ([]domain.Blog, error) {
	var out []domain.Blog
	for _, b := range r.byID {
		out = append(out, *b)
	}
	return out, nil
}

func (r *stubBlogRepo) FindBySlug(_ context.Context, slug string) (*domain.Blog, error) {
	if b, ok := r.bySlug[slug]; ok {
		return cloneBlog(b), nil
	}
	return nil, domain.ErrBlogNotFound
}

func (r *stubBlogRepo) FindByID(_ context.Context, id string) (*domain.Blog, error) {
	if b, ok := r.byID[id]; ok {
		return cloneBlog(b), nil
	}
	return nil, domain.ErrBlogNotFound
}

func (r *stubBlogRepo) ExistsBySlug(_ context.Context, slug string) (bool, error) {
	_, ok := r.bySlug[slug]
	return ok, nil
}

func (r *stubBlogRepo) Create(_ context.Context, blog *domain.Blog) (*domain.Blog, error) {
	copy := cloneBlog(blog)
	copy.ID = "blog-" + copy.Slug
	r.byID[copy.ID] = copy
	r.bySlug[copy.Slug] = copy
	return cloneBlog(copy), nil
}

func (r *stubBlogRepo) Update(_ context.Context, blog *domain.Blog) (*domain.Blog, error) {
	old := r.byID[blog.ID]
	if old != nil {
		delete(r.bySlug, old.Slug)
	}
	copy := cloneBlog(blog)
	r.byID[copy.ID] = copy
	r.bySlug[copy.Slug] = copy
	return cloneBlog(copy), nil
}

func (r *stubBlogRepo) Delete(_ context.Context, id string) error {
	if b, ok := r.byID[id]; ok {
		delete(r.bySlug, b.Slug)
		delete(r.byID, id)
		return nil
	}
	return domain.ErrBlogNotFound
}

func (r *stubBlogRepo) SaveCover(_ context.Context, id string, asset *domain.Asset) error {
	b, ok := r.byID[id]
	if !ok {
		return domain.ErrBlogNotFound
	}
	b.Cover = asset
	return nil
}

func (r *stubBlogRepo) FindCover(_ context.Context, id string) (*domain.Asset, error) {
	b, ok := r.byID[id]
	if !ok || !b.HasCover() {
		return nil, domain.ErrImageNotFound
	}
	return b.Cover, nil
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Hello, World!":        "hello-world",
		"  Go  &  Postgres  ":  "go-postgres",
		"Already-Slugged-2024": "already-slugged-2024",
	}
	for in, want := range cases {
		if got := Slugify(in); got != want {
			t.Fatalf("Slugify(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestBlogService_Create_SetsSlugAndReadingTime(t *testing.T) {
	repo := newStubBlogRepo()
	now := time.Unix(1700000000, 0)
	svc := NewBlogService(repo, fixedClock{now: now})

	blog, err := svc.Create(context.Background(), &domain.Blog{
		Title:     "My First Post",
		Content:   strings.Repeat("word ", 450),
		Published: true,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if blog.Slug != "my-first-post" {
		t.Fatalf("slug = %q", blog.Slug)
	}
	if blog.ReadingTime != 3 {
		t.Fatalf("reading time = %d, want 3", blog.ReadingTime)
	}
	if blog.PublishedAt == nil || !blog.PublishedAt.Equal(now) {
		t.Fatalf("publishedAt = %v, want %v", blog.PublishedAt, now)
	}
}

func TestBlogService_Create_DuplicateSlug(t *testing.T) {
	repo := newStubBlogRepo()
	svc := NewBlogService(repo, nil)

	if _, err := svc.Create(context.Background(), &domain.Blog{Title: "Same Title", Content: "x"}); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if _, err := svc.Create(context.Background(), &domain.Blog{Title: "Same Title", Content: "y"}); err != domain.ErrSlugExists {
		t.Fatalf("expected ErrSlugExists, got %v", err)
	}
}

func TestBlogService_Update_KeepsOriginalPublishedAt(t *testing.T) {
	repo := newStubBlogRepo()
	first := time.Unix(1700000000, 0)
	svc := NewBlogService(repo, fixedClock{now: first})

	created, err := svc.Create(context.Background(), &domain.Blog{
		Title: "Post", Content: "body", Published: true,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	later := NewBlogService(repo, fixedClock{now: first.Add(48 * time.Hour)})
	updated, err := later.Update(context.Background(), created.ID, &domain.Blog{
		Title: "Post", Slug: created.Slug, Content: "edited body", Published: true,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.PublishedAt == nil || !updated.PublishedAt.Equal(first) {
		t.Fatalf("publishedAt changed on edit: %v, want %v", updated.PublishedAt, first)
	}
}

func TestBlogService_Update_UnpublishClearsPublishedAt(t *testing.T) {
	repo := newStubBlogRepo()
	svc := NewBlogService(repo, fixedClock{now: time.Unix(1700000000, 0)})

	created, err := svc.Create(context.Background(), &domain.Blog{
		Title: "Post", Content: "body", Published: true,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.Update(context.Background(), created.ID, &domain.Blog{
		Title: "Post", Slug: created.Slug, Content: "body", Published: false,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.PublishedAt != nil {
		t.Fatalf("publishedAt should be cleared when unpublished")
	}
}
