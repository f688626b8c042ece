package service

import (
	"context"
	"strings"
	"unicode"

	"github.com/portfolio-cms/portfolio-api/internal/core/domain"
	"github.com/portfolio-cms/portfolio-api/internal/core/ports"
)

// wordsPerMinute drives the derived reading-time estimate.
const wordsPerMinute = 200

// BlogService implements blog CRUD, slug management and cover images.
type BlogService struct {
	repo  ports.BlogRepository
	clock Clock
}

func NewBlogService(repo ports.BlogRepository, clock Clock) *BlogService {
	if clock == nil {
		clock = SystemClock{}
	}
	return &BlogService{repo: repo, clock: clock}
}

func (s *BlogService) ListPublished(ctx context.Context) ([]domain.Blog, error) {
	return s.repo.ListPublished(ctx)
}

func (s *BlogService) ListAll(ctx context.Context) ([]domain.Blog, error) {
	return s.repo.ListAll(ctx)
}

func (s *BlogService) GetBySlug(ctx context.Context, slug string) (*domain.Blog, error) {
	return s.repo.FindBySlug(ctx, slug)
}

func (s *BlogService) Create(ctx context.Context, blog *domain.Blog) (*domain.Blog, error) {
	if blog.Slug == "" {
		blog.Slug = Slugify(blog.Title)
	}
	exists, err := s.repo.ExistsBySlug(ctx, blog.Slug)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrSlugExists
	}

	s.derive(blog, nil)
	return s.repo.Create(ctx, blog)
}

func (s *BlogService) Update(ctx context.Context, id string, blog *domain.Blog) (*domain.Blog, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if blog.Slug == "" {
		blog.Slug = existing.Slug
	}
	if blog.Slug != existing.Slug {
		exists, err := s.repo.ExistsBySlug(ctx, blog.Slug)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, domain.ErrSlugExists
		}
	}

	blog.ID = existing.ID
	blog.CreatedAt = existing.CreatedAt
	s.derive(blog, existing)
	return s.repo.Update(ctx, blog)
}

func (s *BlogService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// UploadCover validates the image payload and stores it as the post's
// cover image.
func (s *BlogService) UploadCover(ctx context.Context, id, base64Data, contentType string) (*domain.Blog, error) {
	asset, err := decodeImage(base64Data, contentType)
	if err != nil {
		return nil, err
	}
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, err
	}
	if err := s.repo.SaveCover(ctx, id, asset); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

func (s *BlogService) GetCover(ctx context.Context, id string) (*domain.Asset, error) {
	return s.repo.FindCover(ctx, id)
}

// derive fills computed fields: reading time from content length, and the
// publication timestamp on the unpublished→published transition.
func (s *BlogService) derive(blog, previous *domain.Blog) {
	words := len(strings.Fields(blog.Content))
	blog.ReadingTime = (words + wordsPerMinute - 1) / wordsPerMinute

	switch {
	case !blog.Published:
		blog.PublishedAt = nil
	case previous != nil && previous.Published && previous.PublishedAt != nil:
		blog.PublishedAt = previous.PublishedAt
	default:
		now := s.clock.Now()
		blog.PublishedAt = &now
	}
}

// Slugify lowercases the title and collapses every non-alphanumeric run
// into a single hyphen.
func Slugify(title string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastHyphen = false
		} else if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	return strings.Trim(b.String(), "-")
}
