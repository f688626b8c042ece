package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/portfolio-cms/portfolio-api/internal/core/domain"
)

// BlogRepository persists blog posts and their cover image blobs.
type BlogRepository struct {
	db *sql.DB
}

func NewBlogRepository(db *sql.DB) *BlogRepository {
	return &BlogRepository{db: db}
}

var blogColumns = []string{
	"id", "title", "slug", "excerpt", "content", "cover_image", "tags",
	"published", "published_at", "reading_time", "created_at", "updated_at",
}

func blogSelect() sq.SelectBuilder {
	return psql.
		Select(blogColumns...).
		From("blogs")
}

func (r *BlogRepository) ListPublished(ctx context.Context) ([]domain.Blog, error) {
	query, args, err := blogSelect().
		Where(sq.Eq{"published": true}).
		OrderBy("published_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build published blog list: %w", err)
	}
	return r.queryBlogs(ctx, query, args...)
}

func (r *BlogRepository) ListAll(ctx context.Context) ([]domain.Blog, error) {
	query, args, err := blogSelect().OrderBy("created_at DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build blog list: %w", err)
	}
	return r.queryBlogs(ctx, query, args...)
}

func (r *BlogRepository) FindBySlug(ctx context.Context, slug string) (*domain.Blog, error) {
	return r.findOne(ctx, sq.Eq{"slug": slug})
}

func (r *BlogRepository) FindByID(ctx context.Context, id string) (*domain.Blog, error) {
	return r.findOne(ctx, sq.Eq{"id": id})
}

func (r *BlogRepository) findOne(ctx context.Context, where sq.Eq) (*domain.Blog, error) {
	query, args, err := psql.Select(blogColumns...).From("blogs").Where(where).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build blog query: %w", err)
	}

	b, err := scanBlog(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrBlogNotFound
	}
	return b, err
}

func (r *BlogRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	query, args, err := psql.Select("1").From("blogs").Where(sq.Eq{"slug": slug}).ToSql()
	if err != nil {
		return false, fmt.Errorf("build slug exists query: %w", err)
	}

	var one int
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("slug exists: %w", err)
	}
	return true, nil
}

func (r *BlogRepository) Create(ctx context.Context, blog *domain.Blog) (*domain.Blog, error) {
	tags, err := encodeStrings(blog.Tags)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	query, args, err := psql.
		Insert("blogs").
		Columns("id", "title", "slug", "excerpt", "content", "cover_image", "tags",
			"published", "published_at", "reading_time", "created_at", "updated_at").
		Values(uuid.NewString(), blog.Title, blog.Slug, blog.Excerpt, blog.Content, blog.CoverImage,
			tags, blog.Published, blog.PublishedAt, blog.ReadingTime, now, now).
		Suffix("RETURNING " + joinColumns(blogColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build blog insert: %w", err)
	}

	created, err := scanBlog(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrSlugExists
		}
		return nil, err
	}
	return created, nil
}

func (r *BlogRepository) Update(ctx context.Context, blog *domain.Blog) (*domain.Blog, error) {
	tags, err := encodeStrings(blog.Tags)
	if err != nil {
		return nil, err
	}

	query, args, err := psql.
		Update("blogs").
		Set("title", blog.Title).
		Set("slug", blog.Slug).
		Set("excerpt", blog.Excerpt).
		Set("content", blog.Content).
		Set("cover_image", blog.CoverImage).
		Set("tags", tags).
		Set("published", blog.Published).
		Set("published_at", blog.PublishedAt).
		Set("reading_time", blog.ReadingTime).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": blog.ID}).
		Suffix("RETURNING " + joinColumns(blogColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build blog update: %w", err)
	}

	updated, err := scanBlog(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrBlogNotFound
	}
	if err != nil && isUniqueViolation(err) {
		return nil, domain.ErrSlugExists
	}
	return updated, err
}

func (r *BlogRepository) Delete(ctx context.Context, id string) error {
	query, args, err := psql.Delete("blogs").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build blog delete: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete blog: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrBlogNotFound
	}
	return nil
}

func (r *BlogRepository) SaveCover(ctx context.Context, id string, asset *domain.Asset) error {
	query, args, err := psql.
		Update("blogs").
		Set("cover", asset.Data).
		Set("cover_content_type", asset.ContentType).
		Set("cover_size", asset.Size).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build cover update: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("save cover: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrBlogNotFound
	}
	return nil
}

func (r *BlogRepository) FindCover(ctx context.Context, id string) (*domain.Asset, error) {
	query, args, err := psql.
		Select("cover", "cover_content_type", "cover_size").
		From("blogs").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build cover query: %w", err)
	}

	var (
		data        []byte
		contentType sql.NullString
		size        sql.NullInt64
	)
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&data, &contentType, &size)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrBlogNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan cover: %w", err)
	}
	if len(data) == 0 {
		return nil, domain.ErrImageNotFound
	}

	return &domain.Asset{
		Data:        data,
		ContentType: contentType.String,
		Size:        int(size.Int64),
	}, nil
}

func (r *BlogRepository) queryBlogs(ctx context.Context, query string, args ...any) ([]domain.Blog, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list blogs: %w", err)
	}
	defer rows.Close()

	blogs := []domain.Blog{}
	for rows.Next() {
		b, err := scanBlog(rows)
		if err != nil {
			return nil, err
		}
		blogs = append(blogs, *b)
	}
	return blogs, rows.Err()
}

func scanBlog(row rowScanner) (*domain.Blog, error) {
	var (
		b           domain.Blog
		tags        []byte
		publishedAt sql.NullTime
	)
	err := row.Scan(&b.ID, &b.Title, &b.Slug, &b.Excerpt, &b.Content, &b.CoverImage, &tags,
		&b.Published, &publishedAt, &b.ReadingTime, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan blog: %w", err)
	}

	if b.Tags, err = decodeStrings(tags); err != nil {
		return nil, err
	}
	if publishedAt.Valid {
		t := publishedAt.Time.UTC()
		b.PublishedAt = &t
	}
	return &b, nil
}
