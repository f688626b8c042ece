package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/portfolio-cms/portfolio-api/internal/core/domain"
)

// ProjectRepository persists projects and their thumbnail blobs.
type ProjectRepository struct {
	db *sql.DB
}

func NewProjectRepository(db *sql.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// projectColumns excludes the thumbnail blob; list and detail reads never
// pull image bytes.
var projectColumns = []string{
	"id", "title", "description", "technologies", "image_url", "project_url",
	"github_url", "featured", "sort_order", "thumbnail_updated_at",
	"created_at", "updated_at",
}

func projectSelect() sq.SelectBuilder {
	return psql.
		Select(projectColumns...).
		From("projects").
		OrderBy("sort_order ASC", "created_at DESC")
}

func (r *ProjectRepository) List(ctx context.Context) ([]domain.Project, error) {
	query, args, err := projectSelect().ToSql()
	if err != nil {
		return nil, fmt.Errorf("build project list: %w", err)
	}
	return r.queryProjects(ctx, query, args...)
}

func (r *ProjectRepository) ListFeatured(ctx context.Context) ([]domain.Project, error) {
	query, args, err := projectSelect().Where(sq.Eq{"featured": true}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build featured project list: %w", err)
	}
	return r.queryProjects(ctx, query, args...)
}

func (r *ProjectRepository) FindByID(ctx context.Context, id string) (*domain.Project, error) {
	query, args, err := psql.
		Select(projectColumns...).
		From("projects").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build project query: %w", err)
	}

	p, err := scanProject(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrProjectNotFound
	}
	return p, err
}

func (r *ProjectRepository) Create(ctx context.Context, project *domain.Project) (*domain.Project, error) {
	techs, err := encodeStrings(project.Technologies)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	query, args, err := psql.
		Insert("projects").
		Columns("id", "title", "description", "technologies", "image_url", "project_url",
			"github_url", "featured", "sort_order", "created_at", "updated_at").
		Values(uuid.NewString(), project.Title, project.Description, techs, project.ImageURL,
			project.ProjectURL, project.GithubURL, project.Featured, project.SortOrder, now, now).
		Suffix("RETURNING " + joinColumns(projectColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build project insert: %w", err)
	}

	return scanProject(r.db.QueryRowContext(ctx, query, args...))
}

func (r *ProjectRepository) Update(ctx context.Context, project *domain.Project) (*domain.Project, error) {
	techs, err := encodeStrings(project.Technologies)
	if err != nil {
		return nil, err
	}

	query, args, err := psql.
		Update("projects").
		Set("title", project.Title).
		Set("description", project.Description).
		Set("technologies", techs).
		Set("image_url", project.ImageURL).
		Set("project_url", project.ProjectURL).
		Set("github_url", project.GithubURL).
		Set("featured", project.Featured).
		Set("sort_order", project.SortOrder).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": project.ID}).
		Suffix("RETURNING " + joinColumns(projectColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build project update: %w", err)
	}

	p, err := scanProject(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrProjectNotFound
	}
	return p, err
}

func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	query, args, err := psql.Delete("projects").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build project delete: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrProjectNotFound
	}
	return nil
}

func (r *ProjectRepository) SaveThumbnail(ctx context.Context, id string, asset *domain.Asset) error {
	now := time.Now().UTC()
	query, args, err := psql.
		Update("projects").
		Set("thumbnail", asset.Data).
		Set("thumbnail_content_type", asset.ContentType).
		Set("thumbnail_size", asset.Size).
		Set("thumbnail_updated_at", now).
		Set("updated_at", now).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build thumbnail update: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("save thumbnail: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrProjectNotFound
	}
	return nil
}

func (r *ProjectRepository) FindThumbnail(ctx context.Context, id string) (*domain.Asset, error) {
	query, args, err := psql.
		Select("thumbnail", "thumbnail_content_type", "thumbnail_size").
		From("projects").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build thumbnail query: %w", err)
	}

	var (
		data        []byte
		contentType sql.NullString
		size        sql.NullInt64
	)
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&data, &contentType, &size)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrProjectNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan thumbnail: %w", err)
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

func (r *ProjectRepository) queryProjects(ctx context.Context, query string, args ...any) ([]domain.Project, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	projects := []domain.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, *p)
	}
	return projects, rows.Err()
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (*domain.Project, error) {
	var (
		p           domain.Project
		techs       []byte
		thumbnailAt sql.NullTime
	)
	err := row.Scan(&p.ID, &p.Title, &p.Description, &techs, &p.ImageURL, &p.ProjectURL,
		&p.GithubURL, &p.Featured, &p.SortOrder, &thumbnailAt, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan project: %w", err)
	}

	if p.Technologies, err = decodeStrings(techs); err != nil {
		return nil, err
	}
	if thumbnailAt.Valid {
		t := thumbnailAt.Time.UTC()
		p.ThumbnailAt = &t
	}
	return &p, nil
}

func joinColumns(cols []string) string {
	return strings.Join(cols, ", ")
}
