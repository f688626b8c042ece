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

// ExperienceRepository persists work-history entries.
type ExperienceRepository struct {
	db *sql.DB
}

func NewExperienceRepository(db *sql.DB) *ExperienceRepository {
	return &ExperienceRepository{db: db}
}

var experienceColumns = []string{
	"id", "company", "position", "start_date", "end_date", "description",
	"technologies", "company_url", "location", "sort_order", "created_at", "updated_at",
}

func experienceSelect() sq.SelectBuilder {
	return psql.
		Select(experienceColumns...).
		From("experiences").
		OrderBy("sort_order ASC", "start_date DESC")
}

func (r *ExperienceRepository) List(ctx context.Context) ([]domain.Experience, error) {
	query, args, err := experienceSelect().ToSql()
	if err != nil {
		return nil, fmt.Errorf("build experience list: %w", err)
	}
	return r.queryExperiences(ctx, query, args...)
}

func (r *ExperienceRepository) ListCurrent(ctx context.Context) ([]domain.Experience, error) {
	query, args, err := experienceSelect().Where(sq.Eq{"end_date": nil}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build current experience list: %w", err)
	}
	return r.queryExperiences(ctx, query, args...)
}

func (r *ExperienceRepository) FindByID(ctx context.Context, id string) (*domain.Experience, error) {
	query, args, err := psql.
		Select(experienceColumns...).
		From("experiences").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build experience query: %w", err)
	}

	e, err := scanExperience(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrExperienceNotFound
	}
	return e, err
}

func (r *ExperienceRepository) Create(ctx context.Context, exp *domain.Experience) (*domain.Experience, error) {
	techs, err := encodeStrings(exp.Technologies)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	query, args, err := psql.
		Insert("experiences").
		Columns("id", "company", "position", "start_date", "end_date", "description",
			"technologies", "company_url", "location", "sort_order", "created_at", "updated_at").
		Values(uuid.NewString(), exp.Company, exp.Position, exp.StartDate, exp.EndDate, exp.Description,
			techs, exp.CompanyURL, exp.Location, exp.SortOrder, now, now).
		Suffix("RETURNING " + joinColumns(experienceColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build experience insert: %w", err)
	}

	return scanExperience(r.db.QueryRowContext(ctx, query, args...))
}

func (r *ExperienceRepository) Update(ctx context.Context, exp *domain.Experience) (*domain.Experience, error) {
	techs, err := encodeStrings(exp.Technologies)
	if err != nil {
		return nil, err
	}

	query, args, err := psql.
		Update("experiences").
		Set("company", exp.Company).
		Set("position", exp.Position).
		Set("start_date", exp.StartDate).
		Set("end_date", exp.EndDate).
		Set("description", exp.Description).
		Set("technologies", techs).
		Set("company_url", exp.CompanyURL).
		Set("location", exp.Location).
		Set("sort_order", exp.SortOrder).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": exp.ID}).
		Suffix("RETURNING " + joinColumns(experienceColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build experience update: %w", err)
	}

	e, err := scanExperience(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrExperienceNotFound
	}
	return e, err
}

func (r *ExperienceRepository) Delete(ctx context.Context, id string) error {
	query, args, err := psql.Delete("experiences").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build experience delete: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete experience: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrExperienceNotFound
	}
	return nil
}

func (r *ExperienceRepository) queryExperiences(ctx context.Context, query string, args ...any) ([]domain.Experience, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list experiences: %w", err)
	}
	defer rows.Close()

	exps := []domain.Experience{}
	for rows.Next() {
		e, err := scanExperience(rows)
		if err != nil {
			return nil, err
		}
		exps = append(exps, *e)
	}
	return exps, rows.Err()
}

func scanExperience(row rowScanner) (*domain.Experience, error) {
	var (
		e       domain.Experience
		techs   []byte
		endDate sql.NullTime
	)
	err := row.Scan(&e.ID, &e.Company, &e.Position, &e.StartDate, &endDate, &e.Description,
		&techs, &e.CompanyURL, &e.Location, &e.SortOrder, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan experience: %w", err)
	}

	if e.Technologies, err = decodeStrings(techs); err != nil {
		return nil, err
	}
	if endDate.Valid {
		t := endDate.Time.UTC()
		e.EndDate = &t
	}
	return &e, nil
}
