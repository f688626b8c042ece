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

// SkillRepository persists skills in the skills table.
type SkillRepository struct {
	db *sql.DB
}

func NewSkillRepository(db *sql.DB) *SkillRepository {
	return &SkillRepository{db: db}
}

const skillColumns = "id, name, icon, category, proficiency, sort_order, created_at, updated_at"

func skillSelect() sq.SelectBuilder {
	return psql.
		Select("id", "name", "icon", "category", "proficiency", "sort_order", "created_at", "updated_at").
		From("skills").
		OrderBy("sort_order ASC", "name ASC")
}

func (r *SkillRepository) List(ctx context.Context) ([]domain.Skill, error) {
	query, args, err := skillSelect().ToSql()
	if err != nil {
		return nil, fmt.Errorf("build skill list: %w", err)
	}
	return r.querySkills(ctx, query, args...)
}

func (r *SkillRepository) ListByCategory(ctx context.Context, category string) ([]domain.Skill, error) {
	query, args, err := skillSelect().Where(sq.Eq{"category": category}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build skill category list: %w", err)
	}
	return r.querySkills(ctx, query, args...)
}

func (r *SkillRepository) FindByID(ctx context.Context, id string) (*domain.Skill, error) {
	query, args, err := psql.
		Select("id", "name", "icon", "category", "proficiency", "sort_order", "created_at", "updated_at").
		From("skills").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build skill query: %w", err)
	}

	var s domain.Skill
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&s.ID, &s.Name, &s.Icon, &s.Category, &s.Proficiency, &s.SortOrder, &s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrSkillNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan skill: %w", err)
	}
	return &s, nil
}

func (r *SkillRepository) Create(ctx context.Context, skill *domain.Skill) (*domain.Skill, error) {
	now := time.Now().UTC()
	query, args, err := psql.
		Insert("skills").
		Columns("id", "name", "icon", "category", "proficiency", "sort_order", "created_at", "updated_at").
		Values(uuid.NewString(), skill.Name, skill.Icon, skill.Category, skill.Proficiency, skill.SortOrder, now, now).
		Suffix("RETURNING " + skillColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build skill insert: %w", err)
	}

	var s domain.Skill
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&s.ID, &s.Name, &s.Icon, &s.Category, &s.Proficiency, &s.SortOrder, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert skill: %w", err)
	}
	return &s, nil
}

func (r *SkillRepository) Update(ctx context.Context, skill *domain.Skill) (*domain.Skill, error) {
	query, args, err := psql.
		Update("skills").
		Set("name", skill.Name).
		Set("icon", skill.Icon).
		Set("category", skill.Category).
		Set("proficiency", skill.Proficiency).
		Set("sort_order", skill.SortOrder).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": skill.ID}).
		Suffix("RETURNING " + skillColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build skill update: %w", err)
	}

	var s domain.Skill
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&s.ID, &s.Name, &s.Icon, &s.Category, &s.Proficiency, &s.SortOrder, &s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrSkillNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update skill: %w", err)
	}
	return &s, nil
}

func (r *SkillRepository) Delete(ctx context.Context, id string) error {
	query, args, err := psql.Delete("skills").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build skill delete: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete skill: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrSkillNotFound
	}
	return nil
}

func (r *SkillRepository) querySkills(ctx context.Context, query string, args ...any) ([]domain.Skill, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}
	defer rows.Close()

	skills := []domain.Skill{}
	for rows.Next() {
		var s domain.Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.Icon, &s.Category, &s.Proficiency, &s.SortOrder, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan skill: %w", err)
		}
		skills = append(skills, s)
	}
	return skills, rows.Err()
}
