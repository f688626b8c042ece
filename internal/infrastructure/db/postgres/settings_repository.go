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

// SettingsRepository persists the single site-settings row.
type SettingsRepository struct {
	db *sql.DB
}

func NewSettingsRepository(db *sql.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

const settingsColumns = "id, avatar_size, accent_color, font_family, hero_visible, about_visible, " +
	"skills_visible, experience_visible, projects_visible, contact_visible, created_at, updated_at"

func (r *SettingsRepository) Find(ctx context.Context) (*domain.SiteSettings, error) {
	query, args, err := psql.
		Select("id", "avatar_size", "accent_color", "font_family", "hero_visible", "about_visible",
			"skills_visible", "experience_visible", "projects_visible", "contact_visible",
			"created_at", "updated_at").
		From("site_settings").
		OrderBy("created_at ASC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build settings query: %w", err)
	}
	return r.scanSettings(r.db.QueryRowContext(ctx, query, args...))
}

// Save updates the existing settings row, inserting it the first time.
func (r *SettingsRepository) Save(ctx context.Context, settings *domain.SiteSettings) (*domain.SiteSettings, error) {
	now := time.Now().UTC()

	existing, err := r.Find(ctx)
	if errors.Is(err, domain.ErrSettingsNotFound) {
		query, args, qErr := psql.
			Insert("site_settings").
			Columns("id", "avatar_size", "accent_color", "font_family", "hero_visible", "about_visible",
				"skills_visible", "experience_visible", "projects_visible", "contact_visible",
				"created_at", "updated_at").
			Values(uuid.NewString(), settings.AvatarSize, settings.AccentColor, settings.FontFamily,
				settings.HeroVisible, settings.AboutVisible, settings.SkillsVisible,
				settings.ExperienceVisible, settings.ProjectsVisible, settings.ContactVisible, now, now).
			Suffix("RETURNING " + settingsColumns).
			ToSql()
		if qErr != nil {
			return nil, fmt.Errorf("build settings insert: %w", qErr)
		}
		return r.scanSettings(r.db.QueryRowContext(ctx, query, args...))
	}
	if err != nil {
		return nil, err
	}

	query, args, err := psql.
		Update("site_settings").
		Set("avatar_size", settings.AvatarSize).
		Set("accent_color", settings.AccentColor).
		Set("font_family", settings.FontFamily).
		Set("hero_visible", settings.HeroVisible).
		Set("about_visible", settings.AboutVisible).
		Set("skills_visible", settings.SkillsVisible).
		Set("experience_visible", settings.ExperienceVisible).
		Set("projects_visible", settings.ProjectsVisible).
		Set("contact_visible", settings.ContactVisible).
		Set("updated_at", now).
		Where(sq.Eq{"id": existing.ID}).
		Suffix("RETURNING " + settingsColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build settings update: %w", err)
	}
	return r.scanSettings(r.db.QueryRowContext(ctx, query, args...))
}

func (r *SettingsRepository) scanSettings(row *sql.Row) (*domain.SiteSettings, error) {
	var s domain.SiteSettings
	err := row.Scan(&s.ID, &s.AvatarSize, &s.AccentColor, &s.FontFamily, &s.HeroVisible, &s.AboutVisible,
		&s.SkillsVisible, &s.ExperienceVisible, &s.ProjectsVisible, &s.ContactVisible,
		&s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan settings: %w", err)
	}
	return &s, nil
}
