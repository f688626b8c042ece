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

// ProfileRepository persists the single owner profile, its social links and
// the avatar/resume blobs. Social links are replaced wholesale on save.
type ProfileRepository struct {
	db *sql.DB
}

func NewProfileRepository(db *sql.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

var profileColumns = []string{
	"id", "full_name", "title", "bio", "email", "phone", "location",
	"avatar_url", "avatar_updated_at", "resume_url", "created_at", "updated_at",
}

func (r *ProfileRepository) Find(ctx context.Context) (*domain.Profile, error) {
	query, args, err := psql.
		Select(profileColumns...).
		From("profiles").
		OrderBy("created_at ASC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build profile query: %w", err)
	}
	return r.loadProfile(ctx, query, args...)
}

func (r *ProfileRepository) FindByID(ctx context.Context, id string) (*domain.Profile, error) {
	query, args, err := psql.
		Select(profileColumns...).
		From("profiles").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build profile query: %w", err)
	}
	return r.loadProfile(ctx, query, args...)
}

func (r *ProfileRepository) loadProfile(ctx context.Context, query string, args ...any) (*domain.Profile, error) {
	var (
		p        domain.Profile
		avatarAt sql.NullTime
	)
	err := r.db.QueryRowContext(ctx, query, args...).
		Scan(&p.ID, &p.FullName, &p.Title, &p.Bio, &p.Email, &p.Phone, &p.Location,
			&p.AvatarURL, &avatarAt, &p.ResumeURL, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan profile: %w", err)
	}
	if avatarAt.Valid {
		t := avatarAt.Time.UTC()
		p.AvatarAt = &t
	}

	if p.SocialLinks, err = r.loadSocialLinks(ctx, p.ID); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProfileRepository) loadSocialLinks(ctx context.Context, profileID string) ([]domain.SocialLink, error) {
	query, args, err := psql.
		Select("id", "platform", "url", "icon", "sort_order", "created_at", "updated_at").
		From("social_links").
		Where(sq.Eq{"profile_id": profileID}).
		OrderBy("sort_order ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build social link query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list social links: %w", err)
	}
	defer rows.Close()

	links := []domain.SocialLink{}
	for rows.Next() {
		var l domain.SocialLink
		if err := rows.Scan(&l.ID, &l.Platform, &l.URL, &l.Icon, &l.SortOrder, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan social link: %w", err)
		}
		links = append(links, l)
	}
	return links, rows.Err()
}

// Save inserts the profile when none exists yet, otherwise updates it, and
// replaces the social links in the same transaction.
func (r *ProfileRepository) Save(ctx context.Context, profile *domain.Profile) (*domain.Profile, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin profile save: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	id := profile.ID
	if id == "" {
		id = uuid.NewString()
		query, args, qErr := psql.
			Insert("profiles").
			Columns("id", "full_name", "title", "bio", "email", "phone", "location",
				"avatar_url", "resume_url", "created_at", "updated_at").
			Values(id, profile.FullName, profile.Title, profile.Bio, profile.Email, profile.Phone,
				profile.Location, profile.AvatarURL, profile.ResumeURL, now, now).
			ToSql()
		if qErr != nil {
			return nil, fmt.Errorf("build profile insert: %w", qErr)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return nil, fmt.Errorf("insert profile: %w", err)
		}
	} else {
		query, args, qErr := psql.
			Update("profiles").
			Set("full_name", profile.FullName).
			Set("title", profile.Title).
			Set("bio", profile.Bio).
			Set("email", profile.Email).
			Set("phone", profile.Phone).
			Set("location", profile.Location).
			Set("avatar_url", profile.AvatarURL).
			Set("resume_url", profile.ResumeURL).
			Set("updated_at", now).
			Where(sq.Eq{"id": id}).
			ToSql()
		if qErr != nil {
			return nil, fmt.Errorf("build profile update: %w", qErr)
		}
		res, eErr := tx.ExecContext(ctx, query, args...)
		if eErr != nil {
			return nil, fmt.Errorf("update profile: %w", eErr)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return nil, domain.ErrProfileNotFound
		}
	}

	delQuery, delArgs, err := psql.Delete("social_links").Where(sq.Eq{"profile_id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build social link delete: %w", err)
	}
	if _, err = tx.ExecContext(ctx, delQuery, delArgs...); err != nil {
		return nil, fmt.Errorf("delete social links: %w", err)
	}

	for _, l := range profile.SocialLinks {
		query, args, qErr := psql.
			Insert("social_links").
			Columns("id", "profile_id", "platform", "url", "icon", "sort_order", "created_at", "updated_at").
			Values(uuid.NewString(), id, l.Platform, l.URL, l.Icon, l.SortOrder, now, now).
			ToSql()
		if qErr != nil {
			return nil, fmt.Errorf("build social link insert: %w", qErr)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return nil, fmt.Errorf("insert social link: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit profile save: %w", err)
	}

	return r.FindByID(ctx, id)
}

func (r *ProfileRepository) SaveAvatar(ctx context.Context, id string, asset *domain.Asset) error {
	now := time.Now().UTC()
	query, args, err := psql.
		Update("profiles").
		Set("avatar", asset.Data).
		Set("avatar_content_type", asset.ContentType).
		Set("avatar_size", asset.Size).
		Set("avatar_updated_at", now).
		Set("updated_at", now).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build avatar update: %w", err)
	}
	return r.execProfileUpdate(ctx, query, args...)
}

func (r *ProfileRepository) SaveResume(ctx context.Context, id string, asset *domain.Asset) error {
	query, args, err := psql.
		Update("profiles").
		Set("resume", asset.Data).
		Set("resume_content_type", asset.ContentType).
		Set("resume_size", asset.Size).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build resume update: %w", err)
	}
	return r.execProfileUpdate(ctx, query, args...)
}

func (r *ProfileRepository) execProfileUpdate(ctx context.Context, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("save profile asset: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}

func (r *ProfileRepository) FindResume(ctx context.Context) (*domain.Asset, error) {
	query, args, err := psql.
		Select("resume", "resume_content_type", "resume_size").
		From("profiles").
		OrderBy("created_at ASC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build resume query: %w", err)
	}

	asset, err := r.scanAsset(ctx, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrResumeNotFound
	}
	if err == nil && len(asset.Data) == 0 {
		return nil, domain.ErrResumeNotFound
	}
	return asset, err
}

func (r *ProfileRepository) FindAvatar(ctx context.Context, id string) (*domain.Asset, error) {
	query, args, err := psql.
		Select("avatar", "avatar_content_type", "avatar_size").
		From("profiles").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build avatar query: %w", err)
	}

	asset, err := r.scanAsset(ctx, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrProfileNotFound
	}
	if err == nil && len(asset.Data) == 0 {
		return nil, domain.ErrImageNotFound
	}
	return asset, err
}

func (r *ProfileRepository) scanAsset(ctx context.Context, query string, args ...any) (*domain.Asset, error) {
	var (
		data        []byte
		contentType sql.NullString
		size        sql.NullInt64
	)
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&data, &contentType, &size)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan profile asset: %w", err)
	}

	return &domain.Asset{
		Data:        data,
		ContentType: contentType.String,
		Size:        int(size.Int64),
	}, nil
}
