package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/portfolio-cms/portfolio-api/internal/core/domain"
)

// UserRepository persists admin accounts in the users table.
type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = "id, username, password_hash, role, requires_password_change, created_at, updated_at"

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	query, args, err := psql.
		Select("id", "username", "password_hash", "role", "requires_password_change", "created_at", "updated_at").
		From("users").
		Where(sq.Eq{"username": username}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build user query: %w", err)
	}

	return r.scanUser(r.db.QueryRowContext(ctx, query, args...))
}

func (r *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	query, args, err := psql.
		Select("1").
		From("users").
		Where(sq.Eq{"username": username}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build user exists query: %w", err)
	}

	var one int
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("user exists: %w", err)
	}
	return true, nil
}

// Save inserts the user when it has no ID yet, otherwise updates the
// existing row. The persisted copy is returned.
func (r *UserRepository) Save(ctx context.Context, user *domain.User) (*domain.User, error) {
	now := time.Now().UTC()

	if user.ID == "" {
		id := uuid.NewString()
		query, args, err := psql.
			Insert("users").
			Columns("id", "username", "password_hash", "role", "requires_password_change", "created_at", "updated_at").
			Values(id, user.Username, user.PasswordHash, user.Role, user.RequiresPasswordChange, now, now).
			Suffix("RETURNING " + userColumns).
			ToSql()
		if err != nil {
			return nil, fmt.Errorf("build user insert: %w", err)
		}

		created, err := r.scanUser(r.db.QueryRowContext(ctx, query, args...))
		if err != nil {
			if isUniqueViolation(err) {
				return nil, domain.ErrUserExists
			}
			return nil, err
		}
		return created, nil
	}

	query, args, err := psql.
		Update("users").
		Set("username", user.Username).
		Set("password_hash", user.PasswordHash).
		Set("role", user.Role).
		Set("requires_password_change", user.RequiresPasswordChange).
		Set("updated_at", now).
		Where(sq.Eq{"id": user.ID}).
		Suffix("RETURNING " + userColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build user update: %w", err)
	}

	updated, err := r.scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrUserExists
		}
		return nil, err
	}
	return updated, nil
}

func (r *UserRepository) Count(ctx context.Context) (int, error) {
	query, args, err := psql.Select("COUNT(*)").From("users").ToSql()
	if err != nil {
		return 0, fmt.Errorf("build user count: %w", err)
	}

	var n int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

func (r *UserRepository) scanUser(row *sql.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.RequiresPasswordChange, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return &u, nil
}

// isUniqueViolation reports whether err is a PostgreSQL unique_violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
