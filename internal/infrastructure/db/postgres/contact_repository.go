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

// ContactRepository persists contact-form submissions.
type ContactRepository struct {
	db *sql.DB
}

func NewContactRepository(db *sql.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

const contactColumns = "id, name, email, subject, message, read, created_at, updated_at"

func contactSelect() sq.SelectBuilder {
	return psql.
		Select("id", "name", "email", "subject", "message", "read", "created_at", "updated_at").
		From("contacts").
		OrderBy("created_at DESC")
}

func (r *ContactRepository) List(ctx context.Context) ([]domain.Contact, error) {
	query, args, err := contactSelect().ToSql()
	if err != nil {
		return nil, fmt.Errorf("build contact list: %w", err)
	}
	return r.queryContacts(ctx, query, args...)
}

func (r *ContactRepository) ListUnread(ctx context.Context) ([]domain.Contact, error) {
	query, args, err := contactSelect().Where(sq.Eq{"read": false}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build unread contact list: %w", err)
	}
	return r.queryContacts(ctx, query, args...)
}

func (r *ContactRepository) FindByID(ctx context.Context, id string) (*domain.Contact, error) {
	query, args, err := psql.
		Select("id", "name", "email", "subject", "message", "read", "created_at", "updated_at").
		From("contacts").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build contact query: %w", err)
	}
	return r.scanContact(r.db.QueryRowContext(ctx, query, args...))
}

func (r *ContactRepository) Create(ctx context.Context, contact *domain.Contact) (*domain.Contact, error) {
	now := time.Now().UTC()
	query, args, err := psql.
		Insert("contacts").
		Columns("id", "name", "email", "subject", "message", "read", "created_at", "updated_at").
		Values(uuid.NewString(), contact.Name, contact.Email, contact.Subject, contact.Message, false, now, now).
		Suffix("RETURNING " + contactColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build contact insert: %w", err)
	}
	return r.scanContact(r.db.QueryRowContext(ctx, query, args...))
}

func (r *ContactRepository) MarkRead(ctx context.Context, id string) (*domain.Contact, error) {
	query, args, err := psql.
		Update("contacts").
		Set("read", true).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + contactColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build contact read update: %w", err)
	}
	return r.scanContact(r.db.QueryRowContext(ctx, query, args...))
}

func (r *ContactRepository) Delete(ctx context.Context, id string) error {
	query, args, err := psql.Delete("contacts").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build contact delete: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrContactNotFound
	}
	return nil
}

func (r *ContactRepository) queryContacts(ctx context.Context, query string, args ...any) ([]domain.Contact, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()

	contacts := []domain.Contact{}
	for rows.Next() {
		var c domain.Contact
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Subject, &c.Message, &c.Read, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}

func (r *ContactRepository) scanContact(row *sql.Row) (*domain.Contact, error) {
	var c domain.Contact
	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Subject, &c.Message, &c.Read, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrContactNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan contact: %w", err)
	}
	return &c, nil
}
