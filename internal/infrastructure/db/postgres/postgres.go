// Package postgres implements the persistence ports against PostgreSQL,
// using database/sql over the pgx stdlib driver.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib"
)

const defaultTimeout = 10 * time.Second

// psql builds queries with $n placeholders for PostgreSQL.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Config captures the minimal settings required to open a connection pool.
type Config struct {
	URL     string
	Timeout time.Duration
}

// Connect opens a connection pool and verifies connectivity with a ping.
// A default timeout is applied when none is provided.
func Connect(ctx context.Context, cfg Config) (*sql.DB, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	db, err := sql.Open("pgx", cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("postgres open: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres ping: %w", err)
	}

	return db, nil
}

// encodeStrings stores a string slice as a JSON column. nil encodes as [].
func encodeStrings(ss []string) ([]byte, error) {
	if ss == nil {
		ss = []string{}
	}
	return json.Marshal(ss)
}

// decodeStrings reads a JSON column back into a string slice. NULL and
// empty values decode as an empty slice.
func decodeStrings(raw []byte) ([]string, error) {
	if len(raw) == 0 {
		return []string{}, nil
	}
	var ss []string
	if err := json.Unmarshal(raw, &ss); err != nil {
		return nil, fmt.Errorf("decode string list: %w", err)
	}
	if ss == nil {
		ss = []string{}
	}
	return ss, nil
}
