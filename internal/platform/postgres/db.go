// Package postgres opens the submission database and applies its schema.
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	// Registers the "postgres" database/sql driver.
	_ "github.com/lib/pq"

	"sunsetguide/internal/platform/config"
)

// Open connects to Postgres and verifies the connection.
// Returns nil, nil if the URL is empty (in-memory stores are used instead).
func Open(ctx context.Context, cfg config.DatabaseConfig) (*sql.DB, error) {
	if cfg.URL == "" {
		return nil, nil
	}
	db, err := sql.Open("postgres", cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres ping failed: %w", err)
	}
	return db, nil
}

// Schema creates the two append-only submission tables. Both are insert-only
// from this service; ids are surrogate keys, not natural keys.
const Schema = `
CREATE TABLE IF NOT EXISTS contact_submissions (
	id         UUID PRIMARY KEY,
	name       TEXT NOT NULL,
	email      TEXT NOT NULL,
	message    TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS group_suggestions (
	id         UUID PRIMARY KEY,
	name       TEXT NOT NULL,
	email      TEXT NOT NULL,
	group_name TEXT NOT NULL,
	group_link TEXT,
	note       TEXT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

// Migrate applies Schema. Safe to run on every start.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
