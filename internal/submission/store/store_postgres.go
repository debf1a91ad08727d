package store

import (
	"context"
	"database/sql"
	"fmt"

	"sunsetguide/internal/submission/models"
)

// PostgresStore appends submissions to the contact_submissions and
// group_suggestions tables.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed submission store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) SaveContact(ctx context.Context, c *models.ContactSubmission) error {
	query := `
		INSERT INTO contact_submissions (id, name, email, message, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := s.db.ExecContext(ctx, query, c.ID, c.Name, c.Email, c.Message, c.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert contact submission: %w", err)
	}
	return nil
}

func (s *PostgresStore) SaveGroupSuggestion(ctx context.Context, g *models.GroupSuggestion) error {
	query := `
		INSERT INTO group_suggestions (id, name, email, group_name, group_link, note, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := s.db.ExecContext(ctx, query,
		g.ID, g.Name, g.Email, g.GroupName,
		nullString(g.GroupLink), nullString(g.Note),
		g.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert group suggestion: %w", err)
	}
	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
