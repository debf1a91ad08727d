//go:build integration

package store_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"sunsetguide/internal/submission/models"
	"sunsetguide/internal/submission/store"
	"sunsetguide/internal/validation"
	"sunsetguide/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	pg    *containers.PostgresContainer
	store *store.PostgresStore
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	mgr := containers.GetManager()
	s.pg = mgr.GetPostgres(s.T())
	s.store = store.NewPostgres(s.pg.DB)
}

func (s *PostgresStoreSuite) SetupTest() {
	s.Require().NoError(s.pg.Truncate(context.Background(), "contact_submissions", "group_suggestions"))
}

func (s *PostgresStoreSuite) TestSaveContact() {
	ctx := context.Background()
	now := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	c := models.NewContactSubmission(validation.Contact{
		Name:    "Ana",
		Email:   "ana@example.com",
		Message: "Hello\nfrom the beach",
	}, now)

	s.Require().NoError(s.store.SaveContact(ctx, c))

	var name, email, message string
	var createdAt time.Time
	err := s.pg.DB.QueryRowContext(ctx,
		`SELECT name, email, message, created_at FROM contact_submissions WHERE id = $1`, c.ID,
	).Scan(&name, &email, &message, &createdAt)
	s.Require().NoError(err)
	s.Equal("Ana", name)
	s.Equal("ana@example.com", email)
	s.Equal("Hello\nfrom the beach", message)
	s.True(now.Equal(createdAt))
}

func (s *PostgresStoreSuite) TestSaveGroupSuggestionOptionalFieldsAreNull() {
	ctx := context.Background()
	g := models.NewGroupSuggestion(validation.GroupSuggestion{
		Name:      "Ana",
		Email:     "ana@example.com",
		GroupName: "Noriega Knitters",
	}, time.Now().UTC())

	s.Require().NoError(s.store.SaveGroupSuggestion(ctx, g))

	var link, note sql.NullString
	err := s.pg.DB.QueryRowContext(ctx,
		`SELECT group_link, note FROM group_suggestions WHERE id = $1`, g.ID,
	).Scan(&link, &note)
	s.Require().NoError(err)
	s.False(link.Valid)
	s.False(note.Valid)
}

func (s *PostgresStoreSuite) TestDuplicateIDIsRejected() {
	ctx := context.Background()
	c := models.NewContactSubmission(validation.Contact{Name: "Ana", Email: "ana@example.com", Message: "hi"}, time.Now().UTC())

	s.Require().NoError(s.store.SaveContact(ctx, c))
	err := s.store.SaveContact(ctx, c)
	s.Require().Error(err)
	s.Contains(err.Error(), "insert contact submission")
}
