package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sunsetguide/internal/submission/models"
	"sunsetguide/internal/validation"
)

func TestInMemoryStoreAppends(t *testing.T) {
	ctx := context.Background()
	s := NewInMemoryStore()
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	first := models.NewContactSubmission(validation.Contact{Name: "Ana", Email: "ana@example.com", Message: "one"}, now)
	second := models.NewContactSubmission(validation.Contact{Name: "Bo", Email: "bo@example.com", Message: "two"}, now)
	require.NoError(t, s.SaveContact(ctx, first))
	require.NoError(t, s.SaveContact(ctx, second))

	got := s.Contacts()
	require.Len(t, got, 2)
	assert.Equal(t, *first, got[0])
	assert.Equal(t, *second, got[1])
	assert.NotEqual(t, got[0].ID, got[1].ID)

	got[0].Name = "mutated"
	assert.Equal(t, "Ana", s.Contacts()[0].Name)
}

func TestInMemoryStoreConcurrentSaves(t *testing.T) {
	ctx := context.Background()
	s := NewInMemoryStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			g := models.NewGroupSuggestion(validation.GroupSuggestion{Name: "Ana", Email: "ana@example.com", GroupName: "G"}, time.Now())
			assert.NoError(t, s.SaveGroupSuggestion(ctx, g))
		}()
	}
	wg.Wait()
	assert.Len(t, s.GroupSuggestions(), 50)
}
