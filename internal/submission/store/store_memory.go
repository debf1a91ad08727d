// Package store persists submissions. Both implementations are insert-only.
package store

import (
	"context"
	"sync"

	"sunsetguide/internal/submission/models"
)

// InMemoryStore keeps submissions in process memory. Used when no database
// is configured and in tests.
type InMemoryStore struct {
	mu          sync.RWMutex
	contacts    []models.ContactSubmission
	suggestions []models.GroupSuggestion
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{}
}

func (s *InMemoryStore) SaveContact(_ context.Context, c *models.ContactSubmission) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contacts = append(s.contacts, *c)
	return nil
}

func (s *InMemoryStore) SaveGroupSuggestion(_ context.Context, g *models.GroupSuggestion) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.suggestions = append(s.suggestions, *g)
	return nil
}

// Contacts returns a copy of the stored contact submissions in insert order.
func (s *InMemoryStore) Contacts() []models.ContactSubmission {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.ContactSubmission{}, s.contacts...)
}

// GroupSuggestions returns a copy of the stored suggestions in insert order.
func (s *InMemoryStore) GroupSuggestions() []models.GroupSuggestion {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.GroupSuggestion{}, s.suggestions...)
}
