package models

import (
	"time"

	"github.com/google/uuid"

	"sunsetguide/internal/validation"
)

// Form names a public form. Used as a metric and log label.
type Form string

const (
	FormContact         Form = "contact"
	FormGroupSuggestion Form = "group_suggestion"
)

// ContactSubmission is a persisted contact form entry. Rows are append-only.
type ContactSubmission struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Message   string
	CreatedAt time.Time
}

// NewContactSubmission stamps a validated contact form with an id and time.
func NewContactSubmission(c validation.Contact, now time.Time) *ContactSubmission {
	return &ContactSubmission{
		ID:        uuid.New(),
		Name:      c.Name,
		Email:     c.Email,
		Message:   c.Message,
		CreatedAt: now,
	}
}

// GroupSuggestion is a persisted "suggest a group" entry. Rows are append-only.
type GroupSuggestion struct {
	ID        uuid.UUID
	Name      string
	Email     string
	GroupName string
	GroupLink string
	Note      string
	CreatedAt time.Time
}

// NewGroupSuggestion stamps a validated suggestion with an id and time.
func NewGroupSuggestion(g validation.GroupSuggestion, now time.Time) *GroupSuggestion {
	return &GroupSuggestion{
		ID:        uuid.New(),
		Name:      g.Name,
		Email:     g.Email,
		GroupName: g.GroupName,
		GroupLink: g.GroupLink,
		Note:      g.Note,
		CreatedAt: now,
	}
}

// State is where a submission attempt ended.
type State string

const (
	StateIdle          State = "idle"
	StateValidating    State = "validating"
	StateRejected      State = "rejected"
	StatePersisting    State = "persisting"
	StatePersistFailed State = "persist_failed"
	StatePersisted     State = "persisted"
	StateNotifying     State = "notifying"
	StateNotifyFailed  State = "notify_failed"
	StateDone          State = "done"
)

// Succeeded reports whether the user should see a success message. A failed
// notification still counts because the submission was stored.
func (s State) Succeeded() bool {
	return s == StateDone || s == StateNotifyFailed
}

// Result is the outcome of one pipeline run.
type Result struct {
	State       State
	ID          uuid.UUID
	FieldErrors validation.FieldErrors
}
