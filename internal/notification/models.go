package notification

import "sunsetguide/internal/validation"

// Type discriminates the notification payload.
type Type string

const (
	TypeContact         Type = "contact"
	TypeGroupSuggestion Type = "group_suggestion"
)

// Request is a notification payload. Type decides which fields are
// meaningful: Message for contact, GroupName/GroupLink/Note for
// group_suggestion.
type Request struct {
	Type      Type   `json:"type"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Message   string `json:"message,omitempty"`
	GroupName string `json:"group_name,omitempty"`
	GroupLink string `json:"group_link,omitempty"`
	Note      string `json:"note,omitempty"`
}

// ContactRequest builds a contact notification.
func ContactRequest(c validation.Contact) Request {
	return Request{
		Type:    TypeContact,
		Name:    c.Name,
		Email:   c.Email,
		Message: c.Message,
	}
}

// GroupSuggestionRequest builds a group suggestion notification.
func GroupSuggestionRequest(g validation.GroupSuggestion) Request {
	return Request{
		Type:      TypeGroupSuggestion,
		Name:      g.Name,
		Email:     g.Email,
		GroupName: g.GroupName,
		GroupLink: g.GroupLink,
		Note:      g.Note,
	}
}

func (r Request) contact() validation.Contact {
	return validation.Contact{Name: r.Name, Email: r.Email, Message: r.Message}
}

func (r Request) groupSuggestion() validation.GroupSuggestion {
	return validation.GroupSuggestion{
		Name:      r.Name,
		Email:     r.Email,
		GroupName: r.GroupName,
		GroupLink: r.GroupLink,
		Note:      r.Note,
	}
}

// Message is a rendered email.
type Message struct {
	Subject string
	HTML    string
}
