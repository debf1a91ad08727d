package notification

import (
	"fmt"
	"strings"
)

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// Escape replaces the five HTML-significant characters with entities.
func Escape(s string) string {
	return htmlEscaper.Replace(s)
}

// escapeMultiline escapes s and then turns newlines into <br>.
func escapeMultiline(s string) string {
	return strings.ReplaceAll(Escape(s), "\n", "<br>")
}

// Format renders req as an email. Every user-supplied string is trimmed and
// escaped before interpolation.
func Format(req Request) (Message, error) {
	name := Escape(strings.TrimSpace(req.Name))
	email := Escape(strings.TrimSpace(req.Email))

	switch req.Type {
	case TypeContact:
		var b strings.Builder
		b.WriteString("<h2>New Contact Form Submission</h2>\n")
		fmt.Fprintf(&b, "<p><strong>From:</strong> %s (%s)</p>\n", name, email)
		b.WriteString("<h3>Message:</h3>\n")
		fmt.Fprintf(&b, "<p>%s</p>\n", escapeMultiline(strings.TrimSpace(req.Message)))
		return Message{
			Subject: "New contact message from " + name,
			HTML:    b.String(),
		}, nil

	case TypeGroupSuggestion:
		groupName := Escape(strings.TrimSpace(req.GroupName))
		link := Escape(strings.TrimSpace(req.GroupLink))
		note := strings.TrimSpace(req.Note)

		var b strings.Builder
		b.WriteString("<h2>New Group Suggestion</h2>\n")
		fmt.Fprintf(&b, "<p><strong>From:</strong> %s (%s)</p>\n", name, email)
		fmt.Fprintf(&b, "<p><strong>Group Name:</strong> %s</p>\n", groupName)
		if link != "" {
			fmt.Fprintf(&b, "<p><strong>Link:</strong> <a href=\"%s\">%s</a></p>\n", link, link)
		}
		if note != "" {
			fmt.Fprintf(&b, "<h3>Note:</h3><p>%s</p>\n", escapeMultiline(note))
		}
		return Message{
			Subject: "New group suggestion: " + groupName,
			HTML:    b.String(),
		}, nil

	default:
		return Message{}, fmt.Errorf("unknown notification type %q", req.Type)
	}
}
