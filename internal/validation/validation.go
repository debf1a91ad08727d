// Package validation checks public form input against named limit profiles.
//
// Two profiles exist. Client mirrors what the browser form enforces and is
// only a hint to the user; Server is the enforced ceiling applied before any
// side effect. Their limits differ on purpose and are kept side by side below.
package validation

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/asaskevich/govalidator"
)

// Field names shared by both forms and the notification payload.
const (
	FieldName      = "name"
	FieldEmail     = "email"
	FieldMessage   = "message"
	FieldGroupName = "group_name"
	FieldGroupLink = "group_link"
	FieldNote      = "note"
	FieldCaptcha   = "captcha"
)

// Limits in characters (Unicode code points, after trimming).
const (
	NameMaxLen      = 100
	EmailMaxLen     = 255
	GroupNameMaxLen = 200
	GroupLinkMaxLen = 500

	ClientMessageMaxLen = 2000
	ServerMessageMaxLen = 5000

	ClientNoteMaxLen = 1000
	ServerNoteMaxLen = 2000
)

// emailPattern is local@domain.tld with no whitespace or extra @.
const emailPattern = `^[^\s@]+@[^\s@]+\.[^\s@]+$`

// Format is a syntactic constraint on a field value.
type Format int

const (
	FormatText Format = iota
	FormatEmail
	FormatURL
)

// Rule constrains one named field.
type Rule struct {
	Field    string
	Required bool
	MaxLen   int
	Format   Format

	// FormatBeforeLength reports the format message ahead of the length
	// message when both fail.
	FormatBeforeLength bool

	RequiredMessage string
	TooLongMessage  string
	FormatMessage   string
}

// Schema is an ordered list of rules. Order decides which error is first.
type Schema []Rule

// FieldErrors maps a field name to a human-readable message.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, fe[f]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Validate trims every value named by the schema and checks it. It returns
// the trimmed values, or the errors when any rule fails. Fields not named by
// the schema are dropped.
func (s Schema) Validate(values map[string]string) (map[string]string, FieldErrors) {
	out := make(map[string]string, len(s))
	var errs FieldErrors
	for _, rule := range s {
		v := strings.TrimSpace(values[rule.Field])
		out[rule.Field] = v
		if msg, ok := rule.check(v); !ok {
			if errs == nil {
				errs = FieldErrors{}
			}
			errs[rule.Field] = msg
		}
	}
	if errs != nil {
		return nil, errs
	}
	return out, nil
}

// First returns the error of the earliest failing field in schema order.
func (s Schema) First(errs FieldErrors) (field, message string, ok bool) {
	for _, rule := range s {
		if msg, found := errs[rule.Field]; found {
			return rule.Field, msg, true
		}
	}
	return "", "", false
}

func (r Rule) check(v string) (string, bool) {
	if v == "" {
		if r.Required {
			return r.RequiredMessage, false
		}
		return "", true
	}

	tooLong := r.MaxLen > 0 && !govalidator.RuneLength(v, "0", strconv.Itoa(r.MaxLen))
	badFormat := !r.Format.matches(v)

	if r.FormatBeforeLength && badFormat {
		return r.FormatMessage, false
	}
	if tooLong {
		return r.TooLongMessage, false
	}
	if badFormat {
		return r.FormatMessage, false
	}
	return "", true
}

func (f Format) matches(v string) bool {
	switch f {
	case FormatEmail:
		return IsEmail(v)
	case FormatURL:
		return IsHTTPURL(v)
	default:
		return true
	}
}

// IsEmail reports whether v looks like local@domain.tld with no whitespace.
func IsEmail(v string) bool {
	return govalidator.Matches(v, emailPattern)
}

// IsHTTPURL reports whether v is an absolute http or https URL.
func IsHTTPURL(v string) bool {
	if !govalidator.IsRequestURL(v) {
		return false
	}
	u, err := url.Parse(v)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
