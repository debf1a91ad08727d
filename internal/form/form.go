// Package form is the client half of the public forms: it holds the current
// challenge, validates with the client profile, allows one submission at a
// time, and resets after success.
package form

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"

	"sunsetguide/internal/captcha"
	"sunsetguide/internal/submission/models"
	"sunsetguide/internal/validation"
	"sunsetguide/pkg/requestcontext"
)

// ErrSubmitInProgress is returned when Submit is called while a previous
// attempt from the same form has not finished.
var ErrSubmitInProgress = errors.New("submission already in progress")

// ContactPayload is what the contact form sends to the server.
type ContactPayload struct {
	validation.Contact
	ChallengeQuestion string `json:"captcha_question"`
	ChallengeAnswer   string `json:"captcha"`
}

// Receipt acknowledges a stored submission.
type Receipt struct {
	ID string `json:"id"`
}

// RejectedError carries field errors returned by the server.
type RejectedError struct {
	Fields validation.FieldErrors
}

func (e *RejectedError) Error() string {
	return "rejected by server: " + e.Fields.Error()
}

// Submitter delivers a client-validated form to the server pipeline. The
// form instance id travels in the context (requestcontext.FormInstance).
type Submitter interface {
	SubmitContact(ctx context.Context, p ContactPayload) (Receipt, error)
	SubmitGroupSuggestion(ctx context.Context, g validation.GroupSuggestion) (Receipt, error)
}

// Notice is the toast shown after an attempt.
type Notice struct {
	Title       string
	Description string
}

var (
	NoticeContactSent = Notice{Title: "Message sent!", Description: "Thanks for reaching out. We'll get back to you soon."}
	NoticeSuggested   = Notice{Title: "Thank you!", Description: "We'll review your suggestion and may add it to the list."}
	NoticeFailed      = Notice{Title: "Something went wrong", Description: "Please try again later."}
)

// Outcome is the result of one Submit call.
type Outcome struct {
	State       models.State
	ID          string
	FieldErrors validation.FieldErrors
	Notice      *Notice
}

// instance is the state shared by both forms.
type instance struct {
	id        string
	submitter Submitter

	mu       sync.Mutex
	inFlight bool
}

// ID identifies this form instance to the server.
func (i *instance) ID() string {
	return i.id
}

// InFlight reports whether an attempt is running.
func (i *instance) InFlight() bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.inFlight
}

func (i *instance) context(ctx context.Context) context.Context {
	return requestcontext.WithFormInstance(ctx, i.id)
}

// settle converts a submitter result into an Outcome.
func settle(receipt Receipt, err error, success Notice) (Outcome, error) {
	if err == nil {
		return Outcome{State: models.StateDone, ID: receipt.ID, Notice: &success}, nil
	}
	var rejected *RejectedError
	if errors.As(err, &rejected) {
		return Outcome{State: models.StateRejected, FieldErrors: rejected.Fields}, nil
	}
	if errors.Is(err, ErrSubmitInProgress) {
		return Outcome{}, ErrSubmitInProgress
	}
	failed := NoticeFailed
	return Outcome{State: models.StatePersistFailed, Notice: &failed}, err
}

// Option configures a ContactForm.
type Option func(*ContactForm)

// WithGenerator replaces the challenge generator.
func WithGenerator(g *captcha.Generator) Option {
	return func(f *ContactForm) {
		f.gen = g
	}
}

// ContactValues are the user's contact form entries.
type ContactValues struct {
	validation.Contact
	Captcha string
}

// ContactForm is one contact form on screen.
type ContactForm struct {
	instance
	gen       *captcha.Generator
	challenge captcha.Challenge
	values    ContactValues
}

// NewContactForm creates a contact form with a fresh challenge.
func NewContactForm(s Submitter, opts ...Option) *ContactForm {
	f := &ContactForm{
		instance: instance{id: uuid.NewString(), submitter: s},
		gen:      captcha.NewGenerator(nil),
	}
	for _, opt := range opts {
		opt(f)
	}
	f.challenge = f.gen.Generate()
	return f
}

// Question returns the current challenge question.
func (f *ContactForm) Question() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.challenge.Question
}

// RefreshChallenge replaces the challenge and clears the typed answer.
func (f *ContactForm) RefreshChallenge() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.refreshLocked()
}

func (f *ContactForm) refreshLocked() {
	f.challenge = f.gen.Generate()
	f.values.Captcha = ""
}

// Values returns the entries as they should be displayed now.
func (f *ContactForm) Values() ContactValues {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values
}

// Submit checks the challenge, validates in with the client profile, and
// sends the form. Invalid input never reaches the submitter.
func (f *ContactForm) Submit(ctx context.Context, in ContactValues) (Outcome, error) {
	f.mu.Lock()
	if f.inFlight {
		f.mu.Unlock()
		return Outcome{}, ErrSubmitInProgress
	}
	f.values = in

	if strings.TrimSpace(in.Captcha) == "" {
		f.mu.Unlock()
		return Outcome{
			State:       models.StateRejected,
			FieldErrors: validation.FieldErrors{validation.FieldCaptcha: captcha.MsgMissing},
		}, nil
	}
	if !captcha.Validate(f.challenge, in.Captcha) {
		f.refreshLocked()
		f.mu.Unlock()
		return Outcome{
			State:       models.StateRejected,
			FieldErrors: validation.FieldErrors{validation.FieldCaptcha: captcha.MsgWrong},
		}, nil
	}
	valid, errs := validation.Client.ValidateContact(in.Contact)
	if errs != nil {
		f.mu.Unlock()
		return Outcome{State: models.StateRejected, FieldErrors: errs}, nil
	}

	payload := ContactPayload{
		Contact:           valid,
		ChallengeQuestion: f.challenge.Question,
		ChallengeAnswer:   strings.TrimSpace(in.Captcha),
	}
	f.inFlight = true
	f.mu.Unlock()

	receipt, err := f.submitter.SubmitContact(f.context(ctx), payload)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.inFlight = false
	out, err := settle(receipt, err, NoticeContactSent)
	switch {
	case out.State == models.StateDone:
		f.values = ContactValues{}
		f.refreshLocked()
	case out.FieldErrors[validation.FieldCaptcha] != "":
		f.refreshLocked()
	}
	return out, err
}

// SuggestionForm is one "suggest a group" form on screen.
type SuggestionForm struct {
	instance
	values validation.GroupSuggestion
}

// NewSuggestionForm creates an empty suggestion form.
func NewSuggestionForm(s Submitter) *SuggestionForm {
	return &SuggestionForm{instance: instance{id: uuid.NewString(), submitter: s}}
}

// Values returns the entries as they should be displayed now.
func (f *SuggestionForm) Values() validation.GroupSuggestion {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values
}

// Submit validates in with the client profile and sends it.
func (f *SuggestionForm) Submit(ctx context.Context, in validation.GroupSuggestion) (Outcome, error) {
	f.mu.Lock()
	if f.inFlight {
		f.mu.Unlock()
		return Outcome{}, ErrSubmitInProgress
	}
	f.values = in

	valid, errs := validation.Client.ValidateGroupSuggestion(in)
	if errs != nil {
		f.mu.Unlock()
		return Outcome{State: models.StateRejected, FieldErrors: errs}, nil
	}
	f.inFlight = true
	f.mu.Unlock()

	receipt, err := f.submitter.SubmitGroupSuggestion(f.context(ctx), valid)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.inFlight = false
	out, err := settle(receipt, err, NoticeSuggested)
	if out.State == models.StateDone {
		f.values = validation.GroupSuggestion{}
	}
	return out, err
}
