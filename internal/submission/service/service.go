package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"sunsetguide/internal/captcha"
	"sunsetguide/internal/notification"
	"sunsetguide/internal/submission/metrics"
	"sunsetguide/internal/submission/models"
	"sunsetguide/internal/validation"
	dErrors "sunsetguide/pkg/domain-errors"
	"sunsetguide/pkg/platform/privacy"
	"sunsetguide/pkg/platform/sentinel"
	"sunsetguide/pkg/requestcontext"
)

// Store appends validated submissions.
type Store interface {
	SaveContact(ctx context.Context, c *models.ContactSubmission) error
	SaveGroupSuggestion(ctx context.Context, g *models.GroupSuggestion) error
}

// Notifier makes one attempt to announce a stored submission.
type Notifier interface {
	Dispatch(ctx context.Context, req notification.Request) error
}

// Lock serializes attempts from the same form instance.
type Lock interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) error
	Release(ctx context.Context, key string) error
}

// ContactAttempt is a contact form submission with its challenge answer.
type ContactAttempt struct {
	validation.Contact
	ChallengeQuestion string
	ChallengeAnswer   string
}

// Service runs the validate -> persist -> notify pipeline for both forms.
type Service struct {
	store     Store
	notifier  Notifier
	lock      Lock
	lockTTL   time.Duration
	logger    *slog.Logger
	metrics   *metrics.Metrics
	tracer    trace.Tracer
	digestKey []byte
}

// Option configures a Service.
type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithLock enables the per form instance in-flight lock.
func WithLock(lock Lock, ttl time.Duration) Option {
	return func(s *Service) {
		s.lock = lock
		s.lockTTL = ttl
	}
}

func WithTracer(t trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = t
	}
}

// WithDigestKey keys the email digests written to logs.
func WithDigestKey(key []byte) Option {
	return func(s *Service) {
		s.digestKey = key
	}
}

func New(store Store, notifier Notifier, opts ...Option) *Service {
	s := &Service{
		store:    store,
		notifier: notifier,
		logger:   slog.Default(),
		tracer:   otel.Tracer("sunsetguide/submission"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// pipeline is one form's stages. validate returns nil when the input is
// acceptable and must have no side effects.
type pipeline struct {
	form     models.Form
	email    string
	validate func() validation.FieldErrors
	persist  func(ctx context.Context, now time.Time) (uuid.UUID, error)
	notify   func(ctx context.Context) error
}

// SubmitContact checks the challenge, validates with the server profile,
// persists, then notifies.
func (s *Service) SubmitContact(ctx context.Context, in ContactAttempt) (models.Result, error) {
	var valid validation.Contact
	return s.run(ctx, pipeline{
		form:  models.FormContact,
		email: in.Email,
		validate: func() validation.FieldErrors {
			if msg, ok := checkChallenge(in.ChallengeQuestion, in.ChallengeAnswer); !ok {
				return validation.FieldErrors{validation.FieldCaptcha: msg}
			}
			var errs validation.FieldErrors
			valid, errs = validation.Server.ValidateContact(in.Contact)
			return errs
		},
		persist: func(ctx context.Context, now time.Time) (uuid.UUID, error) {
			rec := models.NewContactSubmission(valid, now)
			return rec.ID, s.store.SaveContact(ctx, rec)
		},
		notify: func(ctx context.Context) error {
			return s.notifier.Dispatch(ctx, notification.ContactRequest(valid))
		},
	})
}

// SubmitGroupSuggestion validates with the server profile, persists, then
// notifies.
func (s *Service) SubmitGroupSuggestion(ctx context.Context, in validation.GroupSuggestion) (models.Result, error) {
	var valid validation.GroupSuggestion
	return s.run(ctx, pipeline{
		form:  models.FormGroupSuggestion,
		email: in.Email,
		validate: func() validation.FieldErrors {
			var errs validation.FieldErrors
			valid, errs = validation.Server.ValidateGroupSuggestion(in)
			return errs
		},
		persist: func(ctx context.Context, now time.Time) (uuid.UUID, error) {
			rec := models.NewGroupSuggestion(valid, now)
			return rec.ID, s.store.SaveGroupSuggestion(ctx, rec)
		},
		notify: func(ctx context.Context) error {
			return s.notifier.Dispatch(ctx, notification.GroupSuggestionRequest(valid))
		},
	})
}

func checkChallenge(question, answer string) (string, bool) {
	if strings.TrimSpace(answer) == "" || question == "" {
		return captcha.MsgMissing, false
	}
	ch, err := captcha.Parse(question)
	if err != nil || !captcha.Validate(ch, answer) {
		return captcha.MsgWrong, false
	}
	return "", true
}

func (s *Service) run(ctx context.Context, p pipeline) (result models.Result, err error) {
	start := time.Now()
	form := string(p.form)
	ctx, span := s.tracer.Start(ctx, "submission."+form, trace.WithAttributes(
		attribute.String("form", form),
	))
	defer func() {
		span.SetAttributes(attribute.String("state", string(result.State)))
		span.End()
		s.metrics.IncrementOutcome(form, string(result.State))
		s.metrics.ObservePipelineLatency(form, start)
	}()

	logAttrs := []any{
		"request_id", requestcontext.RequestID(ctx),
		"form", form,
		"email_digest", privacy.DigestEmail(p.email, s.digestKey),
		"user_agent", requestcontext.UserAgent(ctx),
		"client_ip", privacy.AnonymizeIP(requestcontext.ClientIP(ctx)),
	}

	if key := requestcontext.FormInstance(ctx); key != "" && s.lock != nil {
		if err := s.lock.Acquire(ctx, key, s.lockTTL); err != nil {
			if errors.Is(err, sentinel.ErrConflict) {
				s.logger.WarnContext(ctx, "submission already in flight", logAttrs...)
				return models.Result{State: models.StateIdle}, dErrors.Wrap(err, dErrors.CodeConflict, "submission already in progress")
			}
			// Lock backend outages do not block submissions.
			s.logger.ErrorContext(ctx, "in-flight lock unavailable", append(logAttrs, "error", err.Error())...)
		} else {
			defer func() {
				if err := s.lock.Release(context.WithoutCancel(ctx), key); err != nil {
					s.logger.WarnContext(ctx, "failed to release in-flight lock", append(logAttrs, "error", err.Error())...)
				}
			}()
		}
	}

	if errs := p.validate(); errs != nil {
		s.logger.InfoContext(ctx, "submission rejected", append(logAttrs, "fields", len(errs))...)
		return models.Result{State: models.StateRejected, FieldErrors: errs},
			dErrors.Wrap(errs, dErrors.CodeValidation, "validation_failed")
	}

	persistCtx, persistSpan := s.tracer.Start(ctx, "submission.persist")
	id, err := p.persist(persistCtx, requestcontext.Now(ctx))
	if err != nil {
		persistSpan.RecordError(err)
		persistSpan.SetStatus(codes.Error, "persist failed")
		persistSpan.End()
		span.SetStatus(codes.Error, "persist failed")
		s.logger.ErrorContext(ctx, "failed to persist submission", append(logAttrs, "error", err.Error())...)
		return models.Result{State: models.StatePersistFailed},
			dErrors.Wrap(err, dErrors.CodeInternal, "Something went wrong. Please try again later.")
	}
	persistSpan.End()
	logAttrs = append(logAttrs, "submission_id", id.String())

	notifyCtx, notifySpan := s.tracer.Start(ctx, "submission.notify")
	defer notifySpan.End()
	if err := p.notify(notifyCtx); err != nil {
		notifySpan.RecordError(err)
		notifySpan.SetStatus(codes.Error, "notify failed")
		s.metrics.IncrementNotifyFailure(form)
		s.logger.ErrorContext(ctx, "submission stored but notification failed", append(logAttrs, "error", err.Error())...)
		return models.Result{State: models.StateNotifyFailed, ID: id}, nil
	}

	s.logger.InfoContext(ctx, "submission accepted", logAttrs...)
	return models.Result{State: models.StateDone, ID: id}, nil
}
