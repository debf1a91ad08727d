package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"sunsetguide/internal/platform/metrics"
	"sunsetguide/internal/platform/middleware"
	"sunsetguide/internal/submission/models"
	"sunsetguide/internal/submission/service"
	"sunsetguide/internal/validation"
	"sunsetguide/pkg/platform/httputil"
	dErrors "sunsetguide/pkg/domain-errors"
	"sunsetguide/pkg/requestcontext"
)

const maxBodyBytes = 64 << 10

// Service defines the submission pipeline operations.
type Service interface {
	SubmitContact(ctx context.Context, in service.ContactAttempt) (models.Result, error)
	SubmitGroupSuggestion(ctx context.Context, in validation.GroupSuggestion) (models.Result, error)
}

// ContactRequest is the body of POST /api/contact.
type ContactRequest struct {
	Name              string `json:"name"`
	Email             string `json:"email"`
	Message           string `json:"message"`
	ChallengeQuestion string `json:"captcha_question"`
	ChallengeAnswer   string `json:"captcha"`
}

// SubmissionResponse is returned on success.
type SubmissionResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

// ValidationResponse is returned when the pipeline rejects the input.
type ValidationResponse struct {
	Error  string                 `json:"error"`
	Fields validation.FieldErrors `json:"fields"`
}

// Handler serves the public form endpoints.
type Handler struct {
	service Service
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// New creates a submission Handler.
func New(svc Service, logger *slog.Logger, m *metrics.Metrics) *Handler {
	return &Handler{
		service: svc,
		logger:  logger,
		metrics: m,
	}
}

// Register registers the form routes.
func (h *Handler) Register(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.CORS)
		r.Use(middleware.LatencyMiddleware(h.metrics))
		r.Post("/api/contact", h.handleContact)
		r.Post("/api/group-suggestions", h.handleGroupSuggestion)
		r.Options("/api/contact", middleware.Preflight)
		r.Options("/api/group-suggestions", middleware.Preflight)
	})
}

func (h *Handler) handleContact(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
	if !h.decode(w, r, &req) {
		return
	}
	result, err := h.service.SubmitContact(r.Context(), service.ContactAttempt{
		Contact: validation.Contact{
			Name:    req.Name,
			Email:   req.Email,
			Message: req.Message,
		},
		ChallengeQuestion: req.ChallengeQuestion,
		ChallengeAnswer:   req.ChallengeAnswer,
	})
	h.respond(w, r, result, err)
}

func (h *Handler) handleGroupSuggestion(w http.ResponseWriter, r *http.Request) {
	var req validation.GroupSuggestion
	if !h.decode(w, r, &req) {
		return
	}
	result, err := h.service.SubmitGroupSuggestion(r.Context(), req)
	h.respond(w, r, result, err)
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v); err != nil {
		h.logger.WarnContext(r.Context(), "invalid submission body",
			"request_id", requestcontext.RequestID(r.Context()),
			"error", err.Error(),
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return false
	}
	return true
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, result models.Result, err error) {
	if err != nil {
		if dErrors.Is(err, dErrors.CodeValidation) {
			httputil.WriteJSON(w, http.StatusBadRequest, ValidationResponse{
				Error:  string(dErrors.CodeValidation),
				Fields: result.FieldErrors,
			})
			return
		}
		if !dErrors.Is(err, dErrors.CodeConflict) {
			h.logger.ErrorContext(r.Context(), "submission failed",
				"request_id", requestcontext.RequestID(r.Context()),
				"state", string(result.State),
			)
		}
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, SubmissionResponse{
		Success: result.State.Succeeded(),
		ID:      result.ID.String(),
	})
}
