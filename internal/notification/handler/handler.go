package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"sunsetguide/internal/notification"
	"sunsetguide/internal/platform/metrics"
	"sunsetguide/internal/platform/middleware"
	"sunsetguide/pkg/platform/httputil"
	dErrors "sunsetguide/pkg/domain-errors"
	"sunsetguide/pkg/requestcontext"
)

const maxBodyBytes = 64 << 10

// Dispatcher sends a validated notification.
type Dispatcher interface {
	Dispatch(ctx context.Context, req notification.Request) error
}

// Handler serves POST /send-notification.
type Handler struct {
	dispatcher Dispatcher
	logger     *slog.Logger
	metrics    *metrics.Metrics
}

// New creates a notification Handler.
func New(dispatcher Dispatcher, logger *slog.Logger, m *metrics.Metrics) *Handler {
	return &Handler{
		dispatcher: dispatcher,
		logger:     logger,
		metrics:    m,
	}
}

// Register registers the notification route.
func (h *Handler) Register(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.CORS)
		r.Use(middleware.LatencyMiddleware(h.metrics))
		r.Post("/send-notification", h.handleSendNotification)
		r.Options("/send-notification", middleware.Preflight)
	})
}

// hasCredential reports whether the caller sent an Authorization or apikey
// header. The value itself is not verified.
func hasCredential(r *http.Request) bool {
	return strings.TrimSpace(r.Header.Get("Authorization")) != "" ||
		strings.TrimSpace(r.Header.Get("apikey")) != ""
}

func (h *Handler) handleSendNotification(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	if !hasCredential(r) {
		h.logger.WarnContext(ctx, "unauthorized notification request",
			"request_id", requestID,
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "Unauthorized"))
		return
	}

	var req notification.Request
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "invalid notification body",
			"request_id", requestID,
			"error", err.Error(),
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "Invalid request body"))
		return
	}

	valid, err := notification.Validate(req)
	if err != nil {
		h.logger.WarnContext(ctx, "notification validation failed",
			"request_id", requestID,
			"type", string(req.Type),
			"error", dErrors.MessageOf(err),
		)
		httputil.WriteError(w, err)
		return
	}

	if err := h.dispatcher.Dispatch(ctx, valid); err != nil {
		h.logger.ErrorContext(ctx, "failed to send notification",
			"request_id", requestID,
			"type", string(valid.Type),
			"error", err.Error(),
		)
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "Failed to send notification"))
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}
