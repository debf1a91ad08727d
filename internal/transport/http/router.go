package httptransport

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"sunsetguide/internal/platform/middleware"
	"sunsetguide/pkg/platform/httputil"
	"sunsetguide/pkg/platform/middleware/metadata"
	"sunsetguide/pkg/platform/middleware/requesttime"
)

// RequestTimeout bounds every request context.
const RequestTimeout = 30 * time.Second

// Registrar is implemented by every feature handler.
type Registrar interface {
	Register(r chi.Router)
}

// HealthCheck reports whether a backing service is reachable.
type HealthCheck func(ctx context.Context) error

// Deps are the collaborators the router composes.
type Deps struct {
	Logger   *slog.Logger
	Gatherer prometheus.Gatherer
	Health   map[string]HealthCheck
	Handlers []Registrar
}

// NewRouter wires the shared middleware chain, the ops endpoints, and every
// feature handler.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(requesttime.Middleware)
	r.Use(metadata.ClientMetadata)
	r.Use(middleware.Logger(deps.Logger))
	r.Use(middleware.Timeout(RequestTimeout))

	r.Get("/healthz", healthHandler(deps.Health))
	if deps.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{}))
	}

	for _, h := range deps.Handlers {
		h.Register(r)
	}

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteJSON(w, http.StatusNotFound, map[string]string{"error": "Not found"})
	})
	return r
}

func healthHandler(checks map[string]HealthCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := http.StatusOK
		body := map[string]string{"status": "ok"}
		for name, check := range checks {
			if err := check(r.Context()); err != nil {
				status = http.StatusServiceUnavailable
				body["status"] = "degraded"
				body[name] = "unavailable"
				continue
			}
			body[name] = "ok"
		}
		httputil.WriteJSON(w, status, body)
	}
}
