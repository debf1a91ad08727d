// Package handler serves the read-only directory endpoints: the neighborhood
// API and the llm.txt export.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"sunsetguide/internal/directory"
	"sunsetguide/internal/directory/export"
	"sunsetguide/internal/platform/metrics"
	"sunsetguide/internal/platform/middleware"
	"sunsetguide/pkg/platform/httputil"
	"sunsetguide/pkg/requestcontext"
)

// APIPrefix is where the neighborhood API is mounted.
const APIPrefix = "/neighborhood-api"

const cacheMaxAge = "3600"

// Handler serves directory projections.
type Handler struct {
	dir     *directory.Directory
	listing *export.Listing
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// New creates a directory Handler.
func New(dir *directory.Directory, site export.Site, logger *slog.Logger, m *metrics.Metrics) *Handler {
	return &Handler{
		dir:     dir,
		listing: export.NewListing(dir, site),
		logger:  logger,
		metrics: m,
	}
}

// Register mounts the neighborhood API and the text export on r.
func (h *Handler) Register(r chi.Router) {
	api := chi.NewRouter()
	api.Use(middleware.CORS)
	api.Use(middleware.LatencyMiddleware(h.metrics))
	api.Use(middleware.CacheFor(cacheMaxAge))
	api.Use(chimw.StripSlashes)
	api.Get("/", h.handleMeta)
	api.Get("/meta", h.handleMeta)
	api.Get("/groups", h.handleListGroups)
	api.Get("/groups/{id}", h.handleGetGroup)
	api.NotFound(h.handleNotFound)
	api.MethodNotAllowed(h.handleNotFound)
	r.Mount(APIPrefix, api)

	r.Group(func(r chi.Router) {
		r.Use(middleware.CORS)
		r.Use(middleware.LatencyMiddleware(h.metrics))
		r.Use(middleware.CacheFor(cacheMaxAge))
		r.Get("/llm.txt", h.handleLLMText)
		r.Get("/llm-txt", h.handleLLMText)
		r.Options("/llm.txt", middleware.Preflight)
		r.Options("/llm-txt", middleware.Preflight)
	})
}

func (h *Handler) handleMeta(w http.ResponseWriter, r *http.Request) {
	httputil.WriteIndentedJSON(w, http.StatusOK, h.listing.Describe(requestcontext.Now(r.Context())))
}

func (h *Handler) handleListGroups(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := export.Query{
		Text:     r.URL.Query().Get("q"),
		Category: r.URL.Query().Get("category"),
	}
	records := h.listing.Search(q, requestcontext.Now(ctx))
	h.logger.DebugContext(ctx, "neighborhood api groups",
		"request_id", requestcontext.RequestID(ctx),
		"q", q.Text,
		"category", q.Category,
		"results", len(records),
	)
	httputil.WriteIndentedJSON(w, http.StatusOK, records)
}

func (h *Handler) handleGetGroup(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	record, ok := h.listing.Find(id, requestcontext.Now(r.Context()))
	if !ok {
		httputil.WriteIndentedJSON(w, http.StatusNotFound, map[string]string{"error": "Group not found"})
		return
	}
	httputil.WriteIndentedJSON(w, http.StatusOK, record)
}

func (h *Handler) handleNotFound(w http.ResponseWriter, r *http.Request) {
	httputil.WriteIndentedJSON(w, http.StatusNotFound, map[string]any{
		"error":               "Not found",
		"available_endpoints": export.Endpoints,
	})
}

func (h *Handler) handleLLMText(w http.ResponseWriter, r *http.Request) {
	now := requestcontext.Now(r.Context())
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Last-Modified", now.UTC().Format(time.RFC1123))
	_, _ = w.Write([]byte(export.RenderLLMText(h.dir, now)))
}
