package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// AllowedHeaders matches what the site's browser client sends.
var AllowedHeaders = []string{"Authorization", "X-Client-Info", "Apikey", "Content-Type", "X-Form-Instance"}

// CORS allows any origin to call the public endpoints. Preflight requests are
// answered with 200 and the CORS headers only.
var CORS = cors.Handler(cors.Options{
	AllowedOrigins: []string{"*"},
	AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
	AllowedHeaders: AllowedHeaders,
	MaxAge:         86400,
})

// CacheFor sets a public Cache-Control directive on successful responses
// and on 404s from static lookups alike.
func CacheFor(maxAgeSeconds string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Cache-Control", "public, max-age="+maxAgeSeconds)
			next.ServeHTTP(w, r)
		})
	}
}

// Preflight is the route target for OPTIONS inside a CORS group. CORS answers
// real preflights before it runs; a bare OPTIONS gets an empty 200.
func Preflight(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}
