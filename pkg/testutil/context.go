package testutil

import (
	"net/http"
	"time"

	"sunsetguide/pkg/platform/middleware/metadata"
	"sunsetguide/pkg/requestcontext"
)

// WithRequestTime pins the request-scoped clock, as the requesttime
// middleware would.
func WithRequestTime(req *http.Request, now time.Time) *http.Request {
	return req.WithContext(requestcontext.WithTime(req.Context(), now))
}

// WithFormInstance sets the form instance header the metadata middleware
// reads. An empty id leaves the request anonymous.
func WithFormInstance(req *http.Request, id string) *http.Request {
	if id != "" {
		req.Header.Set(metadata.FormInstanceHeader, id)
	}
	return req
}
