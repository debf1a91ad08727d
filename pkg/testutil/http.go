// Package testutil provides request builders and response assertions shared
// by handler and router tests.
package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// NewJSONRequest creates a request whose body is body encoded as JSON.
func NewJSONRequest(t *testing.T, method, path string, body any) *http.Request {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err, "failed to marshal request body")
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	return req
}

// NewRequest creates a request without a body.
func NewRequest(t *testing.T, method, path string) *http.Request {
	t.Helper()
	return httptest.NewRequest(method, path, nil)
}

// DoRequest serves req and returns the recorder.
func DoRequest(handler http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

// UnmarshalResponse decodes the body into a new T.
func UnmarshalResponse[T any](t *testing.T, rr *httptest.ResponseRecorder) *T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out), "failed to decode body: %s", rr.Body.String())
	return &out
}

// UnmarshalErrorResponse decodes a flat {"error": "..."} style body.
func UnmarshalErrorResponse(t *testing.T, rr *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	return *UnmarshalResponse[map[string]string](t, rr)
}

// AssertStatus checks the response status and prints the body on mismatch.
func AssertStatus(t *testing.T, rr *httptest.ResponseRecorder, expected int) {
	t.Helper()
	assert.Equal(t, expected, rr.Code, "unexpected status, body: %s", rr.Body.String())
}

// AssertStatusOK checks for 200.
func AssertStatusOK(t *testing.T, rr *httptest.ResponseRecorder) {
	t.Helper()
	AssertStatus(t, rr, http.StatusOK)
}

// AssertFieldError checks a 400 validation response for one field message.
func AssertFieldError(t *testing.T, rr *httptest.ResponseRecorder, field, message string) {
	t.Helper()
	AssertStatus(t, rr, http.StatusBadRequest)
	body := UnmarshalResponse[struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}](t, rr)
	assert.Equal(t, "validation_failed", body.Error)
	assert.Equal(t, message, body.Fields[field], "fields: %v", body.Fields)
}

// TestOrigin is the browser origin test requests claim to come from.
const TestOrigin = "https://outersunset.us"

// WithOrigin marks req as a cross-origin browser request.
func WithOrigin(req *http.Request) *http.Request {
	req.Header.Set("Origin", TestOrigin)
	return req
}

// NewPreflightRequest builds a CORS preflight for method on path asking for
// the given request headers.
func NewPreflightRequest(t *testing.T, path, method string, headers ...string) *http.Request {
	t.Helper()
	req := WithOrigin(httptest.NewRequest(http.MethodOptions, path, nil))
	req.Header.Set("Access-Control-Request-Method", method)
	if len(headers) > 0 {
		req.Header.Set("Access-Control-Request-Headers", strings.Join(headers, ", "))
	}
	return req
}
