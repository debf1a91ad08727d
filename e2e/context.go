package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// TestContext holds the HTTP client and the last response of one scenario.
type TestContext struct {
	BaseURL    string
	HTTPClient *http.Client

	headers      map[string]string
	lastStatus   int
	lastHeaders  http.Header
	lastBody     []byte
	lastDecoded  any
	formInstance string
}

// browserOrigin is sent on every request, as the site's own pages would.
const browserOrigin = "https://outersunset.us"

// NewTestContext targets a running guide server.
func NewTestContext(baseURL string) *TestContext {
	return &TestContext{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
		headers:    map[string]string{},
	}
}

// Reset clears per-scenario state.
func (tc *TestContext) Reset() {
	tc.headers = map[string]string{}
	tc.lastStatus = 0
	tc.lastHeaders = nil
	tc.lastBody = nil
	tc.lastDecoded = nil
	tc.formInstance = ""
}

// SetHeader adds a header to every following request in the scenario.
func (tc *TestContext) SetHeader(name, value string) {
	tc.headers[name] = value
}

// SetFormInstance marks following submissions as coming from one form.
func (tc *TestContext) SetFormInstance(id string) {
	tc.formInstance = id
}

// GET issues a GET request.
func (tc *TestContext) GET(path string, headers map[string]string) error {
	return tc.do(http.MethodGet, path, nil, headers)
}

// POST issues a JSON POST request. A string body is sent verbatim.
func (tc *TestContext) POST(path string, body interface{}) error {
	var payload []byte
	switch b := body.(type) {
	case string:
		payload = []byte(b)
	default:
		encoded, err := json.Marshal(b)
		if err != nil {
			return fmt.Errorf("encode body: %w", err)
		}
		payload = encoded
	}
	return tc.do(http.MethodPost, path, payload, map[string]string{"Content-Type": "application/json"})
}

// OPTIONS issues a CORS preflight.
func (tc *TestContext) OPTIONS(path string) error {
	return tc.do(http.MethodOptions, path, nil, map[string]string{
		"Access-Control-Request-Method": http.MethodPost,
	})
}

func (tc *TestContext) do(method, path string, body []byte, headers map[string]string) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequest(method, tc.BaseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Origin", browserOrigin)
	for k, v := range tc.headers {
		req.Header.Set(k, v)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	if tc.formInstance != "" {
		req.Header.Set("X-Form-Instance", tc.formInstance)
	}

	resp, err := tc.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	tc.lastStatus = resp.StatusCode
	tc.lastHeaders = resp.Header
	tc.lastBody, err = io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}
	tc.lastDecoded = nil
	if strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") && len(tc.lastBody) > 0 {
		if err := json.Unmarshal(tc.lastBody, &tc.lastDecoded); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// GetStatusCode returns the last response status.
func (tc *TestContext) GetStatusCode() int {
	return tc.lastStatus
}

// GetHeader returns a header of the last response.
func (tc *TestContext) GetHeader(name string) string {
	return tc.lastHeaders.Get(name)
}

// GetBody returns the raw last response body.
func (tc *TestContext) GetBody() string {
	return string(tc.lastBody)
}

// GetDecoded returns the last JSON body as decoded by encoding/json.
func (tc *TestContext) GetDecoded() any {
	return tc.lastDecoded
}

// GetResponseField reads a top-level field of a JSON object response.
func (tc *TestContext) GetResponseField(field string) (interface{}, error) {
	obj, ok := tc.lastDecoded.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("response is not a JSON object: %s", tc.lastBody)
	}
	v, ok := obj[field]
	if !ok {
		return nil, fmt.Errorf("field %q missing in %s", field, tc.lastBody)
	}
	return v, nil
}

// ResponseContains reports whether the JSON object response has field.
func (tc *TestContext) ResponseContains(field string) bool {
	_, err := tc.GetResponseField(field)
	return err == nil
}
