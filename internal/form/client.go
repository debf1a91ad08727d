package form

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"sunsetguide/internal/validation"
	"sunsetguide/pkg/platform/middleware/metadata"
	"sunsetguide/pkg/requestcontext"
)

const (
	contactPath    = "/api/contact"
	suggestionPath = "/api/group-suggestions"
)

// HTTPSubmitter posts forms to a running server.
type HTTPSubmitter struct {
	baseURL string
	client  *http.Client
}

// ClientOption configures an HTTPSubmitter.
type ClientOption func(*HTTPSubmitter)

// WithHTTPClient replaces the default client.
func WithHTTPClient(c *http.Client) ClientOption {
	return func(s *HTTPSubmitter) {
		s.client = c
	}
}

// NewHTTPSubmitter creates a submitter for the server at baseURL.
func NewHTTPSubmitter(baseURL string, opts ...ClientOption) *HTTPSubmitter {
	s := &HTTPSubmitter{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *HTTPSubmitter) SubmitContact(ctx context.Context, p ContactPayload) (Receipt, error) {
	return s.post(ctx, contactPath, p)
}

func (s *HTTPSubmitter) SubmitGroupSuggestion(ctx context.Context, g validation.GroupSuggestion) (Receipt, error) {
	return s.post(ctx, suggestionPath, g)
}

type errorBody struct {
	Error  string                 `json:"error"`
	Fields validation.FieldErrors `json:"fields"`
}

func (s *HTTPSubmitter) post(ctx context.Context, path string, body any) (Receipt, error) {
	buf, err := json.Marshal(body)
	if err != nil {
		return Receipt{}, fmt.Errorf("encode submission: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+path, bytes.NewReader(buf))
	if err != nil {
		return Receipt{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if id := requestcontext.FormInstance(ctx); id != "" {
		req.Header.Set(metadata.FormInstanceHeader, id)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return Receipt{}, fmt.Errorf("post %s: %w", path, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusCreated, http.StatusOK:
		var receipt Receipt
		if err := json.NewDecoder(resp.Body).Decode(&receipt); err != nil {
			return Receipt{}, fmt.Errorf("decode receipt: %w", err)
		}
		return receipt, nil
	case http.StatusBadRequest:
		var eb errorBody
		if err := json.NewDecoder(resp.Body).Decode(&eb); err == nil && len(eb.Fields) > 0 {
			return Receipt{}, &RejectedError{Fields: eb.Fields}
		}
		return Receipt{}, fmt.Errorf("post %s: bad request: %s", path, eb.Error)
	case http.StatusConflict:
		return Receipt{}, ErrSubmitInProgress
	default:
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return Receipt{}, fmt.Errorf("post %s: unexpected status %d: %s", path, resp.StatusCode, strings.TrimSpace(string(msg)))
	}
}
