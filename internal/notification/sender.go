package notification

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/resend/resend-go/v2"
)

// Sender delivers one rendered message. Implementations make a single
// attempt.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// ResendSender sends through the Resend HTTP API.
type ResendSender struct {
	client *resend.Client
	from   string
	to     []string
}

// ResendOption configures a ResendSender.
type ResendOption func(*ResendSender)

// WithHTTPClient replaces the HTTP client used for API calls.
func WithHTTPClient(c *http.Client) ResendOption {
	return func(s *ResendSender) {
		base := s.client.BaseURL
		apiKey := s.client.ApiKey
		s.client = resend.NewCustomClient(c, apiKey)
		s.client.BaseURL = base
	}
}

// WithBaseURL points the sender at a different API root. The URL must end
// with a slash.
func WithBaseURL(u *url.URL) ResendOption {
	return func(s *ResendSender) {
		s.client.BaseURL = u
	}
}

// NewResendSender creates a sender authenticated with apiKey.
func NewResendSender(apiKey, from string, to []string, opts ...ResendOption) *ResendSender {
	s := &ResendSender{
		client: resend.NewClient(apiKey),
		from:   from,
		to:     append([]string(nil), to...),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Send implements Sender.
func (s *ResendSender) Send(ctx context.Context, msg Message) error {
	_, err := s.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    s.from,
		To:      s.to,
		Subject: msg.Subject,
		Html:    msg.HTML,
	})
	if err != nil {
		return fmt.Errorf("resend send: %w", err)
	}
	return nil
}

// LogSender writes messages to the log instead of sending them. It is used
// when no mail API key is configured.
type LogSender struct {
	logger *slog.Logger
}

// NewLogSender creates a LogSender.
func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{logger: logger}
}

// Send implements Sender.
func (s *LogSender) Send(ctx context.Context, msg Message) error {
	s.logger.InfoContext(ctx, "notification not sent, mail disabled",
		"subject", msg.Subject,
		"html_bytes", len(msg.HTML),
	)
	return nil
}
