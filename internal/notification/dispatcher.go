// Package notification renders form submissions as HTML email and sends
// them through the configured mail provider.
package notification

import (
	"context"
	"fmt"
	"log/slog"

	"sunsetguide/pkg/requestcontext"
)

// Dispatcher formats and sends notifications.
type Dispatcher struct {
	sender  Sender
	logger  *slog.Logger
	metrics *Metrics
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Dispatcher) {
		d.logger = logger
	}
}

// WithMetrics sets the metrics sink.
func WithMetrics(m *Metrics) Option {
	return func(d *Dispatcher) {
		d.metrics = m
	}
}

// NewDispatcher creates a Dispatcher that sends through sender.
func NewDispatcher(sender Sender, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		sender: sender,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dispatch formats req and makes one send attempt.
func (d *Dispatcher) Dispatch(ctx context.Context, req Request) error {
	msg, err := Format(req)
	if err != nil {
		return fmt.Errorf("format notification: %w", err)
	}

	err = d.sender.Send(ctx, msg)
	d.metrics.observe(req.Type, err)
	if err != nil {
		return fmt.Errorf("send %s notification: %w", req.Type, err)
	}

	d.logger.InfoContext(ctx, "notification sent",
		"request_id", requestcontext.RequestID(ctx),
		"type", string(req.Type),
	)
	return nil
}
