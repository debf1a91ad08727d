package logger

import (
	"io"
	"log/slog"
	"os"
)

// New returns a structured logger: JSON in production, text otherwise.
func New(level slog.Level, production bool) *slog.Logger {
	return NewWithWriter(os.Stdout, level, production)
}

// NewWithWriter is New with an explicit sink, used by tests and the CLI.
func NewWithWriter(w io.Writer, level slog.Level, production bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if production {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
