package notification

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sunsetguide/internal/platform/logger"
)

type recordingSender struct {
	sent []Message
	err  error
}

func (s *recordingSender) Send(_ context.Context, msg Message) error {
	s.sent = append(s.sent, msg)
	return s.err
}

func TestDispatch(t *testing.T) {
	req := Request{Type: TypeContact, Name: "Ana", Email: "ana@example.com", Message: "hi"}

	t.Run("formats then sends once", func(t *testing.T) {
		sender := &recordingSender{}
		m := NewMetrics(prometheus.NewRegistry())
		d := NewDispatcher(sender, WithLogger(logger.Discard()), WithMetrics(m))

		require.NoError(t, d.Dispatch(context.Background(), req))
		require.Len(t, sender.sent, 1)
		assert.Equal(t, "New contact message from Ana", sender.sent[0].Subject)
		assert.Equal(t, 1.0, testutil.ToFloat64(m.Dispatched.WithLabelValues("contact", "sent")))
	})

	t.Run("send failure is wrapped and counted", func(t *testing.T) {
		boom := errors.New("provider down")
		sender := &recordingSender{err: boom}
		m := NewMetrics(prometheus.NewRegistry())
		d := NewDispatcher(sender, WithLogger(logger.Discard()), WithMetrics(m))

		err := d.Dispatch(context.Background(), req)
		require.ErrorIs(t, err, boom)
		assert.Len(t, sender.sent, 1)
		assert.Equal(t, 1.0, testutil.ToFloat64(m.Dispatched.WithLabelValues("contact", "failed")))
	})

	t.Run("unknown type never reaches the sender", func(t *testing.T) {
		sender := &recordingSender{}
		d := NewDispatcher(sender, WithLogger(logger.Discard()))
		err := d.Dispatch(context.Background(), Request{Type: "other"})
		require.Error(t, err)
		assert.Empty(t, sender.sent)
	})
}

func TestLogSender(t *testing.T) {
	s := NewLogSender(logger.Discard())
	assert.NoError(t, s.Send(context.Background(), Message{Subject: "s", HTML: "h"}))
}
