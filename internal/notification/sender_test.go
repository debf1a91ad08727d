package notification

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedEmail struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

func newResendServer(t *testing.T, status int, captured *capturedEmail, auth *string) *url.URL {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/emails", r.URL.Path)
		*auth = r.Header.Get("Authorization")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(captured))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status == http.StatusOK {
			_, _ = w.Write([]byte(`{"id":"email_123"}`))
			return
		}
		_, _ = w.Write([]byte(`{"statusCode":500,"name":"application_error","message":"boom"}`))
	}))
	t.Cleanup(srv.Close)

	u, err := url.Parse(srv.URL + "/")
	require.NoError(t, err)
	return u
}

func TestResendSender(t *testing.T) {
	msg := Message{Subject: "New contact message from Ana", HTML: "<p>hi</p>"}

	t.Run("sends once with configured addresses", func(t *testing.T) {
		var got capturedEmail
		var auth string
		base := newResendServer(t, http.StatusOK, &got, &auth)

		s := NewResendSender("re_test", "Guide <hello@example.org>", []string{"ops@example.org"},
			WithHTTPClient(http.DefaultClient), WithBaseURL(base))
		require.NoError(t, s.Send(context.Background(), msg))

		assert.Equal(t, "Bearer re_test", auth)
		assert.Equal(t, capturedEmail{
			From:    "Guide <hello@example.org>",
			To:      []string{"ops@example.org"},
			Subject: msg.Subject,
			HTML:    msg.HTML,
		}, got)
	})

	t.Run("provider failure is returned", func(t *testing.T) {
		var got capturedEmail
		var auth string
		base := newResendServer(t, http.StatusInternalServerError, &got, &auth)

		s := NewResendSender("re_test", "hello@example.org", []string{"ops@example.org"}, WithBaseURL(base))
		err := s.Send(context.Background(), msg)
		assert.ErrorContains(t, err, "resend send")
	})
}
