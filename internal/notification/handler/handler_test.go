package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"sunsetguide/internal/notification"
	"sunsetguide/internal/notification/handler/mocks"
	"sunsetguide/internal/platform/logger"
	"sunsetguide/pkg/testutil"
)

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Dispatcher
type NotificationHandlerSuite struct {
	suite.Suite
	dispatcher *mocks.MockDispatcher
	router     http.Handler
}

func TestNotificationHandlerSuite(t *testing.T) {
	suite.Run(t, new(NotificationHandlerSuite))
}

func (s *NotificationHandlerSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.dispatcher = mocks.NewMockDispatcher(ctrl)
	r := chi.NewRouter()
	New(s.dispatcher, logger.Discard(), nil).Register(r)
	s.router = r
}

func (s *NotificationHandlerSuite) post(body string, headers map[string]string) *httptest.ResponseRecorder {
	req := testutil.WithOrigin(httptest.NewRequest(http.MethodPost, "/send-notification", strings.NewReader(body)))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

var anonKey = map[string]string{"apikey": "anon"}

func (s *NotificationHandlerSuite) TestUnauthorized() {
	rec := s.post(`{"type":"contact","name":"Ana","email":"ana@example.com","message":"hi"}`, nil)
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.JSONEq(`{"error":"Unauthorized"}`, rec.Body.String())
	s.Equal("*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func (s *NotificationHandlerSuite) TestEitherCredentialHeaderIsAccepted() {
	for _, headers := range []map[string]string{
		{"Authorization": "Bearer anything"},
		{"apikey": "anything"},
	} {
		s.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Return(nil)
		rec := s.post(`{"type":"contact","name":"Ana","email":"ana@example.com","message":"hi"}`, headers)
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"success":true}`, rec.Body.String())
	}
}

func (s *NotificationHandlerSuite) TestDispatchesTrimmedRequest() {
	s.dispatcher.EXPECT().Dispatch(gomock.Any(), notification.Request{
		Type:      notification.TypeGroupSuggestion,
		Name:      "Ana",
		Email:     "ana@example.com",
		GroupName: "Knitters",
		GroupLink: "https://knit.example.org",
	}).Return(nil)

	rec := s.post(`{"type":"group_suggestion","name":" Ana ","email":"ana@example.com","group_name":"Knitters ","group_link":"https://knit.example.org"}`, anonKey)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *NotificationHandlerSuite) TestValidationFailure() {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"missing name", `{"type":"contact","email":"ana@example.com","message":"hi"}`, `{"error":"Name is required"}`},
		{"bad email", `{"type":"contact","name":"Ana","email":"nope","message":"hi"}`, `{"error":"Valid email is required"}`},
		{"bad link", `{"type":"group_suggestion","name":"Ana","email":"ana@example.com","group_name":"G","group_link":"not a url"}`, `{"error":"Group link must be a valid URL"}`},
		{"unknown type", `{"type":"newsletter","name":"Ana","email":"ana@example.com"}`, `{"error":"Invalid notification type"}`},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			rec := s.post(tt.body, anonKey)
			s.Equal(http.StatusBadRequest, rec.Code)
			s.JSONEq(tt.want, rec.Body.String())
		})
	}
}

func (s *NotificationHandlerSuite) TestMalformedBody() {
	rec := s.post(`{"type":`, anonKey)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.JSONEq(`{"error":"Invalid request body"}`, rec.Body.String())
}

func (s *NotificationHandlerSuite) TestSendFailure() {
	s.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Return(errors.New("resend: 500 application_error"))

	rec := s.post(`{"type":"contact","name":"Ana","email":"ana@example.com","message":"<script>alert(1)</script>"}`, anonKey)
	s.Equal(http.StatusInternalServerError, rec.Code)
	s.JSONEq(`{"error":"Failed to send notification"}`, rec.Body.String())
	s.NotContains(rec.Body.String(), "resend")
}

func (s *NotificationHandlerSuite) TestPreflight() {
	req := testutil.NewPreflightRequest(s.T(), "/send-notification", http.MethodPost, "apikey", "authorization", "content-type")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("*", rec.Header().Get("Access-Control-Allow-Origin"))
	s.Contains(strings.ToLower(rec.Header().Get("Access-Control-Allow-Headers")), "apikey")
	s.Empty(rec.Body.String())
}
