package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"sunsetguide/internal/notification"
	"sunsetguide/internal/platform/logger"
	"sunsetguide/internal/submission/handler/mocks"
	"sunsetguide/internal/submission/inflight"
	"sunsetguide/internal/submission/models"
	"sunsetguide/internal/submission/service"
	"sunsetguide/internal/submission/store"
	"sunsetguide/internal/validation"
	dErrors "sunsetguide/pkg/domain-errors"
	"sunsetguide/pkg/platform/middleware/metadata"
	"sunsetguide/pkg/platform/sentinel"
	"sunsetguide/pkg/testutil"
)

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service
type SubmissionHandlerSuite struct {
	suite.Suite
	service *mocks.MockService
	router  http.Handler
}

func TestSubmissionHandlerSuite(t *testing.T) {
	suite.Run(t, new(SubmissionHandlerSuite))
}

func newRouter(svc Service) http.Handler {
	r := chi.NewRouter()
	r.Use(metadata.ClientMetadata)
	New(svc, logger.Discard(), nil).Register(r)
	return r
}

func (s *SubmissionHandlerSuite) SetupTest() {
	s.service = mocks.NewMockService(gomock.NewController(s.T()))
	s.router = newRouter(s.service)
}

func post(router http.Handler, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := testutil.WithOrigin(httptest.NewRequest(http.MethodPost, path, strings.NewReader(body)))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func (s *SubmissionHandlerSuite) TestContactCreated() {
	id := uuid.MustParse("5b0c3a52-8f0e-4a52-9a4c-0b3f2d2c8e11")
	s.service.EXPECT().SubmitContact(gomock.Any(), service.ContactAttempt{
		Contact:           validation.Contact{Name: "Ana", Email: "ana@example.com", Message: "hi"},
		ChallengeQuestion: "3 + 4",
		ChallengeAnswer:   "7",
	}).Return(models.Result{State: models.StateDone, ID: id}, nil)

	rec := post(s.router, "/api/contact",
		`{"name":"Ana","email":"ana@example.com","message":"hi","captcha_question":"3 + 4","captcha":"7"}`, nil)
	s.Equal(http.StatusCreated, rec.Code)
	s.JSONEq(`{"success":true,"id":"5b0c3a52-8f0e-4a52-9a4c-0b3f2d2c8e11"}`, rec.Body.String())
	s.Equal("*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func (s *SubmissionHandlerSuite) TestNotifyFailureIsStillCreated() {
	s.service.EXPECT().SubmitGroupSuggestion(gomock.Any(), gomock.Any()).
		Return(models.Result{State: models.StateNotifyFailed, ID: uuid.New()}, nil)

	rec := post(s.router, "/api/group-suggestions", `{"name":"Ana","email":"ana@example.com","group_name":"G"}`, nil)
	s.Equal(http.StatusCreated, rec.Code)
	s.Contains(rec.Body.String(), `"success":true`)
}

func (s *SubmissionHandlerSuite) TestValidationFailure() {
	errs := validation.FieldErrors{validation.FieldEmail: "Valid email is required"}
	s.service.EXPECT().SubmitGroupSuggestion(gomock.Any(), gomock.Any()).
		Return(models.Result{State: models.StateRejected, FieldErrors: errs}, dErrors.Wrap(errs, dErrors.CodeValidation, "validation_failed"))

	rec := post(s.router, "/api/group-suggestions", `{"name":"Ana","email":"nope","group_name":"G"}`, nil)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.JSONEq(`{"error":"validation_failed","fields":{"email":"Valid email is required"}}`, rec.Body.String())
}

func (s *SubmissionHandlerSuite) TestConflict() {
	s.service.EXPECT().SubmitContact(gomock.Any(), gomock.Any()).
		Return(models.Result{State: models.StateIdle}, dErrors.Wrap(sentinel.ErrConflict, dErrors.CodeConflict, "submission already in progress"))

	rec := post(s.router, "/api/contact", `{}`, nil)
	s.Equal(http.StatusConflict, rec.Code)
	s.JSONEq(`{"error":"submission already in progress"}`, rec.Body.String())
}

func (s *SubmissionHandlerSuite) TestPersistFailureIsGeneric() {
	s.service.EXPECT().SubmitContact(gomock.Any(), gomock.Any()).
		Return(models.Result{State: models.StatePersistFailed},
			dErrors.Wrap(errors.New("pq: relation does not exist"), dErrors.CodeInternal, "Something went wrong. Please try again later."))

	rec := post(s.router, "/api/contact", `{}`, nil)
	s.Equal(http.StatusInternalServerError, rec.Code)
	s.JSONEq(`{"error":"Something went wrong. Please try again later."}`, rec.Body.String())
}

func (s *SubmissionHandlerSuite) TestMalformedBody() {
	rec := post(s.router, "/api/contact", `not json`, nil)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.JSONEq(`{"error":"invalid request body"}`, rec.Body.String())
}

func (s *SubmissionHandlerSuite) TestPreflight() {
	for _, path := range []string{"/api/contact", "/api/group-suggestions"} {
		req := testutil.NewPreflightRequest(s.T(), path, http.MethodPost, "content-type", "x-form-instance")
		rec := httptest.NewRecorder()
		s.router.ServeHTTP(rec, req)
		s.Equal(http.StatusOK, rec.Code, path)
		s.Equal("*", rec.Header().Get("Access-Control-Allow-Origin"), path)
		s.Contains(strings.ToLower(rec.Header().Get("Access-Control-Allow-Headers")), "x-form-instance")
		s.Empty(rec.Body.String())
	}
}

type blockingNotifier struct {
	entered chan struct{}
	release chan struct{}
}

func (n *blockingNotifier) Dispatch(ctx context.Context, _ notification.Request) error {
	n.entered <- struct{}{}
	select {
	case <-n.release:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// TestPipelineEndToEnd runs the real service against in-memory infrastructure.
func (s *SubmissionHandlerSuite) TestPipelineEndToEnd() {
	st := store.NewInMemoryStore()
	notifier := &blockingNotifier{entered: make(chan struct{}, 1), release: make(chan struct{})}
	svc := service.New(st, notifier,
		service.WithLogger(logger.Discard()),
		service.WithLock(inflight.NewInMemory(), time.Minute),
	)
	router := newRouter(svc)
	body := `{"name":" Ana ","email":"ana@example.com","message":"hi","captcha_question":"2 + 2","captcha":"4"}`
	headers := map[string]string{metadata.FormInstanceHeader: "form-1"}

	done := make(chan *httptest.ResponseRecorder)
	go func() {
		done <- post(router, "/api/contact", body, headers)
	}()
	<-notifier.entered

	second := post(router, "/api/contact", body, headers)
	s.Equal(http.StatusConflict, second.Code)

	close(notifier.release)
	first := <-done
	s.Equal(http.StatusCreated, first.Code)

	var resp SubmissionResponse
	s.Require().NoError(json.Unmarshal(first.Body.Bytes(), &resp))
	contacts := st.Contacts()
	s.Require().Len(contacts, 1)
	s.Equal(contacts[0].ID.String(), resp.ID)
	s.Equal("Ana", contacts[0].Name)

	third := post(router, "/api/contact", body, headers)
	s.Equal(http.StatusCreated, third.Code)
	s.Len(st.Contacts(), 2)
}
