package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"

	"sunsetguide/internal/directory"
	"sunsetguide/internal/directory/export"
	"sunsetguide/internal/platform/logger"
	"sunsetguide/pkg/testutil"
)

type DirectoryHandlerSuite struct {
	suite.Suite
	router http.Handler
	now    time.Time
}

func TestDirectoryHandlerSuite(t *testing.T) {
	suite.Run(t, new(DirectoryHandlerSuite))
}

func (s *DirectoryHandlerSuite) SetupTest() {
	s.now = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	h := New(directory.Default(), export.DefaultSite, logger.Discard(), nil)
	r := chi.NewRouter()
	h.Register(r)
	s.router = r
}

func (s *DirectoryHandlerSuite) do(method, target string) *httptest.ResponseRecorder {
	req := testutil.WithOrigin(httptest.NewRequest(method, target, nil))
	req = testutil.WithRequestTime(req, s.now)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *DirectoryHandlerSuite) assertCommonHeaders(rec *httptest.ResponseRecorder) {
	s.Equal("*", rec.Header().Get("Access-Control-Allow-Origin"))
	s.Equal("public, max-age=3600", rec.Header().Get("Cache-Control"))
}

func (s *DirectoryHandlerSuite) TestMeta() {
	for _, path := range []string{"/neighborhood-api/meta", "/neighborhood-api/", "/neighborhood-api/meta/"} {
		rec := s.do(http.MethodGet, path)
		s.Equal(http.StatusOK, rec.Code, path)
		s.assertCommonHeaders(rec)

		var meta export.Meta
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &meta))
		s.Equal("Outer Sunset Community", meta.Name)
		s.Equal("2026-05-01T12:00:00Z", meta.UpdatedAt)
	}
}

func (s *DirectoryHandlerSuite) TestListGroups() {
	s.Run("category filter keeps static order", func() {
		rec := s.do(http.MethodGet, "/neighborhood-api/groups?category=care-mutual-aid")
		s.Equal(http.StatusOK, rec.Code)
		s.assertCommonHeaders(rec)
		s.True(strings.Contains(rec.Body.String(), "\n  {\n    \"id\""), "body is pretty-printed")

		var records []export.Record
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &records))
		s.Require().Len(records, 4)
		s.Equal("grp_sf-mutual-aid", records[0].ID)
		s.Equal("grp_outer-mamas-and-outer-dadas", records[3].ID)
		for _, r := range records {
			s.Contains(r.Category, "care-mutual-aid")
		}
	})

	s.Run("text filter", func() {
		rec := s.do(http.MethodGet, "/neighborhood-api/groups?q=church")
		var records []export.Record
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &records))
		s.Require().Len(records, 2)
		s.Equal("Sunset Church", records[0].Name)
		s.Equal("St. Gabriel's Church", records[1].Name)
	})

	s.Run("no matches encodes empty array", func() {
		rec := s.do(http.MethodGet, "/neighborhood-api/groups?q=nothing-matches-this")
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq("[]", rec.Body.String())
	})
}

func (s *DirectoryHandlerSuite) TestGetGroup() {
	s.Run("found", func() {
		rec := s.do(http.MethodGet, "/neighborhood-api/groups/grp_lions-club-sf-parkside-sunset")
		s.Equal(http.StatusOK, rec.Code)
		var record export.Record
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &record))
		s.Equal("Lions Club – SF Parkside / Sunset", record.Name)
		s.Equal([]string{"neighborhood-civic-life", "community"}, record.Category)
	})

	s.Run("missing", func() {
		rec := s.do(http.MethodGet, "/neighborhood-api/groups/grp_missing")
		s.Equal(http.StatusNotFound, rec.Code)
		s.assertCommonHeaders(rec)
		s.JSONEq(`{"error":"Group not found"}`, rec.Body.String())
	})
}

func (s *DirectoryHandlerSuite) TestUnknownPath() {
	rec := s.do(http.MethodGet, "/neighborhood-api/events")
	s.Equal(http.StatusNotFound, rec.Code)
	s.assertCommonHeaders(rec)
	s.JSONEq(`{"error":"Not found","available_endpoints":["/meta","/groups","/groups/{id}"]}`, rec.Body.String())
}

func (s *DirectoryHandlerSuite) TestPreflight() {
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, testutil.NewPreflightRequest(s.T(), "/neighborhood-api/groups", http.MethodGet))
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("*", rec.Header().Get("Access-Control-Allow-Origin"))
	s.Empty(rec.Body.String())
}

func (s *DirectoryHandlerSuite) TestLLMText() {
	rec := s.do(http.MethodGet, "/llm.txt")
	s.Equal(http.StatusOK, rec.Code)
	s.assertCommonHeaders(rec)
	s.Equal("text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	s.True(strings.HasPrefix(rec.Body.String(), "# outersunset.us"))
	s.True(strings.HasSuffix(rec.Body.String(), "2026-05"))
}

func (s *DirectoryHandlerSuite) TestLLMTextPreflight() {
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, testutil.NewPreflightRequest(s.T(), "/llm.txt", http.MethodGet))
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("*", rec.Header().Get("Access-Control-Allow-Origin"))
	s.Empty(rec.Body.String())
}
