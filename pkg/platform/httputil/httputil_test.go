package httputil

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	dErrors "sunsetguide/pkg/domain-errors"
)

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return body
}

func TestWriteError(t *testing.T) {
	t.Run("internal error keeps the public message only", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteError(w, dErrors.Wrap(errors.New("pq: connection refused"), dErrors.CodeInternal, "Something went wrong"))

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
		}
		body := decodeBody(t, w)
		if body["error"] != "Something went wrong" {
			t.Fatalf("expected public message, got %q", body["error"])
		}
	})

	t.Run("validation error is a bad request", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteError(w, dErrors.New(dErrors.CodeValidation, "Name is required"))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
		}
		if body := decodeBody(t, w); body["error"] != "Name is required" {
			t.Fatalf("expected validation message, got %q", body["error"])
		}
	})

	t.Run("conflict maps to 409", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteError(w, dErrors.New(dErrors.CodeConflict, "busy"))

		if w.Code != http.StatusConflict {
			t.Fatalf("expected status %d, got %d", http.StatusConflict, w.Code)
		}
	})

	t.Run("uncoded error never leaks its text", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteError(w, errors.New("secret detail"))

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
		}
		if body := decodeBody(t, w); body["error"] == "secret detail" {
			t.Fatal("expected raw error text to be hidden")
		}
	})
}

func TestWriteIndentedJSON(t *testing.T) {
	w := httptest.NewRecorder()
	WriteIndentedJSON(w, http.StatusOK, map[string]int{"a": 1})

	if got := w.Body.String(); got != "{\n  \"a\": 1\n}" {
		t.Fatalf("unexpected body %q", got)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("unexpected content type %q", ct)
	}
}
