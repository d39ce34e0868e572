package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ai-telephone-server/modules/common/apperr"
)

func TestPreflight(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	Preflight(rec)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("expected empty body, got %q", rec.Body.String())
	}
	want := map[string]string{
		"Access-Control-Allow-Origin":  "*",
		"Access-Control-Allow-Methods": "POST, OPTIONS",
		"Access-Control-Allow-Headers": "Content-Type, Authorization",
	}
	for key, value := range want {
		if got := rec.Header().Get(key); got != value {
			t.Fatalf("unexpected %s header %q", key, got)
		}
	}
}

func TestMethodNotAllowedHasNoCORS(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	MethodNotAllowed(rec)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("unexpected status %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("unexpected CORS header %q", got)
	}
	if strings.TrimSpace(rec.Body.String()) != "Method not allowed" {
		t.Fatalf("unexpected body %q", rec.Body.String())
	}
}

func TestFailure(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"validation", apperr.Validation("Prompt is required"), http.StatusBadRequest, "Prompt is required"},
		{"configuration", apperr.Configuration("Runware API key not configured"), http.StatusInternalServerError, "Runware API key not configured"},
		{"upstream", apperr.Upstream("No image URL found in response"), http.StatusInternalServerError, "Image generation failed: No image URL found in response"},
		{"unclassified", errors.New("boom"), http.StatusInternalServerError, "Image generation failed: boom"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			Failure(rec, "Test", "Image generation failed", tc.err)

			if rec.Code != tc.status {
				t.Fatalf("unexpected status %d", rec.Code)
			}
			if got := rec.Header().Get("Content-Type"); got != "application/json" {
				t.Fatalf("unexpected content type %q", got)
			}
			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
				t.Fatalf("unexpected CORS header %q", got)
			}

			var envelope ErrorEnvelope
			if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if envelope.Error != tc.message {
				t.Fatalf("unexpected error message %q", envelope.Error)
			}
		})
	}
}
