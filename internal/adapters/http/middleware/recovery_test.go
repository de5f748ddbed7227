package middleware_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/draftdesk/internal/adapters/http/middleware"
)

func testLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestRecovery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		handler     http.HandlerFunc
		wantStatus  int
		wantProblem bool
		wantLog     []string
	}{
		{
			name: "no panic passes through",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte("ok"))
			},
			wantStatus: http.StatusOK,
		},
		{
			name:        "string panic",
			handler:     func(http.ResponseWriter, *http.Request) { panic("form encoder exploded") },
			wantStatus:  http.StatusInternalServerError,
			wantProblem: true,
			wantLog:     []string{"panic recovered", "form encoder exploded", "goroutine"},
		},
		{
			name:        "non-string panic",
			handler:     func(http.ResponseWriter, *http.Request) { panic(42) },
			wantStatus:  http.StatusInternalServerError,
			wantProblem: true,
			wantLog:     []string{"panic=42"},
		},
		{
			name: "started response keeps its status",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusAccepted)
				_, _ = w.Write([]byte("partial"))
				panic("late")
			},
			wantStatus: http.StatusAccepted,
			wantLog:    []string{"panic recovered"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			rec := httptest.NewRecorder()
			middleware.Recovery(testLogger(&buf))(tt.handler).
				ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/drafts/d1", http.NoBody))

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantProblem {
				if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
					t.Errorf("Content-Type = %q, want application/problem+json", ct)
				}
				var body struct {
					Title  string `json:"title"`
					Detail string `json:"detail"`
				}
				if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
					t.Fatalf("decoding body: %v", err)
				}
				if body.Title != http.StatusText(http.StatusInternalServerError) {
					t.Errorf("title = %q", body.Title)
				}
				if strings.Contains(body.Detail, "exploded") {
					t.Errorf("detail leaks panic value: %q", body.Detail)
				}
			}
			for _, want := range tt.wantLog {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("log missing %q:\n%s", want, buf.String())
				}
			}
			if len(tt.wantLog) == 0 && buf.Len() > 0 {
				t.Errorf("unexpected log output: %s", buf.String())
			}
		})
	}
}

func TestRecovery_LogsRouteAndDraftID(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := chi.NewRouter()
	r.Use(middleware.Recovery(testLogger(&buf)))
	r.Post("/api/v1/drafts/{draftId}/submit", func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/v1/drafts/d-9/submit", http.NoBody))

	for _, want := range []string{"route=/api/v1/drafts/{draftId}/submit", "draft_id=d-9"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("log missing %q:\n%s", want, buf.String())
		}
	}
}

func TestRecovery_RepanicsAbortHandler(t *testing.T) {
	t.Parallel()

	h := middleware.Recovery(discardLogger())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	defer func() {
		if v := recover(); v != http.ErrAbortHandler {
			t.Errorf("recovered %v, want http.ErrAbortHandler", v)
		}
	}()
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", http.NoBody))
	t.Error("ServeHTTP returned normally, want re-panic")
}
