package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JaimeStill/mentor/pkg/middleware"
)

func TestApplyOrder(t *testing.T) {
	var order []string
	mw := middleware.New()

	mw.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			order = append(order, "first")
			next.ServeHTTP(w, r)
		})
	})

	mw.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			order = append(order, "second")
			next.ServeHTTP(w, r)
		})
	})

	handler := mw.Apply(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

	if len(order) != 3 {
		t.Fatalf("execution count: got %d, want 3", len(order))
	}
	if order[0] != "first" || order[1] != "second" || order[2] != "handler" {
		t.Errorf("order: got %v, want [first second handler]", order)
	}
}

func TestCORS(t *testing.T) {
	tests := []struct {
		name       string
		cfg        middleware.CORSConfig
		method     string
		origin     string
		wantOrigin string
		wantCalled bool
	}{
		{
			name:       "disabled",
			cfg:        middleware.CORSConfig{Enabled: false},
			method:     "GET",
			origin:     "http://example.com",
			wantOrigin: "",
			wantCalled: true,
		},
		{
			name: "allowed origin",
			cfg: middleware.CORSConfig{
				Enabled:        true,
				Origins:        []string{"http://example.com"},
				AllowedMethods: []string{"GET", "POST"},
				MaxAge:         3600,
			},
			method:     "GET",
			origin:     "http://example.com",
			wantOrigin: "http://example.com",
			wantCalled: true,
		},
		{
			name: "disallowed origin",
			cfg: middleware.CORSConfig{
				Enabled: true,
				Origins: []string{"http://allowed.com"},
			},
			method:     "GET",
			origin:     "http://denied.com",
			wantOrigin: "",
			wantCalled: true,
		},
		{
			name: "preflight short-circuits",
			cfg: middleware.CORSConfig{
				Enabled: true,
				Origins: []string{"http://example.com"},
			},
			method:     "OPTIONS",
			origin:     "http://example.com",
			wantOrigin: "http://example.com",
			wantCalled: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var called bool
			handler := middleware.CORS(&tt.cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				w.WriteHeader(http.StatusOK)
			}))

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(tt.method, "/", nil)
			req.Header.Set("Origin", tt.origin)
			handler.ServeHTTP(rec, req)

			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tt.wantOrigin {
				t.Errorf("allow-origin: got %q, want %q", got, tt.wantOrigin)
			}
			if called != tt.wantCalled {
				t.Errorf("handler called: got %v, want %v", called, tt.wantCalled)
			}
		})
	}
}

func TestCORSFinalizeEnv(t *testing.T) {
	t.Setenv("TEST_CORS_ORIGINS", " http://a.com, ,http://b.com ")
	t.Setenv("TEST_CORS_ENABLED", "true")

	cfg := middleware.CORSConfig{}
	err := cfg.Finalize(&middleware.CORSEnv{
		Enabled: "TEST_CORS_ENABLED",
		Origins: "TEST_CORS_ORIGINS",
	})
	if err != nil {
		t.Fatalf("finalize: %v", err)
	}

	if !cfg.Enabled {
		t.Error("enabled: got false, want true")
	}
	if len(cfg.Origins) != 2 || cfg.Origins[0] != "http://a.com" || cfg.Origins[1] != "http://b.com" {
		t.Errorf("origins: got %v", cfg.Origins)
	}
	if cfg.MaxAge != 3600 {
		t.Errorf("max age default: got %d, want 3600", cfg.MaxAge)
	}
}

func TestLoggerAssignsRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	var seen string
	handler := middleware.Logger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = middleware.RequestID(r.Context())
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/brew", nil))

	if seen == "" {
		t.Fatal("request id not set on context")
	}
	if got := rec.Header().Get(middleware.HeaderRequestID); got != seen {
		t.Errorf("response header: got %q, want %q", got, seen)
	}
	if !strings.Contains(buf.String(), "status=418") {
		t.Errorf("log line missing status: %s", buf.String())
	}
}

func TestLoggerKeepsIncomingRequestID(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)

	handler := middleware.Logger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(middleware.HeaderRequestID, "abc-123")
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get(middleware.HeaderRequestID); got != "abc-123" {
		t.Errorf("request id: got %q, want abc-123", got)
	}
}
