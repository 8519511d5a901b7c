package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/mentor/internal/config"
	"github.com/JaimeStill/mentor/internal/infrastructure"
	"github.com/JaimeStill/mentor/internal/predictor"
	"github.com/JaimeStill/mentor/pkg/lifecycle"
)

type stubPredictor struct {
	err error
}

func (s *stubPredictor) Predict(ctx context.Context, image string) (*predictor.Prediction, error) {
	return nil, s.err
}

func (s *stubPredictor) Health(ctx context.Context) (*predictor.Health, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &predictor.Health{Status: "healthy"}, nil
}

func serve(t *testing.T, h http.Handler, path string) (*httptest.ResponseRecorder, map[string]string) {
	t.Helper()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", path, nil))

	var body map[string]string
	if rec.Header().Get("Content-Type") == "application/json" {
		if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
			t.Fatalf("decode %s: %v", path, err)
		}
	}
	return rec, body
}

func TestProbes(t *testing.T) {
	cfg := &config.Config{Web: config.WebConfig{BasePath: "/app"}}

	tests := []struct {
		name          string
		ready         bool
		predictorErr  error
		wantStatus    int
		wantReadiness string
		wantPredictor string
	}{
		{"starting", false, nil, http.StatusServiceUnavailable, "not ready", ""},
		{"ready", true, nil, http.StatusOK, "ready", "healthy"},
		{"predictor down", true, predictor.ErrNetwork, http.StatusOK, "ready", "unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			infra := &infrastructure.Infrastructure{
				Lifecycle: lifecycle.New(),
				Logger:    slog.New(slog.DiscardHandler),
				Predictor: &stubPredictor{err: tt.predictorErr},
			}
			if tt.ready {
				infra.Lifecycle.WaitForStartup()
			}
			router := buildRouter(infra, cfg)

			rec, body := serve(t, router, "/readyz")
			if rec.Code != tt.wantStatus {
				t.Errorf("readyz status: got %d, want %d", rec.Code, tt.wantStatus)
			}
			if body["status"] != tt.wantReadiness {
				t.Errorf("readyz: got %q, want %q", body["status"], tt.wantReadiness)
			}
			if body["predictor"] != tt.wantPredictor {
				t.Errorf("predictor: got %q, want %q", body["predictor"], tt.wantPredictor)
			}

			rec, body = serve(t, router, "/healthz")
			if rec.Code != http.StatusOK || body["status"] != "ok" {
				t.Errorf("healthz: got %d %v", rec.Code, body)
			}
		})
	}
}

func TestServerRouting(t *testing.T) {
	t.Setenv("MENTOR_PREDICTOR_BASE_URL", "http://127.0.0.1:1")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	srv, err := NewServer(cfg, slog.New(slog.DiscardHandler))
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}
	handler := srv.http.http.Handler

	tests := []struct {
		name         string
		path         string
		wantStatus   int
		wantLocation string
	}{
		{"root redirects to ui", "/", http.StatusFound, "/app/"},
		{"ui home", "/app/", http.StatusOK, ""},
		{"ui identify", "/app/identify", http.StatusOK, ""},
		{"api species", "/api/species", http.StatusOK, ""},
		{"api unknown species", "/api/species/42", http.StatusNotFound, ""},
		{"healthz", "/healthz", http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest("GET", tt.path, nil))

			if rec.Code != tt.wantStatus {
				t.Errorf("status: got %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantLocation != "" {
				if got := rec.Header().Get("Location"); got != tt.wantLocation {
					t.Errorf("location: got %q, want %q", got, tt.wantLocation)
				}
			}
		})
	}
}
