package predictor_test

import (
	"testing"
	"time"

	"github.com/JaimeStill/mentor/internal/predictor"
)

func TestConfigDefaults(t *testing.T) {
	cfg := &predictor.Config{}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("finalize: %v", err)
	}

	if cfg.BaseURL != predictor.DefaultBaseURL {
		t.Errorf("base url: got %q, want %q", cfg.BaseURL, predictor.DefaultBaseURL)
	}
	if cfg.TimeoutDuration() != 30*time.Second {
		t.Errorf("timeout: got %v, want 30s", cfg.TimeoutDuration())
	}
	if cfg.MaxConcurrent != 4 {
		t.Errorf("max concurrent: got %d, want 4", cfg.MaxConcurrent)
	}
}

func TestConfigEnv(t *testing.T) {
	t.Setenv("TEST_PREDICTOR_BASE_URL", "https://ml.example.com/api")
	t.Setenv("TEST_PREDICTOR_TIMEOUT", "5s")
	t.Setenv("TEST_PREDICTOR_MAX_CONCURRENT", "8")

	cfg := &predictor.Config{}
	err := cfg.Finalize(&predictor.Env{
		BaseURL:       "TEST_PREDICTOR_BASE_URL",
		Timeout:       "TEST_PREDICTOR_TIMEOUT",
		MaxConcurrent: "TEST_PREDICTOR_MAX_CONCURRENT",
	})
	if err != nil {
		t.Fatalf("finalize: %v", err)
	}

	if cfg.BaseURL != "https://ml.example.com/api" {
		t.Errorf("base url: got %q", cfg.BaseURL)
	}
	if cfg.TimeoutDuration() != 5*time.Second {
		t.Errorf("timeout: got %v, want 5s", cfg.TimeoutDuration())
	}
	if cfg.MaxConcurrent != 8 {
		t.Errorf("max concurrent: got %d, want 8", cfg.MaxConcurrent)
	}
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name string
		cfg  predictor.Config
	}{
		{"bad scheme", predictor.Config{BaseURL: "ftp://host"}},
		{"relative url", predictor.Config{BaseURL: "/predict"}},
		{"bad timeout", predictor.Config{Timeout: "soon"}},
		{"negative timeout", predictor.Config{Timeout: "-1s"}},
		{"negative concurrency", predictor.Config{MaxConcurrent: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Finalize(nil); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestConfigMerge(t *testing.T) {
	base := predictor.Config{BaseURL: "http://a", Timeout: "10s", MaxConcurrent: 2}
	base.Merge(&predictor.Config{Timeout: "1m"})

	if base.BaseURL != "http://a" || base.Timeout != "1m" || base.MaxConcurrent != 2 {
		t.Errorf("merge: got %+v", base)
	}
}
