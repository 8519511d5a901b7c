package storage_test

import (
	"testing"

	"github.com/JaimeStill/mentor/pkg/storage"
)

func TestFinalizeDisabledByDefault(t *testing.T) {
	cfg := storage.Config{}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("finalize failed: %v", err)
	}

	if cfg.Enabled() {
		t.Error("enabled: got true, want false")
	}
	if cfg.ContainerName != "varieties" {
		t.Errorf("container_name: got %s, want varieties", cfg.ContainerName)
	}
}

func TestFinalizeEnvOverrides(t *testing.T) {
	t.Setenv("TEST_CONTAINER", "cards")
	t.Setenv("TEST_CONN", "override-connection")
	t.Setenv("TEST_PREFIX", "v2")

	env := &storage.Env{
		ContainerName:    "TEST_CONTAINER",
		ConnectionString: "TEST_CONN",
		Prefix:           "TEST_PREFIX",
	}

	cfg := storage.Config{}
	if err := cfg.Finalize(env); err != nil {
		t.Fatalf("finalize failed: %v", err)
	}

	if cfg.ContainerName != "cards" {
		t.Errorf("container_name: got %s, want cards", cfg.ContainerName)
	}
	if cfg.ConnectionString != "override-connection" {
		t.Errorf("connection_string: got %s, want override-connection", cfg.ConnectionString)
	}
	if cfg.Prefix != "v2" {
		t.Errorf("prefix: got %s, want v2", cfg.Prefix)
	}
	if !cfg.Enabled() {
		t.Error("enabled: got false, want true")
	}
}

func TestFinalizeServiceURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{"valid", "https://mentor.blob.core.windows.net", false},
		{"no scheme", "mentor.blob.core.windows.net", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := storage.Config{ServiceURL: tt.url}
			err := cfg.Finalize(nil)
			if (err != nil) != tt.wantErr {
				t.Errorf("Finalize() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestMerge(t *testing.T) {
	base := storage.Config{ContainerName: "varieties", ConnectionString: "base"}
	base.Merge(&storage.Config{ConnectionString: "overlay"})

	if base.ContainerName != "varieties" {
		t.Errorf("container_name: got %s, want varieties", base.ContainerName)
	}
	if base.ConnectionString != "overlay" {
		t.Errorf("connection_string: got %s, want overlay", base.ConnectionString)
	}
}
