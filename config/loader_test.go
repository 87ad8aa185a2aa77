package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// clearEnv keeps ambient environment variables from leaking into a test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PORT", "UPSTREAM_BASE_URL", "UPSTREAM_TIMEOUT_MS"} {
		t.Setenv(key, "")
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadFromFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
server:
  port: 9090
upstream:
  baseURL: http://example.com
  timeoutMS: 5000
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Server.Port)
	}
	if cfg.Upstream.BaseURL != "http://example.com" {
		t.Errorf("unexpected baseURL: %q", cfg.Upstream.BaseURL)
	}
	if cfg.Upstream.Timeout() != 5*time.Second {
		t.Errorf("expected 5s timeout, got %v", cfg.Upstream.Timeout())
	}
}

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yml"))
	if err != nil {
		t.Fatalf("a missing config file must not be an error: %v", err)
	}
	if cfg.Server.Port != defaultPort {
		t.Errorf("expected default port %d, got %d", defaultPort, cfg.Server.Port)
	}
	if cfg.Upstream.BaseURL != defaultBaseURL {
		t.Errorf("expected default baseURL, got %q", cfg.Upstream.BaseURL)
	}
	if cfg.Upstream.TimeoutMS != defaultTimeoutMS {
		t.Errorf("expected default timeout, got %d", cfg.Upstream.TimeoutMS)
	}
}

func TestLoadPartialFileGetsDefaults(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
server:
  port: 9090
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Server.Port)
	}
	if cfg.Upstream.BaseURL != defaultBaseURL || cfg.Upstream.TimeoutMS != defaultTimeoutMS {
		t.Errorf("missing upstream section should fall back to defaults, got %+v", cfg.Upstream)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "1234")
	t.Setenv("UPSTREAM_BASE_URL", "http://localhost:9999")
	t.Setenv("UPSTREAM_TIMEOUT_MS", "1000")

	path := writeConfig(t, `
server:
  port: 9090
upstream:
  baseURL: http://example.com
  timeoutMS: 5000
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 1234 {
		t.Errorf("PORT should override the file, got %d", cfg.Server.Port)
	}
	if cfg.Upstream.BaseURL != "http://localhost:9999" {
		t.Errorf("UPSTREAM_BASE_URL should override the file, got %q", cfg.Upstream.BaseURL)
	}
	if cfg.Upstream.TimeoutMS != 1000 {
		t.Errorf("UPSTREAM_TIMEOUT_MS should override the file, got %d", cfg.Upstream.TimeoutMS)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "server: [not: valid")

	if _, err := Load(path); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestLoadValidation(t *testing.T) {
	clearEnv(t)
	tests := []struct {
		name    string
		content string
	}{
		{
			"negative port",
			"server:\n  port: -5\n",
		},
		{
			"bad base URL",
			"upstream:\n  baseURL: not-a-url\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			if _, err := Load(path); err == nil {
				t.Fatal("expected a validation error")
			}
		})
	}
}
