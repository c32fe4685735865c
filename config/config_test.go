package config

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	dir := t.TempDir()

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Environment != "dev" {
		t.Fatalf("expected dev environment, got %q", cfg.Environment)
	}
	if cfg.Auth.CookieName != "sso-jwt" {
		t.Fatalf("unexpected cookie name %q", cfg.Auth.CookieName)
	}
	ep, err := cfg.Catalog().Resolve("submit-job")
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if ep.Method != http.MethodPost {
		t.Fatalf("expected POST, got %s", ep.Method)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	t.Setenv("PORT", "9090")

	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Environment != "prod" || cfg.Server.Port != "9090" {
		t.Fatalf("env overrides not applied: %+v", cfg.Server)
	}
}

func TestLoad_MergesFile(t *testing.T) {
	t.Setenv("APP_ENV", "")
	dir := t.TempDir()
	body := []byte("environment: local\nenvironments:\n  local:\n    table-listing: { method: get, url: http://localhost:9999/tables }\n")
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), body, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	ep, err := cfg.Catalog().Resolve("table-listing")
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if ep.URL != "http://localhost:9999/tables" || ep.Method != http.MethodGet {
		t.Fatalf("unexpected endpoint %+v", ep)
	}
}

func TestLoad_UnknownEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "staging")
	if _, err := Load(t.TempDir()); err == nil {
		t.Fatalf("expected error for unknown environment")
	}
}

func TestCatalog_Resolve(t *testing.T) {
	t.Parallel()

	c := Catalog{
		"ok":     {Method: "post", URL: "http://upstream/ok"},
		"no-url": {Method: "GET"},
	}
	for _, id := range []string{"", "no-url", "not-a-real-id"} {
		if _, err := c.Resolve(id); !errors.Is(err, ErrUnknownEndpoint) {
			t.Fatalf("Resolve(%q): expected ErrUnknownEndpoint, got %v", id, err)
		}
	}
	ep, err := c.Resolve("ok")
	if err != nil || ep.Method != http.MethodPost {
		t.Fatalf("unexpected %+v %v", ep, err)
	}
}

func TestLoad_ProxyBaseFollowsPort(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("PORT", "9000")
	t.Setenv("PROXY_BASE_URL", "")

	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Proxy.BaseURL != "http://127.0.0.1:9000/api/aws" {
		t.Fatalf("expected proxy base on port 9000, got %q", cfg.Proxy.BaseURL)
	}
}

func TestLoad_ExplicitProxyBaseWins(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("PORT", "9000")
	t.Setenv("PROXY_BASE_URL", "https://dash.internal/api/aws")

	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Proxy.BaseURL != "https://dash.internal/api/aws" {
		t.Fatalf("explicit base_url must not be rewritten, got %q", cfg.Proxy.BaseURL)
	}
}
