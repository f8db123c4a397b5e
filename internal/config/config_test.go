package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("failed to load config from env: %v", err)
	}

	if cfg.Env != "dev" {
		t.Errorf("expected default env dev, got %q", cfg.Env)
	}
	if cfg.API.Addr != "127.0.0.1:3000" {
		t.Errorf("expected default api address 127.0.0.1:3000, got %q", cfg.API.Addr)
	}
	if cfg.Web.Addr != "127.0.0.1:8080" {
		t.Errorf("expected default web address 127.0.0.1:8080, got %q", cfg.Web.Addr)
	}
	if cfg.Web.APIBaseURL != "http://127.0.0.1:3000" {
		t.Errorf("expected default api base url http://127.0.0.1:3000, got %q", cfg.Web.APIBaseURL)
	}
	if !cfg.IsDev() {
		t.Error("expected default config to be in dev mode")
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("ENV", "prod")
	t.Setenv("API_SERVER_ADDR", "0.0.0.0:9000")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("failed to load config from env: %v", err)
	}

	if cfg.Env != "prod" {
		t.Errorf("expected env prod, got %q", cfg.Env)
	}
	if cfg.API.Addr != "0.0.0.0:9000" {
		t.Errorf("expected api address 0.0.0.0:9000, got %q", cfg.API.Addr)
	}
	if cfg.IsDev() {
		t.Error("expected prod config not to be in dev mode")
	}
}

func TestLoad_YAMLFile(t *testing.T) {
	yaml := `env: prod
api_server:
  address: 127.0.0.1:4000
web_server:
  address: 127.0.0.1:9090
  api_base_url: http://127.0.0.1:4000
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("failed to load config file: %v", err)
	}

	if cfg.API.Addr != "127.0.0.1:4000" {
		t.Errorf("expected api address 127.0.0.1:4000, got %q", cfg.API.Addr)
	}
	if cfg.Web.Addr != "127.0.0.1:9090" {
		t.Errorf("expected web address 127.0.0.1:9090, got %q", cfg.Web.Addr)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected an error for a missing config file")
	}
}
