// Package config handles loading and parsing application configuration.
// Values come from a YAML file (--config flag or CONFIG_PATH environment
// variable) with per-key environment overrides; when no file is given,
// everything is read from the environment with the defaults below.
package config

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the root configuration shared by all three binaries.
type Config struct {
	// Env selects dev or prod behaviour. In dev the web app serves UI
	// assets from disk and enables live reload.
	Env string `yaml:"env" env:"ENV" env-default:"dev"`

	API APIServer `yaml:"api_server"`
	Web WebServer `yaml:"web_server"`
}

// APIServer holds settings for the JSON API server.
type APIServer struct {
	Addr string `yaml:"address" env:"API_SERVER_ADDR" env-default:"127.0.0.1:3000"`
}

// WebServer holds settings for the browser-facing web app. It runs on its
// own port and reaches the API by absolute URL, which is why the API
// permits cross-origin requests.
type WebServer struct {
	Addr       string `yaml:"address" env:"WEB_SERVER_ADDR" env-default:"127.0.0.1:8080"`
	APIBaseURL string `yaml:"api_base_url" env:"API_BASE_URL" env-default:"http://127.0.0.1:3000"`
	UIDir      string `yaml:"ui_dir" env:"UI_DIR" env-default:"internal/web/ui"`
}

// IsDev reports whether the app runs in development mode.
func (c *Config) IsDev() bool {
	return c.Env != "prod"
}

// Load reads configuration from the YAML file at path, or from the
// environment alone when path is empty.
func Load(path string) (*Config, error) {
	var cfg Config

	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("read env config: %w", err)
		}
		return &cfg, nil
	}

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}

	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	return &cfg, nil
}

// MustLoad resolves the config file path from CONFIG_PATH or the --config
// flag and loads it, exiting the process on failure. A missing path is
// fine: every key has a default.
func MustLoad() *Config {
	path := os.Getenv("CONFIG_PATH")

	if path == "" {
		flagPath := flag.String("config", "", "path to the configuration YAML file")
		flag.Parse()
		path = *flagPath
	}

	cfg, err := Load(path)
	if err != nil {
		log.Fatalf("cannot load config: %v", err)
	}

	return cfg
}
