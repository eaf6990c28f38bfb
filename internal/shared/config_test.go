package shared

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		if config.API.BaseURL != "http://localhost:5000" {
			t.Errorf("expected base URL http://localhost:5000, got %s", config.API.BaseURL)
		}

		if config.API.Endpoint != "/api/urls" {
			t.Errorf("expected endpoint /api/urls, got %s", config.API.Endpoint)
		}

		if config.API.Timeout() != 0 {
			t.Errorf("expected no timeout by default, got %v", config.API.Timeout())
		}

		if config.Dashboard.ClearURLOnPlatformSwitch {
			t.Error("expected URL text to carry across platform switches by default")
		}

		if config.History.Enabled {
			t.Error("expected history to be disabled by default")
		}

		if config.Database.Path != "./smm.db" {
			t.Errorf("expected database path ./smm.db, got %s", config.Database.Path)
		}

		if config.Server.Addr() != "127.0.0.1:3000" {
			t.Errorf("expected server addr 127.0.0.1:3000, got %s", config.Server.Addr())
		}

		if err := config.Validate(); err != nil {
			t.Errorf("default config should validate: %v", err)
		}
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		if err := CreateConfigFile(configPath); err != nil {
			t.Fatalf("failed to create config file: %v", err)
		}

		if _, err := os.Stat(configPath); err != nil {
			t.Fatalf("config file should exist: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load created config: %v", err)
		}

		defaultConfig := DefaultConfig()
		if config.API.BaseURL != defaultConfig.API.BaseURL {
			t.Errorf("created config base URL doesn't match default")
		}

		if err := CreateConfigFile(configPath); err == nil {
			t.Error("creating config file again should fail")
		}
	})

	t.Run("LoadConfig", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		testConfig := `[api]
base_url = "http://reports.internal:8000"
timeout_seconds = 5
requests_per_second = 2.5

[dashboard]
clear_url_on_platform_switch = true

[history]
enabled = true

[server]
port = 8080

[log]
level = "debug"
`
		if err := os.WriteFile(configPath, []byte(testConfig), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if config.API.BaseURL != "http://reports.internal:8000" {
			t.Errorf("expected custom base URL, got %s", config.API.BaseURL)
		}

		if config.API.Endpoint != "/api/urls" {
			t.Errorf("expected endpoint to keep its default, got %s", config.API.Endpoint)
		}

		if config.API.Timeout() != 5*time.Second {
			t.Errorf("expected 5s timeout, got %v", config.API.Timeout())
		}

		if config.API.RequestsPerSecond != 2.5 {
			t.Errorf("expected 2.5 requests per second, got %v", config.API.RequestsPerSecond)
		}

		if !config.Dashboard.ClearURLOnPlatformSwitch || !config.History.Enabled {
			t.Error("expected boolean toggles to be read")
		}

		if config.Server.Port != 8080 || config.Server.Host != "127.0.0.1" {
			t.Errorf("expected port override with default host, got %s", config.Server.Addr())
		}
	})

	t.Run("LoadConfig Missing File", func(t *testing.T) {
		if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("Validate", func(t *testing.T) {
		tc := []struct {
			name   string
			mutate func(*Config)
		}{
			{name: "relative base url", mutate: func(c *Config) { c.API.BaseURL = "localhost:5000" }},
			{name: "endpoint without slash", mutate: func(c *Config) { c.API.Endpoint = "api/urls" }},
			{name: "negative timeout", mutate: func(c *Config) { c.API.TimeoutSeconds = -1 }},
			{name: "negative rate", mutate: func(c *Config) { c.API.RequestsPerSecond = -1 }},
			{name: "port out of range", mutate: func(c *Config) { c.Server.Port = 70000 }},
			{name: "unknown log level", mutate: func(c *Config) { c.Log.Level = "loud" }},
		}

		for _, tt := range tc {
			t.Run(tt.name, func(t *testing.T) {
				config := DefaultConfig()
				tt.mutate(config)
				if err := config.Validate(); !errors.Is(err, ErrInvalidConfig) {
					t.Errorf("expected ErrInvalidConfig, got %v", err)
				}
			})
		}
	})
}
