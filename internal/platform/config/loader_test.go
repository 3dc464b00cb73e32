package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoader_Load(t *testing.T) {
	tempDir := t.TempDir()
	configFile := filepath.Join(tempDir, "config.yaml")

	configContent := `
server:
  ip: "127.0.0.1"
  port: 8080
log:
  level: "DEBUG"
  dir: "/tmp/logs"
  file: "test.log"
auth:
  secret: "test-secret"
roster:
  cache:
    driver: memory
    ttl: 30m
`

	if err := os.WriteFile(configFile, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	loader := NewLoader().WithPath(configFile).WithDotEnv(false)
	result, err := loader.Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	cfg := result.Config

	if cfg.Server.IP != "127.0.0.1" {
		t.Errorf("expected server IP 127.0.0.1, got %s", cfg.Server.IP)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected server port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Log.Level != "DEBUG" {
		t.Errorf("expected log level DEBUG, got %s", cfg.Log.Level)
	}
	if cfg.Roster.Cache.TTL != 30*time.Minute {
		t.Errorf("expected cache ttl 30m, got %s", cfg.Roster.Cache.TTL)
	}
	// Values absent from the file fall back to defaults.
	if cfg.Roster.APIURL == "" {
		t.Error("expected default roster api_url")
	}
}

func TestLoader_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("DUGOUT_AUTH_SECRET", "env-secret")

	loader := NewLoader().
		WithPath(filepath.Join(t.TempDir(), "absent.yaml")).
		WithDotEnv(false)
	result, err := loader.Load()
	if err != nil {
		t.Fatalf("expected defaults when file is absent, got %v", err)
	}
	if result.Config.Auth.Secret != "env-secret" {
		t.Errorf("expected secret from environment, got %q", result.Config.Auth.Secret)
	}
	if result.Config.Server.Port != DefaultConfig().Server.Port {
		t.Errorf("expected default port, got %d", result.Config.Server.Port)
	}
}

func TestLoader_EnvOverrides(t *testing.T) {
	t.Setenv("DUGOUT_AUTH_SECRET", "from-env")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("DUGOUT_DB_PATH", "/tmp/override.db")

	loader := NewLoader().
		WithPath(filepath.Join(t.TempDir(), "absent.yaml")).
		WithDotEnv(false)
	result, err := loader.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	cfg := result.Config
	if cfg.Auth.Secret != "from-env" {
		t.Errorf("auth secret override not applied: %q", cfg.Auth.Secret)
	}
	if cfg.Scout.OpenAI.APIKey != "sk-test" {
		t.Errorf("openai key override not applied: %q", cfg.Scout.OpenAI.APIKey)
	}
	if cfg.Database.Path != "/tmp/override.db" {
		t.Errorf("db path override not applied: %q", cfg.Database.Path)
	}
}

func TestValidate(t *testing.T) {
	valid := DefaultConfig()
	valid.Auth.Secret = "s"

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid config", func(c *Config) {}, false},
		{"missing secret", func(c *Config) { c.Auth.Secret = "" }, true},
		{"bad port", func(c *Config) { c.Server.Port = -1 }, true},
		{"missing api url", func(c *Config) { c.Roster.APIURL = "" }, true},
		{"zero session ttl", func(c *Config) { c.Auth.SessionTTL = 0 }, true},
		{"redis without addr", func(c *Config) { c.Roster.Cache.Driver = "redis" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Auth.Secret = "s"
			tt.mutate(cfg)

			err := Validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_NilConfig(t *testing.T) {
	if err := Validate(nil); err == nil {
		t.Error("expected error for nil config")
	}
}
