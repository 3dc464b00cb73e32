package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	platformerrors "dugout-server-go/internal/platform/errors"
)

const defaultConfigPath = "config.yaml"

// Loader reads configuration from a yaml file with environment overrides.
type Loader struct {
	path      string
	useDotEnv bool
}

// NewLoader creates a loader reading from the default config path.
func NewLoader() *Loader {
	return &Loader{
		path:      defaultConfigPath,
		useDotEnv: true,
	}
}

// WithPath overrides the config file location.
func (l *Loader) WithPath(path string) *Loader {
	if path != "" {
		l.path = path
	}
	return l
}

// WithDotEnv toggles loading variables from a .env file before reading config.
func (l *Loader) WithDotEnv(enabled bool) *Loader {
	l.useDotEnv = enabled
	return l
}

// Result captures the loaded configuration and its origin path.
type Result struct {
	Config *Config
	Path   string
}

// Load reads defaults, merges the yaml file when present, applies environment
// overrides for secret material, and validates the result.
func (l *Loader) Load() (*Result, error) {
	if l.useDotEnv {
		if err := godotenv.Load(); err != nil {
			fmt.Println("no .env file found, using system environment")
		}
	}

	cfg := DefaultConfig()

	data, err := os.ReadFile(l.path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, platformerrors.Wrap(
				platformerrors.KindConfig, "config.load", "parse config file", err)
		}
	case os.IsNotExist(err):
		// Defaults plus environment are enough to run.
	default:
		return nil, platformerrors.Wrap(
			platformerrors.KindConfig, "config.load", "read config file", err)
	}

	applyEnvOverrides(cfg)

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return &Result{Config: cfg, Path: l.path}, nil
}

// applyEnvOverrides injects secrets from the environment so they never have
// to live in config.yaml.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("DUGOUT_AUTH_SECRET"); v != "" {
		cfg.Auth.Secret = v
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.Scout.OpenAI.APIKey = v
	}
	if v := os.Getenv("DUGOUT_DB_PATH"); v != "" {
		cfg.Database.Path = v
	}
	if v := os.Getenv("DUGOUT_REDIS_ADDR"); v != "" {
		cfg.Roster.Cache.Redis.Addr = v
	}
}

// Validate rejects configurations the server cannot start with.
func Validate(cfg *Config) error {
	if cfg == nil {
		return platformerrors.New(platformerrors.KindConfig, "config.validate", "config is nil")
	}
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return platformerrors.New(platformerrors.KindConfig, "config.validate",
			fmt.Sprintf("invalid server port: %d", cfg.Server.Port))
	}
	if cfg.Auth.Secret == "" {
		return platformerrors.New(platformerrors.KindConfig, "config.validate",
			"auth secret is required (set DUGOUT_AUTH_SECRET)")
	}
	if cfg.Auth.SessionTTL <= 0 {
		return platformerrors.New(platformerrors.KindConfig, "config.validate",
			"auth session_ttl must be positive")
	}
	if cfg.Roster.APIURL == "" {
		return platformerrors.New(platformerrors.KindConfig, "config.validate",
			"roster api_url is required")
	}
	if cfg.Roster.Cache.Driver == "redis" && cfg.Roster.Cache.Redis.Addr == "" {
		return platformerrors.New(platformerrors.KindConfig, "config.validate",
			"redis cache driver requires an address")
	}
	return nil
}
