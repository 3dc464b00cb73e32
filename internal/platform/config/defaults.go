package config

import "time"

// DefaultConfig returns the configuration used when config.yaml omits a value.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			IP:   "0.0.0.0",
			Port: 8090,
		},
		Log: LogConfig{
			Level: "INFO",
			Dir:   "data/logs",
			File:  "server.log",
		},
		Database: DatabaseConfig{
			Path: "data/dugout.db",
		},
		Auth: AuthConfig{
			Provider:   "credentials",
			SessionTTL: 24 * time.Hour,
			BcryptCost: 10,
		},
		Roster: RosterConfig{
			APIURL:  "https://api.hirefraction.com/api/test/baseball",
			Timeout: 15 * time.Second,
			Cache: CacheConfig{
				Driver: "memory",
				TTL:    time.Hour,
			},
		},
		Scout: ScoutConfig{
			Provider: "openai",
			OpenAI: OpenAIConfig{
				Model:       "gpt-4o-mini",
				MaxTokens:   200,
				Temperature: 0.7,
			},
		},
		Web: WebConfig{
			TemplatesGlob: "web/templates/*.tmpl",
			StaticRoot:    "web/static",
		},
	}
}
