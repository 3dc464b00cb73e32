package config

import (
	"time"
)

// Config is the root configuration, loaded once at startup and injected into
// every component. Domain code never reads the environment directly.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Roster   RosterConfig   `yaml:"roster"`
	Scout    ScoutConfig    `yaml:"scout"`
	Web      WebConfig      `yaml:"web"`
}

type ServerConfig struct {
	IP   string `yaml:"ip"`
	Port int    `yaml:"port"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	Dir   string `yaml:"dir"`
	File  string `yaml:"file"`
}

type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// AuthConfig selects the authentication provider and session parameters.
type AuthConfig struct {
	Provider   string         `yaml:"provider"`
	Secret     string         `yaml:"secret"`
	SessionTTL time.Duration  `yaml:"session_ttl"`
	BcryptCost int            `yaml:"bcrypt_cost"`
	Seed       SeedUserConfig `yaml:"seed"`
}

// SeedUserConfig provisions a single user at startup when all fields are set.
// PasswordHash is a bcrypt hash, typically produced with cmd/hashpw.
type SeedUserConfig struct {
	Username     string `yaml:"username"`
	PasswordHash string `yaml:"password_hash"`
	Nickname     string `yaml:"nickname"`
	Email        string `yaml:"email"`
}

// RosterConfig describes the upstream stats API and its cache.
type RosterConfig struct {
	APIURL  string        `yaml:"api_url"`
	Timeout time.Duration `yaml:"timeout"`
	Cache   CacheConfig   `yaml:"cache"`
}

type CacheConfig struct {
	Driver string        `yaml:"driver"`
	TTL    time.Duration `yaml:"ttl"`
	Redis  RedisConfig   `yaml:"redis"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Username string `yaml:"username,omitempty"`
	Password string `yaml:"password,omitempty"`
	DB       int    `yaml:"db,omitempty"`
	Prefix   string `yaml:"prefix,omitempty"`
}

// ScoutConfig selects the player description provider.
type ScoutConfig struct {
	Provider string       `yaml:"provider"`
	OpenAI   OpenAIConfig `yaml:"openai"`
}

type OpenAIConfig struct {
	APIKey      string  `yaml:"api_key"`
	BaseURL     string  `yaml:"base_url"`
	Model       string  `yaml:"model"`
	MaxTokens   int     `yaml:"max_tokens"`
	Temperature float32 `yaml:"temperature"`
}

type WebConfig struct {
	TemplatesGlob string `yaml:"templates_glob"`
	StaticRoot    string `yaml:"static_root"`
}
