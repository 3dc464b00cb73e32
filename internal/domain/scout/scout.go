// Package scout generates natural-language player descriptions. Providers
// are pluggable; the static provider is always available and every other
// provider falls back to it rather than failing the page.
package scout

import (
	"context"
	"fmt"

	"dugout-server-go/internal/domain/roster"
)

// Provider produces a description for one player.
type Provider interface {
	Describe(ctx context.Context, player roster.Player) (string, error)
}

// Logger is the minimal logging contract required by scout providers.
type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

// Config carries provider settings.
type Config struct {
	APIKey      string
	BaseURL     string
	ModelName   string
	MaxTokens   int
	Temperature float32
	Logger      Logger
}

// Factory builds a Provider from its config.
type Factory func(cfg *Config) (Provider, error)

var factories = make(map[string]Factory)

// Register adds a named provider factory.
func Register(name string, factory Factory) {
	factories[name] = factory
}

// Create instantiates a registered provider.
func Create(name string, cfg *Config) (Provider, error) {
	factory, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("unknown scout provider: %s", name)
	}
	if cfg == nil {
		cfg = &Config{}
	}
	return factory(cfg)
}
