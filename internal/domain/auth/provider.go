package auth

import (
	"context"
	"fmt"

	"dugout-server-go/internal/domain/auth/model"
)

type (
	// Credentials re-exports the shared auth entity for callers.
	Credentials = model.Credentials
	// Identity re-exports the session-safe user projection.
	Identity = model.Identity
	// Logger re-exports the logging interface used across the domain.
	Logger = model.Logger
)

// Provider turns submitted credentials into an authenticated identity or a
// rejection. Implementations return model.ErrInvalidCredentials for every
// expected rejection path and reserve other errors for infrastructure
// failure.
type Provider interface {
	Authenticate(ctx context.Context, creds Credentials) (*Identity, error)
}

// Options carries the collaborators available to provider factories.
type Options struct {
	Store  model.Store
	Hasher *PasswordHasher
	Logger Logger
}

// Factory builds a Provider from shared options.
type Factory func(opts Options) (Provider, error)

var factories = make(map[string]Factory)

// Register adds a named provider factory.
func Register(name string, factory Factory) {
	factories[name] = factory
}

// Create instantiates a registered provider.
func Create(name string, opts Options) (Provider, error) {
	factory, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("unknown auth provider: %s", name)
	}
	return factory(opts)
}
