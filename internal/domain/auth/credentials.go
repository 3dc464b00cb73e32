package auth

import (
	"context"
	"errors"
	"strings"

	"dugout-server-go/internal/domain/auth/model"
	platformerrors "dugout-server-go/internal/platform/errors"
)

func init() {
	Register("credentials", NewCredentialsProvider)
}

// credentialsProvider authenticates username/password pairs against the
// credential store. Username matching is exact and case-sensitive.
type credentialsProvider struct {
	store  model.Store
	hasher *PasswordHasher
	logger Logger
}

// NewCredentialsProvider builds the password-based provider.
func NewCredentialsProvider(opts Options) (Provider, error) {
	if opts.Store == nil {
		return nil, errors.New("credentials provider requires a store")
	}
	hasher := opts.Hasher
	if hasher == nil {
		hasher = NewPasswordHasher(DefaultBcryptCost)
	}
	return &credentialsProvider{
		store:  opts.Store,
		hasher: hasher,
		logger: opts.Logger,
	}, nil
}

// Authenticate validates input shape, looks the user up, and verifies the
// password. Malformed input, unknown username, and wrong password all
// collapse into model.ErrInvalidCredentials; only store failures surface as
// distinct errors.
func (p *credentialsProvider) Authenticate(ctx context.Context, creds Credentials) (*Identity, error) {
	username := strings.TrimSpace(creds.Username)
	if username == "" || creds.Password == "" {
		// No store lookup for malformed input.
		return nil, model.ErrInvalidCredentials
	}

	user, err := p.store.FindByUsername(ctx, username)
	if err != nil {
		if p.logger != nil {
			p.logger.Error("[AUTH] credential store lookup failed: %v", err)
		}
		return nil, platformerrors.Wrap(
			platformerrors.KindStorage, "auth.authenticate", "credential store unavailable", err)
	}
	if user == nil {
		return nil, model.ErrInvalidCredentials
	}

	if !p.hasher.Verify(creds.Password, user.PasswordHash) {
		return nil, model.ErrInvalidCredentials
	}

	if p.logger != nil {
		p.logger.Info("[AUTH] user %s authenticated", user.Username)
	}
	return user.Project(), nil
}
