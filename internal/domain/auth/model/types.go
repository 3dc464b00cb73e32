package model

import (
	"context"
	"errors"
)

// User is one registered account as stored by the credential store. The
// PasswordHash field never leaves this package's consumers: handlers only
// ever see an Identity.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	Nickname     string
	Email        string
}

// Credentials is one unvalidated sign-in attempt. Never persisted.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Identity is the hash-free projection of a User that is safe to embed in a
// session token or return to a client.
type Identity struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Nickname string `json:"nickname,omitempty"`
	Email    string `json:"email,omitempty"`
}

// Store is the credential store capability consumed by the authenticator.
// FindByUsername matches the username exactly and case-sensitively, returns
// (nil, nil) when no user exists, and errors only on infrastructure failure.
type Store interface {
	FindByUsername(ctx context.Context, username string) (*User, error)
}

// Logger provides the minimal logging contract required by the auth domain.
type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

var (
	// ErrInvalidCredentials covers malformed input, unknown username, and
	// wrong password alike, so callers cannot tell which part was wrong.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrInvalidToken marks a session token that failed signature
	// verification or expired.
	ErrInvalidToken = errors.New("invalid session token")
)

// Project maps a stored user onto its session-safe identity.
func (u *User) Project() *Identity {
	return &Identity{
		ID:       u.ID,
		Username: u.Username,
		Nickname: u.Nickname,
		Email:    u.Email,
	}
}
