package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"dugout-server-go/internal/domain/auth/model"
)

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer, err := NewTokenIssuer("super-secret", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenIssuer error: %v", err)
	}

	token, err := issuer.Issue(&Identity{ID: "u1", Username: "alice"})
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	identity, err := issuer.Resolve(token)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if identity.ID != "u1" {
		t.Errorf("id mismatch: got %q want %q", identity.ID, "u1")
	}
	if identity.Username != "alice" {
		t.Errorf("username mismatch: got %q want %q", identity.Username, "alice")
	}
}

func TestTokenIssuer_TamperedSignature(t *testing.T) {
	issuer, err := NewTokenIssuer("super-secret", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenIssuer error: %v", err)
	}

	token, err := issuer.Issue(&Identity{ID: "u1", Username: "alice"})
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	// Flip one byte of the signature segment.
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %q", token)
	}
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	if _, err := issuer.Resolve(tampered); err != model.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for tampered signature, got %v", err)
	}
}

func TestTokenIssuer_ExpiredToken(t *testing.T) {
	secret := "super-secret"
	issuer, err := NewTokenIssuer(secret, time.Hour)
	if err != nil {
		t.Fatalf("NewTokenIssuer error: %v", err)
	}

	// Construct a token with an expiry in the past, signed with the right key.
	claims := SessionClaims{
		UserID:   "u1",
		Username: "alice",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign expired token: %v", err)
	}

	if _, err := issuer.Resolve(expired); err != model.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestTokenIssuer_WrongSecret(t *testing.T) {
	right, err := NewTokenIssuer("right-secret", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenIssuer error: %v", err)
	}
	wrong, err := NewTokenIssuer("wrong-secret", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenIssuer error: %v", err)
	}

	token, err := right.Issue(&Identity{ID: "u1", Username: "alice"})
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	if _, err := wrong.Resolve(token); err != model.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestTokenIssuer_MalformedToken(t *testing.T) {
	issuer, err := NewTokenIssuer("super-secret", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenIssuer error: %v", err)
	}

	if _, err := issuer.Resolve("not.a.jwt"); err != model.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for malformed token, got %v", err)
	}
}

func TestNewTokenIssuer_RequiresSecret(t *testing.T) {
	if _, err := NewTokenIssuer("", time.Hour); err == nil {
		t.Fatal("expected error for empty secret")
	}
}

func TestNewTokenIssuer_DefaultTTL(t *testing.T) {
	issuer, err := NewTokenIssuer("secret", 0)
	if err != nil {
		t.Fatalf("NewTokenIssuer error: %v", err)
	}
	if issuer.TTL() != 24*time.Hour {
		t.Errorf("expected 24h default TTL, got %s", issuer.TTL())
	}
}
