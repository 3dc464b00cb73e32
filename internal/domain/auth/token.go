package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"dugout-server-go/internal/domain/auth/model"
)

// SessionClaims are the JWT claims carried by a session token. Together with
// the registered expiry they are the only data trusted to reconstruct the
// identity on later requests; the credential store is not re-queried.
type SessionClaims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies stateless session tokens.
type TokenIssuer struct {
	secretKey []byte
	ttl       time.Duration
}

// NewTokenIssuer builds a token issuer using the provided secret.
func NewTokenIssuer(secretKey string, ttl time.Duration) (*TokenIssuer, error) {
	if secretKey == "" {
		return nil, errors.New("token issuer requires a secret key")
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenIssuer{
		secretKey: []byte(secretKey),
		ttl:       ttl,
	}, nil
}

// Issue signs a session token for the authenticated identity.
func (ti *TokenIssuer) Issue(identity *Identity) (string, error) {
	if identity == nil {
		return "", errors.New("cannot issue token for nil identity")
	}

	now := time.Now()
	claims := SessionClaims{
		UserID:   identity.ID,
		Username: identity.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ti.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(ti.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Resolve verifies a session token and reconstructs the identity it carries.
// Tampered, expired, or otherwise malformed tokens yield
// model.ErrInvalidToken. Verification fails closed: nothing from an
// unverified token is ever trusted.
func (ti *TokenIssuer) Resolve(tokenString string) (*Identity, error) {
	claims := &SessionClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return ti.secretKey, nil
	})
	if err != nil {
		return nil, model.ErrInvalidToken
	}
	if !token.Valid || claims.UserID == "" {
		return nil, model.ErrInvalidToken
	}

	return &Identity{
		ID:       claims.UserID,
		Username: claims.Username,
	}, nil
}

// TTL reports the configured token lifetime.
func (ti *TokenIssuer) TTL() time.Duration {
	return ti.ttl
}
