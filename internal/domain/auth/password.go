package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// DefaultBcryptCost matches the cost used by the provisioning tooling. The
// cost is a configuration constant, never derived from input.
const DefaultBcryptCost = 10

// PasswordHasher hashes and verifies passwords with bcrypt. The zero cost
// value falls back to DefaultBcryptCost.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher builds a hasher with the given work factor.
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}
	return &PasswordHasher{cost: cost}
}

// Hash derives a salted hash of plain. Each call uses a fresh random salt, so
// hashing the same password twice yields different strings.
func (h *PasswordHasher) Hash(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether plain matches the stored hash. The cost factor is
// read from the hash itself, so hashes produced with older costs keep
// verifying.
func (h *PasswordHasher) Verify(plain, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(plain)) == nil
}
