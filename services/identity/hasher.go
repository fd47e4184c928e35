package identity

import (
	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher wraps bcrypt. Every hash carries its own random salt, and
// bcrypt's compare is constant-time, so verification cost does not depend on
// where a mismatch occurs.
type PasswordHasher struct {
	cost int
}

func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordHasher{cost: cost}
}

func (h *PasswordHasher) Cost() int {
	return h.cost
}

func (h *PasswordHasher) Hash(secret string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), h.cost)
	if err != nil {
		return "", ErrHashingFailed
	}
	return string(hash), nil
}

// Verify returns ErrInvalidCredentials on mismatch; any other failure mode
// (malformed hash) is reported the same way to keep the caller's handling
// uniform.
func (h *PasswordHasher) Verify(secret, hashedValue string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hashedValue), []byte(secret)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}
