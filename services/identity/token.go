package identity

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// DefaultTokenLifetime applies when no expiry is configured.
const DefaultTokenLifetime = 24 * time.Hour

// DefaultTokenLength is the number of random bytes per token: 32 bytes
// hex-encoded yields a 64-character string (256 bits of entropy).
const DefaultTokenLength = 32

// TokenGenerator produces opaque verification tokens and their expiry
// timestamps. Stateless apart from the clock and the random source; the
// clock is swappable for tests.
type TokenGenerator struct {
	length int
	now    func() time.Time
}

func NewTokenGenerator(length int) *TokenGenerator {
	if length <= 0 {
		length = DefaultTokenLength
	}
	return &TokenGenerator{
		length: length,
		now:    time.Now,
	}
}

func (g *TokenGenerator) Generate() (string, error) {
	bytes := make([]byte, g.length)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate secure token: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}

func (g *TokenGenerator) ComputeExpiry(lifetime time.Duration) time.Time {
	if lifetime <= 0 {
		lifetime = DefaultTokenLifetime
	}
	return g.now().Add(lifetime)
}

// Expired reports whether the current time is strictly after expiry.
func (g *TokenGenerator) Expired(expiry time.Time) bool {
	return g.now().After(expiry)
}
