package identity

import (
	"encoding/hex"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenGenerator_Generate(t *testing.T) {
	generator := NewTokenGenerator(32)

	t.Run("produces 64 hex characters", func(t *testing.T) {
		token, err := generator.Generate()
		require.NoError(t, err)
		assert.Len(t, token, 64)

		_, err = hex.DecodeString(token)
		assert.NoError(t, err)
	})

	t.Run("tokens do not repeat", func(t *testing.T) {
		seen := make(map[string]bool)
		for range 100 {
			token, err := generator.Generate()
			require.NoError(t, err)
			assert.False(t, seen[token])
			seen[token] = true
		}
	})

	t.Run("zero length falls back to default", func(t *testing.T) {
		token, err := NewTokenGenerator(0).Generate()
		require.NoError(t, err)
		assert.Len(t, token, DefaultTokenLength*2)
	})
}

func TestTokenGenerator_Expiry(t *testing.T) {
	t.Run("24h expiry is not expired when issued", func(t *testing.T) {
		generator := NewTokenGenerator(32)
		expiry := generator.ComputeExpiry(24 * time.Hour)
		assert.False(t, generator.Expired(expiry))
	})

	t.Run("expired 24 hours and one second later", func(t *testing.T) {
		generator := NewTokenGenerator(32)
		issuedAt := time.Now()
		generator.now = func() time.Time { return issuedAt }

		expiry := generator.ComputeExpiry(24 * time.Hour)
		assert.False(t, generator.Expired(expiry))

		generator.now = func() time.Time { return issuedAt.Add(24*time.Hour + time.Second) }
		assert.True(t, generator.Expired(expiry))
	})

	t.Run("exact expiry instant is still valid", func(t *testing.T) {
		generator := NewTokenGenerator(32)
		issuedAt := time.Now()
		generator.now = func() time.Time { return issuedAt }

		expiry := generator.ComputeExpiry(time.Hour)
		generator.now = func() time.Time { return expiry }
		assert.False(t, generator.Expired(expiry))
	})

	t.Run("non-positive lifetime falls back to 24h default", func(t *testing.T) {
		generator := NewTokenGenerator(32)
		issuedAt := time.Now()
		generator.now = func() time.Time { return issuedAt }

		assert.Equal(t, issuedAt.Add(DefaultTokenLifetime), generator.ComputeExpiry(0))
		assert.Equal(t, issuedAt.Add(DefaultTokenLifetime), generator.ComputeExpiry(-time.Hour))
	})
}
