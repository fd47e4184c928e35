package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := &Config{}
	err := LoadConfig(cfg)
	require.NoError(t, err)

	assert.Equal(t, "idkit Application", cfg.App.Name)
	assert.Equal(t, "http://localhost:8080", cfg.App.URL)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 10, cfg.Identity.BcryptCost)
	assert.Equal(t, 32, cfg.Identity.TokenLength)
	assert.Equal(t, 24*time.Hour, cfg.Identity.TokenExpiry)
	assert.Equal(t, "/auth/verify-email", cfg.Identity.VerifyURLPath)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "idkit.db", cfg.Database.DSN)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.False(t, cfg.Mail.Enabled)
	assert.Equal(t, 587, cfg.Mail.Port)
	assert.Equal(t, "starttls", cfg.Mail.Encryption)
}

func TestLoadConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("IDKIT_APP_NAME", "My Service")
	t.Setenv("IDKIT_APP_URL", "https://id.example.com")
	t.Setenv("IDKIT_LOG_LEVEL", "debug")
	t.Setenv("IDKIT_IDENTITY_TOKEN_EXPIRY", "1h30m")
	t.Setenv("IDKIT_IDENTITY_BCRYPT_COST", "12")
	t.Setenv("IDKIT_DATABASE_DRIVER", "postgres")
	t.Setenv("IDKIT_DATABASE_DSN", "host=localhost user=idkit dbname=idkit")
	t.Setenv("IDKIT_MAIL_ENABLED", "true")
	t.Setenv("IDKIT_MAIL_FROM_ADDRESS", "noreply@example.com")

	cfg := &Config{}
	err := LoadConfig(cfg)
	require.NoError(t, err)

	assert.Equal(t, "My Service", cfg.App.Name)
	assert.Equal(t, "https://id.example.com", cfg.App.URL)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 90*time.Minute, cfg.Identity.TokenExpiry)
	assert.Equal(t, 12, cfg.Identity.BcryptCost)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "host=localhost user=idkit dbname=idkit", cfg.Database.DSN)
	assert.True(t, cfg.Mail.Enabled)
	assert.Equal(t, "noreply@example.com", cfg.Mail.FromAddress)
}

func TestLoadConfig_InvalidDuration(t *testing.T) {
	t.Setenv("IDKIT_IDENTITY_TOKEN_EXPIRY", "not-a-duration")

	cfg := &Config{}
	err := LoadConfig(cfg)
	require.Error(t, err)
}
