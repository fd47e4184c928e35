package mail

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tech-arch1tect/idkit/config"
)

func mailTestConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Name: "Test App", URL: "http://localhost:8080"},
		Mail: config.MailConfig{
			Host:        "localhost",
			Port:        1025,
			Encryption:  "none",
			FromAddress: "noreply@example.com",
			FromName:    "Test App",
		},
	}
}

func TestNewService(t *testing.T) {
	t.Run("creates service with valid config", func(t *testing.T) {
		svc, err := NewService(mailTestConfig(), nil)
		require.NoError(t, err)
		assert.NotNil(t, svc)
	})

	t.Run("fails without from address", func(t *testing.T) {
		cfg := mailTestConfig()
		cfg.Mail.FromAddress = ""

		svc, err := NewService(cfg, nil)
		assert.Nil(t, svc)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "FROM_ADDRESS is required")
	})
}

func TestLoadTemplates(t *testing.T) {
	t.Run("loads templates from directory", func(t *testing.T) {
		dir := t.TempDir()
		html := `<p>Verify: {{.VerificationURL}}</p>`
		text := `Verify: {{.VerificationURL}}`
		require.NoError(t, os.WriteFile(filepath.Join(dir, "email_verification.html"), []byte(html), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "email_verification.txt"), []byte(text), 0o644))

		cfg := mailTestConfig()
		cfg.Mail.TemplatesDir = dir

		svc, err := NewService(cfg, nil)
		require.NoError(t, err)
		assert.True(t, svc.hasTemplate("email_verification"))
	})

	t.Run("empty templates dir is not an error", func(t *testing.T) {
		cfg := mailTestConfig()
		cfg.Mail.TemplatesDir = t.TempDir()

		svc, err := NewService(cfg, nil)
		require.NoError(t, err)
		assert.False(t, svc.hasTemplate("email_verification"))
	})
}

func TestRenderTemplate(t *testing.T) {
	dir := t.TempDir()
	text := `Hello {{.Email}}, verify at {{.VerificationURL}} within {{.ExpiryDuration}}.`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "email_verification.txt"), []byte(text), 0o644))

	cfg := mailTestConfig()
	cfg.Mail.TemplatesDir = dir

	svc, err := NewService(cfg, nil)
	require.NoError(t, err)

	t.Run("renders known template", func(t *testing.T) {
		message, err := svc.newMessage()
		require.NoError(t, err)

		err = svc.renderTemplate("email_verification", map[string]any{
			"Email":           "a@example.com",
			"VerificationURL": "http://localhost:8080/auth/verify-email?token=abc",
			"ExpiryDuration":  (24 * time.Hour).String(),
		}, message)
		require.NoError(t, err)
	})

	t.Run("fails for unknown template", func(t *testing.T) {
		message, err := svc.newMessage()
		require.NoError(t, err)

		err = svc.renderTemplate("does_not_exist", nil, message)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}
