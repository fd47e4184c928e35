package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tech-arch1tect/idkit/internal/options"
	"github.com/tech-arch1tect/idkit/testutils"
)

func TestNew(t *testing.T) {
	t.Run("assembles a working identity service", func(t *testing.T) {
		application := New(options.WithConfig(testutils.GetTestConfig()))
		require.NoError(t, application.Start())
		defer application.Stop()

		require.NotNil(t, application.Config())
		require.NotNil(t, application.DB())
		require.NotNil(t, application.Identity())

		service := application.Identity()
		view, token, err := service.Register("a@example.com", "Alice", "Sup3r$ecret")
		require.NoError(t, err)
		assert.Nil(t, view.EmailVerifiedAt)

		verified, err := service.VerifyEmail(token)
		require.NoError(t, err)
		assert.NotNil(t, verified.EmailVerifiedAt)

		loggedIn, err := service.Login("a@example.com", "Sup3r$ecret")
		require.NoError(t, err)
		assert.Equal(t, view.ID, loggedIn.ID)
	})

	t.Run("migrates extra models", func(t *testing.T) {
		type auditEntry struct {
			ID     uint   `gorm:"primaryKey"`
			Action string `gorm:"not null"`
		}

		application := New(
			options.WithConfig(testutils.GetTestConfig()),
			options.WithModels(&auditEntry{}),
		)
		require.NoError(t, application.Start())
		defer application.Stop()

		assert.True(t, application.DB().Migrator().HasTable(&auditEntry{}))
	})
}
