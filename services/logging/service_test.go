package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewService(t *testing.T) {
	t.Run("creates service with json format", func(t *testing.T) {
		svc, err := NewService(Config{Level: Info, Format: "json"})
		require.NoError(t, err)
		assert.NotNil(t, svc.Logger())
	})

	t.Run("creates service with console format", func(t *testing.T) {
		svc, err := NewService(Config{Level: Debug, Format: "console"})
		require.NoError(t, err)
		assert.NotNil(t, svc.Logger())
	})
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		level    LogLevel
		expected zapcore.Level
	}{
		{Debug, zapcore.DebugLevel},
		{Info, zapcore.InfoLevel},
		{Warn, zapcore.WarnLevel},
		{Error, zapcore.ErrorLevel},
		{LogLevel("unknown"), zapcore.InfoLevel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, parseLogLevel(tt.level))
	}
}

func TestNilServiceIsSafe(t *testing.T) {
	var svc *Service

	assert.NotPanics(t, func() {
		svc.Debug("debug")
		svc.Info("info")
		svc.Warn("warn")
		svc.Error("error")
	})
	assert.Nil(t, svc.Logger())
	assert.NoError(t, svc.Sync())
}
