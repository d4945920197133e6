package core_test

import (
	"testing"

	"package-tracking-service/config"
	"package-tracking-service/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger(t *testing.T) {
	t.Run("writes to a rotating file", func(t *testing.T) {
		logger, err := core.NewLogger(config.Config{LogLevel: "debug", LogsDirectory: t.TempDir()})
		require.NoError(t, err)
		assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("falls back to stdout", func(t *testing.T) {
		logger, err := core.NewLogger(config.Config{LogLevel: "warn"})
		require.NoError(t, err)
		assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	})

	t.Run("rejects unknown level", func(t *testing.T) {
		_, err := core.NewLogger(config.Config{LogLevel: "loud"})
		require.Error(t, err)
	})
}
