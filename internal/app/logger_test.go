package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestInitLogger(t *testing.T) {
	t.Run("Level from config", func(t *testing.T) {
		logger, err := initLogger("warn")
		require.NoError(t, err)
		assert.False(t, logger.Core().Enabled(zap.InfoLevel))
		assert.True(t, logger.Core().Enabled(zap.WarnLevel))
	})

	t.Run("Unknown level falls back to debug", func(t *testing.T) {
		logger, err := initLogger("loud")
		require.NoError(t, err)
		assert.True(t, logger.Core().Enabled(zap.DebugLevel))
	})

	t.Run("Production", func(t *testing.T) {
		logger, err := initLogger("production")
		require.NoError(t, err)
		assert.False(t, logger.Core().Enabled(zap.DebugLevel))
	})
}
