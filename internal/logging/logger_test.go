package logging

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/matthieukhl/swiftcart/internal/config"
)

func TestNew(t *testing.T) {
	t.Run("ParsesLevel", func(t *testing.T) {
		logger, err := New(config.LogConfig{Level: "debug"})
		require.NoError(t, err)
		require.True(t, logger.Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("RejectsUnknownLevel", func(t *testing.T) {
		_, err := New(config.LogConfig{Level: "loud"})
		require.Error(t, err)
	})

	t.Run("OrNopNeverNil", func(t *testing.T) {
		require.NotNil(t, OrNop(nil))
	})
}
