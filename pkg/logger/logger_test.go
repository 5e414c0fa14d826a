package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IamTheLime/airbyte/internal/config"
)

func TestConfigure(t *testing.T) {
	t.Run("JSON to stderr", func(t *testing.T) {
		log := logrus.New()
		err := configure(log, config.LogConfig{Level: "debug", Format: "json", Output: "stderr"})
		require.NoError(t, err)
		assert.Equal(t, logrus.DebugLevel, log.GetLevel())
		assert.IsType(t, &logrus.JSONFormatter{}, log.Formatter)
		assert.Equal(t, os.Stderr, log.Out)
	})

	t.Run("Rotated file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "console.log")
		log := logrus.New()
		require.NoError(t, configure(log, config.LogConfig{Level: "warn", Output: "file", File: path}))

		log.Warn("written")
		_, err := os.Stat(path)
		assert.NoError(t, err)
	})

	t.Run("Invalid values", func(t *testing.T) {
		assert.Error(t, configure(logrus.New(), config.LogConfig{Level: "loud"}))
		assert.Error(t, configure(logrus.New(), config.LogConfig{Format: "xml"}))
		assert.Error(t, configure(logrus.New(), config.LogConfig{Output: "syslog"}))
		assert.Error(t, configure(logrus.New(), config.LogConfig{Output: "file"}))
	})
}
