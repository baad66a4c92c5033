package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/livecheck/pkg/config"
	"github.com/dmitrymomot/livecheck/pkg/logger"
)

type requiredConfig struct {
	Value string `env:"LIVECHECK_TEST_REQUIRED,required"`
}

type cachedConfig struct {
	Value string `env:"LIVECHECK_TEST_CACHED" envDefault:"default"`
}

func TestFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		config.Reset()
		cfg, err := config.FromEnv()
		require.NoError(t, err)
		assert.Equal(t, config.Config{
			LogLevel:     "info",
			LogFormat:    "text",
			EventBuffer:  16,
			AutoValidate: true,
		}, cfg)
	})

	t.Run("environment overrides", func(t *testing.T) {
		config.Reset()
		t.Setenv("LIVECHECK_LOG_LEVEL", "debug")
		t.Setenv("LIVECHECK_LOG_FORMAT", "json")
		t.Setenv("LIVECHECK_EVENT_BUFFER", "4")
		t.Setenv("LIVECHECK_AUTO_VALIDATE", "false")

		cfg, err := config.FromEnv()
		require.NoError(t, err)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, 4, cfg.EventBuffer)
		assert.False(t, cfg.AutoValidate)
		assert.Len(t, cfg.Options(logger.Discard()), 3)
		assert.Len(t, cfg.LoggerOptions(), 2)
	})

	t.Run("invalid values", func(t *testing.T) {
		config.Reset()
		t.Setenv("LIVECHECK_LOG_FORMAT", "xml")
		_, err := config.FromEnv()
		assert.ErrorIs(t, err, config.ErrInvalidConfig)

		config.Reset()
		t.Setenv("LIVECHECK_LOG_FORMAT", "text")
		t.Setenv("LIVECHECK_EVENT_BUFFER", "0")
		_, err = config.FromEnv()
		assert.ErrorIs(t, err, config.ErrInvalidConfig)

		config.Reset()
		t.Setenv("LIVECHECK_EVENT_BUFFER", "many")
		_, err = config.FromEnv()
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("env file", func(t *testing.T) {
		config.Reset()
		// Registered so the variable set by the file is removed afterwards.
		t.Setenv("LIVECHECK_LOG_LEVEL", "")
		require.NoError(t, os.Unsetenv("LIVECHECK_LOG_LEVEL"))

		path := filepath.Join(t.TempDir(), "test.env")
		require.NoError(t, os.WriteFile(path, []byte("LIVECHECK_LOG_LEVEL=warn\n"), 0o600))

		cfg, err := config.FromEnv(path)
		require.NoError(t, err)
		assert.Equal(t, "warn", cfg.LogLevel)
	})

	t.Run("missing env file", func(t *testing.T) {
		_, err := config.FromEnv(filepath.Join(t.TempDir(), "missing.env"))
		assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
	})
}

func TestLoad(t *testing.T) {
	t.Run("cached until reset", func(t *testing.T) {
		config.Reset()
		t.Setenv("LIVECHECK_TEST_CACHED", "first")

		var a cachedConfig
		require.NoError(t, config.Load(&a))
		assert.Equal(t, "first", a.Value)

		t.Setenv("LIVECHECK_TEST_CACHED", "second")
		var b cachedConfig
		require.NoError(t, config.Load(&b))
		assert.Equal(t, "first", b.Value)

		config.Reset()
		require.NoError(t, config.Load(&b))
		assert.Equal(t, "second", b.Value)
	})

	t.Run("missing required value can be retried", func(t *testing.T) {
		config.Reset()
		require.NoError(t, os.Unsetenv("LIVECHECK_TEST_REQUIRED"))

		var cfg requiredConfig
		assert.ErrorIs(t, config.Load(&cfg), config.ErrParsingConfig)
		assert.Panics(t, func() { config.MustLoad(&cfg) })

		t.Setenv("LIVECHECK_TEST_REQUIRED", "set")
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "set", cfg.Value)
	})

	t.Run("nil pointer", func(t *testing.T) {
		assert.ErrorIs(t, config.Load[cachedConfig](nil), config.ErrNilPointer)
	})
}
