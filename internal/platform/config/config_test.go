package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"placereview/internal/platform/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(config.KeyAPIKey, "test-key")
	t.Setenv(config.KeyModel, "")
	t.Setenv(config.KeyPort, "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "test-key", cfg.Gemini.APIKey)
	assert.Equal(t, config.DefaultModel, cfg.Gemini.Model)
	assert.Equal(t, 60*time.Second, cfg.Gemini.Timeout)
	assert.Equal(t, 15, cfg.Gemini.RateLimit)
	assert.Equal(t, time.Minute, cfg.Gemini.RateInterval)
	assert.Equal(t, ":8080", cfg.Server.Address())
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv(config.KeyAPIKey, "  key-with-spaces  ")
	t.Setenv(config.KeyModel, "gemini-2.5-flash")
	t.Setenv(config.KeyTimeout, "5s")
	t.Setenv(config.KeyRateLimit, "0")
	t.Setenv(config.KeyRateInterval, "30s")
	t.Setenv(config.KeyPort, "9090")
	t.Setenv(config.KeyLogLevel, "DEBUG")
	t.Setenv(config.KeyLogFormat, "json")
	t.Setenv(config.KeyGinMode, "release")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "key-with-spaces", cfg.Gemini.APIKey)
	assert.Equal(t, "gemini-2.5-flash", cfg.Gemini.Model)
	assert.Equal(t, 5*time.Second, cfg.Gemini.Timeout)
	assert.Equal(t, 0, cfg.Gemini.RateLimit)
	assert.Equal(t, 30*time.Second, cfg.Gemini.RateInterval)
	assert.Equal(t, ":9090", cfg.Server.Address())
	assert.Equal(t, "release", cfg.Server.GinMode)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_MissingAPIKey(t *testing.T) {
	for _, v := range []string{"", "   "} {
		t.Setenv(config.KeyAPIKey, v)

		cfg, err := config.Load()

		assert.Nil(t, cfg)
		assert.ErrorIs(t, err, config.ErrMissingAPIKey)
	}
}

func TestFromViper_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"bad timeout", config.KeyTimeout, "soon"},
		{"zero timeout", config.KeyTimeout, "0s"},
		{"bad interval", config.KeyRateInterval, "-1m"},
		{"bad rate limit", config.KeyRateLimit, "many"},
		{"negative rate limit", config.KeyRateLimit, "-1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			v.Set(config.KeyAPIKey, "k")
			v.Set(config.KeyTimeout, "10s")
			v.Set(config.KeyRateLimit, 1)
			v.Set(config.KeyRateInterval, "1m")
			v.Set(tt.key, tt.value)

			_, err := config.FromViper(v)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestLoadFile_MissingFileFallsBackToEnv(t *testing.T) {
	t.Setenv(config.KeyAPIKey, "env-key")

	cfg, err := config.LoadFile(filepath.Join(t.TempDir(), ".env"))

	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.Gemini.APIKey)
}

func TestLoadFile_MalformedFile(t *testing.T) {
	t.Setenv(config.KeyAPIKey, "env-key")
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("GEMINI_MODEL=\"unterminated\n"), 0o600))

	cfg, err := config.LoadFile(path)

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
	assert.NotErrorIs(t, err, config.ErrMissingAPIKey)
}
