package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_parseFlags(t *testing.T) {
	t.Run("all flags", func(t *testing.T) {
		cfg := defaults()
		err := parseFlags(&cfg, []string{
			"-a", "http://flag.example:8080",
			"-d", "1500",
			"-t=20",
			"-o", "saved",
			"-l", "warn",
			"-nocolor",
		})
		require.NoError(t, err)

		assert.Equal(t, "http://flag.example:8080", cfg.ServerBaseURL)
		assert.Equal(t, 1500*time.Millisecond, cfg.MinConvertDelay)
		assert.Equal(t, 20*time.Second, cfg.RequestTimeout)
		assert.Equal(t, "saved", cfg.DownloadDir)
		assert.Equal(t, "warn", cfg.LogLevel)
		assert.True(t, cfg.NoColor)
	})

	t.Run("no flags keep values", func(t *testing.T) {
		cfg := defaults()
		require.NoError(t, parseFlags(&cfg, nil))
		assert.Equal(t, defaults(), cfg)
	})

	t.Run("config flag and strangers are ignored", func(t *testing.T) {
		cfg := defaults()
		require.NoError(t, parseFlags(&cfg, []string{"-c", "x.json", "-zzz", "-d", "0"}))
		assert.Zero(t, cfg.MinConvertDelay)
		assert.Equal(t, "http://localhost:5000", cfg.ServerBaseURL)
	})

	t.Run("bad number", func(t *testing.T) {
		cfg := defaults()
		err := parseFlags(&cfg, []string{"-d", "soon"})
		require.Error(t, err)
	})
}

func Test_parseFlags_KeepsSubUnitDurations(t *testing.T) {
	cfg := defaults()
	cfg.RequestTimeout = 1500 * time.Millisecond
	cfg.MinConvertDelay = 1500 * time.Microsecond

	require.NoError(t, parseFlags(&cfg, []string{"-a", "http://x.example"}))
	assert.Equal(t, 1500*time.Millisecond, cfg.RequestTimeout)
	assert.Equal(t, 1500*time.Microsecond, cfg.MinConvertDelay)
}
