package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaults() Config {
	var c Config
	c.LoadDefaults()
	return c
}

func TestLoadDefaults(t *testing.T) {
	c := defaults()

	assert.Equal(t, "http://localhost:5000", c.ServerBaseURL)
	assert.Equal(t, 1*time.Second, c.MinConvertDelay)
	assert.Zero(t, c.RequestTimeout)
	assert.Equal(t, "downloads", c.DownloadDir)
	assert.Equal(t, "info", c.LogLevel)
	assert.False(t, c.NoColor)
	require.NoError(t, c.Validate())
}

func TestLoad_NoSourcesKeepsDefaults(t *testing.T) {
	cfg, err := Load(nil, nil)
	require.NoError(t, err)

	want := defaults()
	if diff := cmp.Diff(want, *cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_Precedence(t *testing.T) {
	path := writeTempJSON(t, "", "", map[string]any{
		"server_base_url":   "http://json.example:1",
		"min_convert_delay": "3s",
		"download_dir":      "from-json",
	})

	environ := []string{
		"DRAWIOCONV_SERVER_URL=http://env.example:2",
		"DRAWIOCONV_LOG_LEVEL=debug",
	}
	args := []string{"-c", path, "-a", "http://flag.example:3"}

	cfg, err := Load(args, environ)
	require.NoError(t, err)

	want := defaults()
	want.ServerBaseURL = "http://flag.example:3"
	want.MinConvertDelay = 3 * time.Second
	want.DownloadDir = "from-json"
	want.LogLevel = "debug"

	if diff := cmp.Diff(want, *cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"bad url", func(c *Config) { c.ServerBaseURL = "not a url" }},
		{"empty url", func(c *Config) { c.ServerBaseURL = "" }},
		{"negative delay", func(c *Config) { c.MinConvertDelay = -time.Second }},
		{"negative timeout", func(c *Config) { c.RequestTimeout = -time.Second }},
		{"empty download dir", func(c *Config) { c.DownloadDir = "" }},
		{"unknown level", func(c *Config) { c.LogLevel = "verbose" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := defaults()
			tt.mutate(&c)
			assert.Error(t, c.Validate())
		})
	}
}

func TestLoad_InvalidResultIsRejected(t *testing.T) {
	_, err := Load([]string{"-l", "loud"}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}
