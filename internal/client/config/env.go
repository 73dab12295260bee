package config

import (
	"fmt"
	"strconv"
	"time"

	env "github.com/Netflix/go-env"
)

type envConfig struct {
	ServerBaseURL   string `env:"DRAWIOCONV_SERVER_URL"`
	MinConvertDelay string `env:"DRAWIOCONV_MIN_CONVERT_DELAY"`
	RequestTimeout  string `env:"DRAWIOCONV_REQUEST_TIMEOUT"`
	DownloadDir     string `env:"DRAWIOCONV_DOWNLOAD_DIR"`
	LogLevel        string `env:"DRAWIOCONV_LOG_LEVEL"`
	NoColor         string `env:"DRAWIOCONV_NO_COLOR"`
}

// parseEnv overlays cfg with the DRAWIOCONV_* variables found in environ.
// Empty variables are ignored.
func parseEnv(cfg *Config, environ []string) error {
	es, err := env.EnvironToEnvSet(environ)
	if err != nil {
		return fmt.Errorf("read environment: %w", err)
	}

	var ec envConfig
	if err := env.Unmarshal(es, &ec); err != nil {
		return fmt.Errorf("decode environment: %w", err)
	}

	if ec.ServerBaseURL != "" {
		cfg.ServerBaseURL = ec.ServerBaseURL
	}
	if ec.MinConvertDelay != "" {
		d, err := time.ParseDuration(ec.MinConvertDelay)
		if err != nil {
			return fmt.Errorf("DRAWIOCONV_MIN_CONVERT_DELAY: %w", err)
		}
		cfg.MinConvertDelay = d
	}
	if ec.RequestTimeout != "" {
		d, err := time.ParseDuration(ec.RequestTimeout)
		if err != nil {
			return fmt.Errorf("DRAWIOCONV_REQUEST_TIMEOUT: %w", err)
		}
		cfg.RequestTimeout = d
	}
	if ec.DownloadDir != "" {
		cfg.DownloadDir = ec.DownloadDir
	}
	if ec.LogLevel != "" {
		cfg.LogLevel = ec.LogLevel
	}
	if ec.NoColor != "" {
		b, err := strconv.ParseBool(ec.NoColor)
		if err != nil {
			return fmt.Errorf("DRAWIOCONV_NO_COLOR: %w", err)
		}
		cfg.NoColor = b
	}
	return nil
}
