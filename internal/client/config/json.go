package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/drawioconv/internal/flagx"
	"github.com/dmitrijs2005/drawioconv/internal/timex"
)

// JsonConfig is the DTO used for JSON unmarshalling. Pointer fields tell an
// absent key from a zero value.
type JsonConfig struct {
	ServerBaseURL   *string         `json:"server_base_url"`
	MinConvertDelay *timex.Duration `json:"min_convert_delay"`
	RequestTimeout  *timex.Duration `json:"request_timeout"`
	DownloadDir     *string         `json:"download_dir"`
	LogLevel        *string         `json:"log_level"`
	NoColor         *bool           `json:"no_color"`
}

// parseJson overlays cfg with the JSON file given by -c or -config. Without
// such a flag it does nothing.
func parseJson(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if jc.ServerBaseURL != nil {
		cfg.ServerBaseURL = *jc.ServerBaseURL
	}
	if jc.MinConvertDelay != nil {
		cfg.MinConvertDelay = jc.MinConvertDelay.Duration
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.DownloadDir != nil {
		cfg.DownloadDir = *jc.DownloadDir
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	if jc.NoColor != nil {
		cfg.NoColor = *jc.NoColor
	}
	return nil
}
