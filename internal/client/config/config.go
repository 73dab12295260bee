package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds runtime settings for the converter CLI.
//
// Fields:
//   - ServerBaseURL: origin of the conversion service; /upload and /download
//     are resolved against it.
//   - MinConvertDelay: how long a successful conversion keeps showing
//     "converting" after the response arrived.
//   - RequestTimeout: bound on each service request; 0 means unbounded.
//   - DownloadDir: where downloaded archives are written.
type Config struct {
	ServerBaseURL   string        `validate:"required,url"`
	MinConvertDelay time.Duration `validate:"min=0"`
	RequestTimeout  time.Duration `validate:"min=0"`
	DownloadDir     string        `validate:"required"`
	LogLevel        string        `validate:"oneof=debug info warn error"`
	NoColor         bool
}

var validate = validator.New()

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:5000"
	c.MinConvertDelay = 1 * time.Second
	c.RequestTimeout = 0
	c.DownloadDir = "downloads"
	c.LogLevel = "info"
	c.NoColor = false
}

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Load builds a Config from defaults, then the JSON file named in args,
// then environ, then the flags in args.
func Load(args []string, environ []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg, environ); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfig loads a .env file from the working directory when there is one,
// then calls Load with the process arguments and environment.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()
	return Load(os.Args[1:], os.Environ())
}
