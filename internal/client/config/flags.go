package config

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/drawioconv/internal/flagx"
)

// parseFlags overlays cfg with command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the conversion service
//	-d int      minimum conversion delay, milliseconds
//	-t int      request timeout, seconds (0 = unbounded)
//	-o string   download directory
//	-l string   log level
//	-nocolor    disable colours
//
// args are filtered with flagx.FilterArgs first so -c/-config and unrelated
// arguments do not break parsing.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-d", "-t", "-o", "-l", "-nocolor"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.ServerBaseURL, "a", cfg.ServerBaseURL, "base URL of the conversion service")
	delay := fs.Int("d", int(cfg.MinConvertDelay.Milliseconds()), "minimum conversion delay (in milliseconds)")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds, 0 = none)")
	fs.StringVar(&cfg.DownloadDir, "o", cfg.DownloadDir, "download directory")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.BoolVar(&cfg.NoColor, "nocolor", cfg.NoColor, "disable coloured output")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	// -d and -t are coarser than the durations they map to, so they only
	// apply when given explicitly.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "d":
			cfg.MinConvertDelay = time.Duration(*delay) * time.Millisecond
		case "t":
			cfg.RequestTimeout = time.Duration(*timeout) * time.Second
		}
	})
	return nil
}
