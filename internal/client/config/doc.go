// Package config loads runtime configuration for the DrawIO converter CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config (see parseJson).
//  3. Environment variables, after loading a .env file if present
//     (see parseEnv).
//  4. Command-line flags (see parseFlags).
//
// Later sources override earlier ones. The result is validated before use.
//
// Supported flags
//
//	-a string   base URL of the conversion service
//	-d int      minimum visible conversion time after a response (milliseconds)
//	-t int      request timeout in seconds, 0 waits forever
//	-o string   directory downloads are saved to
//	-l string   log level: debug, info, warn, error
//	-nocolor    disable coloured output
//
// Environment
//
//	DRAWIOCONV_SERVER_URL, DRAWIOCONV_MIN_CONVERT_DELAY ("1s"),
//	DRAWIOCONV_REQUEST_TIMEOUT ("30s"), DRAWIOCONV_DOWNLOAD_DIR,
//	DRAWIOCONV_LOG_LEVEL, DRAWIOCONV_NO_COLOR ("true")
//
// # JSON schema
//
// Durations use timex.Duration, so they may be strings like "1s" or integer
// nanoseconds. Absent keys keep the previous value:
//
//	{
//	  "server_base_url": "http://localhost:5000",
//	  "min_convert_delay": "1s",
//	  "request_timeout": "0s",
//	  "download_dir": "downloads",
//	  "log_level": "info",
//	  "no_color": false
//	}
package config
