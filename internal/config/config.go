// Package config loads settings from the environment and command line flags.
package config

import (
	"errors"
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Color modes for console output.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Log formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config holds command configuration. Flags override the environment.
type Config struct {
	LogLevel  string `env:"TICTACTOE_LOG_LEVEL" envDefault:"warn"`
	LogFormat string `env:"TICTACTOE_LOG_FORMAT" envDefault:"console"`
	Color     string `env:"TICTACTOE_COLOR" envDefault:"auto"`
	Seed      int64  `env:"TICTACTOE_SEED" envDefault:"12345"`
	Workers   int    `env:"TICTACTOE_VERIFY_WORKERS" envDefault:"4"`

	Verify  bool
	Players []string
}

var (
	ErrUsage        = errors.New("two player names are required")
	ErrInvalidColor = errors.New("invalid color mode")
	ErrInvalidFmt   = errors.New("invalid log format")
	ErrWorkers      = errors.New("workers must be positive")
)

// ParseEnv loads configuration from environment variables.
func ParseEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Parse loads the environment, then applies flags and positional
// arguments from args.
func Parse(fs *flag.FlagSet, args []string) (Config, error) {
	cfg, err := ParseEnv()
	if err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (console, json)")
	fs.StringVar(&cfg.Color, "color", cfg.Color, "Colored board glyphs (auto, always, never)")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Seed for computer player names")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "Parallel games when verifying")
	fs.BoolVar(&cfg.Verify, "verify", false, "Play the computer against every scripted opponent and report")
	if args == nil {
		args = []string{}
	}
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	cfg.Players = fs.Args()
	return cfg, cfg.Validate()
}

// Validate checks the settings. Missing player names are reported with
// ErrUsage unless the run only verifies the computer.
func (c Config) Validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidColor, c.Color)
	}
	switch c.LogFormat {
	case FormatConsole, FormatJSON:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidFmt, c.LogFormat)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: %d", ErrWorkers, c.Workers)
	}
	if !c.Verify && len(c.Players) < 2 {
		return ErrUsage
	}
	return nil
}
