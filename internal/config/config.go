/*
PURPOSE:
  Defines the runtime settings of echoer and how they are loaded.
  There are no configuration files; the process environment is the only
  source.

REQUIREMENTS:
  User-specified:
  - No configuration files, no interactive input.

  Implementation-discovered:
  - Diagnostic log level and error coloring must be adjustable without
    touching the command-line grammar, which belongs to the commands.

ARCHITECTURE INTEGRATION:
  - Used by: internal/cli
  - Feeds: internal/output (logger level, console color mode)

ERROR HANDLING:
  - Returns the env library's aggregate error, wrapped, when a value is
    invalid. Callers fall back to DefaultConfig.

IMPLEMENTATION RULES:
  - Config struct tags drive the binding (github.com/caarlos0/env/v11).
  - Only the variables named in the tags are read from the lookup.

USAGE:
  cfg, err := config.Load(os.LookupEnv)

MAINTENANCE:
  - Update when adding new tuning parameters.
*/

package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"

	"github.com/daryltucker/echoer/internal/model"
	"github.com/daryltucker/echoer/internal/output"
)

const (
	EnvLogLevel = "ECHOER_LOG_LEVEL"
	EnvColor    = "ECHOER_COLOR"
	EnvNoColor  = "NO_COLOR"
)

// Config represents the full configuration for echoer.
type Config struct {
	LogLevel slog.Level       `env:"ECHOER_LOG_LEVEL" envDefault:"warn"`
	Color    output.ColorMode `env:"ECHOER_COLOR" envDefault:"auto"`
	// NoColor disables color when non-empty, whatever Color says.
	NoColor string `env:"NO_COLOR"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: slog.LevelWarn,
		Color:    output.ColorAuto,
	}
}

// Load reads configuration from the environment through lookup.
// Unset or empty variables keep their defaults.
func Load(lookup model.LookupFunc) (*Config, error) {
	environ := map[string]string{}
	for _, key := range []string{EnvLogLevel, EnvColor, EnvNoColor} {
		if v, ok := lookup(key); ok && v != "" {
			environ[key] = v
		}
	}

	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Environment: environ}); err != nil {
		return nil, fmt.Errorf("invalid environment configuration: %w", err)
	}
	if cfg.NoColor != "" {
		cfg.Color = output.ColorNever
	}
	return cfg, nil
}
