package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

// Runtime holds the process settings of the CLI, as opposed to the site's
// content configuration.
type Runtime struct {
	Addr      string     `env:"LANDING_ADDR" envDefault:":3000"`
	LogLevel  slog.Level `env:"LANDING_LOG_LEVEL" envDefault:"INFO"`
	LogFormat string     `env:"LANDING_LOG_FORMAT" envDefault:"text"`

	// Tracing is opt-in: spans are only exported when OTelEndpoint is set
	// and OTelEnabled isn't false.
	OTelEndpoint string `env:"LANDING_OTEL_ENDPOINT"`
	OTelEnabled  bool   `env:"LANDING_OTEL_ENABLED" envDefault:"true"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadRuntime parses the process settings from the environment.
func LoadRuntime() (Runtime, error) {
	var rt Runtime
	if err := ParseEnv(&rt); err != nil {
		return Runtime{}, err
	}
	return rt, nil
}
