// Package config loads and validates module configuration.
//
// The hook entry points never read argv, environment variables or files
// themselves; deployments point the module at an optional YAML file whose
// values override the compiled-in defaults.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/pamnotify-dev/pamnotify/application/relay"
)

// Options is the full configuration surface of the module.
type Options struct {
	Endpoint  string `yaml:"endpoint" validate:"required,url"`
	UserAgent string `yaml:"user_agent" validate:"required"`
	TimeoutMs int    `yaml:"timeout_ms" validate:"gte=0"`
	LogLevel  string `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
}

// Default returns the compiled-in configuration.
func Default() Options {
	return Options{
		Endpoint:  relay.DefaultEndpoint,
		UserAgent: relay.DefaultUserAgent,
		TimeoutMs: int(relay.DefaultTimeout / time.Millisecond),
		LogLevel:  "info",
	}
}

// validate is a package-level singleton; creating a new validator on each
// call is expensive and reusing one is recommended.
var validate = validator.New()

// Validate checks the options against their validation tags.
func (o Options) Validate() error {
	if err := validate.Struct(o); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// Load reads options from a YAML file merged over the defaults and
// validates the result.
func Load(path string) (Options, error) {
	o := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return o, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &o); err != nil {
		return o, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := o.Validate(); err != nil {
		return o, err
	}
	return o, nil
}

// Timeout returns the delivery timeout as a duration.
func (o Options) Timeout() time.Duration {
	return time.Duration(o.TimeoutMs) * time.Millisecond
}

// Level maps the configured log level onto slog's levels. Unknown values
// fall back to info; Validate rejects them up front.
func (o Options) Level() slog.Level {
	switch o.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
