// Package config provides configuration management for the sqlparse CLI.
//
// Configuration is merged from four sources. Precedence (highest to
// lowest): flags > environment variables > config file > defaults.
package config

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/leapstack-labs/sqlparse/pkg/dialect"
)

// Config holds all CLI configuration options.
type Config struct {
	Dialect        string `koanf:"dialect"`
	OutputFormat   string `koanf:"output"`
	Verbose        bool   `koanf:"verbose"`
	RecursionLimit int    `koanf:"recursion_limit"`
}

// Default configuration values.
const (
	DefaultDialect = "generic"
	DefaultOutput  = "text"
)

// loggerKey is used to store the logger in a command context.
type loggerKey struct{}

// LoggerKey returns the context key used for storing the logger.
// Shared between the cli and commands packages to avoid an import cycle.
func LoggerKey() interface{} {
	return loggerKey{}
}

// GetLogger retrieves the logger from the command context.
func GetLogger(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}
	// Discard logger as safe fallback
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if _, ok := dialect.Get(c.Dialect); !ok {
		return fmt.Errorf("unknown dialect %q (known: %v)", c.Dialect, dialect.List())
	}
	switch c.OutputFormat {
	case "text", "json":
	default:
		return fmt.Errorf("invalid output format %q (expected text or json)", c.OutputFormat)
	}
	if c.RecursionLimit < 0 {
		return fmt.Errorf("recursion_limit must be non-negative, got %d", c.RecursionLimit)
	}
	return nil
}

// ResolveDialect returns the registered dialect named by the config.
// Validate must have been called first; this falls back to the default
// dialect rather than failing.
func (c *Config) ResolveDialect() *dialect.Dialect {
	if d, ok := dialect.Get(c.Dialect); ok {
		return d
	}
	d, _ := dialect.Get(DefaultDialect)
	return d
}
