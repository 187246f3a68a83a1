// ============================================================================
// strplus - Unicode String Utilities
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating loggers from configuration
// Author:      msto63
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"

	mdwerrors "github.com/msto63/strplus/core/errors"
	mdwlog "github.com/msto63/strplus/core/log"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Logger name, shown in every entry
	Name string

	// Log level (trace, debug, info, warn, error)
	Level string

	// Output format: "json", "text" or "logfmt"
	Format string

	// Destination, stderr when nil
	Output io.Writer

	// Record the calling function, file and line
	EnableCaller bool
}

// DefaultLoggerConfig returns a default configuration. Command line tools
// keep stdout for results, so logs go to stderr and only warnings show.
func DefaultLoggerConfig(name string) LoggerConfig {
	return LoggerConfig{
		Name:   name,
		Level:  "warn",
		Format: "text",
		Output: os.Stderr,
	}
}

// NewLogger creates a Foundation logger from cfg. Unknown levels or formats
// are reported as INVALID_CONFIG errors.
func NewLogger(cfg LoggerConfig) (*mdwlog.Logger, error) {
	level, err := mdwlog.ParseLevel(cfg.Level)
	if err != nil {
		return nil, mdwerrors.ConfigParseError("log.level", err).WithDetail("value", cfg.Level)
	}

	format := mdwlog.FormatText
	if cfg.Format != "" {
		format, err = mdwlog.ParseFormat(cfg.Format)
		if err != nil {
			return nil, mdwerrors.ConfigParseError("log.format", err).WithDetail("value", cfg.Format)
		}
	}

	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}

	return mdwlog.NewWithConfig(mdwlog.Config{
		Level:        level,
		Format:       format,
		Output:       output,
		Name:         cfg.Name,
		EnableCaller: cfg.EnableCaller,
	}), nil
}

// NewSimpleLogger creates a logger with the default configuration
func NewSimpleLogger(name string) *mdwlog.Logger {
	logger, err := NewLogger(DefaultLoggerConfig(name))
	if err != nil {
		// the defaults always parse
		panic(err)
	}
	return logger
}
