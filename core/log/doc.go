// File: doc.go
// Title: Package Documentation for log
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19

// Package log provides structured, leveled logging for strplus.
//
// Loggers are immutable from the caller's point of view: WithName,
// WithField, WithCorrelationID and friends return copies, so a base logger
// can be shared and specialised per command:
//
//	logger := log.NewWithConfig(log.Config{
//	    Level:  log.LevelDebug,
//	    Format: log.FormatText,
//	    Output: os.Stderr,
//	    Name:   "strplus",
//	})
//	logger.WithCorrelationID(id).Debug("explode", log.Int("tokens", n))
//
// LogError inspects structured errors and picks the level from their
// severity, attaching code, operation and details as fields.
package log
