// File: level.go
// Title: Log Level Definitions
// Description: Defines the log levels, their names and the threshold check
//              used to filter entries.
// Author: msto63
// Version: v0.2.1
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with standard log levels
// - 2026-10-19 v0.2.0: Dropped console colors
// - 2026-10-19 v0.2.1: Table driven names, no fatal level

package log

import (
	"strings"
)

// Level orders log entries by importance. Entries below the configured
// level are dropped, except for audit entries.
type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	// LevelAudit entries are written at every configured level
	LevelAudit
)

var levelNames = [...]struct {
	long  string
	short string
}{
	LevelTrace: {"trace", "TRC"},
	LevelDebug: {"debug", "DBG"},
	LevelInfo:  {"info", "INF"},
	LevelWarn:  {"warn", "WRN"},
	LevelError: {"error", "ERR"},
	LevelAudit: {"audit", "AUD"},
}

// aliases accepted by ParseLevel besides the long and short names
var levelAliases = map[string]Level{
	"information": LevelInfo,
	"warning":     LevelWarn,
}

func (l Level) known() bool {
	return l >= 0 && int(l) < len(levelNames)
}

// String returns the lower-case name used in JSON and logfmt output
func (l Level) String() string {
	if !l.known() {
		return "unknown"
	}
	return levelNames[l].long
}

// ShortString returns the three letter tag used by the text format
func (l Level) ShortString() string {
	if !l.known() {
		return "???"
	}
	return levelNames[l].short
}

// passes reports whether an entry at level l is written by a logger whose
// threshold is min.
func (l Level) passes(min Level) bool {
	return l == LevelAudit || l >= min
}

// ParseLevel accepts a level name in either form ("warn", "WRN") or an
// alias, ignoring case and surrounding space.
func ParseLevel(level string) (Level, error) {
	name := strings.ToLower(strings.TrimSpace(level))
	if l, ok := levelAliases[name]; ok {
		return l, nil
	}
	for l, n := range levelNames {
		if name == n.long || name == strings.ToLower(n.short) {
			return Level(l), nil
		}
	}
	return LevelInfo, &ParseError{Input: level, Type: "level"}
}

// ParseError is returned for an unknown level or format name.
type ParseError struct {
	Input string
	Type  string
}

func (e *ParseError) Error() string {
	return "invalid " + e.Type + ": " + e.Input
}
