// ============================================================================
// strplus - Unicode String Utilities
// ============================================================================
//
// Package:     version
// Description: Central version management for the library and the CLI
// Author:      msto63
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package version

import "fmt"

// Version constants for the strplus components
const (
	// Release version of the module
	Platform = "0.2.0"

	// Component versions
	Stringx = "0.3.0"
	Config  = "0.2.0"
	Log     = "0.2.0"
	CLI     = "0.2.0"
)

// Commit is set at build time via -ldflags "-X .../version.Commit=<sha>"
var Commit = "dev"

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "stringx":
		return Stringx
	case "config":
		return Config
	case "log":
		return Log
	case "cli":
		return CLI
	default:
		return Platform
	}
}

// String returns the version line printed by "strplus version"
func String() string {
	return fmt.Sprintf("strplus %s (stringx %s, commit %s)", Platform, Stringx, Commit)
}
