// File: doc.go
// Title: Configuration Management Package Documentation
// Description: Package config provides configuration loading for strplus
//              from TOML and YAML sources with environment overrides.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-19 v0.2.0: Dot-notation defaults and LoadOptional

/*
Package config provides map-backed configuration for strplus.

Key Features:
  • TOML and YAML support with detection by file extension
  • Defaults keyed by dot-notation paths, merged below file values
  • Environment overrides (PREFIX_SECTION_KEY) checked before file values
  • Thread-safe typed getters with optional fallback values

# Basic Configuration Loading

	cfg, err := config.LoadOptional(path, config.LoadOptions{
		EnvPrefix: "STRPLUS",
		Defaults: map[string]interface{}{
			"stringx.delimiter": ",",
			"stringx.random_length": 6,
		},
	})
	if err != nil {
		return err
	}

	delimiter := cfg.GetString("stringx.delimiter")
	length := cfg.GetInt("stringx.random_length")

With the prefix STRPLUS the key stringx.delimiter can be overridden by the
environment variable STRPLUS_STRINGX_DELIMITER. Empty variables are ignored.

# Errors

A missing file yields a MISSING_CONFIG error, unparsable content an
INVALID_CONFIG error, both built through core/errors.
*/
package config
