// File: config_test.go
// Title: Configuration Module Tests
// Description: Tests for TOML/YAML parsing, defaults, environment variable
//              overrides and typed access.
// Author: msto63
// Version: v0.2.1
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial test implementation
// - 2026-10-19 v0.2.0: LoadOptional and dot-notation defaults
// - 2026-10-19 v0.2.1: Blank path and unknown format errors

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	mdwerror "github.com/msto63/strplus/core/error"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	tempDir := t.TempDir()

	t.Run("load TOML config", func(t *testing.T) {
		path := writeFile(t, tempDir, "strplus.toml", `
[stringx]
delimiter = ";"
skip_empty = true
random_length = 8
trim = "chars:xy"

[log]
level = "debug"
timeout = "30s"
tags = ["a", "b"]
`)

		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Failed to load config: %v", err)
		}

		if got := cfg.GetString("stringx.delimiter"); got != ";" {
			t.Errorf("Expected delimiter ';', got '%s'", got)
		}
		if got := cfg.GetBool("stringx.skip_empty"); !got {
			t.Errorf("Expected skip_empty true, got %v", got)
		}
		if got := cfg.GetInt("stringx.random_length"); got != 8 {
			t.Errorf("Expected random_length 8, got %d", got)
		}
		if got := cfg.GetDuration("log.timeout"); got != 30*time.Second {
			t.Errorf("Expected timeout 30s, got %v", got)
		}
		tags := cfg.GetStringSlice("log.tags")
		if len(tags) != 2 || tags[0] != "a" || tags[1] != "b" {
			t.Errorf("Expected tags [a b], got %v", tags)
		}
		if cfg.Format() != FormatTOML {
			t.Errorf("Expected TOML format, got %v", cfg.Format())
		}
		if cfg.FilePath() != path {
			t.Errorf("Expected file path %s, got %s", path, cfg.FilePath())
		}
	})

	t.Run("load YAML config", func(t *testing.T) {
		path := writeFile(t, tempDir, "strplus.yaml", `
stringx:
  delimiter: "|"
  random_length: 4
  encoding: ISO-8859-1
log:
  format: json
`)

		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Failed to load config: %v", err)
		}

		if got := cfg.GetString("stringx.delimiter"); got != "|" {
			t.Errorf("Expected delimiter '|', got '%s'", got)
		}
		if got := cfg.GetInt("stringx.random_length"); got != 4 {
			t.Errorf("Expected random_length 4, got %d", got)
		}
		if got := cfg.GetString("log.format"); got != "json" {
			t.Errorf("Expected log.format json, got '%s'", got)
		}
		if cfg.Format() != FormatYAML {
			t.Errorf("Expected YAML format, got %v", cfg.Format())
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(tempDir, "missing.toml"))
		if err == nil {
			t.Fatal("Expected error for missing file")
		}
		if !mdwerror.HasCode(err, mdwerror.CodeMissingConfig) {
			t.Errorf("Expected MISSING_CONFIG, got %v", mdwerror.GetCode(err))
		}
	})

	t.Run("invalid TOML", func(t *testing.T) {
		path := writeFile(t, tempDir, "broken.toml", "[stringx\ndelimiter = ")
		_, err := Load(path)
		if err == nil {
			t.Fatal("Expected parse error")
		}
		if !mdwerror.HasCode(err, mdwerror.CodeInvalidConfig) {
			t.Errorf("Expected INVALID_CONFIG, got %v", mdwerror.GetCode(err))
		}
	})

	t.Run("empty path", func(t *testing.T) {
		if _, err := Load("  "); err == nil {
			t.Error("Expected error for empty path")
		}
	})
}

func TestLoadOptional(t *testing.T) {
	defaults := map[string]interface{}{
		"stringx.delimiter":     ",",
		"stringx.random_length": 6,
		"log.level":             "warn",
	}

	t.Run("no file yields defaults", func(t *testing.T) {
		cfg, err := LoadOptional("", LoadOptions{Defaults: defaults})
		if err != nil {
			t.Fatalf("LoadOptional() error = %v", err)
		}
		if got := cfg.GetString("stringx.delimiter"); got != "," {
			t.Errorf("Expected default delimiter ',', got '%s'", got)
		}
		if got := cfg.GetInt("stringx.random_length"); got != 6 {
			t.Errorf("Expected default random_length 6, got %d", got)
		}
	})

	t.Run("file values win over defaults", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "app.toml", "[stringx]\ndelimiter = \";\"\n")
		cfg, err := LoadOptional(path, LoadOptions{Format: FormatAuto, Defaults: defaults})
		if err != nil {
			t.Fatalf("LoadOptional() error = %v", err)
		}
		if got := cfg.GetString("stringx.delimiter"); got != ";" {
			t.Errorf("Expected file delimiter ';', got '%s'", got)
		}
		// sibling defaults in the same section are still merged
		if got := cfg.GetInt("stringx.random_length"); got != 6 {
			t.Errorf("Expected default random_length 6, got %d", got)
		}
		if got := cfg.GetString("log.level"); got != "warn" {
			t.Errorf("Expected default log.level warn, got '%s'", got)
		}
	})
}

func TestEnvironmentOverride(t *testing.T) {
	t.Setenv("STRPLUSTEST_STRINGX_DELIMITER", "#")
	t.Setenv("STRPLUSTEST_STRINGX_RANDOM_LENGTH", "12")
	t.Setenv("STRPLUSTEST_STRINGX_SKIP_EMPTY", "true")
	t.Setenv("STRPLUSTEST_STRINGX_ENCODING", "")

	cfg, err := LoadFromStringWithOptions(`
[stringx]
delimiter = ","
random_length = 6
encoding = "UTF-8"
`, LoadOptions{Format: FormatTOML, EnvPrefix: "strplustest"})
	if err != nil {
		t.Fatalf("LoadFromStringWithOptions() error = %v", err)
	}

	tests := []struct {
		name string
		got  interface{}
		want interface{}
	}{
		{"string override", cfg.GetString("stringx.delimiter"), "#"},
		{"int override", cfg.GetInt("stringx.random_length"), 12},
		{"bool override", cfg.GetBool("stringx.skip_empty"), true},
		{"empty variable ignored", cfg.GetString("stringx.encoding"), "UTF-8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}

	if !cfg.Has("stringx.skip_empty") {
		t.Error("Has() should report keys provided by the environment")
	}
}

func TestGettersDefaults(t *testing.T) {
	cfg, err := LoadFromString("", FormatTOML)
	if err != nil {
		t.Fatalf("LoadFromString() error = %v", err)
	}

	if got := cfg.GetString("missing", "fallback"); got != "fallback" {
		t.Errorf("GetString default = %q", got)
	}
	if got := cfg.GetInt("missing", 7); got != 7 {
		t.Errorf("GetInt default = %d", got)
	}
	if got := cfg.GetBool("missing", true); !got {
		t.Errorf("GetBool default = %v", got)
	}
	if got := cfg.GetFloat("missing", 1.5); got != 1.5 {
		t.Errorf("GetFloat default = %v", got)
	}
	if got := cfg.GetDuration("missing", time.Second); got != time.Second {
		t.Errorf("GetDuration default = %v", got)
	}
	if got := cfg.GetStringSlice("missing", []string{"x"}); len(got) != 1 || got[0] != "x" {
		t.Errorf("GetStringSlice default = %v", got)
	}
	if cfg.Has("missing") {
		t.Error("Has() should be false for missing keys")
	}
}

func TestSetAndGetAll(t *testing.T) {
	cfg, err := LoadFromString("stringx:\n  delimiter: \",\"\n", FormatYAML)
	if err != nil {
		t.Fatalf("LoadFromString() error = %v", err)
	}

	cfg.Set("stringx.trim.mode", "none")
	if got := cfg.GetString("stringx.trim.mode"); got != "none" {
		t.Errorf("Expected nested value 'none', got '%s'", got)
	}

	all := cfg.GetAll()
	stringx, ok := all["stringx"].(map[string]interface{})
	if !ok {
		t.Fatalf("Expected stringx section map, got %T", all["stringx"])
	}
	stringx["delimiter"] = "changed"

	if got := cfg.GetString("stringx.delimiter"); got != "," {
		t.Errorf("GetAll() must return a copy, delimiter is now '%s'", got)
	}
}

func TestFormatString(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{FormatTOML, "toml"},
		{FormatYAML, "yaml"},
		{FormatAuto, "auto"},
		{Format(42), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.format.String(); got != tt.want {
			t.Errorf("Format(%d).String() = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestLoadRejectsBadArguments(t *testing.T) {
	if _, err := Load("  "); !mdwerror.HasCode(err, mdwerror.CodeValidationFailed) {
		t.Errorf("Load(blank) error = %v, want VALIDATION_FAILED", err)
	}

	path := writeFile(t, t.TempDir(), "strplus.toml", "[stringx]\ndelimiter = \";\"\n")
	if _, err := LoadWithOptions(path, LoadOptions{Format: Format(42)}); !mdwerror.HasCode(err, mdwerror.CodeInvalidFormat) {
		t.Errorf("LoadWithOptions(unknown format) error = %v, want INVALID_FORMAT", err)
	}
	if _, err := LoadFromString("a = 1", Format(42)); !mdwerror.HasCode(err, mdwerror.CodeInvalidFormat) {
		t.Errorf("LoadFromString(unknown format) error = %v, want INVALID_FORMAT", err)
	}
}
