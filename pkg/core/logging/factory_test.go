package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	mdwerror "github.com/msto63/strplus/core/error"
	mdwlog "github.com/msto63/strplus/core/log"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(LoggerConfig{
		Name:   "strplus-test",
		Level:  "debug",
		Format: "json",
		Output: &buf,
	})
	if err != nil {
		t.Fatalf("NewLogger() error = %v", err)
	}

	if logger.GetLevel() != mdwlog.LevelDebug {
		t.Errorf("Expected level debug, got %v", logger.GetLevel())
	}

	logger.Debug("hello", mdwlog.Int("tokens", 3))

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Expected JSON output, got %q: %v", buf.String(), err)
	}
	if entry["message"] != "hello" {
		t.Errorf("Expected message 'hello', got %v", entry["message"])
	}
	if entry["logger"] != "strplus-test" {
		t.Errorf("Expected logger name 'strplus-test', got %v", entry["logger"])
	}
}

func TestNewLoggerDefaultsToText(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(LoggerConfig{Level: "info", Output: &buf})
	if err != nil {
		t.Fatalf("NewLogger() error = %v", err)
	}

	logger.Info("plain")
	if strings.HasPrefix(buf.String(), "{") {
		t.Errorf("Expected text output, got %q", buf.String())
	}
	if !strings.Contains(buf.String(), "plain") {
		t.Errorf("Expected message in output, got %q", buf.String())
	}
}

func TestNewLoggerInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  LoggerConfig
	}{
		{"invalid level", LoggerConfig{Level: "loud"}},
		{"invalid format", LoggerConfig{Level: "info", Format: "xml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLogger(tt.cfg)
			if err == nil {
				t.Fatal("Expected error")
			}
			if !mdwerror.HasCode(err, mdwerror.CodeInvalidConfig) {
				t.Errorf("Expected INVALID_CONFIG, got %s", mdwerror.GetCode(err))
			}
		})
	}
}

func TestDefaultLoggerConfig(t *testing.T) {
	cfg := DefaultLoggerConfig("strplus")
	if cfg.Level != "warn" || cfg.Format != "text" || cfg.Output == nil {
		t.Errorf("Unexpected defaults: %+v", cfg)
	}

	if NewSimpleLogger("strplus").GetLevel() != mdwlog.LevelWarn {
		t.Error("NewSimpleLogger should log at warn level")
	}
}
