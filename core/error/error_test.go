// File: error_test.go
// Title: Error Module Tests
// Description: Tests for error creation, wrapping, codes, severity and
//              chain inspection.
// Author: msto63
// Version: v0.2.1
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive test coverage
// - 2026-10-19 v0.2.0: Chain-aware HasCode tests
// - 2026-10-19 v0.2.1: Truncation and stack start tests

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	msg := "test error message"
	err := New(msg)

	if err == nil {
		t.Fatal("New() returned nil")
	}

	if err.Error() != msg {
		t.Errorf("Error() = %q, want %q", err.Error(), msg)
	}

	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}

	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}

	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should not be zero")
	}

	if len(err.StackTrace()) == 0 {
		t.Error("StackTrace() should not be empty")
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		message  string
		wantNil  bool
		wantMsg  string
		wantCode Code
	}{
		{
			name:    "wrap nil error",
			err:     nil,
			message: "wrapper message",
			wantNil: true,
		},
		{
			name:     "wrap standard error",
			err:      errors.New("original error"),
			message:  "wrapper message",
			wantMsg:  "wrapper message: original error",
			wantCode: CodeUnknown,
		},
		{
			name:     "wrap structured error keeps code",
			err:      New("bad encoding").WithCode(CodeInvalidArgument),
			message:  "capitalize failed",
			wantMsg:  "capitalize failed: bad encoding",
			wantCode: CodeInvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := Wrap(tt.err, tt.message)
			if tt.wantNil {
				if wrapped != nil {
					t.Errorf("Wrap(nil) = %v, want nil", wrapped)
				}
				return
			}
			if wrapped.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", wrapped.Error(), tt.wantMsg)
			}
			if wrapped.Code() != tt.wantCode {
				t.Errorf("Code() = %v, want %v", wrapped.Code(), tt.wantCode)
			}
			if !errors.Is(wrapped, tt.err) {
				t.Error("errors.Is should find the wrapped cause")
			}
		})
	}
}

func TestWrapChainTruncation(t *testing.T) {
	var err error = New("root")
	for i := 0; i < MaxErrorChainDepth+2; i++ {
		err = Wrap(err, fmt.Sprintf("level %d", i))
	}

	mdwErr, ok := As(err)
	if !ok {
		t.Fatal("As() should find *Error")
	}
	if depth := chainDepth(mdwErr); depth > MaxErrorChainDepth {
		t.Errorf("chain depth = %d, want <= %d", depth, MaxErrorChainDepth)
	}
}

func TestWrapTruncationKeepsRootMessage(t *testing.T) {
	var err error = errors.New("root")
	for i := 0; i < MaxErrorChainDepth-1; i++ {
		err = Wrap(err, fmt.Sprintf("level %d", i))
	}

	truncated := Wrap(err, "top")
	if truncated.Unwrap() != nil {
		t.Error("truncated error should not keep the chain")
	}
	if !strings.HasSuffix(truncated.Error(), ": root") {
		t.Errorf("Error() = %q, want the root message", truncated.Error())
	}
	if truncated.Severity() != SeverityHigh || truncated.Details()["truncated"] != true {
		t.Errorf("truncation not recorded: %v %v", truncated.Severity(), truncated.Details())
	}
}

func TestStackTraceStartsAtCaller(t *testing.T) {
	frames := New("x").StackTrace()
	if len(frames) == 0 {
		t.Fatal("no frames captured")
	}
	if !strings.HasSuffix(frames[0].Function, "TestStackTraceStartsAtCaller") {
		t.Errorf("first frame = %s", frames[0].Function)
	}
}

func TestWithCodeSetsSeverity(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{CodeInvalidArgument, SeverityLow},
		{CodeEncodingError, SeverityMedium},
		{CodeConfigError, SeverityHigh},
		{CodeEnvironmentError, SeverityCritical},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			err := New("x").WithCode(tt.code)
			if err.Severity() != tt.want {
				t.Errorf("Severity() = %v, want %v", err.Severity(), tt.want)
			}
		})
	}

	explicit := New("x").WithSeverity(SeverityHigh).WithCode(CodeInvalidArgument)
	if explicit.Severity() != SeverityHigh {
		t.Errorf("explicit severity overwritten: %v", explicit.Severity())
	}
}

func TestHasCodeWalksChain(t *testing.T) {
	base := New("empty delimiter").WithCode(CodeInvalidArgument)
	wrapped := fmt.Errorf("explode: %w", base)

	if !HasCode(wrapped, CodeInvalidArgument) {
		t.Error("HasCode() should see through fmt.Errorf wrapping")
	}
	if HasCode(wrapped, CodeEncodingError) {
		t.Error("HasCode() matched the wrong code")
	}
	if HasCode(errors.New("plain"), CodeInvalidArgument) {
		t.Error("HasCode() on plain error should be false")
	}
	if GetCode(errors.New("plain")) != CodeUnknown {
		t.Error("GetCode() on plain error should be CodeUnknown")
	}
	if GetSeverity(wrapped) != SeverityLow {
		t.Errorf("GetSeverity() = %v, want low", GetSeverity(wrapped))
	}
}

func TestDetailsAreCopied(t *testing.T) {
	err := New("x").WithDetail("delimiter", "")
	details := err.Details()
	details["delimiter"] = "mutated"

	if err.Details()["delimiter"] != "" {
		t.Error("Details() must return a copy")
	}
}

func TestRootCause(t *testing.T) {
	root := errors.New("root")
	err := Wrap(Wrap(root, "middle"), "top")

	if err.RootCause() != root {
		t.Errorf("RootCause() = %v, want %v", err.RootCause(), root)
	}

	single := New("alone")
	if single.RootCause() != single {
		t.Error("RootCause() of an unwrapped error should be itself")
	}
}

func TestString(t *testing.T) {
	err := New("invalid encoding").
		WithCode(CodeInvalidArgument).
		WithOperation("stringx.capitalize").
		WithDetail("encoding", "klingon")

	s := err.String()
	for _, want := range []string{"Error: invalid encoding", "Code: INVALID_ARGUMENT", "Operation: stringx.capitalize", "encoding=klingon"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q in:\n%s", want, s)
		}
	}
}

func TestMarshalJSON(t *testing.T) {
	err := Wrap(errors.New("boom"), "outer").
		WithCode(CodeEncodingError).
		WithOperation("stringx.title_case")

	data, jerr := json.Marshal(err)
	if jerr != nil {
		t.Fatalf("json.Marshal() error = %v", jerr)
	}

	var decoded map[string]interface{}
	if jerr := json.Unmarshal(data, &decoded); jerr != nil {
		t.Fatalf("json.Unmarshal() error = %v", jerr)
	}

	if decoded["code"] != string(CodeEncodingError) {
		t.Errorf("code = %v", decoded["code"])
	}
	if decoded["cause"] != "boom" {
		t.Errorf("cause = %v", decoded["cause"])
	}
	if decoded["operation"] != "stringx.title_case" {
		t.Errorf("operation = %v", decoded["operation"])
	}
}

func TestCodeCategory(t *testing.T) {
	tests := []struct {
		code     Code
		category string
		exit     int
	}{
		{CodeInvalidArgument, "validation", 2},
		{CodeEncodingError, "encoding", 1},
		{CodeMissingConfig, "configuration", 1},
		{CodeUnknown, "generic", 1},
	}

	for _, tt := range tests {
		if got := tt.code.Category(); got != tt.category {
			t.Errorf("%s.Category() = %q, want %q", tt.code, got, tt.category)
		}
		if got := tt.code.ExitCode(); got != tt.exit {
			t.Errorf("%s.ExitCode() = %d, want %d", tt.code, got, tt.exit)
		}
		if !tt.code.IsValid() {
			t.Errorf("%s.IsValid() = false", tt.code)
		}
	}

	if Code("BOGUS").IsValid() {
		t.Error("unknown code reported valid")
	}
}
