// File: error.go
// Title: Core Error Implementation
// Description: Implements the structured Error type: a message with a code,
//              a severity, free-form details and the stack of the call that
//              created it. Works with errors.Is, errors.As and Unwrap.
// Author: msto63
// Version: v0.2.1
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors
// - 2026-10-19 v0.2.0: HasCode/GetCode walk the Unwrap chain; dropped user and
//                       localization metadata
// - 2026-10-19 v0.2.1: Stack capture via runtime.CallersFrames, JSON through a
//                       tagged struct, free-text context removed

package error

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"runtime"
	"sort"
	"strings"
	"time"
)

const (
	// MaxErrorChainDepth is the number of nested *Error values Wrap builds
	// before it collapses the chain onto its root cause.
	MaxErrorChainDepth = 15

	// MaxStackFrames bounds the captured stack.
	MaxStackFrames = 20
)

// Error is a structured error. The With* methods modify the receiver and
// return it for chaining.
type Error struct {
	message   string
	operation string
	cause     error

	code     Code
	severity Severity
	details  map[string]interface{}

	timestamp time.Time
	stack     []StackFrame
}

// StackFrame is one captured call site.
type StackFrame struct {
	Function string `json:"function"`
	File     string `json:"file"`
	Line     int    `json:"line"`
}

// New returns an error with CodeUnknown and SeverityMedium.
func New(message string) *Error {
	return build(message, nil)
}

// Wrap returns an error with message whose cause is err, or nil for a nil
// err. A wrapped *Error passes on its code, severity, operation and details.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	if depth := chainDepth(err); depth >= MaxErrorChainDepth {
		root := err
		if inner, ok := err.(*Error); ok {
			root = inner.RootCause()
		}
		e := build(fmt.Sprintf("%s (chain truncated at depth %d): %s", message, MaxErrorChainDepth, root.Error()), nil)
		e.severity = SeverityHigh
		e.details["truncated"] = true
		e.details["original_depth"] = depth
		return e
	}

	e := build(message, err)
	if inner, ok := err.(*Error); ok {
		e.code = inner.code
		e.severity = inner.severity
		e.operation = inner.operation
		for k, v := range inner.details {
			e.details[k] = v
		}
	}
	return e
}

// build is called directly by New and Wrap; the stack starts at their caller.
func build(message string, cause error) *Error {
	return &Error{
		message:   message,
		cause:     cause,
		code:      CodeUnknown,
		severity:  SeverityMedium,
		details:   make(map[string]interface{}),
		timestamp: time.Now(),
		stack:     callers(4),
	}
}

// chainDepth counts the directly nested *Error values starting at err.
func chainDepth(err error) int {
	depth := 0
	for err != nil && depth < 2*MaxErrorChainDepth {
		depth++
		inner, ok := err.(*Error)
		if !ok {
			break
		}
		err = inner.cause
	}
	return depth
}

func callers(skip int) []StackFrame {
	pcs := make([]uintptr, MaxStackFrames)
	n := runtime.Callers(skip, pcs)
	frames := runtime.CallersFrames(pcs[:n])

	stack := make([]StackFrame, 0, n)
	for {
		frame, more := frames.Next()
		if frame.Function != "" {
			stack = append(stack, StackFrame{Function: frame.Function, File: frame.File, Line: frame.Line})
		}
		if !more {
			return stack
		}
	}
}

func (e *Error) Error() string {
	if e.cause == nil {
		return e.message
	}
	return e.message + ": " + e.cause.Error()
}

func (e *Error) Unwrap() error {
	return e.cause
}

// WithCode sets the code. A severity still at its SeverityMedium default is
// replaced by the one GetSeverityFromCode assigns to code.
func (e *Error) WithCode(code Code) *Error {
	e.code = code
	if e.severity == SeverityMedium {
		e.severity = GetSeverityFromCode(code)
	}
	return e
}

func (e *Error) WithSeverity(severity Severity) *Error {
	e.severity = severity
	return e
}

func (e *Error) WithDetail(key string, value interface{}) *Error {
	e.details[key] = value
	return e
}

func (e *Error) WithDetails(details map[string]interface{}) *Error {
	for k, v := range details {
		e.details[k] = v
	}
	return e
}

// WithOperation records the failing operation as "module.operation".
func (e *Error) WithOperation(operation string) *Error {
	e.operation = operation
	return e
}

func (e *Error) Code() Code { return e.code }

func (e *Error) Severity() Severity { return e.severity }

func (e *Error) Operation() string { return e.operation }

func (e *Error) Timestamp() time.Time { return e.timestamp }

// StackTrace returns a copy of the frames captured when e was created.
func (e *Error) StackTrace() []StackFrame {
	return append([]StackFrame(nil), e.stack...)
}

// Details returns a copy of the details map.
func (e *Error) Details() map[string]interface{} {
	details := make(map[string]interface{}, len(e.details))
	for k, v := range e.details {
		details[k] = v
	}
	return details
}

// RootCause follows the causes of nested *Error values and returns the
// innermost error, e itself when it has no cause.
func (e *Error) RootCause() error {
	var current error = e
	for {
		inner, ok := current.(*Error)
		if !ok || inner.cause == nil {
			return current
		}
		current = inner.cause
	}
}

// String renders every field on its own line, details sorted by key.
func (e *Error) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Error: %s\nCode: %s\nSeverity: %s\nTimestamp: %s",
		e.message, e.code, e.severity, e.timestamp.Format(time.RFC3339))

	if e.operation != "" {
		fmt.Fprintf(&b, "\nOperation: %s", e.operation)
	}
	if len(e.details) > 0 {
		keys := make([]string, 0, len(e.details))
		for k := range e.details {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		b.WriteString("\nDetails: {")
		for i, k := range keys {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%s=%v", k, e.details[k])
		}
		b.WriteString("}")
	}
	if e.cause != nil {
		fmt.Fprintf(&b, "\nCause: %s", e.cause.Error())
	}
	return b.String()
}

type errorJSON struct {
	Message    string                 `json:"message"`
	Code       Code                   `json:"code"`
	Severity   string                 `json:"severity"`
	Timestamp  string                 `json:"timestamp"`
	Operation  string                 `json:"operation,omitempty"`
	Details    map[string]interface{} `json:"details"`
	Cause      string                 `json:"cause,omitempty"`
	StackTrace []StackFrame           `json:"stack_trace,omitempty"`
}

// MarshalJSON is used when an error is attached to a JSON log entry.
func (e *Error) MarshalJSON() ([]byte, error) {
	out := errorJSON{
		Message:    e.message,
		Code:       e.code,
		Severity:   e.severity.String(),
		Timestamp:  e.timestamp.Format(time.RFC3339),
		Operation:  e.operation,
		Details:    e.details,
		StackTrace: e.stack,
	}
	if e.cause != nil {
		out.Cause = e.cause.Error()
	}
	return json.Marshal(out)
}

// As returns the first *Error in err's chain.
func As(err error) (*Error, bool) {
	var mdwErr *Error
	if stderrors.As(err, &mdwErr) {
		return mdwErr, true
	}
	return nil, false
}

// HasCode reports whether the first *Error in err's chain carries code.
func HasCode(err error, code Code) bool {
	mdwErr, ok := As(err)
	return ok && mdwErr.code == code
}

// GetCode returns the code of the first *Error in err's chain, CodeUnknown
// when there is none.
func GetCode(err error) Code {
	if mdwErr, ok := As(err); ok {
		return mdwErr.code
	}
	return CodeUnknown
}

// GetSeverity returns the severity of the first *Error in err's chain,
// SeverityMedium when there is none.
func GetSeverity(err error) Severity {
	if mdwErr, ok := As(err); ok {
		return mdwErr.severity
	}
	return SeverityMedium
}
