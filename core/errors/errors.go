// File: errors.go
// Title: Shared Error Handling Utilities
// Description: Provides common error construction helpers so every strplus
//              package reports failures with the same codes, details and
//              message layout.
// Author: msto63
// Version: v0.2.1
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of shared error utilities
// - 2026-10-19 v0.2.0: InvalidArgument constructor, stringx/config helpers
// - 2026-10-19 v0.2.1: Removed InvalidInput, INVALID_ARGUMENT covers it

package errors

import (
	"fmt"
	"strings"

	mdwerror "github.com/msto63/strplus/core/error"
)

// Module identifiers for error categorization
const (
	ModuleStringx = "stringx"
	ModuleConfig  = "config"
	ModuleCLI     = "cli"
)

// ErrorBuilder provides a fluent interface for building standardized errors
type ErrorBuilder struct {
	module    string
	operation string
	message   string
	cause     error
	details   map[string]interface{}
	severity  mdwerror.Severity
	code      mdwerror.Code
}

// NewErrorBuilder creates a new error builder for the specified module
func NewErrorBuilder(module string) *ErrorBuilder {
	return &ErrorBuilder{
		module:   module,
		details:  make(map[string]interface{}),
		severity: mdwerror.SeverityMedium,
	}
}

// Operation sets the operation name for the error
func (eb *ErrorBuilder) Operation(operation string) *ErrorBuilder {
	eb.operation = operation
	return eb
}

// Message sets the error message
func (eb *ErrorBuilder) Message(message string) *ErrorBuilder {
	eb.message = message
	return eb
}

// Messagef sets the error message with formatting
func (eb *ErrorBuilder) Messagef(format string, args ...interface{}) *ErrorBuilder {
	eb.message = fmt.Sprintf(format, args...)
	return eb
}

// Cause sets the underlying cause of the error
func (eb *ErrorBuilder) Cause(cause error) *ErrorBuilder {
	eb.cause = cause
	return eb
}

// Detail adds a detail key-value pair to the error
func (eb *ErrorBuilder) Detail(key string, value interface{}) *ErrorBuilder {
	eb.details[key] = value
	return eb
}

// Severity sets the error severity
func (eb *ErrorBuilder) Severity(severity mdwerror.Severity) *ErrorBuilder {
	eb.severity = severity
	return eb
}

// Code sets the error code
func (eb *ErrorBuilder) Code(code mdwerror.Code) *ErrorBuilder {
	eb.code = code
	return eb
}

// Build creates the final error
func (eb *ErrorBuilder) Build() *mdwerror.Error {
	if eb.code == "" {
		eb.code = mdwerror.Code(moduleErrorCode(eb.module, eb.operation))
	}

	if eb.message == "" {
		if eb.operation != "" {
			eb.message = fmt.Sprintf("%s.%s failed", eb.module, eb.operation)
		} else {
			eb.message = fmt.Sprintf("%s operation failed", eb.module)
		}
	}

	eb.details["module"] = eb.module
	if eb.operation != "" {
		eb.details["operation"] = eb.operation
	}

	var err *mdwerror.Error
	if eb.cause != nil {
		err = mdwerror.Wrap(eb.cause, eb.message)
	} else {
		err = mdwerror.New(eb.message)
	}

	err = err.
		WithCode(eb.code).
		WithDetails(eb.details).
		WithSeverity(eb.severity)
	if eb.operation != "" {
		err = err.WithOperation(eb.module + "." + eb.operation)
	}
	return err
}

// moduleErrorCode derives a code like STRINGX_EXPLODE_FAILED
func moduleErrorCode(module, operation string) string {
	if operation == "" {
		return strings.ToUpper(module) + "_ERROR"
	}
	return strings.ToUpper(module) + "_" + strings.ToUpper(operation) + "_FAILED"
}

// =============================================================================
// STANDARD ERROR CREATION FUNCTIONS
// =============================================================================

// InvalidArgument reports a caller-supplied argument that makes the
// operation undefined (empty delimiter, unknown encoding, ...)
func InvalidArgument(module, operation, argument string, value interface{}, expected string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("invalid argument %s for %s.%s: expected %s", argument, module, operation, expected).
		Code(mdwerror.CodeInvalidArgument).
		Detail("argument", argument).
		Detail("value", value).
		Detail("expected", expected).
		Severity(mdwerror.SeverityLow).
		Build()
}

// InvalidFormat creates a standardized format error
func InvalidFormat(module string, input interface{}, expectedFormat string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Messagef("invalid format in %s", module).
		Code(mdwerror.CodeInvalidFormat).
		Detail("input", input).
		Detail("expected_format", expectedFormat).
		Severity(mdwerror.SeverityLow).
		Build()
}

// OperationFailed creates a standardized operation failure error
func OperationFailed(module, operation string, cause error) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%s.%s operation failed", module, operation).
		Cause(cause).
		Severity(mdwerror.SeverityHigh).
		Build()
}

// ValidationFailed creates a standardized validation error
func ValidationFailed(module, field string, value interface{}, reason string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Messagef("%s.validate_%s: validation failed for field %s: %s", module, field, field, reason).
		Code(mdwerror.CodeValidationFailed).
		Detail("field", field).
		Detail("value", value).
		Detail("reason", reason).
		Severity(mdwerror.SeverityLow).
		Build()
}

// NotFound creates a standardized not found error
func NotFound(module, operation string, identifier interface{}) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("item not found in %s.%s", module, operation).
		Code(mdwerror.CodeNotFound).
		Detail("identifier", identifier).
		Severity(mdwerror.SeverityLow).
		Build()
}

// =============================================================================
// ERROR ANALYSIS
// =============================================================================

// ExtractDetails extracts all details from a structured error
func ExtractDetails(err error) map[string]interface{} {
	if mdwErr, ok := mdwerror.As(err); ok {
		return mdwErr.Details()
	}
	return nil
}

// ExtractModule extracts the module name from an error
func ExtractModule(err error) string {
	if module, ok := ExtractDetails(err)["module"].(string); ok {
		return module
	}
	return ""
}

// ExtractOperation extracts the operation name from an error
func ExtractOperation(err error) string {
	if operation, ok := ExtractDetails(err)["operation"].(string); ok {
		return operation
	}
	return ""
}

// IsModuleOperation checks if error is from specific module and operation
func IsModuleOperation(err error, module, operation string) bool {
	return ExtractModule(err) == module && ExtractOperation(err) == operation
}

// =============================================================================
// MODULE-SPECIFIC CONVENIENCE FUNCTIONS
// =============================================================================

// StringxInvalidArgument reports a bad argument to a stringx operation
func StringxInvalidArgument(operation, argument string, value interface{}, expected string) *mdwerror.Error {
	return InvalidArgument(ModuleStringx, operation, argument, value, expected)
}

// StringxEncodingError reports a transcoding failure in a stringx operation
func StringxEncodingError(operation, encoding string, cause error) *mdwerror.Error {
	return NewErrorBuilder(ModuleStringx).
		Operation(operation).
		Messagef("cannot convert text to %s", encoding).
		Cause(cause).
		Code(mdwerror.CodeEncodingError).
		Detail("encoding", encoding).
		Build()
}

// ConfigNotFound reports a missing configuration file
func ConfigNotFound(path string) *mdwerror.Error {
	return NewErrorBuilder(ModuleConfig).
		Operation("load").
		Messagef("config file not found: %s", path).
		Code(mdwerror.CodeMissingConfig).
		Detail("path", path).
		Build()
}

// ConfigParseError reports an unparsable configuration source
func ConfigParseError(format string, cause error) *mdwerror.Error {
	return NewErrorBuilder(ModuleConfig).
		Operation("parse").
		Messagef("failed to parse %s config", format).
		Cause(cause).
		Code(mdwerror.CodeInvalidConfig).
		Detail("format", format).
		Build()
}
