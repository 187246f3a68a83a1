// File: doc.go
// Title: Package Documentation for error
// Description: Structured errors for strplus.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19

// Package error provides the structured error type used across strplus.
//
// An *Error carries a message, an optional cause, a Code, a Severity, a
// details map, the failing operation and a captured stack trace. It
// implements Unwrap, so it composes with errors.Is and errors.As.
//
// Typical use:
//
//	err := mdwerror.New("empty delimiter").
//	    WithCode(mdwerror.CodeInvalidArgument).
//	    WithOperation("stringx.explode")
//
//	if mdwerror.HasCode(err, mdwerror.CodeInvalidArgument) {
//	    // caller supplied bad input
//	}
//
// Most code should not build errors by hand; package core/errors offers
// standardized constructors that fill in codes, details and severity.
package error
