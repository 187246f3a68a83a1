// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides Unicode-aware string operations that
//              supplement Go's standard strings package.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core string utilities
// - 2025-01-26 v0.2.0: Enhanced documentation with comprehensive structure and examples
// - 2026-10-19 v0.3.0: Tokenizer, capitalization, title casing, digit strings

// Package stringx provides Unicode-aware string operations for strplus.
//
// Overview
//
// The package supplements Go's strings package with a configurable
// tokenizer, first-letter and title-case capitalization that never splits
// multi-byte characters, random digit strings, locale-neutral number
// formatting and marker based substring extraction.
//
// Every function is pure and safe for concurrent use. Nothing here logs or
// performs I/O.
//
// Architecture
//
//   - Tokenizer: Explode with pluggable trim strategies (explode.go, trim.go)
//   - Capitalization: Capitalize, SplitSpans, TitleCase (case.go)
//   - Encodings: charset lookup for the case functions (encoding.go)
//   - Random Generation: digit strings (random.go)
//   - Helpers: FloatToString, FindBetween (stringx.go)
//
// Usage Examples
//
// Tokenizing:
//
//	tokens, err := stringx.Explode("a, b ,c")
//	// tokens: ["a" "b" "c"]
//
//	tokens, err = stringx.Explode("a;;b",
//	    stringx.WithDelimiter(";"),
//	    stringx.WithSkipEmpty(true))
//	// tokens: ["a" "b"]
//
//	tokens, err = stringx.Explode("xxaxx,b", stringx.WithTrim(stringx.TrimChars("x")))
//	// tokens: ["a" "b"]
//
// Capitalization:
//
//	s, _ := stringx.Capitalize("öffnen")         // "Öffnen"
//	s, _ = stringx.TitleCase("hello world")       // "Hello World"
//	s, _ = stringx.Capitalize("\xe9t\xe9", "ISO-8859-1") // "\xc9t\xe9"
//
// Case mapping uses golang.org/x/text/cases with language.Und, so results
// do not depend on any locale. Non UTF-8 text is decoded character by
// character with the charset registered under the given IANA or WHATWG name.
// Only the characters that change are encoded again; all other bytes,
// including a byte order mark, are copied from the input.
//
// Error Handling
//
// Failures are structured errors from core/error:
//
//	_, err := stringx.Explode("a,b", stringx.WithDelimiter(""))
//	if mdwerror.HasCode(err, mdwerror.CodeInvalidArgument) {
//	    // empty delimiter
//	}
//
// An unknown or blank encoding name is INVALID_ARGUMENT, a text holding
// bytes that are not valid in its encoding is ENCODING_ERROR.
package stringx
