// File: explode.go
// Title: Delimiter Based Tokenizer
// Description: Implements Explode, which splits text on a literal delimiter,
//              trims every token with a configurable strategy and optionally
//              drops empty tokens.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Initial implementation

package stringx

import (
	"strings"

	"github.com/msto63/strplus/core/errors"
)

// DefaultDelimiter is used by Explode when no delimiter option is given.
const DefaultDelimiter = ","

type explodeOptions struct {
	delimiter string
	trim      TrimStrategy
	skipEmpty bool
}

// ExplodeOption configures a single Explode call.
type ExplodeOption func(*explodeOptions)

// WithDelimiter sets the literal delimiter. It must not be empty.
func WithDelimiter(d string) ExplodeOption {
	return func(o *explodeOptions) {
		o.delimiter = d
	}
}

// WithTrim sets the trim strategy applied to every token.
func WithTrim(t TrimStrategy) ExplodeOption {
	return func(o *explodeOptions) {
		o.trim = t
	}
}

// WithSkipEmpty removes tokens that are empty after trimming.
func WithSkipEmpty(skip bool) ExplodeOption {
	return func(o *explodeOptions) {
		o.skipEmpty = skip
	}
}

// Explode splits s on every occurrence of the delimiter (default ","),
// trims each token (default: whitespace) and, if requested, drops tokens
// that end up empty. Token order always follows the input.
//
// An empty delimiter yields an INVALID_ARGUMENT error and no tokens.
func Explode(s string, opts ...ExplodeOption) ([]string, error) {
	o := explodeOptions{delimiter: DefaultDelimiter}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	if o.delimiter == "" {
		return nil, errors.StringxInvalidArgument("explode", "delimiter", o.delimiter, "non-empty string")
	}

	trim := o.trim.resolve()
	parts := strings.Split(s, o.delimiter)

	// filter in place, Split already allocated a fresh slice
	tokens := parts[:0]
	for _, part := range parts {
		token := trim(part)
		if o.skipEmpty && token == "" {
			continue
		}
		tokens = append(tokens, token)
	}

	return tokens, nil
}
