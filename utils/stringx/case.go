// File: case.go
// Title: Unicode Capitalization
// Description: Implements first-letter capitalization and span based title
//              casing using language-neutral Unicode case mapping.
// Author: msto63
// Version: v0.2.1
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation of case conversion helpers
// - 2026-10-19 v0.2.0: Capitalize, SplitSpans and TitleCase on x/text/cases
// - 2026-10-19 v0.2.1: Non UTF-8 input is rewritten character by character

package stringx

import (
	"regexp"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// SpanKind classifies a span produced by SplitSpans.
type SpanKind int

const (
	// SpanWord is content that TitleCase capitalizes
	SpanWord SpanKind = iota
	// SpanSeparator is whitespace, possibly around a run of punctuation
	SpanSeparator
)

// String returns the name of the span kind
func (k SpanKind) String() string {
	switch k {
	case SpanWord:
		return "word"
	case SpanSeparator:
		return "separator"
	default:
		return "unknown"
	}
}

// Span is a non-empty piece of a string as classified for title casing.
type Span struct {
	Text string
	Kind SpanKind
}

const (
	spaceClass   = `[\s\v\x{85}\p{Z}]`
	nonWordClass = `[^\p{L}\p{M}\p{N}_]`
)

// separatorPattern matches, in order of preference: whitespace around a
// punctuation run, a punctuation run at the start followed by whitespace,
// and a plain whitespace run.
var separatorPattern = regexp.MustCompile(
	spaceClass + `+` + nonWordClass + `+` + spaceClass + `+` +
		`|^` + nonWordClass + `+` + spaceClass + `+` +
		`|` + spaceClass + `+`)

// Casers keep internal state and must not be shared between goroutines.
var upperCaserPool = sync.Pool{
	New: func() interface{} {
		c := cases.Upper(language.Und)
		return &c
	},
}

func toUpper(s string) string {
	c := upperCaserPool.Get().(*cases.Caser)
	defer upperCaserPool.Put(c)
	return c.String(s)
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || unicode.In(r, unicode.Z)
}

// Capitalize returns s with its first character upper-cased and the rest
// unchanged. The optional encoding names the charset of s (default UTF-8).
// Multi-byte characters are never split; an invalid leading UTF-8 byte is
// left as it is. In other encodings only the bytes of the first character
// are replaced, everything after them is returned byte for byte.
//
// An unknown or blank encoding yields an INVALID_ARGUMENT error, bytes that
// are not valid in the encoding an ENCODING_ERROR. If the upper-case form of
// the first character does not exist in the encoding, the character is kept.
//
// Example: Capitalize("öffnen") -> "Öffnen"
func Capitalize(s string, encoding ...string) (string, error) {
	c, err := resolveCodec("capitalize", encoding)
	if err != nil {
		return "", err
	}
	if s == "" {
		return s, nil
	}
	if c.isUTF8() {
		return capitalizeFirst(s), nil
	}

	c, units, err := c.units("capitalize", s)
	if err != nil {
		return "", err
	}
	for i, u := range units {
		if u.text != "" {
			units[i].raw = c.capitalizeUnit(u)
			break
		}
	}
	return joinRaw(units), nil
}

// capitalizeFirst upper-cases the first code point of s.
func capitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || (r == utf8.RuneError && size == 1) {
		return s
	}

	if r < utf8.RuneSelf {
		if 'a' <= r && r <= 'z' {
			return string(r-'a'+'A') + s[size:]
		}
		return s
	}

	first := s[:size]
	upper := toUpper(first)
	if upper == first {
		return s
	}
	return upper + s[size:]
}

// SplitSpans cuts s into alternating separator and word spans. Separators
// are whitespace runs, whitespace around a run of non-word characters, and
// a run of non-word characters at the very start followed by whitespace.
// Everything between separators is a word. Concatenating the Text of all
// spans yields s again.
//
// Classification follows the first span: when it ends in whitespace the
// words are at odd positions, otherwise at even positions.
func SplitSpans(s string) []Span {
	if s == "" {
		return nil
	}

	pieces := make([]string, 0, 8)
	last := 0
	for _, loc := range separatorPattern.FindAllStringIndex(s, -1) {
		if loc[0] > last {
			pieces = append(pieces, s[last:loc[0]])
		}
		if loc[1] > loc[0] {
			pieces = append(pieces, s[loc[0]:loc[1]])
		}
		last = loc[1]
	}
	if last < len(s) {
		pieces = append(pieces, s[last:])
	}

	// Parity uses Unicode whitespace, so a leading NBSP counts as space.
	// An ASCII-only test would classify that span as a word and every real
	// word as a separator.
	r, _ := utf8.DecodeLastRuneInString(pieces[0])
	wordsAtOdd := isSpace(r)

	spans := make([]Span, len(pieces))
	for i, piece := range pieces {
		kind := SpanSeparator
		if (i%2 == 1) == wordsAtOdd {
			kind = SpanWord
		}
		spans[i] = Span{Text: piece, Kind: kind}
	}
	return spans
}

// TitleCase capitalizes every word span of s as found by SplitSpans and
// leaves separators as they are. A word starting with punctuation keeps
// its case because its first character has no upper-case form.
//
// Examples:
//
//	TitleCase("hello world")     -> "Hello World"
//	TitleCase(" - hello world")  -> " - Hello World"
//	TitleCase("  -hello world")  -> "  -hello World"
func TitleCase(s string, encoding ...string) (string, error) {
	c, err := resolveCodec("title_case", encoding)
	if err != nil {
		return "", err
	}
	if s == "" {
		return s, nil
	}

	if c.isUTF8() {
		var b strings.Builder
		b.Grow(len(s))
		for _, span := range SplitSpans(s) {
			if span.Kind == SpanWord {
				b.WriteString(capitalizeFirst(span.Text))
				continue
			}
			b.WriteString(span.Text)
		}
		return b.String(), nil
	}

	c, units, err := c.units("title_case", s)
	if err != nil {
		return "", err
	}

	// text offset of each unit that produced text
	var text strings.Builder
	starts := make(map[int]int, len(units))
	for i, u := range units {
		if u.text != "" {
			starts[text.Len()] = i
		}
		text.WriteString(u.text)
	}

	offset := 0
	for _, span := range SplitSpans(text.String()) {
		if span.Kind == SpanWord {
			if i, ok := starts[offset]; ok {
				units[i].raw = c.capitalizeUnit(units[i])
			}
		}
		offset += len(span.Text)
	}
	return joinRaw(units), nil
}
