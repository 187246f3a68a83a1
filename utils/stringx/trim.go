// File: trim.go
// Title: Token Trim Strategies
// Description: Implements the pluggable trim strategy used by Explode. A
//              strategy is resolved once into a plain function before the
//              per-token loop runs.
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
	"unicode"
	"unicode/utf8"

	"github.com/msto63/strplus/core/errors"
)

type trimKind int

const (
	trimWhitespace trimKind = iota
	trimNone
	trimChars
	trimFunc
)

// TrimStrategy decides what happens to the ends of every token produced by
// Explode. The zero value trims whitespace.
type TrimStrategy struct {
	kind   trimKind
	cutset string
	fn     func(string) string
}

// NoTrim leaves tokens untouched.
func NoTrim() TrimStrategy {
	return TrimStrategy{kind: trimNone}
}

// TrimWhitespace strips Unicode whitespace and NUL from both ends.
func TrimWhitespace() TrimStrategy {
	return TrimStrategy{kind: trimWhitespace}
}

// TrimChars strips the characters of cutset from both ends. "a..z" inside
// cutset stands for the inclusive range a through z.
func TrimChars(cutset string) TrimStrategy {
	return TrimStrategy{kind: trimChars, cutset: cutset}
}

// TrimWith replaces every token with fn(token). A nil fn behaves like NoTrim.
func TrimWith(fn func(string) string) TrimStrategy {
	if fn == nil {
		return NoTrim()
	}
	return TrimStrategy{kind: trimFunc, fn: fn}
}

// ParseTrimStrategy reads the textual form used in configuration files and
// on the command line: "", "true", "space" and "whitespace" select
// TrimWhitespace, "false" and "none" select NoTrim, and "chars:<set>"
// selects TrimChars(<set>).
func ParseTrimStrategy(mode string) (TrimStrategy, error) {
	if cutset, ok := strings.CutPrefix(mode, "chars:"); ok {
		return TrimChars(cutset), nil
	}

	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "true", "space", "whitespace":
		return TrimWhitespace(), nil
	case "false", "none":
		return NoTrim(), nil
	}

	return TrimStrategy{}, errors.StringxInvalidArgument("parse_trim", "trim", mode,
		"one of space, whitespace, true, none, false or chars:<set>")
}

// String returns the textual form accepted by ParseTrimStrategy. Custom
// functions have no textual form and report "func".
func (t TrimStrategy) String() string {
	switch t.kind {
	case trimNone:
		return "none"
	case trimChars:
		return "chars:" + t.cutset
	case trimFunc:
		return "func"
	default:
		return "space"
	}
}

// resolve turns the strategy into the function applied to each token.
func (t TrimStrategy) resolve() func(string) string {
	switch t.kind {
	case trimNone:
		return identity
	case trimChars:
		if t.cutset == "" {
			return identity
		}
		set := parseCharlist(t.cutset)
		return func(s string) string {
			return strings.TrimFunc(s, set.contains)
		}
	case trimFunc:
		return t.fn
	default:
		return trimSpace
	}
}

func identity(s string) string {
	return s
}

func isTrimSpace(r rune) bool {
	return r == 0 || unicode.IsSpace(r)
}

func trimSpace(s string) string {
	return strings.TrimFunc(s, isTrimSpace)
}

type runeRange struct {
	lo, hi rune
}

// charlist is a set of runes built from a trim cutset
type charlist []runeRange

func (c charlist) contains(r rune) bool {
	for _, rr := range c {
		if r >= rr.lo && r <= rr.hi {
			return true
		}
	}
	return false
}

// parseCharlist expands a cutset. "x..y" with x <= y is a range; anything
// else, including a descending range, is taken literally.
func parseCharlist(cutset string) charlist {
	runes := make([]rune, 0, utf8.RuneCountInString(cutset))
	for _, r := range cutset {
		runes = append(runes, r)
	}

	set := make(charlist, 0, len(runes))
	for i := 0; i < len(runes); i++ {
		if i+3 < len(runes) && runes[i+1] == '.' && runes[i+2] == '.' && runes[i] <= runes[i+3] {
			set = append(set, runeRange{lo: runes[i], hi: runes[i+3]})
			i += 3
			continue
		}
		set = append(set, runeRange{lo: runes[i], hi: runes[i]})
	}
	return set
}
