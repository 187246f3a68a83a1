// File: stringx.go
// Title: Core String Utility Functions
// Description: Implements small helpers that extend the Go standard library:
//              locale-neutral number formatting and marker based substring
//              extraction.
// Author: msto63
// Version: v0.2.1
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core utilities
// - 2026-10-19 v0.2.0: FloatToString and FindBetween
// - 2026-10-19 v0.2.1: Plain decimals for floats below 1e21

package stringx

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Floats outside [plainFloatMin, plainFloatMax) are written with an exponent.
const (
	plainFloatMin = 1e-6
	plainFloatMax = 1e21
)

// FloatToString formats number in its default representation and turns
// every comma into a period, so "1,5" becomes "1.5". Floats use the
// shortest digits that round-trip, as a plain decimal ("1000000") unless
// the magnitude is below 1e-6 or at least 1e21 ("1e+21"). Strings are taken
// as they are; nil yields "".
func FloatToString(number any) string {
	var s string

	switch v := number.(type) {
	case nil:
		return ""
	case string:
		s = v
	case float64:
		s = formatFloat(v, 64)
	case float32:
		s = formatFloat(float64(v), 32)
	case int:
		s = strconv.Itoa(v)
	case int64:
		s = strconv.FormatInt(v, 10)
	default:
		s = fmt.Sprint(v)
	}

	return strings.ReplaceAll(s, ",", ".")
}

func formatFloat(v float64, bitSize int) string {
	abs := math.Abs(v)
	if v == 0 || (abs >= plainFloatMin && abs < plainFloatMax) {
		return strconv.FormatFloat(v, 'f', -1, bitSize)
	}
	return strconv.FormatFloat(v, 'g', -1, bitSize)
}

// FindBetween returns the text between the first occurrence of start and
// the last occurrence of end that begins after that match. ok is false if
// start is missing or end does not follow it.
//
// Example: FindBetween("a[b]c[d]e", "[", "]") -> "b]c[d", true
func FindBetween(s, start, end string) (string, bool) {
	i := strings.Index(s, start)
	if i < 0 {
		return "", false
	}

	rest := s[i+len(start):]
	j := strings.LastIndex(rest, end)
	if j < 0 {
		return "", false
	}

	return rest[:j], true
}
