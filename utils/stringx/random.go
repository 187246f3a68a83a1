// File: random.go
// Title: Random String Generation Utilities
// Description: Implements fast pseudo-random digit strings for display codes
//              and a crypto/rand based variant for one-time codes.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with secure random generation
// - 2026-10-19 v0.2.0: math/rand/v2 digit strings, rune charsets

package stringx

import (
	crand "crypto/rand"
	"math/big"
	"math/rand/v2"
	"strings"
	"unicode/utf8"
)

const (
	// Digits is the character set of RandomDigitString
	Digits = "0123456789"

	// DefaultRandomLength is the length used when callers have no preference
	DefaultRandomLength = 6
)

// RandomDigitString returns length characters drawn uniformly, with
// replacement, from 0-9. It is not suitable for secrets; use
// SecureRandomDigitString for those. length <= 0 yields "".
func RandomDigitString(length int) string {
	return RandomStringFromSet(length, Digits)
}

// RandomStringFromSet returns length runes drawn uniformly, with
// replacement, from charset. An empty charset or length <= 0 yields "".
func RandomStringFromSet(length int, charset string) string {
	if length <= 0 || charset == "" {
		return ""
	}

	if isASCII(charset) {
		result := make([]byte, length)
		for i := range result {
			result[i] = charset[rand.IntN(len(charset))]
		}
		return string(result)
	}

	runes := []rune(charset)
	var b strings.Builder
	b.Grow(length * utf8.UTFMax)
	for i := 0; i < length; i++ {
		b.WriteRune(runes[rand.IntN(len(runes))])
	}
	return b.String()
}

// SecureRandomDigitString is RandomDigitString backed by crypto/rand.
func SecureRandomDigitString(length int) (string, error) {
	if length <= 0 {
		return "", nil
	}

	result := make([]byte, length)
	limit := big.NewInt(int64(len(Digits)))

	for i := 0; i < length; i++ {
		n, err := crand.Int(crand.Reader, limit)
		if err != nil {
			return "", err
		}
		result[i] = Digits[n.Int64()]
	}

	return string(result), nil
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
