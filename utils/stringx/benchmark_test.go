// File: benchmark_test.go
// Title: Performance Benchmarks for stringx
// Description: Benchmarks for the tokenizer and the capitalization
//              functions.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial benchmark implementation
// - 2026-10-19 v0.2.0: Tokenizer and capitalization benchmarks

package stringx

import (
	"strings"
	"testing"
)

var benchmarkCSV = strings.Repeat(" alpha , beta,,gamma ", 50)

func BenchmarkExplode(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = Explode(benchmarkCSV)
	}
}

func BenchmarkExplodeSkipEmpty(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = Explode(benchmarkCSV, WithSkipEmpty(true))
	}
}

func BenchmarkExplodeCharRange(b *testing.B) {
	opt := WithTrim(TrimChars("a..e "))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = Explode(benchmarkCSV, opt)
	}
}

func BenchmarkCapitalizeASCII(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = Capitalize("hello world")
	}
}

func BenchmarkCapitalizeUnicode(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = Capitalize("öffnen")
	}
}

func BenchmarkCapitalizeLatin1(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = Capitalize("\xe9t\xe9", "ISO-8859-1")
	}
}

func BenchmarkTitleCase(b *testing.B) {
	input := strings.Repeat("the quick - brown fox ", 20)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = TitleCase(input)
	}
}
