// File: benchmark_test.go
// Title: Performance Benchmarks for Formatters
// Description: Benchmarks for the integer fast path, configured integer
//              writes, and both float formatter families.
// Author: msto63
// Version: v0.1.0
// Created: 2025-11-09
// Modified: 2025-11-09
//
// Change History:
// - 2025-11-09 v0.1.0: Initial benchmark implementation

package formatx

import "testing"

func BenchmarkDefaultIntWrite(b *testing.B) {
	f := DefaultInt()
	var buf [24]byte

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = f.FormattedWrite(int64(i)-(int64(b.N)/2), buf[:])
	}
}

func BenchmarkIntFormatterWrite(b *testing.B) {
	f := Hex().WithWidth(16).Or(PadZeros | UpperCase)
	var buf [24]byte

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = f.FormattedWrite(int64(i), buf[:])
	}
}

func BenchmarkShortestWrite(b *testing.B) {
	f := Shortest()
	values := []float64{3.14, 0.1, 123456789.123, 1e300, 1.0}
	var buf [32]byte

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = f.FormattedWrite(values[i%len(values)], buf[:])
	}
}

func BenchmarkFixedWrite(b *testing.B) {
	f := Fixed().WithPrecision(6)
	var buf [64]byte

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = f.FormattedWrite(12345.6789, buf[:])
	}
}

func BenchmarkToStringInt(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ToString(i)
	}
}
