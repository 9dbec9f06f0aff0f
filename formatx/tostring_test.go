// File: tostring_test.go
// Title: Unit Tests for Generic Dispatch
// Description: Tests the ToString convenience layer, the typed Int/Float
//              helpers, and the FormatToString composition across formatter
//              kinds.
// Author: msto63
// Version: v0.1.0
// Created: 2025-11-09
// Modified: 2025-11-09
//
// Change History:
// - 2025-11-09 v0.1.0: Initial test implementation

package formatx

import (
	"math"
	"testing"
)

func TestToString(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected string
	}{
		{"nil", nil, ""},
		{"string copy", "abc", "abc"},
		{"empty string", "", ""},
		{"byte slice", []byte("xy"), "xy"},
		{"int", -42, "-42"},
		{"int8", int8(-128), "-128"},
		{"int16", int16(300), "300"},
		{"int64", int64(math.MaxInt64), "9223372036854775807"},
		{"uint", uint(7), "7"},
		{"uint64 max", uint64(math.MaxUint64), "18446744073709551615"},
		{"float64", 3.14, "3.14"},
		{"float64 integral", 125.0, "125"},
		{"float32", float32(0.5), "0.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToString(tt.input); got != tt.expected {
				t.Errorf("ToString(%v) = %q; want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestToStringUnsupportedPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("ToString with unsupported type did not panic")
		}
	}()
	_ = ToString(struct{}{})
}

func TestChar(t *testing.T) {
	if got := Char('A'); got != "A" {
		t.Errorf("Char('A') = %q; want %q", got, "A")
	}
	if got := Char('界'); got != "界" {
		t.Errorf("Char('界') = %q; want %q", got, "界")
	}
}

func TestIntHelper(t *testing.T) {
	if got := Int(int8(-5)); got != "-5" {
		t.Errorf("Int(int8(-5)) = %q; want -5", got)
	}
	if got := Int(uint16(65535)); got != "65535" {
		t.Errorf("Int(uint16(65535)) = %q; want 65535", got)
	}
	// Magnitudes beyond int64 must survive the unsigned path.
	if got := Int(uint64(math.MaxInt64) + 1); got != "9223372036854775808" {
		t.Errorf("Int(MaxInt64+1) = %q; want 9223372036854775808", got)
	}
}

func TestFloatHelper(t *testing.T) {
	if got := Float(2.5); got != "2.5" {
		t.Errorf("Float(2.5) = %q; want 2.5", got)
	}
	if got := Float(float32(0.25)); got != "0.25" {
		t.Errorf("Float(float32(0.25)) = %q; want 0.25", got)
	}
}

// FormatToString trims the result when the write comes out shorter than the
// measurement, e.g. when a budgeted sign is absent.
func TestFormatToStringTrimsToWritten(t *testing.T) {
	// Shortest measures a fixed 27 for every double but writes far fewer.
	got := FormatToString(1.0, Shortest())
	if got != "1" {
		t.Errorf("FormatToString(1.0, Shortest()) = %q; want 1", got)
	}
}
