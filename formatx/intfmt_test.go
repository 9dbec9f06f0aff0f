// File: intfmt_test.go
// Title: Unit Tests for Integer Formatters
// Description: Table-driven tests for integer formatting covering bases,
//              widths, sign policy, padding ordering, round-trip parsing,
//              and the measure-then-write length invariant.
// Author: msto63
// Version: v0.1.0
// Created: 2025-11-08
// Modified: 2025-11-08
//
// Change History:
// - 2025-11-08 v0.1.0: Initial test implementation

package formatx

import (
	"math"
	"strconv"
	"strings"
	"testing"
)

func TestIntFormatterWrite(t *testing.T) {
	tests := []struct {
		name     string
		f        IntFormatter
		value    int64
		expected string
	}{
		{"plain decimal", Dec(), 42, "42"},
		{"negative decimal", Dec(), -42, "-42"},
		{"zero", Dec(), 0, "0"},
		{"plus sign", Dec().Or(PlusSign), 42, "+42"},
		{"plus sign on negative", Dec().Or(PlusSign), -42, "-42"},
		{"space padded", Dec().WithWidth(5), 42, "   42"},
		{"space padded negative", Dec().WithWidth(5), -5, "   -5"},
		{"zero padded", Dec().WithWidth(5).Or(PadZeros), 42, "00042"},
		{"width narrower than value", Dec().WithWidth(2), 12345, "12345"},
		{"zero padded width zero", Dec().Or(PadZeros), 7, "7"},
		{"octal", Oct(), 8, "10"},
		{"octal zero", Oct(), 0, "0"},
		{"hex lower", Hex(), 255, "ff"},
		{"hex upper", Hex().Or(UpperCase), 255, "FF"},
		{"hex padded upper", Hex().WithWidth(4).Or(PadZeros | UpperCase), 255, "00FF"},
		{"hex negative", Hex(), -255, "-ff"},
		{"min int64", Dec(), math.MinInt64, "-9223372036854775808"},
		{"max int64", Dec(), math.MaxInt64, "9223372036854775807"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatToString(tt.value, tt.f)
			if got != tt.expected {
				t.Errorf("FormatToString(%d) = %q; want %q", tt.value, got, tt.expected)
			}
			if maxLen := tt.f.MaxFormattedLength(tt.value); len(got) > maxLen {
				t.Errorf("written length %d exceeds MaxFormattedLength %d", len(got), maxLen)
			}
		})
	}
}

// The sign character must always precede zero padding, never follow it.
func TestIntFormatterPaddingOrdering(t *testing.T) {
	got := FormatToString(int64(-5), Dec().WithWidth(5).Or(PadZeros))
	if got != "-0005" {
		t.Errorf("zero-padded -5 = %q; want %q", got, "-0005")
	}

	got = FormatToString(int64(-1), Hex().WithWidth(6).Or(PadZeros))
	if got != "-00001" {
		t.Errorf("zero-padded hex -1 = %q; want %q", got, "-00001")
	}
}

func TestIntFormatterRoundTrip(t *testing.T) {
	values := []int64{0, 1, -1, 5, -5, 42, -42, 255, 4095, -4096,
		1 << 40, -(1 << 40), math.MaxInt64, math.MinInt64}
	formatters := []IntFormatter{
		Oct(), Dec(), Hex(),
		Dec().WithWidth(24),
		Dec().WithWidth(24).Or(PadZeros),
		Hex().Or(UpperCase | PlusSign),
		Oct().WithWidth(30).Or(PadZeros | PlusSign),
	}

	for _, f := range formatters {
		for _, v := range values {
			out := FormatToString(v, f)
			parsed, err := strconv.ParseInt(strings.TrimSpace(out), f.Base(), 64)
			if err != nil {
				t.Fatalf("base %d output %q does not parse: %v", f.Base(), out, err)
			}
			if parsed != v {
				t.Errorf("base %d round trip of %d gave %q -> %d", f.Base(), v, out, parsed)
			}
			if len(out) > f.MaxFormattedLength(v) {
				t.Errorf("base %d: wrote %d bytes for %d, measured %d",
					f.Base(), len(out), v, f.MaxFormattedLength(v))
			}
		}
	}
}

func TestIntFormatterUintPath(t *testing.T) {
	f := Hex().Or(UpperCase)
	u := uint64(math.MaxUint64)

	buf := make([]byte, f.MaxFormattedLengthUint(u)+1)
	n := f.FormattedWriteUint(u, buf)
	if got := string(buf[:n]); got != "FFFFFFFFFFFFFFFF" {
		t.Errorf("max uint64 hex = %q; want FFFFFFFFFFFFFFFF", got)
	}
}

func TestIntFormatterAccessors(t *testing.T) {
	f := Dec().WithBase(16).WithWidth(8).WithFlags(PadZeros).Or(UpperCase)
	if f.Base() != 16 || f.Width() != 8 || f.Flags() != PadZeros|UpperCase {
		t.Errorf("accessors gave base=%d width=%d flags=%v", f.Base(), f.Width(), f.Flags())
	}

	// With* returns new values; the original is untouched.
	base := Dec()
	_ = base.WithWidth(10)
	if base.Width() != 0 {
		t.Errorf("WithWidth mutated the receiver: width=%d", base.Width())
	}
}

func TestDefaultIntFormatter(t *testing.T) {
	f := DefaultInt()

	tests := []struct {
		value    int64
		expected string
	}{
		{0, "0"},
		{7, "7"},
		{-42, "-42"},
		{math.MinInt64, "-9223372036854775808"},
	}
	for _, tt := range tests {
		got := FormatToString(tt.value, f)
		if got != tt.expected {
			t.Errorf("FormatToString(%d) = %q; want %q", tt.value, got, tt.expected)
		}
		if maxLen := f.MaxFormattedLength(tt.value); len(got) != maxLen {
			t.Errorf("default formatter measured %d, wrote %d for %d", maxLen, len(got), tt.value)
		}
	}

	// Configuring the default promotes to the full formatter.
	if got := FormatToString(int64(255), f.WithBase(16)); got != "ff" {
		t.Errorf("promoted WithBase(16) = %q; want ff", got)
	}
	if got := FormatToString(int64(5), f.WithWidth(3)); got != "  5" {
		t.Errorf("promoted WithWidth(3) = %q; want %q", got, "  5")
	}
}

func TestIntFormatterUndersizedBufferPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("FormattedWrite with undersized buffer did not panic")
		}
	}()
	var buf [2]byte
	Dec().FormattedWrite(-12345, buf[:])
}

func TestNdigits(t *testing.T) {
	tests := []struct {
		u    uint64
		base int
		want int
	}{
		{0, 10, 1}, {9, 10, 1}, {10, 10, 2}, {99, 10, 2}, {100, 10, 3},
		{math.MaxUint64, 10, 20},
		{0, 16, 1}, {15, 16, 1}, {16, 16, 2}, {math.MaxUint64, 16, 16},
		{0, 8, 1}, {7, 8, 1}, {8, 8, 2}, {math.MaxUint64, 8, 22},
		{5, 2, 0}, // unsupported base
	}
	for _, tt := range tests {
		if got := ndigits(tt.u, tt.base); got != tt.want {
			t.Errorf("ndigits(%d, %d) = %d; want %d", tt.u, tt.base, got, tt.want)
		}
	}
}
