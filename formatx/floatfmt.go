// File: floatfmt.go
// Title: Fixed and Scientific Float Formatters
// Description: Implements FloatFormatter, the precision-driven fixed and
//              scientific float styles. Finite values are delegated to the
//              standard formatted conversion through a printf-style spec;
//              length measurement is analytic.
// Author: msto63
// Version: v0.1.0
// Created: 2025-11-08
// Modified: 2025-11-10
//
// Change History:
// - 2025-11-08 v0.1.0: Initial implementation
// - 2025-11-09 v0.1.0: Non-finite rendering unified with the shortest formatter
// - 2025-11-10 v0.1.1: Negative sign budgeted in the scientific measurement

package formatx

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FloatFormatter formats float64 values in fixed ("123.456") or scientific
// ("1.23456e+02") style with a configurable width, precision, and flags.
// It is an immutable configuration value.
type FloatFormatter struct {
	sci       bool
	width     int
	precision int
	flags     Flags
}

// Fixed returns a fixed-style float formatter with precision 6.
func Fixed() FloatFormatter { return FloatFormatter{precision: 6} }

// Sci returns a scientific-style float formatter with precision 6.
func Sci() FloatFormatter { return FloatFormatter{sci: true, precision: 6} }

// Width returns the configured minimum field width.
func (f FloatFormatter) Width() int { return f.width }

// Precision returns the configured digit count after the decimal point.
func (f FloatFormatter) Precision() int { return f.precision }

// Flags returns the configured flag bits.
func (f FloatFormatter) Flags() Flags { return f.flags }

// Scientific reports whether the formatter uses the scientific style.
func (f FloatFormatter) Scientific() bool { return f.sci }

// WithWidth returns a copy of f with the minimum field width set to width.
func (f FloatFormatter) WithWidth(width int) FloatFormatter {
	return FloatFormatter{sci: f.sci, width: width, precision: f.precision, flags: f.flags}
}

// WithPrecision returns a copy of f with the precision set to precision.
func (f FloatFormatter) WithPrecision(precision int) FloatFormatter {
	return FloatFormatter{sci: f.sci, width: f.width, precision: precision, flags: f.flags}
}

// WithFlags returns a copy of f with the flags replaced by flags.
func (f FloatFormatter) WithFlags(flags Flags) FloatFormatter {
	return FloatFormatter{sci: f.sci, width: f.width, precision: f.precision, flags: flags}
}

// Or returns a copy of f with the given flag bits added.
func (f FloatFormatter) Or(flags Flags) FloatFormatter {
	return f.WithFlags(f.flags | flags)
}

// Any reports whether any of the bits in mask are set on f.
func (f FloatFormatter) Any(mask Flags) bool { return f.flags.Any(mask) }

// MaxFormattedLength returns an analytic worst-case output length for x in
// the configured style. Infinities measure 3 or 4 ("inf", "-inf", "+inf"),
// NaN measures 3 or 4 ("nan" is sign-insensitive but budgets the explicit
// plus). The result is never less than the configured width.
func (f FloatFormatter) MaxFormattedLength(x float64) int {
	var n int
	switch {
	case math.IsInf(x, 0):
		n = 3
		if math.Signbit(x) || f.flags.Any(PlusSign) {
			n = 4
		}
	case math.IsNaN(x):
		n = 3
		if f.flags.Any(PlusSign) {
			n = 4
		}
	case f.sci:
		n = maxLenSci(x, f.precision, f.flags.Any(PlusSign))
	default:
		n = maxLenFixed(x, f.precision, f.flags.Any(PlusSign))
	}
	if n < f.width {
		n = f.width
	}
	return n
}

// FormattedWrite writes x into buf and returns the number of bytes written.
// The write never exceeds MaxFormattedLength(x); violating that, or passing
// an undersized buf, panics.
func (f FloatFormatter) FormattedWrite(x float64, buf []byte) int {
	maxLen := f.MaxFormattedLength(x)
	if len(buf) < maxLen {
		panic("formatx: buffer too small for formatted float")
	}
	if math.IsInf(x, 0) || math.IsNaN(x) {
		return writeSpecial(x, f.flags, f.width, buf)
	}

	out := fmt.Appendf(buf[:0:len(buf)], f.spec(), x)
	if len(out) > maxLen {
		panic("formatx: formatted write exceeded measured length")
	}
	return len(out)
}

// spec builds the printf-style conversion spec for the configuration, e.g.
// "%+08.3f" for width 8, precision 3, PlusSign|PadZeros.
func (f FloatFormatter) spec() string {
	var b strings.Builder
	b.WriteByte('%')
	if f.flags.Any(PlusSign) {
		b.WriteByte('+')
	}
	if f.flags.Any(PadZeros) {
		b.WriteByte('0')
	}
	if f.width > 0 {
		b.WriteString(strconv.Itoa(f.width))
	}
	b.WriteByte('.')
	b.WriteString(strconv.Itoa(f.precision))
	sym := byte('f')
	if f.sci {
		sym = 'e'
	}
	if f.flags.Any(UpperCase) {
		sym -= 'a' - 'A'
	}
	b.WriteByte(sym)
	return b.String()
}

// maxLenFixed bounds the fixed-style length: integral digits (plus one for a
// rounding carry), the fractional part, and the sign.
func maxLenFixed(x float64, precision int, plusSign bool) int {
	n := intPartDigits(math.Abs(x)) + 1
	if precision > 0 {
		n += precision + 1
	}
	if math.Signbit(x) || plusSign {
		n++
	}
	return n
}

// maxLenSci bounds the scientific-style length: one lead digit, the
// fractional part, the sign, and up to five bytes of exponent ("e+308").
func maxLenSci(x float64, precision int, plusSign bool) int {
	n := 1 + 5
	if precision > 0 {
		n += precision + 1
	}
	if math.Signbit(x) || plusSign {
		n++
	}
	return n
}

// intPartDigits returns the digit count of the integral part of a finite
// non-negative value.
func intPartDigits(ax float64) int {
	if ax < 10 {
		return 1
	}
	return int(math.Floor(math.Log10(ax))) + 1
}

// writeSpecial renders non-finite values as "inf", "-inf", "+inf", or "nan"
// (upper-cased under UpperCase), space-padded to the field width. Zero
// padding never applies to non-finite values.
func writeSpecial(x float64, flags Flags, width int, buf []byte) int {
	var s string
	switch {
	case math.IsNaN(x):
		s = "nan"
	case math.Signbit(x):
		s = "-inf"
	case flags.Any(PlusSign):
		s = "+inf"
	default:
		s = "inf"
	}
	if flags.Any(UpperCase) {
		s = strings.ToUpper(s)
	}

	total := len(s)
	if width > total {
		total = width
	}
	if len(buf) < total {
		panic("formatx: buffer too small for formatted float")
	}
	p := 0
	for ; p < total-len(s); p++ {
		buf[p] = ' '
	}
	copy(buf[p:], s)
	return total
}
