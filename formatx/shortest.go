// File: shortest.go
// Title: Shortest Round-Trip Float Formatter
// Description: Implements ShortestFormatter, which emits the minimal decimal
//              digit sequence that re-parses to the exact same float64 and
//              picks fixed or exponential layout by magnitude.
// Author: msto63
// Version: v0.1.0
// Created: 2025-11-09
// Modified: 2025-11-09
//
// Change History:
// - 2025-11-09 v0.1.0: Initial implementation

package formatx

import (
	"math"
	"strconv"
)

// shortestMaxLen is a conservative bound for any float64: sign, 17 shortest
// digits, decimal point, and a 5-byte exponent still leave slack.
const shortestMaxLen = 27

// ShortestFormatter formats float64 values with the minimal decimal digit
// sequence that parses back to the bit-identical value. Layout is chosen by
// magnitude: plain notation while the decimal exponent n satisfies
// -6 < n <= 21, exponential beyond. It needs no precision configuration and
// is the default formatter for floating-point values.
type ShortestFormatter struct{}

// Shortest returns the shortest round-trip float formatter.
func Shortest() ShortestFormatter { return ShortestFormatter{} }

// MaxFormattedLength returns a fixed conservative bound valid for any
// float64.
func (ShortestFormatter) MaxFormattedLength(float64) int { return shortestMaxLen }

// FormattedWrite writes x into buf and returns the number of bytes written.
// buf must hold at least MaxFormattedLength bytes.
func (ShortestFormatter) FormattedWrite(x float64, buf []byte) int {
	if len(buf) < shortestMaxLen {
		panic("formatx: buffer too small for formatted float")
	}
	out := appendShortest(buf[:0:len(buf)], x)
	if len(out) > shortestMaxLen {
		panic("formatx: formatted write exceeded measured length")
	}
	return len(out)
}

// appendShortest appends the shortest round-trip rendering of x to dst.
// Negative zero keeps its sign so re-parsing is bit-identical.
func appendShortest(dst []byte, x float64) []byte {
	switch {
	case math.IsNaN(x):
		return append(dst, "nan"...)
	case math.IsInf(x, 1):
		return append(dst, "inf"...)
	case math.IsInf(x, -1):
		return append(dst, "-inf"...)
	}

	if math.Signbit(x) {
		dst = append(dst, '-')
		x = -x
	}
	if x == 0 {
		return append(dst, '0')
	}

	digits, n := shortestDigits(x)
	return appendLayout(dst, digits, n)
}

// shortestDigits returns the minimal significand digit string of a positive
// finite x and its decimal exponent n, so that x == 0.digits * 10^n. The
// digits come from the standard library's shortest conversion.
func shortestDigits(x float64) (string, int) {
	var tmp [32]byte
	e := strconv.AppendFloat(tmp[:0], x, 'e', -1, 64)

	// e looks like "d.dddde±XX"; split mantissa digits from the exponent.
	ei := 0
	for e[ei] != 'e' {
		ei++
	}
	exp, err := strconv.Atoi(string(e[ei+1:]))
	if err != nil {
		panic("formatx: malformed shortest conversion: " + string(e))
	}

	digits := make([]byte, 0, 17)
	digits = append(digits, e[0])
	if ei > 2 {
		digits = append(digits, e[2:ei]...)
	}
	return string(digits), exp + 1
}

// appendLayout renders the significand per the decimal-exponent rule: plain
// notation for -6 < n <= 21, exponential otherwise.
func appendLayout(dst []byte, digits string, n int) []byte {
	k := len(digits)
	switch {
	case k <= n && n <= 21:
		// Integral value: digits followed by n-k zeros.
		dst = append(dst, digits...)
		for i := k; i < n; i++ {
			dst = append(dst, '0')
		}
		return dst
	case 0 < n && n <= 21:
		// Decimal point inside the digit sequence.
		dst = append(dst, digits[:n]...)
		dst = append(dst, '.')
		return append(dst, digits[n:]...)
	case -6 < n && n <= 0:
		// Leading zeros after "0.".
		dst = append(dst, '0', '.')
		for i := 0; i < -n; i++ {
			dst = append(dst, '0')
		}
		return append(dst, digits...)
	default:
		// Exponential: d[.ddd]e±x with no zero-padded exponent.
		dst = append(dst, digits[0])
		if k > 1 {
			dst = append(dst, '.')
			dst = append(dst, digits[1:]...)
		}
		dst = append(dst, 'e')
		exp := n - 1
		if exp >= 0 {
			dst = append(dst, '+')
		} else {
			dst = append(dst, '-')
			exp = -exp
		}
		return strconv.AppendInt(dst, int64(exp), 10)
	}
}
