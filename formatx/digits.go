// File: digits.go
// Title: Digit Counting and Extraction
// Description: Internal helpers for counting and emitting base-8/10/16 digits
//              of an unsigned magnitude. These back every integer formatter.
// Author: msto63
// Version: v0.1.0
// Created: 2025-11-08
// Modified: 2025-11-08
//
// Change History:
// - 2025-11-08 v0.1.0: Initial implementation

package formatx

import "math/bits"

const (
	lowerDigits = "0123456789abcdef"
	upperDigits = "0123456789ABCDEF"
)

// uabs returns the magnitude of x as an unsigned value. The two's-complement
// negation keeps math.MinInt64 exact.
func uabs(x int64) uint64 {
	if x < 0 {
		return -uint64(x)
	}
	return uint64(x)
}

func ndigitsDec(u uint64) int {
	n := 1
	for u >= 10 {
		u /= 10
		n++
	}
	return n
}

func ndigitsOct(u uint64) int {
	if u == 0 {
		return 1
	}
	return (bits.Len64(u) + 2) / 3
}

func ndigitsHex(u uint64) int {
	if u == 0 {
		return 1
	}
	return (bits.Len64(u) + 3) / 4
}

// ndigits returns the digit count of u in the given base, or 0 for an
// unsupported base.
func ndigits(u uint64, base int) int {
	switch base {
	case 8:
		return ndigitsOct(u)
	case 10:
		return ndigitsDec(u)
	case 16:
		return ndigitsHex(u)
	}
	return 0
}

// extractDigits writes exactly len(buf) base-N digit characters of u into
// buf, most significant first. len(buf) must equal ndigits(u, base).
func extractDigits(u uint64, base int, upper bool, buf []byte) {
	digits := lowerDigits
	if upper {
		digits = upperDigits
	}
	b := uint64(base)
	for i := len(buf) - 1; i >= 0; i-- {
		buf[i] = digits[u%b]
		u /= b
	}
}
