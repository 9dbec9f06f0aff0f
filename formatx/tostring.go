// File: tostring.go
// Title: Generic Dispatch and Convenience Layer
// Description: Implements the Formatter contract, the measure-then-write
//              FormatToString composition, default-formatter helpers for the
//              numeric categories, and the ToString convenience entry point.
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

	"golang.org/x/exp/constraints"
)

// Formatter is the uniform two-phase surface every formatter exposes:
// measure the worst case, then write into a buffer of at least that size.
type Formatter[T any] interface {
	MaxFormattedLength(x T) int
	FormattedWrite(x T, buf []byte) int
}

// FormatToString is the canonical measure-then-write composition: measure,
// allocate once (one sentinel byte beyond the measurement), write, trim to
// the written length. The write may legitimately come out shorter than the
// measurement, e.g. when a budgeted sign is absent; longer is a contract
// violation and panics.
func FormatToString[T any](x T, f Formatter[T]) string {
	maxLen := f.MaxFormattedLength(x)
	buf := make([]byte, maxLen+1)
	n := f.FormattedWrite(x, buf)
	if n > maxLen {
		panic("formatx: formatted write exceeded measured length")
	}
	return string(buf[:n])
}

// Int formats any integer value with the default decimal formatter.
func Int[T constraints.Integer](x T) string {
	f := DefaultInt()
	if x >= 0 && uint64(x) > math.MaxInt64 {
		// Magnitudes beyond int64 take the unsigned write path.
		u := uint64(x)
		buf := make([]byte, f.MaxFormattedLengthUint(u)+1)
		n := f.FormattedWriteUint(u, buf)
		return string(buf[:n])
	}
	return FormatToString(int64(x), f)
}

// Float formats any floating-point value with the shortest round-trip
// formatter.
func Float[T constraints.Float](x T) string {
	return FormatToString(float64(x), Shortest())
}

// Char returns the one-character text for c.
func Char(c rune) string { return string(c) }

// ToString converts a value to its default text form. Numeric values go
// through their category's default formatter (decimal integers, shortest
// round-trip floats); textual inputs (string, []byte) are copied verbatim
// without measurement; nil yields the empty string. A rune is an int32 and
// formats as an integer; use Char for a one-character string. Unsupported
// types panic: the typed helpers Int, Float, and FormatToString are the
// compile-time-checked surface.
func ToString(x any) string {
	switch v := x.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case int:
		return Int(v)
	case int8:
		return Int(v)
	case int16:
		return Int(v)
	case int32:
		return Int(v)
	case int64:
		return Int(v)
	case uint:
		return Int(v)
	case uint8:
		return Int(v)
	case uint16:
		return Int(v)
	case uint32:
		return Int(v)
	case uint64:
		return Int(v)
	case uintptr:
		return Int(v)
	case float32:
		return Float(v)
	case float64:
		return Float(v)
	}
	panic("formatx: ToString called with unsupported type")
}
