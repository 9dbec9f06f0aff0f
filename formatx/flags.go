// File: flags.go
// Title: Formatting Flags
// Description: Defines the flag bitmask shared by all formatter
//              configurations and its composition helpers.
// Author: msto63
// Version: v0.1.0
// Created: 2025-11-08
// Modified: 2025-11-08
//
// Change History:
// - 2025-11-08 v0.1.0: Initial implementation

package formatx

import "strings"

// Flags is a bitmask of formatting options shared by all formatters.
type Flags uint

const (
	// UpperCase renders hex digits, exponent symbols, and special values
	// (INF, NAN) in upper case.
	UpperCase Flags = 1 << iota

	// PadZeros pads with leading zeros instead of spaces. The sign character
	// always precedes the zero padding.
	PadZeros

	// PlusSign writes an explicit '+' before non-negative values.
	PlusSign

	// LeftJust is accepted and preserved in configurations but has no effect
	// on the base write path.
	LeftJust

	// Quoted is accepted and preserved in configurations but has no effect
	// on the base write path.
	Quoted
)

// Any reports whether f has any of the bits in mask set.
func (f Flags) Any(mask Flags) bool { return f&mask != 0 }

// String returns a pipe-separated list of the set flag names.
func (f Flags) String() string {
	if f == 0 {
		return "none"
	}
	names := make([]string, 0, 5)
	if f.Any(UpperCase) {
		names = append(names, "upper_case")
	}
	if f.Any(PadZeros) {
		names = append(names, "pad_zeros")
	}
	if f.Any(PlusSign) {
		names = append(names, "plus_sign")
	}
	if f.Any(LeftJust) {
		names = append(names, "left_just")
	}
	if f.Any(Quoted) {
		names = append(names, "quoted")
	}
	return strings.Join(names, "|")
}
