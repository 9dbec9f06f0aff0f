// File: stringx.go
// Title: Core String Helpers
// Description: Implements clamped prefix/suffix extraction, affix checks,
//              ASCII whitespace trimming, and early-terminating tokenization.
// Author: msto63
// Version: v0.1.0
// Created: 2025-11-08
// Modified: 2025-11-08
//
// Change History:
// - 2025-11-08 v0.1.0: Initial implementation

package stringx

import "strings"

// asciiSpace holds the characters Trim and friends strip.
const asciiSpace = " \t\n\v\f\r"

// IsEmpty returns true if the string is empty (length 0).
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsBlank returns true if the string is empty or contains only whitespace.
func IsBlank(s string) bool {
	return len(strings.TrimLeft(s, asciiSpace)) == 0
}

// Prefix returns the first n bytes of s. When n exceeds len(s) the whole
// string is returned; no copy is made.
func Prefix(s string, n int) string {
	if n >= len(s) {
		return s
	}
	return s[:n]
}

// Suffix returns the last n bytes of s. When n exceeds len(s) the whole
// string is returned; no copy is made.
func Suffix(s string, n int) string {
	if n >= len(s) {
		return s
	}
	return s[len(s)-n:]
}

// StartsWith reports whether s begins with prefix.
func StartsWith(s, prefix string) bool {
	return strings.HasPrefix(s, prefix)
}

// StartsWithByte reports whether s begins with the byte c.
func StartsWithByte(s string, c byte) bool {
	return len(s) > 0 && s[0] == c
}

// EndsWith reports whether s ends with suffix.
func EndsWith(s, suffix string) bool {
	return strings.HasSuffix(s, suffix)
}

// EndsWithByte reports whether s ends with the byte c.
func EndsWithByte(s string, c byte) bool {
	return len(s) > 0 && s[len(s)-1] == c
}

// TrimLeft returns s with leading ASCII whitespace removed.
func TrimLeft(s string) string {
	return strings.TrimLeft(s, asciiSpace)
}

// TrimRight returns s with trailing ASCII whitespace removed.
func TrimRight(s string) string {
	return strings.TrimRight(s, asciiSpace)
}

// Trim returns s with leading and trailing ASCII whitespace removed.
func Trim(s string) string {
	return strings.Trim(s, asciiSpace)
}

// ForEachToken calls fn for each maximal run of bytes in s that contains none
// of the separator bytes in seps. Empty tokens are never produced. Iteration
// stops early when fn returns false.
func ForEachToken(s, seps string, fn func(token string) bool) {
	for i := 0; i < len(s); {
		for i < len(s) && strings.IndexByte(seps, s[i]) >= 0 {
			i++
		}
		if i == len(s) {
			return
		}
		start := i
		for i < len(s) && strings.IndexByte(seps, s[i]) < 0 {
			i++
		}
		if !fn(s[start:i]) {
			return
		}
	}
}
