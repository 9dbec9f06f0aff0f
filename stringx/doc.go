// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides the small string helpers used around
//              the formatting toolkit: clamped prefix/suffix views, affix
//              checks, ASCII whitespace trimming, and callback tokenization.
// Author: msto63
// Version: v0.1.0
// Created: 2025-11-08
// Modified: 2025-11-08
//
// Change History:
// - 2025-11-08 v0.1.0: Initial implementation

// Package stringx provides lightweight string helpers.
//
// Unlike the formatting packages, everything here is byte-oriented and
// allocation-free: the helpers return subslices of their input, never copies.
// Tokenization is callback-driven so a caller can stop early without the
// package ever building a slice of tokens:
//
//	stringx.ForEachToken(" abc ; xy, uvw ,", ";, ", func(tok string) bool {
//		fmt.Println(tok)
//		return true
//	})
package stringx
