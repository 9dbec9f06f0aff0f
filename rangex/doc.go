// File: doc.go
// Title: Package Documentation for rangex
// Description: Package rangex provides a lazy value-range abstraction with a
//              random-access iterator, parameterized over a traits contract so
//              the same range type serves any strictly-ordered discrete domain.
// Author: msto63
// Version: v0.1.0
// Created: 2025-11-08
// Modified: 2025-11-08
//
// Change History:
// - 2025-11-08 v0.1.0: Initial implementation with traits, range, and iterator

// Package rangex provides lazy, O(1)-footprint value ranges.
//
// A ValueRange is an immutable half-open interval [first, last) over some
// discrete, strictly-ordered domain. The values are computed, never
// materialized: iterating a range of a billion integers allocates nothing.
//
// The arithmetic of the domain is supplied by a Traits implementation.
// IntTraits covers every native integer type; custom traits can describe
// other discrete domains (typed indices, calendar units, stepped sequences)
// as long as their Distance stays consistent with their ordering.
//
// Basic usage:
//
//	r := rangex.New(0, 5)
//	r.Do(func(v int) bool {
//		fmt.Println(v) // 0, 1, 2, 3, 4
//		return true
//	})
//
// Iterators are plain values supporting random access:
//
//	it := r.Begin()
//	it.IncBy(3)
//	_ = it.Value()          // 3
//	_ = r.End().Diff(it)    // 2
//
// The package performs no runtime bounds checking. Dereferencing End(),
// stepping outside [first, last], or comparing iterators of unrelated ranges
// are caller errors, not reported conditions.
package rangex
