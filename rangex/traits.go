// File: traits.go
// Title: Range Traits Contract
// Description: Defines the Traits capability set that supplies the arithmetic
//              of a range's value domain, plus the default IntTraits
//              implementation covering all native integer types.
// Author: msto63
// Version: v0.1.0
// Created: 2025-11-08
// Modified: 2025-11-10
//
// Change History:
// - 2025-11-08 v0.1.0: Initial implementation
// - 2025-11-10 v0.1.1: Correct negative distances over unsigned domains

package rangex

import "golang.org/x/exp/constraints"

// Traits supplies the arithmetic over a range's value domain. A conforming
// implementation must keep Distance consistent with the ordering:
// Advance(x, Distance(x, y)) == y for any x, y in the domain, and
// Distance(x, y) > 0 exactly when Lt(x, y).
//
// Advance and Retreat must be equivalent to n unit steps, but are expected
// to compute the result directly in O(1).
type Traits[T any] interface {
	// Next returns the successor of x.
	Next(x T) T

	// Prev returns the predecessor of x.
	Prev(x T) T

	// Advance returns x moved forward by n steps (n may be negative).
	Advance(x T, n int) T

	// Retreat returns x moved backward by n steps (n may be negative).
	Retreat(x T, n int) T

	// Eq reports whether x equals y.
	Eq(x, y T) bool

	// Lt reports whether x orders strictly before y.
	Lt(x, y T) bool

	// Le reports whether x orders before or equals y.
	Le(x, y T) bool

	// Distance returns the signed number of steps from x to y.
	Distance(x, y T) int
}

// IntTraits is the default Traits implementation for native integer domains.
// It is a zero-size value; a fresh instance is handed to every iterator.
type IntTraits[T constraints.Integer] struct{}

func (IntTraits[T]) Next(x T) T { return x + 1 }

func (IntTraits[T]) Prev(x T) T { return x - 1 }

func (IntTraits[T]) Advance(x T, n int) T { return x + T(n) }

func (IntTraits[T]) Retreat(x T, n int) T { return x - T(n) }

func (IntTraits[T]) Eq(x, y T) bool { return x == y }

func (IntTraits[T]) Lt(x, y T) bool { return x < y }

func (IntTraits[T]) Le(x, y T) bool { return x <= y }

// Distance subtracts in the direction that cannot go below zero, so unsigned
// domains yield correct negative step counts. The true distance must fit in
// an int.
func (IntTraits[T]) Distance(x, y T) int {
	if x <= y {
		return int(y - x)
	}
	return -int(x - y)
}
