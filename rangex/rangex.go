// File: rangex.go
// Title: Value Range Implementation
// Description: Implements ValueRange, an immutable half-open interval over a
//              discrete ordered domain with O(1) memory footprint regardless
//              of range size.
// Author: msto63
// Version: v0.1.0
// Created: 2025-11-08
// Modified: 2025-11-08
//
// Change History:
// - 2025-11-08 v0.1.0: Initial implementation

package rangex

import "golang.org/x/exp/constraints"

// ValueRange is an immutable half-open interval [first, last) over a domain
// described by Tr. It is a plain value type: construct once, copy freely.
type ValueRange[T any, Tr Traits[T]] struct {
	first  T
	last   T
	traits Tr
}

// New returns the half-open integer range [first, last) using IntTraits.
// Reversed bounds (last < first) are normalized to the empty range [first, first).
func New[T constraints.Integer](first, last T) ValueRange[T, IntTraits[T]] {
	return NewWithTraits[T, IntTraits[T]](first, last, IntTraits[T]{})
}

// NewWithTraits returns the half-open range [first, last) over the domain
// described by tr. Reversed bounds are normalized to the empty range.
func NewWithTraits[T any, Tr Traits[T]](first, last T, tr Tr) ValueRange[T, Tr] {
	if tr.Lt(last, first) {
		last = first
	}
	return ValueRange[T, Tr]{first: first, last: last, traits: tr}
}

// First returns the inclusive lower bound.
func (r ValueRange[T, Tr]) First() T { return r.first }

// Last returns the exclusive upper bound.
func (r ValueRange[T, Tr]) Last() T { return r.last }

// Size returns the number of values in the range.
func (r ValueRange[T, Tr]) Size() int { return r.traits.Distance(r.first, r.last) }

// Empty reports whether the range contains no values.
func (r ValueRange[T, Tr]) Empty() bool { return r.traits.Eq(r.first, r.last) }

// Begin returns an iterator positioned at the first value.
func (r ValueRange[T, Tr]) Begin() Iterator[T, Tr] {
	return Iterator[T, Tr]{v: r.first, traits: r.traits}
}

// End returns the past-the-end iterator. It must not be dereferenced.
func (r ValueRange[T, Tr]) End() Iterator[T, Tr] {
	return Iterator[T, Tr]{v: r.last, traits: r.traits}
}

// Swap exchanges the bounds of r and other.
func (r *ValueRange[T, Tr]) Swap(other *ValueRange[T, Tr]) {
	r.first, other.first = other.first, r.first
	r.last, other.last = other.last, r.last
}

// Do calls fn for each value of the range in order, stopping early when fn
// returns false.
func (r ValueRange[T, Tr]) Do(fn func(v T) bool) {
	for v := r.first; r.traits.Lt(v, r.last); v = r.traits.Next(v) {
		if !fn(v) {
			return
		}
	}
}

// Values collects the whole range into a slice. Intended for small ranges
// and tests; large ranges should be walked with Do or an iterator.
func (r ValueRange[T, Tr]) Values() []T {
	out := make([]T, 0, r.Size())
	r.Do(func(v T) bool {
		out = append(out, v)
		return true
	})
	return out
}
