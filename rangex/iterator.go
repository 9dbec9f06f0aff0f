// File: iterator.go
// Title: Random-Access Range Iterator
// Description: Implements the computed iterator over a ValueRange. The
//              iterator stores only the current value and its traits; every
//              operation is a pure function of those two.
// Author: msto63
// Version: v0.1.0
// Created: 2025-11-08
// Modified: 2025-11-08
//
// Change History:
// - 2025-11-08 v0.1.0: Initial implementation

package rangex

// Iterator is a random-access iterator over a value range. It is a derived,
// recomputed view: there is no backing storage, so Value returns the current
// value by value. All bulk movement is O(1) through the traits.
//
// Movement outside [first, last] and dereferencing the End() position are
// undefined; the iterator performs no checks.
type Iterator[T any, Tr Traits[T]] struct {
	v      T
	traits Tr
}

// Value returns the value at the current position.
func (it Iterator[T, Tr]) Value() T { return it.v }

// At returns the value n steps from the current position.
func (it Iterator[T, Tr]) At(n int) T { return it.traits.Advance(it.v, n) }

// Inc moves the iterator forward by one step.
func (it *Iterator[T, Tr]) Inc() { it.v = it.traits.Next(it.v) }

// Dec moves the iterator backward by one step.
func (it *Iterator[T, Tr]) Dec() { it.v = it.traits.Prev(it.v) }

// IncBy moves the iterator forward by n steps.
func (it *Iterator[T, Tr]) IncBy(n int) { it.v = it.traits.Advance(it.v, n) }

// DecBy moves the iterator backward by n steps.
func (it *Iterator[T, Tr]) DecBy(n int) { it.v = it.traits.Retreat(it.v, n) }

// Add returns a new iterator n steps forward.
func (it Iterator[T, Tr]) Add(n int) Iterator[T, Tr] {
	return Iterator[T, Tr]{v: it.traits.Advance(it.v, n), traits: it.traits}
}

// Sub returns a new iterator n steps backward.
func (it Iterator[T, Tr]) Sub(n int) Iterator[T, Tr] {
	return Iterator[T, Tr]{v: it.traits.Retreat(it.v, n), traits: it.traits}
}

// Diff returns the signed number of steps from other to it.
func (it Iterator[T, Tr]) Diff(other Iterator[T, Tr]) int {
	return it.traits.Distance(other.v, it.v)
}

// Eq reports whether both iterators are at the same position.
func (it Iterator[T, Tr]) Eq(other Iterator[T, Tr]) bool { return it.traits.Eq(it.v, other.v) }

// Ne reports whether the iterators are at different positions.
func (it Iterator[T, Tr]) Ne(other Iterator[T, Tr]) bool { return !it.traits.Eq(it.v, other.v) }

// Lt reports whether it is positioned before other.
func (it Iterator[T, Tr]) Lt(other Iterator[T, Tr]) bool { return it.traits.Lt(it.v, other.v) }

// Le reports whether it is positioned before or at other.
func (it Iterator[T, Tr]) Le(other Iterator[T, Tr]) bool { return it.traits.Le(it.v, other.v) }

// Gt reports whether it is positioned after other.
func (it Iterator[T, Tr]) Gt(other Iterator[T, Tr]) bool { return it.traits.Lt(other.v, it.v) }

// Ge reports whether it is positioned at or after other.
func (it Iterator[T, Tr]) Ge(other Iterator[T, Tr]) bool { return it.traits.Le(other.v, it.v) }
