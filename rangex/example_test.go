// File: example_test.go
// Title: Value Range Examples
// Description: Runnable examples demonstrating range construction, iteration,
//              and random-access iterator arithmetic.
// Author: msto63
// Version: v0.1.0
// Created: 2025-11-08
// Modified: 2025-11-08
//
// Change History:
// - 2025-11-08 v0.1.0: Initial example implementation

package rangex_test

import (
	"fmt"

	"github.com/msto63/formatkit/rangex"
)

func ExampleNew() {
	r := rangex.New(0, 5)

	fmt.Println("size:", r.Size())
	fmt.Println("values:", r.Values())
	// Output:
	// size: 5
	// values: [0 1 2 3 4]
}

func ExampleValueRange_Do() {
	// Walk lazily and stop early; no slice is ever built.
	rangex.New(1, 1000000).Do(func(v int) bool {
		fmt.Println(v)
		return v < 3
	})
	// Output:
	// 1
	// 2
	// 3
}

func ExampleIterator_Add() {
	r := rangex.New(100, 200)

	it := r.Begin().Add(25)
	fmt.Println(it.Value())
	fmt.Println(r.End().Diff(it))
	// Output:
	// 125
	// 75
}
