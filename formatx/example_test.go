// File: example_test.go
// Title: Formatting Examples
// Description: Runnable examples demonstrating formatter configuration, the
//              measure-then-write protocol, and the convenience layer.
// Author: msto63
// Version: v0.1.0
// Created: 2025-11-09
// Modified: 2025-11-09
//
// Change History:
// - 2025-11-09 v0.1.0: Initial example implementation

package formatx_test

import (
	"fmt"

	"github.com/msto63/formatkit/formatx"
)

func ExampleToString() {
	fmt.Println(formatx.ToString(-42))
	fmt.Println(formatx.ToString(3.14))
	fmt.Println(formatx.ToString("already text"))
	// Output:
	// -42
	// 3.14
	// already text
}

func ExampleIntFormatter() {
	f := formatx.Hex().WithWidth(4).Or(formatx.PadZeros | formatx.UpperCase)
	fmt.Println(formatx.FormatToString(int64(255), f))
	// Output: 00FF
}

func ExampleFloatFormatter() {
	fixed := formatx.Fixed().WithPrecision(2)
	sci := formatx.Sci().WithPrecision(2)

	fmt.Println(formatx.FormatToString(125.0, fixed))
	fmt.Println(formatx.FormatToString(125.0, sci))
	// Output:
	// 125.00
	// 1.25e+02
}

func ExampleShortestFormatter() {
	f := formatx.Shortest()
	fmt.Println(formatx.FormatToString(0.1, f))
	fmt.Println(formatx.FormatToString(1e300, f))
	// Output:
	// 0.1
	// 1e+300
}

func ExampleFormatToString() {
	// The two-phase protocol, spelled out: measure, size once, write, trim.
	f := formatx.Dec().WithWidth(6).Or(formatx.PadZeros)
	x := int64(-42)

	n := f.MaxFormattedLength(x)
	buf := make([]byte, n+1)
	w := f.FormattedWrite(x, buf)
	fmt.Println(string(buf[:w]))
	// Output: -00042
}
