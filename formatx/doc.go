// File: doc.go
// Title: Package Documentation for formatx
// Description: Package formatx provides a numeric and string formatting
//              toolkit built around immutable formatter configurations and a
//              two-phase measure-then-write protocol.
// Author: msto63
// Version: v0.1.0
// Created: 2025-11-08
// Modified: 2025-11-09
//
// Change History:
// - 2025-11-08 v0.1.0: Initial implementation with integer and float formatters
// - 2025-11-09 v0.1.0: Shortest round-trip formatter and generic dispatch

// Package formatx provides fast numeric formatting with exact buffer sizing.
//
// Every formatter is an immutable value exposing the same two-phase surface:
//
//	n := f.MaxFormattedLength(x) // measure the worst case
//	buf := make([]byte, n+1)     // size once, never reallocate
//	w := f.FormattedWrite(x, buf)
//	s := string(buf[:w])         // trim to what was actually written
//
// FormatToString packages those steps; ToString additionally picks the
// default formatter for a value's numeric category (decimal for integers,
// shortest round-trip for floats).
//
// Configuration is fluent and copy-on-write: WithWidth, WithBase, Or and
// friends return new formatter values, so configured formatters can be shared
// freely across goroutines.
//
// There is no recoverable error path. An undersized buffer or a write that
// exceeds its own measurement is a caller/implementation contract violation
// and panics; partial or truncated output is never produced.
package formatx
