// File: doc.go
// Title: Package Documentation for profile
// Description: Package profile loads named formatter presets from TOML or
//              YAML files and resolves them into formatx formatter values.
// Author: msto63
// Version: v0.1.0
// Created: 2025-11-09
// Modified: 2025-11-09
//
// Change History:
// - 2025-11-09 v0.1.0: Initial implementation with TOML/YAML support

// Package profile turns formatter presets on disk into formatx formatters.
//
// A profile file describes one formatter configuration:
//
//	kind = "int"
//	base = 16
//	width = 4
//	flags = ["pad_zeros", "upper_case"]
//
// or, in YAML:
//
//	kind: fixed
//	precision: 2
//	flags: [plus_sign]
//
// The file format is auto-detected from the extension (.toml, .yaml, .yml)
// and can be forced with LoadWithFormat. Resolution into a formatter is a
// separate step, so a loaded profile can be inspected or adjusted first.
package profile
