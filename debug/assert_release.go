//go:build !debug

// Package debug provides assertions for driver invariants. They are checked
// when building with the debug tag and compile to nothing otherwise.
package debug

// Enabled reports whether assertions are compiled in. Guard expensive checks
// with it, so release builds can drop them.
const Enabled = false

// Assert panics with message if b is false.
func Assert(b bool, message string) {}
