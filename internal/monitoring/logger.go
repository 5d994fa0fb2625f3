// Package monitoring carries the toolkit's diagnostic logging hook.
package monitoring

import "log"

// Logf emits diagnostic output from the library packages. Commands leave it
// pointing at log.Printf; tests can swap it via SetLogger to silence a
// package under test.
var Logf func(format string, v ...any) = log.Printf

// SetLogger replaces the package logger. Passing nil installs a no-op
// logger.
func SetLogger(f func(format string, v ...any)) {
	if f == nil {
		Logf = func(string, ...any) {}
		return
	}
	Logf = f
}
