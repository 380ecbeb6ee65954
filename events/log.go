package events

import "log"

// Logf is the package-level diagnostic logger, defaulting to
// log.Printf. The construction and accessor paths never log; helpers
// such as the synthetic generators route opt-in diagnostics through
// Logf so embedding applications can redirect or silence them.
var Logf func(format string, v ...interface{}) = log.Printf

// SetLogger replaces the package logger. Passing nil installs a no-op
// logger, silencing diagnostics entirely.
func SetLogger(f func(format string, v ...interface{})) {
	if f == nil {
		Logf = func(string, ...interface{}) {}
		return
	}
	Logf = f
}
