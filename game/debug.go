package game

import (
	"io"
	"log"
)

// EnableDebug gates Debug and Debugf. Frontends flip it from a flag.
var EnableDebug = false

var debugLog = log.New(io.Discard, "[invaders] ", log.Lmicroseconds)

// SetDebugOutput redirects debug lines. The browser frontend installs a
// console writer, the desktop frontend a file or stderr.
func SetDebugOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	debugLog.SetOutput(w)
}

// Debug logs its arguments if debug mode is enabled.
func Debug(args ...interface{}) {
	if EnableDebug {
		debugLog.Println(args...)
	}
}

// Debugf logs a formatted message if debug mode is enabled.
func Debugf(format string, args ...interface{}) {
	if EnableDebug {
		debugLog.Printf(format, args...)
	}
}
