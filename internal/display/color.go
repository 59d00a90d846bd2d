// Package display provides terminal color utilities using raw ANSI escape
// codes and a small aligned-table renderer.
//
// It respects the NO_COLOR environment variable (https://no-color.org/) and
// detects whether stdout is a terminal. Colors are automatically disabled
// when output is piped or redirected, or when NO_COLOR is set.
package display

import (
	"fmt"
	"os"
)

// ANSI escape codes for styling.
const (
	reset  = "\033[0m"
	bold   = "\033[1m"
	dim    = "\033[2m"
	green  = "\033[32m"
	yellow = "\033[33m"
	cyan   = "\033[36m"
)

// enabled reports whether color output is active.
// It is set once at init time.
var enabled bool

func init() {
	enabled = shouldEnable()
}

// shouldEnable determines whether to use color output.
func shouldEnable() bool {
	// Respect NO_COLOR (https://no-color.org/).
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	// Respect FORCE_COLOR for testing.
	if _, ok := os.LookupEnv("FORCE_COLOR"); ok {
		return true
	}
	// Disable color when stdout is not a terminal (piped/redirected).
	return isTerminal(os.Stdout)
}

// isTerminal reports whether f is connected to a terminal.
// Uses Stat().Mode() to check for a character device, no cgo needed.
func isTerminal(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

// SetEnabled overrides color detection. Used by tests and --no-color style
// callers.
func SetEnabled(on bool) {
	enabled = on
}

// wrap surrounds s with the given ANSI code when colors are enabled.
func wrap(code, s string) string {
	if !enabled {
		return s
	}
	return fmt.Sprintf("%s%s%s", code, s, reset)
}

// Bold styles s in bold.
func Bold(s string) string { return wrap(bold, s) }

// Dim styles s dimmed; used for prayers that have already passed.
func Dim(s string) string { return wrap(dim, s) }

// Accent styles s in the highlight color; used for the next prayer.
func Accent(s string) string { return wrap(cyan, s) }

// Good styles s in green.
func Good(s string) string { return wrap(green, s) }

// Warn styles s in yellow.
func Warn(s string) string { return wrap(yellow, s) }
