// Package cli provides shared formatting helpers for the fabcheck CLI.
package cli

import (
	"os"
	"strings"
)

// colorEnabled is false when NO_COLOR env var is set (per no-color.org).
var colorEnabled = os.Getenv("NO_COLOR") == ""

// Green wraps s in ANSI green. Returns s unchanged when NO_COLOR is set.
func Green(s string) string {
	if !colorEnabled {
		return s
	}
	return "\033[32m" + s + "\033[0m"
}

// Red wraps s in ANSI red. Returns s unchanged when NO_COLOR is set.
func Red(s string) string {
	if !colorEnabled {
		return s
	}
	return "\033[31m" + s + "\033[0m"
}

// Bold wraps s in ANSI bold. Returns s unchanged when NO_COLOR is set.
func Bold(s string) string {
	if !colorEnabled {
		return s
	}
	return "\033[1m" + s + "\033[0m"
}

// PassFail renders a boolean verdict as a colored PASS or FAIL marker.
func PassFail(ok bool) string {
	if ok {
		return Green("PASS")
	}
	return Red("FAIL")
}

// Banner returns s between two divider lines of the given width.
func Banner(s string, width int) string {
	div := strings.Repeat("=", width)
	return div + "\n" + s + "\n" + div
}
