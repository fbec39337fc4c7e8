// Package testutil has helpers for asserting on rendered terminal output.
package testutil

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// StripANSI removes escape sequences so output compares as plain text.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// Lines strips s and splits it into rows.
func Lines(s string) []string {
	return strings.Split(StripANSI(s), "\n")
}

// Row returns row i of the stripped output with trailing blanks removed,
// or "" when out has fewer rows.
func Row(out string, i int) string {
	lines := Lines(out)
	if i < 0 || i >= len(lines) {
		return ""
	}
	return strings.TrimRight(lines[i], " ")
}
