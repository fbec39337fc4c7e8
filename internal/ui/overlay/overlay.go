// Package overlay composites rendered layers onto a base view.
package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Compose overlays content on top of a base view.
// Non-space characters in overlay replace the base at the same position.
// ANSI sequences in either layer are preserved.
func Compose(base, overlay string, width int) string {
	baseLines := strings.Split(base, "\n")
	overlayLines := strings.Split(overlay, "\n")

	for i, overlayLine := range overlayLines {
		if i >= len(baseLines) {
			break
		}

		plain := ansi.Strip(overlayLine)
		if strings.TrimSpace(plain) == "" {
			continue
		}

		startCol := ansi.StringWidth(plain) - ansi.StringWidth(strings.TrimLeft(plain, " "))
		endCol := ansi.StringWidth(strings.TrimRight(plain, " "))
		content := ansi.Cut(overlayLine, startCol, endCol)

		baseLine := baseLines[i]
		if w := ansi.StringWidth(baseLine); w < width {
			baseLine += strings.Repeat(" ", width-w)
		}

		line := ansi.Cut(baseLine, 0, startCol) + content
		if endCol < width {
			line += ansi.Cut(baseLine, endCol, width)
		}
		baseLines[i] = line
	}

	return strings.Join(baseLines, "\n")
}

// Center composes box in the middle of a width x height base.
func Center(base, box string, width, height int) string {
	placed := lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box,
		lipgloss.WithWhitespaceChars(" "))
	return Compose(base, placed, width)
}

// ReplaceRows swaps whole rows of base, starting at row from, for rows.
// Rows outside base are ignored.
func ReplaceRows(base string, from int, rows []string) string {
	if len(rows) == 0 {
		return base
	}
	lines := strings.Split(base, "\n")
	for i, row := range rows {
		at := from + i
		if at < 0 || at >= len(lines) {
			continue
		}
		lines[at] = row
	}
	return strings.Join(lines, "\n")
}

// MapRows applies fn to the rows of base in [from, to).
func MapRows(base string, from, to int, fn func(string) string) string {
	lines := strings.Split(base, "\n")
	for i := max(from, 0); i < min(to, len(lines)); i++ {
		lines[i] = fn(lines[i])
	}
	return strings.Join(lines, "\n")
}
