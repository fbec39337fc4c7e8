package document

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// fit splits text into lines no wider than width, wrapping or truncating.
func fit(text string, width int, wrap bool) []string {
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return []string{""}
	}

	src := strings.Split(text, "\n")
	// Highlighters may leave a reset sequence on a line of its own.
	for len(src) > 1 && strings.TrimSpace(ansi.Strip(src[len(src)-1])) == "" {
		src = src[:len(src)-1]
	}
	out := make([]string, 0, len(src))
	for _, line := range src {
		if ansi.StringWidth(line) <= width {
			out = append(out, line)
			continue
		}
		if !wrap {
			out = append(out, ansi.Truncate(line, width, ""))
			continue
		}
		out = append(out, strings.Split(ansi.Hardwrap(line, width, true), "\n")...)
	}
	return out
}
