// Package headerbar renders the row of open document tabs.
package headerbar

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/curtains/internal/ui/render"
	"github.com/llehouerou/curtains/internal/ui/styles"
)

// Height is the fixed height of the header bar (single line).
const Height = 1

// maxTabWidth bounds one tab's name so a long path cannot push the
// others off screen.
const maxTabWidth = 24

var (
	activeKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)

	inactiveKeyStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("244"))

	inactiveNameStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("250"))

	separatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// Render returns the header bar for the given document names, with the
// current one highlighted. Tabs that do not fit are dropped from the end,
// keeping the current one visible.
func Render(names []string, current, width int) string {
	if width < 10 || len(names) == 0 {
		return ""
	}

	separator := separatorStyle.Render(" │ ")
	sepWidth := lipgloss.Width(separator)

	parts := make([]string, len(names))
	for i, name := range names {
		name = render.TruncateEllipsis(name, maxTabWidth)
		if i == current {
			t := styles.T()
			parts[i] = activeKeyStyle.Render(strconv.Itoa(i+1)) + " " +
				styles.Gradient(name, lipgloss.NewStyle().Bold(true), t.Primary, t.Secondary)
			continue
		}
		parts[i] = inactiveKeyStyle.Render(strconv.Itoa(i+1)) + " " +
			inactiveNameStyle.Render(name)
	}

	// Slide the window of tabs right until the current tab fits.
	start := 0
	var content string
	for start <= current && start < len(parts) {
		content = fit(parts[start:], separator, sepWidth, width)
		if start == current || strings.Contains(content, parts[current]) {
			break
		}
		start++
	}

	if w := lipgloss.Width(content); w < width {
		content = strings.Repeat(" ", (width-w)/2) + content
	}
	return content
}

// fit joins as many leading parts as fit in width.
func fit(parts []string, separator string, sepWidth, width int) string {
	var b strings.Builder
	used := 0
	for i, p := range parts {
		w := lipgloss.Width(p)
		if i > 0 {
			w += sepWidth
		}
		if used+w > width {
			if i == 0 {
				return ansi.Truncate(p, width, "…")
			}
			break
		}
		if i > 0 {
			b.WriteString(separator)
		}
		b.WriteString(p)
		used += w
	}
	return b.String()
}
