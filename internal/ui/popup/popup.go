// Package popup draws modal boxes over the page.
package popup

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/curtains/internal/ui/styles"
)

// Popup is a modal component. It receives every key while shown and
// reports its own dismissal through a message.
type Popup interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Popup, tea.Cmd)
	// View renders the content only. Frame adds the border.
	View() string
	SetSize(width, height int)
}

// Frame wraps content in a rounded border sized to fit it, no wider than
// the screen. Callers bound the content height. The result is not
// positioned; compose it with overlay.Center.
func Frame(content string, screenW int) string {
	width := frameWidth(content, screenW)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.T().Border).
		Width(width-2). // border
		Padding(1, 2).
		Render(content)
}

func frameWidth(content string, screenW int) int {
	width := maxLineWidth(content) + 6 // padding + border
	return max(min(width, screenW-4), 7)
}

func maxLineWidth(s string) int {
	maxW := 0
	for line := range strings.SplitSeq(s, "\n") {
		maxW = max(maxW, lipgloss.Width(line))
	}
	return maxW
}
