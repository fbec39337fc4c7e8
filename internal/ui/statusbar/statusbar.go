// Package statusbar renders the bottom line: the document on the left,
// position and curtain state on the right, or an error message.
package statusbar

import (
	"fmt"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/llehouerou/curtains/internal/ui/render"
	"github.com/llehouerou/curtains/internal/ui/styles"
)

// Height is the fixed height of the status bar.
const Height = 1

// Info is what the status bar shows.
type Info struct {
	Name    string
	Kind    string
	Size    string
	Percent float64 // scroll position, 0 to 1
	Ratio   float64 // 0 before the curtains were first shown
	Active  bool    // curtains shown
	Error   string
}

// Render returns the status line at exactly width columns.
func Render(info Info, width int, t *styles.Theme) string {
	if width <= 0 {
		return ""
	}
	s := t.S()

	if info.Error != "" {
		msg := " " + render.Truncate(info.Error, max(width-2, 0))
		return s.Status.Render(s.Error.Render(render.Pad(msg, width)))
	}

	right := rightSide(info)
	// Keep at least a few columns of the name; drop the right side first.
	if uniseg.StringWidth(right)+8 > width {
		right = ""
	}
	nameWidth := width - uniseg.StringWidth(right) - 2
	left := " " + render.Truncate(info.Name, max(nameWidth, 0))
	if info.Kind != "" && uniseg.StringWidth(left)+len(info.Kind)+3 <= nameWidth {
		left += " [" + info.Kind + "]"
	}

	line := render.Row(left, right, width)
	return s.Status.Render(render.TruncateAndPad(line, width))
}

func rightSide(info Info) string {
	parts := []string{fmt.Sprintf("%3.0f%%", info.Percent*100)}
	state := "off"
	if info.Active {
		state = "on"
	}
	curtains := "curtains " + state
	if info.Ratio > 0 {
		curtains += fmt.Sprintf(" %2.0f%%", info.Ratio*100)
	}
	parts = append(parts, curtains)
	if info.Size != "" {
		parts = append(parts, info.Size)
	}
	return strings.Join(parts, " · ") + " "
}
