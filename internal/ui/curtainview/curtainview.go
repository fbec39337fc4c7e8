// Package curtainview draws a curtain pair over the pager's rows.
package curtainview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/curtains/internal/drag"
	"github.com/llehouerou/curtains/internal/ui/overlay"
	"github.com/llehouerou/curtains/internal/ui/styles"
)

// GripHandle is drawn centered on a grip row.
const GripHandle = "━━━━━━"

// Bars is what the renderer needs from a curtain instance.
type Bars interface {
	VisibleRows(grip drag.Grip) int
}

// Params describes one frame.
type Params struct {
	Width  int
	Height int
	// Shadow dims the row just inside each curtain.
	Shadow bool
	// Dragging marks the grip currently held, if any.
	Dragging *drag.Grip
}

// Render paints both curtains onto base, a Height-row view.
func Render(base string, bars Bars, t *styles.Theme, p Params) string {
	top := min(bars.VisibleRows(drag.Top), p.Height)
	bottom := min(bars.VisibleRows(drag.Bottom), p.Height-top)
	if top <= 0 && bottom <= 0 {
		return base
	}

	// Shadows first so the curtains cover any overlap.
	shadow := func(line string) string {
		return t.S().Shadow.Render(ansi.Strip(line))
	}
	if p.Shadow && top > 0 {
		base = overlay.MapRows(base, top, top+1, shadow)
	}
	if p.Shadow && bottom > 0 {
		base = overlay.MapRows(base, p.Height-bottom-1, p.Height-bottom, shadow)
	}

	held := func(g drag.Grip) bool { return p.Dragging != nil && *p.Dragging == g }
	if top > 0 {
		base = overlay.ReplaceRows(base, 0, Rows(top, p.Width, t, false, held(drag.Top)))
	}
	if bottom > 0 {
		base = overlay.ReplaceRows(base, p.Height-bottom, Rows(bottom, p.Width, t, true, held(drag.Bottom)))
	}
	return base
}

// Rows renders n curtain rows of the given width. Colors fade from the
// outer edge to the inner edge, where the grip row sits. For the bottom
// curtain the inner edge is the first row.
func Rows(n, width int, t *styles.Theme, bottom, held bool) []string {
	if n <= 0 {
		return nil
	}
	colors := styles.Blend(n, t.Curtain, t.CurtainEdge)
	rows := make([]string, n)
	for i := range n {
		c := colors[i]
		at := i
		if bottom {
			at = n - 1 - i
		}
		if i == n-1 {
			rows[at] = gripRow(width, c, t, held)
			continue
		}
		rows[at] = lipgloss.NewStyle().Background(c).Render(strings.Repeat(" ", max(width, 0)))
	}
	return rows
}

func gripRow(width int, bg lipgloss.Color, t *styles.Theme, held bool) string {
	fg := t.Grip
	if held {
		fg = t.Primary
	}
	style := lipgloss.NewStyle().Background(bg)
	handle := GripHandle
	if w := ansi.StringWidth(handle); w > width {
		handle = ansi.Truncate(handle, width, "")
	}
	hw := ansi.StringWidth(handle)
	left := (width - hw) / 2
	right := width - hw - left
	return style.Render(strings.Repeat(" ", max(left, 0))) +
		style.Foreground(fg).Render(handle) +
		style.Render(strings.Repeat(" ", max(right, 0)))
}
