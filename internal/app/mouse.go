package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/curtains/internal/ui/layout"
)

// handleMouseMsg routes grip drags to the curtains and everything else to
// the pager. Pointer rows are used as drag coordinates; deltas do not
// depend on the header offset.
func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.ShowHelp {
		return m, nil
	}
	p := m.CurrentPager()
	if p == nil {
		return m, nil
	}
	inst, hasCurtains := m.currentInstance()
	y := float64(msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft && hasCurtains {
			row, inside := layout.ContentRow(msg.Y, m.Height, m.layoutOpts())
			if grip, ok := inst.GripAt(row); inside && ok {
				inst.Drag().Press(grip, y)
				return m, nil
			}
		}
		if tea.MouseEvent(msg).IsWheel() {
			return m, p.Update(msg)
		}

	case tea.MouseActionMotion:
		if hasCurtains && inst.Drag().Active() {
			inst.Drag().Move(y, msg.Button == tea.MouseButtonLeft)
		}

	case tea.MouseActionRelease:
		if hasCurtains {
			inst.Drag().Release()
		}
	}

	return m, nil
}
