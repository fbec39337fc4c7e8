package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// frameInterval paces the curtain slide.
const frameInterval = time.Second / 30

// AnimationTickMsg advances curtain transitions. The Version field is used
// to ignore ticks from an earlier toggle.
type AnimationTickMsg struct {
	Version int
	Time    time.Time
}

// animationTick schedules the next frame for the current version.
func (m Model) animationTick() tea.Cmd {
	version := m.AnimationVersion
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return AnimationTickMsg{Version: version, Time: t}
	})
}
