package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/curtains/internal/curtain"
	"github.com/llehouerou/curtains/internal/instance"
	"github.com/llehouerou/curtains/internal/ui/headerbar"
	"github.com/llehouerou/curtains/internal/ui/helpbindings"
	"github.com/llehouerou/curtains/internal/ui/layout"
	"github.com/llehouerou/curtains/internal/ui/statusbar"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case AnimationTickMsg:
		return m.handleAnimationTick(msg)

	case helpbindings.ClosedMsg:
		m.ShowHelp = false
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)
	}

	return m, nil
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.Width = msg.Width
	m.Height = msg.Height
	m.ResizeComponents()
	return m, nil
}

// ResizeComponents sizes every pager to the content area. Pagers notify
// their curtains, which reposition.
func (m *Model) ResizeComponents() {
	height := layout.ContentHeight(m.Height, m.layoutOpts())
	for _, p := range m.Pagers {
		p.SetSize(m.Width, height)
	}
	m.Help.SetSize(m.Width, m.Height)
}

func (m Model) layoutOpts() layout.ContentOpts {
	opts := layout.ContentOpts{StatusBarHeight: statusbar.Height}
	if len(m.Pagers) > 1 {
		opts.HeaderHeight = headerbar.Height
	}
	return opts
}

// handleAnimationTick advances every sliding curtain pair and keeps
// ticking while any of them moves.
func (m Model) handleAnimationTick(msg AnimationTickMsg) (tea.Model, tea.Cmd) {
	if msg.Version != m.AnimationVersion {
		return m, nil
	}
	moving := false
	m.Instances.Each(func(_ instance.ContextID, inst *curtain.Instance) {
		if inst.Overlay().Advance(msg.Time) {
			moving = true
		}
	})
	if moving {
		return m, m.animationTick()
	}
	return m, nil
}
