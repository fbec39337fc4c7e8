package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/curtains/internal/app/handler"
	"github.com/llehouerou/curtains/internal/document"
	"github.com/llehouerou/curtains/internal/errmsg"
	"github.com/llehouerou/curtains/internal/keymap"
	"github.com/llehouerou/curtains/internal/ui/helpbindings"
	"github.com/llehouerou/curtains/internal/ui/layout"
)

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key dismisses the error
	if m.ErrorMsg != "" {
		m.ErrorMsg = ""
		if msg.String() != "ctrl+c" {
			return m, nil
		}
	}

	if m.ShowHelp {
		_, cmd := m.Help.Update(msg)
		return m, cmd
	}

	_, cmd := handler.NewRouter(m.Keys).
		On("global", m.handleGlobalKeys).
		On("curtains", m.handleCurtainKeys).
		On("document", m.handleDocumentKeys).
		Otherwise(m.scrollPager).
		Dispatch(msg)
	return m, cmd
}

func (m *Model) handleGlobalKeys(a keymap.Action, _ tea.KeyMsg) handler.Result {
	switch a { //nolint:exhaustive // other actions belong to other handlers
	case keymap.ActionQuit:
		m.Shutdown()
		return handler.Handled(tea.Quit)
	case keymap.ActionHelp:
		if m.Height < layout.MinHelpHeight {
			return handler.HandledNoCmd
		}
		m.ShowHelp = true
		m.Help.SetContexts(helpbindings.Sections)
		m.Help.SetSize(m.Width, m.Height)
		return handler.HandledNoCmd
	case keymap.ActionNextDocument:
		m.switchDocument(1)
		return handler.HandledNoCmd
	case keymap.ActionPrevDocument:
		m.switchDocument(-1)
		return handler.HandledNoCmd
	}
	return handler.NotHandled
}

func (m *Model) switchDocument(step int) {
	n := len(m.Pagers)
	if n < 2 {
		return
	}
	m.Current = ((m.Current+step)%n + n) % n
}

func (m *Model) handleCurtainKeys(a keymap.Action, _ tea.KeyMsg) handler.Result {
	switch a { //nolint:exhaustive // other actions belong to other handlers
	case keymap.ActionToggleCurtains:
		return handler.Handled(m.toggleCurtains())
	case keymap.ActionGrowCurtains, keymap.ActionShrinkCurtains:
		// Resizing only applies to visible curtains.
		inst, ok := m.currentInstance()
		if !ok || !inst.Overlay().Active() {
			return handler.HandledNoCmd
		}
		rows := 1.0
		if a == keymap.ActionShrinkCurtains {
			rows = -1
		}
		inst.Grow(rows)
		return handler.HandledNoCmd
	}
	return handler.NotHandled
}

func (m *Model) handleDocumentKeys(a keymap.Action, _ tea.KeyMsg) handler.Result {
	p := m.CurrentPager()
	if p == nil {
		return handler.NotHandled
	}
	switch a { //nolint:exhaustive // other actions belong to other handlers
	case keymap.ActionTop:
		p.ScrollToTop()
		return handler.HandledNoCmd
	case keymap.ActionBottom:
		p.ScrollToBottom()
		return handler.HandledNoCmd
	case keymap.ActionReload:
		doc, err := document.Load(p.Document().Path)
		if err != nil {
			m.ErrorMsg = errmsg.FormatWith(errmsg.OpDocumentReload, p.Document().Name, err)
			return handler.HandledNoCmd
		}
		p.SetDocument(doc)
		return handler.HandledNoCmd
	}
	return handler.NotHandled
}

// scrollPager hands the key to the viewport, whose key map covers the
// scrolling bindings.
func (m *Model) scrollPager(_ keymap.Action, msg tea.KeyMsg) handler.Result {
	p := m.CurrentPager()
	if p == nil {
		return handler.NotHandled
	}
	return handler.Handled(p.Update(msg))
}
