package app

import (
	"strings"

	"github.com/llehouerou/curtains/internal/drag"
	"github.com/llehouerou/curtains/internal/ui/curtainview"
	"github.com/llehouerou/curtains/internal/ui/headerbar"
	"github.com/llehouerou/curtains/internal/ui/overlay"
	"github.com/llehouerou/curtains/internal/ui/popup"
	"github.com/llehouerou/curtains/internal/ui/statusbar"
)

// View renders the application UI.
func (m Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return ""
	}
	p := m.CurrentPager()
	if p == nil {
		return statusbar.Render(statusbar.Info{Error: "no document"}, m.Width, m.Theme)
	}

	var parts []string
	if m.layoutOpts().HeaderHeight > 0 {
		names := make([]string, len(m.Pagers))
		for i, pg := range m.Pagers {
			names[i] = pg.Document().Name
		}
		parts = append(parts, headerbar.Render(names, m.Current, m.Width))
	}

	// Curtains are the last pass over the page so they cover everything.
	page := p.View()
	if inst, ok := m.currentInstance(); ok {
		params := curtainview.Params{
			Width:  m.Width,
			Height: p.Height(),
			Shadow: inst.Overlay().Shadow(),
		}
		for _, g := range drag.Grips {
			if inst.Drag().Dragging(g) {
				params.Dragging = &g
			}
		}
		page = curtainview.Render(page, inst, m.Theme, params)
	}
	if p.Height() > 0 {
		parts = append(parts, page)
	}
	parts = append(parts, statusbar.Render(m.statusInfo(), m.Width, m.Theme))

	view := strings.Join(parts, "\n")
	if m.ShowHelp {
		view = overlay.Center(view, popup.Frame(m.Help.View(), m.Width), m.Width, m.Height)
	}
	return view
}

func (m Model) statusInfo() statusbar.Info {
	p := m.CurrentPager()
	doc := p.Document()
	info := statusbar.Info{
		Name:    doc.Name,
		Kind:    doc.Kind.String(),
		Size:    doc.Size(),
		Percent: p.Percent(),
		Error:   m.ErrorMsg,
	}
	if inst, ok := m.currentInstance(); ok {
		info.Ratio = inst.Ratio()
		info.Active = inst.Overlay().Active()
	}
	return info
}
