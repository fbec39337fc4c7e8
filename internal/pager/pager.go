// Package pager is the scrollable document view. It implements the
// curtain surface: it reports live metrics and notifies listeners after
// every scroll and resize.
package pager

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/curtains/internal/document"
	"github.com/llehouerou/curtains/internal/geometry"
)

// Pager shows one document.
type Pager struct {
	doc  *document.Document
	opts document.Options
	vp   viewport.Model

	lines   int
	renderW int
	restore int
	scroll  listeners
	resize  listeners
}

// New creates a pager for doc. Call SetSize before rendering.
func New(doc *document.Document, opts document.Options) *Pager {
	vp := viewport.New(0, 0)
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3
	vp.KeyMap = viewportKeys()
	return &Pager{
		doc:  doc,
		opts: opts,
		vp:   vp,
	}
}

// Document returns the document being shown.
func (p *Pager) Document() *document.Document {
	return p.doc
}

// SetDocument replaces the document, keeping the offset where possible.
// The document length changes, so resize listeners are notified.
func (p *Pager) SetDocument(doc *document.Document) {
	p.doc = doc
	p.render(p.renderW)
	p.vp.SetYOffset(p.vp.YOffset)
	p.resize.notify()
}

// SetSize resizes the view, re-renders the document for the new width and
// notifies resize listeners.
func (p *Pager) SetSize(width, height int) {
	width = max(width, 0)
	height = max(height, 0)
	if width == p.vp.Width && height == p.vp.Height && p.renderW == width {
		return
	}

	p.vp.Width = width
	p.vp.Height = height
	if p.renderW != width {
		p.render(width)
	}
	offset := p.vp.YOffset
	if p.restore > 0 {
		offset, p.restore = p.restore, 0
	}
	// Shrinking can leave the offset past the end.
	p.vp.SetYOffset(offset)
	p.resize.notify()
}

func (p *Pager) render(width int) {
	lines := p.doc.Render(max(width, 1), p.opts)
	p.lines = len(lines)
	p.renderW = width
	p.vp.SetContent(strings.Join(lines, "\n"))
}

// Update routes keys and wheel events to the viewport and notifies scroll
// listeners when the offset changed.
func (p *Pager) Update(msg tea.Msg) tea.Cmd {
	before := p.vp.YOffset
	var cmd tea.Cmd
	p.vp, cmd = p.vp.Update(msg)
	if p.vp.YOffset != before {
		p.scroll.notify()
	}
	return cmd
}

// ScrollTo moves to offset, clamped to the document.
func (p *Pager) ScrollTo(offset int) {
	before := p.vp.YOffset
	p.vp.SetYOffset(offset)
	if p.vp.YOffset != before {
		p.scroll.notify()
	}
}

// Restore sets the offset to show once the pager has a size. Listeners
// are not notified.
func (p *Pager) Restore(offset int) {
	if p.renderW > 0 {
		p.vp.SetYOffset(offset)
		return
	}
	p.restore = offset
}

// ScrollToTop jumps to the first line.
func (p *Pager) ScrollToTop() {
	p.ScrollTo(0)
}

// ScrollToBottom jumps to the last page.
func (p *Pager) ScrollToBottom() {
	p.ScrollTo(p.lines)
}

// Offset returns the index of the first visible line.
func (p *Pager) Offset() int {
	return p.vp.YOffset
}

// Percent returns how far the view is scrolled, from 0 to 1.
func (p *Pager) Percent() float64 {
	return p.vp.ScrollPercent()
}

// Height returns the viewport height in rows.
func (p *Pager) Height() int {
	return p.vp.Height
}

// Width returns the viewport width in columns.
func (p *Pager) Width() int {
	return p.vp.Width
}

// View renders the visible rows.
func (p *Pager) View() string {
	return p.vp.View()
}

// Metrics implements curtain.Surface.
func (p *Pager) Metrics() geometry.Metrics {
	return geometry.Metrics{
		ViewportHeight: float64(p.vp.Height),
		ScrollY:        float64(p.vp.YOffset),
		DocumentHeight: float64(p.lines),
	}
}

// OnScroll implements curtain.Surface.
func (p *Pager) OnScroll(fn func()) func() {
	return p.scroll.add(fn)
}

// OnResize implements curtain.Surface.
func (p *Pager) OnResize(fn func()) func() {
	return p.resize.add(fn)
}

// Listeners returns the number of registered scroll and resize listeners.
func (p *Pager) Listeners() (scroll, resize int) {
	return p.scroll.len(), p.resize.len()
}
