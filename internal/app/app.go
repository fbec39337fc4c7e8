// Package app is the bubbletea program: it owns the open documents, routes
// keys and mouse events to them and to their curtains, and draws the frame.
package app

import (
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/curtains/internal/config"
	"github.com/llehouerou/curtains/internal/curtain"
	"github.com/llehouerou/curtains/internal/debounce"
	"github.com/llehouerou/curtains/internal/document"
	"github.com/llehouerou/curtains/internal/errmsg"
	"github.com/llehouerou/curtains/internal/instance"
	"github.com/llehouerou/curtains/internal/keymap"
	"github.com/llehouerou/curtains/internal/pager"
	"github.com/llehouerou/curtains/internal/ratio"
	"github.com/llehouerou/curtains/internal/state"
	"github.com/llehouerou/curtains/internal/ui/helpbindings"
	"github.com/llehouerou/curtains/internal/ui/styles"
)

// Model is the root application model containing all state.
type Model struct {
	Pagers    []*pager.Pager
	Current   int
	Instances *instance.Manager
	StateMgr  state.Interface
	Keys      *keymap.Resolver
	Theme     *styles.Theme
	Help      *helpbindings.Model
	ShowHelp  bool
	ErrorMsg  string
	Width     int
	Height    int

	// AnimationVersion invalidates animation ticks scheduled before the
	// latest toggle, so only one tick chain runs at a time.
	AnimationVersion int

	opts       document.Options
	transition time.Duration
	closed     bool
}

// Options configures New.
type Options struct {
	Config    *config.Config
	State     state.Interface // required
	Documents []*document.Document
	// Scheduler drives the ratio save debounce. Nil means real timers.
	Scheduler debounce.Scheduler
}

// New creates the application model. Each document gets a pager restored
// to its saved reading position.
func New(o Options) Model {
	cfg := o.Config
	if cfg == nil {
		cfg = config.Default()
	}

	m := Model{
		StateMgr:   o.State,
		Keys:       keymap.NewResolver(keymap.Bindings),
		Theme:      styles.T().WithCurtainColors(cfg.Theme.Curtain, cfg.Theme.CurtainEdge, cfg.Theme.Grip),
		opts:       document.Options{TabWidth: cfg.TabWidth, Wrap: cfg.Wrap},
		transition: cfg.Transition(),
	}

	settings, scheduler, transition := o.State, o.Scheduler, m.transition
	m.Instances = instance.New(func(id instance.ContextID, surface curtain.Surface) *curtain.Instance {
		log.Printf("curtains: new instance for %s", id)
		return curtain.New(surface, ratio.NewStore(settings, scheduler), transition)
	})

	seen := make(map[string]bool)
	for _, doc := range o.Documents {
		if seen[doc.Path] {
			continue
		}
		seen[doc.Path] = true
		m.Pagers = append(m.Pagers, m.newPager(doc))
	}

	help := helpbindings.New(helpbindings.Sections...)
	m.Help = &help

	if cfg.StartActive && len(m.Pagers) > 0 {
		m.toggleCurtains()
	}
	return m
}

// newPager builds a pager for doc, restores its reading position and
// saves the position after every scroll.
func (m *Model) newPager(doc *document.Document) *pager.Pager {
	p := pager.New(doc, m.opts)
	if offset, err := m.StateMgr.GetPosition(doc.Path); err != nil {
		log.Print(errmsg.FormatWith(errmsg.OpPositionLoad, doc.Path, err))
	} else if offset > 0 {
		p.Restore(offset)
	}
	st := m.StateMgr
	p.OnScroll(func() {
		st.SavePosition(p.Document().Path, p.Offset())
	})
	return p
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if inst, ok := m.currentInstance(); ok && inst.Overlay().Animating() {
		return m.animationTick()
	}
	return nil
}

// CurrentPager returns the pager in front, or nil without documents.
func (m Model) CurrentPager() *pager.Pager {
	if m.Current < 0 || m.Current >= len(m.Pagers) {
		return nil
	}
	return m.Pagers[m.Current]
}

func (m Model) currentID() (instance.ContextID, bool) {
	p := m.CurrentPager()
	if p == nil {
		return "", false
	}
	return instance.ContextID(p.Document().Path), true
}

// currentInstance returns the curtains of the front document, if they
// were ever activated.
func (m Model) currentInstance() (*curtain.Instance, bool) {
	id, ok := m.currentID()
	if !ok {
		return nil, false
	}
	return m.Instances.Lookup(id)
}

// toggleCurtains is the activation trigger for the front document.
func (m *Model) toggleCurtains() tea.Cmd {
	id, ok := m.currentID()
	if !ok {
		return nil
	}
	_, active := m.Instances.Activate(id, m.CurrentPager())
	log.Printf("curtains: %s active=%v", id, active)
	m.AnimationVersion++
	return m.animationTick()
}

// Shutdown writes pending state and closes the database. Calling it again
// is a no-op.
func (m *Model) Shutdown() {
	if m.closed {
		return
	}
	m.closed = true
	m.Instances.Close()
	if err := m.StateMgr.Close(); err != nil {
		log.Printf("curtains: closing state: %v", err)
	}
}
