// Package helpbindings is the "?" popup listing every key and mouse
// gesture, grouped by what it acts on.
package helpbindings

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/curtains/internal/keymap"
	"github.com/llehouerou/curtains/internal/ui/popup"
	"github.com/llehouerou/curtains/internal/ui/styles"
)

var _ popup.Popup = (*Model)(nil)

// ClosedMsg is sent when the user dismisses the popup.
type ClosedMsg struct{}

// chrome is the number of rows around the list: frame border and padding,
// the title and footer with their blank separators.
const chrome = 10

var sectionTitles = map[string]string{
	"global":   "Global",
	"curtains": "Curtains",
	"document": "Document",
}

// Sections in display order.
var Sections = []string{"global", "curtains", "document"}

// Grips and the wheel are not keys, so the keymap does not list them.
var mouseHints = []keymap.Binding{
	{Keys: []string{"drag grip"}, Description: "Resize curtains", Context: "curtains"},
	{Keys: []string{"wheel"}, Description: "Scroll", Context: "document"},
}

// Model shows the binding list in a scrollable viewport.
type Model struct {
	vp       viewport.Model
	lines    []string
	width    int // widest line
	contexts []string
}

// New creates a popup listing the given contexts, in Sections order.
func New(contexts ...string) Model {
	m := Model{vp: viewport.New(0, 0)}
	m.vp.KeyMap = scrollKeys()
	m.SetContexts(contexts)
	return m
}

// SetContexts replaces the listed contexts and scrolls back to the top.
func (m *Model) SetContexts(contexts []string) {
	m.contexts = contexts
	m.lines = buildLines(contexts, styles.T())
	m.width = 0
	for _, line := range m.lines {
		m.width = max(m.width, lipgloss.Width(line))
	}
	m.vp.SetContent(strings.Join(m.lines, "\n"))
	m.vp.GotoTop()
}

// SetSize fits the list to a screen of the given size.
func (m *Model) SetSize(width, height int) {
	m.vp.Width = max(min(m.width, width-8), 0)
	m.vp.Height = min(max(height-chrome, 5), len(m.lines))
	m.vp.SetYOffset(m.vp.YOffset)
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "?", "esc", "q":
		return m, func() tea.Msg { return ClosedMsg{} }
	}
	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

// Offset is the first visible list row.
func (m *Model) Offset() int { return m.vp.YOffset }

func (m *Model) View() string {
	if m.vp.Width == 0 || m.vp.Height == 0 {
		return ""
	}
	t := styles.T()
	footer := "?/esc close"
	if len(m.lines) > m.vp.Height {
		footer = "j/k scroll · " + footer
	}
	return t.S().Title.Render("Help") + "\n\n" +
		m.vp.View() + "\n\n" +
		t.S().Subtle.Render(footer)
}

func buildLines(contexts []string, t *styles.Theme) []string {
	var groups [][]keymap.Binding
	keyWidth := 0
	for _, ctx := range Sections {
		if !slices.Contains(contexts, ctx) {
			continue
		}
		group := keymap.ByContext(ctx)
		for _, hint := range mouseHints {
			if hint.Context == ctx {
				group = append(group, hint)
			}
		}
		for _, b := range group {
			keyWidth = max(keyWidth, lipgloss.Width(keyLabel(b.Keys)))
		}
		groups = append(groups, group)
	}

	keyStyle := lipgloss.NewStyle().Foreground(t.Primary).Bold(true).Width(keyWidth)
	titleStyle := lipgloss.NewStyle().Foreground(t.Secondary).Bold(true)
	var lines []string
	for i, group := range groups {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines,
			titleStyle.Render(sectionTitles[group[0].Context]),
			t.S().Subtle.Render(strings.Repeat("─", keyWidth+15)),
		)
		for _, b := range group {
			lines = append(lines, keyStyle.Render(keyLabel(b.Keys))+"  "+t.S().Base.Render(b.Description))
		}
	}
	return lines
}

func keyLabel(keys []string) string {
	labels := make([]string, len(keys))
	for i, k := range keys {
		if k == " " {
			k = "space"
		}
		labels[i] = k
	}
	return strings.Join(labels, ", ")
}
