package testutil

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/curtains/internal/ui/popup"
)

// PopupDriver feeds keys to a popup and keeps the last command it
// returned.
type PopupDriver struct {
	t     testing.TB
	popup popup.Popup
	last  tea.Cmd
}

// DrivePopup sizes p to a width x height screen and initializes it.
func DrivePopup(t testing.TB, p popup.Popup, width, height int) *PopupDriver {
	t.Helper()
	p.SetSize(width, height)
	return &PopupDriver{t: t, popup: p, last: p.Init()}
}

// Send delivers msg to the popup.
func (d *PopupDriver) Send(msg tea.Msg) *PopupDriver {
	d.popup, d.last = d.popup.Update(msg)
	return d
}

// Keys sends each key in order. Names of special keys such as "esc",
// "up" and "down" are understood; anything else is sent as runes.
func (d *PopupDriver) Keys(keys ...string) *PopupDriver {
	for _, k := range keys {
		d.Send(KeyMsg(k))
	}
	return d
}

// Emitted runs the last command and returns its message, or nil.
func (d *PopupDriver) Emitted() tea.Msg {
	if d.last == nil {
		return nil
	}
	return d.last()
}

// Text is the popup view with styling removed.
func (d *PopupDriver) Text() string {
	return StripANSI(d.popup.View())
}

var specialKeys = map[string]tea.KeyType{
	"esc":    tea.KeyEscape,
	"enter":  tea.KeyEnter,
	"up":     tea.KeyUp,
	"down":   tea.KeyDown,
	"pgup":   tea.KeyPgUp,
	"pgdown": tea.KeyPgDown,
	"home":   tea.KeyHome,
	"end":    tea.KeyEnd,
	"tab":    tea.KeyTab,
	"ctrl+c": tea.KeyCtrlC,
	"ctrl+d": tea.KeyCtrlD,
	"ctrl+u": tea.KeyCtrlU,
}

// KeyMsg builds the key message whose String() is k.
func KeyMsg(k string) tea.KeyMsg {
	if t, ok := specialKeys[k]; ok {
		return tea.KeyMsg{Type: t}
	}
	if k == " " {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}
