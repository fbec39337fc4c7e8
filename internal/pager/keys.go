package pager

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/llehouerou/curtains/internal/keymap"
)

// viewportKeys binds the viewport's scrolling to the document key map.
func viewportKeys() viewport.KeyMap {
	km := viewport.DefaultKeyMap()
	bind := func(b *key.Binding, a keymap.Action) {
		for _, kb := range keymap.ByContext("document") {
			if kb.Action == a {
				*b = key.NewBinding(key.WithKeys(kb.Keys...), key.WithHelp(kb.Keys[0], kb.Description))
				return
			}
		}
	}
	bind(&km.Down, keymap.ActionScrollDown)
	bind(&km.Up, keymap.ActionScrollUp)
	bind(&km.PageDown, keymap.ActionPageDown)
	bind(&km.PageUp, keymap.ActionPageUp)
	bind(&km.HalfPageDown, keymap.ActionHalfPageDown)
	bind(&km.HalfPageUp, keymap.ActionHalfPageUp)
	return km
}
