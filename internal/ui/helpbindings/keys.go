package helpbindings

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
)

// scrollKeys moves the list one row at a time.
func scrollKeys() viewport.KeyMap {
	return viewport.KeyMap{
		Down: key.NewBinding(key.WithKeys("j", "down")),
		Up:   key.NewBinding(key.WithKeys("k", "up")),
	}
}
