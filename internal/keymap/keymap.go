// Package keymap defines key bindings for the application.
package keymap

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "curtains", "document"
}

// Bindings contains all key bindings, in help order.
var Bindings = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	{ActionNextDocument, []string{"n", "tab"}, "Next document", "global"},
	{ActionPrevDocument, []string{"p", "shift+tab"}, "Previous document", "global"},
	{ActionHelp, []string{"?"}, "Show help", "global"},

	// Curtains
	{ActionToggleCurtains, []string{"c"}, "Toggle curtains", "curtains"},
	{ActionGrowCurtains, []string{"+", "="}, "Taller curtains", "curtains"},
	{ActionShrinkCurtains, []string{"-", "_"}, "Shorter curtains", "curtains"},

	// Document
	{ActionScrollDown, []string{"j", "down"}, "Scroll down", "document"},
	{ActionScrollUp, []string{"k", "up"}, "Scroll up", "document"},
	{ActionPageDown, []string{"f", "pgdown", " "}, "Page down", "document"},
	{ActionPageUp, []string{"b", "pgup"}, "Page up", "document"},
	{ActionHalfPageDown, []string{"d", "ctrl+d"}, "Half page down", "document"},
	{ActionHalfPageUp, []string{"u", "ctrl+u"}, "Half page up", "document"},
	{ActionTop, []string{"g", "home"}, "Top", "document"},
	{ActionBottom, []string{"G", "end"}, "Bottom", "document"},
	{ActionReload, []string{"r"}, "Reload from disk", "document"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range Bindings {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}
