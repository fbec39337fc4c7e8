package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit         Action = "quit"
	ActionHelp         Action = "help"
	ActionNextDocument Action = "next_document"
	ActionPrevDocument Action = "prev_document"

	// Curtain actions
	ActionToggleCurtains Action = "toggle_curtains"
	ActionGrowCurtains   Action = "grow_curtains"
	ActionShrinkCurtains Action = "shrink_curtains"

	// Document scrolling
	ActionScrollDown   Action = "scroll_down"
	ActionScrollUp     Action = "scroll_up"
	ActionPageDown     Action = "page_down"
	ActionPageUp       Action = "page_up"
	ActionHalfPageDown Action = "half_page_down"
	ActionHalfPageUp   Action = "half_page_up"
	ActionTop          Action = "top"
	ActionBottom       Action = "bottom"
	ActionReload       Action = "reload"
)
