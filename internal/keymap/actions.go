// Package keymap defines key bindings and action dispatch for the demo.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit             Action = "quit"
	ActionHelp             Action = "help"
	ActionSwitchFocus      Action = "switch_focus"
	ActionFocusUp          Action = "focus_up"
	ActionFocusDown        Action = "focus_down"
	ActionToggleAutoScroll Action = "toggle_autoscroll"
	ActionReload           Action = "reload"
	ActionMorePerPage      Action = "more_per_page"
	ActionFewerPerPage     Action = "fewer_per_page"

	// Carousel actions
	ActionMoveLeft  Action = "move_left"
	ActionMoveRight Action = "move_right"
	ActionSelect    Action = "select"

	// Button row actions
	ActionPrevButton Action = "prev_button"
	ActionNextButton Action = "next_button"
	ActionPress      Action = "press"

	// Help overlay
	ActionClose      Action = "close"
	ActionScrollUp   Action = "scroll_up"
	ActionScrollDown Action = "scroll_down"
)

// Binding contexts. A key bound in a focused context shadows the same key in
// ContextGlobal.
const (
	ContextGlobal   = "global"
	ContextCarousel = "carousel"
	ContextButtons  = "buttons"
	ContextHelp     = "help"
)
