package keymap

import (
	"slices"

	"github.com/charmbracelet/bubbles/key"

	"github.com/llehouerou/carousel/internal/carousel"
)

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string
}

// Bindings contains all key bindings.
var Bindings = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", ContextGlobal},
	{ActionHelp, []string{"?"}, "Show help", ContextGlobal},
	{ActionSwitchFocus, []string{"tab", "shift+tab"}, "Switch focus", ContextGlobal},
	{ActionFocusUp, []string{"up", "k"}, "Focus carousel", ContextGlobal},
	{ActionFocusDown, []string{"down", "j"}, "Focus buttons", ContextGlobal},
	{ActionToggleAutoScroll, []string{"a"}, "Toggle auto-scroll", ContextGlobal},
	{ActionReload, []string{"r"}, "Reload items", ContextGlobal},
	{ActionMorePerPage, []string{"+", "="}, "More items per page", ContextGlobal},
	{ActionFewerPerPage, []string{"-"}, "Fewer items per page", ContextGlobal},

	// Carousel
	{ActionMoveLeft, []string{"left", "h"}, "Previous item", ContextCarousel},
	{ActionMoveRight, []string{"right", "l"}, "Next item", ContextCarousel},
	{ActionSelect, []string{"enter", " "}, "Select item", ContextCarousel},

	// Buttons
	{ActionPrevButton, []string{"left", "h"}, "Previous button", ContextButtons},
	{ActionNextButton, []string{"right", "l"}, "Next button", ContextButtons},
	{ActionPress, []string{"enter", " "}, "Press button", ContextButtons},

	// Help overlay
	{ActionClose, []string{"esc", "?", "q"}, "Close help", ContextHelp},
	{ActionScrollUp, []string{"up", "k"}, "Scroll up", ContextHelp},
	{ActionScrollDown, []string{"down", "j"}, "Scroll down", ContextHelp},
}

// ByContext returns bindings for a specific context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, b := range Bindings {
		if b.Context == context {
			result = append(result, b)
		}
	}
	return result
}

// Find returns the first binding for action.
func Find(action Action) (Binding, bool) {
	i := slices.IndexFunc(Bindings, func(b Binding) bool { return b.Action == action })
	if i < 0 {
		return Binding{}, false
	}
	return Bindings[i], true
}

// KeyBinding converts b into a bubbles binding for help rendering and
// key.Matches.
func (b Binding) KeyBinding() key.Binding {
	return key.NewBinding(
		key.WithKeys(b.Keys...),
		key.WithHelp(helpKeys(b.Keys), b.Description),
	)
}

// CarouselKeyMap returns the carousel's key map built from the carousel
// bindings.
func CarouselKeyMap() carousel.KeyMap {
	km := carousel.DefaultKeyMap()
	if b, ok := Find(ActionMoveLeft); ok {
		km.Prev = b.KeyBinding()
	}
	if b, ok := Find(ActionMoveRight); ok {
		km.Next = b.KeyBinding()
	}
	if b, ok := Find(ActionSelect); ok {
		km.Select = b.KeyBinding()
	}
	return km
}

// helpKeys renders keys the way bubbles help shows them: "←/h".
func helpKeys(keys []string) string {
	out := ""
	for i, k := range keys {
		if i > 0 {
			out += "/"
		}
		out += keyLabel(k)
	}
	return out
}

func keyLabel(k string) string {
	switch k {
	case "left":
		return "←"
	case "right":
		return "→"
	case "up":
		return "↑"
	case "down":
		return "↓"
	case " ":
		return "space"
	default:
		return k
	}
}
