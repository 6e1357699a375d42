package keymap

import "github.com/charmbracelet/bubbles/key"

// Help adapts the binding table to bubbles' help.KeyMap.
type Help struct {
	context string
}

// HelpFor returns the help key map for the focused context.
func HelpFor(context string) Help {
	return Help{context: context}
}

// ShortHelp shows the focused context's bindings followed by help and quit.
func (h Help) ShortHelp() []key.Binding {
	var out []key.Binding
	for _, b := range ByContext(h.context) {
		out = append(out, b.KeyBinding())
	}
	for _, a := range []Action{ActionHelp, ActionQuit} {
		if b, ok := Find(a); ok {
			out = append(out, b.KeyBinding())
		}
	}
	return out
}

// FullHelp shows one column per context.
func (h Help) FullHelp() [][]key.Binding {
	var out [][]key.Binding
	for _, context := range []string{ContextGlobal, ContextCarousel, ContextButtons} {
		var column []key.Binding
		for _, b := range ByContext(context) {
			column = append(column, b.KeyBinding())
		}
		out = append(out, column)
	}
	return out
}
