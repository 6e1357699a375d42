package testutil

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Component is a bubbletea child model that returns its own concrete type
// from Update.
type Component[M any] interface {
	Update(msg tea.Msg) (M, tea.Cmd)
	View() string
}

// Harness drives a component in tests, recording the commands it returns.
type Harness[M Component[M]] struct {
	model M
	cmds  []tea.Cmd
}

// NewHarness wraps model.
func NewHarness[M Component[M]](model M) *Harness[M] {
	return &Harness[M]{model: model}
}

// Model returns the current model.
func (h *Harness[M]) Model() M {
	return h.model
}

// SetModel replaces the model, for tests that call pointer methods directly.
func (h *Harness[M]) SetModel(model M) {
	h.model = model
}

// View returns the component's rendered content.
func (h *Harness[M]) View() string {
	return h.model.View()
}

// Commands returns the commands recorded so far.
func (h *Harness[M]) Commands() []tea.Cmd {
	return h.cmds
}

// SendMsg sends any message and returns the resulting command.
func (h *Harness[M]) SendMsg(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.model, cmd = h.model.Update(msg)
	if cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return cmd
}

// SendKey simulates typing runes.
func (h *Harness[M]) SendKey(key string) tea.Cmd {
	return h.SendMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
}

// SendSpecialKey sends a special key (enter, arrows, tab, etc.).
func (h *Harness[M]) SendSpecialKey(keyType tea.KeyType) tea.Cmd {
	return h.SendMsg(tea.KeyMsg{Type: keyType})
}

// SendMouse sends a left-button mouse event at x, y.
func (h *Harness[M]) SendMouse(action tea.MouseAction, x, y int) tea.Cmd {
	button := tea.MouseButtonLeft
	if action == tea.MouseActionRelease {
		button = tea.MouseButtonNone
	}
	return h.SendMsg(tea.MouseMsg{X: x, Y: y, Action: action, Button: button})
}
