package app

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/carousel/internal/icons"
	"github.com/llehouerou/carousel/internal/keymap"
	"github.com/llehouerou/carousel/internal/ui/styles"
)

// button is one entry of the button row.
type button struct {
	label  string
	action keymap.Action
}

// buttonRow is the row of demo controls under the strip.
type buttonRow struct {
	selected int
}

// buttons returns the row's buttons. The auto-scroll label reflects its
// state.
func (b buttonRow) buttons(autoScroll bool) []button {
	auto := "Auto-scroll: off"
	if autoScroll {
		auto = "Auto-scroll: on"
	}
	return []button{
		{icons.FormatAutoScroll(auto, autoScroll), keymap.ActionToggleAutoScroll},
		{icons.FormatFewer("Fewer"), keymap.ActionFewerPerPage},
		{icons.FormatMore("More"), keymap.ActionMorePerPage},
		{icons.FormatReload("Reload"), keymap.ActionReload},
		{icons.FormatQuit("Quit"), keymap.ActionQuit},
	}
}

// Selected returns the index of the highlighted button.
func (b buttonRow) Selected() int {
	return b.selected
}

// Action returns the action of the highlighted button.
func (b buttonRow) Action() keymap.Action {
	return b.buttons(false)[b.selected].action
}

// Move highlights the button delta steps away, wrapping at both ends.
func (b *buttonRow) Move(delta int) {
	n := len(b.buttons(false))
	b.selected = ((b.selected+delta)%n + n) % n
}

// Render draws the buttons centred across width columns.
func (b buttonRow) Render(width int, focused, autoScroll bool) string {
	s := styles.T().S()
	parts := make([]string, 0, len(b.buttons(autoScroll)))
	for i, btn := range b.buttons(autoScroll) {
		style := s.Button
		if focused && i == b.selected {
			style = s.ButtonFocus
		}
		parts = append(parts, style.Render(btn.label))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, row)
}

// At returns the index of the button under column x, or -1.
func (b buttonRow) At(x, width int, autoScroll bool) int {
	s := styles.T().S()
	btns := b.buttons(autoScroll)
	total := 0
	widths := make([]int, len(btns))
	for i, btn := range btns {
		widths[i] = lipgloss.Width(s.Button.Render(btn.label))
		total += widths[i]
	}

	col := max((width-total)/2, 0)
	for i, w := range widths {
		if x >= col && x < col+w {
			return i
		}
		col += w
	}
	return -1
}
