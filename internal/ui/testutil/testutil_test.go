package testutil

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestStripANSI(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain text",
			input: "hello world",
			want:  "hello world",
		},
		{
			name:  "with color codes",
			input: "\x1b[31mred\x1b[0m text",
			want:  "red text",
		},
		{
			name:  "with bold",
			input: "\x1b[1mbold\x1b[0m",
			want:  "bold",
		},
		{
			name:  "empty",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripANSI(tt.input))
		})
	}
}

func TestMeasureWidth(t *testing.T) {
	assert.Equal(t, 5, MeasureWidth("hello"))
	assert.Equal(t, 3, MeasureWidth("\x1b[31mred\x1b[0m"))
	assert.Equal(t, 2, MeasureWidth("👑"))
}

func TestFindLine(t *testing.T) {
	output := "first line\nsecond line\nthird line"

	assert.Equal(t, "second line", FindLine(output, "second"))
	assert.Empty(t, FindLine(output, "missing"))
	assert.True(t, ContainsLine(output, "third"))
	assert.False(t, ContainsLine(output, "fourth"))
}

func TestSplitLines(t *testing.T) {
	got := SplitLines("one\ntwo\nthree\n\n")
	assert.Equal(t, []string{"one", "two", "three"}, got)
}

func TestLineWidths(t *testing.T) {
	got := LineWidths("ab\n\x1b[1mabcd\x1b[0m\n")
	assert.Equal(t, []int{2, 4, 0}, got)
}

func TestColumnOf(t *testing.T) {
	output := "....\n  👑 x"

	assert.Equal(t, 2, ColumnOf(output, "👑"))
	assert.Equal(t, 5, ColumnOf(output, "x"))
	assert.Equal(t, -1, ColumnOf(output, "y"))
}

type counter struct {
	n    int
	last string
}

func (c counter) Update(msg tea.Msg) (counter, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		c.n++
		c.last = msg.String()
		return c, func() tea.Msg { return nil }
	case tea.MouseMsg:
		c.last = "mouse"
	}
	return c, nil
}

func (c counter) View() string {
	return c.last
}

func TestHarness(t *testing.T) {
	h := NewHarness(counter{})

	h.SendKey("a")
	h.SendSpecialKey(tea.KeyEnter)
	assert.Equal(t, 2, h.Model().n)
	assert.Equal(t, "enter", h.View())
	assert.Len(t, h.Commands(), 2)

	cmd := h.SendMouse(tea.MouseActionPress, 1, 1)
	assert.Nil(t, cmd)
	assert.Equal(t, "mouse", h.View())
	assert.Len(t, h.Commands(), 2)
}
