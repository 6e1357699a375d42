package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/carousel/internal/carousel"
	"github.com/llehouerou/carousel/internal/config"
	"github.com/llehouerou/carousel/internal/icons"
	"github.com/llehouerou/carousel/internal/ui/render"
	"github.com/llehouerou/carousel/internal/ui/styles"
)

// unfocusedDim is how far unfocused cells fade toward the background.
const unfocusedDim = 0.45

type eventKind int

const (
	eventDisplayed eventKind = iota
	eventSelected
)

// sourceEvent is a carousel callback queued for the app to handle after the
// carousel's Update returns.
type sourceEvent struct {
	kind  eventKind
	index int
}

// itemSource feeds the configured colored items to the carousel and queues
// its display and selection callbacks.
type itemSource struct {
	items  []config.ItemConfig
	counts map[int]int // selections per item
	events []sourceEvent
}

var (
	_ carousel.DataSource = (*itemSource)(nil)
	_ carousel.Selector   = (*itemSource)(nil)
	_ carousel.Displayer  = (*itemSource)(nil)
)

func newItemSource(items []config.ItemConfig) *itemSource {
	return &itemSource{items: items}
}

// NumberOfItems implements carousel.DataSource.
func (s *itemSource) NumberOfItems() int {
	return len(s.items)
}

// RenderItem implements carousel.DataSource. The cell is filled with the
// item's color and shows its label, position and selection count.
func (s *itemSource) RenderItem(index int, cell carousel.Cell) string {
	item := s.items[index]
	bg := lipgloss.Color(item.Color)
	if !cell.Focused {
		bg = styles.Dim(bg, unfocusedDim)
	}

	lines := []string{
		render.Truncate(item.Label, cell.Size.Width),
		render.Truncate(fmt.Sprintf("%d/%d", index+1, len(s.items)), cell.Size.Width),
	}
	if n := s.counts[index]; n > 0 {
		lines = append(lines, render.Truncate(humanize.Comma(int64(n))+icons.Selected(), cell.Size.Width))
	}
	if len(lines) > cell.Size.Height {
		lines = lines[:max(cell.Size.Height, 0)]
	}

	return lipgloss.NewStyle().
		Width(cell.Size.Width).
		Height(cell.Size.Height).
		Background(bg).
		Foreground(styles.Contrast(bg)).
		Bold(cell.Focused).
		Align(lipgloss.Center, lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}

// DidSelectItem implements carousel.Selector.
func (s *itemSource) DidSelectItem(index int) {
	s.events = append(s.events, sourceEvent{kind: eventSelected, index: index})
}

// DidDisplayItem implements carousel.Displayer.
func (s *itemSource) DidDisplayItem(index int) {
	s.events = append(s.events, sourceEvent{kind: eventDisplayed, index: index})
}

// Label returns the label of item index.
func (s *itemSource) Label(index int) string {
	if index < 0 || index >= len(s.items) {
		return ""
	}
	return s.items[index].Label
}

// drain returns and clears the queued events.
func (s *itemSource) drain() []sourceEvent {
	events := s.events
	s.events = nil
	return events
}
