package carousel

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/rs/zerolog"
)

// Cell describes the cell being rendered.
type Cell struct {
	Index   int  // logical index of the item
	Virtual int  // position in the padded strip
	Size    Size // content area inside the cell border
	Focused bool
}

// DataSource supplies the carousel's items.
type DataSource interface {
	NumberOfItems() int
	RenderItem(index int, cell Cell) string
}

// Selector is implemented by data sources that want to know when the focused
// item is activated.
type Selector interface {
	DidSelectItem(index int)
}

// Displayer is implemented by data sources that want to know when a new item
// becomes the focused one.
type Displayer interface {
	DidDisplayItem(index int)
}

// Options configure a carousel.
type Options struct {
	ItemsPerPage       int
	AutoScroll         bool
	AutoScrollInterval time.Duration
	Layout             Layout
	LayoutDelegate     LayoutDelegate // optional
	KeyMap             KeyMap
	Logger             *zerolog.Logger // optional, defaults to a no-op logger
}

// DefaultOptions returns one item per page, auto-scroll off and 20x7 cells.
func DefaultOptions() Options {
	return Options{
		ItemsPerPage:       1,
		AutoScrollInterval: DefaultAutoScrollInterval,
		Layout: Layout{
			ItemSize: Size{Width: 20, Height: 7},
			Spacing:  2,
		},
		KeyMap: DefaultKeyMap(),
	}
}

// Validate checks the options for configuration errors.
func (o Options) Validate() error {
	if o.ItemsPerPage < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidPageSize, o.ItemsPerPage)
	}
	if o.AutoScroll && o.AutoScrollInterval <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidInterval, o.AutoScrollInterval)
	}
	return o.Layout.Validate()
}

func (o Options) logger() zerolog.Logger {
	if o.Logger == nil {
		return zerolog.Nop()
	}
	return o.Logger.With().Str("component", "carousel").Logger()
}

// KeyMap defines the carousel's key bindings.
type KeyMap struct {
	Prev   key.Binding
	Next   key.Binding
	Select key.Binding
}

// DefaultKeyMap returns arrow/vi keys for movement and enter to select.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Prev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
	}
}
