// Package layout provides pure functions for the demo screen dimensions.
package layout

import "github.com/llehouerou/carousel/internal/ui"

// MinItemHeight fits a bordered cell with one line of content.
const MinItemHeight = 3

// Chrome is the fixed-height content stacked around the carousel panel.
type Chrome struct {
	HeaderHeight int
	ButtonsRow   int // 0 when the button row is hidden
	StatusHeight int
}

// DefaultChrome returns the demo's header, button row and status line.
func DefaultChrome() Chrome {
	return Chrome{
		HeaderHeight: ui.HeaderHeight,
		ButtonsRow:   ui.ButtonRowHeight,
		StatusHeight: ui.StatusHeight,
	}
}

// PanelHeight returns the height of the bordered carousel panel.
func PanelHeight(windowHeight int, c Chrome) int {
	return max(windowHeight-c.HeaderHeight-c.ButtonsRow-c.StatusHeight, 0)
}

// StripSize returns the viewport of the carousel inside its panel border.
func StripSize(windowWidth, panelHeight int) (width, height int) {
	return max(windowWidth-ui.BorderWidth, 0), max(panelHeight-ui.BorderHeight, 0)
}

// ItemWidth returns the width of one cell so that perPage cells plus their
// spacing fill the strip, leaving PeekWidth columns of the neighbouring pages
// visible on each side. The result never drops below MinItemWidth.
func ItemWidth(stripWidth, perPage, spacing int) int {
	if perPage < 1 {
		perPage = 1
	}
	avail := stripWidth - 2*ui.PeekWidth - (perPage+1)*spacing
	return max(avail/perPage, ui.MinItemWidth)
}

// ItemHeight returns the cell height for a strip height, capped at preferred
// and never below MinItemHeight.
func ItemHeight(stripHeight, preferred int, topInset, bottomInset int) int {
	h := stripHeight - topInset - bottomInset
	if preferred > 0 {
		h = min(h, preferred)
	}
	return max(h, MinItemHeight)
}

// VerticalInsets centres a cell of itemHeight inside stripHeight, returning
// the extra top and bottom padding on top of the configured insets.
func VerticalInsets(stripHeight, itemHeight, top, bottom int) (int, int) {
	free := stripHeight - itemHeight - top - bottom
	if free <= 0 {
		return top, bottom
	}
	return top + free/2, bottom + free - free/2
}
