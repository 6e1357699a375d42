package ui

// Base carries the size and focus flag shared by the components of the demo
// and by the carousel strip. Embed it to get the accessors:
//
//	type Model struct {
//	    ui.Base
//	    offset scroll.Offset
//	}
type Base struct {
	width, height int
	focused       bool
}

// SetFocused sets whether the component owns keyboard focus.
func (b *Base) SetFocused(focused bool) {
	b.focused = focused
}

// IsFocused returns whether the component owns keyboard focus.
func (b Base) IsFocused() bool {
	return b.focused
}

// SetSize sets the component dimensions and reports whether they changed.
func (b *Base) SetSize(width, height int) bool {
	changed := b.width != width || b.height != height
	b.width = width
	b.height = height
	return changed
}

// Size returns the component dimensions.
func (b Base) Size() (width, height int) {
	return b.width, b.height
}

// Width returns the component width.
func (b Base) Width() int {
	return b.width
}

// Height returns the component height.
func (b Base) Height() int {
	return b.height
}
