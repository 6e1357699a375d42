package carousel

import "fmt"

// Size is a width/height pair in terminal cells.
type Size struct {
	Width  int
	Height int
}

// Insets are the margins around the strip's content.
type Insets struct {
	Top, Left, Bottom, Right int
}

// Layout is the flow layout of the strip: equally sized cells laid out left
// to right with a fixed spacing.
type Layout struct {
	ItemSize Size
	Spacing  int
	Insets   Insets
}

// LayoutDelegate lets the caller override the layout on every layout pass,
// for example to size cells relative to the viewport.
type LayoutDelegate interface {
	ItemSize(viewport Size) Size
	ItemSpacing(viewport Size) int
	SectionInsets(viewport Size) Insets
}

// Validate reports a configuration error for unusable geometry.
func (l Layout) Validate() error {
	if l.ItemSize.Width < 1 || l.ItemSize.Height < 1 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidItemSize, l.ItemSize.Width, l.ItemSize.Height)
	}
	if l.Spacing < 0 {
		return fmt.Errorf("%w: negative spacing %d", ErrInvalidItemSize, l.Spacing)
	}
	return nil
}

// TotalItemWidth is the horizontal advance from one cell to the next.
func (l Layout) TotalItemWidth() int {
	return l.ItemSize.Width + l.Spacing
}

// resolve applies delegate overrides for the given viewport.
func (l Layout) resolve(d LayoutDelegate, viewport Size) Layout {
	if d == nil {
		return l
	}
	out := Layout{
		ItemSize: d.ItemSize(viewport),
		Spacing:  d.ItemSpacing(viewport),
		Insets:   d.SectionInsets(viewport),
	}
	if out.Validate() != nil {
		return l
	}
	return out
}

// geometry is a computed layout pass: the layout plus the measured viewport
// and the number of cells laid out.
type geometry struct {
	layout   Layout
	viewport Size
	cells    int
	pageSize int
}

// measured reports whether a layout pass has happened.
func (g geometry) measured() bool {
	return g.viewport.Width > 0 && g.cells > 0
}

// frameOrigin returns the x position of cell i in content coordinates.
func (g geometry) frameOrigin(i int) (int, bool) {
	if !g.measured() || i < 0 || i >= g.cells {
		return 0, false
	}
	return g.layout.Insets.Left + i*g.layout.TotalItemWidth(), true
}

// contentWidth is the full width of the laid out cells.
func (g geometry) contentWidth() int {
	if g.cells == 0 {
		return 0
	}
	return g.layout.Insets.Left + g.cells*g.layout.TotalItemWidth() -
		g.layout.Spacing + g.layout.Insets.Right
}

// centeringInset is the distance from the viewport's left edge to the first
// cell of a centred page.
func (g geometry) centeringInset() int {
	total := g.layout.TotalItemWidth()
	spacing := g.layout.Spacing
	return floorDiv(g.viewport.Width-g.pageSize*total-spacing, 2) + spacing
}

// offsetForItem returns the content offset that centres the page holding i.
func (g geometry) offsetForItem(i int) (int, bool) {
	if g.pageSize < 1 {
		return 0, false
	}
	firstOnPage := floorDiv(i, g.pageSize) * g.pageSize
	origin, ok := g.frameOrigin(firstOnPage)
	if !ok {
		return 0, false
	}
	return origin - g.centeringInset(), true
}

// targetContentOffset snaps a proposed offset to the focused item's page.
// Without geometry the proposal is returned unchanged.
func (g geometry) targetContentOffset(proposed, focused int) int {
	if offset, ok := g.offsetForItem(focused); ok {
		return offset
	}
	return proposed
}

// itemAt returns the cell under viewport column x for a given offset.
func (g geometry) itemAt(x, offset int) (int, bool) {
	if !g.measured() {
		return 0, false
	}
	content := x + offset - g.layout.Insets.Left
	total := g.layout.TotalItemWidth()
	if content < 0 || total <= 0 {
		return 0, false
	}
	i := content / total
	if i >= g.cells || content%total >= g.layout.ItemSize.Width {
		return 0, false
	}
	return i, true
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
