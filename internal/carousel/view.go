package carousel

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/carousel/internal/ui/render"
	"github.com/llehouerou/carousel/internal/ui/styles"
)

// View renders the cells visible through the viewport. Cells crossing the
// viewport edges are cropped.
func (m Model) View() string {
	width := m.Width()
	if width <= 0 {
		return ""
	}
	l := m.geom.layout
	if !m.geom.measured() {
		return render.Block(width, m.StripHeight())
	}

	rows := make([]strings.Builder, l.ItemSize.Height)
	col := 0 // viewport column reached so far
	offset := m.offset.Value()

	for v := m.firstVisible(offset); v < m.geom.cells; v++ {
		origin, _ := m.geom.frameOrigin(v)
		x := origin - offset
		if x >= width {
			break
		}
		if x+l.ItemSize.Width <= 0 {
			continue
		}

		from := max(-x, 0)
		to := min(l.ItemSize.Width, width-x)
		gap := x + from - col
		cell := m.renderCell(v)
		for i := range rows {
			if gap > 0 {
				rows[i].WriteString(strings.Repeat(" ", gap))
			}
			rows[i].WriteString(ansi.Cut(cell[i], from, to))
		}
		col = x + to
	}

	lines := make([]string, 0, l.Insets.Top+len(rows)+l.Insets.Bottom)
	for range l.Insets.Top {
		lines = append(lines, render.EmptyLine(width))
	}
	for i := range rows {
		lines = append(lines, render.PadANSI(rows[i].String(), width))
	}
	for range l.Insets.Bottom {
		lines = append(lines, render.EmptyLine(width))
	}
	return strings.Join(lines, "\n")
}

// firstVisible returns the first cell that can intersect the viewport.
func (m Model) firstVisible(offset int) int {
	total := m.geom.layout.TotalItemWidth()
	if total <= 0 {
		return 0
	}
	return max(floorDiv(offset-m.geom.layout.Insets.Left, total), 0)
}

// renderCell renders cell v as exactly ItemSize lines of ItemSize.Width
// columns.
func (m Model) renderCell(v int) []string {
	size := m.geom.layout.ItemSize
	focused := m.IsFocused() && v == m.focusedCell
	inner := Size{
		Width:  max(size.Width-2, 0),
		Height: max(size.Height-2, 0),
	}

	logical := m.index.LogicalIndex(v)
	content := m.source.RenderItem(logical, Cell{
		Index:   logical,
		Virtual: v,
		Size:    inner,
		Focused: focused,
	})

	box := styles.T().S().Cell
	if focused {
		box = styles.T().S().CellFocused
	}
	rendered := box.
		Width(inner.Width).
		Height(inner.Height).
		MaxWidth(size.Width).
		MaxHeight(size.Height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)

	lines := strings.Split(rendered, "\n")
	out := make([]string, size.Height)
	for i := range out {
		if i < len(lines) {
			out[i] = render.PadANSI(lines[i], size.Width)
		} else {
			out[i] = render.EmptyLine(size.Width)
		}
	}
	return out
}
