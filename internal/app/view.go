package app

import (
	"strings"
	"time"

	"github.com/llehouerou/carousel/internal/ui"
	"github.com/llehouerou/carousel/internal/ui/layout"
	"github.com/llehouerou/carousel/internal/ui/overlay"
	"github.com/llehouerou/carousel/internal/ui/render"
	"github.com/llehouerou/carousel/internal/ui/styles"
)

// View renders the application UI.
func (m Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return ""
	}

	panelHeight := layout.PanelHeight(m.Height, layout.DefaultChrome())
	parts := []string{m.renderHeader()}
	if panel := m.renderPanel(panelHeight); panel != "" {
		parts = append(parts, panel)
	}
	parts = append(parts,
		m.Buttons.Render(m.Width, m.Focus == FocusButtons, m.Carousel.AutoScroll().Enabled()),
		m.renderStatus(time.Now()),
	)
	view := strings.Join(parts, "\n")

	if m.HelpVisible {
		view = overlay.Center(view, m.Help.View(), m.Width, m.Height)
	}
	return view
}

// renderPanel renders the strip inside its border, clipped or padded to the
// panel height.
func (m Model) renderPanel(height int) string {
	if height < ui.BorderHeight+1 {
		return render.Block(m.Width, height)
	}
	width, stripHeight := layout.StripSize(m.Width, height)

	lines := strings.Split(m.Carousel.View(), "\n")
	out := make([]string, stripHeight)
	for i := range out {
		if i < len(lines) {
			out[i] = render.PadANSI(lines[i], width)
		} else {
			out[i] = render.EmptyLine(width)
		}
	}
	return styles.PanelStyle(m.Focus == FocusCarousel).Render(strings.Join(out, "\n"))
}
