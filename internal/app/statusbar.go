package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/carousel/internal/carousel"
	"github.com/llehouerou/carousel/internal/keymap"
	"github.com/llehouerou/carousel/internal/ui/render"
	"github.com/llehouerou/carousel/internal/ui/styles"
)

const title = "carousel"

// renderHeader renders the gradient title and a short help line for the
// focused region.
func (m Model) renderHeader() string {
	t := styles.T()
	heading := styles.ApplyBoldGradient(title, t.Primary, t.Secondary)

	h := help.New()
	h.Width = max(m.Width-1, 0)
	hints := h.ShortHelpView(keymap.HelpFor(m.keyContext()).ShortHelp())

	return render.PadANSI(" "+heading, m.Width) + "\n" + render.PadANSI(" "+hints, m.Width)
}

// renderStatus renders the status line: errors win over stderr notices,
// which win over the regular carousel summary.
func (m Model) renderStatus(now time.Time) string {
	s := styles.T().S()
	width := m.Width

	switch {
	case m.ErrorMsg != "":
		return render.PadANSI(s.Error.Render(" "+render.Truncate(m.ErrorMsg, max(width-1, 0))), width)
	case m.Notice != "":
		return render.PadANSI(s.Warning.Render(" "+render.Truncate(m.Notice, max(width-1, 0))), width)
	}

	left := " " + m.summary()
	right := m.lastSelectionText(now)
	if right != "" {
		right += " "
	}
	return render.PadANSI(s.Muted.Render(render.Row(left, right, width)), width)
}

// summary describes the focused item, the page size and the auto-scroll
// timer.
func (m Model) summary() string {
	var parts []string
	if item := m.Carousel.CurrentItem(); item != carousel.NoIndex {
		parts = append(parts, fmt.Sprintf("%s %d/%d",
			m.Source.Label(item), item+1, m.Source.NumberOfItems()))
	}
	parts = append(parts, fmt.Sprintf("%d per page", m.Carousel.Options().ItemsPerPage))

	auto := m.Carousel.AutoScroll()
	switch {
	case !auto.Enabled():
		parts = append(parts, "auto-scroll off")
	case auto.Running():
		parts = append(parts, "auto-scroll every "+auto.Interval().String())
	default:
		parts = append(parts, "auto-scroll paused")
	}
	return strings.Join(parts, " · ")
}

// lastSelectionText describes the most recent selection relative to now.
func (m Model) lastSelectionText(now time.Time) string {
	sel := m.LastSelection
	if sel == nil {
		return ""
	}
	label := sel.Label
	if label == "" {
		label = m.Source.Label(sel.Item)
	}
	return fmt.Sprintf("picked %s %s", label, humanize.RelTime(sel.SelectedAt, now, "ago", "from now"))
}
