// Package overlay draws popups on top of an already rendered screen.
package overlay

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Place draws box on top of base with its top-left corner at column x,
// row y. Box lines replace the base only across their visible extent, so
// leading and trailing spaces in the box let the base show through.
func Place(base, box string, x, y, width int) string {
	baseLines := strings.Split(base, "\n")
	for i, line := range strings.Split(box, "\n") {
		row := y + i
		if row < 0 || row >= len(baseLines) {
			continue
		}

		plain := ansi.Strip(line)
		trimmed := strings.TrimRight(plain, " ")
		lead := len(trimmed) - len(strings.TrimLeft(trimmed, " "))
		if lead == len(trimmed) {
			continue
		}
		start := x + lead
		end := x + ansi.StringWidth(trimmed)
		if start >= width || end <= 0 {
			continue
		}

		content := ansi.Cut(line, lead+max(-start, 0), min(end, width)-x)
		start = max(start, 0)
		end = min(end, width)

		under := baseLines[row]
		if w := ansi.StringWidth(under); w < width {
			under += strings.Repeat(" ", width-w)
		}
		baseLines[row] = ansi.Cut(under, 0, start) + content + ansi.Cut(under, end, width)
	}
	return strings.Join(baseLines, "\n")
}

// Center draws box in the middle of a width x height base.
func Center(base, box string, width, height int) string {
	boxWidth := 0
	lines := strings.Split(box, "\n")
	for _, l := range lines {
		boxWidth = max(boxWidth, ansi.StringWidth(l))
	}
	x := max((width-boxWidth)/2, 0)
	y := max((height-len(lines))/2, 0)
	return Place(base, box, x, y, width)
}
