package styles

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// ApplyBoldGradient renders bold text with a horizontal color gradient.
func ApplyBoldGradient(text string, from, to lipgloss.Color) string {
	if text == "" {
		return ""
	}

	// Grapheme clusters so emoji are coloured as a whole
	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}

	if len(clusters) == 1 {
		return lipgloss.NewStyle().Foreground(from).Bold(true).Render(text)
	}

	colors := blendColors(len(clusters), from, to)

	var b strings.Builder
	for i, cluster := range clusters {
		b.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorToHex(colors[i]))).
			Bold(true).
			Render(cluster))
	}
	return b.String()
}

// Blend mixes c toward target by t (0 keeps c, 1 returns target) in HCL
// space. Non-hex colors are returned unchanged.
func Blend(c, target lipgloss.Color, t float64) lipgloss.Color {
	from, ok1 := parseHex(c)
	to, ok2 := parseHex(target)
	if !ok1 || !ok2 {
		return c
	}
	switch {
	case t <= 0:
		return c
	case t >= 1:
		return target
	}
	return lipgloss.Color(from.BlendHcl(to, t).Clamped().Hex())
}

// Dim blends c toward the theme background, used for unfocused cells.
func Dim(c lipgloss.Color, amount float64) lipgloss.Color {
	return Blend(c, T().BgBase, amount)
}

// Contrast returns a readable foreground for text drawn on background c.
func Contrast(c lipgloss.Color) lipgloss.Color {
	col, ok := parseHex(c)
	if !ok {
		return T().FgBase
	}
	l, _, _ := col.Lab()
	if l > 0.6 {
		return lipgloss.Color("#101010")
	}
	return lipgloss.Color("#f5f5f5")
}

// blendColors returns size colors blended between from and to.
func blendColors(size int, from, to lipgloss.Color) []color.Color {
	if size < 2 {
		return []color.Color{lipglossToColor(from)}
	}

	c1, _ := colorful.MakeColor(lipglossToColor(from))
	c2, _ := colorful.MakeColor(lipglossToColor(to))

	colors := make([]color.Color, size)
	for i := range size {
		t := float64(i) / float64(size-1)
		colors[i] = c1.BlendHcl(c2, t)
	}
	return colors
}

func parseHex(c lipgloss.Color) (colorful.Color, bool) {
	hex := string(c)
	if len(hex) != 7 || hex[0] != '#' {
		return colorful.Color{}, false
	}
	col, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}, false
	}
	return col, true
}

// lipglossToColor converts a lipgloss.Color to a color.Color. ANSI colors
// fall back to a neutral gray.
func lipglossToColor(c lipgloss.Color) color.Color {
	if col, ok := parseHex(c); ok {
		return col
	}
	return color.RGBA{R: 128, G: 128, B: 128, A: 255}
}

func colorToHex(c color.Color) string {
	if cf, ok := c.(colorful.Color); ok {
		return cf.Clamped().Hex()
	}
	r, g, b, _ := c.RGBA()
	return colorful.Color{
		R: float64(r) / 65535.0,
		G: float64(g) / 65535.0,
		B: float64(b) / 65535.0,
	}.Hex()
}
