package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for the current style.
type Icons struct {
	Playing  string
	Paused   string
	Fewer    string
	More     string
	Reload   string
	Quit     string
	Selected string
}

var (
	nerdIcons = Icons{
		Playing:  "󰐊 ", // nf-md-play
		Paused:   "󰏤 ", // nf-md-pause
		Fewer:    "󰍴 ", // nf-md-minus
		More:     "󰐕 ", // nf-md-plus
		Reload:   "󰑐 ", // nf-md-reload
		Quit:     "󰈆 ", // nf-md-exit_to_app
		Selected: "󰄬",  // nf-md-check
	}

	unicodeIcons = Icons{
		Playing:  "▶ ",
		Paused:   "⏸ ",
		Fewer:    "− ",
		More:     "+ ",
		Reload:   "⟳ ",
		Quit:     "⏻ ",
		Selected: "✓",
	}

	noneIcons = Icons{
		Selected: "×",
	}

	// current holds the active icon set
	current = noneIcons
)

// Init initializes the icons based on the style.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	case StyleNone:
		current = noneIcons
	default:
		current = noneIcons
	}
}

// FormatAutoScroll prefixes an auto-scroll label with the play or pause icon.
func FormatAutoScroll(label string, running bool) string {
	if running {
		return current.Playing + label
	}
	return current.Paused + label
}

// FormatFewer formats the "fewer per page" label.
func FormatFewer(label string) string {
	return current.Fewer + label
}

// FormatMore formats the "more per page" label.
func FormatMore(label string) string {
	return current.More + label
}

// FormatReload formats the reload label.
func FormatReload(label string) string {
	return current.Reload + label
}

// FormatQuit formats the quit label.
func FormatQuit(label string) string {
	return current.Quit + label
}

// Selected returns the marker following an item's selection count.
func Selected() string {
	return current.Selected
}
