package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// DefaultAutoScrollInterval matches the demo's original pacing.
const DefaultAutoScrollInterval = 3 * time.Second

type Config struct {
	Carousel CarouselConfig `koanf:"carousel"`

	// Items shown by the demo; the built-in three are used when empty
	Items []ItemConfig `koanf:"items"`

	Log LogConfig `koanf:"log"`

	// StateFile overrides the SQLite database location
	StateFile string `koanf:"state_file"`

	// Notifications sends a desktop notification when an item is selected
	Notifications bool `koanf:"notifications"`

	Icons string `koanf:"icons"` // "nerd", "unicode", or "none"
}

// CarouselConfig holds the carousel's layout and auto-advance settings.
type CarouselConfig struct {
	ItemsPerPage       int          `koanf:"items_per_page"`       // default: 1
	AutoScroll         *bool        `koanf:"auto_scroll"`          // default: true
	AutoScrollInterval string       `koanf:"auto_scroll_interval"` // Go duration, default: "3s"
	ItemWidth          int          `koanf:"item_width"`           // 0 fits the window
	ItemHeight         int          `koanf:"item_height"`          // 0 fits the window
	ItemSpacing        *int         `koanf:"item_spacing"`         // default: 2
	Insets             InsetsConfig `koanf:"insets"`
}

// InsetsConfig are margins around the strip, in terminal cells.
type InsetsConfig struct {
	Top    int `koanf:"top"`
	Left   int `koanf:"left"`
	Bottom int `koanf:"bottom"`
	Right  int `koanf:"right"`
}

// ItemConfig is one coloured cell.
type ItemConfig struct {
	Color string `koanf:"color"` // hex, e.g. "#fd5f00"
	Label string `koanf:"label"`
}

// LogConfig controls the log file.
type LogConfig struct {
	Level string `koanf:"level"` // zerolog level name, default: "info"
	File  string `koanf:"file"`  // empty uses the XDG state directory
}

// DefaultItems are the demo's built-in cells.
func DefaultItems() []ItemConfig {
	return []ItemConfig{
		{Color: "#13334c", Label: "👑"},
		{Color: "#00572e", Label: "🙈"},
		{Color: "#fd5f00", Label: "👾"},
	}
}

func Load() (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("load %s: %w", path, err)
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	cfg.StateFile = expandPath(cfg.StateFile)
	cfg.Log.File = expandPath(cfg.Log.File)
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))

	return cfg, nil
}

func (c *Config) validate() error {
	if s := c.Carousel.AutoScrollInterval; s != "" {
		d, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("carousel.auto_scroll_interval: %w", err)
		}
		if d <= 0 {
			return fmt.Errorf("carousel.auto_scroll_interval: must be positive, got %s", s)
		}
	}
	for i, item := range c.Items {
		if _, err := colorful.Hex(item.Color); err != nil {
			return fmt.Errorf("items[%d]: invalid color %q", i, item.Color)
		}
	}
	return nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/carousel/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "carousel", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// GetCarouselConfig returns the carousel configuration with defaults applied.
func (c *Config) GetCarouselConfig() CarouselConfig {
	cfg := c.Carousel

	// Apply defaults
	if cfg.ItemsPerPage <= 0 {
		cfg.ItemsPerPage = 1
	}
	if cfg.AutoScroll == nil {
		enabled := true
		cfg.AutoScroll = &enabled
	}
	if d, err := time.ParseDuration(cfg.AutoScrollInterval); err != nil || d <= 0 {
		cfg.AutoScrollInterval = DefaultAutoScrollInterval.String()
	}
	if cfg.ItemWidth < 0 {
		cfg.ItemWidth = 0
	}
	if cfg.ItemHeight < 0 {
		cfg.ItemHeight = 0
	}
	if cfg.ItemSpacing == nil || *cfg.ItemSpacing < 0 {
		spacing := 2
		cfg.ItemSpacing = &spacing
	}
	cfg.Insets.Top = max(cfg.Insets.Top, 0)
	cfg.Insets.Left = max(cfg.Insets.Left, 0)
	cfg.Insets.Bottom = max(cfg.Insets.Bottom, 0)
	cfg.Insets.Right = max(cfg.Insets.Right, 0)

	return cfg
}

// Interval returns the parsed auto-advance interval.
func (c CarouselConfig) Interval() time.Duration {
	d, err := time.ParseDuration(c.AutoScrollInterval)
	if err != nil || d <= 0 {
		return DefaultAutoScrollInterval
	}
	return d
}

// GetItems returns the configured items, or the built-in ones when none are
// configured.
func (c *Config) GetItems() []ItemConfig {
	if len(c.Items) == 0 {
		return DefaultItems()
	}
	return c.Items
}
