// Package app is the demo program around the carousel strip: a title, the
// strip in its panel, a row of buttons and a status line.
package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/llehouerou/carousel/internal/carousel"
	"github.com/llehouerou/carousel/internal/config"
	"github.com/llehouerou/carousel/internal/errmsg"
	"github.com/llehouerou/carousel/internal/keymap"
	"github.com/llehouerou/carousel/internal/notify"
	"github.com/llehouerou/carousel/internal/state"
	"github.com/llehouerou/carousel/internal/ui/helpbindings"
)

// FocusTarget is the region that receives keyboard input.
type FocusTarget int

const (
	FocusCarousel FocusTarget = iota
	FocusButtons
)

// Model is the root application model containing all state.
type Model struct {
	Carousel      carousel.Model
	Source        *itemSource
	Buttons       buttonRow
	Help          helpbindings.Model
	HelpVisible   bool
	Focus         FocusTarget
	StateMgr      state.Interface
	Keys          *keymap.Resolver
	Config        config.CarouselConfig
	Stderr        <-chan string
	Notifier      notify.Notifier // nil disables selection notifications
	LastSelection *state.Selection
	Displayed     int    // logical index last reported by the carousel
	Notice        string // last line captured from stderr
	ErrorMsg      string
	Width         int
	Height        int

	log      zerolog.Logger
	initCmd  tea.Cmd
	notifyID uint32 // last notification, replaced by the next one
}

// New creates the application model. The saved carousel position, page size
// and auto-scroll setting take precedence over the configuration.
func New(cfg *config.Config, stateMgr state.Interface, log zerolog.Logger) (Model, error) {
	cc := cfg.GetCarouselConfig()
	perPage := cc.ItemsPerPage
	autoScroll := *cc.AutoScroll
	initial := carousel.NoIndex

	var startupErr string
	saved, err := stateMgr.GetCarousel()
	if err != nil {
		log.Warn().Err(err).Msg("restore carousel state")
		startupErr = errmsg.Format(errmsg.OpStateLoad, err)
	}
	if saved != nil {
		if saved.ItemsPerPage > 0 {
			perPage = saved.ItemsPerPage
		}
		autoScroll = saved.AutoScroll
		initial = saved.FocusedItem
	}

	source := newItemSource(cfg.GetItems())
	counts, err := stateMgr.SelectionCounts()
	if err != nil {
		log.Warn().Err(err).Msg("load selection counts")
	}
	source.counts = counts

	c, err := carousel.New(source, carouselOptions(cc, perPage, autoScroll, log))
	if err != nil {
		return Model{}, err
	}
	c.SetInitialItem(initial)

	m := Model{
		Carousel:  c,
		Source:    source,
		Help:      helpbindings.New(),
		Focus:     FocusButtons,
		StateMgr:  stateMgr,
		Keys:      keymap.NewResolver(keymap.Bindings),
		Config:    cc,
		Displayed: initial,
		ErrorMsg:  startupErr,
		log:       log,
	}

	recent, err := stateMgr.RecentSelections(1)
	switch {
	case err != nil:
		m.ErrorMsg = errmsg.Format(errmsg.OpSelectionsLoad, err)
	case len(recent) > 0:
		m.LastSelection = &recent[0]
	}

	m.initCmd, err = m.Carousel.Reload()
	if err != nil {
		m.ErrorMsg = errmsg.Format(errmsg.OpCarouselReload, err)
	}
	return m, nil
}

// WithStderr makes the status line show lines captured from stderr.
func (m Model) WithStderr(lines <-chan string) Model {
	m.Stderr = lines
	return m
}

// WithNotifier sends a desktop notification for every selection.
func (m Model) WithNotifier(n notify.Notifier) Model {
	m.Notifier = n
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.initCmd, StatusTickCmd(), WatchStderr(m.Stderr))
}

// carouselOptions builds the strip options from the configuration.
func carouselOptions(cc config.CarouselConfig, perPage int, autoScroll bool, log zerolog.Logger) carousel.Options {
	opts := carousel.DefaultOptions()
	opts.ItemsPerPage = perPage
	opts.AutoScroll = autoScroll
	opts.AutoScrollInterval = cc.Interval()
	opts.Layout.Spacing = *cc.ItemSpacing
	opts.LayoutDelegate = stripLayout{cfg: cc, perPage: perPage}
	opts.KeyMap = keymap.CarouselKeyMap()
	opts.Logger = &log
	return opts
}

// maxPerPage is the largest page size count items can fill with both
// buffers.
func maxPerPage(count int) int {
	return max(count/2, 1)
}
