package carousel

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultAutoScrollInterval is used when auto-scroll is enabled without an
// explicit interval.
const DefaultAutoScrollInterval = 5 * time.Second

// autoScrollTickMsg fires when the auto-advance interval elapses.
// The generation lets stale ticks from an invalidated timer be dropped.
type autoScrollTickMsg struct {
	id  int
	gen int
}

// AutoScroll is a repeating auto-advance timer built on tea.Tick.
// Only the most recently armed tick chain is live.
type AutoScroll struct {
	id       int
	enabled  bool
	interval time.Duration
	running  bool
	gen      int
}

func newAutoScroll(id int, enabled bool, interval time.Duration) AutoScroll {
	if interval <= 0 {
		interval = DefaultAutoScrollInterval
	}
	return AutoScroll{id: id, enabled: enabled, interval: interval}
}

// Enabled reports whether auto-scroll is configured on.
func (a AutoScroll) Enabled() bool {
	return a.enabled
}

// Running reports whether a tick chain is armed.
func (a AutoScroll) Running() bool {
	return a.running
}

// Interval returns the time between advances.
func (a AutoScroll) Interval() time.Duration {
	return a.interval
}

// Start invalidates any armed timer and arms a new one. It returns nil when
// auto-scroll is disabled.
func (a *AutoScroll) Start() tea.Cmd {
	if !a.enabled {
		return nil
	}
	a.gen++
	a.running = true
	return a.tick()
}

// Stop invalidates the armed timer. Safe to call repeatedly.
func (a *AutoScroll) Stop() {
	a.gen++
	a.running = false
}

// accept reports whether msg belongs to the live timer, re-arming it if so.
func (a *AutoScroll) accept(msg autoScrollTickMsg) (bool, tea.Cmd) {
	if msg.id != a.id || msg.gen != a.gen || !a.running {
		return false, nil
	}
	return true, a.tick()
}

func (a AutoScroll) tick() tea.Cmd {
	id, gen := a.id, a.gen
	return tea.Tick(a.interval, func(time.Time) tea.Msg {
		return autoScrollTickMsg{id: id, gen: gen}
	})
}
