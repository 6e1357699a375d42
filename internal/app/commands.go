package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/carousel/internal/notify"
)

// statusTickInterval matches the resolution of the relative times shown.
const statusTickInterval = time.Second

// StatusTickCmd returns a command that sends StatusTickMsg after one second.
func StatusTickCmd() tea.Cmd {
	return tea.Tick(statusTickInterval, func(t time.Time) tea.Msg {
		return StatusTickMsg(t)
	})
}

// WatchStderr returns a command that waits for the next captured stderr
// line. It returns nil when there is nothing to watch.
func WatchStderr(lines <-chan string) tea.Cmd {
	if lines == nil {
		return nil
	}
	return func() tea.Msg {
		line, ok := <-lines
		if !ok {
			return nil
		}
		return StderrMsg{Line: line}
	}
}

// NotifyCmd sends n off the Update loop; D-Bus calls can block.
func NotifyCmd(notifier notify.Notifier, n notify.Notification) tea.Cmd {
	return func() tea.Msg {
		id, err := notifier.Notify(n)
		return NotifiedMsg{ID: id, Err: err}
	}
}
