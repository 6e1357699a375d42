package carousel

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/carousel/internal/ui"
)

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// reloadSettledMsg runs the post-reload centring once the strip has been laid
// out for the new item count.
type reloadSettledMsg struct {
	id  int
	gen int
}

// focusSettledMsg is the focus-settle notification that performs a pending
// mirrored jump.
type focusSettledMsg struct {
	id  int
	gen int
}

// frameMsg advances the scroll animation by one frame.
type frameMsg struct {
	id  int
	gen int
}

func reloadSettledCmd(id, gen int) tea.Cmd {
	return func() tea.Msg {
		return reloadSettledMsg{id: id, gen: gen}
	}
}

func focusSettledCmd(id, gen int) tea.Cmd {
	return func() tea.Msg {
		return focusSettledMsg{id: id, gen: gen}
	}
}

func frameCmd(id, gen int) tea.Cmd {
	return tea.Tick(ui.FrameInterval, func(time.Time) tea.Msg {
		return frameMsg{id: id, gen: gen}
	})
}
