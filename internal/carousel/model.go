package carousel

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/llehouerou/carousel/internal/ui"
	"github.com/llehouerou/carousel/internal/ui/scroll"
)

// scrollDivide is the fraction of the remaining distance an animation frame
// covers.
const scrollDivide = 3

// dragState tracks a mouse gesture between press and release.
type dragState struct {
	active  bool
	startX  int
	applied int // item steps already turned into focus moves
}

// Model is the carousel strip. It presents the padded item space, routes key
// and mouse input through the focus controller and owns the content offset.
//
// Mouse coordinates passed to Update must be relative to the strip's top-left
// corner.
type Model struct {
	ui.Base
	id     int
	source DataSource
	opts   Options
	log    zerolog.Logger

	index  Index
	focus  Focus
	auto   AutoScroll
	offset scroll.Offset
	geom   geometry

	focusedCell int // cell the host shows as focused; may sit in a buffer until settle
	displayed   int // last logical index reported to the Displayer
	restore     int // logical index to centre on the next reload, or NoIndex
	drag        dragState

	reloadGen int
	settleGen int
	frameGen  int
	animating bool
}

// New creates a carousel over source. It fails on invalid options; call
// Reload to load the items.
func New(source DataSource, opts Options) (Model, error) {
	if source == nil {
		return Model{}, ErrNilDataSource
	}
	if err := opts.Validate(); err != nil {
		return Model{}, err
	}
	if len(opts.KeyMap.Next.Keys()) == 0 {
		opts.KeyMap = DefaultKeyMap()
	}

	id := nextID()
	m := Model{
		id:        id,
		source:    source,
		opts:      opts,
		log:       opts.logger(),
		index:     NewIndex(opts.ItemsPerPage),
		auto:      newAutoScroll(id, opts.AutoScroll, opts.AutoScrollInterval),
		offset:    scroll.New(scrollDivide),
		displayed: NoIndex,
		restore:   NoIndex,
	}
	m.focus = NewFocus(m.index)
	return m, nil
}

// ID returns the carousel's unique id.
func (m Model) ID() int {
	return m.id
}

// Index returns the current index adapter.
func (m Model) Index() Index {
	return m.index
}

// FocusState returns a snapshot of the focus controller.
func (m Model) FocusState() Focus {
	return m.focus
}

// FocusedCell returns the virtual index of the cell shown as focused.
func (m Model) FocusedCell() int {
	return m.focusedCell
}

// CurrentItem returns the logical index of the focused item, or NoIndex when
// the carousel is empty.
func (m Model) CurrentItem() int {
	if m.index.VirtualCount() == 0 || !m.index.InRange(m.focus.Current()) {
		return NoIndex
	}
	return m.index.LogicalIndex(m.focus.Current())
}

// ContentOffset returns the shown content offset.
func (m Model) ContentOffset() int {
	return m.offset.Value()
}

// TargetOffset returns the offset the scroll animation is heading to.
func (m Model) TargetOffset() int {
	return m.offset.Target()
}

// AutoScroll returns the auto-advance timer.
func (m Model) AutoScroll() AutoScroll {
	return m.auto
}

// Layout returns the layout resolved by the last layout pass.
func (m Model) Layout() Layout {
	return m.geom.layout
}

// Options returns the options in effect.
func (m Model) Options() Options {
	return m.opts
}

// StripHeight returns the number of rows View renders.
func (m Model) StripHeight() int {
	l := m.opts.Layout.resolve(m.opts.LayoutDelegate, Size{Width: m.Width(), Height: m.Height()})
	return l.Insets.Top + l.ItemSize.Height + l.Insets.Bottom
}

// SetInitialItem makes the next reload centre on logical item l instead of
// the first one.
func (m *Model) SetInitialItem(l int) {
	m.restore = l
}

// SetOptions replaces the options and reloads.
func (m *Model) SetOptions(opts Options) (tea.Cmd, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if len(opts.KeyMap.Next.Keys()) == 0 {
		opts.KeyMap = m.opts.KeyMap
	}
	m.auto.Stop()
	m.opts = opts
	m.log = opts.logger()
	m.index.SetPageSize(opts.ItemsPerPage)
	m.auto = newAutoScroll(m.id, opts.AutoScroll, opts.AutoScrollInterval)
	return m.Reload()
}

// SetAutoScroll turns auto-advance on or off. The timer only runs while the
// strip does not own focus.
func (m *Model) SetAutoScroll(enabled bool) tea.Cmd {
	m.opts.AutoScroll = enabled
	m.auto.enabled = enabled
	if !enabled {
		m.auto.Stop()
		return nil
	}
	if m.IsFocused() || m.index.VirtualCount() == 0 {
		return nil
	}
	return m.auto.Start()
}

// SetSize is a layout pass: delegate overrides are re-read and the focused
// page is re-centred without animation.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.relayout()
	if m.geom.measured() {
		m.offset.Set(m.geom.targetContentOffset(m.offset.Value(), m.focusedCell))
	}
}

// Reload re-reads the item count and schedules the initial centring for after
// the new cells are laid out. A count smaller than the buffer is a
// configuration error; the strip is left empty.
func (m *Model) Reload() (tea.Cmd, error) {
	count := m.source.NumberOfItems()
	m.index.SetCount(count)
	err := m.index.Validate()
	if err != nil {
		m.log.Error().Err(err).Int("items", count).Msg("reload rejected")
		m.index.SetCount(0)
	}

	m.focus.SetIndex(m.index)
	m.focus.Reset()
	m.auto.Stop()
	m.drag = dragState{}
	m.focusedCell = 0
	m.displayed = NoIndex
	m.offset.Set(0)
	m.relayout()

	m.reloadGen++
	m.settleGen++ // pending jumps belong to the old item set
	m.log.Debug().
		Int("items", m.index.Count()).
		Int("virtual", m.index.VirtualCount()).
		Msg("reload")
	return reloadSettledCmd(m.id, m.reloadGen), err
}

// Focus gives the strip keyboard focus. Entering focus stops auto-advance.
func (m *Model) Focus() tea.Cmd {
	m.SetFocused(true)
	if m.index.VirtualCount() == 0 {
		return nil
	}
	target := m.focus.Preferred()
	if target == NoIndex {
		target = m.focus.Current()
	}
	d := m.focus.RequestFocusChange(FocusUpdate{Previous: NoIndex, Next: target})
	m.focusedCell = target
	return m.applyAutoScroll(d.AutoScroll)
}

// Blur takes keyboard focus away. Leaving focus restarts auto-advance.
func (m *Model) Blur() tea.Cmd {
	m.SetFocused(false)
	if m.drag.active {
		m.endDrag()
	}
	if m.index.VirtualCount() == 0 {
		return nil
	}
	d := m.focus.RequestFocusChange(FocusUpdate{Previous: m.focusedCell, Next: NoIndex})
	return m.applyAutoScroll(d.AutoScroll)
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles key, mouse and internal timer messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case reloadSettledMsg:
		if msg.id != m.id || msg.gen != m.reloadGen {
			return m, nil
		}
		cmd := m.reloadSettled()
		return m, cmd

	case focusSettledMsg:
		if msg.id != m.id || msg.gen != m.settleGen {
			return m, nil
		}
		m.didUpdateFocus()
		cmd := m.startFrames()
		return m, cmd

	case autoScrollTickMsg:
		ok, rearm := m.auto.accept(msg)
		if !ok {
			return m, nil
		}
		cmd := m.scrollToNextPage()
		return m, tea.Batch(rearm, cmd)

	case frameMsg:
		if msg.id != m.id || msg.gen != m.frameGen {
			return m, nil
		}
		if m.offset.Step() {
			return m, frameCmd(m.id, m.frameGen)
		}
		m.animating = false
		return m, nil

	case tea.KeyMsg:
		if !m.IsFocused() || m.index.VirtualCount() == 0 {
			return m, nil
		}
		switch {
		case key.Matches(msg, m.opts.KeyMap.Prev):
			_, cmd := m.moveFocus(-1)
			return m, cmd
		case key.Matches(msg, m.opts.KeyMap.Next):
			_, cmd := m.moveFocus(1)
			return m, cmd
		case key.Matches(msg, m.opts.KeyMap.Select):
			m.selectItem(m.focusedCell)
		}

	case tea.MouseMsg:
		if m.index.VirtualCount() == 0 {
			return m, nil
		}
		cmd := m.handleMouse(msg)
		return m, cmd
	}

	return m, nil
}

// ScrollToItem centres the page holding virtual index v and moves focus there.
func (m *Model) ScrollToItem(v int, animated bool) tea.Cmd {
	var cmd tea.Cmd
	if offset, ok := m.geom.offsetForItem(v); ok {
		cmd = m.SetContentOffset(offset, animated)
	}
	m.focus.SetFocus(v)
	m.focusedCell = v
	m.notifyDisplay(v)
	return cmd
}

// SetContentOffset scrolls to x, animated or not.
func (m *Model) SetContentOffset(x int, animated bool) tea.Cmd {
	if !animated {
		m.offset.Set(x)
		return nil
	}
	m.offset.AnimateTo(x)
	return m.startFrames()
}

func (m *Model) reloadSettled() tea.Cmd {
	if m.index.VirtualCount() == 0 {
		return nil
	}
	// The strip may have been resized since Reload
	m.relayout()

	target := m.index.Buffer()
	if m.restore >= 0 && m.restore < m.index.Count() {
		target = m.index.VirtualIndex(m.restore)
	}
	m.restore = NoIndex

	cmd := m.ScrollToItem(target, false)
	if m.IsFocused() {
		return cmd
	}
	return tea.Batch(cmd, m.auto.Start())
}

// moveFocus proposes moving the focused cell by delta cells and reports
// whether the controller accepted it.
func (m *Model) moveFocus(delta int) (bool, tea.Cmd) {
	prev := m.focusedCell
	next := prev + delta
	if !m.index.InRange(next) {
		m.log.Debug().Int("from", prev).Int("to", next).Msg("focus move past strip edge")
		return false, nil
	}

	heading := HeadingHigher
	if delta < 0 {
		heading = HeadingLower
	}
	d := m.focus.RequestFocusChange(FocusUpdate{Previous: prev, Next: next, Heading: heading})
	if !d.Accepted {
		m.log.Debug().
			Int("from", prev).
			Int("to", next).
			Int("initial", m.focus.Initial()).
			Msg("focus move rejected")
		return false, nil
	}

	m.focusedCell = next
	m.offset.AnimateTo(m.geom.targetContentOffset(m.offset.Target(), next))
	m.notifyDisplay(next)

	m.settleGen++
	return true, tea.Batch(
		m.applyAutoScroll(d.AutoScroll),
		m.startFrames(),
		focusSettledCmd(m.id, m.settleGen),
	)
}

// didUpdateFocus performs a pending mirrored jump.
func (m *Model) didUpdateFocus() {
	dir := m.focus.DidUpdateFocus()
	if dir == JumpNone {
		return
	}
	m.jump(dir)
	m.focusedCell = m.focus.Current()
	m.offset.AnimateTo(m.geom.targetContentOffset(m.offset.Target(), m.focusedCell))
}

// jump shifts the offset by one logical cycle without animation.
func (m *Model) jump(dir JumpDirection) {
	dx := m.focus.JumpDistance(dir, m.geom.layout.TotalItemWidth())
	m.offset.Shift(dx)
	m.log.Debug().
		Str("direction", jumpName(dir)).
		Int("offset", m.offset.Value()).
		Msg("mirrored jump")
}

// scrollToNextPage is one auto-advance step.
func (m *Model) scrollToNextPage() tea.Cmd {
	if m.index.VirtualCount() == 0 {
		return nil
	}
	next, dir := m.focus.AdvancePage()
	if dir != JumpNone {
		m.jump(dir)
	}
	return m.ScrollToItem(next, true)
}

func (m *Model) selectItem(v int) {
	if !m.index.InRange(v) {
		return
	}
	logical := m.index.LogicalIndex(v)
	m.log.Debug().Int("item", logical).Msg("select")
	if s, ok := m.source.(Selector); ok {
		s.DidSelectItem(logical)
	}
}

func (m *Model) notifyDisplay(v int) {
	if !m.index.InRange(v) {
		return
	}
	logical := m.index.LogicalIndex(v)
	if logical == m.displayed {
		return
	}
	m.displayed = logical
	if d, ok := m.source.(Displayer); ok {
		d.DidDisplayItem(logical)
	}
}

func (m *Model) applyAutoScroll(change AutoScrollChange) tea.Cmd {
	switch change {
	case AutoScrollStart:
		return m.auto.Start()
	case AutoScrollStop:
		m.auto.Stop()
	}
	return nil
}

func (m *Model) startFrames() tea.Cmd {
	if !m.offset.Animating() || m.animating {
		return nil
	}
	m.animating = true
	m.frameGen++
	return frameCmd(m.id, m.frameGen)
}

func (m *Model) relayout() {
	viewport := Size{Width: m.Width(), Height: m.Height()}
	m.geom = geometry{
		layout:   m.opts.Layout.resolve(m.opts.LayoutDelegate, viewport),
		viewport: viewport,
		cells:    m.index.VirtualCount(),
		pageSize: m.index.PageSize(),
	}
}

func jumpName(dir JumpDirection) string {
	if dir == JumpForward {
		return "forward"
	}
	return "backward"
}
