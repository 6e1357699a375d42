package carousel

// Heading is the direction focus travels in.
type Heading int

const (
	HeadingNone   Heading = iota
	HeadingLower          // toward lower indices (left)
	HeadingHigher         // toward higher indices (right)
)

func (h Heading) String() string {
	switch h {
	case HeadingLower:
		return "lower"
	case HeadingHigher:
		return "higher"
	default:
		return "none"
	}
}

// State is the focus controller state.
type State int

const (
	StateIdle State = iota
	StateDragTracking
	StateJumpPending
	StateJumped // transient; DidUpdateFocus resolves it before returning
)

func (s State) String() string {
	switch s {
	case StateDragTracking:
		return "drag-tracking"
	case StateJumpPending:
		return "jump-pending"
	case StateJumped:
		return "jumped"
	default:
		return "idle"
	}
}

// JumpDirection is the sign of a mirrored jump.
type JumpDirection int

const (
	JumpNone JumpDirection = iota
	JumpForward
	JumpBackward
)

// Sign returns +1 for forward, -1 for backward and 0 otherwise.
func (d JumpDirection) Sign() int {
	switch d {
	case JumpForward:
		return 1
	case JumpBackward:
		return -1
	default:
		return 0
	}
}

// AutoScrollChange tells the owner what to do with the auto-advance timer
// after a focus request.
type AutoScrollChange int

const (
	AutoScrollKeep AutoScrollChange = iota
	AutoScrollStart
	AutoScrollStop
)

// FocusUpdate describes a focus move proposed by the host.
// Previous is NoIndex when focus enters the strip; Next is NoIndex when focus
// leaves it.
type FocusUpdate struct {
	Previous int
	Next     int
	Heading  Heading
}

// FocusDecision is the controller's answer to a FocusUpdate.
type FocusDecision struct {
	Accepted   bool
	AutoScroll AutoScrollChange
	Jump       JumpDirection // scheduled, performed on the next settle
}

// Focus owns the focus position and decides when a mirrored jump is needed.
type Focus struct {
	index     Index
	state     State
	current   int
	initial   int // focused item when the drag began
	preferred int // cell the host should focus next
	jump      JumpDirection
}

// NewFocus creates a controller over a copy of index. Call SetIndex when the
// count or page size changes.
func NewFocus(index Index) Focus {
	return Focus{
		index:     index,
		initial:   NoIndex,
		preferred: NoIndex,
	}
}

// SetIndex replaces the controller's copy of the index adapter.
func (f *Focus) SetIndex(index Index) {
	f.index = index
}

// Index returns the index adapter the controller decides with.
func (f Focus) Index() Index {
	return f.index
}

// Reset drops all focus state. Any pending jump is cancelled.
func (f *Focus) Reset() {
	f.state = StateIdle
	f.current = 0
	f.initial = NoIndex
	f.preferred = NoIndex
	f.jump = JumpNone
}

// State returns the current controller state.
func (f Focus) State() State {
	return f.state
}

// Current returns the virtual index of the item in focus.
func (f Focus) Current() int {
	return f.current
}

// Initial returns the item focused when the current drag began, or NoIndex.
func (f Focus) Initial() int {
	return f.initial
}

// Preferred returns the cell the host should focus, or NoIndex.
func (f Focus) Preferred() int {
	return f.preferred
}

// PendingJump returns the jump scheduled for the next settle.
func (f Focus) PendingJump() JumpDirection {
	return f.jump
}

// BeginDrag records where a gesture started so it can be capped to a page.
func (f *Focus) BeginDrag() {
	f.initial = f.current
	if f.state == StateIdle {
		f.state = StateDragTracking
	}
}

// EndDrag clears gesture state.
func (f *Focus) EndDrag() {
	f.initial = NoIndex
	if f.state == StateDragTracking {
		f.state = StateIdle
	}
}

// Dragging reports whether a gesture is in progress.
func (f Focus) Dragging() bool {
	return f.initial != NoIndex
}

// SetFocus moves focus without user interaction (programmatic scroll).
func (f *Focus) SetFocus(v int) {
	f.current = v
	f.preferred = v
	f.initial = NoIndex
	if f.state == StateDragTracking {
		f.state = StateIdle
	}
}

// RequestFocusChange decides whether the host may move focus as proposed.
func (f *Focus) RequestFocusChange(u FocusUpdate) FocusDecision {
	// Leaving the strip
	if u.Next == NoIndex {
		return FocusDecision{Accepted: true, AutoScroll: AutoScrollStart}
	}

	// Entering the strip
	if u.Previous == NoIndex {
		return FocusDecision{Accepted: true, AutoScroll: AutoScrollStop}
	}

	// One page per gesture so fast swipes cannot skip pages or escape the buffer
	if f.initial != NoIndex && abs(u.Next-f.initial) > f.index.PageSize() {
		return FocusDecision{}
	}

	f.current = u.Next
	decision := FocusDecision{Accepted: true}

	// The latest accepted move decides whether a jump is due
	f.jump = JumpNone
	f.state = f.restingState()

	switch {
	case u.Heading == HeadingLower && f.index.InLowerBuffer(u.Next):
		f.current += f.index.Count()
		f.jump = JumpForward
		f.state = StateJumpPending
		decision.Jump = JumpForward
	case u.Heading == HeadingHigher && f.index.InUpperBuffer(u.Next):
		f.current -= f.index.Count()
		f.jump = JumpBackward
		f.state = StateJumpPending
		decision.Jump = JumpBackward
	}

	f.preferred = f.current
	return decision
}

// DidUpdateFocus is the focus-settle notification. It returns the jump to
// perform, or JumpNone when nothing was pending.
func (f *Focus) DidUpdateFocus() JumpDirection {
	if f.state != StateJumpPending {
		return JumpNone
	}
	dir := f.jump
	f.jump = JumpNone
	f.current = f.preferred
	if f.initial != NoIndex {
		// Keep the gesture cap relative to the mirrored position
		f.initial += dir.Sign() * f.index.Count()
	}
	f.state = f.restingState()
	return dir
}

// AdvancePage returns the auto-advance target and the jump that must be
// performed, without animation, before scrolling to it.
func (f Focus) AdvancePage() (next int, jump JumpDirection) {
	next = f.current + f.index.PageSize()
	if next >= f.index.Buffer()+f.index.Count() {
		return next - f.index.Count(), JumpBackward
	}
	return next, JumpNone
}

// JumpDistance returns the offset change for a jump in dir.
func (f Focus) JumpDistance(dir JumpDirection, totalItemWidth int) int {
	return dir.Sign() * f.index.Count() * totalItemWidth
}

func (f Focus) restingState() State {
	if f.initial != NoIndex {
		return StateDragTracking
	}
	return StateIdle
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
