// Package scroll provides an animated horizontal content offset.
package scroll

// MinStep is the smallest distance moved per animation frame.
const MinStep = 1

// Offset tracks the current content offset and the offset an animation is
// heading to. Offsets may be negative: content is allowed to scroll past its
// leading edge while centring the first page.
type Offset struct {
	value  int // Offset currently shown
	target int // Offset the animation converges to
	divide int // Fraction of the remaining distance covered per frame
}

// New creates an Offset that covers 1/divide of the remaining distance each
// frame. divide values below 1 make every animation a single frame.
func New(divide int) Offset {
	return Offset{divide: max(divide, 1)}
}

// Value returns the offset currently shown.
func (o Offset) Value() int {
	return o.value
}

// Target returns the offset the animation is heading to.
func (o Offset) Target() int {
	return o.target
}

// Animating reports whether Step still has distance to cover.
func (o Offset) Animating() bool {
	return o.value != o.target
}

// Set moves to x immediately, cancelling any animation.
func (o *Offset) Set(x int) {
	o.value = x
	o.target = x
}

// AnimateTo starts (or retargets) an animation toward x.
func (o *Offset) AnimateTo(x int) {
	o.target = x
}

// Shift moves both the shown offset and the target by dx. An animation in
// flight keeps its remaining distance.
func (o *Offset) Shift(dx int) {
	o.value += dx
	o.target += dx
}

// Stop freezes the animation at the current value.
func (o *Offset) Stop() {
	o.target = o.value
}

// Step advances one animation frame and reports whether more frames remain.
func (o *Offset) Step() bool {
	if o.value == o.target {
		return false
	}
	diff := o.target - o.value
	step := diff / o.divide
	if step == 0 {
		step = sign(diff) * MinStep
	}
	if abs(step) > abs(diff) {
		step = diff
	}
	o.value += step
	return o.value != o.target
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
