// Package carousel provides an infinitely looping, focus-driven carousel
// component for bubbletea programs.
//
// The logical items supplied by a DataSource are padded with mirrored buffer
// cells on both ends. When focus wanders into a buffer the content offset is
// silently shifted by one full logical cycle so the strip never runs out.
package carousel

import "fmt"

// NoIndex marks an absent virtual index (no focused cell, no gesture).
const NoIndex = -1

// Index translates between virtual (buffer-padded) indices shown by the strip
// and logical indices of the caller's data.
type Index struct {
	count    int // logical item count
	pageSize int
}

// NewIndex creates an index for pageSize items per page.
func NewIndex(pageSize int) Index {
	return Index{pageSize: pageSize}
}

// SetCount updates the logical item count. Called on every reload.
func (x *Index) SetCount(count int) {
	x.count = count
}

// SetPageSize updates the number of items focused per page.
func (x *Index) SetPageSize(pageSize int) {
	x.pageSize = pageSize
}

// Count returns the logical item count.
func (x Index) Count() int {
	return x.count
}

// PageSize returns the number of items per page.
func (x Index) PageSize() int {
	return x.pageSize
}

// Buffer returns the number of mirrored cells added to each end.
func (x Index) Buffer() int {
	return 2 * x.pageSize
}

// VirtualCount returns the number of cells presented to the strip.
// An empty data set has no buffer cells either.
func (x Index) VirtualCount() int {
	if x.count <= 0 {
		return 0
	}
	return x.count + 2*x.Buffer()
}

// Validate reports configuration errors that make wrapping impossible.
func (x Index) Validate() error {
	if x.pageSize < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidPageSize, x.pageSize)
	}
	if x.count > 0 && x.count < x.Buffer() {
		return fmt.Errorf("%w: have %d, need at least %d for %d per page",
			ErrTooFewItems, x.count, x.Buffer(), x.pageSize)
	}
	return nil
}

// LogicalIndex maps a virtual index to the logical item it mirrors.
// It panics when v is out of range or there are fewer logical items than the
// buffer; callers must Validate after every reload.
func (x Index) LogicalIndex(v int) int {
	if x.count < x.Buffer() || x.count == 0 {
		panic(fmt.Sprintf("carousel: %d items cannot fill a buffer of %d; "+
			"use at least twice the number of items per page", x.count, x.Buffer()))
	}
	if v < 0 || v >= x.VirtualCount() {
		panic(fmt.Sprintf("carousel: virtual index %d out of range [0, %d)", v, x.VirtualCount()))
	}

	raw := v - x.Buffer()
	wrapped := raw
	if raw < 0 {
		wrapped = x.count + raw
	}
	return wrapped % x.count
}

// VirtualIndex returns the canonical (non-mirrored) virtual index of l.
func (x Index) VirtualIndex(l int) int {
	return x.Buffer() + l
}

// InLowerBuffer reports whether v lies in the leading mirrored cells.
func (x Index) InLowerBuffer(v int) bool {
	return v < x.Buffer()
}

// InUpperBuffer reports whether v lies in the trailing mirrored cells.
func (x Index) InUpperBuffer(v int) bool {
	return v >= x.Buffer()+x.count
}

// InRange reports whether v addresses an existing cell.
func (x Index) InRange(v int) bool {
	return v >= 0 && v < x.VirtualCount()
}
