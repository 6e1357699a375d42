package state

import "time"

// Mock is an in-memory test double for Manager.
type Mock struct {
	Carousel   *CarouselState
	Selections []Selection // newest last
	Err        error       // returned by every fallible call when set
	closed     bool
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) SaveCarousel(state CarouselState) {
	m.Carousel = &state
}

func (m *Mock) GetCarousel() (*CarouselState, error) {
	return m.Carousel, m.Err
}

func (m *Mock) RecordSelection(s Selection) error {
	if m.Err != nil {
		return m.Err
	}
	if s.SelectedAt.IsZero() {
		s.SelectedAt = time.Now()
	}
	m.Selections = append(m.Selections, s)
	return nil
}

func (m *Mock) RecentSelections(limit int) ([]Selection, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var out []Selection
	for i := len(m.Selections) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.Selections[i])
	}
	return out, nil
}

func (m *Mock) SelectionCounts() (map[int]int, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	counts := make(map[int]int)
	for _, s := range m.Selections {
		counts[s.Item]++
	}
	return counts, nil
}

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

// Closed reports whether Close was called.
func (m *Mock) Closed() bool {
	return m.closed
}

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
