package state

// Interface defines the state manager contract for dependency injection and testing.
type Interface interface {
	SaveCarousel(state CarouselState)
	GetCarousel() (*CarouselState, error)
	RecordSelection(s Selection) error
	RecentSelections(limit int) ([]Selection, error)
	SelectionCounts() (map[int]int, error)
	Close() error
}

// Verify Manager implements Interface at compile time.
var _ Interface = (*Manager)(nil)
