package state

import (
	"database/sql"
	"errors"
	"time"
)

// CarouselState is the carousel position restored on the next start.
type CarouselState struct {
	FocusedItem  int // logical index
	ItemsPerPage int
	AutoScroll   bool
	UpdatedAt    time.Time
}

func getCarousel(db *sql.DB) (*CarouselState, error) {
	row := db.QueryRow(`
		SELECT focused_item, items_per_page, auto_scroll, updated_at
		FROM carousel_state WHERE id = 1
	`)

	var state CarouselState
	var autoScroll int
	var updatedAt int64
	err := row.Scan(&state.FocusedItem, &state.ItemsPerPage, &autoScroll, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no saved state is valid on first run
	}
	if err != nil {
		return nil, err
	}

	state.AutoScroll = autoScroll != 0
	state.UpdatedAt = time.UnixMilli(updatedAt)
	return &state, nil
}

func saveCarousel(db *sql.DB, state CarouselState) error {
	if state.UpdatedAt.IsZero() {
		state.UpdatedAt = time.Now()
	}
	autoScroll := 0
	if state.AutoScroll {
		autoScroll = 1
	}

	_, err := db.Exec(`
		INSERT INTO carousel_state (id, focused_item, items_per_page, auto_scroll, updated_at)
		VALUES (1, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			focused_item = excluded.focused_item,
			items_per_page = excluded.items_per_page,
			auto_scroll = excluded.auto_scroll,
			updated_at = excluded.updated_at
	`, state.FocusedItem, state.ItemsPerPage, autoScroll, state.UpdatedAt.UnixMilli())

	return err
}
