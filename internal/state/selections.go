package state

import (
	"database/sql"
	"time"

	dbutil "github.com/llehouerou/carousel/internal/db"
)

// maxSelections bounds the history table.
const maxSelections = 500

// Selection is one activation of a carousel item.
type Selection struct {
	Item       int
	Label      string
	SelectedAt time.Time
}

func recordSelection(db *sql.DB, s Selection) error {
	if s.SelectedAt.IsZero() {
		s.SelectedAt = time.Now()
	}
	return dbutil.WithTx(db, func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			INSERT INTO selections (item, label, selected_at) VALUES (?, ?, ?)
		`, s.Item, s.Label, s.SelectedAt.UnixMilli())
		if err != nil {
			return err
		}

		// Keep only the most recent entries
		_, err = tx.Exec(`
			DELETE FROM selections WHERE id NOT IN (
				SELECT id FROM selections ORDER BY selected_at DESC, id DESC LIMIT ?
			)
		`, maxSelections)
		return err
	})
}

func recentSelections(db *sql.DB, limit int) ([]Selection, error) {
	rows, err := db.Query(`
		SELECT item, label, selected_at
		FROM selections
		ORDER BY selected_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []Selection
	for rows.Next() {
		var s Selection
		var label sql.NullString
		var selectedAt int64
		if err := rows.Scan(&s.Item, &label, &selectedAt); err != nil {
			return nil, err
		}
		s.Label = dbutil.NullStringValue(label)
		s.SelectedAt = time.UnixMilli(selectedAt)
		result = append(result, s)
	}
	return result, rows.Err()
}

func selectionCounts(db *sql.DB) (map[int]int, error) {
	rows, err := db.Query(`SELECT item, COUNT(*) FROM selections GROUP BY item`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[int]int)
	for rows.Next() {
		var item, count int
		if err := rows.Scan(&item, &count); err != nil {
			return nil, err
		}
		counts[item] = count
	}
	return counts, rows.Err()
}
