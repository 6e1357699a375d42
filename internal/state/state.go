// Package state persists the demo's carousel position and selection history
// in SQLite.
package state

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite" // SQLite driver
)

const (
	appName      = "carousel"
	dbFileName   = "carousel.db"
	saveDebounce = 500 * time.Millisecond
)

type Manager struct {
	db        *sql.DB
	saveMu    sync.Mutex
	saveTimer *time.Timer
	pending   *CarouselState
}

// Open opens the database at path, or at the XDG data location when path is
// empty.
func Open(path string) (*Manager, error) {
	if path == "" {
		var err error
		path, err = getDBPath()
		if err != nil {
			return nil, err
		}
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Manager{db: db}, nil
}

func (m *Manager) Close() error {
	m.saveMu.Lock()
	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}
	pending := m.pending
	m.pending = nil
	m.saveMu.Unlock()

	// Flush pending state
	if pending != nil {
		_ = saveCarousel(m.db, *pending)
	}

	return m.db.Close()
}

func (m *Manager) GetCarousel() (*CarouselState, error) {
	return getCarousel(m.db)
}

// SaveCarousel stores the carousel position. Saves are debounced because the
// position changes on every auto-advance tick.
func (m *Manager) SaveCarousel(state CarouselState) {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()

	m.pending = &state

	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}

	m.saveTimer = time.AfterFunc(saveDebounce, func() {
		m.saveMu.Lock()
		pending := m.pending
		m.pending = nil
		m.saveMu.Unlock()

		if pending != nil {
			_ = saveCarousel(m.db, *pending)
		}
	})
}

func (m *Manager) RecordSelection(s Selection) error {
	return recordSelection(m.db, s)
}

func (m *Manager) RecentSelections(limit int) ([]Selection, error) {
	return recentSelections(m.db, limit)
}

func (m *Manager) SelectionCounts() (map[int]int, error) {
	return selectionCounts(m.db)
}

func getDBPath() (string, error) {
	return xdg.DataFile(filepath.Join(appName, dbFileName))
}
