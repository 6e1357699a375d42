package state

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	_ "modernc.org/sqlite"
)

// setupTestDB creates an in-memory SQLite database with the schema initialized.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	db.SetMaxOpenConns(1) // every :memory: connection is a separate database

	if err := initSchema(db); err != nil {
		db.Close()
		t.Fatalf("failed to init schema: %v", err)
	}

	return db
}

func TestInitSchema_Idempotent(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	if err := initSchema(db); err != nil {
		t.Fatalf("second initSchema failed: %v", err)
	}

	var version int
	if err := db.QueryRow(`SELECT MAX(version) FROM schema_version`).Scan(&version); err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if version != currentSchemaVersion {
		t.Errorf("version = %d, want %d", version, currentSchemaVersion)
	}
}

func TestGetCarousel_Empty(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	state, err := getCarousel(db)
	if err != nil {
		t.Fatalf("getCarousel failed: %v", err)
	}
	if state != nil {
		t.Errorf("expected nil state on empty db, got %+v", state)
	}
}

func TestSaveAndGetCarousel(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	at := time.UnixMilli(1_700_000_000_000)
	want := CarouselState{FocusedItem: 2, ItemsPerPage: 1, AutoScroll: true, UpdatedAt: at}
	if err := saveCarousel(db, want); err != nil {
		t.Fatalf("saveCarousel failed: %v", err)
	}

	got, err := getCarousel(db)
	if err != nil {
		t.Fatalf("getCarousel failed: %v", err)
	}
	if got == nil {
		t.Fatal("expected saved state")
	}
	if got.FocusedItem != 2 || got.ItemsPerPage != 1 || !got.AutoScroll {
		t.Errorf("got %+v, want %+v", got, want)
	}
	if !got.UpdatedAt.Equal(at) {
		t.Errorf("UpdatedAt = %v, want %v", got.UpdatedAt, at)
	}
}

func TestSaveCarousel_Update(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	_ = saveCarousel(db, CarouselState{FocusedItem: 1, ItemsPerPage: 1, AutoScroll: true})
	if err := saveCarousel(db, CarouselState{FocusedItem: 0, ItemsPerPage: 2}); err != nil {
		t.Fatalf("saveCarousel failed: %v", err)
	}

	got, _ := getCarousel(db)
	if got.FocusedItem != 0 || got.ItemsPerPage != 2 || got.AutoScroll {
		t.Errorf("got %+v, want the second save", got)
	}
	if got.UpdatedAt.IsZero() {
		t.Error("UpdatedAt should default to now")
	}

	var rows int
	_ = db.QueryRow(`SELECT COUNT(*) FROM carousel_state`).Scan(&rows)
	if rows != 1 {
		t.Errorf("carousel_state has %d rows, want 1", rows)
	}
}

func TestRecordAndRecentSelections(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	base := time.UnixMilli(1_700_000_000_000)
	for i, label := range []string{"👑", "🙈", "👾"} {
		s := Selection{Item: i, Label: label, SelectedAt: base.Add(time.Duration(i) * time.Minute)}
		if err := recordSelection(db, s); err != nil {
			t.Fatalf("recordSelection failed: %v", err)
		}
	}

	got, err := recentSelections(db, 2)
	if err != nil {
		t.Fatalf("recentSelections failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d selections, want 2", len(got))
	}
	if got[0].Item != 2 || got[0].Label != "👾" {
		t.Errorf("newest = %+v, want item 2", got[0])
	}
	if got[1].Item != 1 {
		t.Errorf("second = %+v, want item 1", got[1])
	}
	if !got[0].SelectedAt.Equal(base.Add(2 * time.Minute)) {
		t.Errorf("SelectedAt = %v", got[0].SelectedAt)
	}
}

func TestRecordSelection_NullLabel(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	_, err := db.Exec(`INSERT INTO selections (item, label, selected_at) VALUES (4, NULL, 1)`)
	if err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	got, err := recentSelections(db, 1)
	if err != nil {
		t.Fatalf("recentSelections failed: %v", err)
	}
	if len(got) != 1 || got[0].Label != "" {
		t.Errorf("got %+v, want one unlabelled selection", got)
	}
}

func TestRecordSelection_PrunesHistory(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	base := time.UnixMilli(1_700_000_000_000)
	for i := range maxSelections + 5 {
		s := Selection{Item: i % 3, SelectedAt: base.Add(time.Duration(i) * time.Second)}
		if err := recordSelection(db, s); err != nil {
			t.Fatalf("recordSelection failed: %v", err)
		}
	}

	var count int
	_ = db.QueryRow(`SELECT COUNT(*) FROM selections`).Scan(&count)
	if count != maxSelections {
		t.Errorf("count = %d, want %d", count, maxSelections)
	}

	var oldest int64
	_ = db.QueryRow(`SELECT MIN(selected_at) FROM selections`).Scan(&oldest)
	if want := base.Add(5 * time.Second).UnixMilli(); oldest != want {
		t.Errorf("oldest = %d, want %d", oldest, want)
	}
}

func TestSelectionCounts(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	for _, item := range []int{0, 2, 2, 1, 2} {
		if err := recordSelection(db, Selection{Item: item}); err != nil {
			t.Fatalf("recordSelection failed: %v", err)
		}
	}

	counts, err := selectionCounts(db)
	if err != nil {
		t.Fatalf("selectionCounts failed: %v", err)
	}
	want := map[int]int{0: 1, 1: 1, 2: 3}
	for item, n := range want {
		if counts[item] != n {
			t.Errorf("counts[%d] = %d, want %d", item, counts[item], n)
		}
	}
}

func TestManager_OpenSaveClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "carousel.db")

	m, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	// Debounced save is flushed by Close
	m.SaveCarousel(CarouselState{FocusedItem: 1, ItemsPerPage: 1})
	m.SaveCarousel(CarouselState{FocusedItem: 2, ItemsPerPage: 1})
	if err := m.RecordSelection(Selection{Item: 2, Label: "👾"}); err != nil {
		t.Fatalf("RecordSelection failed: %v", err)
	}
	if err := m.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	m, err = Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer m.Close()

	got, err := m.GetCarousel()
	if err != nil {
		t.Fatalf("GetCarousel failed: %v", err)
	}
	if got == nil || got.FocusedItem != 2 {
		t.Errorf("GetCarousel() = %+v, want focused item 2", got)
	}

	recent, err := m.RecentSelections(10)
	if err != nil {
		t.Fatalf("RecentSelections failed: %v", err)
	}
	if len(recent) != 1 || recent[0].Label != "👾" {
		t.Errorf("RecentSelections() = %+v", recent)
	}

	counts, err := m.SelectionCounts()
	if err != nil || counts[2] != 1 {
		t.Errorf("SelectionCounts() = %v, %v", counts, err)
	}
}

func TestManager_SaveCarouselDebounced(t *testing.T) {
	db := setupTestDB(t)
	m := &Manager{db: db}
	defer m.Close()

	m.SaveCarousel(CarouselState{FocusedItem: 1, ItemsPerPage: 1})

	got, _ := m.GetCarousel()
	if got != nil {
		t.Errorf("state saved before the debounce elapsed: %+v", got)
	}

	time.Sleep(saveDebounce + 200*time.Millisecond)

	got, _ = m.GetCarousel()
	if got == nil || got.FocusedItem != 1 {
		t.Errorf("GetCarousel() = %+v, want focused item 1", got)
	}
}

func TestMock(t *testing.T) {
	m := NewMock()

	_ = m.RecordSelection(Selection{Item: 0})
	_ = m.RecordSelection(Selection{Item: 1})
	m.SaveCarousel(CarouselState{FocusedItem: 1})

	recent, _ := m.RecentSelections(1)
	if len(recent) != 1 || recent[0].Item != 1 {
		t.Errorf("RecentSelections(1) = %+v", recent)
	}
	got, _ := m.GetCarousel()
	if got.FocusedItem != 1 {
		t.Errorf("GetCarousel() = %+v", got)
	}
	_ = m.Close()
	if !m.Closed() {
		t.Error("Close not recorded")
	}
}
