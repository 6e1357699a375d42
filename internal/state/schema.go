package state

import (
	"database/sql"
)

const currentSchemaVersion = 1

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS carousel_state (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			focused_item INTEGER NOT NULL DEFAULT 0,
			items_per_page INTEGER NOT NULL DEFAULT 1,
			auto_scroll INTEGER NOT NULL DEFAULT 1,
			updated_at INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS selections (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			item INTEGER NOT NULL,
			label TEXT,
			selected_at INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_selections_selected_at ON selections(selected_at DESC);
	`)
	if err != nil {
		return err
	}

	// Set initial version if not exists
	_, err = db.Exec(`
		INSERT OR IGNORE INTO schema_version (version) VALUES (?)
	`, currentSchemaVersion)
	return err
}
