package state

import (
	"database/sql"
	"errors"
)

const currentSchemaVersion = 1

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS navigation_state (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			current_path TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS session (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			role TEXT NOT NULL,
			username TEXT NOT NULL,
			signed_in_at INTEGER NOT NULL
		);
	`)
	if err != nil {
		return err
	}

	var version int
	err = db.QueryRow(`SELECT version FROM schema_version LIMIT 1`).Scan(&version)
	if errors.Is(err, sql.ErrNoRows) {
		_, err = db.Exec(`INSERT INTO schema_version (version) VALUES (?)`, currentSchemaVersion)
	}
	return err
}

func getLocation(db *sql.DB) (string, error) {
	var path string
	err := db.QueryRow(`SELECT current_path FROM navigation_state WHERE id = 1`).Scan(&path)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	return path, err
}

func saveLocation(db *sql.DB, path string) error {
	_, err := db.Exec(`
		INSERT INTO navigation_state (id, current_path)
		VALUES (1, ?)
		ON CONFLICT(id) DO UPDATE SET current_path = excluded.current_path
	`, path)
	return err
}
