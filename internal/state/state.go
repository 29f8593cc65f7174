// Package state persists client state across sessions in SQLite.
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
	appName      = "encore"
	dbFileName   = "encore.db"
	saveDebounce = 500 * time.Millisecond
)

// Manager owns the state database.
type Manager struct {
	db        *sql.DB
	saveMu    sync.Mutex
	saveTimer *time.Timer
	pending   *string
}

// Open opens the state database in the XDG data directory.
func Open() (*Manager, error) {
	dbPath, err := xdg.DataFile(filepath.Join(appName, dbFileName))
	if err != nil {
		return nil, err
	}
	return OpenPath(dbPath)
}

// OpenPath opens (creating if needed) the state database at dbPath.
// ":memory:" opens a private in-memory database.
func OpenPath(dbPath string) (*Manager, error) {
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}
	if dbPath == ":memory:" {
		// Each pooled connection would get its own empty database.
		db.SetMaxOpenConns(1)
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Manager{db: db}, nil
}

// Close flushes any pending location save and closes the database.
func (m *Manager) Close() error {
	m.saveMu.Lock()
	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}
	pending := m.pending
	m.pending = nil
	m.saveMu.Unlock()

	if pending != nil {
		_ = saveLocation(m.db, *pending)
	}

	return m.db.Close()
}

// DB exposes the underlying database.
func (m *Manager) DB() *sql.DB {
	return m.db
}

// Location returns the last saved location, or "" if none.
func (m *Manager) Location() (string, error) {
	return getLocation(m.db)
}

// SaveLocation records path as the current location. Writes are debounced
// so rapid navigation produces a single write.
func (m *Manager) SaveLocation(path string) {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()

	m.pending = &path

	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}

	m.saveTimer = time.AfterFunc(saveDebounce, func() {
		m.saveMu.Lock()
		pending := m.pending
		m.pending = nil
		m.saveMu.Unlock()

		if pending != nil {
			_ = saveLocation(m.db, *pending)
		}
	})
}
