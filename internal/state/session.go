package state

import (
	"database/sql"
	"errors"
	"time"
)

// Session is the stored signed-in identity.
type Session struct {
	Role       string
	Username   string
	SignedInAt time.Time
}

// GetSession returns the stored session, or nil when signed out.
func (m *Manager) GetSession() (*Session, error) {
	var s Session
	var signedInAt int64

	err := m.db.QueryRow(`
		SELECT role, username, signed_in_at FROM session WHERE id = 1
	`).Scan(&s.Role, &s.Username, &signedInAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // nil session means signed out, not an error
	}
	if err != nil {
		return nil, err
	}

	s.SignedInAt = time.Unix(signedInAt, 0)
	return &s, nil
}

// SaveSession stores the signed-in identity, replacing any previous one.
func (m *Manager) SaveSession(role, username string) error {
	_, err := m.db.Exec(`
		INSERT INTO session (id, role, username, signed_in_at)
		VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			role = excluded.role,
			username = excluded.username,
			signed_in_at = excluded.signed_in_at
	`, role, username, time.Now().Unix())
	return err
}

// DeleteSession removes the stored identity.
func (m *Manager) DeleteSession() error {
	_, err := m.db.Exec(`DELETE FROM session WHERE id = 1`)
	return err
}
