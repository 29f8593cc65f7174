package state

import "time"

// Mock is an in-memory test double for Manager.
type Mock struct {
	location string
	session  *Session
	closed   bool
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) Location() (string, error) { return m.location, nil }

func (m *Mock) SaveLocation(path string) { m.location = path }

func (m *Mock) GetSession() (*Session, error) {
	if m.session == nil {
		return nil, nil //nolint:nilnil // signed out
	}
	s := *m.session
	return &s, nil
}

func (m *Mock) SaveSession(role, username string) error {
	m.session = &Session{Role: role, Username: username, SignedInAt: time.Now()}
	return nil
}

func (m *Mock) DeleteSession() error {
	m.session = nil
	return nil
}

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

// Closed reports whether Close was called.
func (m *Mock) Closed() bool { return m.closed }
