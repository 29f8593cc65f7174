// Package session exposes the signed-in identity to UI actions.
//
// Components read the identity through Identity at the moment an action
// runs; nothing here is cached by callers.
package session

import (
	"log/slog"

	"github.com/llehouerou/encore/internal/errmsg"
	"github.com/llehouerou/encore/internal/state"
)

// Known roles. Roles are also route segments.
const (
	RoleUser   = "user"
	RoleArtist = "artist"
)

// Identity exposes the current session's role and username.
type Identity interface {
	Role() string
	Username() string
}

// Static is a fixed identity.
type Static struct {
	role     string
	username string
}

// NewStatic returns an identity that always reports role and username.
func NewStatic(role, username string) Static {
	return Static{role: role, username: username}
}

func (s Static) Role() string     { return s.role }
func (s Static) Username() string { return s.username }

// Guest is the identity reported while nobody is signed in.
var Guest = NewStatic(RoleUser, "guest")

// Backend stores the session. *state.Manager implements it.
type Backend interface {
	GetSession() (*state.Session, error)
	SaveSession(role, username string) error
	DeleteSession() error
}

// Store is an Identity read through to the state database on every call.
type Store struct {
	backend Backend
	logger  *slog.Logger
}

var _ Identity = (*Store)(nil)

// NewStore creates a store over backend.
func NewStore(backend Backend, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{backend: backend, logger: logger}
}

// current returns the stored session, Guest's values when signed out, or
// ok=false when the backend failed.
func (s *Store) current() (state.Session, bool) {
	sess, err := s.backend.GetSession()
	if err != nil {
		s.logger.Error(errmsg.Format(errmsg.OpSessionRead, err))
		return state.Session{}, false
	}
	if sess == nil {
		return state.Session{Role: Guest.Role(), Username: Guest.Username()}, true
	}
	return *sess, true
}

// Role returns the signed-in role. It is empty if the store cannot be read.
func (s *Store) Role() string {
	sess, _ := s.current()
	return sess.Role
}

// Username returns the signed-in username. It is empty if the store cannot
// be read.
func (s *Store) Username() string {
	sess, _ := s.current()
	return sess.Username
}

// SignedIn reports whether a session is stored.
func (s *Store) SignedIn() bool {
	sess, err := s.backend.GetSession()
	return err == nil && sess != nil
}

// SignIn stores a session for username with role.
func (s *Store) SignIn(role, username string) error {
	if err := s.backend.SaveSession(role, username); err != nil {
		return err
	}
	s.logger.Info("signed in", "role", role, "username", username)
	return nil
}

// SignOut removes the stored session.
func (s *Store) SignOut() error {
	if err := s.backend.DeleteSession(); err != nil {
		return err
	}
	s.logger.Info("signed out")
	return nil
}
