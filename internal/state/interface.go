package state

// Interface defines the state manager contract for dependency injection and testing.
type Interface interface {
	Location() (string, error)
	SaveLocation(path string)
	GetSession() (*Session, error)
	SaveSession(role, username string) error
	DeleteSession() error
	Close() error
}

var (
	_ Interface = (*Manager)(nil)
	_ Interface = (*Mock)(nil)
)
