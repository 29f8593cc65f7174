package nav

import "log/slog"

// Saver persists the current location so it can be restored next session.
type Saver interface {
	SaveLocation(path string)
}

// Router is the application's Dispatcher. It keeps the current location and
// a back stack.
type Router struct {
	current string
	history []string
	saver   Saver
	logger  *slog.Logger
}

// NewRouter creates a router at the home page. saver may be nil.
func NewRouter(saver Saver, logger *slog.Logger) *Router {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Router{
		current: "/",
		history: make([]string, 0, 16),
		saver:   saver,
		logger:  logger,
	}
}

var _ Dispatcher = (*Router)(nil)

// Navigate moves to path, pushing the current location on the back stack.
// Navigating to the current location does nothing.
func (r *Router) Navigate(path string) {
	if path == r.current {
		return
	}
	r.logger.Debug("navigate", "from", r.current, "to", path)
	r.history = append(r.history, r.current)
	r.current = path
	r.save()
}

// Back returns to the previous location. Returns false at the start of
// history.
func (r *Router) Back() bool {
	if len(r.history) == 0 {
		return false
	}
	r.current = r.history[len(r.history)-1]
	r.history = r.history[:len(r.history)-1]
	r.logger.Debug("navigate back", "to", r.current)
	r.save()
	return true
}

// Restore jumps to path without recording history.
func (r *Router) Restore(path string) {
	if path == "" {
		return
	}
	r.current = path
}

// Current returns the current path.
func (r *Router) Current() string {
	return r.current
}

// Route returns the parsed current path.
func (r *Router) Route() Route {
	return Parse(r.current)
}

// CanGoBack reports whether Back would move.
func (r *Router) CanGoBack() bool {
	return len(r.history) > 0
}

func (r *Router) save() {
	if r.saver != nil {
		r.saver.SaveLocation(r.current)
	}
}
