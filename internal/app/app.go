// internal/app/app.go
package app

import (
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/encore/internal/app/popupctl"
	"github.com/llehouerou/encore/internal/catalog"
	"github.com/llehouerou/encore/internal/config"
	"github.com/llehouerou/encore/internal/nav"
	"github.com/llehouerou/encore/internal/session"
	"github.com/llehouerou/encore/internal/state"
	"github.com/llehouerou/encore/internal/ui/anchor"
)

// Model is the root application model containing all state.
type Model struct {
	Config   *config.Config
	Catalog  *catalog.Catalog
	Router   *nav.Router
	Session  *session.Store
	StateMgr state.Interface
	Popups   *popupctl.Manager
	Logger   *slog.Logger

	Page   Page
	shown  string // path Page was built for
	Status string

	Now    func() time.Time
	Width  int
	Height int
}

// Deps groups what New needs.
type Deps struct {
	Config   *config.Config
	Catalog  *catalog.Catalog
	StateMgr state.Interface
	Session  *session.Store
	Logger   *slog.Logger
}

// New creates the application model and restores the last location.
func New(d Deps) Model {
	logger := d.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	cfg := d.Config
	if cfg == nil {
		cfg = &config.Config{}
	}

	m := Model{
		Config:   cfg,
		Catalog:  d.Catalog,
		Router:   nav.NewRouter(d.StateMgr, logger),
		Session:  d.Session,
		StateMgr: d.StateMgr,
		Popups:   popupctl.New(),
		Logger:   logger,
		Now:      time.Now,
	}

	if loc, err := d.StateMgr.Location(); err != nil {
		logger.Warn("restore location", "err", err)
	} else if loc != "" {
		m.Router.Restore(loc)
	}

	m.syncPage()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// policy returns the row popup policy from config.
func (m Model) policy() anchor.Policy {
	return anchor.Policy{ExclusiveAcrossRows: m.Config.Popups.Exclusive}
}

// syncPage rebuilds the page when the router moved.
func (m *Model) syncPage() {
	path := m.Router.Current()
	if m.Page != nil && path == m.shown {
		return
	}
	m.shown = path
	m.Page = m.buildPage(m.Router.Route())
	m.Logger.Debug("page", "path", path)
	m.layout()
}

// layout sizes the page to the area between the header and the status line.
func (m *Model) layout() {
	m.Popups.SetSize(m.Width, m.Height)
	if m.Page != nil {
		m.Page.Resize(m.Width, max(m.Height-headerHeight-statusHeight, 0), m.Height)
	}
}
