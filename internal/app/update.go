// internal/app/update.go
package app

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/encore/internal/app/popupctl"
	"github.com/llehouerou/encore/internal/errmsg"
	"github.com/llehouerou/encore/internal/ui/action"
	"github.com/llehouerou/encore/internal/ui/headerbar"
	"github.com/llehouerou/encore/internal/ui/profilemenu"
	"github.com/llehouerou/encore/internal/ui/songlist"
	"github.com/llehouerou/encore/internal/ui/songmenu"
)

// Update handles messages and returns the updated model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
		m.layout()
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		cmd = m.handleKey(msg)
	case tea.MouseMsg:
		cmd = m.handleMouse(msg)
	case action.Msg:
		m.handleAction(msg)
	case songmenu.ErrorMsg:
		m.Logger.Error("song menu", "op", string(msg.Op), "song", msg.Context, "err", msg.Err)
		m.Popups.ShowError(msg.Text())
	default:
		cmd = m.Page.Update(msg)
	}
	m.syncPage()
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if handled, cmd := m.Popups.HandleKey(msg); handled {
		return cmd
	}
	if m.Page.Capturing() {
		return m.Page.Update(msg)
	}

	switch {
	case key.Matches(msg, keys.Quit):
		return tea.Quit
	case key.Matches(msg, keys.Back):
		m.Router.Back()
		return nil
	case key.Matches(msg, keys.Home):
		m.Router.Navigate("/")
		return nil
	case key.Matches(msg, keys.Help):
		m.Popups.ShowHelp(append(keys.help(), m.Page.Help()...))
		return nil
	case key.Matches(msg, keys.Profile):
		return m.openProfileMenu()
	}
	return m.Page.Update(msg)
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if handled, cmd := m.Popups.HandleMouse(msg); handled {
		return cmd
	}
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft &&
		headerbar.HitProfile(msg.X, msg.Y, m.Width, m.Session.Username()) {
		return m.openProfileMenu()
	}
	return m.Page.Update(msg)
}

func (m *Model) handleAction(msg action.Msg) {
	m.Logger.Debug("action", "source", msg.Source, "type", msg.Action.ActionType())
	if a, ok := msg.Action.(songlist.Activated); ok {
		m.Status = "Selected " + a.Name
	}
}

// openProfileMenu shows the profile menu below the header. The callbacks
// only touch pointer fields so they stay valid after Model is copied.
func (m *Model) openProfileMenu() tea.Cmd {
	popups, router, store, logger := m.Popups, m.Router, m.Session, m.Logger
	closeMenu := func() { popups.Hide(popupctl.Profile) }
	logout := func(bool) {
		closeMenu()
		if err := store.SignOut(); err != nil {
			logger.Error("sign out", "err", err)
			popups.ShowError(errmsg.Format(errmsg.OpSessionLogout, err))
			return
		}
		logger.Info("signed out")
		router.Navigate("/")
	}
	return popups.ShowProfile(profilemenu.New(store, router, logout, closeMenu))
}
