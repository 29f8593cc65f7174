// Package profilemenu implements the menu opened from the header's profile
// button.
package profilemenu

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/encore/internal/nav"
	"github.com/llehouerou/encore/internal/session"
	"github.com/llehouerou/encore/internal/ui/menu"
	"github.com/llehouerou/encore/internal/ui/popup"
)

const (
	LabelProfile = "Profile"
	LabelLogout  = "Log out"
)

// Model is the profile menu. It holds no session data; the identity is read
// when Profile is chosen.
type Model struct {
	identity session.Identity
	nav      nav.Dispatcher
	logout   func(bool)
	close    func()
	menu     menu.Model
	width    int
	height   int
}

var _ popup.Popup = (*Model)(nil)

// New creates a profile menu. logout receives false for a normal sign out;
// close is called after navigating to the profile.
func New(identity session.Identity, d nav.Dispatcher, logout func(bool), closeFn func()) *Model {
	return &Model{
		identity: identity,
		nav:      d,
		logout:   logout,
		close:    closeFn,
		menu:     menu.New(menu.Item{Label: LabelProfile}, menu.Item{Label: LabelLogout}),
	}
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles keys and left presses in box-local coordinates.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		res, idx := m.menu.HandleKey(msg)
		m.handle(res, idx)
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			res, idx := m.menu.HandleClick(msg.X, msg.Y)
			m.handle(res, idx)
		}
	}
	return m, nil
}

func (m *Model) handle(res menu.Result, idx int) {
	switch res {
	case menu.Chosen:
		switch m.menu.Items()[idx].Label {
		case LabelProfile:
			m.Profile()
		case LabelLogout:
			m.Logout()
		}
	case menu.Cancelled:
		if m.close != nil {
			m.close()
		}
	}
}

// Profile navigates to /{role}/{username} and closes the menu.
func (m *Model) Profile() {
	m.nav.Navigate(nav.ProfilePath(m.identity.Role(), m.identity.Username()))
	if m.close != nil {
		m.close()
	}
}

// Logout signs out. The menu is not closed; the logout handler decides
// what happens to the view.
func (m *Model) Logout() {
	m.logout(false)
}

// View renders the menu with its border.
func (m *Model) View() string {
	return m.menu.Box()
}
