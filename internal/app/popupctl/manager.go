// internal/app/popupctl/manager.go
package popupctl

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/encore/internal/ui/headerbar"
	"github.com/llehouerou/encore/internal/ui/popup"
	"github.com/llehouerou/encore/internal/ui/render"
)

// Manager manages the app-level popups: the profile menu under the header,
// the key help dialog and the error dialog.
type Manager struct {
	popups   map[Type]popup.Popup
	help     []string
	errorMsg string
	width    int
	height   int
}

// New creates an empty Manager.
func New() *Manager {
	return &Manager{popups: make(map[Type]popup.Popup)}
}

// SetSize updates the dimensions for popup rendering.
func (p *Manager) SetSize(width, height int) {
	p.width = width
	p.height = height
	for _, pop := range p.popups {
		pop.SetSize(width, height)
	}
}

// IsVisible returns true if the specified popup type is visible.
func (p *Manager) IsVisible(t Type) bool {
	switch t {
	case None:
		return false
	case Error:
		return p.errorMsg != ""
	case Help:
		return p.help != nil
	case Profile:
		return p.popups[t] != nil
	}
	return false
}

// ActivePopup returns which popup is currently active (highest priority).
func (p *Manager) ActivePopup() Type {
	for _, t := range Priority {
		if p.IsVisible(t) {
			return t
		}
	}
	return None
}

// Show displays a popup of the given type.
func (p *Manager) Show(t Type, pop popup.Popup) tea.Cmd {
	pop.SetSize(p.width, p.height)
	p.popups[t] = pop
	return pop.Init()
}

// Hide hides the specified popup type.
func (p *Manager) Hide(t Type) {
	switch t {
	case None:
		// Nothing to hide
	case Error:
		p.errorMsg = ""
	case Help:
		p.help = nil
	case Profile:
		delete(p.popups, t)
	}
}

// Get retrieves a popup for type assertion when needed.
func (p *Manager) Get(t Type) popup.Popup {
	return p.popups[t]
}

// ShowProfile displays the profile menu under the header's profile button.
func (p *Manager) ShowProfile(menu popup.Popup) tea.Cmd {
	return p.Show(Profile, menu)
}

// ShowHelp displays key bindings, one "key  description" pair per line.
func (p *Manager) ShowHelp(lines []string) {
	p.help = lines
	if p.help == nil {
		p.help = []string{}
	}
}

// ShowError displays an error message popup.
func (p *Manager) ShowError(msg string) {
	p.errorMsg = msg
}

// ErrorMsg returns the current error message.
func (p *Manager) ErrorMsg() string {
	return p.errorMsg
}

// profileRect returns the screen rectangle of the profile menu: right
// aligned, directly below the header bar.
func (p *Manager) profileRect() (x, y, w, h int) {
	w, h = popup.BoxSize(p.popups[Profile].View())
	x, y = popup.Place(p.width-w, headerbar.Height, w, h, p.width, p.height)
	return x, y, w, h
}

// --- Input Handling ---

// HandleKey routes key events to the active popup.
// Returns (handled, cmd) where handled is true if a popup consumed the key.
func (p *Manager) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch p.ActivePopup() {
	case None:
		return false, nil
	case Error:
		// Dismiss on any key
		p.errorMsg = ""
		return true, nil
	case Help:
		p.help = nil
		return true, nil
	case Profile:
		updated, cmd := p.popups[Profile].Update(msg)
		if p.popups[Profile] != nil {
			p.popups[Profile] = updated
		}
		return true, cmd
	}
	return false, nil
}

// HandleMouse routes presses to the active popup. A press outside the
// profile menu closes it and is consumed.
func (p *Manager) HandleMouse(msg tea.MouseMsg) (bool, tea.Cmd) {
	if msg.Action != tea.MouseActionPress {
		return p.ActivePopup() != None, nil
	}
	switch p.ActivePopup() {
	case None:
		return false, nil
	case Error:
		p.errorMsg = ""
		return true, nil
	case Help:
		p.help = nil
		return true, nil
	case Profile:
		x, y, w, h := p.profileRect()
		if msg.X < x || msg.X >= x+w || msg.Y < y || msg.Y >= y+h {
			p.Hide(Profile)
			return true, nil
		}
		local := msg
		local.X, local.Y = msg.X-x, msg.Y-y
		updated, cmd := p.popups[Profile].Update(local)
		if p.popups[Profile] != nil {
			p.popups[Profile] = updated
		}
		return true, cmd
	}
	return false, nil
}

// --- Rendering ---

// RenderOverlay renders active popup(s) on top of the base view.
func (p *Manager) RenderOverlay(base string) string {
	for _, t := range RenderOrder {
		if !p.IsVisible(t) {
			continue
		}
		switch t {
		case Profile:
			x, y, _, _ := p.profileRect()
			base = popup.ComposeAt(base, p.popups[Profile].View(), x, y, p.width)
		case Help:
			base = popup.Overlay(base, popup.Dialog{
				Title:   "Keys",
				Content: strings.Join(p.help, "\n"),
				Footer:  "Press any key to close",
			}, p.width, p.height)
		case Error:
			base = popup.Overlay(base, popup.Dialog{
				Title:   "Error",
				Content: render.Sanitize(p.errorMsg),
				Footer:  "Press any key to dismiss",
			}, p.width, p.height)
		}
	}
	return base
}
