// internal/app/view.go
package app

import (
	"github.com/llehouerou/encore/internal/ui/headerbar"
	"github.com/llehouerou/encore/internal/ui/render"
	"github.com/llehouerou/encore/internal/ui/styles"
)

// View renders the application UI.
func (m Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return ""
	}

	header := headerbar.Render(headerbar.Props{
		Route:     m.Router.Route(),
		Username:  m.Session.Username(),
		CanGoBack: m.Router.CanGoBack(),
	}, m.Width)

	screen := header + "\n" + m.Page.View() + "\n" + m.statusLine()
	screen = m.Page.Overlay(screen)
	return m.Popups.RenderOverlay(screen)
}

func (m Model) statusLine() string {
	s := styles.T().S()
	right := "? keys"
	status := render.Truncate(m.Status, max(m.Width-len(right)-1, 0))
	return render.Row(s.Muted.Render(status), s.Subtle.Render(right), m.Width)
}
