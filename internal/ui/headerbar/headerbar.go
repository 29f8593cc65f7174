package headerbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/encore/internal/icons"
	"github.com/llehouerou/encore/internal/nav"
	"github.com/llehouerou/encore/internal/ui/render"
	"github.com/llehouerou/encore/internal/ui/styles"
)

// Height is the fixed height of the header bar (single line).
const Height = 1

const brand = "encore"

// Props is what the header shows.
type Props struct {
	Route     nav.Route
	Username  string
	CanGoBack bool
}

// Styles
var (
	crumbKindStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))

	crumbNameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")).
			Bold(true)

	separatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	profileStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)
)

// profileLabel is the text of the profile button.
func profileLabel(username string) string {
	return icons.Profile() + " " + render.Truncate(username, 16)
}

// ProfileButton returns the column span of the profile button, which is
// right-aligned on the header line.
func ProfileButton(width int, username string) (x, w int) {
	w = lipgloss.Width(profileLabel(username))
	return max(width-w, 0), w
}

// HitProfile reports whether the cell (x, y) is on the profile button.
func HitProfile(x, y, width int, username string) bool {
	bx, bw := ProfileButton(width, username)
	return y == 0 && x >= bx && x < bx+bw
}

// crumb describes the current route.
func crumb(r nav.Route, canGoBack bool) string {
	var kind, name string
	switch r.Kind {
	case nav.KindHome:
		name = "Home"
	case nav.KindArtist:
		kind, name = "Artist", icons.FormatArtist(r.ID)
	case nav.KindPlaylist:
		kind, name = "Playlist", icons.FormatPlaylist(r.ID)
	case nav.KindUser:
		kind, name = "User", icons.FormatUser(r.ID)
	default:
		name = r.Path()
	}

	var b strings.Builder
	if canGoBack {
		b.WriteString(crumbKindStyle.Render(icons.Back()))
	}
	if kind != "" {
		b.WriteString(crumbKindStyle.Render(kind + " "))
	}
	b.WriteString(crumbNameStyle.Render(name))
	return b.String()
}

// Render returns the header bar string for the given width.
func Render(p Props, width int) string {
	if width < 20 {
		return ""
	}

	left := styles.T().TitleGradient(brand) +
		separatorStyle.Render(" │ ") +
		crumb(p.Route, p.CanGoBack)

	bx, _ := ProfileButton(width, p.Username)
	if lipgloss.Width(left) >= bx {
		left = render.Truncate(ansi.Strip(left), max(bx-1, 0))
	}
	return render.Row(left, profileStyle.Render(profileLabel(p.Username)), width)
}
