// Package cards renders artist and playlist cards.
//
// A card has a thumbnail, a title, a subtitle and one or more action
// targets. Activating a target dispatches a navigation path; the card keeps
// no other state.
package cards

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/encore/internal/icons"
	"github.com/llehouerou/encore/internal/nav"
	"github.com/llehouerou/encore/internal/ui"
	"github.com/llehouerou/encore/internal/ui/render"
	"github.com/llehouerou/encore/internal/ui/styles"
)

// ArtistLabel is the label of an artist card's action.
const ArtistLabel = "Artist"

const (
	innerWidth  = ui.CardWidth - 2
	innerHeight = ui.CardHeight - 2

	thumbHeight = 5
	titleRow    = thumbHeight
	subtitleRow = thumbHeight + 1
	actionRow   = innerHeight - 1
)

// ArtistCard holds what an artist card displays.
type ArtistCard struct {
	Name  string
	Photo string
}

// PlaylistCard holds what a playlist card displays.
type PlaylistCard struct {
	Name        string
	Photo       string
	Owner       string
	Description string
	SongCount   int
	CreatedAt   time.Time
}

// target is a clickable region inside the card border.
type target struct {
	label string
	shown string
	path  string
	row   int
	col   int
	width int
}

func (t target) contains(col, row int) bool {
	return row == t.row && col >= t.col && col < t.col+t.width
}

// Card is a fixed-size entity card.
type Card struct {
	ui.Base
	title    string
	subtitle string
	photo    string
	targets  []target
	focus    int
	nav      nav.Dispatcher
}

// NewArtist creates an artist card whose action opens /artist/{Name}.
func NewArtist(a ArtistCard, d nav.Dispatcher) *Card {
	c := &Card{
		title:    icons.FormatArtist(a.Name),
		subtitle: "Artist",
		photo:    a.Photo,
		nav:      d,
	}
	c.targets = []target{
		newTarget(ArtistLabel, nav.ArtistPath(a.Name), actionRow, ArtistLabel),
	}
	c.SetSize(ui.CardWidth, ui.CardHeight)
	return c
}

// NewPlaylist creates a playlist card. The title opens /playlist/{Name};
// the owner action opens /user/{Owner}.
func NewPlaylist(p PlaylistCard, d nav.Dispatcher) *Card {
	title := icons.FormatPlaylist(p.Name)
	c := &Card{
		title:    title,
		subtitle: playlistSubtitle(p),
		photo:    p.Photo,
		nav:      d,
	}
	c.targets = []target{
		newTarget(p.Name, nav.PlaylistPath(p.Name), titleRow, title),
		newTarget(p.Owner, nav.UserPath(p.Owner), actionRow, icons.FormatUser(p.Owner)),
	}
	c.SetSize(ui.CardWidth, ui.CardHeight)
	return c
}

func newTarget(label, path string, row int, shown string) target {
	shown = render.Truncate(shown, innerWidth)
	w := lipgloss.Width(shown)
	return target{label: label, shown: shown, path: path, row: row, width: max(w, 1)}
}

func playlistSubtitle(p PlaylistCard) string {
	if p.Description != "" {
		return p.Description
	}
	s := fmt.Sprintf("%d songs", p.SongCount)
	if p.SongCount == 1 {
		s = "1 song"
	}
	if !p.CreatedAt.IsZero() {
		s += " · " + humanize.Time(p.CreatedAt)
	}
	return s
}

// Photo returns the resolved thumbnail reference.
func (c *Card) Photo() string {
	return Thumbnail(c.photo)
}

// Actions returns the action labels in tab order.
func (c *Card) Actions() []string {
	labels := make([]string, len(c.targets))
	for i, t := range c.targets {
		labels[i] = t.label
	}
	return labels
}

// Focused returns the index of the focused action.
func (c *Card) Focused() int {
	return c.focus
}

// Activate dispatches the path of action i.
func (c *Card) Activate(i int) {
	if i < 0 || i >= len(c.targets) || c.nav == nil {
		return
	}
	c.nav.Navigate(c.targets[i].path)
}

// HandleMouse activates the target under a left press. Coordinates are
// absolute; the card converts them with its origin.
func (c *Card) HandleMouse(msg tea.MouseMsg) bool {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return false
	}
	lx, ly := c.Local(msg.X, msg.Y)
	col, row := lx-1, ly-1
	for i, t := range c.targets {
		if t.contains(col, row) {
			c.focus = i
			c.Activate(i)
			return true
		}
	}
	return false
}

// HandleKey handles tab/shift+tab focus cycling and enter activation.
func (c *Card) HandleKey(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "tab":
		c.focus = (c.focus + 1) % len(c.targets)
	case "shift+tab":
		c.focus = (c.focus - 1 + len(c.targets)) % len(c.targets)
	case "enter":
		c.Activate(c.focus)
	default:
		return false
	}
	return true
}

// View renders the card with its border.
func (c *Card) View() string {
	t := styles.T()
	s := t.S()

	lines := thumbnailLines(c.photo, innerWidth, thumbHeight)
	lines = append(lines,
		render.Fit(c.title, innerWidth),
		s.Muted.Render(render.Fit(c.subtitle, innerWidth)),
	)
	for len(lines) < actionRow {
		lines = append(lines, strings.Repeat(" ", innerWidth))
	}
	lines = append(lines, strings.Repeat(" ", innerWidth))

	for i, tg := range c.targets {
		st := s.Button
		if c.IsFocused() && i == c.focus {
			st = s.ButtonFocus
		}
		lines[tg.row] = st.Render(tg.shown) + strings.Repeat(" ", innerWidth-lipgloss.Width(tg.shown))
	}

	border := t.Border
	if c.IsFocused() {
		border = t.BorderFocus
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Render(strings.Join(lines, "\n"))
}
