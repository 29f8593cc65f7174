// internal/app/pages.go
package app

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/encore/internal/catalog"
	"github.com/llehouerou/encore/internal/errmsg"
	"github.com/llehouerou/encore/internal/icons"
	"github.com/llehouerou/encore/internal/nav"
	"github.com/llehouerou/encore/internal/ui/cards"
	"github.com/llehouerou/encore/internal/ui/headerbar"
	"github.com/llehouerou/encore/internal/ui/render"
	"github.com/llehouerou/encore/internal/ui/songlist"
	"github.com/llehouerou/encore/internal/ui/styles"
)

const (
	headerHeight = headerbar.Height
	statusHeight = 1
)

// Page is the content between the header bar and the status line. Pages
// are drawn at (0, headerHeight) and receive absolute mouse coordinates.
type Page interface {
	// Resize sets the page area and the full screen height.
	Resize(width, height, screenHeight int)
	Update(msg tea.Msg) tea.Cmd
	View() string
	// Overlay draws page-owned popups over the full screen.
	Overlay(screen string) string
	// Capturing reports whether the page wants every key (a menu is open).
	Capturing() bool
	Help() []string
}

func (m *Model) buildPage(r nav.Route) Page {
	switch r.Kind {
	case nav.KindHome:
		return newGridPage("Browse", "", homeCards(m.Catalog, m.Router))
	case nav.KindPlaylist:
		return m.newPlaylistPage(r.ID)
	case nav.KindArtist:
		return m.newArtistPage(r.ID)
	case nav.KindUser:
		return m.newUserPage(r.ID)
	case nav.KindUnknown:
	}
	return &messagePage{title: "Not found", text: "Nothing lives at " + r.Path()}
}

func (m *Model) songConfig(playlist, owner string, refresh func()) songlist.Config {
	return songlist.Config{
		Playlist:    playlist,
		Owner:       owner,
		Identity:    m.Session,
		Service:     m.Catalog,
		Refresh:     refresh,
		Policy:      m.policy(),
		DoubleClick: m.Config.DoubleClick(),
		Now:         m.Now,
		Logger:      m.Logger,
	}
}

// fitLines pads or cuts s to exactly height lines.
func fitLines(s string, height int) string {
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func playlistCard(p catalog.Playlist) cards.PlaylistCard {
	return cards.PlaylistCard{
		Name:        p.Name,
		Photo:       p.Photo,
		Owner:       p.Owner,
		Description: p.Description,
		SongCount:   len(p.Songs),
		CreatedAt:   p.CreatedAt,
	}
}

func homeCards(c *catalog.Catalog, d nav.Dispatcher) []*cards.Card {
	var out []*cards.Card
	for _, a := range c.Artists() {
		out = append(out, cards.NewArtist(cards.ArtistCard{Name: a.Name, Photo: a.Photo}, d))
	}
	for _, p := range c.Playlists() {
		out = append(out, cards.NewPlaylist(playlistCard(p), d))
	}
	return out
}

// --- Grid pages (home, user) ---

const gridHeader = 2 // title + blank line

type gridPage struct {
	title    string
	subtitle string
	grid     *cards.Grid
	width    int
	height   int
}

func newGridPage(title, subtitle string, cs []*cards.Card) *gridPage {
	g := cards.NewGrid(cs...)
	g.SetFocused(true)
	return &gridPage{title: title, subtitle: subtitle, grid: g}
}

func (p *gridPage) Resize(width, height, _ int) {
	p.width, p.height = width, height
	p.grid.SetOrigin(0, headerHeight+gridHeader)
	p.grid.SetSize(width, max(height-gridHeader, 0))
}

func (p *gridPage) Update(msg tea.Msg) tea.Cmd {
	p.grid.Update(msg)
	return nil
}

func (p *gridPage) View() string {
	s := styles.T().S()
	head := s.Title.Render(p.title)
	if p.subtitle != "" {
		head += "  " + s.Muted.Render(p.subtitle)
	}
	body := p.grid.View()
	if len(p.grid.Cards()) == 0 {
		body = s.Muted.Render("Nothing here yet.")
	}
	return fitLines(head+"\n\n"+body, p.height)
}

func (p *gridPage) Overlay(screen string) string { return screen }
func (p *gridPage) Capturing() bool              { return false }

func (p *gridPage) Help() []string {
	return []string{
		"←↓↑→ hjkl  move between cards",
		"tab        next action on card",
		"enter      open focused action",
	}
}

func (m *Model) newUserPage(user string) Page {
	var cs []*cards.Card
	for _, p := range m.Catalog.Playlists() {
		if p.Owner == user {
			cs = append(cs, cards.NewPlaylist(playlistCard(p), m.Router))
		}
	}
	return newGridPage(icons.FormatUser(user), humanize.Comma(int64(len(cs)))+" playlists", cs)
}

// --- Song pages (playlist, artist) ---

const songHeader = 4 // title, info, description, rule

type songPage struct {
	title  string
	info   string
	desc   string
	list   *songlist.Model
	load   func(p *songPage)
	width  int
	height int
}

func (p *songPage) Resize(width, height, screenHeight int) {
	p.width, p.height = width, height
	p.list.SetOrigin(0, headerHeight+songHeader)
	p.list.SetSize(width, max(height-songHeader, 0))
	p.list.SetScreen(width, screenHeight)
}

func (p *songPage) refresh() {
	p.load(p)
}

func (p *songPage) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	p.list, cmd = p.list.Update(msg)
	return cmd
}

func (p *songPage) View() string {
	s := styles.T().S()
	head := []string{
		styles.T().TitleGradient(render.Truncate(p.title, p.width)),
		s.Muted.Render(render.Truncate(p.info, p.width)),
		s.Subtle.Render(render.Truncate(p.desc, p.width)),
		s.Subtle.Render(render.Separator(p.width)),
	}
	return fitLines(strings.Join(head, "\n")+"\n"+p.list.View(), p.height)
}

func (p *songPage) Overlay(screen string) string { return p.list.Overlay(screen) }
func (p *songPage) Capturing() bool              { return p.list.HasOpenMenu() }

func (p *songPage) Help() []string {
	return []string{
		"j/k g/G     move",
		"enter       select song",
		"double-click select song",
		"right-click song actions",
		"m           song actions",
	}
}

func songItems(songs []catalog.Song) []songlist.Item {
	items := make([]songlist.Item, len(songs))
	for i, s := range songs {
		items[i] = songlist.Item{Index: i + 1, Name: s.Name, Duration: s.Duration}
	}
	return items
}

func (m *Model) newPlaylistPage(name string) Page {
	pl, err := m.Catalog.Playlist(name)
	if err != nil {
		return m.notFound(err)
	}

	p := &songPage{title: icons.FormatPlaylist(pl.Name), desc: pl.Description}
	p.list = songlist.New(m.songConfig(pl.Name, pl.Owner, p.refresh))
	p.load = func(p *songPage) {
		pl, err := m.Catalog.Playlist(name)
		if err != nil {
			m.Logger.Error("reload playlist", "playlist", name, "err", err)
			return
		}
		songs, _ := m.Catalog.SongsOf(name)
		p.info = playlistInfo(pl, songs, m.Now())
		p.list.SetItems(songItems(songs))
	}
	p.refresh()
	return p
}

func playlistInfo(pl catalog.Playlist, songs []catalog.Song, now time.Time) string {
	info := fmt.Sprintf("by %s · %s · %s",
		icons.FormatUser(pl.Owner),
		countLabel(len(songs), "song"),
		render.Duration(catalog.TotalDuration(songs)),
	)
	if !pl.CreatedAt.IsZero() {
		info += " · created " + humanize.RelTime(pl.CreatedAt, now, "ago", "from now")
	}
	return info
}

func countLabel(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return humanize.Comma(int64(n)) + " " + noun + "s"
}

func (m *Model) newArtistPage(name string) Page {
	a, err := m.Catalog.Artist(name)
	if err != nil {
		return m.notFound(err)
	}

	p := &songPage{title: icons.FormatArtist(a.Name)}
	if a.Photo != "" {
		p.desc = "Photo: " + a.Photo
	}
	p.list = songlist.New(m.songConfig("", "", p.refresh))
	p.load = func(p *songPage) {
		songs := m.Catalog.SongsBy(name)
		p.info = "Artist · " + countLabel(len(songs), "song")
		p.list.SetItems(songItems(songs))
	}
	p.refresh()
	return p
}

// --- Message page ---

func (m *Model) notFound(err error) Page {
	m.Logger.Warn("page", "path", m.Router.Current(), "err", err)
	return &messagePage{
		title: "Not found",
		text:  errmsg.FormatWith(errmsg.OpNavigate, m.Router.Current(), err),
	}
}

type messagePage struct {
	title  string
	text   string
	height int
}

func (p *messagePage) Resize(_, height, _ int) { p.height = height }
func (p *messagePage) Update(tea.Msg) tea.Cmd  { return nil }
func (p *messagePage) Overlay(s string) string { return s }
func (p *messagePage) Capturing() bool         { return false }
func (p *messagePage) Help() []string          { return nil }

func (p *messagePage) View() string {
	s := styles.T().S()
	return fitLines(s.Title.Render(p.title)+"\n\n"+s.Muted.Render(p.text), p.height)
}
