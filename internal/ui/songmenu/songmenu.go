// Package songmenu implements the action menu opened on a song row.
package songmenu

import (
	"context"
	"slices"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/encore/internal/errmsg"
	"github.com/llehouerou/encore/internal/session"
	"github.com/llehouerou/encore/internal/ui/menu"
)

// Root menu labels.
const (
	LabelAddTo  = "Add to playlist…"
	LabelRemove = "Remove from this playlist"
	LabelCopy   = "Copy song name"
	LabelBack   = "‹ Back"
	LabelNone   = "No other playlists"
)

// PlaylistService edits playlists on behalf of a user.
type PlaylistService interface {
	AddSong(ctx context.Context, user, playlist, song string) error
	RemoveSong(ctx context.Context, user, playlist, song string) error
	PlaylistsOwnedBy(ctx context.Context, owner string) ([]string, error)
}

// Config configures a song menu.
type Config struct {
	Row      string // id of the row owning the menu
	Seq      uint64 // menu instance on that row; results of other instances are ignored
	Song     string
	Playlist string
	Owner    string // playlist owner; empty means unknown

	Identity session.Identity
	Service  PlaylistService

	// Refresh reloads the song list after an edit.
	Refresh func()
	// Close closes the owning row's popup.
	Close func()
	// Clipboard writes text to the clipboard. Defaults to the system one.
	Clipboard func(string) error
}

// ErrorMsg reports a failed menu action.
type ErrorMsg struct {
	Op      errmsg.Op
	Context string
	Err     error
}

// Text returns the user-facing error message.
func (m ErrorMsg) Text() string {
	return errmsg.FormatWith(m.Op, m.Context, m.Err)
}

// DoneMsg carries the result of an action that ran in a command.
type DoneMsg struct {
	Row     string
	Seq     uint64
	Op      errmsg.Op
	Context string
	Edited  bool // the song list changed and must be refreshed
	Err     error
}

// playlistsMsg carries the user's playlists for the add submenu.
type playlistsMsg struct {
	row   string
	seq   uint64
	names []string
	err   error
}

type mode int

const (
	modeRoot mode = iota
	modeAddTo
)

// Model is the song action menu.
type Model struct {
	cfg     Config
	menu    menu.Model
	mode    mode
	targets []string
	busy    bool
}

// New creates a song menu showing the root actions.
func New(cfg Config) *Model {
	if cfg.Clipboard == nil {
		cfg.Clipboard = clipboard.WriteAll
	}
	m := &Model{cfg: cfg, menu: menu.New()}
	m.showRoot()
	return m
}

func (m *Model) showRoot() {
	m.mode = modeRoot
	m.targets = nil
	m.menu.SetItems([]menu.Item{
		{Label: LabelAddTo},
		{Label: LabelRemove, Disabled: !m.canEdit()},
		{Label: LabelCopy},
	})
}

// canEdit reports whether Remove applies: the row belongs to a playlist the
// current user owns, or one without a recorded owner.
func (m *Model) canEdit() bool {
	if m.cfg.Playlist == "" {
		return false
	}
	return m.cfg.Owner == "" || m.cfg.Identity == nil || m.cfg.Owner == m.cfg.Identity.Username()
}

func (m *Model) showPlaylists(names []string) {
	m.mode = modeAddTo
	m.targets = slices.DeleteFunc(slices.Clone(names), func(n string) bool {
		return n == m.cfg.Playlist
	})
	items := make([]menu.Item, 0, len(m.targets)+1)
	for _, n := range m.targets {
		items = append(items, menu.Item{Label: n})
	}
	if len(m.targets) == 0 {
		items = append(items, menu.Item{Label: LabelNone, Disabled: true})
	}
	items = append(items, menu.Item{Label: LabelBack})
	m.menu.SetItems(items)
}

// Song returns the song the menu acts on.
func (m *Model) Song() string { return m.cfg.Song }

// Row returns the id of the owning row.
func (m *Model) Row() string { return m.cfg.Row }

// Seq returns the menu's instance number.
func (m *Model) Seq() uint64 { return m.cfg.Seq }

// owns reports whether a result was produced by this menu instance.
func (m *Model) owns(row string, seq uint64) bool {
	return row == m.cfg.Row && seq == m.cfg.Seq
}

// Labels returns the visible option labels.
func (m *Model) Labels() []string {
	items := m.menu.Items()
	labels := make([]string, len(items))
	for i, it := range items {
		labels[i] = it.Label
	}
	return labels
}

// Busy reports whether an action is in flight.
func (m *Model) Busy() bool { return m.busy }

// View renders the menu with its border.
func (m *Model) View() string {
	return m.menu.Box()
}

// Update handles keys, DoneMsg and internal results. Mouse clicks arrive
// through Click with box-local coordinates.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.busy {
			return m, nil
		}
		res, idx := m.menu.HandleKey(msg)
		return m, m.handleResult(res, idx)
	case playlistsMsg:
		if !m.owns(msg.row, msg.seq) {
			return m, nil
		}
		m.busy = false
		if msg.err != nil {
			m.closeMenu()
			return m, errorCmd(errmsg.OpPlaylistList, "", msg.err)
		}
		m.showPlaylists(msg.names)
		return m, nil
	case DoneMsg:
		if !m.owns(msg.Row, msg.Seq) {
			return m, nil
		}
		m.busy = false
		return m, Finish(msg, m.cfg.Refresh, m.cfg.Close)
	}
	return m, nil
}

// Click applies a left press at box-local coordinates.
func (m *Model) Click(lx, ly int) tea.Cmd {
	if m.busy {
		return nil
	}
	res, idx := m.menu.HandleClick(lx, ly)
	return m.handleResult(res, idx)
}

func (m *Model) handleResult(res menu.Result, idx int) tea.Cmd {
	switch res {
	case menu.Cancelled:
		m.closeMenu()
	case menu.Chosen:
		if m.mode == modeAddTo {
			return m.chooseTarget(idx)
		}
		return m.chooseRoot(idx)
	}
	return nil
}

func (m *Model) chooseRoot(idx int) tea.Cmd {
	switch m.menu.Items()[idx].Label {
	case LabelAddTo:
		m.busy = true
		return m.loadPlaylists()
	case LabelRemove:
		m.busy = true
		return m.removeSong()
	case LabelCopy:
		m.busy = true
		return m.copyName()
	}
	return nil
}

func (m *Model) chooseTarget(idx int) tea.Cmd {
	if idx >= len(m.targets) {
		m.showRoot()
		return nil
	}
	m.busy = true
	return m.addSong(m.targets[idx])
}

func (m *Model) closeMenu() {
	if m.cfg.Close != nil {
		m.cfg.Close()
	}
}

func (m *Model) user() string {
	if m.cfg.Identity == nil {
		return ""
	}
	return m.cfg.Identity.Username()
}

func (m *Model) loadPlaylists() tea.Cmd {
	row, seq, svc, user := m.cfg.Row, m.cfg.Seq, m.cfg.Service, m.user()
	return func() tea.Msg {
		names, err := svc.PlaylistsOwnedBy(context.Background(), user)
		return playlistsMsg{row: row, seq: seq, names: names, err: err}
	}
}

func (m *Model) addSong(target string) tea.Cmd {
	row, seq, svc, user, song := m.cfg.Row, m.cfg.Seq, m.cfg.Service, m.user(), m.cfg.Song
	return func() tea.Msg {
		err := svc.AddSong(context.Background(), user, target, song)
		return DoneMsg{Row: row, Seq: seq, Op: errmsg.OpPlaylistAddSong, Context: target, Edited: true, Err: err}
	}
}

func (m *Model) removeSong() tea.Cmd {
	row, seq, svc, user, song, pl := m.cfg.Row, m.cfg.Seq, m.cfg.Service, m.user(), m.cfg.Song, m.cfg.Playlist
	return func() tea.Msg {
		err := svc.RemoveSong(context.Background(), user, pl, song)
		return DoneMsg{Row: row, Seq: seq, Op: errmsg.OpPlaylistRemoveSong, Context: pl, Edited: true, Err: err}
	}
}

func (m *Model) copyName() tea.Cmd {
	row, seq, song, write := m.cfg.Row, m.cfg.Seq, m.cfg.Song, m.cfg.Clipboard
	return func() tea.Msg {
		return DoneMsg{Row: row, Seq: seq, Op: errmsg.OpSongCopy, Context: song, Err: write(song)}
	}
}

// Finish completes an action: on success it refreshes (for edits) and then
// closes; on failure it closes and reports an ErrorMsg. Either callback may
// be nil. Rows use it directly when the menu is already gone.
func Finish(msg DoneMsg, refresh, closeFn func()) tea.Cmd {
	if msg.Err == nil && msg.Edited && refresh != nil {
		refresh()
	}
	if closeFn != nil {
		closeFn()
	}
	if msg.Err != nil {
		return errorCmd(msg.Op, msg.Context, msg.Err)
	}
	return nil
}

func errorCmd(op errmsg.Op, detail string, err error) tea.Cmd {
	return func() tea.Msg {
		return ErrorMsg{Op: op, Context: detail, Err: err}
	}
}
