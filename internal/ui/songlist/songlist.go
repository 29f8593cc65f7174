// Package songlist renders a playlist's songs and owns each row's action
// menu.
//
// Every row has its own popup controller, looked up by row id in an
// anchor.Registry. A right press on a row toggles that row's popup at the
// pointer; a double left press activates the song and never touches popup
// state.
package songlist

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/encore/internal/icons"
	"github.com/llehouerou/encore/internal/session"
	"github.com/llehouerou/encore/internal/ui"
	"github.com/llehouerou/encore/internal/ui/action"
	"github.com/llehouerou/encore/internal/ui/anchor"
	"github.com/llehouerou/encore/internal/ui/cursor"
	"github.com/llehouerou/encore/internal/ui/popup"
	"github.com/llehouerou/encore/internal/ui/render"
	"github.com/llehouerou/encore/internal/ui/songmenu"
	"github.com/llehouerou/encore/internal/ui/styles"
)

// Source identifies this component in action.Msg.
const Source = "songlist"

const durationWidth = 8

// Item is one song row.
type Item struct {
	Index    int
	Name     string
	Duration time.Duration
}

// ID returns the row id used for popup bookkeeping.
func (it Item) ID() string {
	return fmt.Sprintf("%d:%s", it.Index, it.Name)
}

// Activated is emitted when a song is double-clicked or entered.
type Activated struct {
	Name string
}

func (Activated) ActionType() string { return "songlist.activated" }

// Config wires a list to its collaborators.
type Config struct {
	Playlist string
	Owner    string

	Identity  session.Identity
	Service   songmenu.PlaylistService
	Refresh   func()
	Clipboard func(string) error

	Policy      anchor.Policy
	DoubleClick time.Duration    // zero means ui.DefaultDoubleClick
	Now         func() time.Time // zero means time.Now
	Logger      *slog.Logger
}

// Model is a scrollable song list with per-row action menus.
type Model struct {
	ui.Base
	cfg      Config
	items    []Item
	cursor   cursor.Cursor
	clicks   clickTracker
	popups   *anchor.Registry
	menus    map[string]*songmenu.Model
	order    []string // open rows, most recent last
	screenW  int
	screenH  int
	observed map[string]bool
	seq      uint64 // last menu instance handed out
}

// New creates an empty list.
func New(cfg Config) *Model {
	if cfg.DoubleClick <= 0 {
		cfg.DoubleClick = ui.DefaultDoubleClick
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	return &Model{
		cfg:      cfg,
		cursor:   cursor.New(ui.ScrollMargin),
		clicks:   clickTracker{window: cfg.DoubleClick, now: cfg.Now},
		popups:   anchor.NewRegistry(cfg.Policy),
		menus:    make(map[string]*songmenu.Model),
		observed: make(map[string]bool),
	}
}

// SetItems replaces the rows. Popups of rows that disappeared are dropped.
func (m *Model) SetItems(items []Item) {
	m.items = items
	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.ID()
	}
	m.popups.Retain(ids)
	for id := range m.observed {
		if !slices.Contains(ids, id) {
			delete(m.observed, id)
		}
	}
	m.cursor.ClampToBounds(len(items))
	m.clicks.reset()
	m.sync()
}

// Items returns the rows.
func (m *Model) Items() []Item {
	return m.items
}

// SetScreen records the terminal size used to keep menus on screen.
func (m *Model) SetScreen(width, height int) {
	m.screenW, m.screenH = width, height
}

// Cursor returns the index of the cursor row.
func (m *Model) Cursor() int {
	return m.cursor.Pos()
}

// Popup returns the controller of row id.
func (m *Model) Popup(id string) *anchor.Controller {
	return m.controller(id)
}

// OpenRows returns the ids of rows with an open menu, most recent last.
func (m *Model) OpenRows() []string {
	return slices.Clone(m.order)
}

// Menu returns the open menu of row id.
func (m *Model) Menu(id string) (*songmenu.Model, bool) {
	mn, ok := m.menus[id]
	return mn, ok
}

// HasOpenMenu reports whether any row's menu is open.
func (m *Model) HasOpenMenu() bool {
	return len(m.order) > 0
}

// CloseMenus closes every row's menu.
func (m *Model) CloseMenus() {
	m.popups.CloseAll()
	m.sync()
}

func (m *Model) controller(id string) *anchor.Controller {
	c := m.popups.For(id)
	if !m.observed[id] {
		m.observed[id] = true
		c.OnChange(func(from, to anchor.State) {
			m.cfg.Logger.Debug("song popup", "row", id, "from", from, "to", to)
		})
	}
	return c
}

// listHeight is the number of rows below the column header.
func (m *Model) listHeight() int {
	return max(m.Height()-1, 0)
}

// rowAt maps an absolute screen cell to an item index, or -1.
func (m *Model) rowAt(x, y int) int {
	if !m.Contains(x, y) {
		return -1
	}
	_, ly := m.Local(x, y)
	return m.cursor.RowAt(ly-1, len(m.items), m.listHeight())
}

// rowY returns the absolute screen line of item idx.
func (m *Model) rowY(idx int) int {
	_, oy := m.Origin()
	return oy + 1 + idx - m.cursor.Offset()
}

// sync makes the menu set match the controllers' open rows.
func (m *Model) sync() {
	open := m.popups.Open()
	m.order = slices.DeleteFunc(m.order, func(id string) bool {
		if slices.Contains(open, id) {
			return false
		}
		delete(m.menus, id)
		return true
	})
	for _, id := range open {
		if _, ok := m.menus[id]; ok {
			continue
		}
		idx := slices.IndexFunc(m.items, func(it Item) bool { return it.ID() == id })
		if idx < 0 {
			m.popups.Close(id)
			continue
		}
		m.menus[id] = m.newMenu(id, m.items[idx])
		m.order = append(m.order, id)
	}
}

func (m *Model) newMenu(id string, it Item) *songmenu.Model {
	m.seq++
	return songmenu.New(songmenu.Config{
		Row:       id,
		Seq:       m.seq,
		Song:      it.Name,
		Playlist:  m.cfg.Playlist,
		Owner:     m.cfg.Owner,
		Identity:  m.cfg.Identity,
		Service:   m.cfg.Service,
		Refresh:   m.refresh,
		Close:     func() { m.closeRow(id) },
		Clipboard: m.cfg.Clipboard,
	})
}

func (m *Model) refresh() {
	if m.cfg.Refresh != nil {
		m.cfg.Refresh()
	}
}

func (m *Model) closeRow(id string) {
	m.popups.Close(id)
	m.sync()
}

// menuRect returns where row id's menu is drawn on screen.
func (m *Model) menuRect(id string) (x, y, w, h int, ok bool) {
	mn, open := m.menus[id]
	if !open {
		return 0, 0, 0, 0, false
	}
	pos, ok := m.controller(id).Anchor()
	if !ok {
		return 0, 0, 0, 0, false
	}
	w, h = popup.BoxSize(mn.View())
	x, y = pos.Left, pos.Top
	if m.screenW > 0 && m.screenH > 0 {
		x, y = popup.Place(x, y, w, h, m.screenW, m.screenH)
	}
	return x, y, w, h, true
}

// menuAt returns the topmost open menu containing the cell, with
// box-local coordinates.
func (m *Model) menuAt(x, y int) (string, int, int) {
	for i := len(m.order) - 1; i >= 0; i-- {
		id := m.order[i]
		mx, my, w, h, ok := m.menuRect(id)
		if ok && x >= mx && x < mx+w && y >= my && y < my+h {
			return id, x - mx, y - my
		}
	}
	return "", 0, 0
}

// Update handles input and menu results.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		return m, m.handleMouse(msg)
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	case songmenu.DoneMsg:
		if mn, ok := m.menus[msg.Row]; ok && mn.Seq() == msg.Seq {
			_, cmd := mn.Update(msg)
			return m, cmd
		}
		// The menu that ran the action is gone; a newer one on the same
		// row stays open.
		return m, songmenu.Finish(msg, m.refresh, nil)
	}

	// Internal menu results carry their row; each menu ignores the others.
	var cmds []tea.Cmd
	for _, id := range slices.Clone(m.order) {
		if mn, ok := m.menus[id]; ok {
			_, cmd := mn.Update(msg)
			cmds = append(cmds, cmd)
		}
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress {
		return nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.cursor.Move(-1, len(m.items), m.listHeight())
		return nil
	case tea.MouseButtonWheelDown:
		m.cursor.Move(1, len(m.items), m.listHeight())
		return nil
	}

	if id, lx, ly := m.menuAt(msg.X, msg.Y); id != "" {
		switch msg.Button {
		case tea.MouseButtonLeft:
			return m.menus[id].Click(lx, ly)
		case tea.MouseButtonRight:
			// The menu stands in for its row: a second right press toggles it.
			m.controller(id).RightClick(msg.X, msg.Y)
			m.sync()
		}
		return nil
	}

	idx := m.rowAt(msg.X, msg.Y)

	switch msg.Button {
	case tea.MouseButtonRight:
		if idx < 0 {
			m.CloseMenus()
			return nil
		}
		m.cursor.Jump(idx, len(m.items), m.listHeight())
		m.clicks.reset()
		m.controller(m.items[idx].ID()).RightClick(msg.X, msg.Y)
		m.sync()
		return nil

	case tea.MouseButtonLeft:
		if m.HasOpenMenu() {
			// Outside click: close and swallow.
			m.CloseMenus()
			m.clicks.reset()
			return nil
		}
		if idx < 0 {
			return nil
		}
		m.cursor.Jump(idx, len(m.items), m.listHeight())
		if m.clicks.press(idx) {
			return m.activate(idx)
		}
	}
	return nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if n := len(m.order); n > 0 {
		mn := m.menus[m.order[n-1]]
		_, cmd := mn.Update(msg)
		return cmd
	}

	key := msg.String()
	if m.cursor.HandleKey(key, len(m.items), m.listHeight()) {
		return nil
	}
	if len(m.items) == 0 {
		return nil
	}
	switch key {
	case "enter":
		return m.activate(m.cursor.Pos())
	case "m", "shift+f10":
		idx := m.cursor.Pos()
		ox, _ := m.Origin()
		m.controller(m.items[idx].ID()).RightClick(ox+2, m.rowY(idx)+1)
		m.sync()
	}
	return nil
}

func (m *Model) activate(idx int) tea.Cmd {
	return action.Cmd(Source, Activated{Name: m.items[idx].Name})
}

// View renders the column header and the visible rows.
func (m *Model) View() string {
	s := styles.T().S()
	w := m.Width()
	titleW := max(w-6-durationWidth, 1)

	header := s.Subtle.Render(render.Fit(" #", 5) + " " + render.Fit("Title", titleW) + render.FitRight("Time", durationWidth))
	lines := []string{header}

	start, end := m.cursor.VisibleRange(len(m.items), m.listHeight())
	for i := start; i < end; i++ {
		it := m.items[i]
		title := icons.FormatSong(it.Name)
		if _, open := m.menus[it.ID()]; open {
			title += " " + icons.Menu()
		}
		line := render.FitRight(fmt.Sprint(it.Index), 4) + "  " +
			render.Fit(title, titleW) +
			render.FitRight(render.Duration(it.Duration), durationWidth)
		if i == m.cursor.Pos() && m.IsFocused() {
			line = s.Cursor.Render(line)
		}
		lines = append(lines, line)
	}
	for len(lines) < m.Height() {
		lines = append(lines, strings.Repeat(" ", w))
	}
	return strings.Join(lines, "\n")
}

// Overlay draws the open menus over a full-screen view.
func (m *Model) Overlay(screen string) string {
	for _, id := range m.order {
		x, y, _, _, ok := m.menuRect(id)
		if !ok {
			continue
		}
		screen = popup.ComposeAt(screen, m.menus[id].View(), x, y, m.screenW)
	}
	return screen
}
