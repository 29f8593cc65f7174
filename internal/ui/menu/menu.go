// Package menu provides the option list shared by context menus.
package menu

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/encore/internal/ui/popup"
	"github.com/llehouerou/encore/internal/ui/render"
	"github.com/llehouerou/encore/internal/ui/styles"
)

// Item is one menu option.
type Item struct {
	Label    string
	Disabled bool
}

// KeyMap defines the menu key bindings.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Cancel key.Binding
}

// DefaultKeyMap returns the standard menu bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Select: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")),
		Cancel: key.NewBinding(key.WithKeys("esc", "q"), key.WithHelp("esc", "close")),
	}
}

// Result reports what a key or click did.
type Result int

const (
	None Result = iota
	Moved
	Chosen
	Cancelled
)

// Model is a vertical list of options with a highlighted selection.
type Model struct {
	items    []Item
	selected int
	keys     KeyMap
}

// New creates a menu with the first enabled item selected.
func New(items ...Item) Model {
	m := Model{keys: DefaultKeyMap()}
	m.SetItems(items)
	return m
}

// SetItems replaces the options and resets the selection.
func (m *Model) SetItems(items []Item) {
	m.items = items
	m.selected = 0
	if len(items) > 0 && items[0].Disabled {
		m.move(1)
	}
}

// Items returns the options.
func (m Model) Items() []Item {
	return m.items
}

// Selected returns the highlighted index.
func (m Model) Selected() int {
	return m.selected
}

// move steps the selection by delta, skipping disabled items.
func (m *Model) move(delta int) bool {
	for i := m.selected + delta; i >= 0 && i < len(m.items); i += delta {
		if !m.items[i].Disabled {
			m.selected = i
			return true
		}
	}
	return false
}

// HandleKey applies a key and returns the result and the affected index.
func (m *Model) HandleKey(msg tea.KeyMsg) (Result, int) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.move(-1) {
			return Moved, m.selected
		}
	case key.Matches(msg, m.keys.Down):
		if m.move(1) {
			return Moved, m.selected
		}
	case key.Matches(msg, m.keys.Select):
		if m.selected < len(m.items) && !m.items[m.selected].Disabled {
			return Chosen, m.selected
		}
	case key.Matches(msg, m.keys.Cancel):
		return Cancelled, -1
	}
	return None, -1
}

// HandleClick applies a left click at box-local coordinates (as returned by
// Box). Clicking an enabled item chooses it.
func (m *Model) HandleClick(lx, ly int) (Result, int) {
	idx := m.ItemAt(lx, ly)
	if idx < 0 || m.items[idx].Disabled {
		return None, -1
	}
	m.selected = idx
	return Chosen, idx
}

// ItemAt maps box-local coordinates to an item index, or -1 for the border
// and anything outside.
func (m Model) ItemAt(lx, ly int) int {
	w, h := popup.BoxSize(m.Box())
	if lx <= 0 || lx >= w-1 || ly <= 0 || ly >= h-1 {
		return -1
	}
	idx := ly - 1
	if idx >= len(m.items) {
		return -1
	}
	return idx
}

func (m Model) width() int {
	w := 0
	for _, it := range m.items {
		w = max(w, lipgloss.Width(it.Label))
	}
	return w + 4 // selection marker and padding
}

// View renders the options without a border.
func (m Model) View() string {
	s := styles.T().S()
	w := m.width()
	lines := make([]string, len(m.items))
	for i, it := range m.items {
		marker := "  "
		style := s.MenuItem
		switch {
		case it.Disabled:
			style = s.Subtle.Background(styles.T().BgPopup)
		case i == m.selected:
			marker = "▸ "
			style = s.MenuSelected
		}
		lines[i] = style.Render(render.Fit(marker+it.Label, w))
	}
	return strings.Join(lines, "\n")
}

// Box renders the options inside the menu border.
func (m Model) Box() string {
	return styles.T().S().MenuBox.Render(m.View())
}
