package cards

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/encore/internal/ui"
)

const gridGap = 1

// Grid lays cards out in rows and routes input to them.
type Grid struct {
	ui.Base
	cards  []*Card
	focus  int
	offset int // first visible row
}

// NewGrid creates a grid over cards.
func NewGrid(cards ...*Card) *Grid {
	g := &Grid{cards: cards}
	g.layout()
	return g
}

// Cards returns the cards in display order.
func (g *Grid) Cards() []*Card {
	return g.cards
}

// Focused returns the focused card, or nil for an empty grid.
func (g *Grid) Focused() *Card {
	if len(g.cards) == 0 {
		return nil
	}
	return g.cards[g.focus]
}

// SetSize sets the grid dimensions and re-lays the cards.
func (g *Grid) SetSize(width, height int) {
	g.Base.SetSize(width, height)
	g.layout()
}

// SetOrigin moves the grid and every card with it.
func (g *Grid) SetOrigin(x, y int) {
	g.Base.SetOrigin(x, y)
	g.layout()
}

// SetFocused focuses the grid; only the focused card shows focus.
func (g *Grid) SetFocused(focused bool) {
	g.Base.SetFocused(focused)
	g.layout()
}

func (g *Grid) columns() int {
	return max((g.Width()+gridGap)/(ui.CardWidth+gridGap), 1)
}

func (g *Grid) visibleRows() int {
	return max((g.Height()+gridGap)/(ui.CardHeight+gridGap), 1)
}

func (g *Grid) layout() {
	cols := g.columns()
	row := g.focus / cols
	if row < g.offset {
		g.offset = row
	}
	if row >= g.offset+g.visibleRows() {
		g.offset = row - g.visibleRows() + 1
	}

	ox, oy := g.Origin()
	for i, c := range g.cards {
		r, col := i/cols-g.offset, i%cols
		c.SetOrigin(ox+col*(ui.CardWidth+gridGap), oy+r*(ui.CardHeight+gridGap))
		c.SetFocused(g.IsFocused() && i == g.focus)
	}
}

// Update handles arrow navigation, forwards tab/enter to the focused card
// and routes mouse presses to the card under the pointer.
func (g *Grid) Update(msg tea.Msg) bool {
	if len(g.cards) == 0 {
		return false
	}
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return g.handleKey(msg)
	case tea.MouseMsg:
		return g.handleMouse(msg)
	}
	return false
}

func (g *Grid) handleKey(msg tea.KeyMsg) bool {
	cols := g.columns()
	next := g.focus
	switch msg.String() {
	case "left", "h":
		next--
	case "right", "l":
		next++
	case "up", "k":
		next -= cols
	case "down", "j":
		next += cols
	default:
		return g.cards[g.focus].HandleKey(msg)
	}
	if next >= 0 && next < len(g.cards) {
		g.focus = next
		g.layout()
	}
	return true
}

func (g *Grid) handleMouse(msg tea.MouseMsg) bool {
	if msg.Action != tea.MouseActionPress {
		return false
	}
	for i, c := range g.cards {
		if !c.Contains(msg.X, msg.Y) || !g.visible(i) {
			continue
		}
		g.focus = i
		g.layout()
		c.HandleMouse(msg)
		return true
	}
	return false
}

func (g *Grid) visible(i int) bool {
	r := i/g.columns() - g.offset
	return r >= 0 && r < g.visibleRows()
}

// View renders the visible rows of cards.
func (g *Grid) View() string {
	cols := g.columns()
	var rows []string
	for r := g.offset; r < g.offset+g.visibleRows(); r++ {
		start := r * cols
		if start >= len(g.cards) {
			break
		}
		end := min(start+cols, len(g.cards))
		views := make([]string, 0, 2*(end-start))
		for i := start; i < end; i++ {
			if i > start {
				views = append(views, strings.Repeat(" ", gridGap))
			}
			views = append(views, g.cards[i].View())
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, views...))
	}
	return strings.Join(rows, strings.Repeat("\n", gridGap+1))
}
