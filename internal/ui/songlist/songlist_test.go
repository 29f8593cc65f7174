package songlist

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/encore/internal/session"
	"github.com/llehouerou/encore/internal/ui/action"
	"github.com/llehouerou/encore/internal/ui/anchor"
	"github.com/llehouerou/encore/internal/ui/songmenu"
	"github.com/llehouerou/encore/internal/ui/testutil"
)

type nopService struct{}

func (nopService) AddSong(context.Context, string, string, string) error { return nil }
func (nopService) RemoveSong(context.Context, string, string, string) error { return nil }
func (nopService) PlaylistsOwnedBy(context.Context, string) ([]string, error) {
	return nil, nil
}

type fixture struct {
	list      *Model
	now       time.Time
	refreshes int
	copied    []string
}

func newFixture(policy anchor.Policy) *fixture {
	f := &fixture{now: time.Unix(1_700_000_000, 0)}
	f.list = New(Config{
		Playlist:  "Road Trip",
		Identity:  session.NewStatic("user", "testUser"),
		Service:   nopService{},
		Refresh:   func() { f.refreshes++ },
		Clipboard: func(s string) error { f.copied = append(f.copied, s); return nil },
		Policy:    policy,
		Now:       func() time.Time { return f.now },
	})
	f.list.SetItems([]Item{
		{Index: 1, Name: "Bohemian Rhapsody", Duration: 355 * time.Second},
		{Index: 2, Name: "Don't Stop Me Now", Duration: 209 * time.Second},
		{Index: 3, Name: "One More Time", Duration: 320 * time.Second},
	})
	f.list.SetSize(60, 10)
	f.list.SetScreen(80, 24)
	f.list.SetFocused(true)
	return f
}

// rowY is the screen line of item i with the list at the origin.
func rowY(i int) int { return 1 + i }

func (f *fixture) send(msg tea.Msg) []tea.Msg {
	var cmd tea.Cmd
	f.list, cmd = f.list.Update(msg)
	return testutil.Drain(cmd)
}

// settle sends msg and feeds menu results back until nothing is left.
func (f *fixture) settle(msg tea.Msg) []tea.Msg {
	var out []tea.Msg
	queue := []tea.Msg{msg}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		for _, res := range f.send(next) {
			if _, ok := res.(songmenu.DoneMsg); ok {
				queue = append(queue, res)
				continue
			}
			out = append(out, res)
		}
	}
	return out
}

func activated(t *testing.T, msgs []tea.Msg) []string {
	t.Helper()
	var names []string
	for _, msg := range msgs {
		am, ok := msg.(action.Msg)
		if !ok {
			continue
		}
		assert.Equal(t, Source, am.Source)
		if a, ok := am.Action.(Activated); ok {
			names = append(names, a.Name)
		}
	}
	return names
}

func TestDoubleClick_ActivatesWithoutOpeningPopup(t *testing.T) {
	f := newFixture(anchor.Policy{})

	assert.Empty(t, f.send(testutil.LeftClick(5, rowY(1))))
	f.now = f.now.Add(150 * time.Millisecond)
	msgs := f.send(testutil.LeftClick(5, rowY(1)))

	assert.Equal(t, []string{"Don't Stop Me Now"}, activated(t, msgs))
	assert.False(t, f.list.Popup("2:Don't Stop Me Now").IsOpen())
	assert.False(t, f.list.HasOpenMenu())
	_, hasAnchor := f.list.Popup("2:Don't Stop Me Now").Anchor()
	assert.False(t, hasAnchor)
}

func TestDoubleClick_TooSlowIsTwoSingleClicks(t *testing.T) {
	f := newFixture(anchor.Policy{})

	f.send(testutil.LeftClick(5, rowY(0)))
	f.now = f.now.Add(time.Second)
	assert.Empty(t, activated(t, f.send(testutil.LeftClick(5, rowY(0)))))
}

func TestDoubleClick_DifferentRowsDoNotPair(t *testing.T) {
	f := newFixture(anchor.Policy{})

	f.send(testutil.LeftClick(5, rowY(0)))
	assert.Empty(t, activated(t, f.send(testutil.LeftClick(5, rowY(1)))))
	assert.Equal(t, 1, f.list.Cursor())
}

func TestRightClick_OpensAtPointer(t *testing.T) {
	f := newFixture(anchor.Policy{})
	id := f.list.Items()[0].ID()

	f.send(testutil.RightClick(12, rowY(0)))

	pos, ok := f.list.Popup(id).Anchor()
	require.True(t, ok)
	assert.Equal(t, anchor.Position{Top: rowY(0), Left: 12}, pos)
	assert.Equal(t, []string{id}, f.list.OpenRows())

	mn, ok := f.list.Menu(id)
	require.True(t, ok)
	assert.Equal(t, "Bohemian Rhapsody", mn.Song())
	assert.Contains(t, testutil.StripANSI(f.list.Overlay(f.list.View())), songmenu.LabelCopy)
}

func TestRightClick_SecondOnSameRowCloses(t *testing.T) {
	tests := []struct {
		name string
		x    int
	}{
		{"second press on the row beside the menu", 2},
		{"second press lands on the menu itself", 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(anchor.Policy{})
			id := f.list.Items()[0].ID()

			f.send(testutil.RightClick(12, rowY(0)))
			require.True(t, f.list.Popup(id).IsOpen())

			f.send(testutil.RightClick(tt.x, rowY(0)))
			assert.False(t, f.list.Popup(id).IsOpen())
			_, ok := f.list.Popup(id).Anchor()
			assert.False(t, ok)
			assert.False(t, f.list.HasOpenMenu())
		})
	}
}

func TestRightClick_OutsideRowsClosesEverything(t *testing.T) {
	f := newFixture(anchor.Policy{})
	f.send(testutil.RightClick(2, rowY(0)))
	f.send(testutil.RightClick(2, 20))
	assert.False(t, f.list.HasOpenMenu())
}

func TestPolicy(t *testing.T) {
	tests := []struct {
		name     string
		policy   anchor.Policy
		wantOpen int
	}{
		{"independent rows", anchor.Policy{}, 2},
		{"exclusive rows", anchor.Policy{ExclusiveAcrossRows: true}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(tt.policy)
			f.send(testutil.RightClick(2, rowY(0)))
			f.send(testutil.RightClick(50, rowY(2)))
			assert.Len(t, f.list.OpenRows(), tt.wantOpen)
			assert.True(t, f.list.Popup(f.list.Items()[2].ID()).IsOpen())
		})
	}
}

func TestOutsideLeftClickClosesAndIsSwallowed(t *testing.T) {
	f := newFixture(anchor.Policy{})
	f.send(testutil.RightClick(30, rowY(0)))
	require.True(t, f.list.HasOpenMenu())

	// Two quick presses: the first only closes the menu.
	f.send(testutil.LeftClick(2, rowY(2)))
	assert.False(t, f.list.HasOpenMenu())
	f.now = f.now.Add(50 * time.Millisecond)
	assert.Empty(t, activated(t, f.send(testutil.LeftClick(2, rowY(2)))))
}

func TestEscapeClosesMenu(t *testing.T) {
	f := newFixture(anchor.Policy{})
	f.send(testutil.RightClick(30, rowY(1)))
	f.send(testutil.Key("esc"))
	assert.False(t, f.list.HasOpenMenu())
	assert.False(t, f.list.Popup(f.list.Items()[1].ID()).IsOpen())
}

func TestKeysGoToOpenMenu(t *testing.T) {
	f := newFixture(anchor.Policy{})
	f.send(testutil.RightClick(30, rowY(1)))

	f.send(testutil.Key("down"))
	f.send(testutil.Key("down"))
	assert.Equal(t, 1, f.list.Cursor(), "cursor ignores keys while a menu is open")

	f.settle(testutil.Key("enter"))
	assert.Equal(t, []string{"Don't Stop Me Now"}, f.copied)
	assert.False(t, f.list.HasOpenMenu(), "copy closes the menu")
}

func TestClickOnMenuItem(t *testing.T) {
	f := newFixture(anchor.Policy{})
	f.send(testutil.RightClick(30, rowY(0)))

	// Border is one cell; the third item is on the fourth line of the box.
	f.settle(testutil.LeftClick(32, rowY(0)+3))
	assert.Equal(t, []string{"Bohemian Rhapsody"}, f.copied)
	assert.False(t, f.list.HasOpenMenu())
}

func TestMenuKeyOpensAtCursorRow(t *testing.T) {
	f := newFixture(anchor.Policy{})
	f.send(testutil.Key("j"))
	f.send(testutil.Key("m"))

	id := f.list.Items()[1].ID()
	pos, ok := f.list.Popup(id).Anchor()
	require.True(t, ok)
	assert.Equal(t, rowY(1)+1, pos.Top)
}

func TestEnterActivatesCursorRow(t *testing.T) {
	f := newFixture(anchor.Policy{})
	f.send(testutil.Key("G"))
	assert.Equal(t, []string{"One More Time"}, activated(t, f.send(testutil.Key("enter"))))
}

func TestSetItemsDropsRemovedRows(t *testing.T) {
	f := newFixture(anchor.Policy{})
	f.send(testutil.RightClick(2, rowY(0)))
	f.send(testutil.RightClick(50, rowY(1)))
	require.Len(t, f.list.OpenRows(), 2)

	f.list.SetItems(f.list.Items()[1:])
	assert.Equal(t, []string{f.list.Items()[0].ID()}, f.list.OpenRows())
}

func TestDoneAfterMenuClosedStillRefreshes(t *testing.T) {
	f := newFixture(anchor.Policy{})
	f.send(songmenu.DoneMsg{Row: "1:Bohemian Rhapsody", Edited: true})
	assert.Equal(t, 1, f.refreshes)
}

func TestStaleResultLeavesReopenedMenuOpen(t *testing.T) {
	f := newFixture(anchor.Policy{})
	id := f.list.Items()[0].ID()

	f.send(testutil.RightClick(30, rowY(0)))
	f.send(testutil.Key("down"))
	f.send(testutil.Key("down"))
	stale := f.send(testutil.Key("enter"))
	require.Len(t, stale, 1)
	require.IsType(t, songmenu.DoneMsg{}, stale[0])

	// Dismiss while the copy is in flight, then reopen the same row.
	f.send(testutil.LeftClick(2, rowY(2)))
	require.False(t, f.list.HasOpenMenu())
	f.send(testutil.RightClick(30, rowY(0)))
	require.Equal(t, []string{id}, f.list.OpenRows())

	f.send(stale[0])
	assert.Equal(t, []string{id}, f.list.OpenRows())
	assert.Equal(t, []string{"Bohemian Rhapsody"}, f.copied)
}

func TestStalePlaylistsDoNotSwitchReopenedMenu(t *testing.T) {
	f := newFixture(anchor.Policy{})
	id := f.list.Items()[0].ID()

	f.send(testutil.RightClick(30, rowY(0)))
	stale := f.send(testutil.Key("enter")) // Add to playlist…
	require.Len(t, stale, 1)

	f.send(testutil.LeftClick(2, rowY(2)))
	f.send(testutil.RightClick(30, rowY(0)))

	f.send(stale[0])
	mn, ok := f.list.Menu(id)
	require.True(t, ok)
	assert.Equal(t, []string{songmenu.LabelAddTo, songmenu.LabelRemove, songmenu.LabelCopy}, mn.Labels())
	assert.False(t, mn.Busy())
}

func TestStaleEditStillRefreshes(t *testing.T) {
	f := newFixture(anchor.Policy{})
	id := f.list.Items()[0].ID()
	f.send(testutil.RightClick(30, rowY(0)))

	f.send(songmenu.DoneMsg{Row: id, Seq: 0, Edited: true})
	assert.Equal(t, 1, f.refreshes)
	assert.Equal(t, []string{id}, f.list.OpenRows())
}

func TestView(t *testing.T) {
	f := newFixture(anchor.Policy{})
	out := testutil.StripANSI(f.list.View())

	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "Bohemian Rhapsody")
	assert.Contains(t, out, "5:55")
	assert.Equal(t, 2, testutil.LineIndex(out, "Don't Stop Me Now"))
}
