package anchor

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestController_ZeroValueIsClosed(t *testing.T) {
	var c Controller
	if c.IsOpen() {
		t.Error("zero controller should be closed")
	}
	if _, ok := c.Anchor(); ok {
		t.Error("zero controller should have no anchor")
	}
}

func TestController_Transitions(t *testing.T) {
	tests := []struct {
		name   string
		events []Event
		want   State
	}{
		{
			name:   "open at stages anchor without opening",
			events: []Event{OpenAt{X: 3, Y: 7}},
			want:   State{Phase: Closed},
		},
		{
			name:   "open at then toggle opens at anchor",
			events: []Event{OpenAt{X: 3, Y: 7}, Toggle{}},
			want:   State{Phase: Open, Position: Position{Top: 7, Left: 3}},
		},
		{
			name:   "toggle without anchor stays closed",
			events: []Event{Toggle{}},
			want:   State{Phase: Closed},
		},
		{
			name:   "open at moves an open popup",
			events: []Event{OpenAt{X: 1, Y: 1}, Toggle{}, OpenAt{X: 9, Y: 4}},
			want:   State{Phase: Open, Position: Position{Top: 4, Left: 9}},
		},
		{
			name:   "toggle closes an open popup",
			events: []Event{OpenAt{X: 1, Y: 1}, Toggle{}, Toggle{}},
			want:   State{Phase: Closed},
		},
		{
			name:   "close drops staged anchor",
			events: []Event{OpenAt{X: 1, Y: 1}, Close{}, Toggle{}},
			want:   State{Phase: Closed},
		},
		{
			name:   "close is idempotent",
			events: []Event{Close{}, Close{}},
			want:   State{Phase: Closed},
		},
		{
			name:   "reopen after close uses new anchor",
			events: []Event{OpenAt{X: 1, Y: 1}, Toggle{}, Close{}, OpenAt{X: 5, Y: 6}, Toggle{}},
			want:   State{Phase: Open, Position: Position{Top: 6, Left: 5}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			for _, ev := range tt.events {
				c.Apply(ev)
			}
			assert.Equal(t, tt.want, c.State())
		})
	}
}

func TestController_RightClickTwiceCloses(t *testing.T) {
	c := New()

	got := c.RightClick(10, 2)
	assert.Equal(t, State{Phase: Open, Position: Position{Top: 2, Left: 10}}, got)

	got = c.RightClick(12, 2)
	assert.Equal(t, Closed, got.Phase)
	_, ok := c.Anchor()
	assert.False(t, ok, "closed controller must not report an anchor")
}

func TestController_ClosedNeverHasAnchor(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	c := New()

	for i := range 5000 {
		var ev Event
		switch rng.IntN(4) {
		case 0:
			ev = OpenAt{X: rng.IntN(200), Y: rng.IntN(60)}
		case 1:
			ev = Toggle{}
		case 2:
			ev = Close{}
		case 3:
			c.RightClick(rng.IntN(200), rng.IntN(60))
			ev = nil
		}
		if ev != nil {
			c.Apply(ev)
		}

		pos, ok := c.Anchor()
		if c.IsOpen() != ok {
			t.Fatalf("step %d: IsOpen=%v but anchor present=%v", i, c.IsOpen(), ok)
		}
		if !c.IsOpen() && pos != (Position{}) {
			t.Fatalf("step %d: closed controller reported anchor %+v", i, pos)
		}
	}
}

func TestController_OnChange(t *testing.T) {
	c := New()
	var got []string
	c.OnChange(func(from, to State) {
		got = append(got, from.String()+"->"+to.String())
	})

	c.OpenAt(2, 3) // staged only, no observable change
	c.Toggle()
	c.Close()
	c.Close() // no-op, no callback

	assert.Equal(t, []string{"closed->open@2,3", "open@2,3->closed"}, got)
}

func TestPhase_String(t *testing.T) {
	assert.Equal(t, "closed", Closed.String())
	assert.Equal(t, "open", Open.String())
	assert.Equal(t, "phase(7)", Phase(7).String())
}
