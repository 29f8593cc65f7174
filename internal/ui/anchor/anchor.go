// Package anchor tracks whether a pointer-anchored popup is open and where.
//
// A Controller is a two-state machine: Closed, or Open at a Position. The
// visible flag and the anchor are read from the same state value, so a closed
// controller never reports an anchor.
package anchor

import "fmt"

// Position is the terminal cell a popup is anchored at.
type Position struct {
	Top  int
	Left int
}

// Phase identifies which state the controller is in.
type Phase int

const (
	Closed Phase = iota
	Open
)

func (p Phase) String() string {
	switch p {
	case Closed:
		return "closed"
	case Open:
		return "open"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// State is the observable controller state.
// Position is only meaningful when Phase is Open.
type State struct {
	Phase    Phase
	Position Position
}

func (s State) String() string {
	if s.Phase == Open {
		return fmt.Sprintf("open@%d,%d", s.Position.Left, s.Position.Top)
	}
	return "closed"
}

// Event drives a transition.
type Event interface {
	event()
}

// OpenAt requests the popup at pointer column X, row Y.
// On a closed controller the anchor is staged until the next Toggle;
// on an open one the popup moves.
type OpenAt struct{ X, Y int }

// Toggle opens a closed popup at the staged anchor, or closes an open one.
type Toggle struct{}

// Close closes the popup and drops any staged anchor.
type Close struct{}

func (OpenAt) event() {}
func (Toggle) event() {}
func (Close) event()  {}

// machine is the full internal state: the observable state plus an anchor
// staged by OpenAt while closed.
type machine struct {
	state  State
	staged *Position
}

// step is the single transition function.
func step(m machine, ev Event) machine {
	switch ev := ev.(type) {
	case OpenAt:
		pos := Position{Top: ev.Y, Left: ev.X}
		if m.state.Phase == Open {
			m.state.Position = pos
			return m
		}
		m.staged = &pos
		return m

	case Toggle:
		if m.state.Phase == Open {
			return machine{}
		}
		if m.staged == nil {
			// Nothing to anchor to.
			return m
		}
		return machine{state: State{Phase: Open, Position: *m.staged}}

	case Close:
		return machine{}
	}
	return m
}

// Controller owns the popup state for a single row.
// The zero value is a closed controller ready to use.
type Controller struct {
	m        machine
	onChange func(from, to State)
	hook     func(from, to State) // registry policy enforcement
}

// New creates a closed controller.
func New() *Controller {
	return &Controller{}
}

// OnChange registers fn to be called after every transition that changes
// the observable state.
func (c *Controller) OnChange(fn func(from, to State)) {
	c.onChange = fn
}

// State returns the current state.
func (c *Controller) State() State {
	return c.m.state
}

// IsOpen reports whether the popup is open.
func (c *Controller) IsOpen() bool {
	return c.m.state.Phase == Open
}

// Anchor returns the anchor of an open popup.
func (c *Controller) Anchor() (Position, bool) {
	if c.m.state.Phase != Open {
		return Position{}, false
	}
	return c.m.state.Position, true
}

// Apply runs ev through the transition function and returns the new state.
func (c *Controller) Apply(ev Event) State {
	from := c.m.state
	c.m = step(c.m, ev)
	to := c.m.state
	if from != to {
		if c.hook != nil {
			c.hook(from, to)
		}
		if c.onChange != nil {
			c.onChange(from, to)
		}
	}
	return to
}

// OpenAt stages (or moves) the anchor at pointer column x, row y.
func (c *Controller) OpenAt(x, y int) {
	c.Apply(OpenAt{X: x, Y: y})
}

// Toggle flips the popup between open and closed.
func (c *Controller) Toggle() {
	c.Apply(Toggle{})
}

// Close closes the popup. Closing a closed controller is a no-op.
func (c *Controller) Close() {
	c.Apply(Close{})
}

// RightClick applies OpenAt then Toggle as one interaction: a closed popup
// opens at (x, y) and an open popup closes.
func (c *Controller) RightClick(x, y int) State {
	c.OpenAt(x, y)
	return c.Apply(Toggle{})
}
