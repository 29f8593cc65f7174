package songlist

import "time"

// clickTracker recognizes two left presses on the same row within window.
type clickTracker struct {
	window time.Duration
	now    func() time.Time
	row    int
	at     time.Time
	armed  bool
}

// press records a press on row and reports whether it completes a
// double-click. A completed double-click disarms the tracker so a third
// press starts over.
func (c *clickTracker) press(row int) bool {
	t := c.now()
	if c.armed && c.row == row && t.Sub(c.at) <= c.window {
		c.armed = false
		return true
	}
	c.row, c.at, c.armed = row, t, true
	return false
}

func (c *clickTracker) reset() {
	c.armed = false
}
