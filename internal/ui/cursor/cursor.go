// Package cursor tracks the cursor and scroll offset of a scrollable list.
package cursor

// Cursor manages cursor position and scroll offset.
// List length and viewport height are passed to each call rather than
// stored, since both change as the list and the terminal do.
type Cursor struct {
	pos    int
	offset int // first visible item index
	margin int // items kept visible above/below the cursor
}

// New creates a Cursor with the given scroll margin.
func New(margin int) Cursor {
	return Cursor{margin: margin}
}

// Pos returns the cursor position.
func (c Cursor) Pos() int {
	return c.pos
}

// Offset returns the scroll offset.
func (c Cursor) Offset() int {
	return c.offset
}

// Move moves the cursor by delta, clamped to the list, and scrolls to keep
// it visible. No-op on an empty list.
func (c *Cursor) Move(delta, listLen, height int) {
	c.Jump(c.pos+delta, listLen, height)
}

// Jump moves the cursor to pos, clamped to the list.
func (c *Cursor) Jump(pos, listLen, height int) {
	if listLen == 0 {
		return
	}
	c.pos = clamp(pos, listLen-1)
	c.ensureVisible(listLen, height)
}

func (c *Cursor) ensureVisible(listLen, height int) {
	if height <= 0 || listLen == 0 {
		return
	}
	margin := min(c.margin, (height-1)/2)

	if c.pos < c.offset+margin {
		c.offset = max(c.pos-margin, 0)
	}
	if c.pos >= c.offset+height-margin {
		c.offset = c.pos - height + margin + 1
	}
	c.offset = clamp(c.offset, max(listLen-height, 0))
}

// ClampToBounds pulls the cursor back inside a list that shrank.
// Returns true if the cursor moved.
func (c *Cursor) ClampToBounds(listLen int) bool {
	if listLen == 0 {
		changed := c.pos != 0 || c.offset != 0
		c.pos, c.offset = 0, 0
		return changed
	}
	old := c.pos
	c.pos = clamp(c.pos, listLen-1)
	c.offset = clamp(c.offset, c.pos)
	return c.pos != old
}

// VisibleRange returns the visible indices [start, end).
func (c Cursor) VisibleRange(listLen, height int) (start, end int) {
	if listLen == 0 || height <= 0 {
		return 0, 0
	}
	return c.offset, min(c.offset+height, listLen)
}

// RowAt maps a viewport row (0 = first visible line) to an item index.
// Returns -1 when the row holds no item.
func (c Cursor) RowAt(row, listLen, height int) int {
	if row < 0 || row >= height {
		return -1
	}
	idx := c.offset + row
	if idx >= listLen {
		return -1
	}
	return idx
}

// HandleKey handles list navigation keys and reports whether key was one.
// Keys: j/down, k/up, g/home, G/end, ctrl+d and ctrl+u (half page).
func (c *Cursor) HandleKey(key string, listLen, height int) bool {
	switch key {
	case "j", "down":
		c.Move(1, listLen, height)
	case "k", "up":
		c.Move(-1, listLen, height)
	case "g", "home":
		c.pos, c.offset = 0, 0
	case "G", "end":
		c.Jump(listLen-1, listLen, height)
	case "ctrl+d":
		c.Move(max(height/2, 1), listLen, height)
	case "ctrl+u":
		c.Move(-max(height/2, 1), listLen, height)
	default:
		return false
	}
	return true
}

func clamp(v, maxVal int) int {
	if v < 0 {
		return 0
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
