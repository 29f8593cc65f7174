package ui

// Base provides focus, size and screen-origin bookkeeping for components.
// Embed it in component models:
//
//	type Model struct {
//	    ui.Base
//	    items []Item
//	}
//
// The origin is the screen cell of the component's top-left corner. Mouse
// events carry absolute coordinates; Local converts them to component space.
type Base struct {
	width, height int
	x, y          int
	focused       bool
}

// SetFocused sets whether the component is focused.
func (b *Base) SetFocused(focused bool) {
	b.focused = focused
}

// IsFocused returns whether the component is focused.
func (b Base) IsFocused() bool {
	return b.focused
}

// SetSize sets the component dimensions.
func (b *Base) SetSize(width, height int) {
	b.width = width
	b.height = height
}

// Size returns the component dimensions.
func (b Base) Size() (width, height int) {
	return b.width, b.height
}

// Width returns the component width.
func (b Base) Width() int {
	return b.width
}

// Height returns the component height.
func (b Base) Height() int {
	return b.height
}

// SetOrigin records where the component is drawn on screen.
func (b *Base) SetOrigin(x, y int) {
	b.x = x
	b.y = y
}

// Origin returns the screen cell of the component's top-left corner.
func (b Base) Origin() (x, y int) {
	return b.x, b.y
}

// Local converts absolute screen coordinates to component coordinates.
func (b Base) Local(x, y int) (lx, ly int) {
	return x - b.x, y - b.y
}

// Contains reports whether the absolute cell (x, y) is inside the component.
func (b Base) Contains(x, y int) bool {
	lx, ly := b.Local(x, y)
	return lx >= 0 && ly >= 0 && lx < b.width && ly < b.height
}
