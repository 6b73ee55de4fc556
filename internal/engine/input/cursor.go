package input

// Cursor tracks the pointer position, the press state of the drag button and
// the delta of the most recent move.
type Cursor struct {
	x, y        float64
	deltaX      float64
	deltaY      float64
	pressed     bool
	hasPosition bool
}

// NewCursor creates a cursor with no known position.
func NewCursor() *Cursor {
	return &Cursor{}
}

// MoveTo records a new pointer position. The delta is last - new; the first
// move after creation yields a zero delta.
func (c *Cursor) MoveTo(x, y float64) {
	if c.hasPosition {
		c.deltaX = c.x - x
		c.deltaY = c.y - y
	} else {
		c.deltaX, c.deltaY = 0, 0
		c.hasPosition = true
	}
	c.x, c.y = x, y
}

// Delta returns the delta computed by the last MoveTo.
func (c *Cursor) Delta() (dx, dy float64) {
	return c.deltaX, c.deltaY
}

// Position returns the last known position.
func (c *Cursor) Position() (x, y float64) {
	return c.x, c.y
}

// Press marks the drag button as held.
func (c *Cursor) Press() {
	c.pressed = true
}

// Release marks the drag button as released.
func (c *Cursor) Release() {
	c.pressed = false
}

// Pressed reports whether the drag button is held.
func (c *Cursor) Pressed() bool {
	return c.pressed
}
