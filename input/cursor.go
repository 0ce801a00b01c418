package input

// Cursor tracks the highlighted answer for arrow-key navigation, wrapping at both ends
type Cursor struct {
	pos int
}

// Pos returns the highlighted slot
func (c *Cursor) Pos() int { return c.pos }

// Move shifts the cursor by delta within n slots
func (c *Cursor) Move(delta, n int) {
	if n <= 0 {
		c.pos = 0
		return
	}
	c.pos = ((c.pos+delta)%n + n) % n
}

// Set jumps to slot i, clamped to n slots
func (c *Cursor) Set(i, n int) {
	c.pos = max(0, min(i, n-1))
}

// Reset returns to the first slot
func (c *Cursor) Reset() { c.pos = 0 }
