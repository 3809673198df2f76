package rope

// Chain is a rope of linked segments; index 0 is the head and the last
// index is the tail. Adjacent segments are never more than one cell apart
// (Chebyshev) once Step returns.
type Chain struct {
	segs []Position
}

// NewChain returns a chain of n segments stacked on the origin.
// It panics if n < 1.
func NewChain(n int) *Chain {
	if n < 1 {
		panic("rope: chain length must be at least 1")
	}
	return &Chain{segs: make([]Position, n)}
}

func (c *Chain) Len() int { return len(c.segs) }

func (c *Chain) Head() Position { return c.segs[0] }

func (c *Chain) Tail() Position { return c.segs[len(c.segs)-1] }

// Segment returns the position of segment i.
func (c *Chain) Segment(i int) Position { return c.segs[i] }

// Segments returns a copy of all segment positions, head first.
func (c *Chain) Segments() []Position {
	return append([]Position(nil), c.segs...)
}

// Reset puts every segment back on the origin.
func (c *Chain) Reset() {
	for i := range c.segs {
		c.segs[i] = Origin
	}
}

// Step moves the head one cell in dir and pulls every following segment
// after it, in order, each against the already moved segment in front.
// It returns the new tail position.
func (c *Chain) Step(dir Direction) Position {
	c.segs[0] = c.segs[0].Add(dir.Delta())
	for i := 1; i < len(c.segs); i++ {
		if !c.pull(i) {
			// a segment that stays put cannot drag the ones behind it
			break
		}
	}
	return c.Tail()
}

// pull moves segment i one straight or diagonal step toward segment i-1
// when they are no longer touching, and reports whether it moved.
func (c *Chain) pull(i int) bool {
	d := c.segs[i-1].Sub(c.segs[i])
	if abs(d.X) <= 1 && abs(d.Y) <= 1 {
		return false
	}
	c.segs[i] = c.segs[i].Add(Position{X: sign(d.X), Y: sign(d.Y)})
	return true
}

// Linked reports whether every adjacent pair is touching or overlapping.
func (c *Chain) Linked() bool {
	for i := 1; i < len(c.segs); i++ {
		if c.segs[i].Chebyshev(c.segs[i-1]) > 1 {
			return false
		}
	}
	return true
}
