package rope

import "fmt"

// Position is a cell on the unbounded grid. Y grows upward.
type Position struct {
	X, Y int
}

// Origin is where every chain starts.
var Origin = Position{}

func (p Position) Add(q Position) Position {
	return Position{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Position) Sub(q Position) Position {
	return Position{X: p.X - q.X, Y: p.Y - q.Y}
}

// Chebyshev returns max(|dx|, |dy|) between p and q.
func (p Position) Chebyshev(q Position) int {
	d := p.Sub(q)
	return max(abs(d.X), abs(d.Y))
}

// Less orders positions by X, then Y.
func (p Position) Less(q Position) bool {
	if p.X != q.X {
		return p.X < q.X
	}
	return p.Y < q.Y
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
