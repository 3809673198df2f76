package rope

import "fmt"

// Direction is one of the four cardinal moves of the head.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

var deltas = [...]Position{
	Left:  {X: -1},
	Right: {X: 1},
	Up:    {Y: 1},
	Down:  {Y: -1},
}

// ParseDirection maps the input letters L, R, U and D to a Direction.
func ParseDirection(r rune) (Direction, bool) {
	switch r {
	case 'L':
		return Left, true
	case 'R':
		return Right, true
	case 'U':
		return Up, true
	case 'D':
		return Down, true
	}
	return 0, false
}

// Delta is the unit vector of d.
func (d Direction) Delta() Position {
	return deltas[d]
}

func (d Direction) Opposite() Direction {
	switch d {
	case Left:
		return Right
	case Right:
		return Left
	case Up:
		return Down
	}
	return Up
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "L"
	case Right:
		return "R"
	case Up:
		return "U"
	case Down:
		return "D"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// MoveCommand moves the head Steps cells in Dir. Steps is always positive.
type MoveCommand struct {
	Dir   Direction
	Steps int
}

func (c MoveCommand) String() string {
	return fmt.Sprintf("%s %d", c.Dir, c.Steps)
}
