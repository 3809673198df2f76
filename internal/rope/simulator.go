package rope

import (
	"errors"
	"fmt"
)

var (
	ErrChainLength = errors.New("chain length must be at least 1")
	ErrNotDone     = errors.New("simulation still running")
	ErrDone        = errors.New("simulation already finished")
)

// State of a Simulator. Done is terminal.
type State int

const (
	Running State = iota
	Done
)

func (s State) String() string {
	if s == Done {
		return "done"
	}
	return "running"
}

// Observer is called after every unit step with the number of unit steps
// taken so far and the chain after propagation. It must not keep c.
type Observer func(step int, c *Chain)

// Simulator replays move commands against one chain and records every
// cell its tail visits.
type Simulator struct {
	chain    *Chain
	visited  *VisitedSet
	state    State
	steps    int
	observer Observer
}

func NewSimulator(n int) (*Simulator, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrChainLength, n)
	}
	return &Simulator{chain: NewChain(n), visited: NewVisitedSet()}, nil
}

// Observe installs fn as the per-step observer, replacing any previous one.
func (s *Simulator) Observe(fn Observer) {
	s.observer = fn
}

// Apply runs cmd one unit step at a time.
func (s *Simulator) Apply(cmd MoveCommand) error {
	if s.state == Done {
		return ErrDone
	}
	s.apply(cmd)
	return nil
}

func (s *Simulator) apply(cmd MoveCommand) {
	for i := 0; i < cmd.Steps; i++ {
		s.visited.Insert(s.chain.Step(cmd.Dir))
		s.steps++
		if s.observer != nil {
			s.observer(s.steps, s.chain)
		}
	}
}

// Finish moves the simulator to Done.
func (s *Simulator) Finish() {
	s.state = Done
}

func (s *Simulator) State() State { return s.state }

// Steps is the number of unit steps applied so far.
func (s *Simulator) Steps() int { return s.steps }

func (s *Simulator) Chain() *Chain { return s.chain }

func (s *Simulator) VisitedSet() *VisitedSet { return s.visited }

// Visited returns the number of distinct tail cells. It is only readable
// once the simulator is Done.
func (s *Simulator) Visited() (int, error) {
	if s.state != Done {
		return 0, ErrNotDone
	}
	return s.visited.Len(), nil
}

// Run simulates a fresh chain of n segments over commands and returns
// how many distinct cells its tail visited. It panics if n < 1.
func Run(commands []MoveCommand, n int) int {
	sim, err := NewSimulator(n)
	if err != nil {
		panic(err)
	}
	for _, cmd := range commands {
		sim.apply(cmd)
	}
	sim.Finish()
	return sim.visited.Len()
}
