// Package display draws a rope and the cells its tail has visited.
package display

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"ropetrack/internal/rope"
)

// Glyph returns the marker drawn for segment i of an n-segment chain:
// H for the head, T for the tail and the index for everything between.
func Glyph(i, n int) byte {
	switch {
	case i == 0:
		return 'H'
	case i == n-1:
		return 'T'
	}
	return byte('0' + i%10)
}

// Grid lays out chain and visited as rows, top row first. Earlier segments
// hide later ones; s marks the origin and # a visited cell.
func Grid(c *rope.Chain, visited *rope.VisitedSet) []string {
	lo, hi := visited.Bounds()
	for _, p := range c.Segments() {
		lo.X, lo.Y = min(lo.X, p.X), min(lo.Y, p.Y)
		hi.X, hi.Y = max(hi.X, p.X), max(hi.Y, p.Y)
	}
	w := hi.X - lo.X + 1
	rows := make([][]byte, hi.Y-lo.Y+1)
	for i := range rows {
		rows[i] = []byte(strings.Repeat(".", w))
	}
	set := func(p rope.Position, b byte) {
		rows[hi.Y-p.Y][p.X-lo.X] = b
	}
	for _, p := range visited.Sorted() {
		set(p, '#')
	}
	set(rope.Origin, 's')
	for i := c.Len() - 1; i >= 0; i-- {
		set(c.Segment(i), Glyph(i, c.Len()))
	}
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = string(r)
	}
	return out
}

// Styles colour the glyphs of a frame.
type Styles struct {
	Head    lipgloss.Style
	Segment lipgloss.Style
	Visited lipgloss.Style
	Empty   lipgloss.Style
	Frame   lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Head:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		Segment: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Visited: lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		Empty:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Frame:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	}
}

func (s Styles) cell(b byte) string {
	g := string(b)
	switch b {
	case 'H':
		return s.Head.Render(g)
	case '#', 's':
		return s.Visited.Render(g)
	case '.':
		return s.Empty.Render(g)
	}
	return s.Segment.Render(g)
}

// RenderFrame renders one boxed snapshot with a caption.
func (s Styles) RenderFrame(caption string, rows []string) string {
	var b strings.Builder
	for i, r := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		for j := 0; j < len(r); j++ {
			b.WriteString(s.cell(r[j]))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, caption, s.Frame.Render(b.String()))
}

// Tracer redraws the rope after every unit step. Its Observe method is
// meant to be installed with rope.Simulator.Observe.
type Tracer struct {
	W       io.Writer
	Delay   time.Duration
	Styles  Styles
	Visited *rope.VisitedSet
	Clear   bool
}

func NewTracer(w io.Writer, sim *rope.Simulator, delay time.Duration) *Tracer {
	return &Tracer{W: w, Delay: delay, Styles: DefaultStyles(), Visited: sim.VisitedSet(), Clear: true}
}

func (t *Tracer) Observe(step int, c *rope.Chain) {
	if t.Clear {
		fmt.Fprint(t.W, "\033[H\033[2J")
	}
	caption := fmt.Sprintf("step %d  segments %d  tail %v  visited %d", step, c.Len(), c.Tail(), t.Visited.Len())
	fmt.Fprintln(t.W, t.Styles.RenderFrame(caption, Grid(c, t.Visited)))
	if t.Delay > 0 {
		time.Sleep(t.Delay)
	}
}
