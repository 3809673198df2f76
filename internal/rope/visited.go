package rope

import "sort"

// VisitedSet collects the distinct cells a segment has occupied.
type VisitedSet struct {
	m map[Position]struct{}
}

// NewVisitedSet returns a set already holding the origin.
func NewVisitedSet() *VisitedSet {
	return &VisitedSet{m: map[Position]struct{}{Origin: {}}}
}

func (s *VisitedSet) Insert(p Position) {
	s.m[p] = struct{}{}
}

func (s *VisitedSet) Contains(p Position) bool {
	_, ok := s.m[p]
	return ok
}

func (s *VisitedSet) Len() int {
	return len(s.m)
}

// Sorted returns the visited cells ordered by Position.Less.
func (s *VisitedSet) Sorted() []Position {
	out := make([]Position, 0, len(s.m))
	for p := range s.m {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// Bounds returns the smallest box containing every visited cell.
func (s *VisitedSet) Bounds() (lo, hi Position) {
	first := true
	for p := range s.m {
		if first {
			lo, hi = p, p
			first = false
			continue
		}
		lo.X, lo.Y = min(lo.X, p.X), min(lo.Y, p.Y)
		hi.X, hi.Y = max(hi.X, p.X), max(hi.Y, p.Y)
	}
	return lo, hi
}
