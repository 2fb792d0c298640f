package solver

import (
	"fmt"
	"strings"

	"github.com/orel33/tsp/distmat"
)

// Path is an ordered sequence of city indices with an incrementally maintained
// total distance over a borrowed matrix. It is the solver's working state (a
// stack grown and shrunk at the tail) and its result container (a snapshot of
// the best complete tour).
//
// The distance invariant holds after every mutation: dist equals the sum of
// m.At(seq[i], seq[i+1]) over consecutive entries. Push adds the new trailing
// edge and Pop subtracts it, which is equivalent to a full recompute because
// the sequence only ever changes at the tail.
type Path struct {
	m    *distmat.Matrix
	seq  []int // len(seq) is the current length; cap(seq) the fixed maximum
	dist int
}

// NewPath allocates an empty path over m with room for capacity cities.
// The matrix is borrowed, never copied or mutated.
func NewPath(m *distmat.Matrix, capacity int) (*Path, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if capacity <= 0 {
		return nil, ErrZeroCapacity
	}

	return &Path{m: m, seq: make([]int, 0, capacity)}, nil
}

// Len returns the number of cities currently on the path.
func (p *Path) Len() int { return len(p.seq) }

// Cap returns the fixed maximum length set at creation.
func (p *Path) Cap() int { return cap(p.seq) }

// Dist returns the maintained running distance. O(1).
func (p *Path) Dist() int { return p.dist }

// Last returns the most recently pushed city.
//
// Contract: the path is non-empty.
func (p *Path) Last() int { return p.seq[len(p.seq)-1] }

// Cities returns an independent copy of the current sequence.
func (p *Path) Cities() []int {
	out := make([]int, len(p.seq))
	copy(out, p.seq)

	return out
}

// Push appends city to the tail and extends the running distance by the new
// trailing edge.
//
// Contract: the path is not full and city lies in [0..size). Violations are
// programmer errors and panic; the solver establishes both invariants before
// entering the hot loop.
func (p *Path) Push(city int) {
	if len(p.seq) == cap(p.seq) {
		panic("solver: Push on a full path")
	}
	if city < 0 || city >= p.m.Size() {
		panic("solver: Push city out of range")
	}
	if len(p.seq) > 0 {
		p.dist += p.m.At(p.seq[len(p.seq)-1], city)
	}
	p.seq = append(p.seq, city)
}

// Pop removes and returns the tail city, shrinking the running distance by the
// removed trailing edge.
//
// Contract: the path is non-empty.
func (p *Path) Pop() int {
	n := len(p.seq)
	if n == 0 {
		panic("solver: Pop on an empty path")
	}
	last := p.seq[n-1]
	if n > 1 {
		p.dist -= p.m.At(p.seq[n-2], last)
	}
	p.seq = p.seq[:n-1]

	return last
}

// CopyFrom overwrites p's sequence and distance with a value snapshot of src,
// leaving src untouched. Used to record a newly accepted incumbent.
//
// Contract: p and src were created over the same matrix with the same
// capacity.
func (p *Path) CopyFrom(src *Path) {
	p.seq = p.seq[:len(src.seq)]
	copy(p.seq, src.seq)
	p.dist = src.dist
}

// String renders the path in the classic trace layout, with '-' placeholders
// for unused capacity: "[ A C B - - ] => (17)".
func (p *Path) String() string {
	var sb strings.Builder
	sb.WriteString("[ ")
	for _, c := range p.seq {
		sb.WriteString(distmat.CityName(c))
		sb.WriteByte(' ')
	}
	for i := len(p.seq); i < cap(p.seq); i++ {
		sb.WriteString("- ")
	}
	fmt.Fprintf(&sb, "] => (%d)", p.dist)

	return sb.String()
}
