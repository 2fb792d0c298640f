package solver

import "github.com/orel33/tsp/distmat"

// Problem is an immutable solve request: a city count, a starting city, a
// borrowed distance matrix, and the reporting/pruning options. The matrix is
// owned by the caller and is never mutated here.
type Problem struct {
	m     *distmat.Matrix
	start int
	opts  Options
}

// NewProblem validates and bundles one solve request.
//
// Validation stages:
//  1. The matrix must be present (its constructors already guarantee
//     size ≥ 2, symmetry and non-negative entries).
//  2. The start city must lie in [0..size).
//
// All violations are fatal configuration errors reported before any search
// begins; nothing is re-checked inside the recursion.
func NewProblem(m *distmat.Matrix, start int, opts Options) (*Problem, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if start < 0 || start >= m.Size() {
		return nil, ErrStartOutOfRange
	}

	return &Problem{m: m, start: start, opts: opts}, nil
}

// Size returns the number of cities.
func (p *Problem) Size() int { return p.m.Size() }

// Start returns the starting city index.
func (p *Problem) Start() int { return p.start }

// Matrix returns the borrowed distance matrix.
func (p *Problem) Matrix() *distmat.Matrix { return p.m }

// Options returns the solve options.
func (p *Problem) Options() Options { return p.opts }
