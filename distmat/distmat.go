package distmat

import (
	"fmt"
	"strings"
)

// Matrix is a dense, symmetric table of non-negative integer distances over
// city indices [0..size). Storage is a flat buffer indexed i*size+j, the same
// layout the solver's hot loop reads through At.
//
// A Matrix is never mutated by the solver; Set exists for construction and
// tests only.
type Matrix struct {
	size  int
	cells []int
}

// New returns a zeroed size×size matrix.
//
// Contract: size ≥ 2, otherwise ErrBadSize.
func New(size int) (*Matrix, error) {
	if size < 2 {
		return nil, ErrBadSize
	}

	return &Matrix{size: size, cells: make([]int, size*size)}, nil
}

// NewFromRows builds a matrix from explicit rows after full validation.
//
// Validation stages:
//  1. Shape: square, size ≥ 2.
//  2. Values: every entry non-negative.
//  3. Symmetry: rows[i][j] == rows[j][i] for the upper triangle.
//
// Complexity: O(n²).
func NewFromRows(rows [][]int) (*Matrix, error) {
	// Stage 1: shape.
	n := len(rows)
	if n < 2 {
		return nil, ErrBadSize
	}
	var i, j int
	for i = 0; i < n; i++ {
		if len(rows[i]) != n {
			return nil, ErrNonSquare
		}
	}

	// Stage 2: values.
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if rows[i][j] < 0 {
				return nil, ErrNegativeDistance
			}
		}
	}

	// Stage 3: symmetry (upper triangle only, avoids double work).
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if rows[i][j] != rows[j][i] {
				return nil, ErrAsymmetry
			}
		}
	}

	m := &Matrix{size: n, cells: make([]int, n*n)}
	for i = 0; i < n; i++ {
		copy(m.cells[i*n:(i+1)*n], rows[i])
	}

	return m, nil
}

// Size returns the matrix order (the number of cities).
func (m *Matrix) Size() int { return m.size }

// At returns the distance from city i to city j.
//
// Contract: i and j lie in [0..size). Range violations are programmer errors
// and panic via the underlying slice access.
//
// Complexity: O(1).
func (m *Matrix) At(i, j int) int { return m.cells[i*m.size+j] }

// Set writes the distance between i and j, mirroring the entry to keep the
// matrix symmetric.
//
// Contract: i, j in [0..size), d ≥ 0 (not re-checked here).
func (m *Matrix) Set(i, j, d int) {
	m.cells[i*m.size+j] = d
	m.cells[j*m.size+i] = d
}

// Clone returns an independent deep copy of m.
func (m *Matrix) Clone() *Matrix {
	out := &Matrix{size: m.size, cells: make([]int, len(m.cells))}
	copy(out.cells, m.cells)

	return out
}

// CityName renders city index i as its display letter ('A'+i).
// Only meaningful for i < 26; the solver itself imposes no such bound.
func CityName(i int) string { return string(rune('A' + i)) }

// String pretty-prints the matrix with letter-labeled rows and columns:
//
//	     A  B  C
//	  ------------
//	A |  0  2  4 |
//	B |  2  0  3 |
//	C |  4  3  0 |
//	  ------------
func (m *Matrix) String() string {
	var (
		sb strings.Builder
		i  int
		j  int
	)

	// Header row of city letters.
	sb.WriteString("    ")
	for j = 0; j < m.size; j++ {
		fmt.Fprintf(&sb, " %s ", CityName(j))
	}
	sb.WriteString("\n")

	// Top separator.
	sb.WriteString("  --")
	for j = 0; j < m.size; j++ {
		sb.WriteString("---")
	}
	sb.WriteString("-\n")

	// One labeled row per city.
	for i = 0; i < m.size; i++ {
		fmt.Fprintf(&sb, "%s | ", CityName(i))
		for j = 0; j < m.size; j++ {
			fmt.Fprintf(&sb, "%2d ", m.At(i, j))
		}
		sb.WriteString("|\n")
	}

	// Bottom separator.
	sb.WriteString("  --")
	for j = 0; j < m.size; j++ {
		sb.WriteString("---")
	}
	sb.WriteString("-\n")

	return sb.String()
}
