package distmat

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Text layout shared by Read/Write (and the Load/Save file wrappers):
// the first token is the matrix order n, followed by n*n non-negative
// integers in row-major order. Tokens are separated by any whitespace on
// input; Write emits the order on its own line then n space-separated rows.

// Read parses a text-encoded matrix from r.
//
// The result is validated like NewFromRows input: order ≥ 2, non-negative
// entries, symmetry. Truncated input or a non-integer token yields a
// ErrBadFormat-wrapped error.
//
// Complexity: O(n²).
func Read(r io.Reader) (*Matrix, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	// next returns the following whitespace-delimited integer token.
	next := func() (int, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return 0, err
			}

			return 0, fmt.Errorf("%w: unexpected end of input", ErrBadFormat)
		}
		v, err := strconv.Atoi(sc.Text())
		if err != nil {
			return 0, fmt.Errorf("%w: bad token %q", ErrBadFormat, sc.Text())
		}

		return v, nil
	}

	// Stage 1: order.
	size, err := next()
	if err != nil {
		return nil, err
	}
	if size < 2 {
		return nil, ErrBadSize
	}

	// Stage 2: n*n row-major values.
	rows := make([][]int, size)
	var i, j int
	for i = 0; i < size; i++ {
		rows[i] = make([]int, size)
		for j = 0; j < size; j++ {
			if rows[i][j], err = next(); err != nil {
				return nil, err
			}
		}
	}

	// Stage 3: full validation (negativity, symmetry).
	return NewFromRows(rows)
}

// Write emits m in the textual layout Read parses: the order on the first
// line, then one space-separated row per city. Read∘Write is the identity.
func Write(w io.Writer, m *Matrix) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n", m.size)

	var i, j int
	for i = 0; i < m.size; i++ {
		for j = 0; j < m.size; j++ {
			if j > 0 {
				bw.WriteByte(' ')
			}
			fmt.Fprintf(bw, "%d", m.At(i, j))
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// Load reads a matrix from the file at path.
func Load(path string) (*Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("distmat: load %s: %w", path, err)
	}
	defer f.Close()

	m, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("distmat: load %s: %w", path, err)
	}

	return m, nil
}

// Save writes a matrix to the file at path, creating or truncating it.
func Save(path string, m *Matrix) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("distmat: save %s: %w", path, err)
	}

	if err = Write(f, m); err != nil {
		f.Close()

		return fmt.Errorf("distmat: save %s: %w", path, err)
	}

	return f.Close()
}
