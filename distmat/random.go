package distmat

import "math/rand"

// Random generates a symmetric size×size matrix with distances drawn uniformly
// from [1, distmax] and a zero diagonal.
//
// The generator is a locally scoped *rand.Rand seeded from the argument, so
// identical (size, seed, distmax) triples reproduce the same matrix on every
// platform and no process-global random state is touched.
//
// Contract: size ≥ 2 (ErrBadSize), distmax ≥ 1 (ErrBadDistMax).
//
// Complexity: O(n²) time and space.
func Random(size int, seed int64, distmax int) (*Matrix, error) {
	if size < 2 {
		return nil, ErrBadSize
	}
	if distmax < 1 {
		return nil, ErrBadDistMax
	}

	m := &Matrix{size: size, cells: make([]int, size*size)}

	// Fill the strict lower triangle and mirror each draw, leaving the
	// diagonal at zero. The draw order (row-major over j < i) is part of the
	// reproducibility contract: changing it would change every seeded matrix.
	var (
		rng  = rand.New(rand.NewSource(seed))
		i, j int
	)
	for i = 0; i < size; i++ {
		for j = 0; j < i; j++ {
			m.Set(i, j, rng.Intn(distmax)+1)
		}
	}

	return m, nil
}
