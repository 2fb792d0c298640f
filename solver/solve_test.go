// Package solver_test validates the exact search engine: pinned tiny
// scenarios, brute-force cross-checks, pruned/unpruned equivalence, the
// completed-tour counter, deterministic tie-breaking, tracing output, and
// cooperative cancellation.
package solver_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orel33/tsp/distmat"
	"github.com/orel33/tsp/solver"
)

// ringMatrix is the 4-city ring from the specification scenarios: cheap edges
// around the ring (A-B, B-C, C-D at 1) and expensive chords/closure (9).
func ringMatrix(t *testing.T) *distmat.Matrix {
	t.Helper()

	return mustMatrix(t, [][]int{
		{0, 1, 9, 9},
		{1, 0, 1, 9},
		{9, 1, 0, 1},
		{9, 9, 1, 0},
	})
}

// bruteForce enumerates every permutation of the non-start cities and returns
// the minimum closed-tour distance, the first tour attaining it (ascending
// lexicographic generation order, matching the solver's tie rule), and the
// total number of tours.
func bruteForce(m *distmat.Matrix, start int) (best int, bestTour []int, tours uint64) {
	n := m.Size()
	rest := make([]int, 0, n-1)
	for c := 0; c < n; c++ {
		if c != start {
			rest = append(rest, c)
		}
	}

	best = -1
	perm := make([]int, 0, n-1)
	used := make([]bool, n)

	var walk func()
	walk = func() {
		if len(perm) == len(rest) {
			tours++
			dist := 0
			prev := start
			for _, c := range perm {
				dist += m.At(prev, c)
				prev = c
			}
			dist += m.At(prev, start)
			if best < 0 || dist < best {
				best = dist
				bestTour = append([]int{start}, perm...)
				bestTour = append(bestTour, start)
			}

			return
		}
		for _, c := range rest {
			if used[c] {
				continue
			}
			used[c] = true
			perm = append(perm, c)
			walk()
			perm = perm[:len(perm)-1]
			used[c] = false
		}
	}
	walk()

	return best, bestTour, tours
}

// solve is a small wrapper building a Problem and running the search.
func solve(t *testing.T, m *distmat.Matrix, start int, opts solver.Options) solver.Result {
	t.Helper()
	p, err := solver.NewProblem(m, start, opts)
	require.NoError(t, err)
	res, err := solver.Solve(p)
	require.NoError(t, err)

	return res
}

func TestNewProblem_Validation(t *testing.T) {
	m := ringMatrix(t)

	_, err := solver.NewProblem(nil, 0, solver.Options{})
	assert.ErrorIs(t, err, solver.ErrNilMatrix)

	_, err = solver.NewProblem(m, -1, solver.Options{})
	assert.ErrorIs(t, err, solver.ErrStartOutOfRange)

	// Start city == size must be rejected before any search begins.
	_, err = solver.NewProblem(m, m.Size(), solver.Options{})
	assert.ErrorIs(t, err, solver.ErrStartOutOfRange)

	p, err := solver.NewProblem(m, 2, solver.Options{Optimize: true})
	require.NoError(t, err)
	assert.Equal(t, 4, p.Size())
	assert.Equal(t, 2, p.Start())
	assert.True(t, p.Options().Optimize)
}

func TestSolve_TwoCities(t *testing.T) {
	m := mustMatrix(t, [][]int{
		{0, 5},
		{5, 0},
	})

	res := solve(t, m, 0, solver.Options{})
	assert.Equal(t, uint64(1), res.Explored)
	assert.Equal(t, 10, res.Tour.Dist())
	assert.Equal(t, []int{0, 1, 0}, res.Tour.Cities())
}

func TestSolve_RingPinnedByBruteForce(t *testing.T) {
	m := ringMatrix(t)

	want, wantTour, tours := bruteForce(m, 0)
	require.Equal(t, 12, want) // ring traversal: 1+1+1+9
	require.Equal(t, []int{0, 1, 2, 3, 0}, wantTour)
	require.Equal(t, uint64(6), tours)

	res := solve(t, m, 0, solver.Options{})
	assert.Equal(t, want, res.Tour.Dist())
	assert.Equal(t, wantTour, res.Tour.Cities())
	assert.Equal(t, tours, res.Explored)
}

func TestSolve_MatchesBruteForceOnRandomInstances(t *testing.T) {
	// Cross-check the optimum over all permutations for every size the brute
	// force can afford, from several start cities.
	for size := 2; size <= 7; size++ {
		for _, seed := range []int64{1, 7, 42} {
			m, err := distmat.Random(size, seed, 10)
			require.NoError(t, err)
			start := int(seed) % size

			want, wantTour, _ := bruteForce(m, start)
			res := solve(t, m, start, solver.Options{})
			assert.Equalf(t, want, res.Tour.Dist(), "size=%d seed=%d", size, seed)
			assert.Equalf(t, wantTour, res.Tour.Cities(), "size=%d seed=%d", size, seed)
		}
	}
}

func TestSolve_PrunedMatchesUnpruned(t *testing.T) {
	for size := 4; size <= 7; size++ {
		for _, seed := range []int64{3, 11} {
			m, err := distmat.Random(size, seed, 10)
			require.NoError(t, err)

			plain := solve(t, m, 0, solver.Options{})
			pruned := solve(t, m, 0, solver.Options{Optimize: true})

			// Same optimum, same first-found tour, never more work.
			assert.Equal(t, plain.Tour.Dist(), pruned.Tour.Dist())
			assert.Equal(t, plain.Tour.Cities(), pruned.Tour.Cities())
			assert.LessOrEqual(t, pruned.Explored, plain.Explored)

			// Unpruned enumeration is exhaustive: (size-1)! anchored cycles.
			assert.Equal(t, solver.Factorial(size-1), plain.Explored)
		}
	}
}

func TestSolve_FirstFoundWinsOnTies(t *testing.T) {
	// Every tour over a uniform matrix has the same distance, so the strict-<
	// acceptance must keep the very first tour: the ascending-index ring.
	m := mustMatrix(t, [][]int{
		{0, 1, 1, 1},
		{1, 0, 1, 1},
		{1, 1, 0, 1},
		{1, 1, 1, 0},
	})

	for _, optimize := range []bool{false, true} {
		res := solve(t, m, 0, solver.Options{Optimize: optimize})
		assert.Equal(t, 4, res.Tour.Dist())
		assert.Equal(t, []int{0, 1, 2, 3, 0}, res.Tour.Cities())
	}
}

func TestSolve_NonZeroStartCity(t *testing.T) {
	m := ringMatrix(t)

	want, wantTour, _ := bruteForce(m, 2)
	res := solve(t, m, 2, solver.Options{Optimize: true})
	assert.Equal(t, want, res.Tour.Dist())
	assert.Equal(t, wantTour, res.Tour.Cities())
}

func TestSolve_VerboseReportsEveryCompleteTour(t *testing.T) {
	m := triangle(t)

	var buf bytes.Buffer
	res := solve(t, m, 0, solver.Options{Verbose: true, Trace: &buf})

	// 3 cities anchored at A: exactly (3-1)! = 2 complete tours, one trace
	// line each, both closing back at A with the same symmetric distance.
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, int(res.Explored))
	assert.Equal(t, "[ A B C A ] => (6)", lines[0])
	assert.Equal(t, "[ A C B A ] => (6)", lines[1])
}

func TestSolve_DebugTracesPartialPaths(t *testing.T) {
	m := triangle(t)

	var buf bytes.Buffer
	solve(t, m, 0, solver.Options{Debug: true, Trace: &buf})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.NotEmpty(t, lines)
	// The first trace is the seeded working path, before any extension.
	assert.Equal(t, "[ A - - - ] => (0)", lines[0])
}

func TestSolve_TraceOutputDoesNotChangeResult(t *testing.T) {
	m, err := distmat.Random(6, 5, 10)
	require.NoError(t, err)

	var buf bytes.Buffer
	quiet := solve(t, m, 0, solver.Options{Optimize: true})
	noisy := solve(t, m, 0, solver.Options{Optimize: true, Verbose: true, Debug: true, Trace: &buf})

	assert.Equal(t, quiet.Tour.Dist(), noisy.Tour.Dist())
	assert.Equal(t, quiet.Tour.Cities(), noisy.Tour.Cities())
	assert.Equal(t, quiet.Explored, noisy.Explored)
	assert.NotZero(t, buf.Len())
}

func TestSolveContext_CancellationStopsSearch(t *testing.T) {
	m, err := distmat.Random(9, 21, 10)
	require.NoError(t, err)
	p, err := solver.NewProblem(m, 0, solver.Options{})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // already expired: the very first poll must bail out

	_, err = solver.SolveContext(ctx, p)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSolveContext_NilContextBehavesLikeBackground(t *testing.T) {
	m := ringMatrix(t)
	p, err := solver.NewProblem(m, 0, solver.Options{})
	require.NoError(t, err)

	res, err := solver.SolveContext(nil, p) //nolint:staticcheck // nil contract under test
	require.NoError(t, err)
	assert.Equal(t, 12, res.Tour.Dist())
}

func TestFactorial(t *testing.T) {
	assert.Equal(t, uint64(1), solver.Factorial(0))
	assert.Equal(t, uint64(1), solver.Factorial(1))
	assert.Equal(t, uint64(6), solver.Factorial(3))
	assert.Equal(t, uint64(3628800), solver.Factorial(10))
}
