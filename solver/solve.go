package solver

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
)

// unsolvedDist is the incumbent's sentinel distance before any complete tour
// has been recorded: worse than every real tour, so the first complete tour
// always wins the strict-< acceptance test.
const unsolvedDist = math.MaxInt

// pathCheck decides whether the working partial path is worth extending.
//
// Rules, in order:
//  1. Paths of length 0 or 1 are trivially valid.
//  2. The most recently pushed city must not appear earlier in the path
//     (permutation constraint: each city visited at most once before the
//     tour closes).
//  3. With pruning enabled, a partial distance that already reaches the
//     incumbent's total cannot lead to a strictly better tour — the partial
//     sum is monotonically non-decreasing because distances are non-negative,
//     so the branch is abandoned without loss of optimality.
//
// Complexity: O(len) for the duplicate scan.
func pathCheck(cur, sol *Path, optimize bool) bool {
	n := cur.Len()
	if n <= 1 {
		return true
	}

	last := cur.seq[n-1]
	for i := 0; i < n-1; i++ {
		if cur.seq[i] == last {
			return false
		}
	}

	if optimize && cur.dist >= sol.dist {
		return false
	}

	return true
}

// engine carries the per-solve search state so the recursion signature stays
// flat and allocation-free.
type engine struct {
	size  int
	start int
	opts  Options
	trace io.Writer

	cur *Path // working partial tour, mutated by push/pop
	sol *Path // best complete tour found so far

	explored uint64 // complete tours examined

	ctx context.Context // cooperative cancellation, polled per call
}

// run is the depth-first branch step.
//
// Invariants on entry: cur holds a valid partial path of length ≥ 1 starting
// at e.start, and sol holds the incumbent (or the unsolved sentinel).
// Branching is in ascending city index, which fixes the deterministic
// first-found-wins tie order.
func (e *engine) run() error {
	// Cancellation poll. Context.Background never fires, so an uncancellable
	// solve takes this branch for free.
	if err := e.ctx.Err(); err != nil {
		return err
	}

	// Normal terminator: the caller frame already recorded this completed
	// tour; nothing left to extend.
	if e.cur.Len() == e.size {
		return nil
	}

	if e.opts.Debug {
		fmt.Fprintln(e.trace, e.cur)
	}

	for city := 0; city < e.size; city++ {
		e.cur.Push(city)
		if pathCheck(e.cur, e.sol, e.opts.Optimize) {
			if e.cur.Len() == e.size {
				// All cities placed: append the return edge, judge the
				// closed tour, then undo the closure and keep backtracking.
				e.cur.Push(e.start)
				if e.cur.dist < e.sol.dist {
					e.sol.CopyFrom(e.cur)
				}
				if e.opts.Verbose {
					fmt.Fprintln(e.trace, e.cur)
				}
				e.explored++
				e.cur.Pop()
			}
			if err := e.run(); err != nil {
				return err
			}
		}
		e.cur.Pop()
	}

	return nil
}

// Solve runs the exhaustive (optionally pruned) search for p and returns the
// optimal tour plus the completed-tour count. The search is single-threaded
// and synchronous; see SolveContext for a cancellable variant.
func Solve(p *Problem) (Result, error) {
	return SolveContext(context.Background(), p)
}

// SolveContext is Solve with cooperative cancellation: ctx.Err is polled at
// the top of each recursive call, which never alters the search order or the
// result — only whether the search runs to completion. A nil ctx behaves like
// context.Background.
//
// Complexity: O((n-1)!) complete tours without pruning; typically far fewer
// with Options.Optimize.
func SolveContext(ctx context.Context, p *Problem) (Result, error) {
	if p == nil {
		return Result{}, ErrNilMatrix
	}
	if ctx == nil {
		ctx = context.Background()
	}

	// Both paths get room for the closing return-to-start edge.
	cur, err := NewPath(p.m, p.Size()+1)
	if err != nil {
		return Result{}, err
	}
	sol, err := NewPath(p.m, p.Size()+1)
	if err != nil {
		return Result{}, err
	}
	sol.dist = unsolvedDist

	e := engine{
		size:  p.Size(),
		start: p.start,
		opts:  p.opts,
		trace: p.opts.Trace,
		cur:   cur,
		sol:   sol,
		ctx:   ctx,
	}
	if e.trace == nil {
		e.trace = os.Stdout
	}

	e.cur.Push(p.start)
	if err = e.run(); err != nil {
		return Result{}, err
	}

	return Result{Tour: e.sol, Explored: e.explored}, nil
}

// Factorial returns n! as a uint64. Exact up to n == 20, far past any search
// a caller could actually finish; used for the "explored over (n-1)!" report.
func Factorial(n int) uint64 {
	var out uint64 = 1
	for i := 2; i <= n; i++ {
		out *= uint64(i)
	}

	return out
}
