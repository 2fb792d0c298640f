// Package solver computes exact solutions to the symmetric Traveling Salesman
// Problem on a distmat.Matrix by depth-first backtracking, with optional
// branch-and-bound pruning against the best tour found so far.
//
// The search explores extensions of a working Path city by city in ascending
// index order, so results are fully deterministic: on equal total distance the
// first tour found is kept. With pruning disabled the recursion enumerates all
// (n-1)! Hamiltonian cycles anchored at the start city; with pruning enabled a
// partial path whose distance already reaches the incumbent's is cut, which is
// sound because distances are non-negative and the partial sum only grows.
//
// Design principles:
//   - Fail-fast validation at construction (NewProblem, NewPath); no defensive
//     checks inside the hot recursion.
//   - Strict sentinels: all user-input failures map to errors from types.go.
//   - No logging: verbose/debug traces are data written to an injected
//     io.Writer and never affect the search outcome.
//   - Single-threaded, synchronous search; SolveContext adds cooperative
//     cancellation without changing search order or results.
//
// Typical use:
//
//	m, _ := distmat.Random(8, 42, 10)
//	p, err := solver.NewProblem(m, 0, solver.Options{Optimize: true})
//	if err != nil { ... }
//	res, err := solver.Solve(p)
//	fmt.Println(res.Tour, res.Explored)
package solver
