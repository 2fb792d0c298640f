// Package distmat provides the dense distance-matrix model consumed by the
// TSP solver.
//
// A Matrix is a flat size×size table of non-negative integer distances between
// city indices. Matrices are symmetric with a zero diagonal and are produced
// either by seeded random generation (Random) or by loading a whitespace-
// delimited text file (Load / Read). Once built, a Matrix is read-only for the
// duration of a solve and may be shared across sequential solves.
//
// Design principles:
//   - Flat []int storage with a[i*size+j] access; no interface indirection in
//     hot loops.
//   - Deterministic generation: an explicitly seeded *rand.Rand per call; no
//     process-global random state.
//   - Strict sentinels: malformed input yields errors from errors.go, never a
//     panic.
//
// City indices render as letters 'A'+i, which confines pretty-printing (not
// solving) to size ≤ 26.
package distmat
