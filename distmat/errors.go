package distmat

import "errors"

var (
	// ErrBadSize is returned when a requested matrix order is below 2.
	// A TSP instance needs at least two cities.
	ErrBadSize = errors.New("distmat: size must be at least 2")

	// ErrNonSquare is returned when row-based input is not a square table.
	ErrNonSquare = errors.New("distmat: matrix is not square")

	// ErrNegativeDistance is returned when any entry is negative.
	ErrNegativeDistance = errors.New("distmat: negative distance")

	// ErrAsymmetry is returned when d[i][j] != d[j][i] for some pair.
	ErrAsymmetry = errors.New("distmat: matrix is not symmetric")

	// ErrBadDistMax is returned when random generation is asked for a
	// maximum distance below 1.
	ErrBadDistMax = errors.New("distmat: distmax must be at least 1")

	// ErrBadFormat is returned when a text-encoded matrix is truncated or
	// contains a token that is not a non-negative integer.
	ErrBadFormat = errors.New("distmat: malformed matrix file")
)
