package solver

import (
	"errors"
	"io"
)

var (
	// ErrNilMatrix is returned when a Problem or Path is built without a
	// distance matrix.
	ErrNilMatrix = errors.New("solver: nil distance matrix")

	// ErrStartOutOfRange is returned when the starting city does not lie in
	// [0..size).
	ErrStartOutOfRange = errors.New("solver: start city out of range")

	// ErrZeroCapacity is returned when a Path is created with no room for
	// any city.
	ErrZeroCapacity = errors.New("solver: path capacity must be positive")
)

// Options selects the solver's reporting and pruning behavior. The zero value
// is a silent brute-force search.
type Options struct {
	// Verbose prints every complete valid tour found (accepted or not).
	Verbose bool

	// Debug prints the working partial path at the top of each recursive
	// call. Purely diagnostic: it never affects search order or outcome.
	Debug bool

	// Optimize enables branch-and-bound pruning: a partial path whose
	// distance already reaches the incumbent's total is abandoned. The
	// optimum found is unchanged; only the number of branches visited drops.
	Optimize bool

	// Trace receives Verbose/Debug output. Nil defaults to os.Stdout.
	Trace io.Writer
}

// Result is the outcome of one solve: the best closed tour and the number of
// complete tours examined during the search.
type Result struct {
	// Tour is the optimal closed path: start city, every other city exactly
	// once, start city again. Ownership transfers to the caller.
	Tour *Path

	// Explored counts complete tours examined. Without pruning it equals
	// (size-1)! exactly; with pruning it is at most that.
	Explored uint64
}
