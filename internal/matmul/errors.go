// Package matmul implements the high-level parallel_mult/parallel_square
// entry points: it builds tiles, wires the torus, spawns one worker per
// grid cell running a chosen Kernel, and reassembles the result matrix.
package matmul

import "errors"

var (
	// ErrDimensionMismatch is returned by ParallelMult when A.Cols() !=
	// B.Rows().
	ErrDimensionMismatch = errors.New("meshsim: A.cols != B.rows")
	// ErrNonSquareGrid is returned by New when the chosen kernel requires
	// R == C and the caller did not provide a square grid.
	ErrNonSquareGrid = errors.New("meshsim: kernel requires R == C")
	// ErrEmptyGrid is returned by New when R or C is less than 1.
	ErrEmptyGrid = errors.New("meshsim: grid must have R,C >= 1")
	// ErrNotSquareMatrix is returned by ParallelSquare when A is not
	// square.
	ErrNotSquareMatrix = errors.New("meshsim: parallel_square requires a square matrix")
)
