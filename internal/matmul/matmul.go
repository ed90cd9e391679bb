package matmul

import (
	"github.com/luxfi/log"

	"github.com/luxfi/meshsim/internal/core"
	"github.com/luxfi/meshsim/internal/kernel"
	"github.com/luxfi/meshsim/internal/matrix"
	"github.com/luxfi/meshsim/internal/network"
	"github.com/luxfi/meshsim/internal/processor"
	"github.com/luxfi/meshsim/internal/semiring"
	"github.com/luxfi/meshsim/internal/tile"
)

type cellResult[E any] struct {
	idx int
	c   *matrix.Matrix[E]
}

// MatMul is the non-instrumented matrix-multiplication/closure driver: an
// R x C grid of workers running a chosen Kernel over element family fam.
type MatMul[E any] struct {
	r, c int
	fam  semiring.Family[E]
	kern kernel.Kernel[E]
	log  log.Logger
}

// New validates the grid/kernel combination and returns a driver. Dimension
// mismatches are refused here, before any worker spawns, per the
// fail-before-spawn error policy.
func New[E any](r, c int, fam semiring.Family[E], kern kernel.Kernel[E], logger log.Logger) (*MatMul[E], error) {
	if r < 1 || c < 1 {
		return nil, ErrEmptyGrid
	}
	if kern.RequiresSquareGrid() && r != c {
		return nil, ErrNonSquareGrid
	}
	return &MatMul[E]{r: r, c: c, fam: fam, kern: kern, log: logger}, nil
}

// ParallelMult computes C = A (x) B by splitting A and B into tiles via the
// kernel's outer setup, spawning one worker per grid cell running
// Kernel.MatrixMult for r rounds, and reassembling the results.
func (m *MatMul[E]) ParallelMult(a, b *matrix.Matrix[E]) (*matrix.Matrix[E], error) {
	if a.Cols() != b.Rows() {
		return nil, ErrDimensionMismatch
	}

	aTiles := m.kern.OuterSetupA(m.r, m.c, a)
	bTiles := m.kern.OuterSetupB(m.r, m.c, b)
	cFull := seedC(m.fam, a, b)
	cTiles := m.kern.OuterSetupC(m.r, m.c, cFull)
	dims := tile.BuildTiles(a.Rows(), b.Cols(), m.r, m.c)

	cores := network.Build[*matrix.Matrix[E]](m.r, m.c, cloneMatrix[E])
	proc := processor.New[*matrix.Matrix[E], cellResult[E]](cores, m.log)

	for idx := range cores {
		idx := idx
		aTile, bTile := aTiles[idx], bTiles[idx]
		cTile := cTiles[idx]
		kern := m.kern
		fam := m.fam
		rounds := m.r
		proc.RunCore(func(wk core.Core[*matrix.Matrix[E]]) cellResult[E] {
			res := kern.MatrixMult(fam, aTile, bTile, cTile, rounds, wk)
			return cellResult[E]{idx: idx, c: res}
		})
	}

	out := matrix.New[E](a.Rows(), b.Cols())
	for _, r := range proc.CollectResults() {
		tile.Place(out, dims[r.idx], r.c)
	}
	return out, nil
}

// ParallelSquare runs outerIters in-place passes of C <- C (+) C (x) C
// (semantically A^(2^outerIters) under the min-plus semiring with a zero
// diagonal; under the integer ring the result keeps every earlier term, e.g.
// A^2 + A^4 after two passes), seeding C
// from the unskewed split of A per the seed-from-A decision (never from a
// kernel's skewed A/B tiles) and re-deriving A/B from C via the kernel's
// inner setup after every outer iteration.
func (m *MatMul[E]) ParallelSquare(a *matrix.Matrix[E], outerIters int) (*matrix.Matrix[E], error) {
	if a.Rows() != a.Cols() {
		return nil, ErrNotSquareMatrix
	}

	aTiles := m.kern.OuterSetupA(m.r, m.c, a)
	bTiles := m.kern.OuterSetupB(m.r, m.c, a)
	cFull := seedC(m.fam, a, a)
	cTiles := m.kern.OuterSetupC(m.r, m.c, cFull)
	dims := tile.BuildTiles(a.Rows(), a.Cols(), m.r, m.c)

	cores := network.Build[*matrix.Matrix[E]](m.r, m.c, cloneMatrix[E])
	proc := processor.New[*matrix.Matrix[E], cellResult[E]](cores, m.log)

	for idx := range cores {
		idx := idx
		aTile, bTile := aTiles[idx], bTiles[idx]
		cTile := cTiles[idx]
		kern := m.kern
		fam := m.fam
		rounds := m.r
		proc.RunCore(func(wk core.Core[*matrix.Matrix[E]]) cellResult[E] {
			localA, localB := aTile, bTile
			c := cTile
			for iter := 0; iter < outerIters; iter++ {
				c = kern.MatrixMult(fam, localA, localB, c, rounds, wk)
				localA = kern.InnerSetupA(c, wk)
				localB = kern.InnerSetupB(c, wk)
			}
			return cellResult[E]{idx: idx, c: c}
		})
	}

	out := matrix.New[E](a.Rows(), a.Cols())
	for _, r := range proc.CollectResults() {
		tile.Place(out, dims[r.idx], r.c)
	}
	return out, nil
}
