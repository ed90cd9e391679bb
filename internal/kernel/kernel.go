// Package kernel implements the four communication schedules a worker runs
// its local tile multiply-accumulate through: Hash (broadcast-based),
// Fox-Otto, pipelined Fox-Otto, and Cannon. Each is a stateless strategy
// sharing the Kernel[E] interface, so the matmul driver and the processor
// runtime are written once and never branch on which schedule is active.
package kernel

import (
	"github.com/luxfi/meshsim/internal/core"
	"github.com/luxfi/meshsim/internal/matrix"
	"github.com/luxfi/meshsim/internal/semiring"
	"github.com/luxfi/meshsim/internal/tile"
)

// Worker is the Core surface a kernel's per-round routine drives: it sends
// and receives whole tiles.
type Worker[E any] core.Core[*matrix.Matrix[E]]

// Kernel is a stateless communication-schedule strategy over element type
// E. Default hooks (row-major outer tiling, identity inner setup) are
// provided by Base[E]; concrete kernels embed it and override only what
// they need.
type Kernel[E any] interface {
	Name() string
	// RequiresSquareGrid reports whether this schedule is only correct on
	// an R == C grid; checked once at driver construction, before any
	// worker is spawned.
	RequiresSquareGrid() bool

	OuterSetupA(R, C int, A *matrix.Matrix[E]) []*matrix.Matrix[E]
	OuterSetupB(R, C int, B *matrix.Matrix[E]) []*matrix.Matrix[E]
	// OuterSetupC splits the seeded C matrix into per-cell tiles. Unlike
	// OuterSetupA/OuterSetupB, no kernel permutes this split: C always
	// lands at its row-major grid index regardless of how A/B were
	// skewed for the communication schedule.
	OuterSetupC(R, C int, c *matrix.Matrix[E]) []*matrix.Matrix[E]

	// InnerSetupA/InnerSetupB run once per parallel_square outer
	// iteration, after that iteration's tile has become the next
	// iteration's A/B.
	InnerSetupA(aTile *matrix.Matrix[E], wk Worker[E]) *matrix.Matrix[E]
	InnerSetupB(bTile *matrix.Matrix[E], wk Worker[E]) *matrix.Matrix[E]

	// MatrixMult is the per-worker routine: rounds communication rounds
	// exchanging tiles over wk, multiply-accumulating into c.
	MatrixMult(fam semiring.Family[E], a, b, c *matrix.Matrix[E], rounds int, wk Worker[E]) *matrix.Matrix[E]
}

// Base provides the default outer/inner hooks every kernel but Cannon uses
// unmodified: row-major tiling for outer setup, identity for inner setup.
type Base[E any] struct{}

func (Base[E]) OuterSetupA(R, C int, A *matrix.Matrix[E]) []*matrix.Matrix[E] {
	return splitRowMajor(R, C, A)
}

func (Base[E]) OuterSetupB(R, C int, B *matrix.Matrix[E]) []*matrix.Matrix[E] {
	return splitRowMajor(R, C, B)
}

// OuterSetupC is the trait default every kernel, Cannon included, inherits
// unmodified: C is always seeded row-major, never permuted by whatever
// skew OuterSetupA/OuterSetupB apply to A/B for the communication schedule.
func (Base[E]) OuterSetupC(R, C int, c *matrix.Matrix[E]) []*matrix.Matrix[E] {
	return splitRowMajor(R, C, c)
}

func (Base[E]) InnerSetupA(aTile *matrix.Matrix[E], _ Worker[E]) *matrix.Matrix[E] { return aTile }
func (Base[E]) InnerSetupB(bTile *matrix.Matrix[E], _ Worker[E]) *matrix.Matrix[E] { return bTile }

func splitRowMajor[E any](R, C int, m *matrix.Matrix[E]) []*matrix.Matrix[E] {
	dims := tile.BuildTiles(m.Rows(), m.Cols(), R, C)
	out := make([]*matrix.Matrix[E], len(dims))
	for i, d := range dims {
		out[i] = tile.Extract(m, d)
	}
	return out
}

// tileMulAcc computes c <- c (+) (a (x) b) under fam, tile-local: for every
// (i,j), c[i][j] = fam.Add(c[i][j], sum_x fam.Multiply(a[i][x], b[x][j])).
func tileMulAcc[E any](fam semiring.Family[E], c, a, b *matrix.Matrix[E]) *matrix.Matrix[E] {
	r, k, cc := a.Rows(), a.Cols(), b.Cols()
	out := matrix.New[E](r, cc)
	for i := 0; i < r; i++ {
		for j := 0; j < cc; j++ {
			sum := fam.Zero()
			for x := 0; x < k; x++ {
				sum = fam.Add(sum, fam.Multiply(a.At(i, x), b.At(x, j)))
			}
			out.Set(i, j, fam.Add(c.At(i, j), sum))
		}
	}
	return out
}
