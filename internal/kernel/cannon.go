package kernel

import (
	"github.com/luxfi/meshsim/internal/core"
	"github.com/luxfi/meshsim/internal/matrix"
	"github.com/luxfi/meshsim/internal/semiring"
)

// Cannon is the skewed, broadcast-free schedule: A and B tiles are
// pre-skewed at distribution time so that every round is a pure
// nearest-neighbour exchange (A shifts Left, B shifts Up).
type Cannon[E any] struct{ Base[E] }

func (Cannon[E]) Name() string            { return "cannon" }
func (Cannon[E]) RequiresSquareGrid() bool { return true }

// OuterSetupA places the default row-major tile (r,c) at worker (r, (c-r)
// mod C), Cannon's A-skew.
func (Cannon[E]) OuterSetupA(R, C int, A *matrix.Matrix[E]) []*matrix.Matrix[E] {
	orig := splitRowMajor[E](R, C, A)
	out := make([]*matrix.Matrix[E], R*C)
	for r := 0; r < R; r++ {
		for c := 0; c < C; c++ {
			destC := mod(c-r, C)
			out[r*C+destC] = orig[r*C+c]
		}
	}
	return out
}

// OuterSetupB places the default row-major tile (r,c) at worker ((r-c) mod
// R, c), Cannon's B-skew.
func (Cannon[E]) OuterSetupB(R, C int, B *matrix.Matrix[E]) []*matrix.Matrix[E] {
	orig := splitRowMajor[E](R, C, B)
	out := make([]*matrix.Matrix[E], R*C)
	for r := 0; r < R; r++ {
		for c := 0; c < C; c++ {
			destR := mod(r-c, R)
			out[destR*C+c] = orig[r*C+c]
		}
	}
	return out
}

// InnerSetupA re-skews a tile for the next parallel_square outer iteration
// by shifting it Left this worker's row-index number of hops.
func (Cannon[E]) InnerSetupA(aTile *matrix.Matrix[E], wk Worker[E]) *matrix.Matrix[E] {
	for i := 0; i < wk.Row(); i++ {
		wk.Send(aTile, core.Left)
		aTile = wk.Recv(core.Right)
	}
	return aTile
}

// InnerSetupB re-skews a tile for the next parallel_square outer iteration
// by shifting it Up this worker's column-index number of hops.
func (Cannon[E]) InnerSetupB(bTile *matrix.Matrix[E], wk Worker[E]) *matrix.Matrix[E] {
	for i := 0; i < wk.Col(); i++ {
		wk.Send(bTile, core.Up)
		bTile = wk.Recv(core.Down)
	}
	return bTile
}

func (Cannon[E]) MatrixMult(fam semiring.Family[E], a, b, c *matrix.Matrix[E], rounds int, wk Worker[E]) *matrix.Matrix[E] {
	for k := 0; k < rounds; k++ {
		c = tileMulAcc(fam, c, a, b)
		wk.Send(a, core.Left)
		wk.Send(b, core.Up)
		a = wk.Recv(core.Right)
		b = wk.Recv(core.Down)
	}
	return c
}

var _ Kernel[int64] = Cannon[int64]{}
