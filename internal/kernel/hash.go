package kernel

import (
	"github.com/luxfi/meshsim/internal/core"
	"github.com/luxfi/meshsim/internal/matrix"
	"github.com/luxfi/meshsim/internal/semiring"
)

// Hash is the broadcast-based schedule: each round, the worker owning the
// k-th tile-column of A broadcasts it along its row, and the worker owning
// the k-th tile-row of B broadcasts it along its column; every worker
// receives both and multiply-accumulates.
type Hash[E any] struct{ Base[E] }

func (Hash[E]) Name() string            { return "hash" }
func (Hash[E]) RequiresSquareGrid() bool { return true }

func (Hash[E]) MatrixMult(fam semiring.Family[E], a, b, c *matrix.Matrix[E], rounds int, wk Worker[E]) *matrix.Matrix[E] {
	row, col := wk.Row(), wk.Col()
	for k := 0; k < rounds; k++ {
		if col == k {
			wk.Send(a, core.Row)
		}
		if row == k {
			wk.Send(b, core.Col)
		}
		recvA := wk.Recv(core.Row)
		recvB := wk.Recv(core.Col)
		c = tileMulAcc(fam, c, recvA, recvB)
	}
	return c
}

var _ Kernel[int64] = Hash[int64]{}
