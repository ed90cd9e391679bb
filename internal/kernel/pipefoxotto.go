package kernel

import (
	"github.com/luxfi/meshsim/internal/core"
	"github.com/luxfi/meshsim/internal/matrix"
	"github.com/luxfi/meshsim/internal/semiring"
)

// PipeFoxOtto is Fox-Otto with the B-shift hoisted ahead of the multiply it
// prepares: the Up-send and Down-recv of a round's resident B overlap with
// that round's A broadcast, instead of following it.
type PipeFoxOtto[E any] struct{ Base[E] }

func (PipeFoxOtto[E]) Name() string            { return "pipefoxotto" }
func (PipeFoxOtto[E]) RequiresSquareGrid() bool { return true }

func (PipeFoxOtto[E]) MatrixMult(fam semiring.Family[E], a, bResident, c *matrix.Matrix[E], rounds int, wk Worker[E]) *matrix.Matrix[E] {
	row, col := wk.Row(), wk.Col()
	for k := 0; k < rounds; k++ {
		wk.Send(bResident, core.Up)
		if mod(col-row-1, rounds) == k {
			wk.Send(a, core.Row)
		}
		bResident = wk.Recv(core.Down)
		recvA := wk.Recv(core.Row)
		c = tileMulAcc(fam, c, recvA, bResident)
	}
	return c
}

var _ Kernel[int64] = PipeFoxOtto[int64]{}
