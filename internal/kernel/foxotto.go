package kernel

import (
	"github.com/luxfi/meshsim/internal/core"
	"github.com/luxfi/meshsim/internal/matrix"
	"github.com/luxfi/meshsim/internal/semiring"
)

// FoxOtto is the classic Fox-Otto schedule: a resident B tile migrates
// upward one hop per round while A tiles broadcast along rows on a
// row-dependent schedule.
type FoxOtto[E any] struct{ Base[E] }

func (FoxOtto[E]) Name() string            { return "foxotto" }
func (FoxOtto[E]) RequiresSquareGrid() bool { return true }

func (FoxOtto[E]) MatrixMult(fam semiring.Family[E], a, bResident, c *matrix.Matrix[E], rounds int, wk Worker[E]) *matrix.Matrix[E] {
	row, col := wk.Row(), wk.Col()
	for k := 0; k < rounds; k++ {
		if col == mod(k+row, rounds) {
			wk.Send(a, core.Row)
		}
		recvA := wk.Recv(core.Row)
		c = tileMulAcc(fam, c, recvA, bResident)

		wk.Send(bResident, core.Up)
		bResident = wk.Recv(core.Down)
	}
	return c
}

func mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}

var _ Kernel[int64] = FoxOtto[int64]{}
