package matmul

import (
	"github.com/luxfi/meshsim/internal/matrix"
	"github.com/luxfi/meshsim/internal/semiring"
)

// seedC builds the initial C matrix for an (a, b) pair: fam.InitialC applied
// element-wise over the FULL, untiled matrices. For the integer ring this is
// always zero; for the shortest-path semiring it clones A, per the
// seed-from-A decision for parallel_square. Callers split the result via a
// Kernel's OuterSetupC — never seed per grid-cell tile directly, since a
// kernel may have skewed the A/B tiles it hands to the compute loop.
func seedC[E any](fam semiring.Family[E], a, b *matrix.Matrix[E]) *matrix.Matrix[E] {
	rows, cols := a.Rows(), b.Cols()
	out := matrix.New[E](rows, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			av := a.At(i, j%a.Cols())
			bv := b.At(i%b.Rows(), j)
			out.Set(i, j, fam.InitialC(av, bv))
		}
	}
	return out
}

// cloneMatrix is the Matrix[E] clone callback the torus broadcast channels
// use so concurrent receivers never alias the same tile.
func cloneMatrix[E any](m *matrix.Matrix[E]) *matrix.Matrix[E] {
	return m.Clone()
}
