package semiring

import "github.com/luxfi/meshsim/internal/matrix"

// SerialMatMul computes C = A (x) B over fam with no tiling or concurrency.
// It is the reference oracle every parallel kernel must agree with; the
// kernels' own tile-local multiply step is a separate routine in the kernel
// package.
func SerialMatMul[T any](fam Family[T], a, b *matrix.Matrix[T]) *matrix.Matrix[T] {
	r, k, c := a.Rows(), a.Cols(), b.Cols()
	out := matrix.New[T](r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			acc := fam.InitialC(a.At(i, j%a.Cols()), b.At(i%b.Rows(), j))
			for x := 0; x < k; x++ {
				acc = fam.Add(acc, fam.Multiply(a.At(i, x), b.At(x, j)))
			}
			out.Set(i, j, acc)
		}
	}
	return out
}

// SerialSquare repeatedly squares a square matrix iters times under fam,
// i.e. computes the min-plus transitive closure when fam is MsgSemiring and
// iters = ceil(log2(n)).
func SerialSquare[T any](fam Family[T], a *matrix.Matrix[T], iters int) *matrix.Matrix[T] {
	cur := a
	for i := 0; i < iters; i++ {
		cur = SerialMatMul(fam, cur, cur)
	}
	return cur
}
