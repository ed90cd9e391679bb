package matmul

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/meshsim/internal/kernel"
	"github.com/luxfi/meshsim/internal/logging"
	"github.com/luxfi/meshsim/internal/matrix"
	"github.com/luxfi/meshsim/internal/semiring"
)

func intMatrix(rows [][]int64) *matrix.Matrix[int64] {
	return matrix.FromRows(rows)
}

func requireIntEqual(t *testing.T, want, got *matrix.Matrix[int64]) {
	t.Helper()
	require.True(t, want.Equal(got, func(a, b int64) bool { return a == b }),
		"want %+v got %+v", want, got)
}

func TestParallelMultScenario1AllKernels(t *testing.T) {
	a := intMatrix([][]int64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	b := intMatrix([][]int64{{9, 8, 7}, {6, 5, 4}, {3, 2, 1}})
	want := intMatrix([][]int64{{30, 24, 18}, {84, 69, 54}, {138, 114, 90}})

	kernels := []kernel.Kernel[int64]{
		kernel.Hash[int64]{},
		kernel.FoxOtto[int64]{},
		kernel.Cannon[int64]{},
		kernel.PipeFoxOtto[int64]{},
	}
	for _, k := range kernels {
		k := k
		t.Run(k.Name(), func(t *testing.T) {
			mm, err := New[int64](2, 2, semiring.IntRing{}, k, logging.NoOp())
			require.NoError(t, err)
			got, err := mm.ParallelMult(a, b)
			require.NoError(t, err)
			requireIntEqual(t, want, got)
		})
	}
}

func TestParallelMultDimensionMismatch(t *testing.T) {
	mm, err := New[int64](2, 2, semiring.IntRing{}, kernel.Hash[int64]{}, logging.NoOp())
	require.NoError(t, err)
	a := intMatrix([][]int64{{1, 2}})
	b := intMatrix([][]int64{{1, 2}})
	_, err = mm.ParallelMult(a, b)
	require.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestNewRejectsNonSquareGridForFoxOtto(t *testing.T) {
	_, err := New[int64](2, 3, semiring.IntRing{}, kernel.FoxOtto[int64]{}, logging.NoOp())
	require.ErrorIs(t, err, ErrNonSquareGrid)
}

func TestNewRejectsEmptyGrid(t *testing.T) {
	_, err := New[int64](0, 2, semiring.IntRing{}, kernel.Hash[int64]{}, logging.NoOp())
	require.ErrorIs(t, err, ErrEmptyGrid)
}

// TestKernelEquivalence checks every kernel's parallel_mult against the
// serial reference on a non-trivial rectangular case.
func TestKernelEquivalence(t *testing.T) {
	a := intMatrix([][]int64{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
		{13, 14, 15, 16},
	})
	b := intMatrix([][]int64{
		{1, 0, 0, 1},
		{0, 1, 0, 1},
		{0, 0, 1, 1},
		{1, 1, 1, 1},
	})
	want := semiring.SerialMatMul[int64](semiring.IntRing{}, a, b)

	kernels := []kernel.Kernel[int64]{
		kernel.Hash[int64]{},
		kernel.FoxOtto[int64]{},
		kernel.Cannon[int64]{},
		kernel.PipeFoxOtto[int64]{},
	}
	for _, k := range kernels {
		k := k
		t.Run(k.Name(), func(t *testing.T) {
			mm, err := New[int64](2, 2, semiring.IntRing{}, k, logging.NoOp())
			require.NoError(t, err)
			got, err := mm.ParallelMult(a, b)
			require.NoError(t, err)
			requireIntEqual(t, want, got)
		})
	}
}

func TestParallelSquareMinPlusFoxOtto(t *testing.T) {
	// A small 3-node cycle graph: 0->1 (w=1), 1->2 (w=1), 2->0 (w=1),
	// diagonal self-loops at weight 0. One squaring round already reaches
	// every node within 2 hops.
	inf3 := math.Inf(1)
	a := matrix.FromRows([][]semiring.Msg{
		{{W: 0, P: 0}, {W: 1, P: 1}, {W: inf3, P: -1}},
		{{W: inf3, P: -1}, {W: 0, P: 1}, {W: 1, P: 2}},
		{{W: 1, P: 0}, {W: inf3, P: -1}, {W: 0, P: 2}},
	})

	mm, err := New[semiring.Msg](3, 3, semiring.MsgSemiring{}, kernel.FoxOtto[semiring.Msg]{}, logging.NoOp())
	require.NoError(t, err)

	want := semiring.SerialSquare[semiring.Msg](semiring.MsgSemiring{}, a, 2)
	got, err := mm.ParallelSquare(a, 2)
	require.NoError(t, err)
	require.True(t, got.Equal(want, func(x, y semiring.Msg) bool {
		return x.W == y.W && x.P == y.P
	}))
}

// TestParallelSquareMinPlusCannon exercises Cannon's skewed A/B tiles
// together with ParallelSquare under MsgSemiring, where a wrong,
// kernel-skewed seed for C (rather than the unskewed row-major split) would
// seed several grid cells from the wrong source tile and diverge from the
// serial reference.
func TestParallelSquareMinPlusCannon(t *testing.T) {
	inf3 := math.Inf(1)
	a := matrix.FromRows([][]semiring.Msg{
		{{W: 0, P: 0}, {W: 1, P: 1}, {W: inf3, P: -1}},
		{{W: inf3, P: -1}, {W: 0, P: 1}, {W: 1, P: 2}},
		{{W: 1, P: 0}, {W: inf3, P: -1}, {W: 0, P: 2}},
	})

	mm, err := New[semiring.Msg](3, 3, semiring.MsgSemiring{}, kernel.Cannon[semiring.Msg]{}, logging.NoOp())
	require.NoError(t, err)

	want := semiring.SerialSquare[semiring.Msg](semiring.MsgSemiring{}, a, 2)
	got, err := mm.ParallelSquare(a, 2)
	require.NoError(t, err)
	require.True(t, got.Equal(want, func(x, y semiring.Msg) bool {
		return x.W == y.W && x.P == y.P
	}))
}
