package matmul

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/meshsim/internal/core"
	"github.com/luxfi/meshsim/internal/kernel"
	"github.com/luxfi/meshsim/internal/logging"
	"github.com/luxfi/meshsim/internal/semiring"
)

// TestMaxDebugTimeLowerBound checks the critical-path lower bound: with N
// serial communication rounds (here N = grid dimension, since Hash sends
// once per round) and a fixed one-hop cost, the slowest worker's virtual
// clock must be at least N times that cost.
func TestMaxDebugTimeLowerBound(t *testing.T) {
	const grid = 3
	model := core.CostModel{Latency: time.Microsecond, Bandwidth: 1, Startup: 0}

	mm, err := NewProbe[int64](grid, grid, semiring.IntRing{}, kernel.Hash[int64]{}, model, logging.NoOp())
	require.NoError(t, err)

	a := intMatrix([][]int64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	b := intMatrix([][]int64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}})
	_, err = mm.ParallelMult(a, b)
	require.NoError(t, err)

	maxClock := mm.MaxDebugTime()
	oneHop := model.Latency
	require.GreaterOrEqual(t, maxClock, time.Duration(grid)*oneHop)

	for _, d := range mm.DebugStats() {
		require.LessOrEqual(t, d.Clock, maxClock)
	}
}
