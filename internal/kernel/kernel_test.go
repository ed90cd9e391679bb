package kernel

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/meshsim/internal/matrix"
)

func tileValues(tiles []*matrix.Matrix[int64]) []int64 {
	out := make([]int64, len(tiles))
	for i, t := range tiles {
		out[i] = t.At(0, 0)
	}
	return out
}

func TestModHandlesNegative(t *testing.T) {
	require.Equal(t, 2, mod(-1, 3))
	require.Equal(t, 0, mod(3, 3))
	require.Equal(t, 1, mod(-2, 3))
}

func TestCannonPreSkewScenario(t *testing.T) {
	rows := make([][]int64, 3)
	for r := 0; r < 3; r++ {
		rows[r] = make([]int64, 3)
		for c := 0; c < 3; c++ {
			rows[r][c] = int64(r*3 + c)
		}
	}
	m := matrix.FromRows(rows)

	var k Cannon[int64]
	aTiles := k.OuterSetupA(3, 3, m)
	bTiles := k.OuterSetupB(3, 3, m)

	require.Equal(t, []int64{0, 1, 2, 4, 5, 3, 8, 6, 7}, tileValues(aTiles))
	require.Equal(t, []int64{0, 4, 8, 3, 7, 2, 6, 1, 5}, tileValues(bTiles))
}

func TestBaseOuterSetupRowMajor(t *testing.T) {
	m := matrix.FromRows([][]int64{{0, 1}, {2, 3}})
	var h Hash[int64]
	tiles := h.OuterSetupA(2, 2, m)
	require.Equal(t, []int64{0, 1, 2, 3}, tileValues(tiles))
}

func TestCannonOuterSetupCStaysRowMajor(t *testing.T) {
	m := matrix.FromRows([][]int64{{0, 1}, {2, 3}})
	var k Cannon[int64]

	aTiles := k.OuterSetupA(2, 2, m)
	require.Equal(t, []int64{0, 1, 3, 2}, tileValues(aTiles))

	cTiles := k.OuterSetupC(2, 2, m)
	require.Equal(t, []int64{0, 1, 2, 3}, tileValues(cTiles))
}
