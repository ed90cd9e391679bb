package graphio

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/meshsim/internal/semiring"
)

func TestParseEdges(t *testing.T) {
	input := "0 0 1 2.5\n1 1 2 1.0\n\n2 2 0 3.0\n"
	edges, n, err := ParseEdges(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.Equal(t, []Edge{
		{From: 0, To: 1, Weight: 2.5},
		{From: 1, To: 2, Weight: 1.0},
		{From: 2, To: 0, Weight: 3.0},
	}, edges)
}

func TestParseEdgesRejectsShortLine(t *testing.T) {
	_, _, err := ParseEdges(strings.NewReader("0 1 2\n"))
	require.Error(t, err)
}

func TestBuildAdjacency(t *testing.T) {
	edges := []Edge{{From: 0, To: 1, Weight: 2}}
	m := BuildAdjacency(edges, 3)
	require.Equal(t, semiring.Msg{W: 0, P: 0}, m.At(0, 0))
	require.Equal(t, semiring.Msg{W: 2, P: 0}, m.At(0, 1))
	got := m.At(1, 2)
	require.True(t, math.IsInf(got.W, 1))
	require.Equal(t, -1, got.P)
}
