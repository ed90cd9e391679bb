// Package graphio reads the edge-list text format consumed by the
// external graph tool (space-separated "id src dst weight" lines) and
// builds the square Matrix<Msg> that parallel_square operates on.
package graphio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/luxfi/meshsim/internal/matrix"
	"github.com/luxfi/meshsim/internal/semiring"
)

// Edge is one parsed directed, weighted edge.
type Edge struct {
	From, To int
	Weight   float64
}

// ParseEdges reads whitespace-separated "id src dst weight" lines from r,
// skipping the leading id column, and reports the edges read plus the
// node count (one more than the largest node index seen).
func ParseEdges(r io.Reader) ([]Edge, int, error) {
	scanner := bufio.NewScanner(r)
	var edges []Edge
	numNodes := 0
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 4 {
			return nil, 0, fmt.Errorf("graphio: line %d: want 4 fields, got %d", lineNo, len(fields))
		}
		from, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, 0, fmt.Errorf("graphio: line %d: %w", lineNo, err)
		}
		to, err := strconv.Atoi(fields[2])
		if err != nil {
			return nil, 0, fmt.Errorf("graphio: line %d: %w", lineNo, err)
		}
		weight, err := strconv.ParseFloat(fields[3], 64)
		if err != nil {
			return nil, 0, fmt.Errorf("graphio: line %d: %w", lineNo, err)
		}
		edges = append(edges, Edge{From: from, To: to, Weight: weight})
		if to+1 > numNodes {
			numNodes = to + 1
		}
		if from+1 > numNodes {
			numNodes = from + 1
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, err
	}
	return edges, numNodes, nil
}

// BuildAdjacency seeds an n x n Msg matrix: Undefined everywhere except
// the diagonal (zero-weight self path, predecessor is the node itself)
// and one entry per edge (predecessor is the edge's source).
func BuildAdjacency(edges []Edge, n int) *matrix.Matrix[semiring.Msg] {
	m := matrix.New[semiring.Msg](n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			m.Set(i, j, semiring.Undefined)
		}
	}
	for i := 0; i < n; i++ {
		m.Set(i, i, semiring.Msg{W: 0, P: i})
	}
	for _, e := range edges {
		m.Set(e.From, e.To, semiring.Msg{W: e.Weight, P: e.From})
	}
	return m
}
