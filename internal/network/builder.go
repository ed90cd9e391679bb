package network

import (
	"github.com/luxfi/meshsim/internal/channel"
	"github.com/luxfi/meshsim/internal/core"
)

// Build wires R*C Cores into a torus: row-major index (r,c) -> r*C+c. For
// every cell, Send(Up) is received as Down at the cell one row above
// (wrapping), Send(Right) is received as Left at the cell one column to the
// right (wrapping), and symmetrically for Down/Left. Every row is also a
// broadcast group (the Row port) and every column is a broadcast group (the
// Col port). clone is applied per broadcast delivery; pass nil when aliasing
// a sent value across receivers is safe.
//
// Construction is infallible given R,C >= 1.
func Build[T any](R, C int, clone func(T) T) []core.Core[T] {
	grid := make([][]*gridCore[T], R)
	for r := range grid {
		grid[r] = make([]*gridCore[T], C)
		for c := range grid[r] {
			grid[r][c] = &gridCore[T]{row: r, col: c}
		}
	}

	// Vertical (Up/Down) direct edges: one per (r,c), to ((r-1+R)%R, c).
	for r := 0; r < R; r++ {
		for c := 0; c < C; c++ {
			a, b := channel.NewDirectPair[T]()
			grid[r][c].up = a
			grid[(r-1+R)%R][c].down = b
		}
	}

	// Horizontal (Left/Right) direct edges: one per (r,c), to (r, (c+1)%C).
	for r := 0; r < R; r++ {
		for c := 0; c < C; c++ {
			a, b := channel.NewDirectPair[T]()
			grid[r][c].right = a
			grid[r][(c+1)%C].left = b
		}
	}

	// Row broadcast groups.
	for r := 0; r < R; r++ {
		ends := channel.NewBroadcastGroup[T](C, clone)
		for c := 0; c < C; c++ {
			grid[r][c].rowBC = ends[c]
		}
	}

	// Column broadcast groups.
	for c := 0; c < C; c++ {
		ends := channel.NewBroadcastGroup[T](R, clone)
		for r := 0; r < R; r++ {
			grid[r][c].colBC = ends[r]
		}
	}

	out := make([]core.Core[T], 0, R*C)
	for r := 0; r < R; r++ {
		for c := 0; c < C; c++ {
			out = append(out, grid[r][c])
		}
	}
	return out
}

// BuildTimed wires the same torus topology but with Envelope-carrying
// channels, then layers a CostModel over each cell so a Prober can query
// transmission cost before sending.
func BuildTimed[T any](R, C int, model core.CostModel, clone func(T) T) []core.TimedCore[T] {
	var envClone func(core.Envelope[T]) core.Envelope[T]
	if clone != nil {
		envClone = func(e core.Envelope[T]) core.Envelope[T] {
			e.Payload = clone(e.Payload)
			return e
		}
	}
	plain := Build[core.Envelope[T]](R, C, envClone)
	out := make([]core.TimedCore[T], len(plain))
	for i, p := range plain {
		out[i] = core.NewTimedCore[T](p, model, C, R)
	}
	return out
}
