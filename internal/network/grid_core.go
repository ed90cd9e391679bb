// Package network wires R*C worker Cores into the torus interconnect
// described in the torus design: direct neighbour pairs on the four
// cardinal ports, and one row and one column broadcast group per worker.
package network

import (
	"github.com/luxfi/meshsim/internal/channel"
	"github.com/luxfi/meshsim/internal/core"
)

// gridCore is the concrete torus-wired Core: four direct neighbour ends
// plus a row and a column broadcast endpoint.
type gridCore[T any] struct {
	row, col int

	left, right, up, down *channel.DirectEnd[T]
	rowBC, colBC          *channel.BroadcastEnd[T]
}

func (c *gridCore[T]) Row() int { return c.row }
func (c *gridCore[T]) Col() int { return c.col }

func (c *gridCore[T]) Send(v T, port core.Port) {
	switch port {
	case core.Left:
		c.left.Send(v)
	case core.Right:
		c.right.Send(v)
	case core.Up:
		c.up.Send(v)
	case core.Down:
		c.down.Send(v)
	case core.Row:
		c.rowBC.Send(v)
	case core.Col:
		c.colBC.Send(v)
	}
}

func (c *gridCore[T]) Recv(port core.Port) T {
	switch port {
	case core.Left:
		return c.left.Recv()
	case core.Right:
		return c.right.Recv()
	case core.Up:
		return c.up.Recv()
	case core.Down:
		return c.down.Recv()
	case core.Row:
		return c.rowBC.Recv()
	case core.Col:
		return c.colBC.Recv()
	default:
		var zero T
		return zero
	}
}

var _ core.Core[int] = (*gridCore[int])(nil)
