package semiring

import "math"

// Msg is the shortest-path semiring element: a tentative weight and the
// predecessor index that achieved it. Undefined/unreachable is represented
// by W = +Inf, P = -1 — chosen over a negative-weight sentinel because it
// composes correctly under ordinary floating point comparisons without a
// special case in Multiply.
type Msg struct {
	W float64
	P int
}

// Undefined is the neutral element: unreachable, no predecessor.
var Undefined = Msg{W: math.Inf(1), P: -1}

// MsgSemiring is the min-plus (shortest-path) semiring: accumulate is min,
// combine is +. A candidate produced by Multiply only displaces the
// accumulator in Add when it is strictly smaller and both operands were
// themselves defined.
type MsgSemiring struct{}

// Multiply returns the tile-level combine a (x) b: the path through b's
// predecessor with combined weight a.W + b.W. If either operand is
// undefined the result is undefined.
func (MsgSemiring) Multiply(a, b Msg) Msg {
	if math.IsInf(a.W, 1) || math.IsInf(b.W, 1) {
		return Undefined
	}
	return Msg{W: a.W + b.W, P: b.P}
}

// Add keeps the smaller of the running accumulator and a freshly combined
// candidate, i.e. min-plus accumulation.
func (MsgSemiring) Add(acc, term Msg) Msg {
	if term.W < acc.W {
		return term
	}
	return acc
}

func (MsgSemiring) Zero() Msg { return Undefined }

// InitialC seeds the accumulator from A itself (not from the neutral
// element) so that one squaring round already captures one-hop
// reachability combined with the existing distances in A.
func (MsgSemiring) InitialC(a, b Msg) Msg { return a }

var _ Family[Msg] = MsgSemiring{}
