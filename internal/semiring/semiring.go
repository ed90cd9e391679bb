// Package semiring defines the element-type family abstraction shared by
// every kernel: a commutative-monoid accumulate, a combine ("multiply"),
// a neutral/zero element, and the seed value used to prime an accumulator
// before a matmul or squaring pass begins.
package semiring

// Family is a stateless strategy over element type T. Kernels are written
// once against Family[T] and never branch on which concrete family they
// were given.
type Family[T any] interface {
	// Add is the commutative-monoid accumulate: acc <- acc (+) term.
	Add(acc, term T) T
	// Multiply combines two operands: a (x) b.
	Multiply(a, b T) T
	// Zero is the additive neutral element.
	Zero() T
	// InitialC seeds the accumulator for one matmul/square pass, given the
	// corresponding elements of A and B at the same logical position.
	InitialC(a, b T) T
}

// IntRing is the ordinary integer ring: (+, x) over int64, wrapping on
// overflow per the two's-complement semantics Go already gives int64.
type IntRing struct{}

func (IntRing) Add(acc, term int64) int64      { return acc + term }
func (IntRing) Multiply(a, b int64) int64      { return a * b }
func (IntRing) Zero() int64                    { return 0 }
func (IntRing) InitialC(a, b int64) int64      { return 0 }

var _ Family[int64] = IntRing{}
