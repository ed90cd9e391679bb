// Package core defines the worker-local façade over channel endpoints (the
// torus-wired Core), the tagged port variant kernels address it by, and the
// interconnect cost model a probe run layers on top of it.
package core

// Port names one of a worker's six channel endpoints in the torus
// interconnect: the four cardinal direct neighbours plus the worker's row
// and column broadcast groups.
type Port int

const (
	Left Port = iota
	Right
	Up
	Down
	Row
	Col
)

func (p Port) String() string {
	switch p {
	case Left:
		return "Left"
	case Right:
		return "Right"
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Row:
		return "Row"
	case Col:
		return "Col"
	default:
		return "Unknown"
	}
}

// Core is a worker's local view of its channel endpoints. Send is
// conceptually non-blocking; Recv is the only suspension point.
type Core[T any] interface {
	Row() int
	Col() int
	Send(v T, port Port)
	Recv(port Port) T
}

// Sized lets the interconnect cost model estimate a payload's wire size
// without the core package depending on matrix.Matrix directly.
type Sized interface {
	ByteSize() int
}
