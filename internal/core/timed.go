package core

import "time"

// Envelope wraps a payload with the arrival time a probe-mode receiver uses
// to advance its virtual clock. ArrivalTime is meaningless outside probe
// mode; plain (non-timed) runs carry T directly, never Envelope[T].
type Envelope[T any] struct {
	Payload     T
	ArrivalTime time.Duration
}

// CostModel holds the three interconnect parameters a probe run is
// configured with.
type CostModel struct {
	Latency   time.Duration // added to every message's arrival time
	Bandwidth float64       // bytes per nanosecond; <= 0 means "infinite" (zero transmission cost)
	Startup   time.Duration // per-hop broadcast startup cost
}

// DirectCost is the transmission cost of a B-byte direct-channel payload:
// B / bandwidth.
func (m CostModel) DirectCost(sizeBytes int) time.Duration {
	if m.Bandwidth <= 0 {
		return 0
	}
	return time.Duration(float64(sizeBytes) / m.Bandwidth)
}

// BroadcastCost is the transmission cost of a B-byte broadcast to a group
// of the given size: startup * group_size + B / bandwidth.
func (m CostModel) BroadcastCost(sizeBytes, groupSize int) time.Duration {
	return time.Duration(groupSize)*m.Startup + m.DirectCost(sizeBytes)
}

// TimedCore is the Envelope-carrying Core a Prober drives: it behaves
// exactly like Core[Envelope[T]] but additionally exposes the cost model
// parameters needed to stamp an outgoing message's arrival time.
type TimedCore[T any] interface {
	Core[Envelope[T]]
	// TransmissionCost is the interconnect's cost for a sizeBytes payload
	// sent on port (broadcast ports use the group-size formula).
	TransmissionCost(port Port, sizeBytes int) time.Duration
	// Latency is the fixed per-message latency added to every arrival time.
	Latency() time.Duration
}

// timedCore adapts an Envelope-carrying Core with a CostModel and the
// group sizes of this worker's row/column broadcast groups.
type timedCore[T any] struct {
	inner    Core[Envelope[T]]
	model    CostModel
	rowGroup int // C: size of this worker's Row broadcast group
	colGroup int // R: size of this worker's Col broadcast group
}

// NewTimedCore wraps an Envelope-carrying Core with a cost model.
// rowGroupSize/colGroupSize are the sizes of the worker's Row/Col broadcast
// groups (C and R respectively in an R x C grid).
func NewTimedCore[T any](inner Core[Envelope[T]], model CostModel, rowGroupSize, colGroupSize int) TimedCore[T] {
	return &timedCore[T]{inner: inner, model: model, rowGroup: rowGroupSize, colGroup: colGroupSize}
}

func (t *timedCore[T]) Row() int { return t.inner.Row() }
func (t *timedCore[T]) Col() int { return t.inner.Col() }

func (t *timedCore[T]) Send(v Envelope[T], port Port) { t.inner.Send(v, port) }
func (t *timedCore[T]) Recv(port Port) Envelope[T]    { return t.inner.Recv(port) }

func (t *timedCore[T]) Latency() time.Duration { return t.model.Latency }

func (t *timedCore[T]) TransmissionCost(port Port, sizeBytes int) time.Duration {
	switch port {
	case Row:
		return t.model.BroadcastCost(sizeBytes, t.rowGroup)
	case Col:
		return t.model.BroadcastCost(sizeBytes, t.colGroup)
	default:
		return t.model.DirectCost(sizeBytes)
	}
}
