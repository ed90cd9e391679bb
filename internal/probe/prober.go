package probe

import (
	"time"

	"github.com/luxfi/meshsim/internal/core"
)

// Prober wraps a TimedCore and presents the plain Core[T] surface a kernel
// is written against, so kernel code never branches on probe vs non-probe
// mode. It is created and harvested by exactly one goroutine; per the
// ownership rule, its state is never touched concurrently.
type Prober[T any] struct {
	timed core.TimedCore[T]

	start      time.Time
	additional time.Duration

	directMsgs    int
	broadcastMsgs int
}

// New wraps timed with a fresh virtual clock starting now.
func New[T any](timed core.TimedCore[T]) *Prober[T] {
	return &Prober[T]{timed: timed, start: time.Now()}
}

func (p *Prober[T]) Row() int { return p.timed.Row() }
func (p *Prober[T]) Col() int { return p.timed.Col() }

// Clock returns the current virtual elapsed time: real wall-clock elapsed
// since creation plus the synthetic communication debt accrued so far. It
// never decreases.
func (p *Prober[T]) Clock() time.Duration {
	return time.Since(p.start) + p.additional
}

// Send stamps the outgoing message with its arrival time (this worker's
// current clock plus interconnect latency plus transmission cost) and
// accrues the transmission cost as synthetic debt.
func (p *Prober[T]) Send(v T, port core.Port) {
	size := sizeOf(v)
	cost := p.timed.TransmissionCost(port, size)
	arrival := p.Clock() + p.timed.Latency() + cost
	p.additional += cost
	if isBroadcastPort(port) {
		p.broadcastMsgs++
	} else {
		p.directMsgs++
	}
	p.timed.Send(core.Envelope[T]{Payload: v, ArrivalTime: arrival}, port)
}

// Recv blocks for the next envelope and advances the virtual clock by any
// positive slack between its arrival time and this worker's current clock.
func (p *Prober[T]) Recv(port core.Port) T {
	env := p.timed.Recv(port)
	if slack := env.ArrivalTime - p.Clock(); slack > 0 {
		p.additional += slack
	}
	return env.Payload
}

// Finish freezes the prober's clock into a CoreDebug record. Called once,
// at worker-task exit.
func (p *Prober[T]) Finish() CoreDebug {
	return CoreDebug{
		Row:               p.Row(),
		Col:               p.Col(),
		Clock:             p.Clock(),
		DirectMessages:    p.directMsgs,
		BroadcastMessages: p.broadcastMsgs,
	}
}

func isBroadcastPort(port core.Port) bool {
	return port == core.Row || port == core.Col
}

func sizeOf(v any) int {
	if s, ok := v.(core.Sized); ok {
		return s.ByteSize()
	}
	return 0
}

var _ core.Core[int] = (*Prober[int])(nil)
