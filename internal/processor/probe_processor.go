package processor

import (
	"sync"
	"time"

	"github.com/luxfi/log"
	"go.uber.org/zap"

	"github.com/luxfi/meshsim/internal/core"
	"github.com/luxfi/meshsim/internal/probe"
)

// ProbeProcessor is the instrumented variant of Processor: it hands each
// worker a Prober (which itself satisfies core.Core[T]) instead of a bare
// Core, so the same kernel code that runs uninstrumented also runs under
// virtual-time accounting.
type ProbeProcessor[T any, H any] struct {
	log log.Logger

	mu      sync.Mutex
	timed   []core.TimedCore[T]
	next    int
	wg      sync.WaitGroup
	results []H
	debug   []probe.CoreDebug
}

// NewProbe takes the R*C pre-built TimedCores and returns a ProbeProcessor
// ready to spawn workers against them.
func NewProbe[T any, H any](timed []core.TimedCore[T], logger log.Logger) *ProbeProcessor[T, H] {
	return &ProbeProcessor[T, H]{timed: timed, log: logger}
}

// RunCore pops the next unused TimedCore, wraps it in a Prober, and spawns
// a goroutine running f against the Prober's core.Core[T] surface. On exit
// the Prober's clock is harvested into a CoreDebug record.
func (p *ProbeProcessor[T, H]) RunCore(f func(core.Core[T]) H) {
	p.mu.Lock()
	tc := p.timed[p.next]
	p.next++
	p.mu.Unlock()

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		prober := probe.New[T](tc)
		h := f(prober)
		d := prober.Finish()
		if p.log != nil {
			p.log.WithFields(
				zap.Int("row", d.Row),
				zap.Int("col", d.Col),
				zap.Duration("clock", d.Clock),
			).Debug("probe worker finished")
		}
		p.mu.Lock()
		p.results = append(p.results, h)
		p.debug = append(p.debug, d)
		p.mu.Unlock()
	}()
}

// CollectResults joins all outstanding tasks and returns their results.
func (p *ProbeProcessor[T, H]) CollectResults() []H {
	p.wg.Wait()
	return p.results
}

// DebugStats returns every worker's harvested CoreDebug record. Must be
// called after CollectResults (or after Wait has otherwise been observed)
// so every worker has exited.
func (p *ProbeProcessor[T, H]) DebugStats() []probe.CoreDebug {
	p.wg.Wait()
	return p.debug
}

// MaxDebugTime is the figure of merit of a synchronous run: the slowest
// worker's virtual clock.
func (p *ProbeProcessor[T, H]) MaxDebugTime() time.Duration {
	var max time.Duration
	for _, d := range p.DebugStats() {
		if d.Clock > max {
			max = d.Clock
		}
	}
	return max
}

var _ Runner[int, int] = (*ProbeProcessor[int, int])(nil)
