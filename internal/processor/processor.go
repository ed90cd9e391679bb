// Package processor owns the worker grid: it hands each worker its Core,
// spawns one goroutine per worker to run a user-supplied function, and
// joins them to collect typed results.
package processor

import (
	"sync"

	"github.com/luxfi/log"
	"go.uber.org/zap"

	"github.com/luxfi/meshsim/internal/core"
)

// Runner is the common surface both Processor and ProbeProcessor satisfy:
// kernel-spawning code is written once against this interface.
type Runner[T any, H any] interface {
	RunCore(f func(core.Core[T]) H)
	CollectResults() []H
}

// Processor owns R*C pre-built Cores and spawns one task per RunCore call
// to run against the next unused one.
type Processor[T any, H any] struct {
	log log.Logger

	mu      sync.Mutex
	cores   []core.Core[T]
	next    int
	wg      sync.WaitGroup
	results []H
}

// New takes the R*C pre-built Cores and returns a Processor ready to spawn
// workers against them.
func New[T any, H any](cores []core.Core[T], logger log.Logger) *Processor[T, H] {
	return &Processor[T, H]{cores: cores, log: logger}
}

// RunCore pops the next unused Core and spawns a goroutine that runs f
// against it, storing the result for CollectResults. Workers execute in
// parallel; the only synchronization between them is their channels.
func (p *Processor[T, H]) RunCore(f func(core.Core[T]) H) {
	p.mu.Lock()
	c := p.cores[p.next]
	p.next++
	p.mu.Unlock()

	if p.log != nil {
		p.log.WithFields(zap.Int("row", c.Row()), zap.Int("col", c.Col())).Debug("worker started")
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		h := f(c)
		p.mu.Lock()
		p.results = append(p.results, h)
		p.mu.Unlock()
	}()
}

// CollectResults joins all outstanding tasks and returns their results in
// an arbitrary order; callers recover ordering from H itself.
func (p *Processor[T, H]) CollectResults() []H {
	p.wg.Wait()
	if p.log != nil {
		p.log.WithFields(zap.Int("workers", len(p.results))).Info("run complete")
	}
	return p.results
}

var _ Runner[int, int] = (*Processor[int, int])(nil)
