// Package config holds the validated parameters a benchmark run is
// constructed from, built the way the teacher's config package builds
// its Config: a plain struct plus a fluent Builder that accumulates the
// first validation error and surfaces it only on Build.
package config

import (
	"fmt"
	"time"

	"github.com/luxfi/meshsim/internal/core"
)

// Schedule names one of the four communication schedules a kernel
// implements.
type Schedule string

const (
	Hash        Schedule = "hash"
	FoxOtto     Schedule = "foxotto"
	Cannon      Schedule = "cannon"
	PipeFoxOtto Schedule = "pipefoxotto"
)

// AllSchedules is the set run when --comm is left unset.
var AllSchedules = []Schedule{Hash, FoxOtto, Cannon, PipeFoxOtto}

// RunConfig is a single benchmark invocation's full parameter set.
type RunConfig struct {
	Schedules []Schedule
	Model     core.CostModel
	Iterations int
	Output    string

	Start int
	End   int
	Step  int
	// Fixed is the dimension held constant while the other axis sweeps:
	// processor count for the "matrix" subcommand, matrix size for
	// "processor".
	Fixed int
}

// Builder accumulates RunConfig fields and the first error encountered.
type Builder struct {
	cfg *RunConfig
	err error
}

// NewBuilder returns a Builder seeded with the defaults from the
// external-interface surface: 20 iterations, zero-cost model, every
// schedule.
func NewBuilder() *Builder {
	return &Builder{
		cfg: &RunConfig{
			Schedules:  append([]Schedule(nil), AllSchedules...),
			Iterations: 20,
		},
	}
}

func (b *Builder) fail(format string, args ...any) *Builder {
	if b.err == nil {
		b.err = fmt.Errorf(format, args...)
	}
	return b
}

// WithSchedule restricts the run to a single named schedule.
func (b *Builder) WithSchedule(name string) *Builder {
	if b.err != nil {
		return b
	}
	s := Schedule(name)
	switch s {
	case Hash, FoxOtto, Cannon, PipeFoxOtto:
		b.cfg.Schedules = []Schedule{s}
	default:
		return b.fail("unknown schedule %q", name)
	}
	return b
}

// WithCostModel sets the latency/bandwidth/startup cost model.
func (b *Builder) WithCostModel(latency time.Duration, bandwidth float64, startup time.Duration) *Builder {
	if b.err != nil {
		return b
	}
	if bandwidth <= 0 {
		return b.fail("bandwidth must be positive, got %v", bandwidth)
	}
	b.cfg.Model = core.CostModel{Latency: latency, Bandwidth: bandwidth, Startup: startup}
	return b
}

// WithIterations sets the per-measurement repeat count.
func (b *Builder) WithIterations(n int) *Builder {
	if b.err != nil {
		return b
	}
	if n < 1 {
		return b.fail("iterations must be at least 1, got %d", n)
	}
	b.cfg.Iterations = n
	return b
}

// WithOutput sets the destination file for the JSON report.
func (b *Builder) WithOutput(path string) *Builder {
	if b.err != nil {
		return b
	}
	if path == "" {
		return b.fail("output path must not be empty")
	}
	b.cfg.Output = path
	return b
}

// WithSweep sets the start/end/step range swept over and the axis held
// fixed (processor count or matrix size, depending on the subcommand).
func (b *Builder) WithSweep(start, end, step, fixed int) *Builder {
	if b.err != nil {
		return b
	}
	if step <= 0 {
		return b.fail("step must be positive, got %d", step)
	}
	if end < start {
		return b.fail("end must be >= start, got end=%d start=%d", end, start)
	}
	if fixed < 1 {
		return b.fail("fixed dimension must be at least 1, got %d", fixed)
	}
	b.cfg.Start, b.cfg.End, b.cfg.Step, b.cfg.Fixed = start, end, step, fixed
	return b
}

// Build returns the accumulated config, or the first validation error.
func (b *Builder) Build() (*RunConfig, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.cfg.Step == 0 {
		return nil, fmt.Errorf("sweep range not set")
	}
	return b.cfg, nil
}
