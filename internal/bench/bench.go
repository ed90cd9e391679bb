// Package bench drives sweeps of ProbeMatMul runs and shapes the results
// into the nested JSON report the CLI writes to --output.
package bench

import (
	"encoding/json"
	"math/rand"
	"os"
	"time"

	"github.com/luxfi/log"
	"go.uber.org/zap"

	"github.com/luxfi/meshsim/internal/config"
	"github.com/luxfi/meshsim/internal/kernel"
	"github.com/luxfi/meshsim/internal/matmul"
	"github.com/luxfi/meshsim/internal/matrix"
	"github.com/luxfi/meshsim/internal/metrics"
	"github.com/luxfi/meshsim/internal/semiring"
	"github.com/luxfi/meshsim/internal/stats"
)

// Point is one (matrix_size, processor_size) measurement: iter virtual-time
// samples in microseconds.
type Point struct {
	MatrixSize    int     `json:"matrix_size"`
	ProcessorSize int     `json:"processor_size"`
	Data          []int64 `json:"data"`
}

// Bench is one schedule's series of sweep points.
type Bench struct {
	Name string  `json:"name"`
	Data []Point `json:"data"`
}

// Report is the top-level JSON document written to --output.
type Report struct {
	Name string  `json:"name"`
	Data []Bench `json:"data"`
}

func kernelFor(s config.Schedule) kernel.Kernel[int64] {
	switch s {
	case config.Hash:
		return kernel.Hash[int64]{}
	case config.FoxOtto:
		return kernel.FoxOtto[int64]{}
	case config.Cannon:
		return kernel.Cannon[int64]{}
	case config.PipeFoxOtto:
		return kernel.PipeFoxOtto[int64]{}
	default:
		return kernel.Hash[int64]{}
	}
}

func randomMatrix(n int) *matrix.Matrix[int64] {
	m := matrix.New[int64](n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			m.Set(i, j, rand.Int63n(100))
		}
	}
	return m
}

// RunMatrixSweep sweeps matrix size over [cfg.Start, cfg.End] by cfg.Step,
// holding the processor grid (cfg.Fixed x cfg.Fixed) constant: the "matrix"
// subcommand. collector may be nil.
func RunMatrixSweep(cfg *config.RunConfig, logger log.Logger, collector metrics.Metrics) (*Report, error) {
	return run(cfg, logger, collector, "matrix_sweep", func(n int) (int, int) { return n, cfg.Fixed })
}

// RunProcessorSweep sweeps processor grid size over [cfg.Start, cfg.End] by
// cfg.Step, holding the matrix size constant: the "processor" subcommand.
// collector may be nil.
func RunProcessorSweep(cfg *config.RunConfig, logger log.Logger, collector metrics.Metrics) (*Report, error) {
	return run(cfg, logger, collector, "processor_sweep", func(n int) (int, int) { return cfg.Fixed, n })
}

func run(cfg *config.RunConfig, logger log.Logger, collector metrics.Metrics, name string, axes func(step int) (matrixSize, gridSize int)) (*Report, error) {
	report := &Report{Name: name}

	for _, sched := range cfg.Schedules {
		kern := kernelFor(sched)
		b := Bench{Name: string(sched)}

		for n := cfg.Start; n <= cfg.End; n += cfg.Step {
			matrixSize, gridSize := axes(n)
			if kern.RequiresSquareGrid() && gridSize < 1 {
				continue
			}

			durations := make([]time.Duration, 0, cfg.Iterations)
			for iter := 0; iter < cfg.Iterations; iter++ {
				mm, err := matmul.NewProbe[int64](gridSize, gridSize, semiring.IntRing{}, kern, cfg.Model, logger)
				if err != nil {
					return nil, err
				}
				a := randomMatrix(matrixSize)
				bMat := randomMatrix(matrixSize)
				if _, err := mm.ParallelMult(a, bMat); err != nil {
					return nil, err
				}
				d := mm.MaxDebugTime()
				durations = append(durations, d)
				if collector != nil {
					collector.Runs().WithLabelValues(string(sched)).Inc()
					collector.MaxDebugTime().WithLabelValues(string(sched)).Observe(float64(d.Microseconds()))
					var direct, broadcast int
					for _, cd := range mm.DebugStats() {
						direct += cd.DirectMessages
						broadcast += cd.BroadcastMessages
					}
					collector.DirectMessages().Add(float64(direct))
					collector.BroadcastMessages().Add(float64(broadcast))
				}
			}

			summary := stats.Summarize(durations)
			if logger != nil {
				logger.WithFields(
					zap.String("kernel", string(sched)),
					zap.Int("matrix_size", matrixSize),
					zap.Int("processor_size", gridSize),
					zap.Float64("mean_us", summary.Mean),
					zap.Float64("p95_us", summary.P95),
				).Info("measurement complete")
			}

			samples := make([]int64, len(durations))
			for i, d := range durations {
				samples[i] = d.Microseconds()
			}
			b.Data = append(b.Data, Point{
				MatrixSize:    matrixSize,
				ProcessorSize: gridSize,
				Data:          samples,
			})
		}
		report.Data = append(report.Data, b)
	}
	return report, nil
}

// WriteJSON marshals the report and writes it to path.
func WriteJSON(report *Report, path string) error {
	buf, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, buf, 0o644)
}
