// Package stats reduces a benchmark run's per-iteration virtual-time
// samples into aggregate statistics, using gonum's stat package the way
// the teacher's pack already reaches for a gonum subpackage
// (mathext/prng) for other numerical work.
package stats

import (
	"math"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"
)

// Summary is the aggregate view of one benchmark measurement's repeated
// virtual-time samples, all in microseconds to match the CLI's output unit.
type Summary struct {
	Count  int
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
	P50    float64
	P95    float64
}

// Summarize reduces samples (each a max_debug_time reading) into a Summary.
// Samples are copied and sorted internally; the caller's slice is untouched.
func Summarize(samples []time.Duration) Summary {
	if len(samples) == 0 {
		return Summary{}
	}

	us := make([]float64, len(samples))
	for i, d := range samples {
		us[i] = float64(d.Microseconds())
	}
	sorted := append([]float64(nil), us...)
	sort.Float64s(sorted)

	mean, variance := stat.MeanVariance(us, nil)
	if len(us) == 1 {
		// The unbiased variance divides by n-1, which is 0/0 for one sample.
		variance = 0
	}
	return Summary{
		Count:  len(us),
		Mean:   mean,
		StdDev: math.Sqrt(variance),
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		P50:    stat.Quantile(0.50, stat.Empirical, sorted, nil),
		P95:    stat.Quantile(0.95, stat.Empirical, sorted, nil),
	}
}
