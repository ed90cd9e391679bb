// Package metrics registers per-run simulator counters into a caller-owned
// prometheus.Registerer, mirroring the teacher's api/metrics wrapping.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics is the benchmark run's set of prometheus collectors: message
// counts and per-kernel run totals, namespaced under "meshsim".
type Metrics interface {
	// DirectMessages counts direct-channel sends across every run.
	DirectMessages() prometheus.Counter
	// BroadcastMessages counts broadcast-channel sends across every run.
	BroadcastMessages() prometheus.Counter
	// Runs counts completed parallel_mult/parallel_square invocations,
	// labelled by kernel name.
	Runs() *prometheus.CounterVec
	// MaxDebugTime observes the slowest-worker virtual clock of each run,
	// in microseconds, labelled by kernel name.
	MaxDebugTime() *prometheus.HistogramVec
}

type metrics struct {
	directMessages    prometheus.Counter
	broadcastMessages prometheus.Counter
	runs              *prometheus.CounterVec
	maxDebugTime      *prometheus.HistogramVec
}

// New registers meshsim's collectors into registerer.
func New(namespace string, registerer prometheus.Registerer) (Metrics, error) {
	m := &metrics{
		directMessages: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "direct_messages_total",
			Help:      "Number of direct-channel messages sent.",
		}),
		broadcastMessages: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "broadcast_messages_total",
			Help:      "Number of broadcast-channel messages sent.",
		}),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Number of completed parallel_mult/parallel_square runs.",
		}, []string{"kernel"}),
		maxDebugTime: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "max_debug_time_us",
			Help:      "Slowest worker's virtual clock per run, in microseconds.",
		}, []string{"kernel"}),
	}

	for _, c := range []prometheus.Collector{m.directMessages, m.broadcastMessages, m.runs, m.maxDebugTime} {
		if err := registerer.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *metrics) DirectMessages() prometheus.Counter      { return m.directMessages }
func (m *metrics) BroadcastMessages() prometheus.Counter   { return m.broadcastMessages }
func (m *metrics) Runs() *prometheus.CounterVec            { return m.runs }
func (m *metrics) MaxDebugTime() *prometheus.HistogramVec { return m.maxDebugTime }
