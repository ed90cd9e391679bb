// Package probe instruments a worker's Core with a wall-clock-based virtual
// clock, converting message sends and receives into synthetic elapsed time
// under a configurable interconnect cost model.
//
// Go has no cgo-free per-goroutine CPU timer, so the virtual clock is
// wall-clock elapsed time since the Prober was created plus the synthetic
// "additional" debt described by the probe design, rather than a
// thread-cpu-time reading.
package probe

import "time"

// CoreDebug is the harvested per-worker record a Processor collects once a
// worker's task exits: its identity, final virtual clock, and message
// counts by category.
type CoreDebug struct {
	Row, Col          int
	Clock             time.Duration
	DirectMessages    int
	BroadcastMessages int
}
