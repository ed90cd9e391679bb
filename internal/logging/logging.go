// Package logging wires a component name to the shared log.Logger facade
// used throughout the simulator, mirroring the teacher's thin wrapping of
// github.com/luxfi/log (itself backed by go.uber.org/zap).
package logging

import "github.com/luxfi/log"

// New returns a named production logger.
func New(name string) log.Logger {
	return log.NewLogger(name)
}

// NoOp returns a logger that discards everything, used in benchmark hot
// loops and tests where logging overhead would dominate the measurement.
func NoOp() log.Logger {
	return log.NewNoOpLogger()
}
