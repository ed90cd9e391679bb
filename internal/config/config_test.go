package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBuilderDefaults(t *testing.T) {
	cfg, err := NewBuilder().WithSweep(1, 10, 1, 4).Build()
	require.NoError(t, err)
	require.Equal(t, 20, cfg.Iterations)
	require.ElementsMatch(t, AllSchedules, cfg.Schedules)
}

func TestBuilderWithSchedule(t *testing.T) {
	cfg, err := NewBuilder().WithSchedule("cannon").WithSweep(1, 4, 1, 2).Build()
	require.NoError(t, err)
	require.Equal(t, []Schedule{Cannon}, cfg.Schedules)
}

func TestBuilderRejectsUnknownSchedule(t *testing.T) {
	_, err := NewBuilder().WithSchedule("bogus").WithSweep(1, 4, 1, 2).Build()
	require.Error(t, err)
}

func TestBuilderRejectsNonPositiveBandwidth(t *testing.T) {
	_, err := NewBuilder().WithCostModel(time.Microsecond, 0, 0).WithSweep(1, 4, 1, 2).Build()
	require.Error(t, err)
}

func TestBuilderRejectsBadSweep(t *testing.T) {
	_, err := NewBuilder().WithSweep(10, 1, 1, 2).Build()
	require.Error(t, err)
}

func TestBuilderRequiresSweep(t *testing.T) {
	_, err := NewBuilder().Build()
	require.Error(t, err)
}

func TestBuilderStopsAtFirstError(t *testing.T) {
	_, err := NewBuilder().WithSchedule("bogus").WithIterations(-5).Build()
	require.Error(t, err)
	require.Contains(t, err.Error(), "schedule")
}
