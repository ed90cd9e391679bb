package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/meshsim/internal/config"
)

func scheduleNames(cfg *config.RunConfig) []string {
	names := make([]string, len(cfg.Schedules))
	for i, s := range cfg.Schedules {
		names[i] = string(s)
	}
	return names
}

func TestBuildConfigDefaults(t *testing.T) {
	cmd := matrixCmd()
	cfg, err := buildConfig(cmd, "start", "end", "step", "proc")
	require.NoError(t, err)
	require.Equal(t, 4, cfg.Start)
	require.Equal(t, 64, cfg.End)
	require.Equal(t, 4, cfg.Step)
	require.Equal(t, 2, cfg.Fixed)
	require.Equal(t, 20, cfg.Iterations)
	require.ElementsMatch(t, []string{"hash", "foxotto", "cannon", "pipefoxotto"}, scheduleNames(cfg))
}

func TestBuildConfigRestrictsToOneSchedule(t *testing.T) {
	cmd := processorCmd()
	require.NoError(t, cmd.Flags().Set("comm", "cannon"))
	cfg, err := buildConfig(cmd, "start", "end", "step", "matrix")
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"cannon"}, scheduleNames(cfg))
}

func TestBuildConfigRejectsUnknownSchedule(t *testing.T) {
	cmd := matrixCmd()
	require.NoError(t, cmd.Flags().Set("comm", "bogus"))
	_, err := buildConfig(cmd, "start", "end", "step", "proc")
	require.Error(t, err)
}
