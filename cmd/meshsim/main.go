// Command meshsim sweeps matrix-multiplication and transitive-closure
// kernels over a 2-D torus of simulated workers and reports virtual-time
// measurements as JSON.
package main

import (
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/luxfi/meshsim/internal/bench"
	"github.com/luxfi/meshsim/internal/config"
	"github.com/luxfi/meshsim/internal/logging"
	"github.com/luxfi/meshsim/internal/metrics"
)

var rootCmd = &cobra.Command{
	Use:   "meshsim",
	Short: "Discrete-event simulator for mesh/torus matrix-multiplication kernels",
}

func init() {
	for _, cmd := range []*cobra.Command{matrixCmd(), processorCmd()} {
		addGlobalFlags(cmd)
		rootCmd.AddCommand(cmd)
	}
}

func addGlobalFlags(cmd *cobra.Command) {
	cmd.Flags().String("comm", "", "communication schedule: hash|foxotto|cannon|pipefoxotto (default: run all four)")
	cmd.Flags().Duration("latency", 0, "per-hop network latency")
	cmd.Flags().Float64("bandwidth", 1, "network bandwidth in bytes/ns")
	cmd.Flags().Duration("startup", 0, "broadcast per-member startup cost")
	cmd.Flags().Int("iter", 20, "iterations per measurement")
	cmd.Flags().String("output", "report.json", "output JSON path")
}

func matrixCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "matrix",
		Short: "Sweep matrix size, holding processor grid size fixed",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(cmd, "start", "end", "step", "proc")
			if err != nil {
				return err
			}
			collector, err := newCollector()
			if err != nil {
				return err
			}
			report, err := bench.RunMatrixSweep(cfg, logging.New("meshsim"), collector)
			if err != nil {
				return err
			}
			return bench.WriteJSON(report, cfg.Output)
		},
	}
	cmd.Flags().Int("start", 4, "starting matrix size")
	cmd.Flags().Int("end", 64, "ending matrix size")
	cmd.Flags().Int("step", 4, "matrix-size step")
	cmd.Flags().Int("proc", 2, "fixed processor grid dimension")
	return cmd
}

func processorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "processor",
		Short: "Sweep processor grid size, holding matrix size fixed",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(cmd, "start", "end", "step", "matrix")
			if err != nil {
				return err
			}
			collector, err := newCollector()
			if err != nil {
				return err
			}
			report, err := bench.RunProcessorSweep(cfg, logging.New("meshsim"), collector)
			if err != nil {
				return err
			}
			return bench.WriteJSON(report, cfg.Output)
		},
	}
	cmd.Flags().Int("start", 1, "starting processor grid dimension")
	cmd.Flags().Int("end", 8, "ending processor grid dimension")
	cmd.Flags().Int("step", 1, "processor-grid step")
	cmd.Flags().Int("matrix", 32, "fixed matrix size")
	return cmd
}

func newCollector() (metrics.Metrics, error) {
	return metrics.New("meshsim", prometheus.NewRegistry())
}

func buildConfig(cmd *cobra.Command, startFlag, endFlag, stepFlag, fixedFlag string) (*config.RunConfig, error) {
	start, _ := cmd.Flags().GetInt(startFlag)
	end, _ := cmd.Flags().GetInt(endFlag)
	step, _ := cmd.Flags().GetInt(stepFlag)
	fixed, _ := cmd.Flags().GetInt(fixedFlag)
	comm, _ := cmd.Flags().GetString("comm")
	latency, _ := cmd.Flags().GetDuration("latency")
	bandwidth, _ := cmd.Flags().GetFloat64("bandwidth")
	startup, _ := cmd.Flags().GetDuration("startup")
	iter, _ := cmd.Flags().GetInt("iter")
	output, _ := cmd.Flags().GetString("output")

	b := config.NewBuilder().
		WithCostModel(latency, bandwidth, startup).
		WithIterations(iter).
		WithOutput(output).
		WithSweep(start, end, step, fixed)
	if comm != "" {
		b = b.WithSchedule(comm)
	}
	return b.Build()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "meshsim: %v\n", err)
		os.Exit(1)
	}
}
