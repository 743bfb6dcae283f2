package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cwbudde/riemanncg/internal/store"
)

var traceDataDir string

var traceCmd = &cobra.Command{
	Use:   "trace [run-id]",
	Short: "Inspect persisted runs",
	Long: `Lists persisted optimization runs, or summarizes the iteration trace of
a specific run.`,
	RunE: runTrace,
}

func init() {
	traceCmd.Flags().StringVar(&traceDataDir, "data", "./data", "Data directory")
	rootCmd.AddCommand(traceCmd)
}

func runTrace(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return listRuns()
	}
	return showTrace(args[0])
}

func listRuns() error {
	fsStore, err := store.NewFSStore(traceDataDir)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}

	infos, err := fsStore.ListResults()
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}
	if len(infos) == 0 {
		fmt.Println("No runs found")
		return nil
	}

	fmt.Printf("%-36s  %-12s  %-18s  %10s  %6s\n", "RUN", "PROBLEM", "SCHEME", "COST", "ITERS")
	for _, info := range infos {
		fmt.Printf("%-36s  %-12s  %-18s  %10.4g  %6d\n",
			info.RunID, info.Problem, info.Scheme, info.Cost, info.Iterations)
	}
	return nil
}

func showTrace(runID string) error {
	fsStore, err := store.NewFSStore(traceDataDir)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}

	result, err := fsStore.LoadResult(runID)
	if err != nil {
		return fmt.Errorf("failed to load run: %w", err)
	}

	fmt.Printf("Run %s: %s/%s, cost %.6g -> %.6g, %d iterations\n",
		result.RunID, result.Config.Problem, result.Config.Scheme,
		result.InitialCost, result.Cost, result.Iterations)

	reader, err := store.NewTraceReader(traceDataDir, runID)
	if err != nil {
		fmt.Println("No trace recorded")
		return nil
	}
	defer reader.Close()

	entries, err := reader.ReadAll()
	if err != nil {
		return fmt.Errorf("failed to read trace: %w", err)
	}

	fmt.Printf("%6s  %14s  %14s  %12s\n", "ITER", "COST", "GRAD NORM", "STEP")
	for _, e := range entries {
		fmt.Printf("%6d  %14.6g  %14.6g  %12.6g\n", e.Iteration, e.Cost, e.GradNorm, e.Step)
	}
	return nil
}
