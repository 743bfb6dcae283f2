package main

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/cwbudde/riemanncg/internal/cg"
	"github.com/cwbudde/riemanncg/internal/opt"
	"github.com/cwbudde/riemanncg/internal/problem"
	"github.com/cwbudde/riemanncg/internal/store"
)

var (
	problemName string
	schemeName  string
	dim         int
	maxSteps    int
	dataDir     string
	globalSeed  bool
	swarmIters  int
	popSize     int
	seed        int64
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a single optimization",
	Long: `Minimizes a named benchmark problem with the chosen conjugate-direction
scheme, optionally seeding the start point with a mayfly swarm search and
persisting the result and iteration trace.`,
	RunE: runOptimization,
}

func init() {
	runCmd.Flags().StringVar(&problemName, "problem", "quadratic", "Benchmark problem: "+strings.Join(problem.Names(), ", "))
	runCmd.Flags().StringVar(&schemeName, "scheme", "hestenes-stiefel", "Conjugate-direction scheme")
	runCmd.Flags().IntVar(&dim, "dim", 0, "Problem dimension (problems with a free dimension only)")
	runCmd.Flags().IntVar(&maxSteps, "max-steps", 1000, "Iteration bound")
	runCmd.Flags().StringVar(&dataDir, "data", "", "Data directory for result and trace (empty = no persistence)")
	runCmd.Flags().BoolVar(&globalSeed, "global-seed", false, "Seed the start point with a mayfly swarm search")
	runCmd.Flags().IntVar(&swarmIters, "swarm-iters", 100, "Swarm search iterations")
	runCmd.Flags().IntVar(&popSize, "pop", 30, "Swarm population size")
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Swarm random seed")

	rootCmd.AddCommand(runCmd)
}

func runOptimization(cmd *cobra.Command, args []string) error {
	prob, err := problem.ByName(problemName, dim)
	if err != nil {
		return err
	}
	scheme, err := cg.ParseScheme(schemeName)
	if err != nil {
		return err
	}
	if maxSteps <= 0 {
		return fmt.Errorf("max-steps must be positive, got %d", maxSteps)
	}

	slog.Info("Starting optimization",
		"problem", prob.Name,
		"dim", prob.Dim,
		"scheme", scheme.String(),
		"max_steps", maxSteps,
		"global_seed", globalSeed,
	)

	initial := prob.Initial
	if globalSeed {
		seeder := opt.NewMayfly(swarmIters, popSize, seed)
		best, bestCost := seeder.Run(func(x []float64) float64 {
			return prob.Cost(prob.Project(x))
		}, prob.Lower, prob.Upper, prob.Dim)
		initial = prob.Project(best)
		slog.Info("Swarm seed found", "cost", bestCost)
	}

	optimizer := cg.New(prob.Geometry, scheme)
	optimizer.MaxSteps = maxSteps

	runID := uuid.New().String()
	var traceWriter *store.TraceWriter
	if dataDir != "" {
		traceWriter, err = store.NewTraceWriter(dataDir, runID)
		if err != nil {
			return fmt.Errorf("failed to create trace writer: %w", err)
		}
		defer traceWriter.Close()
	}

	iterations := 0
	optimizer.OnIteration = func(it cg.Iteration) {
		iterations++
		slog.Debug("Iteration complete",
			"iteration", it.Index,
			"cost", it.Cost,
			"grad_norm", it.GradNorm,
			"step", it.Step,
		)
		if traceWriter != nil {
			entry := store.TraceEntry{
				Iteration: it.Index,
				Cost:      it.Cost,
				GradNorm:  it.GradNorm,
				Step:      it.Step,
				Timestamp: time.Now(),
			}
			if err := traceWriter.Write(entry); err != nil {
				slog.Warn("Failed to write trace entry", "error", err)
			}
		}
	}

	initialCost := prob.Cost(initial)
	start := time.Now()
	final := optimizer.Optimize(initial, prob.Cost, prob.Grad)
	elapsed := time.Since(start)
	finalCost := prob.Cost(final)

	slog.Info("Optimization complete",
		"elapsed", elapsed,
		"iterations", iterations,
		"initial_cost", initialCost,
		"final_cost", finalCost,
		"improvement", initialCost-finalCost,
	)

	if dataDir != "" {
		fsStore, err := store.NewFSStore(dataDir)
		if err != nil {
			return fmt.Errorf("failed to create store: %w", err)
		}
		result := &store.RunResult{
			RunID:       runID,
			Point:       final,
			Cost:        finalCost,
			InitialCost: initialCost,
			Iterations:  iterations,
			Stationary:  iterations < maxSteps,
			Timestamp:   time.Now(),
			Config: store.RunConfig{
				Problem:    prob.Name,
				Scheme:     scheme.String(),
				Dim:        prob.Dim,
				MaxSteps:   maxSteps,
				GlobalSeed: globalSeed,
				SwarmIters: swarmIters,
				SwarmPop:   popSize,
				Seed:       seed,
			},
		}
		if err := fsStore.SaveResult(runID, result); err != nil {
			return fmt.Errorf("failed to save result: %w", err)
		}
		fmt.Printf("Saved run %s\n", runID)
	}

	fmt.Printf("%s/%s: cost %.6g -> %.6g in %d iterations (%s)\n",
		prob.Name, scheme.String(), initialCost, finalCost, iterations, elapsed)

	return nil
}
