package benchmark

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gridforge/mazecore/pkg/batch"
	"github.com/gridforge/mazecore/pkg/common"
)

var size int

var benchmarkCmd = &cobra.Command{
	Use:     "benchmark",
	Aliases: []string{"bench"},
	Short:   "Benchmark every generator against every solver",
	Long: `Run every registered generator at --size x --size, then solve the result
with every registered solver, and print a timing table.

Example:
  mazecore benchmark --size 200 --workers full`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if size < 2 {
			return common.NewUsageError("--size must be >= 2")
		}

		workersFlag, _ := cmd.Flags().GetString("workers")
		workers, err := common.ParseWorkers(workersFlag)
		if err != nil {
			return common.NewUsageError("invalid --workers value: %v", err)
		}
		common.Info("Benchmarking %dx%d with %d workers", size, size, workers)

		report, err := batch.RunBenchmark(context.Background(), size, workers)
		if err != nil {
			return fmt.Errorf("benchmark failed: %w", err)
		}

		fmt.Printf("%-10s %-10s %-8s %-10s %-10s %s\n", "GENERATOR", "SOLVER", "OK", "GEN(ms)", "SOLVE(ms)", "PATH")
		for _, r := range report.Results {
			status := "ok"
			if !r.Success {
				status = "FAIL"
			}
			fmt.Printf("%-10s %-10s %-8s %-10d %-10d %d\n", r.Generator, r.Solver, status, r.GenerationMS, r.SolveMS, r.PathLength)
		}
		fmt.Printf("\n%d ok, %d failed, total %s\n", report.SuccessCount, report.FailureCount, report.TotalTime)

		if report.FailureCount > 0 {
			return &common.AlgorithmError{Msg: fmt.Sprintf("%d generator/solver pairings failed", report.FailureCount)}
		}
		return nil
	},
}

func init() {
	benchmarkCmd.Flags().IntVar(&size, "size", 100, "grid size (size x size)")
}

// GetCommand returns the benchmark command for registration with root.
func GetCommand() *cobra.Command {
	return benchmarkCmd
}
