package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gridforge/mazecore/cmd/benchmark"
	"github.com/gridforge/mazecore/cmd/generate"
	"github.com/gridforge/mazecore/cmd/replay"
	"github.com/gridforge/mazecore/cmd/solve"
	"github.com/gridforge/mazecore/pkg/common"
)

var (
	// Global flags
	verbose    bool
	workers    string
	workingDir string

	// Parsed workers value
	WorkersCount int
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mazecore",
	Short: "Maze generation, solving, and replay engine",
	Long: `mazecore is a CLI tool for generating mazes with several algorithms,
solving them with several search strategies, replaying a recorded run
headlessly, and benchmarking every generator against every solver.

It provides commands for:
  - Generating a maze and writing it to a .maze file
  - Solving a maze and optionally recording an .events log
  - Replaying an .events log against a grid
  - Benchmarking every generator/solver pairing at a fixed size`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		common.VerboseEnabled = verbose

		count, err := common.ParseWorkers(workers)
		if err != nil {
			return fmt.Errorf("invalid --workers value: %w", err)
		}
		WorkersCount = count
		common.Verbose("Workers: %d (from flag: %s)", WorkersCount, workers)

		if workingDir != "" {
			common.Verbose("Changing working directory to: %s", workingDir)
			if err := os.Chdir(workingDir); err != nil {
				return fmt.Errorf("failed to change working directory: %w", err)
			}
		}

		return nil
	},
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). It only needs to happen
// once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output for debugging")
	rootCmd.PersistentFlags().StringVarP(&workers, "workers", "j", "half", "number of concurrent workers (integer, 'half', or 'full')")
	rootCmd.PersistentFlags().StringVarP(&workingDir, "working-dir", "w", "", "working directory for file paths (default: current directory)")

	rootCmd.AddCommand(generate.GetCommand())
	rootCmd.AddCommand(solve.GetCommand())
	rootCmd.AddCommand(replay.GetCommand())
	rootCmd.AddCommand(benchmark.GetCommand())
}
