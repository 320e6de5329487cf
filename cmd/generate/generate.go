package generate

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gridforge/mazecore/pkg/common"
	"github.com/gridforge/mazecore/pkg/events"
	"github.com/gridforge/mazecore/pkg/mazegen"
	"github.com/gridforge/mazecore/pkg/serialize"
)

var (
	width        int
	height       int
	algo         string
	seed         int64
	braid        float64
	out          string
	recordEvents string
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen", "g"},
	Short:   "Generate a new maze",
	Long: `Generate a maze with the chosen algorithm and write it to a .maze file.

Examples:
  mazecore generate --width 100 --height 100 --algo dfs --seed 1 --out maze.maze
  mazecore gen --width 500 --height 500 --algo fractal --out big.maze
  mazecore g --width 64 --height 64 --algo organic --braid 0.3 --record-events run.events`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if width < 2 || height < 2 {
			return common.NewUsageError("--width and --height must each be >= 2")
		}
		if braid < 0 || braid > 1 {
			return common.NewUsageError("--braid must be in [0, 1]")
		}
		if out == "" {
			return common.NewUsageError("--out is required")
		}

		workersFlag, _ := cmd.Flags().GetString("workers")
		workerCount, err := common.ParseWorkers(workersFlag)
		if err != nil {
			return common.NewUsageError("invalid --workers value: %v", err)
		}

		var recorder *events.Recorder
		var sink events.Sink = events.NullSink{}
		if recordEvents != "" {
			recorder = events.NewRecorder()
			sink = recorder
		}

		common.Verbose("Generating %dx%d maze with %s (seed=%d)", width, height, algo, seed)

		sp := common.NewSpinner(fmt.Sprintf("generating %dx%d maze with %s...", width, height, algo))
		sp.Start()

		cfg := mazegen.Config{
			Width:   width,
			Height:  height,
			Seed:    seed,
			Algo:    mazegen.Algo(algo),
			Braid:   braid,
			Workers: workerCount,
			Sink:    sink,
		}
		g, err := mazegen.Generate(cfg)
		if err != nil {
			sp.Stop()
			return fmt.Errorf("generation failed: %w", err)
		}

		sp.UpdateMessage("writing %s...", out)
		f, err := os.Create(out)
		if err != nil {
			sp.Stop()
			return common.NewIOError("create maze file", err)
		}
		defer f.Close()

		meta := map[string]string{
			"algorithm": algo,
			"seed":      fmt.Sprintf("%d", seed),
		}
		if err := serialize.WriteMaze(f, g, meta); err != nil {
			sp.Stop()
			return common.NewIOError("write maze file", err)
		}

		if recorder != nil {
			sp.UpdateMessage("writing %s...", recordEvents)
			ef, err := os.Create(recordEvents)
			if err != nil {
				sp.Stop()
				return common.NewIOError("create events file", err)
			}
			defer ef.Close()
			if err := events.WriteLog(ef, recorder.Events, false); err != nil {
				sp.Stop()
				return common.NewIOError("write events file", err)
			}
			sp.LogInfo("Wrote %d events to %s", len(recorder.Events), recordEvents)
		}

		sp.Stop()
		common.Info("Wrote maze to %s", out)
		return nil
	},
}

func init() {
	generateCmd.Flags().IntVarP(&width, "width", "W", 50, "grid width in cells")
	generateCmd.Flags().IntVarP(&height, "height", "H", 50, "grid height in cells")
	generateCmd.Flags().StringVarP(&algo, "algo", "a", string(mazegen.DFS), "generation algorithm (dfs, prim, fractal, organic)")
	generateCmd.Flags().Int64VarP(&seed, "seed", "s", 1, "PRNG seed")
	generateCmd.Flags().Float64Var(&braid, "braid", 0, "dead-end removal probability in [0, 1]")
	generateCmd.Flags().StringVarP(&out, "out", "o", "maze.maze", "output .maze file path")
	generateCmd.Flags().StringVar(&recordEvents, "record-events", "", "optional .events file to record carve events to")
}

// GetCommand returns the generate command for registration with root.
func GetCommand() *cobra.Command {
	return generateCmd
}
