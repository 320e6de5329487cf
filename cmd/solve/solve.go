package solve

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gridforge/mazecore/pkg/common"
	"github.com/gridforge/mazecore/pkg/events"
	"github.com/gridforge/mazecore/pkg/mazesolve"
	"github.com/gridforge/mazecore/pkg/serialize"
)

var (
	algo         string
	recordEvents string
)

var solveCmd = &cobra.Command{
	Use:   "solve <maze-file>",
	Short: "Solve a maze with the chosen search algorithm",
	Long: `Read a .maze file, solve it with the chosen algorithm, and report whether
a path was found.

Examples:
  mazecore solve maze.maze --algo astar
  mazecore solve big.maze --algo swarm --record-events solve.events`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		f, err := os.Open(path)
		if err != nil {
			return common.NewIOError("open maze file", err)
		}
		defer f.Close()

		g, _, err := serialize.ReadMaze(f)
		if err != nil {
			return common.NewIOError("read maze file", err)
		}

		var recorder *events.Recorder
		cfg := mazesolve.Config{}
		if recordEvents != "" {
			recorder = events.NewRecorder()
			cfg.Sink = recorder
		}

		common.Info("Solving %dx%d maze with %s", g.Width(), g.Height(), algo)

		res, err := mazesolve.Solve(g, mazesolve.Algo(algo), g.Start(), g.Exit(), cfg)
		if err != nil {
			return fmt.Errorf("solve failed: %w", err)
		}

		if recorder != nil {
			ef, err := os.Create(recordEvents)
			if err != nil {
				return common.NewIOError("create events file", err)
			}
			defer ef.Close()
			if err := events.WriteLog(ef, recorder.Events, false); err != nil {
				return common.NewIOError("write events file", err)
			}
		}

		if !res.Found {
			common.Warning("no path found (visited %d cells)", res.VisitedCount)
			return &common.AlgorithmError{Msg: fmt.Sprintf("%s found no path from start to exit", algo)}
		}

		common.Info("Found path of length %d (visited %d cells)", len(res.Path), res.VisitedCount)
		return nil
	},
}

func init() {
	solveCmd.Flags().StringVarP(&algo, "algo", "a", string(mazesolve.BFS), "solver algorithm")
	solveCmd.Flags().StringVar(&recordEvents, "record-events", "", "optional .events file to record visit/path events to")
}

// GetCommand returns the solve command for registration with root.
func GetCommand() *cobra.Command {
	return solveCmd
}
