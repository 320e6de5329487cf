package events

import "github.com/gridforge/mazecore/pkg/grid"

// Replay applies a recorded event sequence to g, reproducing the observable
// state the original producer had at the end of recording (spec §3.3, §8
// "Replay"). CarveCell/ConnectCells open the wall in direction Aux from
// (X, Y); Visit/Path/ClearVisit set or clear the matching single-cell flag.
func Replay(evts []Event, g *grid.Grid) error {
	for _, e := range evts {
		x, y := int(e.X), int(e.Y)
		switch e.Kind {
		case CarveCell, ConnectCells:
			d := grid.Dir(e.Aux)
			if err := g.Carve(x, y, d); err != nil {
				return err
			}
		case Visit:
			g.SetFlag(x, y, grid.VisitedSolve, true)
		case Path:
			g.SetFlag(x, y, grid.OnPath, true)
		case ClearVisit:
			g.SetFlag(x, y, grid.VisitedSolve, false)
		}
	}
	return nil
}
