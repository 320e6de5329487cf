package mazegen

import (
	"github.com/gridforge/mazecore/pkg/common"
	"github.com/gridforge/mazecore/pkg/events"
	"github.com/gridforge/mazecore/pkg/grid"
	"github.com/gridforge/mazecore/pkg/randsrc"
)

func init() {
	Register(DFS, "recursive backtracker: long corridors, low branching", generateDFS)
}

// generateDFS implements the recursive backtracker (spec §4.3.1): an
// explicit LIFO buffer of coordinates, filter-then-uniform-draw tie-break,
// terminating when the buffer empties. Grounded on the teacher's
// backtracking.go style of an explicit stack-driven carve loop threaded
// with a *randsrc.Source.
func generateDFS(cfg Config) (*grid.Grid, error) {
	g, err := grid.New(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	g.FillWalls()

	rng := randsrc.New(cfg.Seed)
	if carveDFS(g, rng, cfg) {
		return nil, common.ErrCancelled
	}
	return g, nil
}

// carveDFS runs the backtracker over an already-allocated, all-walls grid
// starting at (0,0), the canonical start. Shared by the plain DFS generator
// and the fractal generator's per-block and macro-lattice passes. Returns
// true if cfg.Ctx was cancelled before the carve completed.
func carveDFS(g *grid.Grid, rng *randsrc.Source, cfg Config) bool {
	start := g.Start()
	g.SetFlag(start.X, start.Y, grid.VisitedGen, true)

	stack := []grid.Point{start}
	var nbrs [4]grid.Neighbor
	var unvisited [4]grid.Neighbor

	for len(stack) > 0 {
		if cfg.cancelled() {
			return true
		}
		top := stack[len(stack)-1]

		n := g.Neighbors(top.X, top.Y, &nbrs)
		uCount := 0
		for i := 0; i < n; i++ {
			if !g.GetFlag(nbrs[i].X, nbrs[i].Y, grid.VisitedGen) {
				unvisited[uCount] = nbrs[i]
				uCount++
			}
		}

		if uCount == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		// Filter first, then draw uniformly from the survivors (spec
		// §4.3.1 tie-break — not a fixed cardinal order).
		pick := unvisited[rng.Intn(uCount)]
		carveAndVisit(g, top, pick, cfg.Sink)
		stack = append(stack, pick.Point)
	}
	return false
}

// carveAndVisit opens the wall between from and to, marks to visited, and
// emits the matching CarveCell event.
func carveAndVisit(g *grid.Grid, from grid.Point, to grid.Neighbor, sink events.Sink) {
	if err := g.Carve(from.X, from.Y, to.Dir); err != nil {
		common.Verbose("carveAndVisit: unexpected out-of-bounds carve from %v dir %v", from, to.Dir)
		return
	}
	g.SetFlag(to.X, to.Y, grid.VisitedGen, true)
	sink.OnEvent(events.Event{Kind: events.CarveCell, X: uint32(to.X), Y: uint32(to.Y), Aux: uint32(to.Dir)})
}
