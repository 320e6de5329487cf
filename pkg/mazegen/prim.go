package mazegen

import (
	"github.com/gridforge/mazecore/pkg/common"
	"github.com/gridforge/mazecore/pkg/grid"
	"github.com/gridforge/mazecore/pkg/randsrc"
)

func init() {
	Register(Prim, "frontier-based Prim's: short spiky branches", generatePrim)
}

// frontierWall names a carve candidate: the wall between from (already
// visited) and to (frontier, possibly since claimed by another wall entry).
type frontierWall struct {
	from grid.Point
	to   grid.Neighbor
}

// generatePrim implements randomized Prim's (spec §4.3.2): a frontier set of
// walls between a visited and an unvisited cell, drawn uniformly at random
// until empty. Grounded on lvlath's graph/prim_kruskal.go frontier-growth
// idiom, retargeted from a generic weighted graph to the grid's own
// adjacency.
func generatePrim(cfg Config) (*grid.Grid, error) {
	g, err := grid.New(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	g.FillWalls()

	rng := randsrc.New(cfg.Seed)
	start := g.Start()
	g.SetFlag(start.X, start.Y, grid.VisitedGen, true)

	var nbrs [4]grid.Neighbor
	frontier := make([]frontierWall, 0, 64)
	appendFrontier := func(p grid.Point) {
		n := g.Neighbors(p.X, p.Y, &nbrs)
		for i := 0; i < n; i++ {
			if !g.GetFlag(nbrs[i].X, nbrs[i].Y, grid.VisitedGen) {
				frontier = append(frontier, frontierWall{from: p, to: nbrs[i]})
			}
		}
	}
	appendFrontier(start)

	for len(frontier) > 0 {
		if cfg.cancelled() {
			return nil, common.ErrCancelled
		}
		idx := rng.Intn(len(frontier))
		wall := frontier[idx]
		// Swap-remove: order doesn't matter for a uniform-random frontier.
		frontier[idx] = frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]

		if g.GetFlag(wall.to.X, wall.to.Y, grid.VisitedGen) {
			continue // already claimed by a different frontier entry
		}

		carveAndVisit(g, wall.from, wall.to, cfg.Sink)
		appendFrontier(wall.to.Point)
	}

	return g, nil
}
