package mazegen

import (
	"github.com/gridforge/mazecore/pkg/grid"
	"github.com/gridforge/mazecore/pkg/randsrc"
)

// Braid knocks out one random wall of each dead-end cell with independent
// probability braid (spec §4.3.5). Border walls are preserved: only
// in-bounds neighbor edges are eligible. Does not guarantee an exact
// proportion removed; the expected fraction removed equals braid.
func Braid(g *grid.Grid, braid float64, seed int64) {
	if braid <= 0 {
		return
	}
	rng := randsrc.New(seed)

	for _, pt := range g.DeadEnds() {
		if rng.Float64() >= braid {
			continue
		}

		var nbrs [4]grid.Neighbor
		n := g.Neighbors(pt.X, pt.Y, &nbrs)
		if n == 0 {
			continue
		}

		// Candidates are neighbors across a still-standing wall (i.e. every
		// in-bounds neighbor of a dead end, since by definition three of
		// its four edges are walls and at most one is open).
		var candidates []grid.Neighbor
		for i := 0; i < n; i++ {
			if g.HasWall(pt.X, pt.Y, nbrs[i].Dir) {
				candidates = append(candidates, nbrs[i])
			}
		}
		if len(candidates) == 0 {
			continue
		}

		pick := candidates[rng.Intn(len(candidates))]
		_ = g.Carve(pt.X, pt.Y, pick.Dir)
	}
}
