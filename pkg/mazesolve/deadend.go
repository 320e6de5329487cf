package mazesolve

import "github.com/gridforge/mazecore/pkg/grid"

func init() {
	Register(DeadEnd, "cellular-automaton dead-end filling, corridor trace", solveDeadEnd)
}

// solveDeadEnd implements the dead-end filler (spec §4.4 table): repeatedly
// "fill in" every cell that has at most one open, unfilled neighbor and is
// neither start nor exit, stopping once a pass fills nothing, then walking the
// single unfilled corridor left between start and exit. It reuses MarkAux
// rather than the visited-solve bit so a filled cell is distinguishable
// from a cell the walk-back later crosses while tracing the corridor.
func solveDeadEnd(g *grid.Grid, start, exit grid.Point, cfg Config) (Result, error) {
	w, h := g.Dimensions()
	filled := make(map[grid.Point]bool, w*h)

	var nbrs [4]grid.Neighbor
	for {
		if cfg.cancelled() {
			return Result{}, errCancelled
		}
		progressed := false
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				p := grid.Point{X: x, Y: y}
				if filled[p] || p == start || p == exit {
					continue
				}
				n := openNeighbors(g, p, &nbrs)
				open := 0
				for i := 0; i < n; i++ {
					if !filled[nbrs[i].Point] {
						open++
					}
				}
				if open <= 1 {
					filled[p] = true
					g.SetFlag(x, y, grid.MarkAux, true)
					progressed = true
				}
			}
		}
		if !progressed {
			break
		}
	}

	// Whatever remains unfilled forms the corridor(s) connecting start and
	// exit; walk it by always stepping to an open, unfilled, unvisited
	// neighbor, first in N,E,S,W order. On a perfect maze this is a single
	// unbranching path. On a braided maze surviving loops can branch; the
	// walk does not backtrack, and reports not found if it reaches a cell
	// whose open, unfilled neighbors have all been visited.
	visited := map[grid.Point]bool{start: true}
	markVisited(g, start, cfg.Sink)
	path := []grid.Point{start}
	cur := start

	for cur != exit {
		if cfg.cancelled() {
			return Result{}, errCancelled
		}
		n := openNeighbors(g, cur, &nbrs)
		next, ok := grid.Point{}, false
		for i := 0; i < n; i++ {
			cand := nbrs[i].Point
			if filled[cand] || visited[cand] {
				continue
			}
			next, ok = cand, true
			break
		}
		if !ok {
			return Result{Found: false, VisitedCount: len(visited)}, nil
		}
		visited[next] = true
		markVisited(g, next, cfg.Sink)
		path = append(path, next)
		cur = next
	}

	return Result{Found: true, Path: path, VisitedCount: len(visited)}, nil
}
