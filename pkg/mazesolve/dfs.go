package mazesolve

import "github.com/gridforge/mazecore/pkg/grid"

func init() {
	Register(DFSSolve, "LIFO stack, fixed N,E,S,W order, not optimal", solveDFS)
}

// solveDFS implements the LIFO-stack solver (spec §4.4 table): neighbor
// order fixed N,E,S,W, newest expansion first, not guaranteed optimal.
func solveDFS(g *grid.Grid, start, exit grid.Point, cfg Config) (Result, error) {
	type frame struct {
		p    grid.Point
		next int // index into that cell's open-neighbor list already visited
	}

	visited := map[grid.Point]bool{start: true}
	markVisited(g, start, cfg.Sink)
	parent := map[grid.Point]grid.Point{}

	stack := []frame{{p: start}}

	var nbrs [4]grid.Neighbor
	for len(stack) > 0 {
		if cfg.cancelled() {
			return Result{}, errCancelled
		}
		top := &stack[len(stack)-1]

		if top.p == exit {
			path := reconstructPath(parent, start, exit)
			return Result{Found: true, Path: path, VisitedCount: len(visited)}, nil
		}

		n := openNeighbors(g, top.p, &nbrs)
		advanced := false
		for top.next < n {
			nb := nbrs[top.next].Point
			top.next++
			if visited[nb] {
				continue
			}
			visited[nb] = true
			parent[nb] = top.p
			markVisited(g, nb, cfg.Sink)
			stack = append(stack, frame{p: nb})
			advanced = true
			break
		}
		if !advanced && top.next >= n {
			stack = stack[:len(stack)-1]
		}
	}

	return Result{Found: false, VisitedCount: len(visited)}, nil
}
