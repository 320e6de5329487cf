package mazesolve

import "github.com/gridforge/mazecore/pkg/grid"

func init() {
	Register(BFS, "FIFO queue, shortest path in steps", solveBFS)
}

// solveBFS implements the uninformed breadth-first solver (spec §4.4 table):
// a FIFO queue, neighbors expanded in fixed N,E,S,W order, optimal in step
// count.
func solveBFS(g *grid.Grid, start, exit grid.Point, cfg Config) (Result, error) {
	queue := []grid.Point{start}
	parent := map[grid.Point]grid.Point{}
	visited := map[grid.Point]bool{start: true}
	markVisited(g, start, cfg.Sink)

	var nbrs [4]grid.Neighbor
	for len(queue) > 0 {
		if cfg.cancelled() {
			return Result{}, errCancelled
		}
		cur := queue[0]
		queue = queue[1:]

		if cur == exit {
			path := reconstructPath(parent, start, exit)
			return Result{Found: true, Path: path, VisitedCount: len(visited)}, nil
		}

		n := openNeighbors(g, cur, &nbrs)
		for i := 0; i < n; i++ {
			nb := nbrs[i].Point
			if visited[nb] {
				continue
			}
			visited[nb] = true
			parent[nb] = cur
			markVisited(g, nb, cfg.Sink)
			queue = append(queue, nb)
		}
	}

	return Result{Found: false, VisitedCount: len(visited)}, nil
}
