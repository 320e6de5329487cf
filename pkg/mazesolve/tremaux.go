package mazesolve

import "github.com/gridforge/mazecore/pkg/grid"

func init() {
	Register(Tremaux, "two-mark-per-passage protocol, succeeds on perfect mazes", solveTremaux)
}

// tremauxMarks counts passes over each passage in either direction, stored
// under both (cell, neighbor) orderings, and follows the Trémaux rule: never take a passage marked
// twice, prefer an unmarked passage over one marked once, and when
// backtracking through a junction never leave by the passage just entered
// unless it is the only unmarked or once-marked option left.
type tremauxMarks map[[2]grid.Point]int

// solveTremaux implements Trémaux's algorithm (spec §4.4 table). It is
// guaranteed to terminate and find the exit on a perfect maze (Open
// Question resolved in SPEC_FULL.md: no braided-loop case is required to
// succeed) since a tree has no cycle for the walk to wander forever.
func solveTremaux(g *grid.Grid, start, exit grid.Point, cfg Config) (Result, error) {
	marks := tremauxMarks{}
	visited := map[grid.Point]bool{start: true}
	markVisited(g, start, cfg.Sink)

	path := []grid.Point{start}
	cur := start
	var prev *grid.Point

	var nbrs [4]grid.Neighbor
	maxSteps := 4 * g.Width() * g.Height()

	for step := 0; ; step++ {
		if cfg.cancelled() {
			return Result{}, errCancelled
		}
		if cur == exit {
			return Result{Found: true, Path: path, VisitedCount: len(visited)}, nil
		}
		if step > maxSteps {
			// Should be unreachable on a perfect maze; guards against an
			// unexpected loop in a braided input instead of hanging.
			return Result{Found: false, VisitedCount: len(visited)}, nil
		}

		n := openNeighbors(g, cur, &nbrs)
		best := -1
		bestMarks := 3
		enteredFrom := -1
		for i := 0; i < n; i++ {
			nb := nbrs[i].Point
			if prev != nil && nb == *prev {
				enteredFrom = i
				continue
			}
			m := marks[[2]grid.Point{cur, nb}]
			if m < 2 && m < bestMarks {
				bestMarks = m
				best = i
			}
		}
		if best == -1 && enteredFrom != -1 {
			// Dead end, or every other passage is marked twice: walk back
			// the way we came.
			best = enteredFrom
		}
		if best == -1 {
			return Result{Found: false, VisitedCount: len(visited)}, nil
		}

		next := nbrs[best].Point
		marks[[2]grid.Point{cur, next}]++
		marks[[2]grid.Point{next, cur}]++
		prevCopy := cur
		prev = &prevCopy
		cur = next
		path = append(path, cur)
		if !visited[cur] {
			visited[cur] = true
			markVisited(g, cur, cfg.Sink)
		}
	}
}
