// Package metrics computes complexity measures over a finished grid: dead-end
// count, branching factor, and shortest path length (spec §4.6). Grounded on
// the teacher's generator/metrics package (complexity.go, coverage.go), which
// takes the same shape of "one small exported function per measure operating
// on the finished structure."
package metrics

import "github.com/gridforge/mazecore/pkg/grid"

// Report bundles every computed measure for one grid.
type Report struct {
	DeadEndCount    int
	BranchingFactor float64
	PathLength      int
	PathFound       bool
}

// Compute runs the single pass plus one BFS the spec calls for (spec §4.6)
// and returns every measure together.
func Compute(g *grid.Grid) Report {
	deadEnds, branching := passMetrics(g)
	length, found := shortestPathLength(g)
	return Report{
		DeadEndCount:    deadEnds,
		BranchingFactor: branching,
		PathLength:      length,
		PathFound:       found,
	}
}

// DeadEndCount counts cells with exactly three walls (spec §4.6).
func DeadEndCount(g *grid.Grid) int {
	return len(g.DeadEnds())
}

// BranchingFactor is the mean, over every non-dead-end cell, of
// (open edges - 1) (spec §4.6).
func BranchingFactor(g *grid.Grid) float64 {
	_, b := passMetrics(g)
	return b
}

// passMetrics walks every cell once, tallying dead ends and accumulating
// the branching factor sum in the same pass (spec §4.6: "single pass").
func passMetrics(g *grid.Grid) (deadEnds int, branching float64) {
	w, h := g.Dimensions()
	sum := 0
	nonDeadEnds := 0
	var nbrs [4]grid.Neighbor
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			n := g.Neighbors(x, y, &nbrs)
			open := 0
			for i := 0; i < n; i++ {
				if !g.HasWall(x, y, nbrs[i].Dir) {
					open++
				}
			}
			if open == 1 {
				deadEnds++
				continue
			}
			nonDeadEnds++
			sum += open - 1
		}
	}
	if nonDeadEnds == 0 {
		return deadEnds, 0
	}
	return deadEnds, float64(sum) / float64(nonDeadEnds)
}

// PathLength returns the shortest-path step count from start to exit (spec
// §4.6: "computed via BFS").
func PathLength(g *grid.Grid) (int, bool) {
	return shortestPathLength(g)
}

func shortestPathLength(g *grid.Grid) (int, bool) {
	start, exit := g.Start(), g.Exit()
	if start == exit {
		return 0, true
	}

	dist := map[grid.Point]int{start: 0}
	queue := []grid.Point{start}
	var nbrs [4]grid.Neighbor

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		if p == exit {
			return dist[p], true
		}
		n := g.Neighbors(p.X, p.Y, &nbrs)
		for i := 0; i < n; i++ {
			if g.HasWall(p.X, p.Y, nbrs[i].Dir) {
				continue
			}
			nb := nbrs[i].Point
			if _, seen := dist[nb]; seen {
				continue
			}
			dist[nb] = dist[p] + 1
			queue = append(queue, nb)
		}
	}
	return 0, false
}
