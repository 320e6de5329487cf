package mazesolve

import (
	"container/heap"

	"github.com/gridforge/mazecore/pkg/grid"
)

func init() {
	Register(BiAStar, "two A* searches, forward + backward, meet in the middle", solveBiAStar)
}

// side carries one direction's half of the bidirectional search: its own
// g-scores, parent chain, visited/closed set, and open queue.
type side struct {
	goal    grid.Point
	gScore  map[grid.Point]int
	parent  map[grid.Point]grid.Point
	closed  map[grid.Point]bool
	pq      *aStarQueue
	seq     int
}

func newSide(start, goal grid.Point) *side {
	s := &side{
		goal:   goal,
		gScore: map[grid.Point]int{start: 0},
		parent: map[grid.Point]grid.Point{},
		closed: map[grid.Point]bool{},
		pq:     &aStarQueue{},
	}
	heap.Init(s.pq)
	h0 := manhattan(start, goal)
	heap.Push(s.pq, &aStarItem{point: start, f: h0, h: h0, seq: s.seq})
	return s
}

// solveBiAStar implements bidirectional A*: expand one side at a time, and
// the moment a cell about to be expanded on side X is already closed on
// side not-X, that cell is the meeting point and the path is reconstructed
// by stitching both parent chains (spec §4.4 "Bidirectional A* meeting
// condition" — checked at expansion time, not insertion time, which is what
// keeps the first such meeting optimal under an admissible, consistent
// heuristic).
func solveBiAStar(g *grid.Grid, start, exit grid.Point, cfg Config) (Result, error) {
	fwd := newSide(start, exit)
	bwd := newSide(exit, start)
	visited := map[grid.Point]bool{start: true, exit: true}

	var nbrs [4]grid.Neighbor
	turnForward := true

	for fwd.pq.Len() > 0 && bwd.pq.Len() > 0 {
		if cfg.cancelled() {
			return Result{}, errCancelled
		}

		cur, other := fwd, bwd
		if !turnForward {
			cur, other = bwd, fwd
		}
		turnForward = !turnForward

		item := heap.Pop(cur.pq).(*aStarItem)
		p := item.point
		if cur.closed[p] {
			continue
		}

		if other.closed[p] {
			return Result{Found: true, Path: stitchBidirectional(fwd, bwd, p, start, exit), VisitedCount: len(visited)}, nil
		}

		cur.closed[p] = true
		if !visited[p] {
			visited[p] = true
			markVisited(g, p, cfg.Sink)
		}

		n := openNeighbors(g, p, &nbrs)
		for i := 0; i < n; i++ {
			nb := nbrs[i].Point
			if cur.closed[nb] {
				continue
			}
			ng := cur.gScore[p] + 1
			if cg, ok := cur.gScore[nb]; !ok || ng < cg {
				cur.gScore[nb] = ng
				cur.parent[nb] = p
				cur.seq++
				h := manhattan(nb, cur.goal)
				heap.Push(cur.pq, &aStarItem{point: nb, f: ng + h, h: h, seq: cur.seq})
			}
		}
	}

	return Result{Found: false, VisitedCount: len(visited)}, nil
}

// stitchBidirectional reconstructs a full start->exit path from both
// half-searches' parent chains, reversing the backward half (spec §4.4).
func stitchBidirectional(fwd, bwd *side, meet, start, exit grid.Point) []grid.Point {
	forwardHalf := reconstructPath(fwd.parent, start, meet)
	backwardHalf := reconstructPath(bwd.parent, exit, meet)

	path := make([]grid.Point, 0, len(forwardHalf)+len(backwardHalf)-1)
	path = append(path, forwardHalf...)
	for i := len(backwardHalf) - 2; i >= 0; i-- {
		path = append(path, backwardHalf[i])
	}
	return path
}
