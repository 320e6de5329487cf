package mazesolve

import (
	"container/heap"

	"github.com/gridforge/mazecore/pkg/grid"
)

func init() {
	Register(AStar, "priority queue keyed on g+h, Manhattan heuristic", solveAStar)
}

// aStarItem adds the h-value to pqItem so ties break on lower h before
// insertion order (spec §4.4 table: "ties -> lower h, then insertion").
type aStarItem struct {
	point    grid.Point
	f, h     int
	seq      int
	index    int
}

type aStarQueue []*aStarItem

func (pq aStarQueue) Len() int { return len(pq) }
func (pq aStarQueue) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	if pq[i].h != pq[j].h {
		return pq[i].h < pq[j].h
	}
	return pq[i].seq < pq[j].seq
}
func (pq aStarQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}
func (pq *aStarQueue) Push(x interface{}) {
	item := x.(*aStarItem)
	item.index = len(*pq)
	*pq = append(*pq, item)
}
func (pq *aStarQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*pq = old[:n-1]
	return item
}

// solveAStar implements A* with the Manhattan admissible heuristic (spec
// §4.4 table), optimal given unit step costs.
func solveAStar(g *grid.Grid, start, exit grid.Point, cfg Config) (Result, error) {
	gScore := map[grid.Point]int{start: 0}
	parent := map[grid.Point]grid.Point{}
	visited := map[grid.Point]bool{}

	pq := &aStarQueue{}
	heap.Init(pq)
	seq := 0
	h0 := manhattan(start, exit)
	heap.Push(pq, &aStarItem{point: start, f: h0, h: h0, seq: seq})

	var nbrs [4]grid.Neighbor
	for pq.Len() > 0 {
		if cfg.cancelled() {
			return Result{}, errCancelled
		}
		item := heap.Pop(pq).(*aStarItem)
		cur := item.point
		if visited[cur] {
			continue
		}
		visited[cur] = true
		markVisited(g, cur, cfg.Sink)

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
			ng := gScore[cur] + 1
			if cg, ok := gScore[nb]; !ok || ng < cg {
				gScore[nb] = ng
				parent[nb] = cur
				seq++
				h := manhattan(nb, exit)
				heap.Push(pq, &aStarItem{point: nb, f: ng + h, h: h, seq: seq})
			}
		}
	}

	return Result{Found: false, VisitedCount: len(visited)}, nil
}
