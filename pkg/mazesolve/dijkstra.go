package mazesolve

import (
	"container/heap"

	"github.com/gridforge/mazecore/pkg/grid"
)

func init() {
	Register(Dijkstra, "priority queue keyed on accumulated cost", solveDijkstra)
}

// pqItem is a single priority-queue entry, shaped like the teacher's
// validator/astar.go priorityItem: an index field heap.Interface needs to
// keep Swap cheap, plus an insertion sequence number so ties break by
// insertion order (spec §4.4 table: "equal costs -> insertion order").
type pqItem struct {
	point    grid.Point
	priority int
	seq      int
	index    int
}

type priorityQueue []*pqItem

func (pq priorityQueue) Len() int { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool {
	if pq[i].priority != pq[j].priority {
		return pq[i].priority < pq[j].priority
	}
	return pq[i].seq < pq[j].seq
}
func (pq priorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}
func (pq *priorityQueue) Push(x interface{}) {
	item := x.(*pqItem)
	item.index = len(*pq)
	*pq = append(*pq, item)
}
func (pq *priorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*pq = old[:n-1]
	return item
}

// solveDijkstra implements uniform-cost search keyed on accumulated cost
// (spec §4.4 table). On the spec's uniform-weight grid this produces the
// same shortest path as BFS but exercises the priority-queue machinery astar
// and biastar share.
func solveDijkstra(g *grid.Grid, start, exit grid.Point, cfg Config) (Result, error) {
	dist := map[grid.Point]int{start: 0}
	parent := map[grid.Point]grid.Point{}
	visited := map[grid.Point]bool{}

	pq := &priorityQueue{}
	heap.Init(pq)
	seq := 0
	heap.Push(pq, &pqItem{point: start, priority: 0, seq: seq})

	var nbrs [4]grid.Neighbor
	for pq.Len() > 0 {
		if cfg.cancelled() {
			return Result{}, errCancelled
		}
		item := heap.Pop(pq).(*pqItem)
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
			nd := dist[cur] + 1
			if d, ok := dist[nb]; !ok || nd < d {
				dist[nb] = nd
				parent[nb] = cur
				seq++
				heap.Push(pq, &pqItem{point: nb, priority: nd, seq: seq})
			}
		}
	}

	return Result{Found: false, VisitedCount: len(visited)}, nil
}

// manhattan is the admissible, consistent heuristic used by astar/biastar
// on this uniform-cost grid (spec §4.4, glossary).
func manhattan(a, b grid.Point) int {
	return absInt(a.X-b.X) + absInt(a.Y-b.Y)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
