package mazesolve

import (
	"sync"

	"github.com/gridforge/mazecore/pkg/grid"
)

func init() {
	Register(Swarm, "parallel multi-source BFS, frontiers union each round", solveSwarm)
}

// solveSwarm implements the swarm solver (spec §4.4 table): two frontiers,
// seeded at start and exit, expand one generation per round concurrently
// via a goroutine each; the round one frontier first reaches a cell the
// other has already claimed is the meeting point, and the path is the
// concatenation of both frontiers' parent chains back to their seeds. With
// only two frontiers every meeting is necessarily the start/exit meeting,
// which keeps reconstruction unambiguous; more seeds would need a
// union-find over frontier groups to reconstruct correctly and are left out
// for that reason.
func solveSwarm(g *grid.Grid, start, exit grid.Point, cfg Config) (Result, error) {
	seeds := []grid.Point{start, exit}

	owner := make(map[grid.Point]int, g.Width()*g.Height())
	parents := make([]map[grid.Point]grid.Point, len(seeds))
	queues := make([][]grid.Point, len(seeds))
	for i, s := range seeds {
		parents[i] = map[grid.Point]grid.Point{}
		queues[i] = []grid.Point{s}
		owner[s] = i
	}
	if start == exit {
		return Result{Found: true, Path: []grid.Point{start}, VisitedCount: 1}, nil
	}

	var mu sync.Mutex
	visitedCount := len(seeds)
	meetA, meetB := -1, -1
	var meetPoint grid.Point

	for meetA == -1 {
		if cfg.cancelled() {
			return Result{}, errCancelled
		}

		type claim struct {
			owner int
			p     grid.Point
			from  grid.Point
		}
		claims := make(chan claim, 256)
		var wg sync.WaitGroup
		anyActive := false

		for i := range seeds {
			if len(queues[i]) == 0 {
				continue
			}
			anyActive = true
			wg.Add(1)
			go func(i int, cur []grid.Point) {
				defer wg.Done()
				var nbrs [4]grid.Neighbor
				for _, p := range cur {
					n := openNeighbors(g, p, &nbrs)
					for k := 0; k < n; k++ {
						claims <- claim{owner: i, p: nbrs[k].Point, from: p}
					}
				}
			}(i, queues[i])
			queues[i] = nil
		}
		go func() {
			wg.Wait()
			close(claims)
		}()

		if !anyActive {
			return Result{Found: false, VisitedCount: visitedCount}, nil
		}

		nextQueues := make([][]grid.Point, len(seeds))
		for c := range claims {
			mu.Lock()
			if existingOwner, ok := owner[c.p]; ok {
				if existingOwner != c.owner && meetA == -1 {
					meetA, meetB = existingOwner, c.owner
					meetPoint = c.p
					if _, has := parents[c.owner][c.p]; !has {
						parents[c.owner][c.p] = c.from
					}
				}
				mu.Unlock()
				continue
			}
			owner[c.p] = c.owner
			parents[c.owner][c.p] = c.from
			visitedCount++
			markVisited(g, c.p, cfg.Sink)
			mu.Unlock()
			nextQueues[c.owner] = append(nextQueues[c.owner], c.p)
		}

		queues = nextQueues
	}

	halfA := chainToSeed(parents[meetA], meetPoint, seeds[meetA])
	halfB := chainToSeed(parents[meetB], meetPoint, seeds[meetB])

	// Orient both halves so the result reads start -> ... -> exit regardless
	// of which two frontiers happened to meet.
	startHalf, exitHalf := halfA, halfB
	if seeds[meetA] == exit {
		startHalf, exitHalf = halfB, halfA
	}

	full := make([]grid.Point, 0, len(startHalf)+len(exitHalf)-1)
	full = append(full, startHalf...)
	for i := len(exitHalf) - 2; i >= 0; i-- {
		full = append(full, exitHalf[i])
	}

	return Result{Found: true, Path: full, VisitedCount: visitedCount}, nil
}

// chainToSeed walks a frontier's parent map backward from p to its seed.
func chainToSeed(parent map[grid.Point]grid.Point, p, seed grid.Point) []grid.Point {
	rev := []grid.Point{p}
	for p != seed {
		next, ok := parent[p]
		if !ok {
			break
		}
		p = next
		rev = append(rev, p)
	}
	out := make([]grid.Point, len(rev))
	for i, v := range rev {
		out[len(rev)-1-i] = v
	}
	return out
}
