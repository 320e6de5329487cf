package mazegen

import (
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/gridforge/mazecore/pkg/common"
	"github.com/gridforge/mazecore/pkg/events"
	"github.com/gridforge/mazecore/pkg/grid"
	"github.com/gridforge/mazecore/pkg/randsrc"
)

func init() {
	Register(Organic, "multi-agent parallel carving: high branching, fuzzy topology", generateOrganic)
}

// claimGrid promotes the VISITED_GEN bit to an atomic per-cell flag for the
// duration of organic generation, so an agent's compare-and-swap claim on a
// destination cell is race-free without locking the whole grid (spec §9
// "promote the per-cell byte to an atomic... VISITED_GEN is atomic; walls
// and visited-solve are written only by the unique claimant or exclusively
// later"). Wall bits on *grid.Grid are written only by the single goroutine
// that won the claim on a given cell, so no atomics are needed for them.
type claimGrid struct {
	g      *grid.Grid
	claims []atomic.Bool
}

func newClaimGrid(g *grid.Grid) *claimGrid {
	return &claimGrid{g: g, claims: make([]atomic.Bool, g.Width()*g.Height())}
}

func (c *claimGrid) idx(p grid.Point) int { return p.Y*c.g.Width() + p.X }

// tryClaim atomically transitions a cell's VISITED_GEN bit 0->1. Returns
// true exactly once per cell, to exactly one caller, across any number of
// concurrent callers (spec §4.3.4 step 2, §5).
func (c *claimGrid) tryClaim(p grid.Point) bool {
	return c.claims[c.idx(p)].CompareAndSwap(false, true)
}

func (c *claimGrid) claimed(p grid.Point) bool {
	return c.claims[c.idx(p)].Load()
}

type organicAgent struct {
	pos   grid.Point
	alive bool
	rng   *randsrc.Source
}

// generateOrganic implements the multi-agent parallel carver (spec §4.3.4):
// agent_count agents advanced in lockstep ticks, each attempting an atomic
// claim on one random neighbor; killed agents respawn adjacent to an
// already-VISITED_GEN cell (open question c resolution, SPEC_FULL.md §14c),
// which keeps every carved cell inductively connected to start without a
// final connectivity repair pass.
func generateOrganic(cfg Config) (*grid.Grid, error) {
	g, err := grid.New(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	g.FillWalls()

	claims := newClaimGrid(g)
	parentRNG := randsrc.New(cfg.Seed)

	start := g.Start()
	claims.tryClaim(start)
	g.SetFlag(start.X, start.Y, grid.VisitedGen, true)

	totalCells := cfg.Width * cfg.Height
	agentCount := cfg.AgentCount
	if agentCount > totalCells-1 {
		agentCount = totalCells - 1
	}
	if agentCount < 1 {
		return g, nil // a 2-cell-minimum grid always has room for one agent
	}

	agents := make([]*organicAgent, agentCount)
	unclaimedCount := totalCells - 1
	for i := range agents {
		p, ok := spawnAdjacentToVisited(g, claims, parentRNG)
		if !ok {
			agents[i] = &organicAgent{alive: false, rng: randsrc.New(parentRNG.Int63())}
			continue
		}
		unclaimedCount--
		agents[i] = &organicAgent{pos: p, alive: true, rng: randsrc.New(parentRNG.Int63())}
	}

	for unclaimedCount > 0 {
		if cfg.cancelled() {
			return nil, common.ErrCancelled
		}

		eg, _ := errgroup.WithContext(cfg.Ctx)
		eg.SetLimit(workerLimit(cfg.Workers))
		moved := make([]bool, len(agents))

		for i, a := range agents {
			if !a.alive {
				continue
			}
			i, a := i, a
			eg.Go(func() error {
				moved[i] = tickAgent(g, claims, a, cfg.Sink)
				return nil
			})
		}
		_ = eg.Wait()

		for i, a := range agents {
			if a.alive && moved[i] {
				unclaimedCount--
			}
		}

		// Respawn any agent killed this tick, adjacent to the
		// already-connected component (spec §4.3.4 step 3).
		for i, a := range agents {
			if a.alive {
				continue
			}
			if unclaimedCount < len(agents)-i {
				// Fewer unclaimed cells remain than agents still idle;
				// reduce agent count rather than spin looking for spawns
				// that can't exist (spec §4.3.4 step 3).
				agents[i] = &organicAgent{alive: false, rng: a.rng}
				continue
			}
			p, ok := spawnAdjacentToVisited(g, claims, a.rng)
			if ok {
				unclaimedCount--
				agents[i] = &organicAgent{pos: p, alive: true, rng: a.rng}
			}
		}

		if !anyAlive(agents) {
			if unclaimedCount > 0 {
				msg := fmt.Sprintf("organic generation stalled with %d unclaimed cells and no live agent", unclaimedCount)
				_ = WriteFailureDump(cfg.DumpDir, g, cfg.Seed, msg)
				return nil, common.NewInvariantViolation("%s", msg)
			}
			break
		}
	}

	return g, nil
}

// tickAgent attempts one move for a: pick a uniformly random neighbor, try
// to claim it, carve on success, or die on failure (spec §4.3.4 step 2).
// Returns true if a successfully claimed and carved to a new cell.
func tickAgent(g *grid.Grid, claims *claimGrid, a *organicAgent, sink events.Sink) bool {
	var nbrs [4]grid.Neighbor
	n := g.Neighbors(a.pos.X, a.pos.Y, &nbrs)
	if n == 0 {
		a.alive = false
		return false
	}

	pick := nbrs[a.rng.Intn(n)]
	if claims.claimed(pick.Point) {
		a.alive = false
		return false
	}
	if !claims.tryClaim(pick.Point) {
		a.alive = false // another agent won this cell first
		return false
	}

	carveAndVisit(g, a.pos, pick, sink)
	a.pos = pick.Point
	return true
}

// spawnAdjacentToVisited samples a random cell adjacent to an existing
// VISITED_GEN cell by rejection, then claims it. Returns ok=false if no
// such cell is found within a bounded number of attempts (grid fully
// claimed, or transient contention).
func spawnAdjacentToVisited(g *grid.Grid, claims *claimGrid, rng *randsrc.Source) (grid.Point, bool) {
	w, h := g.Dimensions()
	const maxAttempts = 4096
	var nbrs [4]grid.Neighbor

	for attempt := 0; attempt < maxAttempts; attempt++ {
		x, y := rng.Intn(w), rng.Intn(h)
		p := grid.Point{X: x, Y: y}
		if claims.claimed(p) {
			continue
		}
		n := g.Neighbors(x, y, &nbrs)
		adjacentToVisited := false
		for i := 0; i < n; i++ {
			if claims.claimed(nbrs[i].Point) {
				adjacentToVisited = true
				break
			}
		}
		if !adjacentToVisited {
			continue
		}
		if claims.tryClaim(p) {
			g.SetFlag(p.X, p.Y, grid.VisitedGen, true)
			// Open the edge back to the visited neighbor that justified
			// this spawn, so the new agent starts already connected.
			for i := 0; i < n; i++ {
				if claims.claimed(nbrs[i].Point) {
					_ = g.Carve(p.X, p.Y, nbrs[i].Dir)
					break
				}
			}
			return p, true
		}
	}
	return grid.Point{}, false
}

func anyAlive(agents []*organicAgent) bool {
	for _, a := range agents {
		if a.alive {
			return true
		}
	}
	return false
}
