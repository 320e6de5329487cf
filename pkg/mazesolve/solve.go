// Package mazesolve implements the pathfinding solver family: uninformed
// (bfs, dfs), heuristic (astar, biastar), wall-following (left, right),
// cellular-automaton (deadend), protocol-based (tremaux), and multi-source
// (swarm) search over a packed grid (spec §4.4).
package mazesolve

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/gridforge/mazecore/pkg/events"
	"github.com/gridforge/mazecore/pkg/grid"
)

// Algo names the solver to run, matching the CLI --algo values (spec §6).
type Algo string

const (
	BFS       Algo = "bfs"
	Dijkstra  Algo = "dijkstra"
	AStar     Algo = "astar"
	BiAStar   Algo = "biastar"
	DFSSolve  Algo = "dfs_solve"
	Left      Algo = "left"
	Right     Algo = "right"
	DeadEnd   Algo = "deadend"
	Tremaux   Algo = "tremaux"
	Swarm     Algo = "swarm"
)

// Result is the common solver output (spec §4.4 common contract).
type Result struct {
	Found        bool
	Path         []grid.Point
	VisitedCount int
}

// Config bounds a single solve run.
type Config struct {
	Ctx  context.Context
	Sink events.Sink
}

func (c Config) applyDefaults() Config {
	if c.Ctx == nil {
		c.Ctx = context.Background()
	}
	if c.Sink == nil {
		c.Sink = events.NullSink{}
	}
	return c
}

func (c Config) cancelled() bool {
	select {
	case <-c.Ctx.Done():
		return true
	default:
		return false
	}
}

// SolverFunc runs one solver over g from start to exit. Adapted from the
// teacher's generator/registry.go StrategyFactory pattern, retargeted from
// named placement strategies to named solve algorithms.
type SolverFunc func(g *grid.Grid, start, exit grid.Point, cfg Config) (Result, error)

type registryEntry struct {
	Name string
	Fn   SolverFunc
}

var (
	registry     = make(map[Algo]registryEntry)
	registryLock sync.RWMutex
)

// Register adds a named solver to the registry. Called from each
// algorithm's init().
func Register(name Algo, description string, fn SolverFunc) {
	registryLock.Lock()
	defer registryLock.Unlock()
	registry[name] = registryEntry{Name: description, Fn: fn}
}

// List returns every registered solver, sorted by name.
func List() []Algo {
	registryLock.RLock()
	defer registryLock.RUnlock()
	names := make([]Algo, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// Solve dispatches to the named solver, then marks ON_PATH on every path
// cell in a final pass (spec §4.4 "after success, ON_PATH is set for each
// path cell in a final pass").
func Solve(g *grid.Grid, algo Algo, start, exit grid.Point, cfg Config) (Result, error) {
	cfg = cfg.applyDefaults()

	registryLock.RLock()
	entry, ok := registry[algo]
	registryLock.RUnlock()
	if !ok {
		return Result{}, fmt.Errorf("unknown solver algorithm: %q", algo)
	}

	res, err := entry.Fn(g, start, exit, cfg)
	if err != nil {
		return res, err
	}
	if res.Found {
		markPath(g, res.Path, cfg.Sink)
	}
	return res, nil
}

func markPath(g *grid.Grid, path []grid.Point, sink events.Sink) {
	for _, p := range path {
		g.SetFlag(p.X, p.Y, grid.OnPath, true)
		sink.OnEvent(events.Event{Kind: events.Path, X: uint32(p.X), Y: uint32(p.Y)})
	}
}

func markVisited(g *grid.Grid, p grid.Point, sink events.Sink) {
	g.SetFlag(p.X, p.Y, grid.VisitedSolve, true)
	sink.OnEvent(events.Event{Kind: events.Visit, X: uint32(p.X), Y: uint32(p.Y)})
}

// reconstructPath walks a parent map from exit back to start, reversing
// into start->exit order. Shared by bfs, dijkstra, astar, biastar, dfs.
func reconstructPath(parent map[grid.Point]grid.Point, start, exit grid.Point) []grid.Point {
	path := []grid.Point{exit}
	cur := exit
	for cur != start {
		p, ok := parent[cur]
		if !ok {
			return nil
		}
		path = append(path, p)
		cur = p
	}
	// reverse
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

func openNeighbors(g *grid.Grid, p grid.Point, out *[4]grid.Neighbor) int {
	n := g.Neighbors(p.X, p.Y, out)
	w := 0
	for i := 0; i < n; i++ {
		if !g.HasWall(p.X, p.Y, out[i].Dir) {
			out[w] = out[i]
			w++
		}
	}
	return w
}
