// Package mazegen implements the maze-generation family: recursive
// backtracker, Prim's, fractal (data-parallel), and organic (data-parallel)
// generators, plus braiding (spec §4.3).
package mazegen

import (
	"context"

	"github.com/gridforge/mazecore/pkg/events"
)

// Algo names the generator to run, matching the CLI --algo values (spec §6).
type Algo string

const (
	DFS     Algo = "dfs"
	Prim    Algo = "prim"
	Fractal Algo = "fractal"
	Organic Algo = "organic"
)

// Config holds generation parameters (spec §4.3 common contract), following
// the teacher's plain-struct-with-defaults convention (generator/config.go).
type Config struct {
	Width, Height int
	Seed          int64
	Algo          Algo
	Braid         float64 // 0 = perfect maze, (0,1] = braided

	// BlockSide is the fractal generator's block_side parameter (default 32
	// if zero, spec §4.3.3).
	BlockSide int
	// AgentCount is the organic generator's agent_count parameter (default
	// min(cells/64, 16384) if zero, spec §4.3.4).
	AgentCount int
	// Workers bounds parallelism for fractal/organic (0 or less = 8).
	Workers int
	// DumpDir, if set, overrides where a failure dump is written when an
	// InvariantViolation is detected mid-generation (spec's failure-dump
	// habit, SPEC_FULL.md §13). Empty uses a temp-dir default.
	DumpDir string

	// Ctx, if non-nil, is checked cooperatively at least once per outer
	// iteration (spec §5 "Cancellation").
	Ctx context.Context
	// Sink receives carve/visit events as they're produced; defaults to a
	// NullSink when nil (spec §3.3, §9 event streams).
	Sink events.Sink
}

func (c Config) applyDefaults() Config {
	if c.BlockSide <= 0 {
		c.BlockSide = 32
	}
	if c.AgentCount <= 0 {
		cells := c.Width * c.Height
		c.AgentCount = cells / 64
		if c.AgentCount > 16384 {
			c.AgentCount = 16384
		}
		if c.AgentCount < 1 {
			c.AgentCount = 1
		}
	}
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
